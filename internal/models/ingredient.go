package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Ingredient is a catalog entry shared by every dish that references it.
// Name is stored trimmed and lowercased and is globally unique; the allergen
// classification lives here, never on the per-dish association.
type Ingredient struct {
	ID             string  `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Name           string  `gorm:"uniqueIndex;not null" json:"name"`
	CommonAllergen bool    `gorm:"not null" json:"commonAllergen"`
	AllergenType   *string `json:"allergenType,omitempty"`
	Category       *string `json:"category,omitempty"`
}

func (i *Ingredient) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}

// DishIngredient associates a dish with a catalog ingredient. Quantity is
// dish-specific; deleting a dish removes its associations only. Position
// keeps the order the ingredients were submitted in, dense from 0.
type DishIngredient struct {
	DishID       string     `gorm:"primaryKey;type:varchar(36)" json:"dishId"`
	IngredientID string     `gorm:"primaryKey;type:varchar(36)" json:"ingredientId"`
	Position     int        `gorm:"column:position;not null" json:"-"`
	Quantity     *string    `json:"quantity,omitempty"`
	Ingredient   Ingredient `json:"ingredient"`
}
