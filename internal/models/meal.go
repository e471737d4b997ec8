package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Meal types accepted by the API
const (
	MealTypeBreakfast = "BREAKFAST"
	MealTypeLunch     = "LUNCH"
	MealTypeDinner    = "DINNER"
	MealTypeSnack     = "SNACK"
	MealTypeBrunch    = "BRUNCH"
	MealTypeSupper    = "SUPPER"
)

// IsValidMealType reports whether the given value is one of the accepted meal types
func IsValidMealType(mealType string) bool {
	switch mealType {
	case MealTypeBreakfast, MealTypeLunch, MealTypeDinner,
		MealTypeSnack, MealTypeBrunch, MealTypeSupper:
		return true
	}
	return false
}

// Meal is one diary entry: a date, a time of day and an ordered set of dishes
type Meal struct {
	ID          string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	UserID      uint      `gorm:"index;not null" json:"userId"`
	Date        time.Time `gorm:"not null" json:"date"`
	Time        string    `gorm:"type:varchar(5);not null" json:"time"` // "HH:MM"
	MealType    string    `gorm:"type:varchar(16);not null" json:"mealType"`
	Description *string   `json:"description,omitempty"`
	Dishes      []Dish    `gorm:"constraint:OnDelete:CASCADE" json:"dishes"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (m *Meal) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// Dish is one food item within a meal. Order is zero-based and dense within
// the owning meal.
type Dish struct {
	ID               string            `gorm:"primaryKey;type:varchar(36)" json:"id"`
	MealID           string            `gorm:"index;type:varchar(36);not null" json:"mealId"`
	Name             string            `gorm:"not null" json:"name"`
	Description      *string           `json:"description,omitempty"`
	Order            int               `gorm:"column:position;not null" json:"order"`
	NutritionalValue *NutritionalValue `gorm:"constraint:OnDelete:CASCADE" json:"nutritionalValue,omitempty"`
	Ingredients      []DishIngredient  `gorm:"constraint:OnDelete:CASCADE" json:"ingredients"`
	Images           []MealImage       `gorm:"constraint:OnDelete:CASCADE" json:"images"`
	CreatedAt        time.Time         `json:"createdAt"`
	UpdatedAt        time.Time         `json:"updatedAt"`
}

func (d *Dish) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}

// NutritionalValue holds the estimated nutrition for a single dish.
// Required fields default to 0, never to null; fiber, sugars and sodium stay
// null when the source did not provide them.
type NutritionalValue struct {
	ID            string   `gorm:"primaryKey;type:varchar(36)" json:"id"`
	DishID        string   `gorm:"uniqueIndex;type:varchar(36);not null" json:"dishId"`
	Calories      float64  `gorm:"not null" json:"calories"`
	Proteins      float64  `gorm:"not null" json:"proteins"`
	Carbohydrates float64  `gorm:"not null" json:"carbohydrates"`
	Fats          float64  `gorm:"not null" json:"fats"`
	Fiber         *float64 `json:"fiber,omitempty"`
	Sugars        *float64 `json:"sugars,omitempty"`
	Sodium        *float64 `json:"sodium,omitempty"`
	DataSource    string   `gorm:"default:AI" json:"dataSource"`
	Accuracy      float64  `gorm:"default:70" json:"accuracy"`
}

func (n *NutritionalValue) BeforeCreate(tx *gorm.DB) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	return nil
}

// MealImage is one image in a dish's ordered image set. Within one owning
// collection at most one image has IsMain set, and exactly one when the
// collection is non-empty.
type MealImage struct {
	ID       string  `gorm:"primaryKey;type:varchar(36)" json:"id"`
	DishID   *string `gorm:"index;type:varchar(36)" json:"dishId,omitempty"`
	ImageURL string  `gorm:"not null" json:"imageUrl"`
	IsMain   bool    `gorm:"not null" json:"isMain"`
	Order    int     `gorm:"column:position;not null" json:"order"`
}

func (i *MealImage) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}
