package services

import (
	"errors"
	"strings"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/mealdiary/meal-diary-api/internal/models"
)

// ErrEmptyIngredientName marks an ingredient record with a blank name. The
// caller skips the record instead of failing the whole dish.
var ErrEmptyIngredientName = errors.New("ingredient name is empty")

// NormalizeIngredient canonicalizes a raw ingredient record: the name is
// trimmed and lowercased, the allergen type is dropped when the record is
// not flagged as an allergen, and an empty quantity becomes null.
// Normalizing an already-normalized record is a no-op.
func NormalizeIngredient(raw models.IngredientPayload) (models.IngredientPayload, error) {
	name := strings.ToLower(strings.TrimSpace(raw.Name))
	if name == "" {
		return models.IngredientPayload{}, ErrEmptyIngredientName
	}

	normalized := models.IngredientPayload{
		Name:             name,
		PossibleAllergen: raw.PossibleAllergen,
		Category:         raw.Category,
	}
	if raw.PossibleAllergen {
		normalized.AllergenType = raw.AllergenType
	}
	if raw.Quantity != nil && strings.TrimSpace(*raw.Quantity) != "" {
		normalized.Quantity = raw.Quantity
	}
	return normalized, nil
}

// IngredientService resolves normalized ingredient records against the
// shared catalog
type IngredientService interface {
	// FindOrCreate looks the ingredient up by its normalized name and
	// creates a catalog entry when absent. The returned flag reports
	// whether a new entry was created. Existing entries are never mutated
	// from dish-level input. When tx is non-nil the lookup runs inside it.
	FindOrCreate(tx *gorm.DB, normalized models.IngredientPayload) (models.Ingredient, bool, error)
}

type ingredientService struct {
	db *gorm.DB
}

// NewIngredientService creates a new instance of IngredientService
func NewIngredientService(db *gorm.DB) IngredientService {
	return &ingredientService{db: db}
}

func (s *ingredientService) FindOrCreate(tx *gorm.DB, normalized models.IngredientPayload) (models.Ingredient, bool, error) {
	conn := tx
	if conn == nil {
		conn = s.db
	}

	var ingredient models.Ingredient
	err := conn.Where("name = ?", normalized.Name).First(&ingredient).Error
	if err == nil {
		return ingredient, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Ingredient{}, false, err
	}

	ingredient = models.Ingredient{
		Name:           normalized.Name,
		CommonAllergen: normalized.PossibleAllergen,
		AllergenType:   normalized.AllergenType,
		Category:       normalized.Category,
	}
	if err := conn.Create(&ingredient).Error; err != nil {
		// A concurrent request may have inserted the same name; the unique
		// index makes that surface as a duplicate key, which counts as found.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			var existing models.Ingredient
			if qErr := conn.Where("name = ?", normalized.Name).First(&existing).Error; qErr != nil {
				return models.Ingredient{}, false, qErr
			}
			return existing, false, nil
		}
		return models.Ingredient{}, false, err
	}

	log.WithField("ingredient", ingredient.Name).Debug("Created new catalog ingredient")
	return ingredient, true, nil
}
