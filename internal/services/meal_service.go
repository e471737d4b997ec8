package services

import (
	"errors"
	"math"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/mealdiary/meal-diary-api/internal/models"
)

// MealWithNutrition is a hydrated meal together with its recomputed
// aggregate nutrition. Nutrition is null when no dish carries data.
type MealWithNutrition struct {
	models.Meal
	Nutrition *NutritionSummary `json:"nutrition,omitempty"`
}

// MealService orchestrates create and update of a full meal (meal + dishes +
// ingredients + nutrition + images) as one atomic unit
type MealService interface {
	// ListMeals returns the user's meals, newest first, paginated
	ListMeals(userID uint, page, limit int) ([]MealWithNutrition, models.PageMeta, error)
	// GetMeal returns one hydrated meal owned by the user
	GetMeal(userID uint, mealID string) (*MealWithNutrition, error)
	// CreateMeal validates and persists a new meal with all its dishes
	CreateMeal(userID uint, payload models.MealPayload) (*MealWithNutrition, error)
	// UpdateMeal reconciles the payload against the persisted meal and
	// applies the resulting creates, updates and deletes in one transaction
	UpdateMeal(userID uint, mealID string, payload models.MealPayload) (*MealWithNutrition, error)
	// DeleteMeal removes a meal and everything it owns
	DeleteMeal(userID uint, mealID string) error
}

type mealService struct {
	db          *gorm.DB
	ingredients IngredientService
}

// NewMealService creates a new instance of MealService
func NewMealService(db *gorm.DB, ingredients IngredientService) MealService {
	return &mealService{db: db, ingredients: ingredients}
}

// validatePayload checks the top-level fields and the dish array before any
// write happens. It returns the parsed meal date.
func validatePayload(payload models.MealPayload) (time.Time, error) {
	date, err := time.Parse("2006-01-02", payload.Date)
	if err != nil {
		return time.Time{}, models.NewValidationError("date", "must be a valid YYYY-MM-DD date")
	}
	if _, err := time.Parse("15:04", payload.Time); err != nil {
		return time.Time{}, models.NewValidationError("time", "must be a valid HH:MM time")
	}
	if !models.IsValidMealType(payload.MealType) {
		return time.Time{}, models.NewValidationError("mealType", "unknown meal type")
	}
	if len(payload.Dishes) == 0 {
		return time.Time{}, models.NewValidationError("dishes", "at least one dish is required")
	}
	for _, dish := range payload.Dishes {
		if strings.TrimSpace(dish.Name) == "" {
			return time.Time{}, models.NewValidationError("dishes", "every dish needs a non-empty name")
		}
	}
	return date, nil
}

func (s *mealService) ListMeals(userID uint, page, limit int) ([]MealWithNutrition, models.PageMeta, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}

	var total int64
	if err := s.db.Model(&models.Meal{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, models.PageMeta{}, err
	}

	var meals []models.Meal
	err := s.hydrated(s.db).
		Where("user_id = ?", userID).
		Order("date DESC, time DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&meals).Error
	if err != nil {
		return nil, models.PageMeta{}, err
	}

	out := make([]MealWithNutrition, 0, len(meals))
	for _, meal := range meals {
		out = append(out, MealWithNutrition{Meal: meal, Nutrition: AggregateNutrition(meal.Dishes)})
	}
	meta := models.PageMeta{
		Total: total,
		Page:  page,
		Limit: limit,
		Pages: int(math.Ceil(float64(total) / float64(limit))),
	}
	return out, meta, nil
}

func (s *mealService) GetMeal(userID uint, mealID string) (*MealWithNutrition, error) {
	return s.loadMeal(userID, mealID)
}

func (s *mealService) CreateMeal(userID uint, payload models.MealPayload) (*MealWithNutrition, error) {
	date, err := validatePayload(payload)
	if err != nil {
		return nil, err
	}

	meal := models.Meal{
		UserID:      userID,
		Date:        date,
		Time:        payload.Time,
		MealType:    payload.MealType,
		Description: payload.Description,
	}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Dishes").Create(&meal).Error; err != nil {
			return err
		}
		for i, dish := range payload.Dishes {
			if err := s.createDish(tx, meal.ID, i, dish); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{"meal_id": meal.ID, "dishes": len(payload.Dishes)}).Info("Meal created")
	return s.loadMeal(userID, meal.ID)
}

func (s *mealService) UpdateMeal(userID uint, mealID string, payload models.MealPayload) (*MealWithNutrition, error) {
	date, err := validatePayload(payload)
	if err != nil {
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		var meal models.Meal
		if err := tx.Preload("Dishes").
			Where("id = ? AND user_id = ?", mealID, userID).
			First(&meal).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &models.NotFoundError{Entity: "meal", ID: mealID}
			}
			return err
		}

		reconciliation, err := ReconcileDishes(meal.Dishes, payload.Dishes)
		if err != nil {
			return err
		}

		meal.Date = date
		meal.Time = payload.Time
		meal.MealType = payload.MealType
		meal.Description = payload.Description
		if err := tx.Omit("Dishes").Save(&meal).Error; err != nil {
			return err
		}

		if len(reconciliation.ToDelete) > 0 {
			if err := s.deleteDishes(tx, reconciliation.ToDelete); err != nil {
				return err
			}
		}
		for _, change := range reconciliation.ToCreate {
			if err := s.createDish(tx, meal.ID, change.Order, change.Dish); err != nil {
				return err
			}
		}
		for _, change := range reconciliation.ToUpdate {
			if err := s.updateDish(tx, change); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.WithField("meal_id", mealID).Info("Meal updated")
	return s.loadMeal(userID, mealID)
}

func (s *mealService) DeleteMeal(userID uint, mealID string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var meal models.Meal
		if err := tx.Preload("Dishes").
			Where("id = ? AND user_id = ?", mealID, userID).
			First(&meal).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &models.NotFoundError{Entity: "meal", ID: mealID}
			}
			return err
		}

		dishIDs := make([]string, 0, len(meal.Dishes))
		for _, dish := range meal.Dishes {
			dishIDs = append(dishIDs, dish.ID)
		}
		if len(dishIDs) > 0 {
			if err := s.deleteDishes(tx, dishIDs); err != nil {
				return err
			}
		}
		return tx.Where("id = ?", meal.ID).Delete(&models.Meal{}).Error
	})
}

// createDish persists one new dish with its nutrition, ingredients and
// images at the given order
func (s *mealService) createDish(tx *gorm.DB, mealID string, order int, payload models.DishPayload) error {
	dish := models.Dish{
		MealID:      mealID,
		Name:        strings.TrimSpace(payload.Name),
		Description: payload.Description,
		Order:       order,
	}
	if err := tx.Omit("NutritionalValue", "Ingredients", "Images").Create(&dish).Error; err != nil {
		return err
	}

	if nv := CoerceNutrition(dish.ID, payload.NutritionalData); nv != nil {
		if err := tx.Create(nv).Error; err != nil {
			return err
		}
	}
	if err := s.attachIngredients(tx, dish.ID, payload.Ingredients); err != nil {
		return err
	}
	return s.persistImages(tx, dish.ID, payload.Images)
}

// updateDish applies the payload to an existing dish. Ingredient
// associations and images are replaced wholesale; the nutrition record is
// upserted and keeps its stored accuracy unless the payload provides one.
func (s *mealService) updateDish(tx *gorm.DB, change DishChange) error {
	dishID := change.Dish.ID.Value

	updates := map[string]interface{}{
		"name":        strings.TrimSpace(change.Dish.Name),
		"description": change.Dish.Description,
		"position":    change.Order,
	}
	if err := tx.Model(&models.Dish{}).Where("id = ?", dishID).Updates(updates).Error; err != nil {
		return err
	}

	if change.Dish.NutritionalData != nil {
		coerced := CoerceNutrition(dishID, change.Dish.NutritionalData)
		var existing models.NutritionalValue
		err := tx.Where("dish_id = ?", dishID).First(&existing).Error
		switch {
		case err == nil:
			existing.Calories = coerced.Calories
			existing.Proteins = coerced.Proteins
			existing.Carbohydrates = coerced.Carbohydrates
			existing.Fats = coerced.Fats
			existing.Fiber = coerced.Fiber
			existing.Sugars = coerced.Sugars
			existing.Sodium = coerced.Sodium
			existing.DataSource = coerced.DataSource
			if change.Dish.NutritionalData.Accuracy.Valid {
				existing.Accuracy = coerced.Accuracy
			}
			if err := tx.Save(&existing).Error; err != nil {
				return err
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := tx.Create(coerced).Error; err != nil {
				return err
			}
		default:
			return err
		}
	}

	if err := tx.Where("dish_id = ?", dishID).Delete(&models.DishIngredient{}).Error; err != nil {
		return err
	}
	if err := s.attachIngredients(tx, dishID, change.Dish.Ingredients); err != nil {
		return err
	}

	if err := tx.Where("dish_id = ?", dishID).Delete(&models.MealImage{}).Error; err != nil {
		return err
	}
	return s.persistImages(tx, dishID, change.Dish.Images)
}

// attachIngredients normalizes each raw record, resolves it against the
// catalog and creates the join rows. A record with a blank name is skipped
// so one bad ingredient does not abort the rest of the dish.
func (s *mealService) attachIngredients(tx *gorm.DB, dishID string, ingredients []models.IngredientPayload) error {
	position := 0
	for _, raw := range ingredients {
		normalized, err := NormalizeIngredient(raw)
		if errors.Is(err, ErrEmptyIngredientName) {
			log.WithField("dish_id", dishID).Warn("Skipping ingredient without a name")
			continue
		}
		if err != nil {
			return err
		}

		ingredient, _, err := s.ingredients.FindOrCreate(tx, normalized)
		if err != nil {
			return err
		}

		join := models.DishIngredient{
			DishID:       dishID,
			IngredientID: ingredient.ID,
			Position:     position,
			Quantity:     normalized.Quantity,
		}
		if err := tx.Omit("Ingredient").Create(&join).Error; err != nil {
			return err
		}
		position++
	}
	return nil
}

// persistImages normalizes the submitted image set (dense order, single
// main flag) and stores it for the dish
func (s *mealService) persistImages(tx *gorm.DB, dishID string, images []models.ImagePayload) error {
	set := make([]models.MealImage, 0, len(images))
	for _, payload := range images {
		img := models.MealImage{
			DishID:   &dishID,
			ImageURL: payload.ImageURL,
			IsMain:   payload.IsMain,
			Order:    payload.Order,
		}
		if payload.ID.Persisted {
			img.ID = payload.ID.Value
		}
		set = append(set, img)
	}
	set = NormalizeImageSet(set)

	for i := range set {
		if err := tx.Create(&set[i]).Error; err != nil {
			return err
		}
	}
	return nil
}

// deleteDishes removes the given dishes and everything they own. Catalog
// ingredients are shared and stay untouched.
func (s *mealService) deleteDishes(tx *gorm.DB, dishIDs []string) error {
	if err := tx.Where("dish_id IN ?", dishIDs).Delete(&models.DishIngredient{}).Error; err != nil {
		return err
	}
	if err := tx.Where("dish_id IN ?", dishIDs).Delete(&models.NutritionalValue{}).Error; err != nil {
		return err
	}
	if err := tx.Where("dish_id IN ?", dishIDs).Delete(&models.MealImage{}).Error; err != nil {
		return err
	}
	return tx.Where("id IN ?", dishIDs).Delete(&models.Dish{}).Error
}

// hydrated preloads the full dish graph in stable order
func (s *mealService) hydrated(conn *gorm.DB) *gorm.DB {
	return conn.
		Preload("Dishes", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Preload("Dishes.NutritionalValue").
		Preload("Dishes.Ingredients", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Preload("Dishes.Ingredients.Ingredient").
		Preload("Dishes.Images", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") })
}

func (s *mealService) loadMeal(userID uint, mealID string) (*MealWithNutrition, error) {
	var meal models.Meal
	err := s.hydrated(s.db).
		Where("id = ? AND user_id = ?", mealID, userID).
		First(&meal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &models.NotFoundError{Entity: "meal", ID: mealID}
		}
		return nil, err
	}
	return &MealWithNutrition{Meal: meal, Nutrition: AggregateNutrition(meal.Dishes)}, nil
}
