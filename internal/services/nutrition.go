package services

import (
	"github.com/mealdiary/meal-diary-api/internal/models"
)

// Standard single-day reference intake used for daily-value percentages
const (
	referenceCalories      = 2000.0 // kcal
	referenceProteins      = 50.0   // g
	referenceCarbohydrates = 275.0  // g
	referenceFats          = 78.0   // g
)

const defaultAccuracy = 70.0

// NutritionTotals sums each nutritional field across the dishes of a meal
type NutritionTotals struct {
	Calories      float64 `json:"calories"`
	Proteins      float64 `json:"proteins"`
	Carbohydrates float64 `json:"carbohydrates"`
	Fats          float64 `json:"fats"`
	Fiber         float64 `json:"fiber"`
	Sugars        float64 `json:"sugars"`
	Sodium        float64 `json:"sodium"`
}

// DailyValuePercent expresses the core totals as a percentage of the
// reference daily intake
type DailyValuePercent struct {
	Calories      float64 `json:"calories"`
	Proteins      float64 `json:"proteins"`
	Carbohydrates float64 `json:"carbohydrates"`
	Fats          float64 `json:"fats"`
}

// NutritionSummary is the meal-level aggregate returned alongside a
// hydrated meal
type NutritionSummary struct {
	Totals            NutritionTotals   `json:"totals"`
	DailyValuePercent DailyValuePercent `json:"dailyValuePercent"`
	DishesWithData    int               `json:"dishesWithData"`
}

// AggregateNutrition sums nutritional data across the given dishes and
// derives daily-value percentages. It returns nil when no dish carries
// nutritional data, so callers can tell "no data" apart from zero totals.
// Summation is commutative, so the result is independent of dish order and
// recomputation is idempotent.
func AggregateNutrition(dishes []models.Dish) *NutritionSummary {
	summary := &NutritionSummary{}
	for _, dish := range dishes {
		nv := dish.NutritionalValue
		if nv == nil {
			continue
		}
		summary.DishesWithData++
		summary.Totals.Calories += nv.Calories
		summary.Totals.Proteins += nv.Proteins
		summary.Totals.Carbohydrates += nv.Carbohydrates
		summary.Totals.Fats += nv.Fats
		if nv.Fiber != nil {
			summary.Totals.Fiber += *nv.Fiber
		}
		if nv.Sugars != nil {
			summary.Totals.Sugars += *nv.Sugars
		}
		if nv.Sodium != nil {
			summary.Totals.Sodium += *nv.Sodium
		}
	}
	if summary.DishesWithData == 0 {
		return nil
	}

	summary.DailyValuePercent = DailyValuePercent{
		Calories:      summary.Totals.Calories / referenceCalories * 100,
		Proteins:      summary.Totals.Proteins / referenceProteins * 100,
		Carbohydrates: summary.Totals.Carbohydrates / referenceCarbohydrates * 100,
		Fats:          summary.Totals.Fats / referenceFats * 100,
	}
	return summary
}

// CoerceNutrition turns the untyped nutrition payload of one dish into a
// storable record. Required fields that failed to parse become 0, optional
// fields stay null, and accuracy falls back to the default and is clamped
// to 0–100. Returns nil when the dish carries no nutritional data at all.
func CoerceNutrition(dishID string, payload *models.NutritionPayload) *models.NutritionalValue {
	if payload == nil {
		return nil
	}

	accuracy := defaultAccuracy
	if payload.Accuracy.Valid {
		accuracy = payload.Accuracy.Value
	}
	if accuracy < 0 {
		accuracy = 0
	} else if accuracy > 100 {
		accuracy = 100
	}

	return &models.NutritionalValue{
		DishID:        dishID,
		Calories:      payload.Calories.OrZero(),
		Proteins:      payload.Proteins.OrZero(),
		Carbohydrates: payload.Carbohydrates.OrZero(),
		Fats:          payload.Fats.OrZero(),
		Fiber:         payload.Fiber.Ptr(),
		Sugars:        payload.Sugars.Ptr(),
		Sodium:        payload.Sodium.Ptr(),
		DataSource:    "AI",
		Accuracy:      accuracy,
	}
}
