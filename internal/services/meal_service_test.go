package services

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mealdiary/meal-diary-api/internal/models"
)

const testUserID = uint(1)

func number(v float64) models.Number {
	return models.Number{Value: v, Valid: true}
}

func nutrition(calories, proteins, carbs, fats float64) *models.NutritionPayload {
	return &models.NutritionPayload{
		Calories:      number(calories),
		Proteins:      number(proteins),
		Carbohydrates: number(carbs),
		Fats:          number(fats),
	}
}

func basePayload(dishes ...models.DishPayload) models.MealPayload {
	return models.MealPayload{
		Date:     "2024-05-12",
		Time:     "13:30",
		MealType: models.MealTypeLunch,
		Dishes:   dishes,
	}
}

func TestCreateMeal_FullAggregate(t *testing.T) {
	db := setupTestDB(t)
	svc := NewMealService(db, NewIngredientService(db))

	payload := basePayload(
		models.DishPayload{
			Name:            "Lentil soup",
			NutritionalData: nutrition(500, 20, 50, 10),
			Ingredients: []models.IngredientPayload{
				{Name: "  Tomate ", PossibleAllergen: false, AllergenType: strPtr("gluten")},
				{Name: "   "}, // skipped, must not abort the dish
				{Name: "Lentils"},
			},
			Images: []models.ImagePayload{
				{ImageURL: "soup-far.jpg", Order: 1},
				{ImageURL: "soup-close.jpg", Order: 0},
			},
		},
		models.DishPayload{
			Name:            "Bread",
			NutritionalData: nutrition(300, 10, 30, 5),
			Ingredients: []models.IngredientPayload{
				{Name: "tomate"}, // same catalog entry as the soup's
			},
		},
	)

	meal, err := svc.CreateMeal(testUserID, payload)
	require.NoError(t, err)
	require.NotNil(t, meal)
	assert.NotEmpty(t, meal.ID)
	assert.Equal(t, testUserID, meal.UserID)
	assert.Equal(t, models.MealTypeLunch, meal.MealType)

	require.Len(t, meal.Dishes, 2)
	assert.Equal(t, "Lentil soup", meal.Dishes[0].Name)
	assert.Equal(t, 0, meal.Dishes[0].Order)
	assert.Equal(t, "Bread", meal.Dishes[1].Name)
	assert.Equal(t, 1, meal.Dishes[1].Order)

	// Aggregate nutrition over both dishes.
	require.NotNil(t, meal.Nutrition)
	assert.Equal(t, 800.0, meal.Nutrition.Totals.Calories)
	assert.Equal(t, 30.0, meal.Nutrition.Totals.Proteins)
	assert.Equal(t, 80.0, meal.Nutrition.Totals.Carbohydrates)
	assert.Equal(t, 15.0, meal.Nutrition.Totals.Fats)
	assert.Equal(t, 40.0, meal.Nutrition.DailyValuePercent.Calories)

	// Blank ingredient skipped, the rest normalized.
	soup := meal.Dishes[0]
	require.Len(t, soup.Ingredients, 2)
	assert.Equal(t, "tomate", soup.Ingredients[0].Ingredient.Name)
	assert.False(t, soup.Ingredients[0].Ingredient.CommonAllergen)
	assert.Nil(t, soup.Ingredients[0].Ingredient.AllergenType)

	// Both dishes reference one shared catalog row.
	var catalogCount int64
	require.NoError(t, db.Model(&models.Ingredient{}).Where("name = ?", "tomate").Count(&catalogCount).Error)
	assert.EqualValues(t, 1, catalogCount)

	// Image set ordered by requested order with exactly one main.
	require.Len(t, soup.Images, 2)
	assert.Equal(t, "soup-close.jpg", soup.Images[0].ImageURL)
	assert.True(t, soup.Images[0].IsMain)
	assert.Equal(t, "soup-far.jpg", soup.Images[1].ImageURL)
	assert.False(t, soup.Images[1].IsMain)
}

func TestCreateMeal_PreservesIngredientOrder(t *testing.T) {
	db := setupTestDB(t)
	svc := NewMealService(db, NewIngredientService(db))

	// Non-alphabetical submission order, with a skipped blank in the middle,
	// must come back exactly as entered.
	created, err := svc.CreateMeal(testUserID, basePayload(models.DishPayload{
		Name: "Stir fry",
		Ingredients: []models.IngredientPayload{
			{Name: "Zucchini"},
			{Name: "   "},
			{Name: "Apple"},
			{Name: "Mango"},
		},
	}))
	require.NoError(t, err)

	reloaded, err := svc.GetMeal(testUserID, created.ID)
	require.NoError(t, err)
	require.Len(t, reloaded.Dishes, 1)
	require.Len(t, reloaded.Dishes[0].Ingredients, 3)

	names := make([]string, 0, 3)
	for _, entry := range reloaded.Dishes[0].Ingredients {
		names = append(names, entry.Ingredient.Name)
	}
	assert.Equal(t, []string{"zucchini", "apple", "mango"}, names)
}

func TestCreateMeal_ValidationFailsBeforeAnyWrite(t *testing.T) {
	db := setupTestDB(t)
	svc := NewMealService(db, NewIngredientService(db))

	testCases := []struct {
		name   string
		mutate func(p *models.MealPayload)
		field  string
	}{
		{"bad date", func(p *models.MealPayload) { p.Date = "12/05/2024" }, "date"},
		{"bad time", func(p *models.MealPayload) { p.Time = "25:99" }, "time"},
		{"unknown meal type", func(p *models.MealPayload) { p.MealType = "ELEVENSES" }, "mealType"},
		{"no dishes", func(p *models.MealPayload) { p.Dishes = nil }, "dishes"},
		{"blank dish name", func(p *models.MealPayload) { p.Dishes[0].Name = "  " }, "dishes"},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			payload := basePayload(models.DishPayload{Name: "Salad"})
			tt.mutate(&payload)

			_, err := svc.CreateMeal(testUserID, payload)
			var validationErr *models.ValidationError
			require.True(t, errors.As(err, &validationErr))
			assert.Equal(t, tt.field, validationErr.Field)
		})
	}

	var mealCount int64
	require.NoError(t, db.Model(&models.Meal{}).Count(&mealCount).Error)
	assert.EqualValues(t, 0, mealCount)
}

func TestUpdateMeal_ReconcilesDroppedAndReordered(t *testing.T) {
	db := setupTestDB(t)
	svc := NewMealService(db, NewIngredientService(db))

	created, err := svc.CreateMeal(testUserID, basePayload(
		models.DishPayload{Name: "A", NutritionalData: nutrition(100, 1, 1, 1)},
		models.DishPayload{Name: "B", NutritionalData: nutrition(200, 2, 2, 2)},
		models.DishPayload{Name: "C", NutritionalData: nutrition(300, 3, 3, 3)},
	))
	require.NoError(t, err)
	require.Len(t, created.Dishes, 3)

	idA := created.Dishes[0].ID
	idB := created.Dishes[1].ID
	idC := created.Dishes[2].ID

	update := basePayload(
		models.DishPayload{
			ID:              models.EntityID{Value: idC, Persisted: true},
			Name:            "C updated",
			NutritionalData: nutrition(300, 3, 3, 3),
		},
		models.DishPayload{
			ID:   models.EntityID{Value: idA, Persisted: true},
			Name: "A updated",
		},
	)
	update.MealType = models.MealTypeDinner

	updated, err := svc.UpdateMeal(testUserID, created.ID, update)
	require.NoError(t, err)
	assert.Equal(t, models.MealTypeDinner, updated.MealType)

	require.Len(t, updated.Dishes, 2)
	assert.Equal(t, idC, updated.Dishes[0].ID)
	assert.Equal(t, "C updated", updated.Dishes[0].Name)
	assert.Equal(t, 0, updated.Dishes[0].Order)
	assert.Equal(t, idA, updated.Dishes[1].ID)
	assert.Equal(t, 1, updated.Dishes[1].Order)

	// B and everything it owned is gone.
	var dishCount int64
	require.NoError(t, db.Model(&models.Dish{}).Where("id = ?", idB).Count(&dishCount).Error)
	assert.EqualValues(t, 0, dishCount)
	var nvCount int64
	require.NoError(t, db.Model(&models.NutritionalValue{}).Where("dish_id = ?", idB).Count(&nvCount).Error)
	assert.EqualValues(t, 0, nvCount)

	// A's nutrition record survives untouched by the payload that omitted it.
	require.NotNil(t, updated.Dishes[1].NutritionalValue)
	assert.Equal(t, 100.0, updated.Dishes[1].NutritionalValue.Calories)
}

func TestUpdateMeal_CreatesNewDishesFromUnsavedIDs(t *testing.T) {
	db := setupTestDB(t)
	svc := NewMealService(db, NewIngredientService(db))

	created, err := svc.CreateMeal(testUserID, basePayload(models.DishPayload{Name: "Existing"}))
	require.NoError(t, err)

	update := basePayload(
		models.DishPayload{Name: "Fresh one"}, // no id: create
		models.DishPayload{
			ID:   models.EntityID{Value: created.Dishes[0].ID, Persisted: true},
			Name: "Existing",
		},
	)

	updated, err := svc.UpdateMeal(testUserID, created.ID, update)
	require.NoError(t, err)
	require.Len(t, updated.Dishes, 2)
	assert.Equal(t, "Fresh one", updated.Dishes[0].Name)
	assert.NotEqual(t, created.Dishes[0].ID, updated.Dishes[0].ID)
	assert.Equal(t, created.Dishes[0].ID, updated.Dishes[1].ID)
}

func TestUpdateMeal_DuplicateDishIDRejected(t *testing.T) {
	db := setupTestDB(t)
	svc := NewMealService(db, NewIngredientService(db))

	created, err := svc.CreateMeal(testUserID, basePayload(models.DishPayload{Name: "Solo"}))
	require.NoError(t, err)
	dishID := created.Dishes[0].ID

	update := basePayload(
		models.DishPayload{ID: models.EntityID{Value: dishID, Persisted: true}, Name: "One"},
		models.DishPayload{ID: models.EntityID{Value: dishID, Persisted: true}, Name: "Two"},
	)

	_, err = svc.UpdateMeal(testUserID, created.ID, update)
	var conflictErr *models.ConflictError
	require.True(t, errors.As(err, &conflictErr))

	// Nothing changed.
	reloaded, err := svc.GetMeal(testUserID, created.ID)
	require.NoError(t, err)
	require.Len(t, reloaded.Dishes, 1)
	assert.Equal(t, "Solo", reloaded.Dishes[0].Name)
}

func TestUpdateMeal_RollsBackOnPersistenceFailure(t *testing.T) {
	db := setupTestDB(t)
	svc := NewMealService(db, NewIngredientService(db))

	created, err := svc.CreateMeal(testUserID, basePayload(models.DishPayload{Name: "Original"}))
	require.NoError(t, err)

	// Two new dishes whose images collide on the same primary key: the
	// second insert fails after the first dish was already written, so the
	// whole update must roll back.
	update := basePayload(
		models.DishPayload{
			Name:   "First new",
			Images: []models.ImagePayload{{ID: models.EntityID{Value: "dup-img", Persisted: true}, ImageURL: "a.jpg"}},
		},
		models.DishPayload{
			Name:   "Second new",
			Images: []models.ImagePayload{{ID: models.EntityID{Value: "dup-img", Persisted: true}, ImageURL: "b.jpg"}},
		},
	)

	_, err = svc.UpdateMeal(testUserID, created.ID, update)
	require.Error(t, err)

	reloaded, err := svc.GetMeal(testUserID, created.ID)
	require.NoError(t, err)
	require.Len(t, reloaded.Dishes, 1)
	assert.Equal(t, "Original", reloaded.Dishes[0].Name)

	var dishCount int64
	require.NoError(t, db.Model(&models.Dish{}).Count(&dishCount).Error)
	assert.EqualValues(t, 1, dishCount)
}

func TestUpdateMeal_NotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := NewMealService(db, NewIngredientService(db))

	created, err := svc.CreateMeal(testUserID, basePayload(models.DishPayload{Name: "Mine"}))
	require.NoError(t, err)

	var notFoundErr *models.NotFoundError

	_, err = svc.UpdateMeal(testUserID, "no-such-meal", basePayload(models.DishPayload{Name: "X"}))
	require.True(t, errors.As(err, &notFoundErr))

	// Another user cannot touch this meal.
	otherUser := uint(99)
	_, err = svc.UpdateMeal(otherUser, created.ID, basePayload(models.DishPayload{Name: "X"}))
	require.True(t, errors.As(err, &notFoundErr))
}

func TestDeleteMeal_CascadesButKeepsCatalog(t *testing.T) {
	db := setupTestDB(t)
	svc := NewMealService(db, NewIngredientService(db))

	created, err := svc.CreateMeal(testUserID, basePayload(
		models.DishPayload{
			Name:            "Paella",
			NutritionalData: nutrition(650, 25, 80, 20),
			Ingredients:     []models.IngredientPayload{{Name: "rice"}, {Name: "shrimp", PossibleAllergen: true, AllergenType: strPtr("shellfish")}},
			Images:          []models.ImagePayload{{ImageURL: "paella.jpg"}},
		},
	))
	require.NoError(t, err)

	require.NoError(t, svc.DeleteMeal(testUserID, created.ID))

	counts := map[string]interface{}{
		"meals":             &models.Meal{},
		"dishes":            &models.Dish{},
		"nutritional_value": &models.NutritionalValue{},
		"dish_ingredients":  &models.DishIngredient{},
		"meal_images":       &models.MealImage{},
	}
	for name, model := range counts {
		var count int64
		require.NoError(t, db.Model(model).Count(&count).Error)
		assert.EqualValuesf(t, 0, count, "%s not cleaned up", name)
	}

	// The shared catalog is untouched.
	var ingredientCount int64
	require.NoError(t, db.Model(&models.Ingredient{}).Count(&ingredientCount).Error)
	assert.EqualValues(t, 2, ingredientCount)
}

func TestDeleteMeal_NotFoundForOtherUser(t *testing.T) {
	db := setupTestDB(t)
	svc := NewMealService(db, NewIngredientService(db))

	created, err := svc.CreateMeal(testUserID, basePayload(models.DishPayload{Name: "Mine"}))
	require.NoError(t, err)

	err = svc.DeleteMeal(uint(99), created.ID)
	var notFoundErr *models.NotFoundError
	require.True(t, errors.As(err, &notFoundErr))
}

func TestListMeals_PaginatesNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	svc := NewMealService(db, NewIngredientService(db))

	for i := 1; i <= 3; i++ {
		payload := basePayload(models.DishPayload{Name: fmt.Sprintf("Dish %d", i)})
		payload.Date = fmt.Sprintf("2024-05-%02d", i*10)
		_, err := svc.CreateMeal(testUserID, payload)
		require.NoError(t, err)
	}

	meals, meta, err := svc.ListMeals(testUserID, 1, 2)
	require.NoError(t, err)
	require.Len(t, meals, 2)
	assert.EqualValues(t, 3, meta.Total)
	assert.Equal(t, 2, meta.Pages)
	assert.Equal(t, "Dish 3", meals[0].Dishes[0].Name)
	assert.Equal(t, "Dish 2", meals[1].Dishes[0].Name)

	second, meta, err := svc.ListMeals(testUserID, 2, 2)
	require.NoError(t, err)
	require.Len(t, second, 1)
	assert.Equal(t, "Dish 1", second[0].Dishes[0].Name)

	// Other users see nothing.
	foreign, meta, err := svc.ListMeals(uint(42), 1, 10)
	require.NoError(t, err)
	assert.Empty(t, foreign)
	assert.EqualValues(t, 0, meta.Total)
}

func TestGetMeal_HydratesEverything(t *testing.T) {
	db := setupTestDB(t)
	svc := NewMealService(db, NewIngredientService(db))

	created, err := svc.CreateMeal(testUserID, basePayload(
		models.DishPayload{
			Name:            "Omelette",
			NutritionalData: nutrition(350, 22, 3, 25),
			Ingredients:     []models.IngredientPayload{{Name: "Eggs", PossibleAllergen: true, AllergenType: strPtr("egg")}},
			Images:          []models.ImagePayload{{ImageURL: "omelette.jpg"}},
		},
	))
	require.NoError(t, err)

	meal, err := svc.GetMeal(testUserID, created.ID)
	require.NoError(t, err)
	require.Len(t, meal.Dishes, 1)

	dish := meal.Dishes[0]
	require.NotNil(t, dish.NutritionalValue)
	assert.Equal(t, 350.0, dish.NutritionalValue.Calories)
	require.Len(t, dish.Ingredients, 1)
	assert.Equal(t, "eggs", dish.Ingredients[0].Ingredient.Name)
	assert.True(t, dish.Ingredients[0].Ingredient.CommonAllergen)
	require.Len(t, dish.Images, 1)
	assert.True(t, dish.Images[0].IsMain)
	require.NotNil(t, meal.Nutrition)
	assert.Equal(t, 1, meal.Nutrition.DishesWithData)
}
