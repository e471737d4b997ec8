package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/mealdiary/meal-diary-api/internal/models"
	"github.com/mealdiary/meal-diary-api/internal/services"
)

// MealController handles HTTP requests related to meals
type MealController interface {
	// ListMeals retrieves the authenticated user's meals, paginated
	ListMeals(c *gin.Context)
	// GetMeal retrieves a single meal by its ID
	GetMeal(c *gin.Context)
	// CreateMeal creates a new meal with its dishes
	CreateMeal(c *gin.Context)
	// UpdateMeal replaces an existing meal with the submitted payload
	UpdateMeal(c *gin.Context)
	// DeleteMeal deletes a meal and everything it owns
	DeleteMeal(c *gin.Context)
}

type mealController struct {
	service services.MealService
}

// NewMealController creates a new instance of MealController
func NewMealController(service services.MealService) MealController {
	return &mealController{service: service}
}

// currentUserID extracts the authenticated user id set by the JWT middleware
func currentUserID(ctx *gin.Context) (uint, bool) {
	value, exists := ctx.Get("userID")
	if !exists {
		ctx.JSON(http.StatusUnauthorized, models.NewAPIError(models.ErrUnauthorized, "User not authenticated"))
		return 0, false
	}
	userID, ok := value.(uint)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, models.NewAPIError(models.ErrUnauthorized, "User not authenticated"))
		return 0, false
	}
	return userID, true
}

// respondServiceError maps service-layer errors to HTTP responses
func respondServiceError(ctx *gin.Context, err error) {
	var validationErr *models.ValidationError
	var notFoundErr *models.NotFoundError
	var conflictErr *models.ConflictError
	var analysisErr *models.AnalysisError

	switch {
	case errors.As(err, &validationErr):
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrValidationFailed, validationErr.Error()))
	case errors.As(err, &notFoundErr):
		ctx.JSON(http.StatusNotFound, models.NewAPIError(models.ErrMealNotFound, notFoundErr.Error()))
	case errors.As(err, &conflictErr):
		ctx.JSON(http.StatusConflict, models.NewAPIError(models.ErrConflict, conflictErr.Error()))
	case errors.As(err, &analysisErr):
		log.WithError(err).Warn("Analysis collaborator failed")
		ctx.JSON(http.StatusBadGateway, models.NewAPIError(models.ErrAnalysisFailed, "Analysis failed, try again"))
	default:
		log.WithError(err).Error("Unexpected service error")
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Something went wrong"))
	}
}

// ListMeals godoc
// @Summary List meals
// @Description Get the authenticated user's meals, newest first
// @Tags meals
// @Accept json
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size (default 10)"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/meals [get]
func (c *mealController) ListMeals(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "10"))

	meals, meta, err := c.service.ListMeals(userID, page, limit)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"data": meals, "meta": meta})
}

// GetMeal godoc
// @Summary Get meal by ID
// @Description Get a single hydrated meal with aggregate nutrition
// @Tags meals
// @Accept json
// @Produce json
// @Param id path string true "Meal ID"
// @Success 200 {object} services.MealWithNutrition
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/meals/{id} [get]
func (c *mealController) GetMeal(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	meal, err := c.service.GetMeal(userID, ctx.Param("id"))
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, meal)
}

// CreateMeal godoc
// @Summary Create a meal
// @Description Create a meal with its dishes, ingredients, nutrition and images
// @Tags meals
// @Accept json
// @Produce json
// @Param meal body models.MealPayload true "Meal payload"
// @Success 201 {object} services.MealWithNutrition
// @Failure 400 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/meals [post]
func (c *mealController) CreateMeal(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var payload models.MealPayload
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, "Invalid request body"))
		return
	}

	meal, err := c.service.CreateMeal(userID, payload)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, meal)
}

// UpdateMeal godoc
// @Summary Update a meal
// @Description Full-replace update: dishes missing from the payload are deleted
// @Tags meals
// @Accept json
// @Produce json
// @Param id path string true "Meal ID"
// @Param meal body models.MealPayload true "Meal payload"
// @Success 200 {object} services.MealWithNutrition
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Failure 409 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/meals/{id} [put]
func (c *mealController) UpdateMeal(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var payload models.MealPayload
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, "Invalid request body"))
		return
	}

	meal, err := c.service.UpdateMeal(userID, ctx.Param("id"), payload)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, meal)
}

// DeleteMeal godoc
// @Summary Delete a meal
// @Description Delete a meal and all of its dishes
// @Tags meals
// @Accept json
// @Produce json
// @Param id path string true "Meal ID"
// @Success 204
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/meals/{id} [delete]
func (c *mealController) DeleteMeal(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	if err := c.service.DeleteMeal(userID, ctx.Param("id")); err != nil {
		respondServiceError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
