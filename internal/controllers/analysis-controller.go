package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mealdiary/meal-diary-api/internal/models"
	"github.com/mealdiary/meal-diary-api/internal/services"
)

// AnalysisController exposes the AI dish analysis endpoint
type AnalysisController interface {
	// AnalyzeDish forwards an image/description to the analysis collaborator
	AnalyzeDish(c *gin.Context)
}

type analysisController struct {
	service services.AnalysisService
}

// NewAnalysisController creates a new instance of AnalysisController
func NewAnalysisController(service services.AnalysisService) AnalysisController {
	return &analysisController{service: service}
}

// AnalyzeDish godoc
// @Summary Analyze a dish
// @Description Estimate ingredients and nutrition from an image and/or description
// @Tags analysis
// @Accept json
// @Produce json
// @Param request body models.AnalysisRequest true "Analysis request"
// @Success 200 {object} models.AnalysisResult
// @Failure 400 {object} models.APIError
// @Failure 502 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/analyze [post]
func (c *analysisController) AnalyzeDish(ctx *gin.Context) {
	if _, ok := currentUserID(ctx); !ok {
		return
	}

	var req models.AnalysisRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, "Invalid request body"))
		return
	}

	result, err := c.service.Analyze(ctx.Request.Context(), req)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}
