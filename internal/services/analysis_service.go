package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/mealdiary/meal-diary-api/internal/models"
)

// AnalysisService is the client for the external AI collaborator that turns
// an image and/or description into ingredients and estimated nutrition. The
// response is treated as untyped input: everything numeric passes through
// the coercion boundary and ingredient records are normalized before use.
type AnalysisService interface {
	Analyze(ctx context.Context, req models.AnalysisRequest) (*models.AnalysisResult, error)
}

type analysisService struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewAnalysisService creates a new instance of AnalysisService
func NewAnalysisService(baseURL, apiKey string) AnalysisService {
	return &analysisService{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

func (s *analysisService) Analyze(ctx context.Context, req models.AnalysisRequest) (*models.AnalysisResult, error) {
	if req.Image == "" && req.Description == "" {
		return nil, models.NewValidationError("image", "an image or a description is required")
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if s.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return nil, &models.AnalysisError{Message: "analysis request failed", Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &models.AnalysisError{
			Message: fmt.Sprintf("analysis service returned status %d: %s", resp.StatusCode, string(payload)),
		}
	}

	var result models.AnalysisResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, &models.AnalysisError{Message: "analysis response could not be decoded", Cause: err}
	}
	if result.DishName == "" {
		result.DishName = "Unknown dish"
	}
	return &result, nil
}
