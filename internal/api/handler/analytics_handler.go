package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lamare/creator-studio/internal/core/domain"
)

// AnalyticsHandler serves the dashboard's fixed performance dataset.
type AnalyticsHandler struct{}

func NewAnalyticsHandler() *AnalyticsHandler {
	return &AnalyticsHandler{}
}

type analyticsResponse struct {
	Points  []domain.AnalyticsPoint `json:"points"`
	Summary string                  `json:"summary"`
}

// Get returns the seven-day dataset and the stats summary.
//
// @Summary      Get performance analytics
// @Tags         analytics
// @Produce      json
// @Success      200  {object}  analyticsResponse
// @Router       /v1/analytics [get]
func (h *AnalyticsHandler) Get(c echo.Context) error {
	return c.JSON(http.StatusOK, analyticsResponse{
		Points:  domain.SampleAnalytics(),
		Summary: domain.DefaultStatsSummary,
	})
}
