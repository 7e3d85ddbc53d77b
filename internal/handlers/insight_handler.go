package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "familia/internal/errors"
	"familia/internal/insight"
	"familia/internal/services"
)

// InsightHandler serves the written summary of a month.
type InsightHandler struct {
	reportService  services.ReportServicer
	insightService services.InsightServicer
}

// NewInsightHandler creates a new InsightHandler. insightService is nil when
// no model API key is configured.
func NewInsightHandler(reportService services.ReportServicer, insightService services.InsightServicer) *InsightHandler {
	return &InsightHandler{reportService: reportService, insightService: insightService}
}

// InsightResponse is the advisor's text for one month.
type InsightResponse struct {
	Month   string `json:"month" example:"março de 2024"`
	Insight string `json:"insight"`
}

// GetInsights handles the AI summary
// @Summary     Spending insights
// @Description Ask the model for a short Portuguese summary of the month with saving tips. Fixed messages are returned when there is no data or the model call fails. When no model key is configured the route answers 503 NOT_CONFIGURED instead.
// @Tags        insights
// @Produce     json
// @Security    ApiKeyAuth
// @Param       month  query string true  "Month (YYYY-MM)"
// @Param       member query string false "Family member, or Todos (default)"
// @Success     200 {object} InsightResponse
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     429 {object} ErrorResponse "Too many requests"
// @Failure     503 {object} ErrorResponse "Insights not configured"
// @Router      /insights [get]
func (h *InsightHandler) GetInsights(c *gin.Context) {
	if h.insightService == nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrServiceNotConfigured, "Insights are not configured"))
		return
	}

	q, ok := bindMonthQuery(c)
	if !ok {
		return
	}

	txs, err := h.reportService.MonthTransactions(c.Request.Context(), q.filter())
	if err != nil {
		respondWithError(c, err)
		return
	}

	label := insight.MonthLabel(q.Month)
	c.JSON(http.StatusOK, InsightResponse{
		Month:   label,
		Insight: h.insightService.GenerateInsights(c.Request.Context(), txs, label),
	})
}
