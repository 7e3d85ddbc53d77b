package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"familia/internal/finance"
	"familia/internal/models"
	"familia/internal/services"
)

// ReportHandler serves the month dashboard.
type ReportHandler struct {
	reportService services.ReportServicer
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService services.ReportServicer) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// monthQuery selects the month and, optionally, one family member.
type monthQuery struct {
	Month  string        `form:"month" binding:"required,year_month"`
	Member models.Member `form:"member" binding:"omitempty,member_filter"`
}

func (q monthQuery) filter() finance.Filter {
	return finance.Filter{Month: q.Month, Member: q.Member}
}

func bindMonthQuery(c *gin.Context) (monthQuery, bool) {
	var q monthQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondWithError(c, invalidInput(err))
		return q, false
	}
	return q, true
}

// GetMonthlyReport handles the dashboard totals
// @Summary     Monthly report
// @Description Totals, expense breakdown by category and member, daily flow, and the fixed/variable split for one month
// @Tags        reports
// @Produce     json
// @Security    ApiKeyAuth
// @Param       month  query string true  "Month (YYYY-MM)"
// @Param       member query string false "Family member, or Todos (default)"
// @Success     200 {object} finance.Stats
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /reports/monthly [get]
func (h *ReportHandler) GetMonthlyReport(c *gin.Context) {
	q, ok := bindMonthQuery(c)
	if !ok {
		return
	}

	stats, err := h.reportService.MonthlyReport(c.Request.Context(), q.filter())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// GetBudgetSplit handles the fixed versus variable view
// @Summary     Fixed and variable expenses
// @Tags        reports
// @Produce     json
// @Security    ApiKeyAuth
// @Param       month  query string true  "Month (YYYY-MM)"
// @Param       member query string false "Family member, or Todos (default)"
// @Success     200 {object} finance.BudgetSplit
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /reports/budget [get]
func (h *ReportHandler) GetBudgetSplit(c *gin.Context) {
	q, ok := bindMonthQuery(c)
	if !ok {
		return
	}

	txs, err := h.reportService.MonthTransactions(c.Request.Context(), q.filter())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, finance.SplitFixedVariable(txs))
}
