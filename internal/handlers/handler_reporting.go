package handlers

import (
	"net/http"
	"strconv"
	"time"

	portssvc "github.com/fintrackr/finance_tracker_app/internal/core/ports/services"
	"github.com/fintrackr/finance_tracker_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// ReportingHandler handles aggregated ledger views.
type ReportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

// NewReportingHandler creates a new ReportingHandler.
func NewReportingHandler(rs portssvc.ReportingSvcFacade) *ReportingHandler {
	return &ReportingHandler{reportingService: rs}
}

// registerReportingRoutes sets up the reporting routes.
func registerReportingRoutes(rg *gin.RouterGroup, rs portssvc.ReportingSvcFacade) {
	h := NewReportingHandler(rs)

	reports := rg.Group("/reports")
	{
		reports.GET("/totals", h.GetTotals)
		reports.GET("/summary", h.GetYearlySummary)
		reports.GET("/debts", h.GetDebtLedger)
		reports.POST("/debts/settle", h.SettleDebt)
	}
}

// GetTotals godoc
// @Summary Period totals
// @Description Computes per-kind totals, the cash balance and budget progress
// @Description over an optional inclusive date window.
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param from query string false "Window start (RFC3339 or YYYY-MM-DD)"
// @Param to query string false "Window end (RFC3339 or YYYY-MM-DD, inclusive)"
// @Success 200 {object} dto.TotalsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /reports/totals [get]
func (h *ReportingHandler) GetTotals(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	from, err := parseDateParam(c.Query("from"), false)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	to, err := parseDateParam(c.Query("to"), true)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	totals, budgetLimit, err := h.reportingService.GetTotals(c.Request.Context(), userID, from, to)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTotalsResponse(totals, budgetLimit))
}

// GetYearlySummary godoc
// @Summary Yearly chart feed
// @Description Returns twelve monthly income/expense points plus the category
// @Description breakdown for one calendar year. Defaults to the current year.
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param year query int false "Calendar year (default current)"
// @Success 200 {object} dto.YearlySummaryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /reports/summary [get]
func (h *ReportingHandler) GetYearlySummary(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	year := time.Now().Year()
	if yearParam := c.Query("year"); yearParam != "" {
		parsed, err := strconv.Atoi(yearParam)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid year parameter"})
			return
		}
		year = parsed
	}

	breakdown, err := h.reportingService.GetYearlyBreakdown(c.Request.Context(), userID, year)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToYearlySummaryResponse(breakdown))
}

// GetDebtLedger godoc
// @Summary Debt ledger
// @Description Returns per-counterparty net positions over the caller's full history.
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.DebtLedgerResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /reports/debts [get]
func (h *ReportingHandler) GetDebtLedger(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	ledger, err := h.reportingService.GetDebtLedger(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToDebtLedgerResponse(ledger))
}

// SettleDebt godoc
// @Summary Settle a debt position
// @Description Records a settling transaction against a counterparty's net position.
// @Tags reports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param settlement body dto.SettleDebtRequest true "Settlement details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /reports/debts/settle [post]
func (h *ReportingHandler) SettleDebt(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req dto.SettleDebtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	txn, err := h.reportingService.SettleDebt(c.Request.Context(), userID, req.Counterparty, req.Amount)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}
