package handlers

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"github.com/fintrackr/finance_tracker_app/internal/core/domain"
	portsrepo "github.com/fintrackr/finance_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/fintrackr/finance_tracker_app/internal/core/ports/services"
	"github.com/fintrackr/finance_tracker_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// TransactionHandler handles ledger record requests.
type TransactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(ts portssvc.TransactionSvcFacade) *TransactionHandler {
	return &TransactionHandler{transactionService: ts}
}

// registerTransactionRoutes sets up the transaction routes.
func registerTransactionRoutes(rg *gin.RouterGroup, ts portssvc.TransactionSvcFacade) {
	h := NewTransactionHandler(ts)

	transactions := rg.Group("/transactions")
	{
		transactions.POST("", h.CreateTransaction)
		transactions.GET("", h.ListTransactions)
		transactions.GET("/export", h.ExportTransactions)
		transactions.GET("/:id", h.GetTransaction)
		transactions.DELETE("/:id", h.DeleteTransaction)
	}
}

// parseDateParam accepts RFC3339 timestamps or plain dates. Plain end dates
// are stretched to the end of the day so the window stays inclusive.
func parseDateParam(value string, endOfDay bool) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return &t, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q, expected RFC3339 or YYYY-MM-DD", value)
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t, nil
}

// buildTransactionFilter converts validated query params into a repository filter.
func buildTransactionFilter(params dto.ListTransactionsParams) (portsrepo.TransactionFilter, error) {
	filter := portsrepo.TransactionFilter{
		SortAscending: params.Sort == "asc",
	}

	from, err := parseDateParam(params.StartDate, false)
	if err != nil {
		return filter, err
	}
	filter.From = from

	to, err := parseDateParam(params.EndDate, true)
	if err != nil {
		return filter, err
	}
	filter.To = to

	if params.Kind != "" {
		kind := domain.TransactionKind(params.Kind)
		filter.Kind = &kind
	}

	return filter, nil
}

// CreateTransaction godoc
// @Summary Record a transaction
// @Description Records an income, expense or debt movement for the caller.
// @Tags transactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param transaction body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	txn, err := h.transactionService.CreateTransaction(c.Request.Context(), userID, req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// ListTransactions godoc
// @Summary List transactions
// @Description Lists the caller's transactions, optionally filtered by date window and kind.
// @Tags transactions
// @Produce json
// @Security BearerAuth
// @Param startDate query string false "Window start (RFC3339 or YYYY-MM-DD)"
// @Param endDate query string false "Window end (RFC3339 or YYYY-MM-DD, inclusive)"
// @Param kind query string false "Transaction kind filter"
// @Param sort query string false "Sort order: asc or desc (default desc)"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /transactions [get]
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	filter, err := buildTransactionFilter(params)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	txns, err := h.transactionService.ListTransactions(c.Request.Context(), userID, filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListTransactionsResponse(txns))
}

// ExportTransactions godoc
// @Summary Export transactions as CSV
// @Description Streams the caller's transactions as a CSV file, oldest first.
// @Tags transactions
// @Produce text/csv
// @Security BearerAuth
// @Param startDate query string false "Window start (RFC3339 or YYYY-MM-DD)"
// @Param endDate query string false "Window end (RFC3339 or YYYY-MM-DD, inclusive)"
// @Success 200 {string} string "CSV payload"
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /transactions/export [get]
func (h *TransactionHandler) ExportTransactions(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	filter, err := buildTransactionFilter(params)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	filter.SortAscending = true

	txns, err := h.transactionService.ListTransactions(c.Request.Context(), userID, filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="transactions.csv"`)

	w := csv.NewWriter(c.Writer)
	_ = w.Write([]string{"Date", "Kind", "Category", "Amount", "Counterparty", "Description"})
	for _, txn := range txns {
		_ = w.Write([]string{
			txn.OccurredAt.Format(time.RFC3339),
			string(txn.Kind),
			txn.Category,
			txn.Amount.Round(2).String(),
			txn.Counterparty,
			txn.Description,
		})
	}
	w.Flush()
}

// GetTransaction godoc
// @Summary Get a transaction
// @Description Returns one of the caller's transactions by ID.
// @Tags transactions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /transactions/{id} [get]
func (h *TransactionHandler) GetTransaction(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	txn, err := h.transactionService.GetTransaction(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// DeleteTransaction godoc
// @Summary Delete a transaction
// @Description Permanently removes one of the caller's transactions.
// @Tags transactions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Transaction ID"
// @Success 204
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	if err := h.transactionService.DeleteTransaction(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
