package dto

import (
	"time"

	"github.com/fintrackr/finance_tracker_app/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

func init() {
	// Register the kind enum with gin's validator so binding rejects unknown
	// kinds before they reach the service layer.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("txkind", func(fl validator.FieldLevel) bool {
			return domain.TransactionKind(fl.Field().String()).IsValid()
		})
	}
}

// CreateTransactionRequest is the payload for recording a ledger entry.
// Amount is validated in the domain (zero is legal, negative is not), so it
// carries no binding tag.
type CreateTransactionRequest struct {
	Kind         string          `json:"kind" binding:"required,txkind"`
	Amount       decimal.Decimal `json:"amount"`
	Category     string          `json:"category" binding:"required"`
	Description  string          `json:"description"`
	Counterparty string          `json:"counterparty"`
	OccurredAt   *time.Time      `json:"occurredAt"` // Defaults to now when omitted
}

// ListTransactionsParams defines query parameters for listing transactions.
// Dates are RFC3339 or plain 2006-01-02.
type ListTransactionsParams struct {
	StartDate string `form:"startDate"`
	EndDate   string `form:"endDate"`
	Kind      string `form:"kind" binding:"omitempty,txkind"`
	Sort      string `form:"sort,default=desc" binding:"omitempty,oneof=asc desc"`
}

// SettleDebtRequest is the payload for settling a counterparty position.
type SettleDebtRequest struct {
	Counterparty string          `json:"counterparty" binding:"required"`
	Amount       decimal.Decimal `json:"amount"`
}

// TransactionResponse is the wire representation of one ledger record.
type TransactionResponse struct {
	TransactionID string          `json:"transactionID"`
	Kind          string          `json:"kind"`
	Amount        decimal.Decimal `json:"amount"`
	Category      string          `json:"category"`
	Description   string          `json:"description,omitempty"`
	Counterparty  string          `json:"counterparty,omitempty"`
	OccurredAt    time.Time       `json:"occurredAt"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// ListTransactionsResponse wraps the list of transactions.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// ToTransactionResponse converts a domain.Transaction to its response DTO.
// Amounts are rounded to 2 decimal places at this reporting boundary.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: txn.TransactionID,
		Kind:          string(txn.Kind),
		Amount:        txn.Amount.Round(2),
		Category:      txn.Category,
		Description:   txn.Description,
		Counterparty:  txn.Counterparty,
		OccurredAt:    txn.OccurredAt,
		CreatedAt:     txn.CreatedAt,
	}
}

// ToListTransactionsResponse converts a slice of domain transactions.
func ToListTransactionsResponse(txns []domain.Transaction) ListTransactionsResponse {
	responses := make([]TransactionResponse, len(txns))
	for i := range txns {
		responses[i] = ToTransactionResponse(&txns[i])
	}
	return ListTransactionsResponse{Transactions: responses}
}
