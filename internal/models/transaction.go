package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the database representation of a ledger record row.
// Counterparty is NULL for non-debt kinds.
type Transaction struct {
	TransactionID string
	UserID        string
	Kind          string
	Amount        decimal.Decimal
	Category      string
	Description   *string
	Counterparty  *string
	OccurredAt    time.Time
	AuditFields
}
