package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind is the cash-flow effect of a ledger record.
type TransactionKind string

const (
	KindIncome    TransactionKind = "income"
	KindExpense   TransactionKind = "expense"
	KindLent      TransactionKind = "lent"
	KindRepayment TransactionKind = "repayment"
	KindBorrowed  TransactionKind = "borrowed"
	KindPayback   TransactionKind = "payback"
)

// DebtSettlementCategory is the category assigned to records created by the
// debt settlement flow.
const DebtSettlementCategory = "Debt Settlement"

// AllTransactionKinds lists every valid kind; the set is fixed.
var AllTransactionKinds = []TransactionKind{
	KindIncome, KindExpense, KindLent, KindRepayment, KindBorrowed, KindPayback,
}

// IsValid reports whether k is one of the six fixed kinds.
func (k TransactionKind) IsValid() bool {
	switch k {
	case KindIncome, KindExpense, KindLent, KindRepayment, KindBorrowed, KindPayback:
		return true
	}
	return false
}

// IsDebtKind reports whether k participates in the counterparty debt ledger.
func (k TransactionKind) IsDebtKind() bool {
	switch k {
	case KindLent, KindRepayment, KindBorrowed, KindPayback:
		return true
	}
	return false
}

// Transaction is one typed monetary event owned by a user. Kind and amount are
// immutable after creation; there is no update operation.
type Transaction struct {
	TransactionID string          `json:"transactionID"` // Primary Key (UUID)
	UserID        string          `json:"userID"`        // Owning user (Not Null)
	Kind          TransactionKind `json:"kind"`
	Amount        decimal.Decimal `json:"amount"` // Non-negative; precise decimal type
	Category      string          `json:"category"`
	Description   string          `json:"description,omitempty"`
	Counterparty  string          `json:"counterparty,omitempty"` // Debt kinds only
	OccurredAt    time.Time       `json:"occurredAt"`
	AuditFields
}

// Normalize trims free-text fields in place. Case is preserved: counterparty
// "Bob" and "bob" are distinct ledger keys.
func (t *Transaction) Normalize() {
	t.Category = strings.TrimSpace(t.Category)
	t.Description = strings.TrimSpace(t.Description)
	t.Counterparty = strings.TrimSpace(t.Counterparty)
}

// Validate checks the data-model invariants. It is called at record
// construction; aggregation assumes its inputs already passed.
func (t *Transaction) Validate() error {
	if !t.Kind.IsValid() {
		return fmt.Errorf("unknown transaction kind %q", t.Kind)
	}
	if t.Amount.IsNegative() {
		return fmt.Errorf("amount must be non-negative, got %s", t.Amount)
	}
	if t.Category == "" {
		return fmt.Errorf("category is required")
	}
	if t.Kind.IsDebtKind() && t.Counterparty == "" {
		return fmt.Errorf("counterparty is required for %s transactions", t.Kind)
	}
	return nil
}
