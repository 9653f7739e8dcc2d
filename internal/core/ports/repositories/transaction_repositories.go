package repositories

import (
	"context"
	"time"

	"github.com/fintrackr/finance_tracker_app/internal/core/domain"
)

// TransactionFilter narrows FindTransactions. Nil fields are not applied.
// The date window is inclusive on both ends.
type TransactionFilter struct {
	From *time.Time
	To   *time.Time
	Kind *domain.TransactionKind

	// SortAscending orders by occurred_at ascending when true; the default is
	// newest first.
	SortAscending bool
}

// TransactionRepository defines persistence operations for ledger records.
// Every operation is scoped to the owning user; records of other users are
// invisible.
type TransactionRepository interface {
	// SaveTransaction inserts a new record.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error

	// FindTransactionByID retrieves one record owned by userID, or
	// apperrors.ErrNotFound.
	FindTransactionByID(ctx context.Context, userID string, transactionID string) (*domain.Transaction, error)

	// FindTransactions retrieves the user's records matching the filter.
	FindTransactions(ctx context.Context, userID string, filter TransactionFilter) ([]domain.Transaction, error)

	// DeleteTransaction removes a record owned by userID. Returns
	// apperrors.ErrNotFound when no such record exists for this user.
	DeleteTransaction(ctx context.Context, userID string, transactionID string) error
}
