package services

import (
	"context"

	"github.com/fintrackr/finance_tracker_app/internal/core/domain"
	portsrepo "github.com/fintrackr/finance_tracker_app/internal/core/ports/repositories"
	"github.com/fintrackr/finance_tracker_app/internal/dto"
)

// TransactionReaderSvc defines read operations for ledger records.
type TransactionReaderSvc interface {
	// GetTransaction retrieves one record owned by userID.
	GetTransaction(ctx context.Context, userID string, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves the owner's records matching the filter,
	// newest first unless the filter asks otherwise.
	ListTransactions(ctx context.Context, userID string, filter portsrepo.TransactionFilter) ([]domain.Transaction, error)
}

// TransactionWriterSvc defines write operations for ledger records. There is
// no update operation: kind and amount are immutable after creation.
type TransactionWriterSvc interface {
	// CreateTransaction validates and persists a new record owned by userID.
	CreateTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Transaction, error)

	// DeleteTransaction removes a record owned by userID.
	DeleteTransaction(ctx context.Context, userID string, transactionID string) error
}

// TransactionSvcFacade combines all transaction-related service interfaces.
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}
