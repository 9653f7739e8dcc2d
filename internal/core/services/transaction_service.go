package services

import (
	"context"
	"fmt"
	"time"

	"github.com/fintrackr/finance_tracker_app/internal/apperrors"
	"github.com/fintrackr/finance_tracker_app/internal/core/domain"
	portsrepo "github.com/fintrackr/finance_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/fintrackr/finance_tracker_app/internal/core/ports/services"
	"github.com/fintrackr/finance_tracker_app/internal/dto"
	"github.com/google/uuid"
)

// transactionService implements TransactionSvcFacade over a repository.
type transactionService struct {
	txnRepo portsrepo.TransactionRepository
}

// NewTransactionService creates a new transaction service.
func NewTransactionService(txnRepo portsrepo.TransactionRepository) portssvc.TransactionSvcFacade {
	return &transactionService{txnRepo: txnRepo}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// CreateTransaction validates the request against the data-model invariants
// and persists the record. Validation happens here, at construction; the
// aggregation core assumes stored records already satisfy the invariants.
func (s *transactionService) CreateTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	now := time.Now()

	occurredAt := now
	if req.OccurredAt != nil {
		occurredAt = *req.OccurredAt
	}

	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		UserID:        userID,
		Kind:          domain.TransactionKind(req.Kind),
		Amount:        req.Amount,
		Category:      req.Category,
		Description:   req.Description,
		Counterparty:  req.Counterparty,
		OccurredAt:    occurredAt,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	txn.Normalize()

	if err := txn.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", err.Error(), apperrors.ErrValidation)
	}

	if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	return &txn, nil
}

func (s *transactionService) GetTransaction(ctx context.Context, userID string, transactionID string) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, userID, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return txn, nil
}

func (s *transactionService) ListTransactions(ctx context.Context, userID string, filter portsrepo.TransactionFilter) ([]domain.Transaction, error) {
	transactions, err := s.txnRepo.FindTransactions(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return transactions, nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, userID string, transactionID string) error {
	if err := s.txnRepo.DeleteTransaction(ctx, userID, transactionID); err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	return nil
}
