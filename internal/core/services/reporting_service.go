package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fintrackr/finance_tracker_app/internal/apperrors"
	"github.com/fintrackr/finance_tracker_app/internal/core/domain"
	portsrepo "github.com/fintrackr/finance_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/fintrackr/finance_tracker_app/internal/core/ports/services"
	"github.com/fintrackr/finance_tracker_app/internal/utils/accounting"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// reportingService marries the pure aggregation functions in
// utils/accounting to the ledger store. It holds no state of its own.
type reportingService struct {
	txnRepo  portsrepo.TransactionRepository
	userRepo portsrepo.UserRepository
}

// NewReportingService creates a new reporting service.
func NewReportingService(txnRepo portsrepo.TransactionRepository, userRepo portsrepo.UserRepository) portssvc.ReportingSvcFacade {
	return &reportingService{txnRepo: txnRepo, userRepo: userRepo}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

func (s *reportingService) GetTotals(ctx context.Context, userID string, from, to *time.Time) (*domain.PeriodTotals, decimal.Decimal, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, decimal.Zero, fmt.Errorf("failed to load user for totals: %w", err)
	}
	budgetLimit := user.EffectiveBudgetLimit()

	records, err := s.txnRepo.FindTransactions(ctx, userID, portsrepo.TransactionFilter{From: from, To: to})
	if err != nil {
		return nil, decimal.Zero, fmt.Errorf("failed to load transactions for totals: %w", err)
	}

	totals := accounting.ComputeTotals(records, budgetLimit)
	return &totals, budgetLimit, nil
}

func (s *reportingService) GetYearlyBreakdown(ctx context.Context, userID string, year int) (*domain.YearlyBreakdown, error) {
	startOfYear := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	endOfYear := time.Date(year, time.December, 31, 23, 59, 59, 999999999, time.UTC)

	records, err := s.txnRepo.FindTransactions(ctx, userID, portsrepo.TransactionFilter{
		From: &startOfYear,
		To:   &endOfYear,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions for yearly breakdown: %w", err)
	}

	breakdown := accounting.ComputeYearlyBreakdown(records, year)
	return &breakdown, nil
}

func (s *reportingService) GetDebtLedger(ctx context.Context, userID string) (*domain.DebtLedger, error) {
	records, err := s.txnRepo.FindTransactions(ctx, userID, portsrepo.TransactionFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions for debt ledger: %w", err)
	}

	ledger := accounting.ComputeDebtLedger(records)
	return &ledger, nil
}

// SettleDebt recomputes the counterparty's net position from the full ledger
// history and records the settling transaction. The amount is not capped at
// |net|; overshooting flips the sign of the position, which is accepted.
func (s *reportingService) SettleDebt(ctx context.Context, userID string, counterparty string, amount decimal.Decimal) (*domain.Transaction, error) {
	// Stored counterparties are trimmed at creation; match on the same form.
	counterparty = strings.TrimSpace(counterparty)

	records, err := s.txnRepo.FindTransactions(ctx, userID, portsrepo.TransactionFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions for settlement: %w", err)
	}

	counterpartyRecords := []domain.Transaction{}
	for _, record := range records {
		if record.Counterparty == counterparty && record.Kind.IsDebtKind() {
			counterpartyRecords = append(counterpartyRecords, record)
		}
	}
	if len(counterpartyRecords) == 0 {
		return nil, fmt.Errorf("no debt records for counterparty %q: %w", counterparty, apperrors.ErrNotFound)
	}

	currentNet := decimal.Zero
	ledger := accounting.ComputeDebtLedger(counterpartyRecords)
	if len(ledger.Positions) > 0 {
		currentNet = ledger.Positions[0].Net
	}

	now := time.Now()
	txn, err := accounting.BuildSettlementRecord(userID, counterparty, currentNet, amount, now)
	if err != nil {
		return nil, err
	}
	txn.TransactionID = uuid.NewString()
	txn.AuditFields = domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     userID,
		LastUpdatedAt: now,
		LastUpdatedBy: userID,
	}

	if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to save settlement transaction: %w", err)
	}

	return &txn, nil
}
