package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/fintrackr/finance_tracker_app/internal/apperrors"
	"github.com/fintrackr/finance_tracker_app/internal/core/domain"
	portsrepo "github.com/fintrackr/finance_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/fintrackr/finance_tracker_app/internal/core/ports/services"
	"github.com/fintrackr/finance_tracker_app/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	mockTxnRepo  *MockTransactionRepository
	mockUserRepo *MockUserRepository
	service      portssvc.ReportingSvcFacade
	ctx          context.Context
}

func (s *ReportingServiceTestSuite) SetupTest() {
	s.mockTxnRepo = new(MockTransactionRepository)
	s.mockUserRepo = new(MockUserRepository)
	s.service = services.NewReportingService(s.mockTxnRepo, s.mockUserRepo)
	s.ctx = context.Background()
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}

func debtTxn(kind domain.TransactionKind, amount int64, counterparty string) domain.Transaction {
	return domain.Transaction{
		Kind:         kind,
		Amount:       decimal.NewFromInt(amount),
		Category:     "Loan",
		Counterparty: counterparty,
		OccurredAt:   time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (s *ReportingServiceTestSuite) TestGetTotals_UsesEffectiveBudgetLimit() {
	s.mockUserRepo.FindUserByIDFn = func(ctx context.Context, userID string) (*domain.User, error) {
		return &domain.User{UserID: userID}, nil // no configured limit
	}
	s.mockTxnRepo.FindTransactionsFn = func(ctx context.Context, userID string, filter portsrepo.TransactionFilter) ([]domain.Transaction, error) {
		return []domain.Transaction{
			{Kind: domain.KindExpense, Amount: decimal.NewFromInt(10000), Category: "Rent"},
		}, nil
	}

	totals, budgetLimit, err := s.service.GetTotals(s.ctx, "user-1", nil, nil)

	s.Require().NoError(err)
	s.True(budgetLimit.Equal(domain.DefaultBudgetLimit))
	// 10000 / 20000 * 100
	s.True(totals.BudgetProgress.Equal(decimal.NewFromInt(50)), "progress was %s", totals.BudgetProgress)
}

func (s *ReportingServiceTestSuite) TestGetTotals_PassesDateWindow() {
	from := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, time.January, 31, 0, 0, 0, 0, time.UTC)

	s.mockUserRepo.FindUserByIDFn = func(ctx context.Context, userID string) (*domain.User, error) {
		return &domain.User{UserID: userID}, nil
	}
	var gotFilter portsrepo.TransactionFilter
	s.mockTxnRepo.FindTransactionsFn = func(ctx context.Context, userID string, filter portsrepo.TransactionFilter) ([]domain.Transaction, error) {
		gotFilter = filter
		return nil, nil
	}

	_, _, err := s.service.GetTotals(s.ctx, "user-1", &from, &to)

	s.Require().NoError(err)
	s.Require().NotNil(gotFilter.From)
	s.Require().NotNil(gotFilter.To)
	s.True(gotFilter.From.Equal(from))
	s.True(gotFilter.To.Equal(to))
}

func (s *ReportingServiceTestSuite) TestGetYearlyBreakdown_WindowsTheYear() {
	var gotFilter portsrepo.TransactionFilter
	s.mockTxnRepo.FindTransactionsFn = func(ctx context.Context, userID string, filter portsrepo.TransactionFilter) ([]domain.Transaction, error) {
		gotFilter = filter
		return nil, nil
	}

	breakdown, err := s.service.GetYearlyBreakdown(s.ctx, "user-1", 2025)

	s.Require().NoError(err)
	s.Len(breakdown.Monthly, 12)
	s.Require().NotNil(gotFilter.From)
	s.Require().NotNil(gotFilter.To)
	s.Equal(2025, gotFilter.From.Year())
	s.Equal(time.January, gotFilter.From.Month())
	s.Equal(2025, gotFilter.To.Year())
	s.Equal(time.December, gotFilter.To.Month())
}

func (s *ReportingServiceTestSuite) TestGetDebtLedger() {
	s.mockTxnRepo.FindTransactionsFn = func(ctx context.Context, userID string, filter portsrepo.TransactionFilter) ([]domain.Transaction, error) {
		return []domain.Transaction{
			debtTxn(domain.KindLent, 200, "Bob"),
			debtTxn(domain.KindBorrowed, 350, "Carol"),
		}, nil
	}

	ledger, err := s.service.GetDebtLedger(s.ctx, "user-1")

	s.Require().NoError(err)
	s.Require().Len(ledger.Positions, 2)
	s.Equal(domain.OwesUser, ledger.Positions[0].Direction)
	s.Equal(domain.UserOwes, ledger.Positions[1].Direction)
}

func (s *ReportingServiceTestSuite) TestSettleDebt_RecordsRepayment() {
	s.mockTxnRepo.FindTransactionsFn = func(ctx context.Context, userID string, filter portsrepo.TransactionFilter) ([]domain.Transaction, error) {
		return []domain.Transaction{debtTxn(domain.KindLent, 200, "Bob")}, nil
	}
	var saved domain.Transaction
	s.mockTxnRepo.SaveTransactionFn = func(ctx context.Context, txn domain.Transaction) error {
		saved = txn
		return nil
	}

	txn, err := s.service.SettleDebt(s.ctx, "user-1", "Bob", decimal.NewFromInt(200))

	s.Require().NoError(err)
	s.Equal(domain.KindRepayment, txn.Kind)
	s.Equal(domain.DebtSettlementCategory, txn.Category)
	s.Equal("Bob", txn.Counterparty)
	s.NotEmpty(txn.TransactionID)
	s.Equal("user-1", txn.CreatedBy)
	s.Equal(saved.TransactionID, txn.TransactionID)
}

func (s *ReportingServiceTestSuite) TestSettleDebt_RecordsPaybackWhenUserOwes() {
	s.mockTxnRepo.FindTransactionsFn = func(ctx context.Context, userID string, filter portsrepo.TransactionFilter) ([]domain.Transaction, error) {
		return []domain.Transaction{debtTxn(domain.KindBorrowed, 350, "Carol")}, nil
	}
	s.mockTxnRepo.SaveTransactionFn = func(ctx context.Context, txn domain.Transaction) error { return nil }

	txn, err := s.service.SettleDebt(s.ctx, "user-1", "Carol", decimal.NewFromInt(100))

	s.Require().NoError(err)
	s.Equal(domain.KindPayback, txn.Kind)
}

func (s *ReportingServiceTestSuite) TestSettleDebt_TrimsCounterparty() {
	s.mockTxnRepo.FindTransactionsFn = func(ctx context.Context, userID string, filter portsrepo.TransactionFilter) ([]domain.Transaction, error) {
		return []domain.Transaction{debtTxn(domain.KindLent, 200, "Bob")}, nil
	}
	var saved domain.Transaction
	s.mockTxnRepo.SaveTransactionFn = func(ctx context.Context, txn domain.Transaction) error {
		saved = txn
		return nil
	}

	txn, err := s.service.SettleDebt(s.ctx, "user-1", "  Bob ", decimal.NewFromInt(200))

	s.Require().NoError(err)
	s.Equal(domain.KindRepayment, txn.Kind)
	s.Equal("Bob", txn.Counterparty)
	s.Equal("Bob", saved.Counterparty)
}

func (s *ReportingServiceTestSuite) TestSettleDebt_UnknownCounterparty() {
	s.mockTxnRepo.FindTransactionsFn = func(ctx context.Context, userID string, filter portsrepo.TransactionFilter) ([]domain.Transaction, error) {
		return []domain.Transaction{debtTxn(domain.KindLent, 200, "Bob")}, nil
	}

	_, err := s.service.SettleDebt(s.ctx, "user-1", "Nobody", decimal.NewFromInt(50))

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *ReportingServiceTestSuite) TestSettleDebt_InvalidAmount() {
	s.mockTxnRepo.FindTransactionsFn = func(ctx context.Context, userID string, filter portsrepo.TransactionFilter) ([]domain.Transaction, error) {
		return []domain.Transaction{debtTxn(domain.KindLent, 200, "Bob")}, nil
	}

	_, err := s.service.SettleDebt(s.ctx, "user-1", "Bob", decimal.Zero)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
}
