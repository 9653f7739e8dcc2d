package services

import (
	"context"
	"time"

	"github.com/fintrackr/finance_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReportingSvcFacade exposes the aggregated views over one owner's ledger.
// All computations are pure; this facade only marries them to the store.
type ReportingSvcFacade interface {
	// GetTotals computes period totals and budget progress over the optional
	// inclusive date window.
	GetTotals(ctx context.Context, userID string, from, to *time.Time) (*domain.PeriodTotals, decimal.Decimal, error)

	// GetYearlyBreakdown computes the chart feed for one calendar year.
	GetYearlyBreakdown(ctx context.Context, userID string, year int) (*domain.YearlyBreakdown, error)

	// GetDebtLedger computes the counterparty net positions over the user's
	// full history.
	GetDebtLedger(ctx context.Context, userID string) (*domain.DebtLedger, error)

	// SettleDebt records a settlement transaction against a counterparty's
	// current net position and returns the created record.
	SettleDebt(ctx context.Context, userID string, counterparty string, amount decimal.Decimal) (*domain.Transaction, error)
}
