package domain

import "github.com/shopspring/decimal"

// PeriodTotals aggregates one owner's records over a period into cash-on-hand
// figures. Balance deliberately excludes outstanding debt positions; those are
// reported by the DebtLedger.
type PeriodTotals struct {
	Income   decimal.Decimal
	Expense  decimal.Decimal
	Lent     decimal.Decimal
	Repaid   decimal.Decimal
	Borrowed decimal.Decimal
	Payback  decimal.Decimal
	Balance  decimal.Decimal

	// BudgetProgress is the percentage of the budget limit consumed by
	// expenses, capped at 100. Zero when the limit is not positive.
	BudgetProgress decimal.Decimal
}

// MonthlySummary is one month's income/expense pair on the yearly chart.
// Every non-income kind counts toward Expense, matching the dashboard's
// historical behaviour of charting all outflows on one axis.
type MonthlySummary struct {
	Month   string // Short label: Jan..Dec
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// CategoryTotal is one slice of the category breakdown.
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
}

// YearlyBreakdown is the chart feed for one calendar year: exactly twelve
// months plus the category breakdown over non-income records, category keys
// in first-seen order.
type YearlyBreakdown struct {
	Monthly    []MonthlySummary
	Categories []CategoryTotal
}

// DebtDirection says which side of a net position owes.
type DebtDirection string

const (
	OwesUser DebtDirection = "owesUser" // net > 0: they owe the user
	UserOwes DebtDirection = "userOwes" // net < 0: the user owes them
)

// DebtPosition is the outstanding net with one counterparty. Net keeps its
// sign; Direction is derived from it.
type DebtPosition struct {
	Counterparty string
	Net          decimal.Decimal
	Direction    DebtDirection
}

// DebtLedger is the set of unsettled counterparty positions plus aggregate
// totals for each direction.
type DebtLedger struct {
	Positions       []DebtPosition
	TotalOwedToUser decimal.Decimal
	TotalUserOwes   decimal.Decimal
}
