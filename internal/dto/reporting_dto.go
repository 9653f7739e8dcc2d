package dto

import (
	"github.com/fintrackr/finance_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TotalsResponse reports period totals, the cash balance and budget progress.
// All amounts are rounded to 2 decimal places (half away from zero) here, at
// the point of reporting, never during summation.
type TotalsResponse struct {
	Income         decimal.Decimal `json:"income"`
	Expense        decimal.Decimal `json:"expense"`
	Lent           decimal.Decimal `json:"lent"`
	Repaid         decimal.Decimal `json:"repaid"`
	Borrowed       decimal.Decimal `json:"borrowed"`
	Payback        decimal.Decimal `json:"payback"`
	Balance        decimal.Decimal `json:"balance"`
	BudgetLimit    decimal.Decimal `json:"budgetLimit"`
	BudgetProgress decimal.Decimal `json:"budgetProgress"`
}

// MonthlyPointResponse is one month on the yearly chart.
type MonthlyPointResponse struct {
	Month   string          `json:"month"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// PieSliceResponse is one category slice, shaped for pie-style charting.
type PieSliceResponse struct {
	Name  string          `json:"name"`
	Value decimal.Decimal `json:"value"`
}

// YearlySummaryResponse is the chart feed for one calendar year.
type YearlySummaryResponse struct {
	MonthlyData []MonthlyPointResponse `json:"monthlyData"`
	PieData     []PieSliceResponse     `json:"pieData"`
}

// DebtPositionResponse is one counterparty's outstanding net position.
type DebtPositionResponse struct {
	Counterparty string          `json:"counterparty"`
	NetAmount    decimal.Decimal `json:"netAmount"`
	Direction    string          `json:"direction"`
}

// DebtLedgerResponse is the full debt view: per-counterparty detail plus the
// aggregate owed-to/owed-by totals.
type DebtLedgerResponse struct {
	Debts           []DebtPositionResponse `json:"debts"`
	TotalOwedToUser decimal.Decimal        `json:"totalOwedToUser"`
	TotalUserOwes   decimal.Decimal        `json:"totalUserOwes"`
	Net             decimal.Decimal        `json:"net"`
}

// ToTotalsResponse converts domain totals to the response DTO.
func ToTotalsResponse(totals *domain.PeriodTotals, budgetLimit decimal.Decimal) TotalsResponse {
	return TotalsResponse{
		Income:         totals.Income.Round(2),
		Expense:        totals.Expense.Round(2),
		Lent:           totals.Lent.Round(2),
		Repaid:         totals.Repaid.Round(2),
		Borrowed:       totals.Borrowed.Round(2),
		Payback:        totals.Payback.Round(2),
		Balance:        totals.Balance.Round(2),
		BudgetLimit:    budgetLimit.Round(2),
		BudgetProgress: totals.BudgetProgress.Round(2),
	}
}

// ToYearlySummaryResponse converts a domain yearly breakdown to the response DTO.
func ToYearlySummaryResponse(breakdown *domain.YearlyBreakdown) YearlySummaryResponse {
	response := YearlySummaryResponse{
		MonthlyData: make([]MonthlyPointResponse, len(breakdown.Monthly)),
		PieData:     make([]PieSliceResponse, len(breakdown.Categories)),
	}
	for i, month := range breakdown.Monthly {
		response.MonthlyData[i] = MonthlyPointResponse{
			Month:   month.Month,
			Income:  month.Income.Round(2),
			Expense: month.Expense.Round(2),
		}
	}
	for i, category := range breakdown.Categories {
		response.PieData[i] = PieSliceResponse{
			Name:  category.Category,
			Value: category.Total.Round(2),
		}
	}
	return response
}

// ToDebtLedgerResponse converts a domain debt ledger to the response DTO.
func ToDebtLedgerResponse(ledger *domain.DebtLedger) DebtLedgerResponse {
	response := DebtLedgerResponse{
		Debts:           make([]DebtPositionResponse, len(ledger.Positions)),
		TotalOwedToUser: ledger.TotalOwedToUser.Round(2),
		TotalUserOwes:   ledger.TotalUserOwes.Round(2),
		Net:             ledger.TotalOwedToUser.Sub(ledger.TotalUserOwes).Round(2),
	}
	for i, position := range ledger.Positions {
		response.Debts[i] = DebtPositionResponse{
			Counterparty: position.Counterparty,
			NetAmount:    position.Net.Round(2),
			Direction:    string(position.Direction),
		}
	}
	return response
}
