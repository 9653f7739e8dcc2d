// Package accounting holds the pure aggregation functions that turn a flat
// list of typed ledger records into balances, chart series and counterparty
// debt positions. Everything here is a stateless transformation over the
// records supplied by the caller; persistence and identity are the caller's
// concern. Amounts are summed exactly and rounded only at the reporting
// boundary (see dto).
package accounting

import (
	"fmt"
	"strings"
	"time"

	"github.com/fintrackr/finance_tracker_app/internal/apperrors"
	"github.com/fintrackr/finance_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// UncategorizedLabel is the stable bucket for records whose category is blank.
// Record construction requires a category, so this only guards rows created
// outside the API.
const UncategorizedLabel = "Uncategorized"

var hundred = decimal.NewFromInt(100)

// ComputeTotals sums the given records into cash-on-hand totals.
//
// Balance = income - expense - lent + repaid + borrowed - payback: lent money
// leaves the wallet, a repayment received returns it, borrowed money enters,
// a payback leaves. Outstanding debt is tracked by ComputeDebtLedger and is
// intentionally excluded from the balance.
//
// BudgetProgress = min(expense/budgetLimit*100, 100). A non-positive budget
// limit yields progress zero; the function is total over any record set.
func ComputeTotals(records []domain.Transaction, budgetLimit decimal.Decimal) domain.PeriodTotals {
	var totals domain.PeriodTotals
	totals.Income = decimal.Zero
	totals.Expense = decimal.Zero
	totals.Lent = decimal.Zero
	totals.Repaid = decimal.Zero
	totals.Borrowed = decimal.Zero
	totals.Payback = decimal.Zero

	for _, txn := range records {
		switch txn.Kind {
		case domain.KindIncome:
			totals.Income = totals.Income.Add(txn.Amount)
		case domain.KindExpense:
			totals.Expense = totals.Expense.Add(txn.Amount)
		case domain.KindLent:
			totals.Lent = totals.Lent.Add(txn.Amount)
		case domain.KindRepayment:
			totals.Repaid = totals.Repaid.Add(txn.Amount)
		case domain.KindBorrowed:
			totals.Borrowed = totals.Borrowed.Add(txn.Amount)
		case domain.KindPayback:
			totals.Payback = totals.Payback.Add(txn.Amount)
		}
	}

	totals.Balance = totals.Income.
		Sub(totals.Expense).
		Sub(totals.Lent).
		Add(totals.Repaid).
		Add(totals.Borrowed).
		Sub(totals.Payback)

	totals.BudgetProgress = decimal.Zero
	if budgetLimit.IsPositive() {
		progress := totals.Expense.Div(budgetLimit).Mul(hundred)
		if progress.GreaterThan(hundred) {
			progress = hundred
		}
		totals.BudgetProgress = progress
	}

	return totals
}

// ComputeYearlyBreakdown buckets one year's records into twelve month entries
// and a category breakdown for pie-style charts.
//
// Income records feed the income axis; every other kind feeds the expense
// axis, so debt-related outflows chart alongside true expenses. The category
// breakdown covers the same non-income records, keys in first-seen order.
// Records outside the given year are ignored.
func ComputeYearlyBreakdown(records []domain.Transaction, year int) domain.YearlyBreakdown {
	breakdown := domain.YearlyBreakdown{
		Monthly:    make([]domain.MonthlySummary, 12),
		Categories: []domain.CategoryTotal{},
	}
	for i := range breakdown.Monthly {
		breakdown.Monthly[i] = domain.MonthlySummary{
			Month:   time.Month(i + 1).String()[:3],
			Income:  decimal.Zero,
			Expense: decimal.Zero,
		}
	}

	categoryIndex := map[string]int{}

	for _, txn := range records {
		if txn.OccurredAt.Year() != year {
			continue
		}
		monthIdx := int(txn.OccurredAt.Month()) - 1

		if txn.Kind == domain.KindIncome {
			breakdown.Monthly[monthIdx].Income = breakdown.Monthly[monthIdx].Income.Add(txn.Amount)
			continue
		}

		breakdown.Monthly[monthIdx].Expense = breakdown.Monthly[monthIdx].Expense.Add(txn.Amount)

		category := strings.TrimSpace(txn.Category)
		if category == "" {
			category = UncategorizedLabel
		}
		idx, seen := categoryIndex[category]
		if !seen {
			idx = len(breakdown.Categories)
			categoryIndex[category] = idx
			breakdown.Categories = append(breakdown.Categories, domain.CategoryTotal{
				Category: category,
				Total:    decimal.Zero,
			})
		}
		breakdown.Categories[idx].Total = breakdown.Categories[idx].Total.Add(txn.Amount)
	}

	return breakdown
}

// ComputeDebtLedger reduces all records carrying a counterparty into a net
// position per counterparty. Positive net means they owe the user.
//
//	lent      -> net += amount
//	repayment -> net -= amount
//	borrowed  -> net -= amount
//	payback   -> net += amount
//
// Exactly-zero nets are settled and excluded from the result. Positions keep
// first-seen counterparty order so repeated computations are stable.
func ComputeDebtLedger(records []domain.Transaction) domain.DebtLedger {
	nets := map[string]decimal.Decimal{}
	order := []string{}

	for _, txn := range records {
		if txn.Counterparty == "" || !txn.Kind.IsDebtKind() {
			continue
		}
		net, seen := nets[txn.Counterparty]
		if !seen {
			net = decimal.Zero
			order = append(order, txn.Counterparty)
		}
		switch txn.Kind {
		case domain.KindLent, domain.KindPayback:
			net = net.Add(txn.Amount)
		case domain.KindRepayment, domain.KindBorrowed:
			net = net.Sub(txn.Amount)
		}
		nets[txn.Counterparty] = net
	}

	ledger := domain.DebtLedger{
		Positions:       []domain.DebtPosition{},
		TotalOwedToUser: decimal.Zero,
		TotalUserOwes:   decimal.Zero,
	}

	for _, counterparty := range order {
		net := nets[counterparty]
		if net.IsZero() {
			continue
		}
		direction := domain.OwesUser
		if net.IsNegative() {
			direction = domain.UserOwes
			ledger.TotalUserOwes = ledger.TotalUserOwes.Add(net.Neg())
		} else {
			ledger.TotalOwedToUser = ledger.TotalOwedToUser.Add(net)
		}
		ledger.Positions = append(ledger.Positions, domain.DebtPosition{
			Counterparty: counterparty,
			Net:          net,
			Direction:    direction,
		})
	}

	return ledger
}

// BuildSettlementRecord drafts the transaction that settles (part of) a
// counterparty position: a repayment when they owe the user (net > 0), a
// payback otherwise. The caller assigns the record ID and audit fields before
// persisting.
//
// settleAmount must be positive; it is NOT checked against |currentNet|, so a
// settlement may overshoot and flip the sign of the position. That is
// accepted behaviour, not an error.
func BuildSettlementRecord(userID, counterparty string, currentNet, settleAmount decimal.Decimal, now time.Time) (domain.Transaction, error) {
	counterparty = strings.TrimSpace(counterparty)
	if counterparty == "" {
		return domain.Transaction{}, fmt.Errorf("counterparty is required: %w", apperrors.ErrValidation)
	}
	if !settleAmount.IsPositive() {
		return domain.Transaction{}, fmt.Errorf("settlement amount must be positive, got %s: %w", settleAmount, apperrors.ErrValidation)
	}

	kind := domain.KindPayback
	if currentNet.IsPositive() {
		kind = domain.KindRepayment
	}

	return domain.Transaction{
		UserID:       userID,
		Kind:         kind,
		Amount:       settleAmount,
		Category:     domain.DebtSettlementCategory,
		Description:  "Settled via dashboard",
		Counterparty: counterparty,
		OccurredAt:   now,
	}, nil
}
