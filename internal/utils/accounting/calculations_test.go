package accounting_test

import (
	"testing"
	"time"

	"github.com/fintrackr/finance_tracker_app/internal/apperrors"
	"github.com/fintrackr/finance_tracker_app/internal/core/domain"
	"github.com/fintrackr/finance_tracker_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func txn(kind domain.TransactionKind, amount float64, category, counterparty string, occurredAt time.Time) domain.Transaction {
	return domain.Transaction{
		Kind:         kind,
		Amount:       decimal.NewFromFloat(amount),
		Category:     category,
		Counterparty: counterparty,
		OccurredAt:   occurredAt,
	}
}

func dayIn(year int, month time.Month) time.Time {
	return time.Date(year, month, 15, 12, 0, 0, 0, time.UTC)
}

func defaultLimit() decimal.Decimal {
	return decimal.NewFromInt(20000)
}

func TestComputeTotals_EmptyRecords(t *testing.T) {
	totals := accounting.ComputeTotals(nil, defaultLimit())

	assert.True(t, totals.Income.IsZero())
	assert.True(t, totals.Expense.IsZero())
	assert.True(t, totals.Lent.IsZero())
	assert.True(t, totals.Repaid.IsZero())
	assert.True(t, totals.Borrowed.IsZero())
	assert.True(t, totals.Payback.IsZero())
	assert.True(t, totals.Balance.IsZero())
	assert.True(t, totals.BudgetProgress.IsZero())
}

func TestComputeTotals_BalanceFormula(t *testing.T) {
	now := dayIn(2025, time.March)
	records := []domain.Transaction{
		txn(domain.KindIncome, 1000, "Salary", "", now),
		txn(domain.KindExpense, 300, "Food", "", now),
		txn(domain.KindLent, 200, "Loan", "Bob", now),
	}

	totals := accounting.ComputeTotals(records, defaultLimit())

	assert.True(t, totals.Income.Equal(decimal.NewFromInt(1000)))
	assert.True(t, totals.Expense.Equal(decimal.NewFromInt(300)))
	assert.True(t, totals.Lent.Equal(decimal.NewFromInt(200)))
	// 1000 - 300 - 200
	assert.True(t, totals.Balance.Equal(decimal.NewFromInt(500)), "balance was %s", totals.Balance)
}

func TestComputeTotals_RepaymentRestoresBalance(t *testing.T) {
	now := dayIn(2025, time.March)
	records := []domain.Transaction{
		txn(domain.KindIncome, 1000, "Salary", "", now),
		txn(domain.KindExpense, 300, "Food", "", now),
		txn(domain.KindLent, 200, "Loan", "Bob", now),
		txn(domain.KindRepayment, 200, domain.DebtSettlementCategory, "Bob", now),
	}

	totals := accounting.ComputeTotals(records, defaultLimit())

	assert.True(t, totals.Balance.Equal(decimal.NewFromInt(700)), "balance was %s", totals.Balance)
}

func TestComputeTotals_BorrowedAndPayback(t *testing.T) {
	now := dayIn(2025, time.June)
	records := []domain.Transaction{
		txn(domain.KindBorrowed, 500, "Loan", "Carol", now),
		txn(domain.KindPayback, 150, domain.DebtSettlementCategory, "Carol", now),
	}

	totals := accounting.ComputeTotals(records, defaultLimit())

	// 0 - 0 - 0 + 0 + 500 - 150
	assert.True(t, totals.Balance.Equal(decimal.NewFromInt(350)), "balance was %s", totals.Balance)
}

func TestComputeTotals_OrderIndependence(t *testing.T) {
	now := dayIn(2025, time.March)
	records := []domain.Transaction{
		txn(domain.KindIncome, 1000, "Salary", "", now),
		txn(domain.KindExpense, 300, "Food", "", now),
		txn(domain.KindLent, 200, "Loan", "Bob", now),
		txn(domain.KindBorrowed, 75.50, "Loan", "Carol", now),
		txn(domain.KindPayback, 25.25, domain.DebtSettlementCategory, "Carol", now),
	}

	expected := accounting.ComputeTotals(records, defaultLimit())

	permutations := [][]int{
		{4, 3, 2, 1, 0},
		{2, 0, 4, 1, 3},
		{1, 3, 0, 4, 2},
	}
	for _, perm := range permutations {
		shuffled := make([]domain.Transaction, len(records))
		for i, j := range perm {
			shuffled[i] = records[j]
		}
		totals := accounting.ComputeTotals(shuffled, defaultLimit())
		assert.True(t, totals.Balance.Equal(expected.Balance))
		assert.True(t, totals.Income.Equal(expected.Income))
		assert.True(t, totals.Expense.Equal(expected.Expense))
	}
}

func TestComputeTotals_BudgetProgress(t *testing.T) {
	now := dayIn(2025, time.March)

	t.Run("partial progress", func(t *testing.T) {
		records := []domain.Transaction{txn(domain.KindExpense, 9000, "Rent", "", now)}
		totals := accounting.ComputeTotals(records, defaultLimit())
		assert.True(t, totals.BudgetProgress.Equal(decimal.NewFromInt(45)), "progress was %s", totals.BudgetProgress)
	})

	t.Run("capped at 100", func(t *testing.T) {
		records := []domain.Transaction{txn(domain.KindExpense, 25000, "Rent", "", now)}
		totals := accounting.ComputeTotals(records, defaultLimit())
		assert.True(t, totals.BudgetProgress.Equal(decimal.NewFromInt(100)))
	})

	t.Run("non-positive limit yields zero", func(t *testing.T) {
		records := []domain.Transaction{txn(domain.KindExpense, 9000, "Rent", "", now)}
		totals := accounting.ComputeTotals(records, decimal.Zero)
		assert.True(t, totals.BudgetProgress.IsZero())

		totals = accounting.ComputeTotals(records, decimal.NewFromInt(-5))
		assert.True(t, totals.BudgetProgress.IsZero())
	})

	t.Run("only expense kind counts toward progress", func(t *testing.T) {
		records := []domain.Transaction{
			txn(domain.KindLent, 5000, "Loan", "Bob", now),
			txn(domain.KindPayback, 5000, domain.DebtSettlementCategory, "Carol", now),
		}
		totals := accounting.ComputeTotals(records, defaultLimit())
		assert.True(t, totals.BudgetProgress.IsZero())
	})
}

func TestComputeYearlyBreakdown_EmptyYear(t *testing.T) {
	breakdown := accounting.ComputeYearlyBreakdown(nil, 2025)

	require.Len(t, breakdown.Monthly, 12)
	assert.Equal(t, "Jan", breakdown.Monthly[0].Month)
	assert.Equal(t, "Dec", breakdown.Monthly[11].Month)
	for _, month := range breakdown.Monthly {
		assert.True(t, month.Income.IsZero())
		assert.True(t, month.Expense.IsZero())
	}
	assert.Empty(t, breakdown.Categories)
}

func TestComputeYearlyBreakdown_MonthBucketsAndAxes(t *testing.T) {
	records := []domain.Transaction{
		txn(domain.KindIncome, 1000, "Salary", "", dayIn(2025, time.January)),
		txn(domain.KindExpense, 300, "Food", "", dayIn(2025, time.January)),
		txn(domain.KindLent, 200, "Loan", "Bob", dayIn(2025, time.February)),
		txn(domain.KindIncome, 50, "Salary", "", dayIn(2024, time.January)), // outside the year
	}

	breakdown := accounting.ComputeYearlyBreakdown(records, 2025)

	jan := breakdown.Monthly[0]
	assert.True(t, jan.Income.Equal(decimal.NewFromInt(1000)))
	assert.True(t, jan.Expense.Equal(decimal.NewFromInt(300)))

	// Debt outflows chart on the expense axis
	feb := breakdown.Monthly[1]
	assert.True(t, feb.Income.IsZero())
	assert.True(t, feb.Expense.Equal(decimal.NewFromInt(200)))
}

func TestComputeYearlyBreakdown_CategoryFirstSeenOrder(t *testing.T) {
	records := []domain.Transaction{
		txn(domain.KindExpense, 100, "Food", "", dayIn(2025, time.January)),
		txn(domain.KindExpense, 50, "Travel", "", dayIn(2025, time.February)),
		txn(domain.KindExpense, 200, "Food", "", dayIn(2025, time.March)),
		txn(domain.KindIncome, 9999, "Salary", "", dayIn(2025, time.March)), // income never appears
	}

	breakdown := accounting.ComputeYearlyBreakdown(records, 2025)

	require.Len(t, breakdown.Categories, 2)
	assert.Equal(t, "Food", breakdown.Categories[0].Category)
	assert.True(t, breakdown.Categories[0].Total.Equal(decimal.NewFromInt(300)))
	assert.Equal(t, "Travel", breakdown.Categories[1].Category)
	assert.True(t, breakdown.Categories[1].Total.Equal(decimal.NewFromInt(50)))
}

func TestComputeYearlyBreakdown_BlankCategoryBucket(t *testing.T) {
	record := txn(domain.KindExpense, 10, "   ", "", dayIn(2025, time.May))

	breakdown := accounting.ComputeYearlyBreakdown([]domain.Transaction{record}, 2025)

	require.Len(t, breakdown.Categories, 1)
	assert.Equal(t, accounting.UncategorizedLabel, breakdown.Categories[0].Category)
}

func TestComputeDebtLedger_NetPerCounterparty(t *testing.T) {
	now := dayIn(2025, time.April)
	records := []domain.Transaction{
		txn(domain.KindLent, 200, "Loan", "Bob", now),
		txn(domain.KindBorrowed, 500, "Loan", "Carol", now),
		txn(domain.KindPayback, 150, domain.DebtSettlementCategory, "Carol", now),
		txn(domain.KindExpense, 999, "Food", "", now), // ignored, not a debt kind
	}

	ledger := accounting.ComputeDebtLedger(records)

	require.Len(t, ledger.Positions, 2)

	bob := ledger.Positions[0]
	assert.Equal(t, "Bob", bob.Counterparty)
	assert.True(t, bob.Net.Equal(decimal.NewFromInt(200)))
	assert.Equal(t, domain.OwesUser, bob.Direction)

	carol := ledger.Positions[1]
	assert.Equal(t, "Carol", carol.Counterparty)
	assert.True(t, carol.Net.Equal(decimal.NewFromInt(-350)))
	assert.Equal(t, domain.UserOwes, carol.Direction)

	assert.True(t, ledger.TotalOwedToUser.Equal(decimal.NewFromInt(200)))
	assert.True(t, ledger.TotalUserOwes.Equal(decimal.NewFromInt(350)))
}

func TestComputeDebtLedger_SettledPositionExcluded(t *testing.T) {
	now := dayIn(2025, time.April)
	records := []domain.Transaction{
		txn(domain.KindLent, 200, "Loan", "Bob", now),
		txn(domain.KindRepayment, 200, domain.DebtSettlementCategory, "Bob", now),
	}

	ledger := accounting.ComputeDebtLedger(records)

	assert.Empty(t, ledger.Positions)
	assert.True(t, ledger.TotalOwedToUser.IsZero())
	assert.True(t, ledger.TotalUserOwes.IsZero())
}

func TestComputeDebtLedger_CounterpartyCaseSensitive(t *testing.T) {
	now := dayIn(2025, time.April)
	records := []domain.Transaction{
		txn(domain.KindLent, 100, "Loan", "Bob", now),
		txn(domain.KindLent, 100, "Loan", "bob", now),
	}

	ledger := accounting.ComputeDebtLedger(records)

	require.Len(t, ledger.Positions, 2)
	assert.Equal(t, "Bob", ledger.Positions[0].Counterparty)
	assert.Equal(t, "bob", ledger.Positions[1].Counterparty)
}

func TestComputeDebtLedger_OrderIndependentNets(t *testing.T) {
	now := dayIn(2025, time.April)
	records := []domain.Transaction{
		txn(domain.KindLent, 300, "Loan", "Bob", now),
		txn(domain.KindRepayment, 100, domain.DebtSettlementCategory, "Bob", now),
		txn(domain.KindBorrowed, 50, "Loan", "Bob", now),
	}
	reversed := []domain.Transaction{records[2], records[1], records[0]}

	forward := accounting.ComputeDebtLedger(records)
	backward := accounting.ComputeDebtLedger(reversed)

	require.Len(t, forward.Positions, 1)
	require.Len(t, backward.Positions, 1)
	assert.True(t, forward.Positions[0].Net.Equal(backward.Positions[0].Net))
	assert.True(t, forward.Positions[0].Net.Equal(decimal.NewFromInt(150)))
}

func TestBuildSettlementRecord(t *testing.T) {
	now := dayIn(2025, time.July)

	t.Run("they owe user drafts a repayment", func(t *testing.T) {
		record, err := accounting.BuildSettlementRecord("user-1", "Bob", decimal.NewFromInt(200), decimal.NewFromInt(200), now)
		require.NoError(t, err)
		assert.Equal(t, domain.KindRepayment, record.Kind)
		assert.Equal(t, domain.DebtSettlementCategory, record.Category)
		assert.Equal(t, "Bob", record.Counterparty)
		assert.True(t, record.Amount.Equal(decimal.NewFromInt(200)))
	})

	t.Run("user owes drafts a payback", func(t *testing.T) {
		record, err := accounting.BuildSettlementRecord("user-1", "Carol", decimal.NewFromInt(-350), decimal.NewFromInt(100), now)
		require.NoError(t, err)
		assert.Equal(t, domain.KindPayback, record.Kind)
	})

	t.Run("overshoot is permitted", func(t *testing.T) {
		record, err := accounting.BuildSettlementRecord("user-1", "Bob", decimal.NewFromInt(200), decimal.NewFromInt(500), now)
		require.NoError(t, err)
		assert.True(t, record.Amount.Equal(decimal.NewFromInt(500)))
	})

	t.Run("blank counterparty rejected", func(t *testing.T) {
		_, err := accounting.BuildSettlementRecord("user-1", "   ", decimal.NewFromInt(10), decimal.NewFromInt(10), now)
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("non-positive amount rejected", func(t *testing.T) {
		_, err := accounting.BuildSettlementRecord("user-1", "Bob", decimal.NewFromInt(10), decimal.Zero, now)
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrValidation)

		_, err = accounting.BuildSettlementRecord("user-1", "Bob", decimal.NewFromInt(10), decimal.NewFromInt(-5), now)
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})
}

func TestSettlementRoundTrip(t *testing.T) {
	// Lend 200 to Bob, settle in full: ledger empties and the repayment
	// returns the cash to the balance.
	now := dayIn(2025, time.August)
	records := []domain.Transaction{
		txn(domain.KindIncome, 1000, "Salary", "", now),
		txn(domain.KindExpense, 300, "Food", "", now),
		txn(domain.KindLent, 200, "Loan", "Bob", now),
	}

	ledger := accounting.ComputeDebtLedger(records)
	require.Len(t, ledger.Positions, 1)

	settlement, err := accounting.BuildSettlementRecord("user-1", "Bob", ledger.Positions[0].Net, ledger.Positions[0].Net, now)
	require.NoError(t, err)
	records = append(records, settlement)

	assert.Empty(t, accounting.ComputeDebtLedger(records).Positions)

	totals := accounting.ComputeTotals(records, defaultLimit())
	assert.True(t, totals.Balance.Equal(decimal.NewFromInt(700)), "balance was %s", totals.Balance)
}
