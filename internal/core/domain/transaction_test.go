package domain_test

import (
	"testing"

	"github.com/fintrackr/finance_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTransactionKind_IsValid(t *testing.T) {
	for _, kind := range domain.AllTransactionKinds {
		assert.True(t, kind.IsValid(), "kind %s should be valid", kind)
	}
	assert.False(t, domain.TransactionKind("transfer").IsValid())
	assert.False(t, domain.TransactionKind("").IsValid())
	assert.False(t, domain.TransactionKind("Income").IsValid(), "kinds are lowercase")
}

func TestTransactionKind_IsDebtKind(t *testing.T) {
	assert.False(t, domain.KindIncome.IsDebtKind())
	assert.False(t, domain.KindExpense.IsDebtKind())
	assert.True(t, domain.KindLent.IsDebtKind())
	assert.True(t, domain.KindRepayment.IsDebtKind())
	assert.True(t, domain.KindBorrowed.IsDebtKind())
	assert.True(t, domain.KindPayback.IsDebtKind())
}

func TestTransaction_Normalize(t *testing.T) {
	txn := domain.Transaction{
		Category:     "  Food  ",
		Description:  "\tlunch ",
		Counterparty: " Bob ",
	}
	txn.Normalize()

	assert.Equal(t, "Food", txn.Category)
	assert.Equal(t, "lunch", txn.Description)
	assert.Equal(t, "Bob", txn.Counterparty)
}

func TestTransaction_Validate(t *testing.T) {
	valid := func() domain.Transaction {
		return domain.Transaction{
			Kind:     domain.KindExpense,
			Amount:   decimal.NewFromInt(10),
			Category: "Food",
		}
	}

	tests := []struct {
		name    string
		mutate  func(*domain.Transaction)
		wantErr bool
	}{
		{
			name:    "valid expense",
			mutate:  func(t *domain.Transaction) {},
			wantErr: false,
		},
		{
			name: "zero amount is legal",
			mutate: func(t *domain.Transaction) {
				t.Amount = decimal.Zero
			},
			wantErr: false,
		},
		{
			name: "negative amount rejected",
			mutate: func(t *domain.Transaction) {
				t.Amount = decimal.NewFromInt(-1)
			},
			wantErr: true,
		},
		{
			name: "unknown kind rejected",
			mutate: func(t *domain.Transaction) {
				t.Kind = "transfer"
			},
			wantErr: true,
		},
		{
			name: "missing category rejected",
			mutate: func(t *domain.Transaction) {
				t.Category = ""
			},
			wantErr: true,
		},
		{
			name: "debt kind without counterparty rejected",
			mutate: func(t *domain.Transaction) {
				t.Kind = domain.KindLent
				t.Counterparty = ""
			},
			wantErr: true,
		},
		{
			name: "debt kind with counterparty accepted",
			mutate: func(t *domain.Transaction) {
				t.Kind = domain.KindBorrowed
				t.Counterparty = "Carol"
			},
			wantErr: false,
		},
		{
			name: "non-debt kind needs no counterparty",
			mutate: func(t *domain.Transaction) {
				t.Kind = domain.KindIncome
				t.Counterparty = ""
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txn := valid()
			tt.mutate(&txn)
			err := txn.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUser_EffectiveBudgetLimit(t *testing.T) {
	user := domain.User{}
	assert.True(t, user.EffectiveBudgetLimit().Equal(domain.DefaultBudgetLimit))

	custom := decimal.NewFromInt(5000)
	user.BudgetLimit = &custom
	assert.True(t, user.EffectiveBudgetLimit().Equal(custom))
}
