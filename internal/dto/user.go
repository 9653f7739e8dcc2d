package dto

import (
	"github.com/shopspring/decimal"
)

// RegisterRequest is the payload for creating a local account.
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name"`
}

// UpdateUserRequest defines the data allowed for updating a user.
// Using pointers to differentiate between omitted fields and zero-value fields.
type UpdateUserRequest struct {
	Name *string `json:"name"` // Only name is updatable for now
}

// UpdateBudgetRequest sets the user's budget limit. The limit must be
// positive; the service rejects anything else as a configuration error.
type UpdateBudgetRequest struct {
	BudgetLimit decimal.Decimal `json:"budgetLimit"`
}
