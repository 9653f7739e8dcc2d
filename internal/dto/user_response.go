package dto

import (
	"time"

	"github.com/fintrackr/finance_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// UserResponse is the wire representation of a user.
type UserResponse struct {
	UserID       string          `json:"userID"`
	Username     string          `json:"username"`
	Email        string          `json:"email"`
	Name         string          `json:"name,omitempty"`
	AuthProvider string          `json:"authProvider"`
	IsVerified   bool            `json:"isVerified"`
	BudgetLimit  decimal.Decimal `json:"budgetLimit"` // Effective limit (default when unset)
	CreatedAt    time.Time       `json:"createdAt"`
}

// ToUserResponse converts a domain.User to its response DTO.
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID:       user.UserID,
		Username:     user.Username,
		Email:        user.Email,
		Name:         user.Name,
		AuthProvider: string(user.AuthProvider),
		IsVerified:   user.IsVerified,
		BudgetLimit:  user.EffectiveBudgetLimit(),
		CreatedAt:    user.CreatedAt,
	}
}
