package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AuthProvider identifies how a user authenticates.
type AuthProvider string

const (
	ProviderLocal  AuthProvider = "LOCAL"
	ProviderGoogle AuthProvider = "GOOGLE"
)

// DefaultBudgetLimit applies when a user has not configured a budget limit.
var DefaultBudgetLimit = decimal.NewFromInt(20000)

// User represents a user of the application in the domain.
type User struct {
	UserID         string       `json:"userID"` // Primary Key (UUID)
	Username       string       `json:"username"`
	Email          string       `json:"email"` // Stored lowercased
	Name           string       `json:"name"`
	PasswordHash   *string      `json:"-"` // Nil for OAuth-only users
	AuthProvider   AuthProvider `json:"authProvider"`
	ProviderUserID *string      `json:"-"` // External provider's subject
	IsVerified     bool         `json:"isVerified"`

	// BudgetLimit is the configured monthly spending limit; nil means the
	// DefaultBudgetLimit applies.
	BudgetLimit *decimal.Decimal `json:"budgetLimit,omitempty"`

	RefreshTokenHash       string     `json:"-"`
	RefreshTokenExpiryTime *time.Time `json:"-"`

	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"` // Used for soft delete
}

// EffectiveBudgetLimit returns the configured budget limit, or the default
// when none is stored.
func (u *User) EffectiveBudgetLimit() decimal.Decimal {
	if u.BudgetLimit != nil && u.BudgetLimit.IsPositive() {
		return *u.BudgetLimit
	}
	return DefaultBudgetLimit
}

// GoogleUserInfo holds the subset of the Google userinfo payload we consume.
type GoogleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
}
