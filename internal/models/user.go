package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// User is the database representation of a user row.
type User struct {
	UserID         string
	Username       string
	Email          string
	Name           string
	PasswordHash   *string
	AuthProvider   string
	ProviderUserID *string
	IsVerified     bool
	BudgetLimit    *decimal.Decimal

	RefreshTokenHash       string
	RefreshTokenExpiryTime *time.Time

	AuditFields
	DeletedAt *time.Time
}
