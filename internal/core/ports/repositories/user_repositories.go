package repositories

import (
	"context"
	"time"

	"github.com/fintrackr/finance_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	// SaveUser inserts a new user.
	SaveUser(ctx context.Context, user domain.User) error

	// FindUserByID retrieves a non-deleted user by ID, or apperrors.ErrNotFound.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByEmail retrieves a non-deleted user by (lowercased) email.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// FindUserByProviderDetails retrieves a user by external auth provider identity.
	FindUserByProviderDetails(ctx context.Context, authProvider string, providerUserID string) (*domain.User, error)

	// UpdateUser persists mutable profile fields (name, budget limit).
	UpdateUser(ctx context.Context, user domain.User) error

	// UpdateBudgetLimit stores the configured budget limit for a user.
	UpdateBudgetLimit(ctx context.Context, userID string, limit decimal.Decimal, updatedAt time.Time) error

	// UpdateRefreshToken stores the hashed refresh token and its expiry.
	UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error

	// ClearRefreshToken removes any stored refresh token for the user.
	ClearRefreshToken(ctx context.Context, userID string) error

	// MarkUserDeleted soft-deletes a user.
	MarkUserDeleted(ctx context.Context, userID string, deletedAt time.Time, deletedBy string) error
}
