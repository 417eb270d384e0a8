package services

import (
	"context"
	"time"

	"github.com/taskforcepro/wallet_backend/internal/core/domain"
	"github.com/taskforcepro/wallet_backend/internal/dto"
)

// UserSvcFacade defines user account management operations.
type UserSvcFacade interface {
	RegisterUser(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest) (*domain.User, error)

	// AuthenticateUser verifies email/password credentials and returns the
	// user, or ErrUnauthorized on mismatch.
	AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error)

	// FindOrCreateGoogleUser resolves the user for a validated Google ID
	// token payload, creating one on first sign-in.
	FindOrCreateGoogleUser(ctx context.Context, providerID, email, name string) (*domain.User, error)

	// StoreRefreshToken persists the hash of a refresh token with its expiry.
	StoreRefreshToken(ctx context.Context, userID, refreshToken string, expiry time.Time) error

	// ClearRefreshToken invalidates the stored refresh token.
	ClearRefreshToken(ctx context.Context, userID string) error
}

// TokenSvcFacade issues and validates the tokens used by the auth endpoints.
type TokenSvcFacade interface {
	// GenerateAccessToken creates a signed JWT for the user and returns it
	// with its expiry time.
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)

	// GenerateRefreshToken creates an opaque refresh token and its expiry.
	GenerateRefreshToken(ctx context.Context, user *domain.User) (string, time.Time, error)

	// ValidateRefreshToken verifies a presented refresh token against the
	// stored hash for the user and returns the user on success.
	ValidateRefreshToken(ctx context.Context, userID, refreshToken string) (*domain.User, error)

	// ValidateGoogleIDToken verifies a Google ID token and returns the
	// provider subject, email and display name.
	ValidateGoogleIDToken(ctx context.Context, idToken string) (providerID, email, name string, err error)
}
