package services

import (
	"context"

	"golang.org/x/oauth2"

	"github.com/taskforcepro/wallet_backend/internal/core/domain"
)

// GoogleOAuthSvcFacade defines the server-side Google OAuth web flow used by
// browser clients, as opposed to the ID-token flow used by native clients.
type GoogleOAuthSvcFacade interface {
	// GenerateStateString creates a secure random CSRF token for the flow.
	GenerateStateString(ctx context.Context) (string, error)

	// GetGoogleLoginURL returns the URL to redirect the user to for Google login.
	GetGoogleLoginURL(ctx context.Context, state string) string

	// ExchangeCodeForToken exchanges an OAuth authorization code for a token.
	ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error)

	// GetUserInfo uses the access token to get user information from Google.
	GetUserInfo(ctx context.Context, token *oauth2.Token) (*domain.GoogleUserInfo, error)
}
