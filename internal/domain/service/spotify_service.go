package service

import (
	"context"
	"time"

	"shelf/internal/domain/entity"
)

// SpotifyToken is a token set returned by the provider's token endpoint.
type SpotifyToken struct {
	AccessToken  string
	RefreshToken string // Empty when the provider did not issue or rotate one.
	ExpiresAt    time.Time
}

// SpotifyOAuthService talks to the Spotify accounts service and Web API.
type SpotifyOAuthService interface {
	// NewVerifier returns a fresh high-entropy PKCE code verifier.
	NewVerifier() string

	// AuthorizationURL builds the consent URL carrying state and the S256 challenge of verifier.
	AuthorizationURL(state, verifier string) string

	// ExchangeCode redeems an authorization code with its PKCE verifier.
	ExchangeCode(ctx context.Context, code, verifier string) (*SpotifyToken, error)

	// Refresh performs a refresh_token grant. When the provider does not rotate the
	// refresh token, the returned RefreshToken equals the one passed in.
	Refresh(ctx context.Context, refreshToken string) (*SpotifyToken, error)

	// GetProfile fetches the current user's profile with an access token.
	GetProfile(ctx context.Context, accessToken string) (*entity.SpotifyProfile, error)
}
