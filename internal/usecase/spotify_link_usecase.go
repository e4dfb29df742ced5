package usecase

import (
	"context"
	"time"

	"shelf/internal/domain/entity"

	"github.com/google/uuid"
)

// BeginLinkOutput tells the client where to send the user for consent.
type BeginLinkOutput struct {
	AuthorizeURL string
	State        string
	ExpiresAt    time.Time
}

// CompleteLinkInput carries what the provider redirected back with.
type CompleteLinkInput struct {
	AccountID uuid.UUID
	State     string
	Code      string
}

// UpstreamToken is a short-lived Spotify access token handed to the client.
type UpstreamToken struct {
	AccessToken string
	ExpiresAt   time.Time
}

// SpotifyLinkUsecase runs the Authorization Code with PKCE flow that links an
// account to its Spotify identity, and vends upstream access tokens afterwards.
type SpotifyLinkUsecase interface {
	BeginLink(ctx context.Context, accountID uuid.UUID) (*BeginLinkOutput, error)
	CompleteLink(ctx context.Context, input *CompleteLinkInput) (*entity.SpotifyUser, error)
	GetUpstreamAccessToken(ctx context.Context, accountID uuid.UUID) (*UpstreamToken, error)
}
