package repository

import (
	"context"

	"shelf/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrSpotifyUserNotFound is returned when a Spotify identity is not stored.
var ErrSpotifyUserNotFound = errors.New("spotify user not found")

// SpotifyUserRepository defines the persistence operations for linked Spotify identities.
type SpotifyUserRepository interface {
	// UpsertSpotifyUser inserts the identity or, when spotify_id already exists, updates
	// display name and email. The refresh token is only written when non-empty.
	// It returns the resulting row.
	UpsertSpotifyUser(ctx context.Context, user *entity.SpotifyUser) (*entity.SpotifyUser, error)

	// FindSpotifyUserByID retrieves an identity by its internal id.
	FindSpotifyUserByID(ctx context.Context, id uuid.UUID) (*entity.SpotifyUser, error)

	// UpdateRefreshToken replaces the stored refresh token. Empty tokens are ignored.
	UpdateRefreshToken(ctx context.Context, id uuid.UUID, refreshToken string) error
}
