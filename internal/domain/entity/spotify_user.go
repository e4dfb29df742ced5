package entity

import (
	"time"

	"github.com/google/uuid"
)

// SpotifyUser is the external music-service identity an Account links to.
type SpotifyUser struct {
	ID          uuid.UUID `json:"id"`
	SpotifyID   string    `json:"spotify_id"`   // Provider-side user id, unique.
	DisplayName string    `json:"display_name"` // May be empty when the provider omits it.
	Email       string    `json:"email"`
	// RefreshToken rotates over time. An empty value means "keep what is stored".
	RefreshToken string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// SpotifyProfile is what the provider's profile endpoint reports about the current user.
type SpotifyProfile struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
}
