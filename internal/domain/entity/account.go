// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is an application login identity.
// It owns nothing directly; lists and ratings hang off the linked SpotifyUser.
type Account struct {
	ID            uuid.UUID  `json:"id"`
	Username      string     `json:"username"`
	PasswordHash  string     `json:"-"`                         // salt:derivedKeyHex, never serialised
	SpotifyUserID *uuid.UUID `json:"spotify_user_id,omitempty"` // nil until a Spotify account is linked
	CreatedAt     time.Time  `json:"created_at"`
}

// IsLinked reports whether the account has a linked Spotify identity.
func (a *Account) IsLinked() bool {
	return a != nil && a.SpotifyUserID != nil && *a.SpotifyUserID != uuid.Nil
}
