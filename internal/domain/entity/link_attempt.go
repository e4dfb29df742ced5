package entity

import (
	"time"

	"github.com/google/uuid"
)

// LinkAttempt is a pending Spotify authorization. It holds the PKCE verifier
// server-side between the redirect to Spotify and the callback.
type LinkAttempt struct {
	State     string    // Opaque token echoed back by the provider as the OAuth state parameter.
	AccountID uuid.UUID // Account that started the attempt.
	Verifier  string    // PKCE code verifier.
	ExpiresAt time.Time
}
