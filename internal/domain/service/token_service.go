package service

import (
	"time"

	"github.com/google/uuid"
)

// SessionClaims is the decoded payload of a verified session token.
type SessionClaims struct {
	Subject   uuid.UUID
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenService issues and verifies stateless session tokens.
// Tokens cannot be revoked before they expire.
type TokenService interface {
	// IssueToken creates a signed token for the given account.
	IssueToken(subject uuid.UUID) (token string, expiresAt time.Time, err error)

	// VerifyToken checks structure, signature and expiry, in that order.
	// It fails with ErrMalformedToken, ErrInvalidSignature or ErrExpiredToken.
	VerifyToken(token string) (*SessionClaims, error)
}
