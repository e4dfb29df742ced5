// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"shelf/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for account persistence.
var (
	// ErrAccountNotFound is returned when no account matches the lookup.
	ErrAccountNotFound = errors.New("account not found")
	// ErrUsernameExists is returned when the username is already registered.
	ErrUsernameExists = errors.New("username already exists")
	// ErrSpotifyUserAlreadyLinked is returned when another account already links the Spotify identity.
	ErrSpotifyUserAlreadyLinked = errors.New("spotify user already linked to another account")
)

// AccountRepository defines the persistence operations for accounts.
type AccountRepository interface {
	// CreateAccount persists a new account and fills in generated fields.
	CreateAccount(ctx context.Context, account *entity.Account) error

	// FindAccountByID retrieves an account by its id.
	FindAccountByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindAccountByUsername retrieves an account by its unique username.
	FindAccountByUsername(ctx context.Context, username string) (*entity.Account, error)

	// FindAccountBySpotifyUserID retrieves the account linked to a Spotify identity.
	FindAccountBySpotifyUserID(ctx context.Context, spotifyUserID uuid.UUID) (*entity.Account, error)

	// LinkSpotifyUser points the account at a Spotify identity.
	LinkSpotifyUser(ctx context.Context, accountID, spotifyUserID uuid.UUID) error
}
