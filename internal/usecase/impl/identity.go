// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"

	"shelf/internal/domain/entity"
	domainerrors "shelf/internal/domain/errors"
	"shelf/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// loadAccount maps a vanished account to ErrInvalidToken: the session outlived its subject.
func loadAccount(ctx context.Context, accountRepo repository.AccountRepository, accountID uuid.UUID) (*entity.Account, error) {
	account, err := accountRepo.FindAccountByID(ctx, accountID)
	if errors.Is(err, repository.ErrAccountNotFound) {
		return nil, domainerrors.ErrInvalidToken.WrapMessage("account no longer exists")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load account")
	}

	return account, nil
}

// resolveSpotifyUserID returns the Spotify identity the account acts as.
func resolveSpotifyUserID(ctx context.Context, accountRepo repository.AccountRepository, accountID uuid.UUID) (uuid.UUID, error) {
	account, err := loadAccount(ctx, accountRepo, accountID)
	if err != nil {
		return uuid.Nil, err
	}
	if !account.IsLinked() {
		return uuid.Nil, domainerrors.ErrSpotifyNotLinked
	}

	return *account.SpotifyUserID, nil
}
