// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"shelf/internal/domain/entity"
	domainerrors "shelf/internal/domain/errors"
	"shelf/internal/domain/repository"
	"shelf/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// accountRepository implements the domain.AccountRepository interface using GORM.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository is the constructor for accountRepository.
// It returns the repository as a domain.AccountRepository interface, adhering to dependency inversion.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

// CreateAccount persists a new account and fills in its generated id and timestamp.
func (repo *accountRepository) CreateAccount(ctx context.Context, account *entity.Account) error {
	accountM := fromAccountDomain(account)

	if err := repo.db.WithContext(ctx).Create(accountM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrUsernameExists
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required account information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create account")
	}

	account.ID = accountM.ID
	account.CreatedAt = accountM.CreatedAt

	return nil
}

// FindAccountByID retrieves an account by its id.
func (repo *accountRepository) FindAccountByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	return repo.findOne(ctx, "id = ?", id)
}

// FindAccountByUsername retrieves an account by its unique username.
func (repo *accountRepository) FindAccountByUsername(ctx context.Context, username string) (*entity.Account, error) {
	return repo.findOne(ctx, "username = ?", username)
}

// FindAccountBySpotifyUserID retrieves the account linked to a Spotify identity.
func (repo *accountRepository) FindAccountBySpotifyUserID(ctx context.Context, spotifyUserID uuid.UUID) (*entity.Account, error) {
	return repo.findOne(ctx, "spotify_user_id = ?", spotifyUserID)
}

// LinkSpotifyUser points the account at a Spotify identity.
func (repo *accountRepository) LinkSpotifyUser(ctx context.Context, accountID, spotifyUserID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("id = ?", accountID).
		Update("spotify_user_id", spotifyUserID)

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrSpotifyUserAlreadyLinked
		}
		if isForeignKeyConstraintViolation(result.Error) {
			return repository.ErrSpotifyUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to link spotify user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

func (repo *accountRepository) findOne(ctx context.Context, query string, arg any) (*entity.Account, error) {
	var accountM model.AccountModel
	if err := repo.db.WithContext(ctx).Where(query, arg).First(&accountM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account")
	}

	return toAccountDomain(&accountM), nil
}

// --- Mapper Functions ---

func toAccountDomain(data *model.AccountModel) *entity.Account {
	if data == nil {
		return nil
	}

	return &entity.Account{
		ID:            data.ID,
		Username:      data.Username,
		PasswordHash:  data.PasswordHash,
		SpotifyUserID: data.SpotifyUserID,
		CreatedAt:     data.CreatedAt,
	}
}

func fromAccountDomain(data *entity.Account) *model.AccountModel {
	if data == nil {
		return nil
	}

	return &model.AccountModel{
		ID:            data.ID,
		Username:      data.Username,
		PasswordHash:  data.PasswordHash,
		SpotifyUserID: data.SpotifyUserID,
	}
}
