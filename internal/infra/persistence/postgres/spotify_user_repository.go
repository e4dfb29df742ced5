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
	"gorm.io/gorm/clause"
)

type spotifyUserRepository struct {
	db *gorm.DB
}

// NewSpotifyUserRepository creates a repository for linked Spotify identities.
func NewSpotifyUserRepository(db *gorm.DB) repository.SpotifyUserRepository {
	return &spotifyUserRepository{db: db}
}

// UpsertSpotifyUser inserts the identity keyed by spotify_id. On conflict the profile
// fields are refreshed and the refresh token is replaced only when a new one is given.
func (repo *spotifyUserRepository) UpsertSpotifyUser(ctx context.Context, user *entity.SpotifyUser) (*entity.SpotifyUser, error) {
	userM := &model.SpotifyUserModel{
		SpotifyID:    user.SpotifyID,
		DisplayName:  user.DisplayName,
		Email:        user.Email,
		RefreshToken: user.RefreshToken,
	}

	assignments := clause.Assignments(map[string]any{
		"display_name": gorm.Expr("EXCLUDED.display_name"),
		"email":        gorm.Expr("EXCLUDED.email"),
		"updated_at":   gorm.Expr("EXCLUDED.updated_at"),
	})
	if user.RefreshToken != "" {
		assignments = append(assignments, clause.Assignment{
			Column: clause.Column{Name: "refresh_token"},
			Value:  gorm.Expr("EXCLUDED.refresh_token"),
		})
	}

	err := repo.db.WithContext(ctx).
		Clauses(
			clause.OnConflict{
				Columns:   []clause.Column{{Name: "spotify_id"}},
				DoUpdates: assignments,
			},
			clause.Returning{},
		).
		Create(userM).Error
	if err != nil {
		if isNotNullConstraintViolation(err) {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("spotify id is required")
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to upsert spotify user")
	}

	return toSpotifyUserDomain(userM), nil
}

// FindSpotifyUserByID retrieves an identity by its internal id.
func (repo *spotifyUserRepository) FindSpotifyUserByID(ctx context.Context, id uuid.UUID) (*entity.SpotifyUser, error) {
	var userM model.SpotifyUserModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSpotifyUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find spotify user")
	}

	return toSpotifyUserDomain(&userM), nil
}

// UpdateRefreshToken replaces the stored refresh token. Empty tokens are ignored.
func (repo *spotifyUserRepository) UpdateRefreshToken(ctx context.Context, id uuid.UUID, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}

	result := repo.db.WithContext(ctx).
		Model(&model.SpotifyUserModel{}).
		Where("id = ?", id).
		Update("refresh_token", refreshToken)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update refresh token")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSpotifyUserNotFound
	}

	return nil
}

func toSpotifyUserDomain(data *model.SpotifyUserModel) *entity.SpotifyUser {
	if data == nil {
		return nil
	}

	return &entity.SpotifyUser{
		ID:           data.ID,
		SpotifyID:    data.SpotifyID,
		DisplayName:  data.DisplayName,
		Email:        data.Email,
		RefreshToken: data.RefreshToken,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
