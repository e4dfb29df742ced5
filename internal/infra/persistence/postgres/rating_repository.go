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

type ratingRepository struct {
	db *gorm.DB
}

// NewRatingRepository creates a GORM backed rating repository.
func NewRatingRepository(db *gorm.DB) repository.RatingRepository {
	return &ratingRepository{db: db}
}

// UpsertRating inserts or replaces the score for (user, album) and returns the row.
func (repo *ratingRepository) UpsertRating(ctx context.Context, rating *entity.Rating) (*entity.Rating, error) {
	ratingM := &model.RatingModel{
		SpotifyUserID: rating.UserID,
		AlbumID:       rating.AlbumID,
		Rating:        rating.Rating,
	}

	err := repo.db.WithContext(ctx).
		Clauses(
			clause.OnConflict{
				Columns:   []clause.Column{{Name: "spotify_user_id"}, {Name: "album_id"}},
				DoUpdates: clause.AssignmentColumns([]string{"rating", "updated_at"}),
			},
			clause.Returning{},
		).
		Create(ratingM).Error
	if err != nil {
		if isCheckConstraintViolation(err) {
			return nil, domainerrors.ErrRatingOutOfRange
		}
		if isForeignKeyConstraintViolation(err) {
			return nil, repository.ErrSpotifyUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to upsert rating")
	}

	return toRatingDomain(ratingM), nil
}

// FindRatingsByUser returns the user's ratings, newest first.
func (repo *ratingRepository) FindRatingsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Rating, error) {
	var ratingMs []*model.RatingModel
	if err := repo.db.WithContext(ctx).
		Where("spotify_user_id = ?", userID).
		Order("created_at DESC").
		Find(&ratingMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find ratings")
	}

	ratings := make([]*entity.Rating, 0, len(ratingMs))
	for _, ratingM := range ratingMs {
		ratings = append(ratings, toRatingDomain(ratingM))
	}

	return ratings, nil
}

func toRatingDomain(data *model.RatingModel) *entity.Rating {
	return &entity.Rating{
		ID:        data.ID,
		UserID:    data.SpotifyUserID,
		AlbumID:   data.AlbumID,
		Rating:    data.Rating,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
