package repository

import (
	"context"

	"shelf/internal/domain/entity"

	"github.com/google/uuid"
)

// RatingRepository defines the persistence operations for album ratings.
type RatingRepository interface {
	// UpsertRating inserts or replaces the score for (user, album) and returns the row.
	UpsertRating(ctx context.Context, rating *entity.Rating) (*entity.Rating, error)

	// FindRatingsByUser returns the user's ratings, newest first.
	FindRatingsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Rating, error)
}
