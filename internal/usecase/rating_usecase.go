package usecase

import (
	"context"

	"shelf/internal/domain/entity"

	"github.com/google/uuid"
)

// RatingUsecase records album scores for the account's Spotify identity.
type RatingUsecase interface {
	RateAlbum(ctx context.Context, accountID uuid.UUID, albumID string, rating int) (*entity.Rating, error)
	ListRatings(ctx context.Context, accountID uuid.UUID) ([]*entity.Rating, error)
}
