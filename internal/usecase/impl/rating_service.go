package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "shelf/internal/delivery/context"
	"shelf/internal/domain/entity"
	domainerrors "shelf/internal/domain/errors"
	"shelf/internal/domain/repository"
	"shelf/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ratingService implements the RatingUsecase interface.
type ratingService struct {
	accountRepo repository.AccountRepository
	ratingRepo  repository.RatingRepository
	logger      *slog.Logger
}

// RatingServiceParams holds dependencies for RatingService, injected by Fx.
type RatingServiceParams struct {
	fx.In

	AccountRepo repository.AccountRepository
	RatingRepo  repository.RatingRepository
	Logger      *slog.Logger
}

// NewRatingService is the constructor for ratingService.
func NewRatingService(params RatingServiceParams) usecase.RatingUsecase {
	return &ratingService{
		accountRepo: params.AccountRepo,
		ratingRepo:  params.RatingRepo,
		logger:      params.Logger,
	}
}

// RateAlbum records the score, replacing any earlier score for the same album.
func (srv *ratingService) RateAlbum(ctx context.Context, accountID uuid.UUID, albumID string, rating int) (*entity.Rating, error) {
	albumID = strings.TrimSpace(albumID)
	if albumID == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("album_id is required")
	}
	if rating < entity.MinRating || rating > entity.MaxRating {
		return nil, domainerrors.ErrRatingOutOfRange
	}

	userID, err := resolveSpotifyUserID(ctx, srv.accountRepo, accountID)
	if err != nil {
		return nil, err
	}

	saved, err := srv.ratingRepo.UpsertRating(ctx, &entity.Rating{
		UserID:  userID,
		AlbumID: albumID,
		Rating:  rating,
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrRatingOutOfRange) {
			return nil, domainerrors.ErrRatingOutOfRange
		}

		return nil, errors.Wrap(err, "failed to save rating")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Debug("Album rated",
		slog.String("albumID", albumID),
		slog.Int("rating", rating),
	)

	return saved, nil
}

// ListRatings returns the caller's ratings, newest first. Unlinked accounts get an empty slice.
func (srv *ratingService) ListRatings(ctx context.Context, accountID uuid.UUID) ([]*entity.Rating, error) {
	userID, err := resolveSpotifyUserID(ctx, srv.accountRepo, accountID)
	if errors.Is(err, domainerrors.ErrSpotifyNotLinked) {
		return []*entity.Rating{}, nil
	}
	if err != nil {
		return nil, err
	}

	ratings, err := srv.ratingRepo.FindRatingsByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load ratings")
	}
	if ratings == nil {
		ratings = []*entity.Rating{}
	}

	return ratings, nil
}
