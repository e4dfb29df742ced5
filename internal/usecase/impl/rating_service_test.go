package impl

import (
	"context"
	"testing"

	"shelf/internal/domain/entity"
	domainerrors "shelf/internal/domain/errors"
	mockRepo "shelf/internal/mocks/repository"
	"shelf/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type ratingServiceFixtures struct {
	service     usecase.RatingUsecase
	accountRepo *mockRepo.MockAccountRepository
	ratingRepo  *mockRepo.MockRatingRepository
}

func createTestRatingService(t *testing.T) ratingServiceFixtures {
	accountRepo := mockRepo.NewMockAccountRepository(t)
	ratingRepo := mockRepo.NewMockRatingRepository(t)

	service := NewRatingService(RatingServiceParams{
		AccountRepo: accountRepo,
		RatingRepo:  ratingRepo,
		Logger:      newTestLogger(),
	})

	return ratingServiceFixtures{service: service, accountRepo: accountRepo, ratingRepo: ratingRepo}
}

func TestRatingService_RateAlbum_Success(t *testing.T) {
	fx := createTestRatingService(t)

	ctx := context.Background()
	accountID := uuid.New()
	spotifyUserID := uuid.New()
	saved := &entity.Rating{ID: uuid.New(), UserID: spotifyUserID, AlbumID: "album-1", Rating: 8}

	fx.accountRepo.EXPECT().FindAccountByID(ctx, accountID).Return(linkedAccount(accountID, spotifyUserID), nil)
	fx.ratingRepo.EXPECT().
		UpsertRating(ctx, mock.MatchedBy(func(r *entity.Rating) bool {
			return r.UserID == spotifyUserID && r.AlbumID == "album-1" && r.Rating == 8
		})).
		Return(saved, nil)

	got, err := fx.service.RateAlbum(ctx, accountID, " album-1 ", 8)

	require.NoError(t, err)
	assert.Equal(t, saved, got)
}

func TestRatingService_RateAlbum_OutOfRange(t *testing.T) {
	fx := createTestRatingService(t)

	for _, score := range []int{0, 11, -3} {
		_, err := fx.service.RateAlbum(context.Background(), uuid.New(), "album-1", score)
		assert.Equal(t, domainerrors.ErrRatingOutOfRange, err, "score %d", score)
	}
}

func TestRatingService_RateAlbum_Bounds(t *testing.T) {
	fx := createTestRatingService(t)

	ctx := context.Background()
	accountID := uuid.New()
	spotifyUserID := uuid.New()

	fx.accountRepo.EXPECT().FindAccountByID(ctx, accountID).Return(linkedAccount(accountID, spotifyUserID), nil)
	fx.ratingRepo.EXPECT().UpsertRating(ctx, mock.AnythingOfType("*entity.Rating")).
		RunAndReturn(func(_ context.Context, r *entity.Rating) (*entity.Rating, error) {
			return r, nil
		})

	for _, score := range []int{entity.MinRating, entity.MaxRating} {
		got, err := fx.service.RateAlbum(ctx, accountID, "album-1", score)
		require.NoError(t, err)
		assert.Equal(t, score, got.Rating)
	}
}

func TestRatingService_RateAlbum_NotLinked(t *testing.T) {
	fx := createTestRatingService(t)

	ctx := context.Background()
	accountID := uuid.New()

	fx.accountRepo.EXPECT().FindAccountByID(ctx, accountID).Return(&entity.Account{ID: accountID}, nil)

	_, err := fx.service.RateAlbum(ctx, accountID, "album-1", 5)

	assert.Equal(t, domainerrors.ErrSpotifyNotLinked, err)
}

func TestRatingService_RateAlbum_MissingAlbum(t *testing.T) {
	fx := createTestRatingService(t)

	_, err := fx.service.RateAlbum(context.Background(), uuid.New(), "  ", 5)

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestRatingService_ListRatings(t *testing.T) {
	fx := createTestRatingService(t)

	ctx := context.Background()
	accountID := uuid.New()
	spotifyUserID := uuid.New()
	ratings := []*entity.Rating{
		{ID: uuid.New(), AlbumID: "newer", Rating: 9},
		{ID: uuid.New(), AlbumID: "older", Rating: 3},
	}

	fx.accountRepo.EXPECT().FindAccountByID(ctx, accountID).Return(linkedAccount(accountID, spotifyUserID), nil)
	fx.ratingRepo.EXPECT().FindRatingsByUser(ctx, spotifyUserID).Return(ratings, nil)

	got, err := fx.service.ListRatings(ctx, accountID)

	require.NoError(t, err)
	assert.Equal(t, ratings, got)
}

func TestRatingService_ListRatings_NotLinkedIsEmpty(t *testing.T) {
	fx := createTestRatingService(t)

	ctx := context.Background()
	accountID := uuid.New()

	fx.accountRepo.EXPECT().FindAccountByID(ctx, accountID).Return(&entity.Account{ID: accountID}, nil)

	got, err := fx.service.ListRatings(ctx, accountID)

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestRatingService_ListRatings_RepositoryError(t *testing.T) {
	fx := createTestRatingService(t)

	ctx := context.Background()
	accountID := uuid.New()
	spotifyUserID := uuid.New()

	fx.accountRepo.EXPECT().FindAccountByID(ctx, accountID).Return(linkedAccount(accountID, spotifyUserID), nil)
	fx.ratingRepo.EXPECT().FindRatingsByUser(ctx, spotifyUserID).Return(nil, errors.New("db down"))

	_, err := fx.service.ListRatings(ctx, accountID)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load ratings")
}
