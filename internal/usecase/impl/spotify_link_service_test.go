package impl

import (
	"context"
	"testing"
	"time"

	"shelf/config"
	"shelf/internal/domain/entity"
	domainerrors "shelf/internal/domain/errors"
	"shelf/internal/domain/repository"
	"shelf/internal/domain/service"
	mockRepo "shelf/internal/mocks/repository"
	mockSvc "shelf/internal/mocks/service"
	"shelf/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var linkTestNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type spotifyLinkServiceFixtures struct {
	service         *spotifyLinkService
	txManager       *mockRepo.MockTransactionManager
	accountRepo     *mockRepo.MockAccountRepository
	spotifyUserRepo *mockRepo.MockSpotifyUserRepository
	linkAttemptRepo *mockRepo.MockLinkAttemptRepository
	oauth           *mockSvc.MockSpotifyOAuthService
	publisher       *recordingPublisher
}

func createTestSpotifyLinkService(t *testing.T) spotifyLinkServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	accountRepo := mockRepo.NewMockAccountRepository(t)
	spotifyUserRepo := mockRepo.NewMockSpotifyUserRepository(t)
	linkAttemptRepo := mockRepo.NewMockLinkAttemptRepository(t)
	oauth := mockSvc.NewMockSpotifyOAuthService(t)
	publisher := &recordingPublisher{}

	service := NewSpotifyLinkService(SpotifyLinkServiceParams{
		TxManager:       txManager,
		AccountRepo:     accountRepo,
		SpotifyUserRepo: spotifyUserRepo,
		LinkAttemptRepo: linkAttemptRepo,
		OAuth:           oauth,
		Publisher:       publisher,
		Config:          &config.Config{LinkAttempt: &config.LinkAttemptConfig{TTL: 10 * time.Minute}},
		Logger:          newTestLogger(),
	}).(*spotifyLinkService)
	service.now = func() time.Time { return linkTestNow }

	return spotifyLinkServiceFixtures{
		service:         service,
		txManager:       txManager,
		accountRepo:     accountRepo,
		spotifyUserRepo: spotifyUserRepo,
		linkAttemptRepo: linkAttemptRepo,
		oauth:           oauth,
		publisher:       publisher,
	}
}

// expectPersist wires a transaction whose factory hands out the given repositories.
func (fx spotifyLinkServiceFixtures) expectPersist(
	t *testing.T,
	txAccountRepo *mockRepo.MockAccountRepository,
	txSpotifyUserRepo *mockRepo.MockSpotifyUserRepository,
) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().AccountRepo().Return(txAccountRepo)
	factory.EXPECT().SpotifyUserRepo().Return(txSpotifyUserRepo)
	expectTx(fx.txManager, factory)
}

func pendingAttempt(accountID uuid.UUID) *entity.LinkAttempt {
	return &entity.LinkAttempt{
		State:     "state-1",
		AccountID: accountID,
		Verifier:  "verifier-1",
		ExpiresAt: linkTestNow.Add(5 * time.Minute),
	}
}

func TestSpotifyLinkService_BeginLink_Success(t *testing.T) {
	fx := createTestSpotifyLinkService(t)

	ctx := context.Background()
	accountID := uuid.New()

	var saved *entity.LinkAttempt

	fx.accountRepo.EXPECT().FindAccountByID(ctx, accountID).Return(&entity.Account{ID: accountID}, nil)
	fx.oauth.EXPECT().NewVerifier().Return("verifier-1")
	fx.linkAttemptRepo.EXPECT().
		Save(ctx, mock.AnythingOfType("*entity.LinkAttempt"), 10*time.Minute).
		Run(func(_ context.Context, attempt *entity.LinkAttempt, _ time.Duration) {
			saved = attempt
		}).
		Return(nil)
	fx.oauth.EXPECT().
		AuthorizationURL(mock.AnythingOfType("string"), "verifier-1").
		Return("https://accounts.example/authorize?state=x")

	out, err := fx.service.BeginLink(ctx, accountID)

	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, "https://accounts.example/authorize?state=x", out.AuthorizeURL)
	assert.Equal(t, saved.State, out.State)
	assert.NotEmpty(t, out.State)
	assert.Equal(t, accountID, saved.AccountID)
	assert.Equal(t, "verifier-1", saved.Verifier)
	assert.True(t, linkTestNow.Add(10*time.Minute).Equal(out.ExpiresAt))
}

func TestSpotifyLinkService_BeginLink_AccountGone(t *testing.T) {
	fx := createTestSpotifyLinkService(t)

	ctx := context.Background()
	accountID := uuid.New()

	fx.accountRepo.EXPECT().FindAccountByID(ctx, accountID).Return(nil, repository.ErrAccountNotFound)

	_, err := fx.service.BeginLink(ctx, accountID)

	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestSpotifyLinkService_CompleteLink_RetriesProfileOnceAfterRefresh(t *testing.T) {
	fx := createTestSpotifyLinkService(t)

	ctx := context.Background()
	accountID := uuid.New()
	linked := &entity.SpotifyUser{ID: uuid.New(), SpotifyID: "sp-user", DisplayName: "Listener"}

	fx.linkAttemptRepo.EXPECT().Consume(ctx, "state-1").Return(pendingAttempt(accountID), nil)
	fx.oauth.EXPECT().ExchangeCode(ctx, "code-1", "verifier-1").
		Return(&service.SpotifyToken{AccessToken: "access-1", RefreshToken: "refresh-1"}, nil)
	fx.oauth.EXPECT().GetProfile(ctx, "access-1").Return(nil, errors.New("status 401")).Once()
	fx.oauth.EXPECT().Refresh(ctx, "refresh-1").
		Return(&service.SpotifyToken{AccessToken: "access-2", RefreshToken: "refresh-2"}, nil).Once()
	fx.oauth.EXPECT().GetProfile(ctx, "access-2").
		Return(&entity.SpotifyProfile{ID: "sp-user", DisplayName: "Listener"}, nil).Once()

	txAccountRepo := mockRepo.NewMockAccountRepository(t)
	txSpotifyUserRepo := mockRepo.NewMockSpotifyUserRepository(t)
	fx.expectPersist(t, txAccountRepo, txSpotifyUserRepo)

	txSpotifyUserRepo.EXPECT().
		UpsertSpotifyUser(ctx, mock.MatchedBy(func(u *entity.SpotifyUser) bool {
			return u.SpotifyID == "sp-user" && u.RefreshToken == "refresh-2"
		})).
		Return(linked, nil)
	txAccountRepo.EXPECT().FindAccountBySpotifyUserID(ctx, linked.ID).Return(nil, repository.ErrAccountNotFound)
	txAccountRepo.EXPECT().LinkSpotifyUser(ctx, accountID, linked.ID).Return(nil)

	got, err := fx.service.CompleteLink(ctx, &usecase.CompleteLinkInput{AccountID: accountID, State: "state-1", Code: "code-1"})

	require.NoError(t, err)
	assert.Equal(t, linked, got)
	assert.Equal(t, []string{service.EventSpotifyLinked}, fx.publisher.types())
}

func TestSpotifyLinkService_CompleteLink_RelinkSameAccountIsAllowed(t *testing.T) {
	fx := createTestSpotifyLinkService(t)

	ctx := context.Background()
	accountID := uuid.New()
	linked := &entity.SpotifyUser{ID: uuid.New(), SpotifyID: "sp-user"}

	fx.linkAttemptRepo.EXPECT().Consume(ctx, "state-1").Return(pendingAttempt(accountID), nil)
	fx.oauth.EXPECT().ExchangeCode(ctx, "code-1", "verifier-1").
		Return(&service.SpotifyToken{AccessToken: "access-1"}, nil)
	fx.oauth.EXPECT().GetProfile(ctx, "access-1").Return(&entity.SpotifyProfile{ID: "sp-user"}, nil)

	txAccountRepo := mockRepo.NewMockAccountRepository(t)
	txSpotifyUserRepo := mockRepo.NewMockSpotifyUserRepository(t)
	fx.expectPersist(t, txAccountRepo, txSpotifyUserRepo)

	txSpotifyUserRepo.EXPECT().UpsertSpotifyUser(ctx, mock.AnythingOfType("*entity.SpotifyUser")).Return(linked, nil)
	txAccountRepo.EXPECT().FindAccountBySpotifyUserID(ctx, linked.ID).Return(linkedAccount(accountID, linked.ID), nil)
	txAccountRepo.EXPECT().LinkSpotifyUser(ctx, accountID, linked.ID).Return(nil)

	_, err := fx.service.CompleteLink(ctx, &usecase.CompleteLinkInput{AccountID: accountID, State: "state-1", Code: "code-1"})

	require.NoError(t, err)
}

func TestSpotifyLinkService_CompleteLink_ProfileFailsTwice(t *testing.T) {
	fx := createTestSpotifyLinkService(t)

	ctx := context.Background()
	accountID := uuid.New()

	fx.linkAttemptRepo.EXPECT().Consume(ctx, "state-1").Return(pendingAttempt(accountID), nil)
	fx.oauth.EXPECT().ExchangeCode(ctx, "code-1", "verifier-1").
		Return(&service.SpotifyToken{AccessToken: "access-1", RefreshToken: "refresh-1"}, nil)
	fx.oauth.EXPECT().GetProfile(ctx, "access-1").Return(nil, errors.New("status 500")).Once()
	fx.oauth.EXPECT().Refresh(ctx, "refresh-1").
		Return(&service.SpotifyToken{AccessToken: "access-2", RefreshToken: "refresh-1"}, nil).Once()
	fx.oauth.EXPECT().GetProfile(ctx, "access-2").Return(nil, errors.New("status 500")).Once()

	_, err := fx.service.CompleteLink(ctx, &usecase.CompleteLinkInput{AccountID: accountID, State: "state-1", Code: "code-1"})

	assert.ErrorIs(t, err, domainerrors.ErrLinkFailed)
	assert.Empty(t, fx.publisher.types())
}

func TestSpotifyLinkService_CompleteLink_ProfileFailsWithoutRefreshToken(t *testing.T) {
	fx := createTestSpotifyLinkService(t)

	ctx := context.Background()
	accountID := uuid.New()

	fx.linkAttemptRepo.EXPECT().Consume(ctx, "state-1").Return(pendingAttempt(accountID), nil)
	fx.oauth.EXPECT().ExchangeCode(ctx, "code-1", "verifier-1").
		Return(&service.SpotifyToken{AccessToken: "access-1"}, nil)
	fx.oauth.EXPECT().GetProfile(ctx, "access-1").Return(nil, errors.New("status 403")).Once()

	_, err := fx.service.CompleteLink(ctx, &usecase.CompleteLinkInput{AccountID: accountID, State: "state-1", Code: "code-1"})

	assert.ErrorIs(t, err, domainerrors.ErrLinkFailed)
}

func TestSpotifyLinkService_CompleteLink_RefreshRejected(t *testing.T) {
	fx := createTestSpotifyLinkService(t)

	ctx := context.Background()
	accountID := uuid.New()

	fx.linkAttemptRepo.EXPECT().Consume(ctx, "state-1").Return(pendingAttempt(accountID), nil)
	fx.oauth.EXPECT().ExchangeCode(ctx, "code-1", "verifier-1").
		Return(&service.SpotifyToken{AccessToken: "access-1", RefreshToken: "refresh-1"}, nil)
	fx.oauth.EXPECT().GetProfile(ctx, "access-1").Return(nil, errors.New("status 401")).Once()
	fx.oauth.EXPECT().Refresh(ctx, "refresh-1").Return(nil, errors.New("invalid_grant")).Once()

	_, err := fx.service.CompleteLink(ctx, &usecase.CompleteLinkInput{AccountID: accountID, State: "state-1", Code: "code-1"})

	assert.ErrorIs(t, err, domainerrors.ErrLinkFailed)
}

func TestSpotifyLinkService_CompleteLink_MissingVerifier(t *testing.T) {
	accountID := uuid.New()

	tests := []struct {
		name    string
		attempt *entity.LinkAttempt
		err     error
	}{
		{name: "unknown state", err: repository.ErrLinkAttemptNotFound},
		{
			name: "started by another account",
			attempt: &entity.LinkAttempt{
				State: "state-1", AccountID: uuid.New(), Verifier: "verifier-1", ExpiresAt: linkTestNow.Add(time.Minute),
			},
		},
		{
			name: "expired",
			attempt: &entity.LinkAttempt{
				State: "state-1", AccountID: accountID, Verifier: "verifier-1", ExpiresAt: linkTestNow,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestSpotifyLinkService(t)
			ctx := context.Background()

			fx.linkAttemptRepo.EXPECT().Consume(ctx, "state-1").Return(tt.attempt, tt.err)

			_, err := fx.service.CompleteLink(ctx, &usecase.CompleteLinkInput{AccountID: accountID, State: "state-1", Code: "code-1"})

			assert.Equal(t, domainerrors.ErrMissingVerifier, err)
		})
	}
}

func TestSpotifyLinkService_CompleteLink_ExchangeFails(t *testing.T) {
	fx := createTestSpotifyLinkService(t)

	ctx := context.Background()
	accountID := uuid.New()

	fx.linkAttemptRepo.EXPECT().Consume(ctx, "state-1").Return(pendingAttempt(accountID), nil)
	fx.oauth.EXPECT().ExchangeCode(ctx, "code-1", "verifier-1").Return(nil, errors.New("invalid_grant"))

	_, err := fx.service.CompleteLink(ctx, &usecase.CompleteLinkInput{AccountID: accountID, State: "state-1", Code: "code-1"})

	assert.ErrorIs(t, err, domainerrors.ErrTokenExchangeFailed)
}

func TestSpotifyLinkService_CompleteLink_IdentityOwnedByAnotherAccount(t *testing.T) {
	fx := createTestSpotifyLinkService(t)

	ctx := context.Background()
	accountID := uuid.New()
	linked := &entity.SpotifyUser{ID: uuid.New(), SpotifyID: "sp-user"}

	fx.linkAttemptRepo.EXPECT().Consume(ctx, "state-1").Return(pendingAttempt(accountID), nil)
	fx.oauth.EXPECT().ExchangeCode(ctx, "code-1", "verifier-1").
		Return(&service.SpotifyToken{AccessToken: "access-1"}, nil)
	fx.oauth.EXPECT().GetProfile(ctx, "access-1").Return(&entity.SpotifyProfile{ID: "sp-user"}, nil)

	txAccountRepo := mockRepo.NewMockAccountRepository(t)
	txSpotifyUserRepo := mockRepo.NewMockSpotifyUserRepository(t)
	fx.expectPersist(t, txAccountRepo, txSpotifyUserRepo)

	txSpotifyUserRepo.EXPECT().UpsertSpotifyUser(ctx, mock.AnythingOfType("*entity.SpotifyUser")).Return(linked, nil)
	txAccountRepo.EXPECT().FindAccountBySpotifyUserID(ctx, linked.ID).Return(linkedAccount(uuid.New(), linked.ID), nil)

	_, err := fx.service.CompleteLink(ctx, &usecase.CompleteLinkInput{AccountID: accountID, State: "state-1", Code: "code-1"})

	assert.Equal(t, domainerrors.ErrAlreadyLinked, err)
	txAccountRepo.AssertNotCalled(t, "LinkSpotifyUser", mock.Anything, mock.Anything, mock.Anything)
	assert.Empty(t, fx.publisher.types())
}

func TestSpotifyLinkService_CompleteLink_UniqueRaceMapsToAlreadyLinked(t *testing.T) {
	fx := createTestSpotifyLinkService(t)

	ctx := context.Background()
	accountID := uuid.New()
	linked := &entity.SpotifyUser{ID: uuid.New(), SpotifyID: "sp-user"}

	fx.linkAttemptRepo.EXPECT().Consume(ctx, "state-1").Return(pendingAttempt(accountID), nil)
	fx.oauth.EXPECT().ExchangeCode(ctx, "code-1", "verifier-1").
		Return(&service.SpotifyToken{AccessToken: "access-1"}, nil)
	fx.oauth.EXPECT().GetProfile(ctx, "access-1").Return(&entity.SpotifyProfile{ID: "sp-user"}, nil)

	txAccountRepo := mockRepo.NewMockAccountRepository(t)
	txSpotifyUserRepo := mockRepo.NewMockSpotifyUserRepository(t)
	fx.expectPersist(t, txAccountRepo, txSpotifyUserRepo)

	txSpotifyUserRepo.EXPECT().UpsertSpotifyUser(ctx, mock.AnythingOfType("*entity.SpotifyUser")).Return(linked, nil)
	txAccountRepo.EXPECT().FindAccountBySpotifyUserID(ctx, linked.ID).Return(nil, repository.ErrAccountNotFound)
	txAccountRepo.EXPECT().LinkSpotifyUser(ctx, accountID, linked.ID).Return(repository.ErrSpotifyUserAlreadyLinked)

	_, err := fx.service.CompleteLink(ctx, &usecase.CompleteLinkInput{AccountID: accountID, State: "state-1", Code: "code-1"})

	assert.Equal(t, domainerrors.ErrAlreadyLinked, err)
}

func TestSpotifyLinkService_CompleteLink_RequiresCode(t *testing.T) {
	fx := createTestSpotifyLinkService(t)

	_, err := fx.service.CompleteLink(context.Background(), &usecase.CompleteLinkInput{AccountID: uuid.New(), State: "state-1"})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestSpotifyLinkService_GetUpstreamAccessToken_StoresRotatedToken(t *testing.T) {
	fx := createTestSpotifyLinkService(t)

	ctx := context.Background()
	accountID := uuid.New()
	spotifyUserID := uuid.New()
	expiresAt := linkTestNow.Add(time.Hour)

	fx.accountRepo.EXPECT().FindAccountByID(ctx, accountID).Return(linkedAccount(accountID, spotifyUserID), nil)
	fx.spotifyUserRepo.EXPECT().FindSpotifyUserByID(ctx, spotifyUserID).
		Return(&entity.SpotifyUser{ID: spotifyUserID, RefreshToken: "refresh-1"}, nil)
	fx.oauth.EXPECT().Refresh(ctx, "refresh-1").
		Return(&service.SpotifyToken{AccessToken: "access-9", RefreshToken: "refresh-2", ExpiresAt: expiresAt}, nil)
	fx.spotifyUserRepo.EXPECT().UpdateRefreshToken(ctx, spotifyUserID, "refresh-2").Return(nil)

	tok, err := fx.service.GetUpstreamAccessToken(ctx, accountID)

	require.NoError(t, err)
	assert.Equal(t, "access-9", tok.AccessToken)
	assert.True(t, expiresAt.Equal(tok.ExpiresAt))
}

func TestSpotifyLinkService_GetUpstreamAccessToken_KeepsUnrotatedToken(t *testing.T) {
	fx := createTestSpotifyLinkService(t)

	ctx := context.Background()
	accountID := uuid.New()
	spotifyUserID := uuid.New()

	fx.accountRepo.EXPECT().FindAccountByID(ctx, accountID).Return(linkedAccount(accountID, spotifyUserID), nil)
	fx.spotifyUserRepo.EXPECT().FindSpotifyUserByID(ctx, spotifyUserID).
		Return(&entity.SpotifyUser{ID: spotifyUserID, RefreshToken: "refresh-1"}, nil)
	fx.oauth.EXPECT().Refresh(ctx, "refresh-1").
		Return(&service.SpotifyToken{AccessToken: "access-9", RefreshToken: "refresh-1"}, nil)

	_, err := fx.service.GetUpstreamAccessToken(ctx, accountID)

	require.NoError(t, err)
	fx.spotifyUserRepo.AssertNotCalled(t, "UpdateRefreshToken", mock.Anything, mock.Anything, mock.Anything)
}

func TestSpotifyLinkService_GetUpstreamAccessToken_ReauthRequired(t *testing.T) {
	t.Run("not linked", func(t *testing.T) {
		fx := createTestSpotifyLinkService(t)
		ctx := context.Background()
		accountID := uuid.New()

		fx.accountRepo.EXPECT().FindAccountByID(ctx, accountID).Return(&entity.Account{ID: accountID}, nil)

		_, err := fx.service.GetUpstreamAccessToken(ctx, accountID)
		assert.ErrorIs(t, err, domainerrors.ErrReauthRequired)
	})

	t.Run("no stored refresh token", func(t *testing.T) {
		fx := createTestSpotifyLinkService(t)
		ctx := context.Background()
		accountID := uuid.New()
		spotifyUserID := uuid.New()

		fx.accountRepo.EXPECT().FindAccountByID(ctx, accountID).Return(linkedAccount(accountID, spotifyUserID), nil)
		fx.spotifyUserRepo.EXPECT().FindSpotifyUserByID(ctx, spotifyUserID).Return(&entity.SpotifyUser{ID: spotifyUserID}, nil)

		_, err := fx.service.GetUpstreamAccessToken(ctx, accountID)
		assert.ErrorIs(t, err, domainerrors.ErrReauthRequired)
	})

	t.Run("refresh rejected", func(t *testing.T) {
		fx := createTestSpotifyLinkService(t)
		ctx := context.Background()
		accountID := uuid.New()
		spotifyUserID := uuid.New()

		fx.accountRepo.EXPECT().FindAccountByID(ctx, accountID).Return(linkedAccount(accountID, spotifyUserID), nil)
		fx.spotifyUserRepo.EXPECT().FindSpotifyUserByID(ctx, spotifyUserID).
			Return(&entity.SpotifyUser{ID: spotifyUserID, RefreshToken: "refresh-1"}, nil)
		fx.oauth.EXPECT().Refresh(ctx, "refresh-1").Return(nil, errors.New("invalid_grant"))

		_, err := fx.service.GetUpstreamAccessToken(ctx, accountID)
		assert.ErrorIs(t, err, domainerrors.ErrReauthRequired)
	})
}
