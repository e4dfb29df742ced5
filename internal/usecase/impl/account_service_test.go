package impl

import (
	"context"
	"testing"
	"time"

	"shelf/internal/domain/entity"
	domainerrors "shelf/internal/domain/errors"
	"shelf/internal/domain/repository"
	mockRepo "shelf/internal/mocks/repository"
	mockSvc "shelf/internal/mocks/service"
	"shelf/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type accountServiceFixtures struct {
	service      usecase.AccountUsecase
	accountRepo  *mockRepo.MockAccountRepository
	hasher       *mockSvc.MockPasswordHasher
	policy       *mockSvc.MockPasswordPolicy
	tokenService *mockSvc.MockTokenService
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	accountRepo := mockRepo.NewMockAccountRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	policy := mockSvc.NewMockPasswordPolicy(t)
	tokenService := mockSvc.NewMockTokenService(t)

	service := NewAccountService(AccountServiceParams{
		AccountRepo:  accountRepo,
		Hasher:       hasher,
		Policy:       policy,
		TokenService: tokenService,
		Logger:       newTestLogger(),
	})

	return accountServiceFixtures{
		service:      service,
		accountRepo:  accountRepo,
		hasher:       hasher,
		policy:       policy,
		tokenService: tokenService,
	}
}

func TestAccountService_Register_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	accountID := uuid.New()
	expiresAt := time.Now().Add(time.Hour)

	fx.policy.EXPECT().Validate("correct-horse").Return(nil)
	fx.hasher.EXPECT().Hash("correct-horse").Return("salt:key", nil)
	fx.accountRepo.EXPECT().
		CreateAccount(ctx, mock.AnythingOfType("*entity.Account")).
		RunAndReturn(func(_ context.Context, account *entity.Account) error {
			assert.Equal(t, "alice", account.Username)
			assert.Equal(t, "salt:key", account.PasswordHash)
			account.ID = accountID

			return nil
		})
	fx.tokenService.EXPECT().IssueToken(accountID).Return("session-token", expiresAt, nil)

	out, err := fx.service.Register(ctx, &usecase.RegisterInput{Username: "  alice ", Password: "correct-horse"})

	require.NoError(t, err)
	assert.Equal(t, "session-token", out.Token)
	assert.True(t, expiresAt.Equal(out.ExpiresAt))
	assert.Equal(t, accountID, out.Account.ID)
}

func TestAccountService_Register_ShortUsername(t *testing.T) {
	fx := createTestAccountService(t)

	_, err := fx.service.Register(context.Background(), &usecase.RegisterInput{Username: " ab ", Password: "correct-horse"})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAccountService_Register_WeakPassword(t *testing.T) {
	fx := createTestAccountService(t)

	fx.policy.EXPECT().Validate("short").Return(domainerrors.ErrPasswordStrength)

	_, err := fx.service.Register(context.Background(), &usecase.RegisterInput{Username: "alice", Password: "short"})

	assert.ErrorIs(t, err, domainerrors.ErrPasswordStrength)
}

func TestAccountService_Register_DuplicateUsername(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()

	fx.policy.EXPECT().Validate("correct-horse").Return(nil)
	fx.hasher.EXPECT().Hash("correct-horse").Return("salt:key", nil)
	fx.accountRepo.EXPECT().
		CreateAccount(ctx, mock.AnythingOfType("*entity.Account")).
		Return(repository.ErrUsernameExists)

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{Username: "alice", Password: "correct-horse"})

	assert.Equal(t, domainerrors.ErrUsernameTaken, err)
}

func TestAccountService_Register_HashFailure(t *testing.T) {
	fx := createTestAccountService(t)

	fx.policy.EXPECT().Validate("correct-horse").Return(nil)
	fx.hasher.EXPECT().Hash("correct-horse").Return("", errors.New("entropy exhausted"))

	_, err := fx.service.Register(context.Background(), &usecase.RegisterInput{Username: "alice", Password: "correct-horse"})

	assert.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
}

func TestAccountService_Login_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	account := &entity.Account{ID: uuid.New(), Username: "alice", PasswordHash: "salt:key"}
	expiresAt := time.Now().Add(time.Hour)

	fx.accountRepo.EXPECT().FindAccountByUsername(ctx, "alice").Return(account, nil)
	fx.hasher.EXPECT().Check("correct-horse", "salt:key").Return(true)
	fx.tokenService.EXPECT().IssueToken(account.ID).Return("session-token", expiresAt, nil)

	out, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "alice", Password: "correct-horse"})

	require.NoError(t, err)
	assert.Equal(t, "session-token", out.Token)
	assert.Equal(t, account, out.Account)
}

func TestAccountService_Login_FailuresLookIdentical(t *testing.T) {
	t.Run("unknown username", func(t *testing.T) {
		fx := createTestAccountService(t)
		ctx := context.Background()

		fx.accountRepo.EXPECT().FindAccountByUsername(ctx, "ghost").Return(nil, repository.ErrAccountNotFound)

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "ghost", Password: "whatever1"})
		assert.Equal(t, domainerrors.ErrInvalidCredentials, err)
	})

	t.Run("wrong password", func(t *testing.T) {
		fx := createTestAccountService(t)
		ctx := context.Background()
		account := &entity.Account{ID: uuid.New(), Username: "alice", PasswordHash: "salt:key"}

		fx.accountRepo.EXPECT().FindAccountByUsername(ctx, "alice").Return(account, nil)
		fx.hasher.EXPECT().Check("wrong-pass", "salt:key").Return(false)

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "alice", Password: "wrong-pass"})
		assert.Equal(t, domainerrors.ErrInvalidCredentials, err)
	})
}

func TestAccountService_Login_MissingFields(t *testing.T) {
	fx := createTestAccountService(t)

	_, err := fx.service.Login(context.Background(), &usecase.LoginInput{Username: "alice"})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAccountService_Me(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	account := &entity.Account{ID: uuid.New(), Username: "alice"}
	missingID := uuid.New()

	fx.accountRepo.EXPECT().FindAccountByID(ctx, account.ID).Return(account, nil)
	fx.accountRepo.EXPECT().FindAccountByID(ctx, missingID).Return(nil, repository.ErrAccountNotFound)

	got, err := fx.service.Me(ctx, account.ID)
	require.NoError(t, err)
	assert.Equal(t, account, got)

	_, err = fx.service.Me(ctx, missingID)
	assert.Equal(t, domainerrors.ErrAccountNotFound, err)
}
