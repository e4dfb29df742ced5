package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "shelf/internal/delivery/context"
	"shelf/internal/domain/entity"
	domainerrors "shelf/internal/domain/errors"
	"shelf/internal/domain/repository"
	"shelf/internal/domain/service"
	"shelf/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// MinUsernameLength is the shortest accepted username after trimming.
const MinUsernameLength = 3

// accountService implements the AccountUsecase interface.
type accountService struct {
	accountRepo  repository.AccountRepository
	hasher       service.PasswordHasher
	policy       service.PasswordPolicy
	tokenService service.TokenService
	logger       *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	AccountRepo  repository.AccountRepository
	Hasher       service.PasswordHasher
	Policy       service.PasswordPolicy
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		accountRepo:  params.AccountRepo,
		hasher:       params.Hasher,
		policy:       params.Policy,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates an account and signs the caller in.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	username := strings.TrimSpace(input.Username)
	if len([]rune(username)) < MinUsernameLength {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("username must be at least 3 characters")
	}

	if err := srv.policy.Validate(input.Password); err != nil {
		return nil, err
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	account := &entity.Account{
		Username:     username,
		PasswordHash: hash,
	}
	if err := srv.accountRepo.CreateAccount(ctx, account); err != nil {
		if errors.Is(err, repository.ErrUsernameExists) {
			return nil, domainerrors.ErrUsernameTaken
		}

		return nil, errors.Wrap(err, "failed to create account")
	}

	srv.log(ctx).Info("Account registered", slog.String("accountID", account.ID.String()))

	return srv.signIn(account)
}

// Login verifies credentials. Unknown usernames and wrong passwords fail identically.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" || input.Password == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("username and password are required")
	}

	account, err := srv.accountRepo.FindAccountByUsername(ctx, username)
	if errors.Is(err, repository.ErrAccountNotFound) {
		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find account")
	}

	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		srv.log(ctx).Debug("Password mismatch", slog.String("accountID", account.ID.String()))

		return nil, domainerrors.ErrInvalidCredentials
	}

	return srv.signIn(account)
}

// Me returns the authenticated account.
func (srv *accountService) Me(ctx context.Context, accountID uuid.UUID) (*entity.Account, error) {
	account, err := srv.accountRepo.FindAccountByID(ctx, accountID)
	if errors.Is(err, repository.ErrAccountNotFound) {
		return nil, domainerrors.ErrAccountNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find account")
	}

	return account, nil
}

func (srv *accountService) signIn(account *entity.Account) (*usecase.AuthOutput, error) {
	token, expiresAt, err := srv.tokenService.IssueToken(account.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue session token")
	}

	return &usecase.AuthOutput{
		Token:     token,
		ExpiresAt: expiresAt,
		Account:   account,
	}, nil
}
