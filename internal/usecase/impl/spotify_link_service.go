package impl

import (
	"context"
	"crypto/rand"
	"log/slog"
	"time"

	"shelf/config"
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

// profileRefreshBudget is how many refresh exchanges one link attempt may spend
// recovering from a failed profile fetch.
const profileRefreshBudget = 1

// linkState is a step of the profile fetch that follows a successful code exchange.
type linkState int

const (
	linkStateFetchingProfile linkState = iota
	linkStateRefreshing
	linkStateLinked
	linkStateFailed
)

func (s linkState) String() string {
	switch s {
	case linkStateFetchingProfile:
		return "fetching_profile"
	case linkStateRefreshing:
		return "retrying_with_refresh"
	case linkStateLinked:
		return "linked"
	case linkStateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// spotifyLinkService implements the SpotifyLinkUsecase interface.
type spotifyLinkService struct {
	txManager       repository.TransactionManager
	accountRepo     repository.AccountRepository
	spotifyUserRepo repository.SpotifyUserRepository
	linkAttemptRepo repository.LinkAttemptRepository
	oauth           service.SpotifyOAuthService
	publisher       service.EventPublisher
	attemptTTL      time.Duration
	now             func() time.Time
	logger          *slog.Logger
}

// SpotifyLinkServiceParams holds dependencies for SpotifyLinkService, injected by Fx.
type SpotifyLinkServiceParams struct {
	fx.In

	TxManager       repository.TransactionManager
	AccountRepo     repository.AccountRepository
	SpotifyUserRepo repository.SpotifyUserRepository
	LinkAttemptRepo repository.LinkAttemptRepository
	OAuth           service.SpotifyOAuthService
	Publisher       service.EventPublisher
	Config          *config.Config
	Logger          *slog.Logger
}

// NewSpotifyLinkService is the constructor for spotifyLinkService.
func NewSpotifyLinkService(params SpotifyLinkServiceParams) usecase.SpotifyLinkUsecase {
	return &spotifyLinkService{
		txManager:       params.TxManager,
		accountRepo:     params.AccountRepo,
		spotifyUserRepo: params.SpotifyUserRepo,
		linkAttemptRepo: params.LinkAttemptRepo,
		oauth:           params.OAuth,
		publisher:       params.Publisher,
		attemptTTL:      params.Config.LinkAttempt.TTL,
		now:             time.Now,
		logger:          params.Logger,
	}
}

func (srv *spotifyLinkService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// BeginLink stores a fresh PKCE verifier under a random state token and returns
// the consent URL that carries the verifier's challenge.
func (srv *spotifyLinkService) BeginLink(ctx context.Context, accountID uuid.UUID) (*usecase.BeginLinkOutput, error) {
	if _, err := loadAccount(ctx, srv.accountRepo, accountID); err != nil {
		return nil, err
	}

	attempt := &entity.LinkAttempt{
		State:     rand.Text(),
		AccountID: accountID,
		Verifier:  srv.oauth.NewVerifier(),
		ExpiresAt: srv.now().Add(srv.attemptTTL),
	}
	if err := srv.linkAttemptRepo.Save(ctx, attempt, srv.attemptTTL); err != nil {
		return nil, errors.Wrap(err, "failed to store link attempt")
	}

	srv.log(ctx).Debug("Spotify link started",
		slog.String("accountID", accountID.String()),
		slog.Time("expiresAt", attempt.ExpiresAt),
	)

	return &usecase.BeginLinkOutput{
		AuthorizeURL: srv.oauth.AuthorizationURL(attempt.State, attempt.Verifier),
		State:        attempt.State,
		ExpiresAt:    attempt.ExpiresAt,
	}, nil
}

// CompleteLink redeems the authorization code and binds the Spotify identity to the account.
func (srv *spotifyLinkService) CompleteLink(ctx context.Context, input *usecase.CompleteLinkInput) (*entity.SpotifyUser, error) {
	if input.Code == "" || input.State == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("code and state are required")
	}

	verifier, err := srv.consumeVerifier(ctx, input.AccountID, input.State)
	if err != nil {
		return nil, err
	}

	tok, err := srv.oauth.ExchangeCode(ctx, input.Code, verifier)
	if err != nil {
		srv.log(ctx).Warn("Spotify code exchange failed", slog.Any("error", err))

		return nil, domainerrors.ErrTokenExchangeFailed.WrapMessage(err.Error())
	}
	if tok == nil || tok.AccessToken == "" {
		return nil, domainerrors.ErrTokenExchangeFailed.WrapMessage("token response has no access token")
	}

	profile, refreshToken, err := srv.fetchProfile(ctx, tok)
	if err != nil {
		return nil, err
	}

	var linked *entity.SpotifyUser
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		linked, err = srv.persistLink(ctx, repoFactory, input.AccountID, profile, refreshToken)

		return err
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Spotify account linked",
		slog.String("accountID", input.AccountID.String()),
		slog.String("spotifyUserID", linked.ID.String()),
	)

	publishEvent(ctx, srv.publisher, srv.log(ctx), &service.LibraryEvent{
		Type:          service.EventSpotifyLinked,
		AccountID:     input.AccountID.String(),
		SpotifyUserID: linked.ID.String(),
	})

	return linked, nil
}

// consumeVerifier redeems the link attempt. Unknown, expired and foreign attempts all
// look the same to the caller.
func (srv *spotifyLinkService) consumeVerifier(ctx context.Context, accountID uuid.UUID, state string) (string, error) {
	attempt, err := srv.linkAttemptRepo.Consume(ctx, state)
	if errors.Is(err, repository.ErrLinkAttemptNotFound) {
		return "", domainerrors.ErrMissingVerifier
	}
	if err != nil {
		return "", errors.Wrap(err, "failed to load link attempt")
	}

	if attempt.AccountID != accountID || !srv.now().Before(attempt.ExpiresAt) || attempt.Verifier == "" {
		return "", domainerrors.ErrMissingVerifier
	}

	return attempt.Verifier, nil
}

// fetchProfile loads the Spotify profile. A failed fetch is retried once after a
// refresh exchange when a refresh token is available. It returns the newest refresh
// token seen, which may be empty.
func (srv *spotifyLinkService) fetchProfile(ctx context.Context, tok *service.SpotifyToken) (*entity.SpotifyProfile, string, error) {
	accessToken := tok.AccessToken
	refreshToken := tok.RefreshToken
	budget := profileRefreshBudget

	var (
		profile *entity.SpotifyProfile
		lastErr error
	)

	state := linkStateFetchingProfile
	for {
		switch state {
		case linkStateFetchingProfile:
			profile, lastErr = srv.oauth.GetProfile(ctx, accessToken)
			switch {
			case lastErr == nil:
				state = linkStateLinked
			case refreshToken != "" && budget > 0:
				state = linkStateRefreshing
			default:
				state = linkStateFailed
			}

		case linkStateRefreshing:
			budget--

			var refreshed *service.SpotifyToken
			refreshed, lastErr = srv.oauth.Refresh(ctx, refreshToken)
			if lastErr != nil {
				state = linkStateFailed

				continue
			}

			accessToken = refreshed.AccessToken
			if refreshed.RefreshToken != "" {
				refreshToken = refreshed.RefreshToken
			}
			state = linkStateFetchingProfile

		case linkStateLinked:
			return profile, refreshToken, nil

		default:
			srv.log(ctx).Warn("Spotify profile fetch failed",
				slog.Int("refreshesUsed", profileRefreshBudget-budget),
				slog.Any("error", lastErr),
			)

			return nil, "", domainerrors.ErrLinkFailed.WrapMessage(lastErr.Error())
		}
	}
}

func (srv *spotifyLinkService) persistLink(
	ctx context.Context,
	repoFactory repository.RepositoryFactory,
	accountID uuid.UUID,
	profile *entity.SpotifyProfile,
	refreshToken string,
) (*entity.SpotifyUser, error) {
	accountRepo := repoFactory.AccountRepo()

	spotifyUser, err := repoFactory.SpotifyUserRepo().UpsertSpotifyUser(ctx, &entity.SpotifyUser{
		SpotifyID:    profile.ID,
		DisplayName:  profile.DisplayName,
		Email:        profile.Email,
		RefreshToken: refreshToken,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to upsert spotify user")
	}

	owner, err := accountRepo.FindAccountBySpotifyUserID(ctx, spotifyUser.ID)
	switch {
	case err == nil && owner.ID != accountID:
		return nil, domainerrors.ErrAlreadyLinked
	case err != nil && !errors.Is(err, repository.ErrAccountNotFound):
		return nil, errors.Wrap(err, "failed to look up linked account")
	}

	if err := accountRepo.LinkSpotifyUser(ctx, accountID, spotifyUser.ID); err != nil {
		switch {
		case errors.Is(err, repository.ErrSpotifyUserAlreadyLinked):
			return nil, domainerrors.ErrAlreadyLinked
		case errors.Is(err, repository.ErrAccountNotFound):
			return nil, domainerrors.ErrInvalidToken.WrapMessage("account no longer exists")
		default:
			return nil, errors.Wrap(err, "failed to link spotify user")
		}
	}

	return spotifyUser, nil
}

// GetUpstreamAccessToken redeems the stored refresh token for a fresh access token.
// Nothing is cached: every call performs a refresh exchange.
func (srv *spotifyLinkService) GetUpstreamAccessToken(ctx context.Context, accountID uuid.UUID) (*usecase.UpstreamToken, error) {
	spotifyUserID, err := resolveSpotifyUserID(ctx, srv.accountRepo, accountID)
	if errors.Is(err, domainerrors.ErrSpotifyNotLinked) {
		return nil, domainerrors.ErrReauthRequired
	}
	if err != nil {
		return nil, err
	}

	spotifyUser, err := srv.spotifyUserRepo.FindSpotifyUserByID(ctx, spotifyUserID)
	if errors.Is(err, repository.ErrSpotifyUserNotFound) {
		return nil, domainerrors.ErrReauthRequired
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load spotify user")
	}
	if spotifyUser.RefreshToken == "" {
		return nil, domainerrors.ErrReauthRequired
	}

	tok, err := srv.oauth.Refresh(ctx, spotifyUser.RefreshToken)
	if err != nil {
		srv.log(ctx).Warn("Spotify refresh rejected", slog.String("spotifyUserID", spotifyUserID.String()), slog.Any("error", err))

		return nil, domainerrors.ErrReauthRequired.WrapMessage(err.Error())
	}

	if tok.RefreshToken != "" && tok.RefreshToken != spotifyUser.RefreshToken {
		if err := srv.spotifyUserRepo.UpdateRefreshToken(ctx, spotifyUserID, tok.RefreshToken); err != nil {
			// The access token is still good; the next call will need a relink if the
			// provider already revoked the old refresh token.
			srv.log(ctx).Error("Failed to store rotated refresh token",
				slog.String("spotifyUserID", spotifyUserID.String()),
				slog.Any("error", err),
			)
		}
	}

	return &usecase.UpstreamToken{
		AccessToken: tok.AccessToken,
		ExpiresAt:   tok.ExpiresAt,
	}, nil
}
