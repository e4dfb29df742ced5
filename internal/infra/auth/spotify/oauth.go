// Package spotify implements the Spotify accounts service and Web API client used for account linking.
package spotify

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"shelf/config"
	"shelf/internal/domain/entity"
	"shelf/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/oauth2"
)

const maxErrorBodyBytes = 1 << 10

// OAuthService handles Spotify OAuth infrastructure operations
type OAuthService struct {
	oauthConfig *oauth2.Config
	apiBaseURL  string
	httpClient  *http.Client
}

// NewOAuthService creates a new Spotify OAuth service
func NewOAuthService(cfg *config.Config) service.SpotifyOAuthService {
	return newOAuthService(cfg.Spotify, &http.Client{Timeout: cfg.Spotify.HTTPTimeout})
}

func newOAuthService(cfg *config.SpotifyConfig, httpClient *http.Client) *OAuthService {
	// Public PKCE clients have no secret and must send client_id in the form body.
	authStyle := oauth2.AuthStyleInParams
	if cfg.ClientSecret != "" {
		authStyle = oauth2.AuthStyleInHeader
	}

	return &OAuthService{
		oauthConfig: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURI,
			Scopes:       strings.Fields(cfg.Scopes),
			Endpoint: oauth2.Endpoint{
				AuthURL:   cfg.AuthURL,
				TokenURL:  cfg.TokenURL,
				AuthStyle: authStyle,
			},
		},
		apiBaseURL: strings.TrimRight(cfg.APIBaseURL, "/"),
		httpClient: httpClient,
	}
}

// NewVerifier returns a 32-byte random PKCE verifier, base64url encoded.
func (s *OAuthService) NewVerifier() string {
	return oauth2.GenerateVerifier()
}

// AuthorizationURL constructs the consent URL with the S256 challenge of verifier
func (s *OAuthService) AuthorizationURL(state, verifier string) string {
	return s.oauthConfig.AuthCodeURL(state,
		oauth2.S256ChallengeOption(verifier),
		oauth2.SetAuthURLParam("show_dialog", "true"),
	)
}

// ExchangeCode exchanges an authorization code and its verifier for a token set
func (s *OAuthService) ExchangeCode(ctx context.Context, code, verifier string) (*service.SpotifyToken, error) {
	tok, err := s.oauthConfig.Exchange(s.withClient(ctx), code, oauth2.VerifierOption(verifier))
	if err != nil {
		return nil, errors.Wrap(err, "failed to exchange authorization code")
	}

	return toSpotifyToken(tok), nil
}

// Refresh redeems a refresh token for a new access token
func (s *OAuthService) Refresh(ctx context.Context, refreshToken string) (*service.SpotifyToken, error) {
	if refreshToken == "" {
		return nil, errors.New("refresh token is empty")
	}

	// With no access token the source always hits the token endpoint. oauth2 keeps
	// the old refresh token when the response does not carry a new one.
	src := s.oauthConfig.TokenSource(s.withClient(ctx), &oauth2.Token{RefreshToken: refreshToken})
	tok, err := src.Token()
	if err != nil {
		return nil, errors.Wrap(err, "failed to refresh access token")
	}

	return toSpotifyToken(tok), nil
}

// GetProfile retrieves the current user's profile using an access token
func (s *OAuthService) GetProfile(ctx context.Context, accessToken string) (*entity.SpotifyProfile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.apiBaseURL+"/me", nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create profile request")
	}

	client := oauth2.NewClient(s.withClient(ctx), oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: accessToken,
		TokenType:   "Bearer",
	}))

	resp, err := client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get profile")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))

		return nil, errors.Errorf("profile request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var profile entity.SpotifyProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, errors.Wrap(err, "failed to decode profile response")
	}
	if profile.ID == "" {
		return nil, errors.New("profile response has no id")
	}

	return &profile, nil
}

// withClient makes oauth2 use the service's HTTP client for token requests
func (s *OAuthService) withClient(ctx context.Context) context.Context {
	if s.httpClient == nil {
		return ctx
	}

	return context.WithValue(ctx, oauth2.HTTPClient, s.httpClient)
}

func toSpotifyToken(tok *oauth2.Token) *service.SpotifyToken {
	return &service.SpotifyToken{
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
		ExpiresAt:    tok.Expiry,
	}
}
