package handler

import (
	"log/slog"
	"net/http"
	"time"

	"shelf/internal/delivery/api/response"
	"shelf/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SpotifyHandlerParams holds dependencies for SpotifyHandler, injected by Fx.
type SpotifyHandlerParams struct {
	fx.In

	LinkUC usecase.SpotifyLinkUsecase
	Logger *slog.Logger
}

// SpotifyHandler serves the account linking flow and upstream tokens.
type SpotifyHandler struct {
	linkUC usecase.SpotifyLinkUsecase
	logger *slog.Logger
}

// NewSpotifyHandler is the constructor for SpotifyHandler
func NewSpotifyHandler(params SpotifyHandlerParams) *SpotifyHandler {
	return &SpotifyHandler{
		linkUC: params.LinkUC,
		logger: params.Logger,
	}
}

// BeginLinkResponse tells the client where to send the user for consent.
type BeginLinkResponse struct {
	AuthorizeURL string    `json:"authorize_url"`
	State        string    `json:"state"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// CallbackRequest carries what the provider redirected back with.
type CallbackRequest struct {
	State string `json:"state" validate:"required"`
	Code  string `json:"code" validate:"required"`
}

// UpstreamTokenResponse is a short-lived Spotify access token.
type UpstreamTokenResponse struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at,omitzero"`
}

// BeginLink starts a PKCE authorization
func (h *SpotifyHandler) BeginLink(c echo.Context) error {
	accountID, err := currentAccount(c)
	if err != nil {
		return err
	}

	out, err := h.linkUC.BeginLink(c.Request().Context(), accountID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &BeginLinkResponse{
		AuthorizeURL: out.AuthorizeURL,
		State:        out.State,
		ExpiresAt:    out.ExpiresAt,
	})
}

// Callback completes the authorization and links the Spotify identity
func (h *SpotifyHandler) Callback(c echo.Context) error {
	accountID, err := currentAccount(c)
	if err != nil {
		return err
	}

	var req CallbackRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	linked, err := h.linkUC.CompleteLink(c.Request().Context(), &usecase.CompleteLinkInput{
		AccountID: accountID,
		State:     req.State,
		Code:      req.Code,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, linked)
}

// Token returns a freshly refreshed Spotify access token
func (h *SpotifyHandler) Token(c echo.Context) error {
	accountID, err := currentAccount(c)
	if err != nil {
		return err
	}

	tok, err := h.linkUC.GetUpstreamAccessToken(c.Request().Context(), accountID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &UpstreamTokenResponse{
		AccessToken: tok.AccessToken,
		ExpiresAt:   tok.ExpiresAt,
	})
}
