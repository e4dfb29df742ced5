package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"shelf/config"
	apimiddleware "shelf/internal/delivery/api/middleware"
	"shelf/internal/delivery/api/router"
	"shelf/internal/delivery/api/router/handler"
	deliverycontext "shelf/internal/delivery/context"
	"shelf/internal/domain/entity"
	domainerrors "shelf/internal/domain/errors"
	"shelf/internal/domain/service"
	mockSvc "shelf/internal/mocks/service"
	mockUC "shelf/internal/mocks/usecase"
	"shelf/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const validToken = "header.payload.signature"

type apiFixtures struct {
	echo      *echo.Echo
	accountID uuid.UUID
	tokens    *mockSvc.MockTokenService
	accountUC *mockUC.MockAccountUsecase
	linkUC    *mockUC.MockSpotifyLinkUsecase
	listUC    *mockUC.MockListUsecase
	ratingUC  *mockUC.MockRatingUsecase
	healthUC  *mockUC.MockHealthUsecase
}

func createTestAPI(t *testing.T) apiFixtures {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "100KB"

	srv := apiFixtures{
		accountID: uuid.New(),
		tokens:    mockSvc.NewMockTokenService(t),
		accountUC: mockUC.NewMockAccountUsecase(t),
		linkUC:    mockUC.NewMockSpotifyLinkUsecase(t),
		listUC:    mockUC.NewMockListUsecase(t),
		ratingUC:  mockUC.NewMockRatingUsecase(t),
		healthUC:  mockUC.NewMockHealthUsecase(t),
	}

	srv.tokens.EXPECT().VerifyToken(validToken).
		Return(&service.SessionClaims{Subject: srv.accountID}, nil).Maybe()

	srv.echo = NewEcho(ServerParams{
		Cfg:             cfg,
		Logger:          logger,
		ErrorMiddleware: apimiddleware.NewErrorMiddleware(logger),
		RouterParams: router.RouterParams{
			AccountHandler: handler.NewAccountHandler(handler.AccountHandlerParams{AccountUC: srv.accountUC, Logger: logger}),
			SpotifyHandler: handler.NewSpotifyHandler(handler.SpotifyHandlerParams{LinkUC: srv.linkUC, Logger: logger}),
			ListHandler:    handler.NewListHandler(handler.ListHandlerParams{ListUC: srv.listUC, Logger: logger}),
			RatingHandler:  handler.NewRatingHandler(handler.RatingHandlerParams{RatingUC: srv.ratingUC, Logger: logger}),
			HealthHandler:  handler.NewHealthHandler(srv.healthUC, logger),
			AuthMiddleware: apimiddleware.NewAuthMiddleware(srv.tokens, logger),
		},
	})

	return srv
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string          `json:"code"`
		Message string          `json:"message"`
		Details json.RawMessage `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func (srv apiFixtures) do(t *testing.T, method, target, body, token string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	srv.echo.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return rec, env
}

func TestAPI_Health(t *testing.T) {
	srv := createTestAPI(t)

	srv.healthUC.EXPECT().Check(mock.Anything).Return(nil).Once()
	srv.healthUC.EXPECT().Check(mock.Anything).Return(errors.New("connection refused")).Once()

	rec, env := srv.do(t, http.MethodGet, "/api/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, string(env.Data))
	assert.NotEmpty(t, env.Meta.RequestID)
	assert.Equal(t, env.Meta.RequestID, rec.Header().Get(deliverycontext.HeaderXRequestID))

	rec, env = srv.do(t, http.MethodGet, "/api/health", "", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "DATABASE_UNAVAILABLE", env.Error.Code)
}

func TestAPI_AuthGate(t *testing.T) {
	srv := createTestAPI(t)

	srv.tokens.EXPECT().VerifyToken("expired.token.value").Return(nil, domainerrors.ErrExpiredToken)
	srv.tokens.EXPECT().VerifyToken("forged.token.value").Return(nil, domainerrors.ErrInvalidSignature)

	tests := []struct {
		name   string
		header string
		code   string
	}{
		{name: "no header", header: "", code: "MISSING_TOKEN"},
		{name: "empty bearer", header: "Bearer ", code: "MISSING_TOKEN"},
		{name: "wrong scheme", header: "Basic dXNlcjpwYXNz", code: "MISSING_TOKEN"},
		{name: "expired", header: "Bearer expired.token.value", code: "INVALID_TOKEN"},
		{name: "bad signature", header: "Bearer forged.token.value", code: "INVALID_TOKEN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/lists", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()
			srv.echo.ServeHTTP(rec, req)

			var env envelope
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, tt.code, env.Error.Code)
		})
	}
}

func TestAPI_Register(t *testing.T) {
	srv := createTestAPI(t)

	account := &entity.Account{ID: uuid.New(), Username: "alice", PasswordHash: "salt:key"}
	expiresAt := time.Date(2026, 1, 8, 0, 0, 0, 0, time.UTC)

	srv.accountUC.EXPECT().
		Register(mock.Anything, &usecase.RegisterInput{Username: "alice", Password: "correct-horse"}).
		Return(&usecase.AuthOutput{Token: "session-token", ExpiresAt: expiresAt, Account: account}, nil)

	rec, env := srv.do(t, http.MethodPost, "/api/auth/register", `{"username":"alice","password":"correct-horse"}`, "")

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, string(env.Data), `"token":"session-token"`)
	assert.Contains(t, string(env.Data), `"username":"alice"`)
	assert.NotContains(t, string(env.Data), "salt:key")
}

func TestAPI_Register_ValidationDetails(t *testing.T) {
	srv := createTestAPI(t)

	rec, env := srv.do(t, http.MethodPost, "/api/auth/register", `{"username":"alice"}`, "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.JSONEq(t, `[{"field":"password","rule":"required"}]`, string(env.Error.Details))
}

func TestAPI_Register_UsernameTaken(t *testing.T) {
	srv := createTestAPI(t)

	srv.accountUC.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrUsernameTaken)

	rec, env := srv.do(t, http.MethodPost, "/api/auth/register", `{"username":"alice","password":"correct-horse"}`, "")

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "USERNAME_TAKEN", env.Error.Code)
}

func TestAPI_SpotifyCallback_AlreadyLinked(t *testing.T) {
	srv := createTestAPI(t)

	srv.linkUC.EXPECT().
		CompleteLink(mock.Anything, &usecase.CompleteLinkInput{AccountID: srv.accountID, State: "s", Code: "c"}).
		Return(nil, domainerrors.ErrAlreadyLinked)

	rec, env := srv.do(t, http.MethodPost, "/api/spotify/callback", `{"state":"s","code":"c"}`, validToken)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "ALREADY_LINKED", env.Error.Code)
}

func TestAPI_SpotifyToken(t *testing.T) {
	srv := createTestAPI(t)

	srv.linkUC.EXPECT().GetUpstreamAccessToken(mock.Anything, srv.accountID).
		Return(&usecase.UpstreamToken{AccessToken: "access-1"}, nil)

	rec, env := srv.do(t, http.MethodGet, "/api/spotify/token", "", validToken)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"access_token":"access-1"}`, string(env.Data))
}

func TestAPI_Lists(t *testing.T) {
	srv := createTestAPI(t)

	listID := uuid.New()
	itemA, itemB := uuid.New(), uuid.New()

	srv.listUC.EXPECT().
		ReorderItems(mock.Anything, srv.accountID, listID, []uuid.UUID{itemB, itemA}).
		Return(&entity.List{ID: listID, Items: []*entity.ListItem{}}, nil)
	srv.listUC.EXPECT().
		MoveItem(mock.Anything, srv.accountID, listID, itemA, entity.MoveUp).
		Return(nil, domainerrors.ErrListForbidden)

	rec, _ := srv.do(t, http.MethodPatch, "/api/lists/"+listID.String()+"/items/reorder",
		`{"ordered_item_ids":["`+itemB.String()+`","`+itemA.String()+`"]}`, validToken)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, env := srv.do(t, http.MethodPatch, "/api/lists/"+listID.String()+"/items/reorder",
		`{"ordered_item_ids":["not-a-uuid"]}`, validToken)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "REORDER_MISMATCH", env.Error.Code)

	rec, env = srv.do(t, http.MethodPost, "/api/lists/"+listID.String()+"/items/"+itemA.String()+"/move",
		`{"direction":"up"}`, validToken)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "FORBIDDEN", env.Error.Code)

	rec, env = srv.do(t, http.MethodPost, "/api/lists/"+listID.String()+"/items/"+itemA.String()+"/move",
		`{"direction":"sideways"}`, validToken)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)

	rec, env = srv.do(t, http.MethodDelete, "/api/lists/not-a-uuid", "", validToken)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "LIST_NOT_FOUND", env.Error.Code)
}

func TestAPI_CreateList(t *testing.T) {
	srv := createTestAPI(t)

	list := &entity.List{ID: uuid.New(), Name: "Road trip", Items: []*entity.ListItem{}}
	srv.listUC.EXPECT().CreateList(mock.Anything, srv.accountID, "Road trip").Return(list, nil)

	rec, env := srv.do(t, http.MethodPost, "/api/lists", `{"name":"Road trip"}`, validToken)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, string(env.Data), `"name":"Road trip"`)

	rec, env = srv.do(t, http.MethodPost, "/api/lists", `{"name":"`+strings.Repeat("x", 201)+`"}`, validToken)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
}

func TestAPI_RateAlbum(t *testing.T) {
	srv := createTestAPI(t)

	srv.ratingUC.EXPECT().RateAlbum(mock.Anything, srv.accountID, "album-1", 11).Return(nil, domainerrors.ErrRatingOutOfRange)

	rec, env := srv.do(t, http.MethodPost, "/api/ratings", `{"album_id":"album-1","rating":11}`, validToken)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "RATING_OUT_OF_RANGE", env.Error.Code)

	rec, env = srv.do(t, http.MethodPost, "/api/ratings", `{"album_id":"album-1"}`, validToken)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
}

func TestAPI_UnhandledErrorIsHidden(t *testing.T) {
	srv := createTestAPI(t)

	srv.ratingUC.EXPECT().ListRatings(mock.Anything, srv.accountID).Return(nil, errors.New("pq: relation does not exist"))

	rec, env := srv.do(t, http.MethodGet, "/api/ratings", "", validToken)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "INTERNAL_ERROR", env.Error.Code)
	assert.NotContains(t, rec.Body.String(), "relation")
}

func TestAPI_UnknownRoute(t *testing.T) {
	srv := createTestAPI(t)

	rec, env := srv.do(t, http.MethodGet, "/api/nope", "", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}
