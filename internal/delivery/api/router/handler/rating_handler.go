package handler

import (
	"log/slog"
	"net/http"

	"shelf/internal/delivery/api/response"
	"shelf/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RatingHandlerParams holds dependencies for RatingHandler, injected by Fx.
type RatingHandlerParams struct {
	fx.In

	RatingUC usecase.RatingUsecase
	Logger   *slog.Logger
}

// RatingHandler serves album ratings.
type RatingHandler struct {
	ratingUC usecase.RatingUsecase
	logger   *slog.Logger
}

// NewRatingHandler is the constructor for RatingHandler
func NewRatingHandler(params RatingHandlerParams) *RatingHandler {
	return &RatingHandler{
		ratingUC: params.RatingUC,
		logger:   params.Logger,
	}
}

// RateAlbumRequest scores one album. The range is checked by the use case.
type RateAlbumRequest struct {
	AlbumID string `json:"album_id" validate:"required"`
	Rating  *int   `json:"rating" validate:"required"`
}

// RateAlbum creates or replaces the caller's score for an album
func (h *RatingHandler) RateAlbum(c echo.Context) error {
	accountID, err := currentAccount(c)
	if err != nil {
		return err
	}

	var req RateAlbumRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	rating, err := h.ratingUC.RateAlbum(c.Request().Context(), accountID, req.AlbumID, *req.Rating)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, rating)
}

// ListRatings returns the caller's ratings, newest first
func (h *RatingHandler) ListRatings(c echo.Context) error {
	accountID, err := currentAccount(c)
	if err != nil {
		return err
	}

	ratings, err := h.ratingUC.ListRatings(c.Request().Context(), accountID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ratings)
}
