package handler

import (
	"log/slog"
	"net/http"

	"shelf/internal/delivery/api/response"
	deliverycontext "shelf/internal/delivery/context"
	"shelf/internal/usecase"

	"github.com/labstack/echo/v4"
)

// HealthHandler reports service readiness.
type HealthHandler struct {
	healthUC usecase.HealthUsecase
	logger   *slog.Logger
}

// NewHealthHandler is the constructor for HealthHandler
func NewHealthHandler(healthUC usecase.HealthUsecase, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{healthUC: healthUC, logger: logger}
}

// Check pings the database
func (h *HealthHandler) Check(c echo.Context) error {
	ctx := c.Request().Context()
	if err := h.healthUC.Check(ctx); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Warn("Health check failed", slog.Any("error", err))

		return response.Error(c, http.StatusServiceUnavailable, "DATABASE_UNAVAILABLE", "Database is unreachable", nil)
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
