package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "shelf/internal/delivery/context"
	domainerrors "shelf/internal/domain/errors"
	"shelf/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	headerAuthorization = "Authorization"
	bearerScheme        = "bearer"
	contextKeyAccountID = "accountID"
)

// AuthMiddleware resolves the bearer session token into the caller's account id.
type AuthMiddleware struct {
	tokenService service.TokenService
	logger       *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenService service.TokenService, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokenService: tokenService, logger: logger}
}

// Authenticate rejects requests without a valid session token. A header without a
// bearer credential yields MISSING_TOKEN; every verification failure yields the
// same INVALID_TOKEN.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, err := bearerToken(c.Request().Header.Get(headerAuthorization))
		if err != nil {
			return err
		}

		claims, err := m.tokenService.VerifyToken(token)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
				Debug("Session token rejected", slog.Any("reason", err))

			return domainerrors.ErrInvalidToken
		}

		c.Set(contextKeyAccountID, claims.Subject)

		return next(c)
	}
}

func bearerToken(header string) (string, error) {
	header = strings.TrimSpace(header)
	if header == "" {
		return "", domainerrors.ErrMissingToken
	}

	scheme, token, _ := strings.Cut(header, " ")
	if !strings.EqualFold(scheme, bearerScheme) {
		return "", domainerrors.ErrMissingToken
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", domainerrors.ErrMissingToken
	}

	return token, nil
}

// GetUserID returns the account id stored by Authenticate.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(contextKeyAccountID).(uuid.UUID)

	return id, ok && id != uuid.Nil
}
