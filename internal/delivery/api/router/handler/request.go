package handler

import (
	"shelf/internal/delivery/api/middleware"
	domainerrors "shelf/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// bindAndValidate decodes the request body into req and runs its validate tags.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	return c.Validate(req)
}

// currentAccount returns the account id attached by the auth middleware.
func currentAccount(c echo.Context) (uuid.UUID, error) {
	accountID, ok := middleware.GetUserID(c)
	if !ok {
		return uuid.Nil, domainerrors.ErrInvalidToken
	}

	return accountID, nil
}

// pathUUID parses a path parameter. Malformed ids are reported as notFound since
// no row can carry them.
func pathUUID(c echo.Context, name string, notFound error) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, notFound
	}

	return id, nil
}
