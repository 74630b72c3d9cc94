// Package handler contains the HTTP handlers for the storefront API.
package handler

import (
	"net/http"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	paramStore     = "store"
	paramProductID = "pid"
)

// bindAndValidate decodes the body into req and runs its validate tags.
// A malformed body answers 400 directly and returns ok=false.
func bindAndValidate(c echo.Context, req any) (ok bool, err error) {
	if err := c.Bind(req); err != nil {
		return false, response.BindingError(c, "INVALID_INPUT", "Invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return false, err
	}

	return true, nil
}

// scopeFrom returns the store scope the auth middleware attached.
func scopeFrom(c echo.Context) (entity.StoreScope, error) {
	scope, ok := deliverycontext.GetStoreScope(c)
	if !ok {
		return entity.StoreScope{}, errors.Wrap(domainerrors.ErrTokenInvalid, "route served without authentication")
	}

	return scope, nil
}

// productIDFrom parses the :pid segment. An id that is not a UUID cannot
// name any product, so it reports not found.
func productIDFrom(c echo.Context) (uuid.UUID, error) {
	productID, err := uuid.Parse(c.Param(paramProductID))
	if err != nil {
		return uuid.Nil, errors.Wrap(domainerrors.ErrProductNotFound, "malformed product id")
	}

	return productID, nil
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
