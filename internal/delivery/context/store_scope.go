package context

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// KeyStoreScope is the key for storing the authenticated store scope.
const KeyStoreScope ContextKey = "store_scope"

// SetStoreScope stores the decoded token claims on both the echo.Context and
// the request's context.Context.
func SetStoreScope(c echo.Context, scope entity.StoreScope) {
	c.Set(string(KeyStoreScope), scope)
	c.SetRequest(c.Request().WithContext(WithStoreScope(c.Request().Context(), scope)))
}

// GetStoreScope extracts the store scope set by the auth middleware.
func GetStoreScope(c echo.Context) (entity.StoreScope, bool) {
	scope, ok := c.Get(string(KeyStoreScope)).(entity.StoreScope)

	return scope, ok
}

// WithStoreScope returns a new context with the store scope.
func WithStoreScope(ctx context.Context, scope entity.StoreScope) context.Context {
	return context.WithValue(ctx, KeyStoreScope, scope)
}

// GetStoreScopeFromContext extracts the store scope from standard context.Context.
func GetStoreScopeFromContext(ctx context.Context) (entity.StoreScope, bool) {
	scope, ok := ctx.Value(KeyStoreScope).(entity.StoreScope)

	return scope, ok
}
