// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	domainerrors "storefront/internal/domain/errors"

	"github.com/pkg/errors"
)

// unavailable logs the downstream failure and returns ErrServiceUnavailable
// so the cause never reaches the caller.
func unavailable(ctx context.Context, logger *slog.Logger, cause error, message string) error {
	logger.ErrorContext(ctx, message, slog.Any("error", cause))

	return errors.Wrap(domainerrors.ErrServiceUnavailable, message)
}

// passthrough reports whether err already carries one of the given business errors.
func passthrough(err error, targets ...error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}

	return false
}
