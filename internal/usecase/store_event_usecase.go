package usecase

import (
	"context"

	"storefront/internal/domain/service"
)

// StoreEventUsecase consumes the store lifecycle events delivered to the worker.
type StoreEventUsecase interface {
	// HandleStoreCreated confirms a newly provisioned store against the
	// database. Errors matching ErrServiceUnavailable are worth redelivering.
	HandleStoreCreated(ctx context.Context, event *service.StoreCreatedEvent) error
}
