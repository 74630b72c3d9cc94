package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrStoreNotFound is returned when no store matches the lookup.
var ErrStoreNotFound = errors.New("store not found")

// StoreRepository defines the standard operations for store persistence.
type StoreRepository interface {
	// FindByNameAndRegistration looks up the store identified by its unique pair.
	FindByNameAndRegistration(ctx context.Context, name, registrationNumber string) (*entity.Store, error)

	// FindByName returns the oldest store with the given public name.
	FindByName(ctx context.Context, name string) (*entity.Store, error)

	// FindOwnedByName returns the store with the given name owned by the seller
	// with the given email, with the owner populated.
	FindOwnedByName(ctx context.Context, name, ownerEmail string) (*entity.Store, error)

	// List returns every store with products and clients populated.
	List(ctx context.Context) ([]*entity.Store, error)

	// Create persists a new store and fills in its generated ID and timestamps.
	Create(ctx context.Context, store *entity.Store) error

	// Update persists the scalar fields of an existing store.
	Update(ctx context.Context, store *entity.Store) error

	// AddClient records a buyer as a client of the store.
	AddClient(ctx context.Context, storeID, buyerID uuid.UUID) error
}
