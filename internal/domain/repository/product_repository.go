package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProductNotFound is returned when no product matches the lookup.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the standard operations for catalog persistence.
// Every lookup is scoped to a store so one store can never read another's products.
type ProductRepository interface {
	ListByStore(ctx context.Context, storeID uuid.UUID) ([]*entity.Product, error)
	CountActiveByStore(ctx context.Context, storeID uuid.UUID) (int64, error)
	FindByID(ctx context.Context, storeID, productID uuid.UUID) (*entity.Product, error)
	Create(ctx context.Context, product *entity.Product) error
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, storeID, productID uuid.UUID) error
}
