package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ProductInput carries the fields of a catalog item. Value is a decimal string.
type ProductInput struct {
	Name        string
	Image       string
	Category    string
	Description string
	Amount      int
	Value       string
}

// ProductUsecase defines the seller-side catalog operations.
type ProductUsecase interface {
	ListProducts(ctx context.Context, scope entity.StoreScope, storeName string) ([]*entity.Product, error)
	CountActiveProducts(ctx context.Context, scope entity.StoreScope, storeName string) (int64, error)
	GetProduct(ctx context.Context, scope entity.StoreScope, storeName string, productID uuid.UUID) (*entity.Product, error)
	CreateProduct(ctx context.Context, scope entity.StoreScope, storeName string, input *ProductInput) (*entity.Product, error)
	UpdateProduct(ctx context.Context, scope entity.StoreScope, storeName string, productID uuid.UUID, input *ProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, scope entity.StoreScope, storeName string, productID uuid.UUID) error
}
