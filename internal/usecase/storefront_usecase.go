package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// StorefrontUsecase defines the public, buyer-facing reads of a store.
type StorefrontUsecase interface {
	ListStoreProducts(ctx context.Context, storeName string) ([]*entity.Product, error)
	GetStoreProduct(ctx context.Context, storeName string, productID uuid.UUID) (*entity.Product, error)
	GetStoreLogo(ctx context.Context, storeName string) (string, error)

	// GetStoreQRCode renders a PNG QR code that links to the store's catalog.
	GetStoreQRCode(ctx context.Context, storeName string) ([]byte, error)
}
