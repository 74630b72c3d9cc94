package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// UpdateSellerInput carries the profile fields a seller may change.
type UpdateSellerInput struct {
	Name       string
	LastName   string
	PostalCode string
	Number     string
}

// SellerUsecase defines the seller profile operations. Both are restricted
// to the store bound into the caller's token.
type SellerUsecase interface {
	GetSeller(ctx context.Context, scope entity.StoreScope, storeName string) (*entity.Seller, error)
	UpdateSeller(ctx context.Context, scope entity.StoreScope, storeName string, input *UpdateSellerInput) (*entity.Seller, error)
}
