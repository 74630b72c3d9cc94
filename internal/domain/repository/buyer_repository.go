package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"
)

// ErrBuyerNotFound is returned when no buyer matches the lookup.
var ErrBuyerNotFound = errors.New("buyer not found")

// BuyerRepository defines the standard operations for buyer persistence.
type BuyerRepository interface {
	FindByEmail(ctx context.Context, email string) (*entity.Buyer, error)
	Create(ctx context.Context, buyer *entity.Buyer) error
}
