// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrSellerNotFound is returned when no seller matches the lookup.
var ErrSellerNotFound = errors.New("seller not found")

// SellerRepository defines the standard operations for seller persistence.
type SellerRepository interface {
	// FindByEmail retrieves a seller by email without relations.
	FindByEmail(ctx context.Context, email string) (*entity.Seller, error)

	// FindByEmailWithStore retrieves a seller by email with the owned store populated.
	FindByEmailWithStore(ctx context.Context, email string) (*entity.Seller, error)

	// Create persists a new seller and fills in its generated ID and timestamps.
	Create(ctx context.Context, seller *entity.Seller) error

	// Update persists the profile fields of an existing seller. The store
	// back-reference is only ever written by AssignStore.
	Update(ctx context.Context, seller *entity.Seller) error

	// AssignStore links storeID to a seller that has no store yet. It fails
	// with ErrSellerAlreadyHasStore when the seller is already linked, so two
	// concurrent provisionings cannot both claim the same owner.
	AssignStore(ctx context.Context, sellerID, storeID uuid.UUID) error
}
