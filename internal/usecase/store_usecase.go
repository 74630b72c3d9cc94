package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// CreateStoreInput carries the fields of a new store and the owner's email.
type CreateStoreInput struct {
	Email              string
	Name               string
	RegistrationNumber string
	StateRegistration  string
	CorporateName      string
	Category           string
}

// UpdateStoreInput carries the editable store fields.
type UpdateStoreInput struct {
	RegistrationNumber string
	StateRegistration  string
	CorporateName      string
	Category           string
	LogoImage          string
}

// AuthOutput is returned by every operation that starts a session.
type AuthOutput struct {
	StoreName string
	Email     string
	Token     string
}

// StoreUsecase defines store provisioning and store management operations.
type StoreUsecase interface {
	// CreateStore provisions a store for an existing seller and returns a session token scoped to it.
	CreateStore(ctx context.Context, input *CreateStoreInput) (*AuthOutput, error)

	// ListStores returns every store, unfiltered.
	ListStores(ctx context.Context) ([]*entity.Store, error)

	GetStore(ctx context.Context, scope entity.StoreScope, storeName string) (*entity.Store, error)
	UpdateStore(ctx context.Context, scope entity.StoreScope, storeName string, input *UpdateStoreInput) (*entity.Store, error)
}
