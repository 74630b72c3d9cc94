// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// RegisterSellerInput carries the fields of a new seller account.
type RegisterSellerInput struct {
	Name       string
	LastName   string
	TaxID      string
	Email      string
	PostalCode string
	Number     string
	Password   string
}

// RegisterSellerOutput is the only data returned after a seller signs up.
type RegisterSellerOutput struct {
	Email string
}

// RegisterBuyerInput carries the fields of a new buyer account.
type RegisterBuyerInput struct {
	Name       string
	LastName   string
	TaxID      string
	Email      string
	PostalCode string
	Number     string
	Password   string
}

// AccountUsecase defines the account registration operations.
type AccountUsecase interface {
	// RegisterSeller creates a seller account with a hashed password.
	RegisterSeller(ctx context.Context, input *RegisterSellerInput) (*RegisterSellerOutput, error)

	// RegisterBuyer creates a buyer account and records it as a client of the named store.
	RegisterBuyer(ctx context.Context, storeName string, input *RegisterBuyerInput) (*entity.Buyer, error)
}
