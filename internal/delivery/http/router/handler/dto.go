package handler

import (
	"encoding/json"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/google/uuid"
)

// Request bodies keep the public field names of the storefront API:
// cpf is the person's tax id, cnpj the company registration and ie the
// state registration. Passwords are capped at bcrypt's 72 byte input limit.

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type registerSellerRequest struct {
	Name       string `json:"name" validate:"required"`
	LastName   string `json:"lastname" validate:"required"`
	TaxID      string `json:"cpf" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	PostalCode string `json:"postalCode" validate:"required"`
	Number     string `json:"number" validate:"required"`
	Password   string `json:"password" validate:"required,max=72"`
}

func (r *registerSellerRequest) toInput() *usecase.RegisterSellerInput {
	return &usecase.RegisterSellerInput{
		Name:       r.Name,
		LastName:   r.LastName,
		TaxID:      r.TaxID,
		Email:      r.Email,
		PostalCode: r.PostalCode,
		Number:     r.Number,
		Password:   r.Password,
	}
}

type registerBuyerRequest registerSellerRequest

func (r *registerBuyerRequest) toInput() *usecase.RegisterBuyerInput {
	return &usecase.RegisterBuyerInput{
		Name:       r.Name,
		LastName:   r.LastName,
		TaxID:      r.TaxID,
		Email:      r.Email,
		PostalCode: r.PostalCode,
		Number:     r.Number,
		Password:   r.Password,
	}
}

type createStoreRequest struct {
	Email              string `json:"email" validate:"required,email"`
	Name               string `json:"name" validate:"required"`
	RegistrationNumber string `json:"cnpj" validate:"required"`
	StateRegistration  string `json:"ie" validate:"required"`
	CorporateName      string `json:"corporateName" validate:"required"`
	Category           string `json:"category" validate:"required"`
}

type updateStoreRequest struct {
	RegistrationNumber string `json:"cnpj" validate:"required"`
	StateRegistration  string `json:"ie" validate:"required"`
	CorporateName      string `json:"corporateName" validate:"required"`
	Category           string `json:"category" validate:"required"`
	LogoImage          string `json:"logoImage" validate:"required"`
}

type updateSellerRequest struct {
	Name       string `json:"name" validate:"required"`
	LastName   string `json:"lastname" validate:"required"`
	PostalCode string `json:"postalCode" validate:"required"`
	Number     string `json:"number" validate:"required"`
}

// productRequest accepts value as a JSON number or a numeric string.
type productRequest struct {
	Name        string      `json:"name" validate:"required"`
	Image       string      `json:"image" validate:"required"`
	Category    string      `json:"category" validate:"required"`
	Description string      `json:"description" validate:"required"`
	Amount      *int        `json:"amount" validate:"required,gte=0"`
	Value       json.Number `json:"value" validate:"required"`
}

func (r *productRequest) toInput() *usecase.ProductInput {
	return &usecase.ProductInput{
		Name:        r.Name,
		Image:       r.Image,
		Category:    r.Category,
		Description: r.Description,
		Amount:      *r.Amount,
		Value:       r.Value.String(),
	}
}

type authResponse struct {
	StoreName string `json:"storeName"`
	Email     string `json:"email"`
	Token     string `json:"token"`
}

func newAuthResponse(out *usecase.AuthOutput) authResponse {
	return authResponse{StoreName: out.StoreName, Email: out.Email, Token: out.Token}
}

// sellerResponse is the public seller profile. Credentials, the store link
// and bookkeeping timestamps stay out of it.
type sellerResponse struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	LastName   string    `json:"lastname"`
	TaxID      string    `json:"cpf"`
	Email      string    `json:"email"`
	PostalCode string    `json:"postalCode"`
	Number     string    `json:"number"`
}

func newSellerResponse(seller *entity.Seller) sellerResponse {
	return sellerResponse{
		ID:         seller.ID,
		Name:       seller.Name,
		LastName:   seller.LastName,
		TaxID:      seller.TaxID,
		Email:      seller.Email,
		PostalCode: seller.PostalCode,
		Number:     seller.Number,
	}
}

type buyerResponse struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	LastName   string    `json:"lastname"`
	TaxID      string    `json:"cpf"`
	Email      string    `json:"email"`
	PostalCode string    `json:"postalCode"`
	Number     string    `json:"number"`
	CreatedAt  time.Time `json:"createdAt"`
}

func newBuyerResponse(buyer *entity.Buyer) buyerResponse {
	return buyerResponse{
		ID:         buyer.ID,
		Name:       buyer.Name,
		LastName:   buyer.LastName,
		TaxID:      buyer.TaxID,
		Email:      buyer.Email,
		PostalCode: buyer.PostalCode,
		Number:     buyer.Number,
		CreatedAt:  buyer.CreatedAt,
	}
}

type productResponse struct {
	ID          uuid.UUID `json:"id"`
	StoreID     uuid.UUID `json:"storeId"`
	Name        string    `json:"name"`
	Image       string    `json:"image"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Amount      int       `json:"amount"`
	Value       string    `json:"value"`
	Active      bool      `json:"active"`
}

func newProductResponse(product *entity.Product) productResponse {
	return productResponse{
		ID:          product.ID,
		StoreID:     product.StoreID,
		Name:        product.Name,
		Image:       product.Image,
		Category:    product.Category,
		Description: product.Description,
		Amount:      product.Amount,
		Value:       product.Value.String(),
		Active:      product.IsActive(),
	}
}

func newProductResponses(products []*entity.Product) []productResponse {
	out := make([]productResponse, 0, len(products))
	for _, product := range products {
		out = append(out, newProductResponse(product))
	}

	return out
}

type storeResponse struct {
	ID                 uuid.UUID         `json:"id"`
	Name               string            `json:"name"`
	RegistrationNumber string            `json:"cnpj"`
	StateRegistration  string            `json:"ie"`
	CorporateName      string            `json:"corporateName"`
	Category           string            `json:"category"`
	LogoImage          string            `json:"logoImage"`
	OwnerID            uuid.UUID         `json:"owner"`
	Products           []productResponse `json:"products"`
	BalanceAvailable   string            `json:"balanceAvailable"`
	Clients            []uuid.UUID       `json:"clients"`
	CreatedAt          time.Time         `json:"createdAt"`
}

func newStoreResponse(store *entity.Store) storeResponse {
	clients := store.ClientIDs
	if clients == nil {
		clients = []uuid.UUID{}
	}

	return storeResponse{
		ID:                 store.ID,
		Name:               store.Name,
		RegistrationNumber: store.RegistrationNumber,
		StateRegistration:  store.StateRegistration,
		CorporateName:      store.CorporateName,
		Category:           store.Category,
		LogoImage:          store.LogoImage,
		OwnerID:            store.OwnerID,
		Products:           newProductResponses(store.Products),
		BalanceAvailable:   store.BalanceAvailable.String(),
		Clients:            clients,
		CreatedAt:          store.CreatedAt,
	}
}
