package handler

import (
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// StoreHandler serves store provisioning and the seller's store settings.
type StoreHandler struct {
	uc usecase.StoreUsecase
}

// NewStoreHandler is the constructor for StoreHandler, injected by Fx.
func NewStoreHandler(uc usecase.StoreUsecase) *StoreHandler {
	return &StoreHandler{uc: uc}
}

// CreateStore handles POST /stores/newStore and answers with a session token.
func (h *StoreHandler) CreateStore(c echo.Context) error {
	var req createStoreRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	output, err := h.uc.CreateStore(c.Request().Context(), &usecase.CreateStoreInput{
		Email:              req.Email,
		Name:               req.Name,
		RegistrationNumber: req.RegistrationNumber,
		StateRegistration:  req.StateRegistration,
		CorporateName:      req.CorporateName,
		Category:           req.Category,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newAuthResponse(output), "Store created successfully")
}

// ListStores handles GET /stores.
func (h *StoreHandler) ListStores(c echo.Context) error {
	stores, err := h.uc.ListStores(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]storeResponse, 0, len(stores))
	for _, store := range stores {
		out = append(out, newStoreResponse(store))
	}

	return response.Success(c, http.StatusOK, out, "")
}

// GetStore handles GET /:store/store.
func (h *StoreHandler) GetStore(c echo.Context) error {
	scope, err := scopeFrom(c)
	if err != nil {
		return err
	}

	store, err := h.uc.GetStore(c.Request().Context(), scope, c.Param(paramStore))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newStoreResponse(store), "")
}

// UpdateStore handles PATCH /:store/store.
func (h *StoreHandler) UpdateStore(c echo.Context) error {
	scope, err := scopeFrom(c)
	if err != nil {
		return err
	}

	var req updateStoreRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	store, err := h.uc.UpdateStore(c.Request().Context(), scope, c.Param(paramStore), &usecase.UpdateStoreInput{
		RegistrationNumber: req.RegistrationNumber,
		StateRegistration:  req.StateRegistration,
		CorporateName:      req.CorporateName,
		Category:           req.Category,
		LogoImage:          req.LogoImage,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newStoreResponse(store), "Store updated")
}
