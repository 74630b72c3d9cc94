package handler

import (
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SellerHandler serves the profile of the store's owner.
type SellerHandler struct {
	uc usecase.SellerUsecase
}

// NewSellerHandler is the constructor for SellerHandler, injected by Fx.
func NewSellerHandler(uc usecase.SellerUsecase) *SellerHandler {
	return &SellerHandler{uc: uc}
}

// GetSeller handles GET /:store/seller.
func (h *SellerHandler) GetSeller(c echo.Context) error {
	scope, err := scopeFrom(c)
	if err != nil {
		return err
	}

	seller, err := h.uc.GetSeller(c.Request().Context(), scope, c.Param(paramStore))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newSellerResponse(seller), "")
}

// UpdateSeller handles PATCH /:store/seller.
func (h *SellerHandler) UpdateSeller(c echo.Context) error {
	scope, err := scopeFrom(c)
	if err != nil {
		return err
	}

	var req updateSellerRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	seller, err := h.uc.UpdateSeller(c.Request().Context(), scope, c.Param(paramStore), &usecase.UpdateSellerInput{
		Name:       req.Name,
		LastName:   req.LastName,
		PostalCode: req.PostalCode,
		Number:     req.Number,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newSellerResponse(seller), "Seller updated")
}
