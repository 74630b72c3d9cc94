package handler

import (
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// StorefrontHandler serves the public, buyer-facing pages of a store.
type StorefrontHandler struct {
	uc usecase.StorefrontUsecase
}

// NewStorefrontHandler is the constructor for StorefrontHandler, injected by Fx.
func NewStorefrontHandler(uc usecase.StorefrontUsecase) *StorefrontHandler {
	return &StorefrontHandler{uc: uc}
}

// ListProducts handles GET /:store.
func (h *StorefrontHandler) ListProducts(c echo.Context) error {
	products, err := h.uc.ListStoreProducts(c.Request().Context(), c.Param(paramStore))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newProductResponses(products), "")
}

// GetProduct handles GET /:store/:pid.
func (h *StorefrontHandler) GetProduct(c echo.Context) error {
	productID, err := productIDFrom(c)
	if err != nil {
		return err
	}

	product, err := h.uc.GetStoreProduct(c.Request().Context(), c.Param(paramStore), productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newProductResponse(product), "")
}

// GetLogo handles GET /:store/logo.
func (h *StorefrontHandler) GetLogo(c echo.Context) error {
	logo, err := h.uc.GetStoreLogo(c.Request().Context(), c.Param(paramStore))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"logoImage": logo}, "")
}

// GetQRCode handles GET /:store/qrcode and answers with a PNG image.
func (h *StorefrontHandler) GetQRCode(c echo.Context) error {
	png, err := h.uc.GetStoreQRCode(c.Request().Context(), c.Param(paramStore))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
