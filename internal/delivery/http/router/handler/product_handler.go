package handler

import (
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProductHandler serves the seller-side catalog.
type ProductHandler struct {
	uc usecase.ProductUsecase
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(uc usecase.ProductUsecase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// ListProducts handles GET /:store/products.
func (h *ProductHandler) ListProducts(c echo.Context) error {
	scope, err := scopeFrom(c)
	if err != nil {
		return err
	}

	products, err := h.uc.ListProducts(c.Request().Context(), scope, c.Param(paramStore))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newProductResponses(products), "")
}

// CountActiveProducts handles GET /:store/products/count.
func (h *ProductHandler) CountActiveProducts(c echo.Context) error {
	scope, err := scopeFrom(c)
	if err != nil {
		return err
	}

	count, err := h.uc.CountActiveProducts(c.Request().Context(), scope, c.Param(paramStore))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"count": count}, "")
}

// GetProduct handles GET /:store/products/:pid.
func (h *ProductHandler) GetProduct(c echo.Context) error {
	scope, err := scopeFrom(c)
	if err != nil {
		return err
	}
	productID, err := productIDFrom(c)
	if err != nil {
		return err
	}

	product, err := h.uc.GetProduct(c.Request().Context(), scope, c.Param(paramStore), productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newProductResponse(product), "")
}

// CreateProduct handles POST /:store/products.
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	scope, err := scopeFrom(c)
	if err != nil {
		return err
	}

	var req productRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	product, err := h.uc.CreateProduct(c.Request().Context(), scope, c.Param(paramStore), req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newProductResponse(product), "Product created")
}

// UpdateProduct handles PATCH /:store/products/:pid.
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	scope, err := scopeFrom(c)
	if err != nil {
		return err
	}
	productID, err := productIDFrom(c)
	if err != nil {
		return err
	}

	var req productRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	product, err := h.uc.UpdateProduct(c.Request().Context(), scope, c.Param(paramStore), productID, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newProductResponse(product), "Product updated")
}

// DeleteProduct handles DELETE /:store/products/:pid.
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	scope, err := scopeFrom(c)
	if err != nil {
		return err
	}
	productID, err := productIDFrom(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteProduct(c.Request().Context(), scope, c.Param(paramStore), productID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"id": productID.String()}, "Product deleted")
}
