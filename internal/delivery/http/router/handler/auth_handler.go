package handler

import (
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler serves account sign-up and seller login.
type AuthHandler struct {
	accountUC usecase.AccountUsecase
	sessionUC usecase.SessionUsecase
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(accountUC usecase.AccountUsecase, sessionUC usecase.SessionUsecase) *AuthHandler {
	return &AuthHandler{
		accountUC: accountUC,
		sessionUC: sessionUC,
	}
}

// RegisterSeller handles POST /stores/newSeller.
func (h *AuthHandler) RegisterSeller(c echo.Context) error {
	var req registerSellerRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	output, err := h.accountUC.RegisterSeller(c.Request().Context(), req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"email": output.Email}, "Seller registered successfully")
}

// RegisterBuyer handles POST /:store/newBuyer.
func (h *AuthHandler) RegisterBuyer(c echo.Context) error {
	var req registerBuyerRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	buyer, err := h.accountUC.RegisterBuyer(c.Request().Context(), c.Param(paramStore), req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newBuyerResponse(buyer), "Buyer registered successfully")
}

// Login handles POST /login.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	output, err := h.sessionUC.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newAuthResponse(output), "Login successful")
}
