// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	StoreHandler      *handler.StoreHandler
	SellerHandler     *handler.SellerHandler
	ProductHandler    *handler.ProductHandler
	StorefrontHandler *handler.StorefrontHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler       *handler.AuthHandler
	storeHandler      *handler.StoreHandler
	sellerHandler     *handler.SellerHandler
	productHandler    *handler.ProductHandler
	storefrontHandler *handler.StorefrontHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:       params.AuthHandler,
		storeHandler:      params.StoreHandler,
		sellerHandler:     params.SellerHandler,
		productHandler:    params.ProductHandler,
		storefrontHandler: params.StorefrontHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// Seller routes share the /:store prefix with the public storefront, so the
// guard is attached per route instead of per group.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// Sign-up, provisioning and login
	e.POST("/login", r.authHandler.Login)
	e.POST("/stores/newSeller", r.authHandler.RegisterSeller)
	e.POST("/stores/newStore", r.storeHandler.CreateStore)
	e.GET("/stores", r.storeHandler.ListStores)

	// Seller routes, scoped to the store in the token
	auth := r.authMiddleware.Authenticate
	e.GET("/:store/store", r.storeHandler.GetStore, auth)
	e.PATCH("/:store/store", r.storeHandler.UpdateStore, auth)
	e.GET("/:store/seller", r.sellerHandler.GetSeller, auth)
	e.PATCH("/:store/seller", r.sellerHandler.UpdateSeller, auth)
	e.GET("/:store/products", r.productHandler.ListProducts, auth)
	e.POST("/:store/products", r.productHandler.CreateProduct, auth)
	e.GET("/:store/products/count", r.productHandler.CountActiveProducts, auth)
	e.GET("/:store/products/:pid", r.productHandler.GetProduct, auth)
	e.PATCH("/:store/products/:pid", r.productHandler.UpdateProduct, auth)
	e.DELETE("/:store/products/:pid", r.productHandler.DeleteProduct, auth)

	// Public storefront
	e.POST("/:store/newBuyer", r.authHandler.RegisterBuyer)
	e.GET("/:store", r.storefrontHandler.ListProducts)
	e.GET("/:store/logo", r.storefrontHandler.GetLogo)
	e.GET("/:store/qrcode", r.storefrontHandler.GetQRCode)
	e.GET("/:store/:pid", r.storefrontHandler.GetProduct)
}
