package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront/config"
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/response"
	"storefront/internal/delivery/http/router"
	"storefront/internal/delivery/http/router/handler"
	"storefront/internal/infra/auth"
	"storefront/internal/infra/persistence/postgres"
	"storefront/internal/infra/pubsub"
	"storefront/internal/infra/qrcode"
	"storefront/internal/testdb"
	"storefront/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
	"golang.org/x/crypto/bcrypt"
)

// newTestServer assembles the full HTTP stack over a throwaway SQLite database.
func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "100KB"
	cfg.SecretKey.Access = "test-secret"
	cfg.QRCode = &config.QRCodeConfig{BaseURL: "https://shop.example.com"}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	db := testdb.New(t)

	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)
	hasher := auth.NewBcryptHasherWithCost(bcrypt.MinCost)

	lc := fxtest.NewLifecycle(t)
	publisher, err := pubsub.NewEventPublisher(pubsub.PublisherParams{
		Lc:     lc,
		Ctx:    t.Context(),
		Config: cfg,
		Logger: logger,
	})
	require.NoError(t, err)

	txManager := postgres.NewTransactionManager(db)
	sellerRepo := postgres.NewSellerRepository(db)
	storeRepo := postgres.NewStoreRepository(db)
	buyerRepo := postgres.NewBuyerRepository(db)
	productRepo := postgres.NewProductRepository(db)

	accounts := impl.NewAccountService(txManager, sellerRepo, buyerRepo, storeRepo, hasher, logger)
	sessions := impl.NewSessionService(sellerRepo, hasher, tokens, logger)
	stores := impl.NewStoreService(txManager, sellerRepo, storeRepo, productRepo, tokens, publisher, logger)
	sellers := impl.NewSellerService(sellerRepo, storeRepo, logger)
	products := impl.NewProductService(storeRepo, productRepo, logger)
	storefront := impl.NewStorefrontService(storeRepo, productRepo, qrcode.NewQRCodeService(cfg), logger)

	return NewEcho(cfg, logger, router.RouterParams{
		AuthHandler:       handler.NewAuthHandler(accounts, sessions),
		StoreHandler:      handler.NewStoreHandler(stores),
		SellerHandler:     handler.NewSellerHandler(sellers),
		ProductHandler:    handler.NewProductHandler(products),
		StorefrontHandler: handler.NewStorefrontHandler(storefront),
		AuthMiddleware:    middleware.NewAuthMiddleware(tokens, logger),
	})
}

type apiCall struct {
	method string
	path   string
	token  string
	body   any
}

func do(t *testing.T, e *echo.Echo, call apiCall) (*httptest.ResponseRecorder, response.Response) {
	t.Helper()

	var reader io.Reader
	if call.body != nil {
		raw, err := json.Marshal(call.body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(call.method, call.path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if call.token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+call.token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var body response.Response
	if rec.Header().Get(echo.HeaderContentType) != "image/png" {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	}

	return rec, body
}

func dataMap(t *testing.T, body response.Response) map[string]any {
	t.Helper()
	data, ok := body.Data.(map[string]any)
	require.True(t, ok, "data is %T", body.Data)

	return data
}

func sellerBody(email string) map[string]string {
	return map[string]string{
		"name":       "Ana",
		"lastname":   "Souza",
		"cpf":        "12345678900",
		"email":      email,
		"postalCode": "01001-000",
		"number":     "42",
		"password":   "Secret1!",
	}
}

func storeBody(email, name, cnpj string) map[string]string {
	return map[string]string{
		"email":         email,
		"name":          name,
		"cnpj":          cnpj,
		"ie":            "IE-1",
		"corporateName": name + " Ltda",
		"category":      "books",
	}
}

// provision signs a seller up, creates their store and returns the store token.
func provision(t *testing.T, e *echo.Echo, email, store, cnpj string) string {
	t.Helper()

	rec, _ := do(t, e, apiCall{method: http.MethodPost, path: "/stores/newSeller", body: sellerBody(email)})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, body := do(t, e, apiCall{method: http.MethodPost, path: "/stores/newStore", body: storeBody(email, store, cnpj)})
	require.Equal(t, http.StatusCreated, rec.Code)

	return dataMap(t, body)["token"].(string)
}

func TestServer_Health(t *testing.T) {
	e := newTestServer(t)

	rec, body := do(t, e, apiCall{method: http.MethodGet, path: "/health"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, body.Success)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestServer_SignupProvisionLogin(t *testing.T) {
	e := newTestServer(t)

	rec, body := do(t, e, apiCall{method: http.MethodPost, path: "/stores/newSeller", body: sellerBody("ana@example.com")})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, map[string]any{"email": "ana@example.com"}, body.Data)

	rec, body = do(t, e, apiCall{method: http.MethodPost, path: "/stores/newSeller", body: sellerBody("ana@example.com")})
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "SELLER_ALREADY_EXISTS", body.Error.Code)

	rec, body = do(t, e, apiCall{method: http.MethodPost, path: "/login", body: map[string]string{"email": "ana@example.com", "password": "Secret1!"}})
	assert.Equal(t, http.StatusForbidden, rec.Code, "login before a store exists")
	assert.Equal(t, "STORE_NOT_PROVISIONED", body.Error.Code)

	rec, body = do(t, e, apiCall{method: http.MethodPost, path: "/stores/newStore", body: storeBody("ana@example.com", "Livraria", "11.222.333/0001-44")})
	require.Equal(t, http.StatusCreated, rec.Code)
	created := dataMap(t, body)
	assert.Equal(t, "Livraria", created["storeName"])
	assert.Equal(t, "ana@example.com", created["email"])
	assert.NotEmpty(t, created["token"])

	rec, body = do(t, e, apiCall{method: http.MethodPost, path: "/stores/newStore", body: storeBody("ana@example.com", "Livraria", "11.222.333/0001-44")})
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "STORE_ALREADY_EXISTS", body.Error.Code)

	rec, body = do(t, e, apiCall{method: http.MethodPost, path: "/login", body: map[string]string{"email": "ana@example.com", "password": "wrong"}})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "INVALID_CREDENTIALS", body.Error.Code)

	rec, body = do(t, e, apiCall{method: http.MethodPost, path: "/login", body: map[string]string{"email": "nobody@example.com", "password": "Secret1!"}})
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "INVALID_CREDENTIALS_FORBIDDEN", body.Error.Code)

	rec, body = do(t, e, apiCall{method: http.MethodPost, path: "/login", body: map[string]string{"email": "ana@example.com", "password": "Secret1!"}})
	require.Equal(t, http.StatusOK, rec.Code)
	session := dataMap(t, body)
	assert.Equal(t, "Livraria", session["storeName"])

	rec, body = do(t, e, apiCall{method: http.MethodGet, path: "/Livraria/seller", token: session["token"].(string)})
	require.Equal(t, http.StatusOK, rec.Code)
	profile := dataMap(t, body)
	assert.Equal(t, "ana@example.com", profile["email"])
	assert.NotContains(t, profile, "storeId")
	assert.NotContains(t, profile, "createdAt")
	assert.NotContains(t, rec.Body.String(), "Secret1!")
	assert.NotContains(t, rec.Body.String(), "$2a$")
}

func TestServer_ValidationFailure(t *testing.T) {
	e := newTestServer(t)
	input := sellerBody("not-an-email")
	delete(input, "cpf")

	rec, body := do(t, e, apiCall{method: http.MethodPost, path: "/stores/newSeller", body: input})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
	assert.Contains(t, body.Error.Details, "cpf is required")
	assert.Contains(t, body.Error.Details, "email must be a valid email")
}

func TestServer_PasswordOverBcryptLimit(t *testing.T) {
	e := newTestServer(t)
	provision(t, e, "ana@example.com", "Livraria", "11.222.333/0001-44")

	for _, path := range []string{"/stores/newSeller", "/Livraria/newBuyer"} {
		input := sellerBody("long@example.com")
		input["password"] = strings.Repeat("p", 73)

		rec, body := do(t, e, apiCall{method: http.MethodPost, path: path, body: input})

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code, path)
		assert.Equal(t, "VALIDATION_FAILED", body.Error.Code, path)
		assert.Contains(t, body.Error.Details, "password must be at most 72 characters", path)
	}
}

func TestServer_CreateStoreForUnknownOwner(t *testing.T) {
	e := newTestServer(t)

	rec, body := do(t, e, apiCall{method: http.MethodPost, path: "/stores/newStore", body: storeBody("ghost@example.com", "Livraria", "11.222.333/0001-44")})

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "SELLER_NOT_FOUND", body.Error.Code)
}

func TestServer_AccessGuard(t *testing.T) {
	e := newTestServer(t)
	token := provision(t, e, "ana@example.com", "Livraria", "11.222.333/0001-44")
	provision(t, e, "bia@example.com", "Mercado", "55.666.777/0001-88")

	tests := []struct {
		name       string
		path       string
		token      string
		wantStatus int
		wantCode   string
	}{
		{"no token", "/Livraria/seller", "", http.StatusUnauthorized, "TOKEN_INVALID"},
		{"garbage token", "/Livraria/seller", "garbage", http.StatusUnauthorized, "TOKEN_INVALID"},
		{"other store", "/Mercado/seller", token, http.StatusForbidden, "STORE_SCOPE_MISMATCH"},
		{"other store products", "/Mercado/products", token, http.StatusForbidden, "STORE_SCOPE_MISMATCH"},
		{"own store", "/Livraria/store", token, http.StatusOK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, body := do(t, e, apiCall{method: http.MethodGet, path: tt.path, token: tt.token})

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				require.NotNil(t, body.Error)
				assert.Equal(t, tt.wantCode, body.Error.Code)
			}
		})
	}
}

func TestServer_SellerAndStoreUpdates(t *testing.T) {
	e := newTestServer(t)
	token := provision(t, e, "ana@example.com", "Livraria", "11.222.333/0001-44")

	rec, body := do(t, e, apiCall{method: http.MethodPatch, path: "/Livraria/seller", token: token, body: map[string]string{
		"name": "Ana Maria", "lastname": "Lima", "postalCode": "20000-000", "number": "7",
	}})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Ana Maria", dataMap(t, body)["name"])

	rec, body = do(t, e, apiCall{method: http.MethodPatch, path: "/Livraria/store", token: token, body: map[string]string{
		"cnpj": "99.888.777/0001-66", "ie": "IE-2", "corporateName": "Livraria Ana", "category": "books", "logoImage": "https://cdn.example.com/logo.png",
	}})
	require.Equal(t, http.StatusOK, rec.Code)
	store := dataMap(t, body)
	assert.Equal(t, "99.888.777/0001-66", store["cnpj"])
	assert.Equal(t, "0", store["balanceAvailable"])

	rec, body = do(t, e, apiCall{method: http.MethodGet, path: "/Livraria/logo"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "https://cdn.example.com/logo.png", dataMap(t, body)["logoImage"])
}

func TestServer_CatalogAndStorefront(t *testing.T) {
	e := newTestServer(t)
	token := provision(t, e, "ana@example.com", "Livraria", "11.222.333/0001-44")

	product := map[string]any{
		"name": "Dom Casmurro", "image": "https://cdn.example.com/book.png", "category": "books",
		"description": "Classic novel", "amount": 3, "value": "39.90",
	}
	rec, body := do(t, e, apiCall{method: http.MethodPost, path: "/Livraria/products", token: token, body: product})
	require.Equal(t, http.StatusCreated, rec.Code)
	created := dataMap(t, body)
	productID := created["id"].(string)
	assert.Equal(t, "39.9", created["value"])

	product["value"] = "-1"
	rec, body = do(t, e, apiCall{method: http.MethodPost, path: "/Livraria/products", token: token, body: product})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)

	rec, body = do(t, e, apiCall{method: http.MethodGet, path: "/Livraria/products/count", token: token})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.InDelta(t, 1, dataMap(t, body)["count"], 0)

	product["value"] = 42.5
	product["amount"] = 0
	rec, body = do(t, e, apiCall{method: http.MethodPatch, path: "/Livraria/products/" + productID, token: token, body: product})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, false, dataMap(t, body)["active"])

	rec, body = do(t, e, apiCall{method: http.MethodGet, path: "/Livraria/products/count", token: token})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.InDelta(t, 0, dataMap(t, body)["count"], 0)

	// Public storefront
	rec, body = do(t, e, apiCall{method: http.MethodGet, path: "/Livraria"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, body.Data, 1)

	rec, body = do(t, e, apiCall{method: http.MethodGet, path: "/Livraria/" + productID})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "42.5", dataMap(t, body)["value"])

	rec, _ = do(t, e, apiCall{method: http.MethodGet, path: "/Livraria/qrcode"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, []byte("\x89PNG"), rec.Body.Bytes()[:4])

	rec, body = do(t, e, apiCall{method: http.MethodGet, path: "/Livraria/not-a-uuid"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "PRODUCT_NOT_FOUND", body.Error.Code)

	rec, _ = do(t, e, apiCall{method: http.MethodDelete, path: "/Livraria/products/" + productID, token: token})
	require.Equal(t, http.StatusOK, rec.Code)

	rec, body = do(t, e, apiCall{method: http.MethodGet, path: "/Livraria/products/" + productID, token: token})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "PRODUCT_NOT_FOUND", body.Error.Code)
}

func TestServer_StoresAndBuyers(t *testing.T) {
	e := newTestServer(t)
	provision(t, e, "ana@example.com", "Livraria", "11.222.333/0001-44")
	provision(t, e, "bia@example.com", "Mercado", "55.666.777/0001-88")

	rec, body := do(t, e, apiCall{method: http.MethodPost, path: "/Livraria/newBuyer", body: sellerBody("caio@example.com")})
	require.Equal(t, http.StatusCreated, rec.Code)
	buyer := dataMap(t, body)
	assert.Equal(t, "caio@example.com", buyer["email"])
	assert.NotContains(t, rec.Body.String(), "password")

	rec, body = do(t, e, apiCall{method: http.MethodPost, path: "/Livraria/newBuyer", body: sellerBody("caio@example.com")})
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "BUYER_ALREADY_EXISTS", body.Error.Code)

	rec, body = do(t, e, apiCall{method: http.MethodPost, path: "/Nowhere/newBuyer", body: sellerBody("dora@example.com")})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "STORE_NOT_FOUND", body.Error.Code)

	rec, body = do(t, e, apiCall{method: http.MethodGet, path: "/stores"})
	require.Equal(t, http.StatusOK, rec.Code)
	stores, ok := body.Data.([]any)
	require.True(t, ok)
	require.Len(t, stores, 2)
	first := stores[0].(map[string]any)
	assert.Equal(t, "Livraria", first["name"])
	assert.Equal(t, []any{buyer["id"]}, first["clients"])

	rec, body = do(t, e, apiCall{method: http.MethodGet, path: "/Nowhere"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "STORE_NOT_FOUND", body.Error.Code)
}
