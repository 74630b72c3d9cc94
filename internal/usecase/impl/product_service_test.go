package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type productServiceFixtures struct {
	service     usecase.ProductUsecase
	storeRepo   *mockRepo.MockStoreRepository
	productRepo *mockRepo.MockProductRepository
	store       *entity.Store
	scope       entity.StoreScope
}

func createTestProductService(t *testing.T) productServiceFixtures {
	store := testStore(testSeller("ana@example.com"), "Livraria")
	fx := productServiceFixtures{
		storeRepo:   mockRepo.NewMockStoreRepository(t),
		productRepo: mockRepo.NewMockProductRepository(t),
		store:       store,
		scope:       scopeFor(store),
	}
	fx.service = NewProductService(fx.storeRepo, fx.productRepo, newDiscardLogger())

	return fx
}

func (fx productServiceFixtures) expectStore() {
	fx.storeRepo.EXPECT().FindOwnedByName(mock.Anything, fx.store.Name, fx.scope.Email).Return(fx.store, nil)
}

func productInput() *usecase.ProductInput {
	return &usecase.ProductInput{
		Name:        "Dom Casmurro",
		Image:       "https://cdn.example.com/book.png",
		Category:    "books",
		Description: "Classic novel",
		Amount:      3,
		Value:       "39.90",
	}
}

func TestProductService_ListProducts(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()
	products := []*entity.Product{{ID: uuid.New(), StoreID: fx.store.ID, Name: "Book"}}

	fx.expectStore()
	fx.productRepo.EXPECT().ListByStore(ctx, fx.store.ID).Return(products, nil)

	got, err := fx.service.ListProducts(ctx, fx.scope, "Livraria")

	require.NoError(t, err)
	assert.Equal(t, products, got)
}

func TestProductService_CountActiveProducts(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	fx.expectStore()
	fx.productRepo.EXPECT().CountActiveByStore(ctx, fx.store.ID).Return(int64(4), nil)

	count, err := fx.service.CountActiveProducts(ctx, fx.scope, "Livraria")

	require.NoError(t, err)
	assert.Equal(t, int64(4), count)
}

func TestProductService_GetProduct_NotFound(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()
	productID := uuid.New()

	fx.expectStore()
	fx.productRepo.EXPECT().FindByID(ctx, fx.store.ID, productID).Return(nil, repository.ErrProductNotFound)

	_, err := fx.service.GetProduct(ctx, fx.scope, "Livraria", productID)

	assertAppError(t, err, domainerrors.ErrProductNotFound)
}

func TestProductService_CreateProduct(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()
	input := productInput()

	fx.expectStore()
	fx.productRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Product")).
		Run(func(_ context.Context, product *entity.Product) {
			product.ID = uuid.New()
		}).
		Return(nil)

	product, err := fx.service.CreateProduct(ctx, fx.scope, "Livraria", input)

	require.NoError(t, err)
	assert.Equal(t, fx.store.ID, product.StoreID)
	assert.True(t, product.Value.Equal(decimal.RequireFromString("39.90")))
	assert.True(t, product.IsActive())
}

func TestProductService_CreateProduct_InvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*usecase.ProductInput)
	}{
		{"value not a number", func(in *usecase.ProductInput) { in.Value = "cheap" }},
		{"negative value", func(in *usecase.ProductInput) { in.Value = "-1" }},
		{"negative amount", func(in *usecase.ProductInput) { in.Amount = -2 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestProductService(t)
			input := productInput()
			tt.mutate(input)

			_, err := fx.service.CreateProduct(context.Background(), fx.scope, "Livraria", input)

			assertAppError(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestProductService_UpdateProduct(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()
	existing := &entity.Product{ID: uuid.New(), StoreID: fx.store.ID, Name: "Old", Amount: 1, Value: decimal.NewFromInt(1)}
	input := productInput()
	input.Amount = 0

	fx.expectStore()
	fx.productRepo.EXPECT().FindByID(ctx, fx.store.ID, existing.ID).Return(existing, nil)
	fx.productRepo.EXPECT().Update(ctx, existing).Return(nil)

	product, err := fx.service.UpdateProduct(ctx, fx.scope, "Livraria", existing.ID, input)

	require.NoError(t, err)
	assert.Equal(t, "Dom Casmurro", product.Name)
	assert.False(t, product.IsActive())
}

func TestProductService_DeleteProduct(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()
	productID := uuid.New()

	fx.expectStore()
	fx.productRepo.EXPECT().Delete(ctx, fx.store.ID, productID).Return(nil)

	require.NoError(t, fx.service.DeleteProduct(ctx, fx.scope, "Livraria", productID))
}

func TestProductService_DeleteProduct_NotFound(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()
	productID := uuid.New()

	fx.expectStore()
	fx.productRepo.EXPECT().Delete(ctx, fx.store.ID, productID).Return(repository.ErrProductNotFound)

	err := fx.service.DeleteProduct(ctx, fx.scope, "Livraria", productID)

	assertAppError(t, err, domainerrors.ErrProductNotFound)
}

func TestProductService_ScopeMismatch(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	_, err := fx.service.ListProducts(ctx, fx.scope, "Mercado")
	assertAppError(t, err, domainerrors.ErrStoreScopeMismatch)

	err = fx.service.DeleteProduct(ctx, fx.scope, "Mercado", uuid.New())
	assertAppError(t, err, domainerrors.ErrStoreScopeMismatch)
}
