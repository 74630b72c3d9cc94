package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// productService implements the ProductUsecase interface.
type productService struct {
	storeRepo   repository.StoreRepository
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(
	storeRepo repository.StoreRepository,
	productRepo repository.ProductRepository,
	logger *slog.Logger,
) usecase.ProductUsecase {
	return &productService{
		storeRepo:   storeRepo,
		productRepo: productRepo,
		logger:      logger,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *productService) ListProducts(ctx context.Context, scope entity.StoreScope, storeName string) ([]*entity.Product, error) {
	logger := srv.log(ctx)

	store, err := resolveScopedStore(ctx, logger, srv.storeRepo, scope, storeName)
	if err != nil {
		return nil, err
	}

	products, err := srv.productRepo.ListByStore(ctx, store.ID)
	if err != nil {
		return nil, unavailable(ctx, logger, err, "failed to list products")
	}

	return products, nil
}

// CountActiveProducts counts the store's products that still have stock.
func (srv *productService) CountActiveProducts(ctx context.Context, scope entity.StoreScope, storeName string) (int64, error) {
	logger := srv.log(ctx)

	store, err := resolveScopedStore(ctx, logger, srv.storeRepo, scope, storeName)
	if err != nil {
		return 0, err
	}

	count, err := srv.productRepo.CountActiveByStore(ctx, store.ID)
	if err != nil {
		return 0, unavailable(ctx, logger, err, "failed to count active products")
	}

	return count, nil
}

func (srv *productService) GetProduct(ctx context.Context, scope entity.StoreScope, storeName string, productID uuid.UUID) (*entity.Product, error) {
	logger := srv.log(ctx)

	store, err := resolveScopedStore(ctx, logger, srv.storeRepo, scope, storeName)
	if err != nil {
		return nil, err
	}

	return srv.findProduct(ctx, logger, store.ID, productID)
}

func (srv *productService) CreateProduct(ctx context.Context, scope entity.StoreScope, storeName string, input *usecase.ProductInput) (*entity.Product, error) {
	logger := srv.log(ctx)

	value, err := parseProductInput(input)
	if err != nil {
		return nil, err
	}

	store, err := resolveScopedStore(ctx, logger, srv.storeRepo, scope, storeName)
	if err != nil {
		return nil, err
	}

	product := &entity.Product{StoreID: store.ID}
	applyProductInput(product, input, value)

	if err := srv.productRepo.Create(ctx, product); err != nil {
		return nil, unavailable(ctx, logger, err, "failed to create product")
	}

	logger.Info("Product created",
		slog.String("store_id", store.ID.String()),
		slog.String("product_id", product.ID.String()),
	)

	return product, nil
}

func (srv *productService) UpdateProduct(ctx context.Context, scope entity.StoreScope, storeName string, productID uuid.UUID, input *usecase.ProductInput) (*entity.Product, error) {
	logger := srv.log(ctx)

	value, err := parseProductInput(input)
	if err != nil {
		return nil, err
	}

	store, err := resolveScopedStore(ctx, logger, srv.storeRepo, scope, storeName)
	if err != nil {
		return nil, err
	}

	product, err := srv.findProduct(ctx, logger, store.ID, productID)
	if err != nil {
		return nil, err
	}
	applyProductInput(product, input, value)

	if err := srv.productRepo.Update(ctx, product); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "product removed during update")
		}

		return nil, unavailable(ctx, logger, err, "failed to update product")
	}

	return product, nil
}

func (srv *productService) DeleteProduct(ctx context.Context, scope entity.StoreScope, storeName string, productID uuid.UUID) error {
	logger := srv.log(ctx)

	store, err := resolveScopedStore(ctx, logger, srv.storeRepo, scope, storeName)
	if err != nil {
		return err
	}

	if err := srv.productRepo.Delete(ctx, store.ID, productID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return errors.Wrap(domainerrors.ErrProductNotFound, "product not in store")
		}

		return unavailable(ctx, logger, err, "failed to delete product")
	}

	logger.Info("Product deleted",
		slog.String("store_id", store.ID.String()),
		slog.String("product_id", productID.String()),
	)

	return nil
}

func (srv *productService) findProduct(ctx context.Context, logger *slog.Logger, storeID, productID uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, storeID, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "product not in store")
		}

		return nil, unavailable(ctx, logger, err, "failed to load product")
	}

	return product, nil
}

// parseProductInput checks the fields the request validator cannot: the
// value must be a non-negative decimal and the stock must not be negative.
func parseProductInput(input *usecase.ProductInput) (decimal.Decimal, error) {
	if input.Amount < 0 {
		return decimal.Zero, domainerrors.ErrValidationFailed.WithDetails("amount must not be negative")
	}

	value, err := decimal.NewFromString(input.Value)
	if err != nil || value.IsNegative() {
		return decimal.Zero, domainerrors.ErrValidationFailed.WithDetails("value must be a non-negative decimal")
	}

	return value, nil
}

func applyProductInput(product *entity.Product, input *usecase.ProductInput, value decimal.Decimal) {
	product.Name = input.Name
	product.Image = input.Image
	product.Category = input.Category
	product.Description = input.Description
	product.Amount = input.Amount
	product.Value = value
}
