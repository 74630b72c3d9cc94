package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// storefrontService implements the StorefrontUsecase interface.
type storefrontService struct {
	storeRepo   repository.StoreRepository
	productRepo repository.ProductRepository
	qrService   service.QRCodeService
	logger      *slog.Logger
}

// NewStorefrontService is the constructor for storefrontService.
func NewStorefrontService(
	storeRepo repository.StoreRepository,
	productRepo repository.ProductRepository,
	qrService service.QRCodeService,
	logger *slog.Logger,
) usecase.StorefrontUsecase {
	return &storefrontService{
		storeRepo:   storeRepo,
		productRepo: productRepo,
		qrService:   qrService,
		logger:      logger,
	}
}

func (srv *storefrontService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *storefrontService) ListStoreProducts(ctx context.Context, storeName string) ([]*entity.Product, error) {
	logger := srv.log(ctx)

	store, err := resolvePublicStore(ctx, logger, srv.storeRepo, storeName)
	if err != nil {
		return nil, err
	}

	products, err := srv.productRepo.ListByStore(ctx, store.ID)
	if err != nil {
		return nil, unavailable(ctx, logger, err, "failed to list storefront products")
	}

	return products, nil
}

func (srv *storefrontService) GetStoreProduct(ctx context.Context, storeName string, productID uuid.UUID) (*entity.Product, error) {
	logger := srv.log(ctx)

	store, err := resolvePublicStore(ctx, logger, srv.storeRepo, storeName)
	if err != nil {
		return nil, err
	}

	product, err := srv.productRepo.FindByID(ctx, store.ID, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "product not in store")
		}

		return nil, unavailable(ctx, logger, err, "failed to load storefront product")
	}

	return product, nil
}

func (srv *storefrontService) GetStoreLogo(ctx context.Context, storeName string) (string, error) {
	store, err := resolvePublicStore(ctx, srv.log(ctx), srv.storeRepo, storeName)
	if err != nil {
		return "", err
	}

	return store.LogoImage, nil
}

func (srv *storefrontService) GetStoreQRCode(ctx context.Context, storeName string) ([]byte, error) {
	logger := srv.log(ctx)

	store, err := resolvePublicStore(ctx, logger, srv.storeRepo, storeName)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrService.GenerateStorefrontQR(store.Name)
	if err != nil {
		logger.Error("Failed to render storefront QR code", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrInternalError, "failed to render QR code")
	}

	return png, nil
}
