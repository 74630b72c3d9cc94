package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
)

// sellerService implements the SellerUsecase interface.
type sellerService struct {
	sellerRepo repository.SellerRepository
	storeRepo  repository.StoreRepository
	logger     *slog.Logger
}

// NewSellerService is the constructor for sellerService.
func NewSellerService(
	sellerRepo repository.SellerRepository,
	storeRepo repository.StoreRepository,
	logger *slog.Logger,
) usecase.SellerUsecase {
	return &sellerService{
		sellerRepo: sellerRepo,
		storeRepo:  storeRepo,
		logger:     logger,
	}
}

func (srv *sellerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *sellerService) scopedOwner(ctx context.Context, scope entity.StoreScope, storeName string) (*entity.Seller, error) {
	store, err := resolveScopedStore(ctx, srv.log(ctx), srv.storeRepo, scope, storeName)
	if err != nil {
		return nil, err
	}
	if store.Owner == nil {
		return nil, errors.Wrap(domainerrors.ErrSellerNotFound, "store has no owner")
	}

	owner := store.Owner
	owner.Store = store

	return owner, nil
}

// GetSeller returns the profile of the owner of the caller's store.
func (srv *sellerService) GetSeller(ctx context.Context, scope entity.StoreScope, storeName string) (*entity.Seller, error) {
	return srv.scopedOwner(ctx, scope, storeName)
}

// UpdateSeller overwrites the owner's name, last name and address fields.
func (srv *sellerService) UpdateSeller(ctx context.Context, scope entity.StoreScope, storeName string, input *usecase.UpdateSellerInput) (*entity.Seller, error) {
	logger := srv.log(ctx)

	owner, err := srv.scopedOwner(ctx, scope, storeName)
	if err != nil {
		return nil, err
	}

	owner.Name = input.Name
	owner.LastName = input.LastName
	owner.PostalCode = input.PostalCode
	owner.Number = input.Number

	if err := srv.sellerRepo.Update(ctx, owner); err != nil {
		return nil, unavailable(ctx, logger, err, "failed to update seller")
	}

	logger.Info("Seller updated", slog.String("seller_id", owner.ID.String()))

	return owner, nil
}
