package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/lifecycle"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
)

// storeService implements the StoreUsecase interface.
type storeService struct {
	txManager    repository.TransactionManager
	sellerRepo   repository.SellerRepository
	storeRepo    repository.StoreRepository
	productRepo  repository.ProductRepository
	tokenService service.TokenService
	publisher    service.EventPublisher
	logger       *slog.Logger
}

// NewStoreService is the constructor for storeService.
func NewStoreService(
	txManager repository.TransactionManager,
	sellerRepo repository.SellerRepository,
	storeRepo repository.StoreRepository,
	productRepo repository.ProductRepository,
	tokenService service.TokenService,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.StoreUsecase {
	return &storeService{
		txManager:    txManager,
		sellerRepo:   sellerRepo,
		storeRepo:    storeRepo,
		productRepo:  productRepo,
		tokenService: tokenService,
		publisher:    publisher,
		logger:       logger,
	}
}

func (srv *storeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateStore provisions a store for an existing seller. The store insert and
// the owner's back-reference update commit together or not at all.
func (srv *storeService) CreateStore(ctx context.Context, input *usecase.CreateStoreInput) (*usecase.AuthOutput, error) {
	logger := srv.log(ctx)
	logger.Info("Creating store",
		slog.String("store", input.Name),
		slog.String("owner_email", input.Email),
	)

	// 1. The (name, registration number) pair must be free.
	_, err := srv.storeRepo.FindByNameAndRegistration(ctx, input.Name, input.RegistrationNumber)
	switch {
	case err == nil:
		return nil, errors.Wrap(domainerrors.ErrStoreAlreadyExists, "store pair taken")
	case !errors.Is(err, repository.ErrStoreNotFound):
		return nil, unavailable(ctx, logger, err, "failed to check store uniqueness")
	}

	// 2. Resolve the owner; a missing owner is not an infrastructure failure.
	owner, err := srv.sellerRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrSellerNotFound) {
			return nil, errors.Wrap(domainerrors.ErrSellerNotFound, "store owner not registered")
		}

		return nil, unavailable(ctx, logger, err, "failed to look up store owner")
	}
	if owner.HasStore() {
		return nil, errors.Wrap(domainerrors.ErrSellerAlreadyHasStore, "owner already provisioned")
	}

	// 3. Build the store with an empty catalog and a zero balance.
	store := entity.NewStore(owner, input.Name, input.RegistrationNumber, input.StateRegistration, input.CorporateName, input.Category)

	// 4. Persist store and owner link atomically. The owner check above ran
	// outside the transaction; AssignStore re-checks it as part of the write.
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.StoreRepo().Create(ctx, store); err != nil {
			return err
		}

		return repoFactory.SellerRepo().AssignStore(ctx, owner.ID, store.ID)
	})
	if err != nil {
		if errors.Is(err, repository.ErrSellerNotFound) {
			return nil, errors.Wrap(domainerrors.ErrSellerNotFound, "store owner removed")
		}
		if passthrough(err, domainerrors.ErrStoreAlreadyExists, domainerrors.ErrSellerAlreadyHasStore, domainerrors.ErrSellerNotFound) {
			return nil, err
		}

		return nil, unavailable(ctx, logger, err, "failed to provision store")
	}

	owner.AssignStore(store)

	// 5. Issue a session scoped to the new store.
	token, err := srv.tokenService.Issue(store.Name, owner.Email)
	if err != nil {
		return nil, unavailable(ctx, logger, err, "failed to issue store token")
	}

	// 6. Announce the store; delivery is best-effort.
	srv.publishStoreCreated(ctx, store, owner)

	logger.Info("Store created", slog.String("store_id", store.ID.String()))

	return &usecase.AuthOutput{
		StoreName: store.Name,
		Email:     owner.Email,
		Token:     token,
	}, nil
}

func (srv *storeService) publishStoreCreated(ctx context.Context, store *entity.Store, owner *entity.Seller) {
	publishCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), lifecycle.DefaultTimeout)
	defer cancel()

	event := &service.StoreCreatedEvent{
		RequestID:          deliverycontext.GetRequestIDFromContext(ctx),
		StoreID:            store.ID.String(),
		StoreName:          store.Name,
		RegistrationNumber: store.RegistrationNumber,
		Category:           store.Category,
		OwnerID:            owner.ID.String(),
		OwnerEmail:         owner.Email,
		CreatedAt:          store.CreatedAt,
	}

	if err := srv.publisher.PublishStoreCreated(publishCtx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish store created event",
			slog.String("store_id", event.StoreID),
			slog.Any("error", err),
		)
	}
}

// ListStores returns every store with products and clients populated.
func (srv *storeService) ListStores(ctx context.Context) ([]*entity.Store, error) {
	stores, err := srv.storeRepo.List(ctx)
	if err != nil {
		return nil, unavailable(ctx, srv.log(ctx), err, "failed to list stores")
	}

	return stores, nil
}

// GetStore returns the caller's store together with its catalog.
func (srv *storeService) GetStore(ctx context.Context, scope entity.StoreScope, storeName string) (*entity.Store, error) {
	logger := srv.log(ctx)

	store, err := resolveScopedStore(ctx, logger, srv.storeRepo, scope, storeName)
	if err != nil {
		return nil, err
	}

	products, err := srv.productRepo.ListByStore(ctx, store.ID)
	if err != nil {
		return nil, unavailable(ctx, logger, err, "failed to load store products")
	}
	store.Products = products

	return store, nil
}

// UpdateStore overwrites the editable store fields.
func (srv *storeService) UpdateStore(ctx context.Context, scope entity.StoreScope, storeName string, input *usecase.UpdateStoreInput) (*entity.Store, error) {
	logger := srv.log(ctx)

	store, err := resolveScopedStore(ctx, logger, srv.storeRepo, scope, storeName)
	if err != nil {
		return nil, err
	}

	if input.RegistrationNumber != store.RegistrationNumber {
		existing, err := srv.storeRepo.FindByNameAndRegistration(ctx, store.Name, input.RegistrationNumber)
		switch {
		case err == nil && existing.ID != store.ID:
			return nil, errors.Wrap(domainerrors.ErrStoreAlreadyExists, "store pair taken")
		case err != nil && !errors.Is(err, repository.ErrStoreNotFound):
			return nil, unavailable(ctx, logger, err, "failed to check store uniqueness")
		}
	}

	store.RegistrationNumber = input.RegistrationNumber
	store.StateRegistration = input.StateRegistration
	store.CorporateName = input.CorporateName
	store.Category = input.Category
	store.LogoImage = input.LogoImage

	if err := srv.storeRepo.Update(ctx, store); err != nil {
		if passthrough(err, domainerrors.ErrStoreAlreadyExists) {
			return nil, err
		}
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, errors.Wrap(domainerrors.ErrStoreNotFound, "store removed during update")
		}

		return nil, unavailable(ctx, logger, err, "failed to update store")
	}

	logger.Info("Store updated", slog.String("store_id", store.ID.String()))

	return store, nil
}
