package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager  repository.TransactionManager
	sellerRepo repository.SellerRepository
	buyerRepo  repository.BuyerRepository
	storeRepo  repository.StoreRepository
	hasher     service.PasswordHasher
	logger     *slog.Logger
	now        func() time.Time
}

// NewAccountService is the constructor for accountService.
func NewAccountService(
	txManager repository.TransactionManager,
	sellerRepo repository.SellerRepository,
	buyerRepo repository.BuyerRepository,
	storeRepo repository.StoreRepository,
	hasher service.PasswordHasher,
	logger *slog.Logger,
) usecase.AccountUsecase {
	return &accountService{
		txManager:  txManager,
		sellerRepo: sellerRepo,
		buyerRepo:  buyerRepo,
		storeRepo:  storeRepo,
		hasher:     hasher,
		logger:     logger,
		now:        time.Now,
	}
}

func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterSeller creates a seller account. Only the email is returned.
func (srv *accountService) RegisterSeller(ctx context.Context, input *usecase.RegisterSellerInput) (*usecase.RegisterSellerOutput, error) {
	logger := srv.log(ctx)
	logger.Info("Registering seller", slog.String("email", input.Email))

	_, err := srv.sellerRepo.FindByEmail(ctx, input.Email)
	switch {
	case err == nil:
		return nil, errors.Wrap(domainerrors.ErrSellerAlreadyExists, "seller email taken")
	case !errors.Is(err, repository.ErrSellerNotFound):
		return nil, unavailable(ctx, logger, err, "failed to look up seller")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, unavailable(ctx, logger, err, "failed to hash seller password")
	}

	seller := &entity.Seller{
		Name:         input.Name,
		LastName:     input.LastName,
		TaxID:        input.TaxID,
		Email:        input.Email,
		PostalCode:   input.PostalCode,
		Number:       input.Number,
		PasswordHash: hash,
		CreatedAt:    srv.now().UTC(),
	}

	if err := srv.sellerRepo.Create(ctx, seller); err != nil {
		// A concurrent signup can still win the unique index.
		if passthrough(err, domainerrors.ErrSellerAlreadyExists) {
			return nil, err
		}

		return nil, unavailable(ctx, logger, err, "failed to create seller")
	}

	logger.Info("Seller registered", slog.String("seller_id", seller.ID.String()))

	return &usecase.RegisterSellerOutput{Email: seller.Email}, nil
}

// RegisterBuyer creates a buyer and links it to the store's clients in one transaction.
func (srv *accountService) RegisterBuyer(ctx context.Context, storeName string, input *usecase.RegisterBuyerInput) (*entity.Buyer, error) {
	logger := srv.log(ctx)
	logger.Info("Registering buyer", slog.String("email", input.Email), slog.String("store", storeName))

	_, err := srv.buyerRepo.FindByEmail(ctx, input.Email)
	switch {
	case err == nil:
		return nil, errors.Wrap(domainerrors.ErrBuyerAlreadyExists, "buyer email taken")
	case !errors.Is(err, repository.ErrBuyerNotFound):
		return nil, unavailable(ctx, logger, err, "failed to look up buyer")
	}

	store, err := resolvePublicStore(ctx, logger, srv.storeRepo, storeName)
	if err != nil {
		return nil, err
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, unavailable(ctx, logger, err, "failed to hash buyer password")
	}

	buyer := &entity.Buyer{
		Name:         input.Name,
		LastName:     input.LastName,
		TaxID:        input.TaxID,
		Email:        input.Email,
		PostalCode:   input.PostalCode,
		Number:       input.Number,
		PasswordHash: hash,
		CreatedAt:    srv.now().UTC(),
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.BuyerRepo().Create(ctx, buyer); err != nil {
			return err
		}

		return repoFactory.StoreRepo().AddClient(ctx, store.ID, buyer.ID)
	})
	if err != nil {
		if passthrough(err, domainerrors.ErrBuyerAlreadyExists) {
			return nil, err
		}
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, errors.Wrap(domainerrors.ErrStoreNotFound, "store disappeared during buyer registration")
		}

		return nil, unavailable(ctx, logger, err, "failed to register buyer")
	}

	logger.Info("Buyer registered", slog.String("buyer_id", buyer.ID.String()), slog.String("store_id", store.ID.String()))

	return buyer, nil
}
