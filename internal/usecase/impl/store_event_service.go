package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
)

// storeEventService implements the StoreEventUsecase interface.
type storeEventService struct {
	storeRepo repository.StoreRepository
	qrService service.QRCodeService
	logger    *slog.Logger
}

// NewStoreEventService is the constructor for storeEventService.
func NewStoreEventService(
	storeRepo repository.StoreRepository,
	qrService service.QRCodeService,
	logger *slog.Logger,
) usecase.StoreEventUsecase {
	return &storeEventService{
		storeRepo: storeRepo,
		qrService: qrService,
		logger:    logger,
	}
}

func (srv *storeEventService) HandleStoreCreated(ctx context.Context, event *service.StoreCreatedEvent) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)

	if event.StoreName == "" || event.RegistrationNumber == "" {
		return domainerrors.ErrValidationFailed.WithDetails("event carries no store identity")
	}

	store, err := srv.storeRepo.FindByNameAndRegistration(ctx, event.StoreName, event.RegistrationNumber)
	if err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return errors.Wrap(domainerrors.ErrStoreNotFound, "announced store is gone")
		}

		return unavailable(ctx, logger, err, "failed to load announced store")
	}
	// The pair is unique, so a different id means the store was replaced.
	if store.ID.String() != event.StoreID {
		return errors.Wrap(domainerrors.ErrStoreNotFound, "announced store was replaced")
	}

	logger.Info("Store onboarded",
		slog.String("store_id", event.StoreID),
		slog.String("store", store.Name),
		slog.String("category", store.Category),
		slog.String("storefront_url", srv.qrService.StorefrontURL(store.Name)),
	)

	return nil
}
