package impl

import (
	"context"
	"log/slog"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"

	"github.com/pkg/errors"
)

// resolveScopedStore checks the token scope against the requested store
// before any read, then loads that store restricted to the token's owner.
func resolveScopedStore(
	ctx context.Context,
	logger *slog.Logger,
	storeRepo repository.StoreRepository,
	scope entity.StoreScope,
	storeName string,
) (*entity.Store, error) {
	if !scope.Allows(storeName) {
		logger.WarnContext(ctx, "Store scope mismatch",
			slog.String("token_store", scope.StoreName),
			slog.String("requested_store", storeName),
		)

		return nil, errors.Wrapf(domainerrors.ErrStoreScopeMismatch, "token scoped to %q", scope.StoreName)
	}

	store, err := storeRepo.FindOwnedByName(ctx, storeName, scope.Email)
	if err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, errors.Wrap(domainerrors.ErrStoreNotFound, "store not owned by token subject")
		}

		return nil, unavailable(ctx, logger, err, "failed to load scoped store")
	}

	return store, nil
}

// resolvePublicStore loads a store by its public name for unauthenticated reads.
func resolvePublicStore(
	ctx context.Context,
	logger *slog.Logger,
	storeRepo repository.StoreRepository,
	storeName string,
) (*entity.Store, error) {
	store, err := storeRepo.FindByName(ctx, storeName)
	if err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, errors.Wrapf(domainerrors.ErrStoreNotFound, "store %q", storeName)
		}

		return nil, unavailable(ctx, logger, err, "failed to load store")
	}

	return store, nil
}
