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

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	sellerRepo   repository.SellerRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(
	sellerRepo repository.SellerRepository,
	hasher service.PasswordHasher,
	tokenService service.TokenService,
	logger *slog.Logger,
) usecase.SessionUsecase {
	return &sessionService{
		sellerRepo:   sellerRepo,
		hasher:       hasher,
		tokenService: tokenService,
		logger:       logger,
	}
}

func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login verifies seller credentials and issues a token scoped to the seller's store.
func (srv *sessionService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	logger := srv.log(ctx)

	seller, err := srv.sellerRepo.FindByEmailWithStore(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrSellerNotFound) {
			logger.Info("Login for unknown email rejected")

			return nil, errors.Wrap(domainerrors.ErrUnknownAccount, "no seller for email")
		}

		return nil, unavailable(ctx, logger, err, "failed to look up seller for login")
	}

	ok, err := srv.hasher.Check(input.Password, seller.PasswordHash)
	if err != nil {
		return nil, unavailable(ctx, logger, err, "failed to compare password")
	}
	if !ok {
		logger.Info("Login with wrong password rejected", slog.String("seller_id", seller.ID.String()))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "password mismatch")
	}

	// Only authenticated callers learn whether the store exists.
	if !seller.HasStore() || seller.Store == nil {
		return nil, errors.Wrap(domainerrors.ErrStoreNotProvisioned, "seller has no store")
	}

	token, err := srv.tokenService.Issue(seller.Store.Name, seller.Email)
	if err != nil {
		return nil, unavailable(ctx, logger, err, "failed to issue login token")
	}

	logger.Info("Seller logged in", slog.String("seller_id", seller.ID.String()))

	return &usecase.AuthOutput{
		StoreName: seller.Store.Name,
		Email:     seller.Email,
		Token:     token,
	}, nil
}
