package impl

import (
	"context"
	"testing"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/infra/auth"
	"storefront/internal/infra/persistence/postgres"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/testdb"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// failingSellerUpdates makes every transactional owner link fail after the
// rest of the transaction has run.
type failingSellerUpdates struct {
	inner repository.TransactionManager
}

func (tm failingSellerUpdates) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	return tm.inner.Execute(ctx, func(factory repository.RepositoryFactory) error {
		return fn(failingFactory{RepositoryFactory: factory})
	})
}

type failingFactory struct {
	repository.RepositoryFactory
}

func (f failingFactory) SellerRepo() repository.SellerRepository {
	return failingSellerRepo{SellerRepository: f.RepositoryFactory.SellerRepo()}
}

type failingSellerRepo struct {
	repository.SellerRepository
}

func (failingSellerRepo) AssignStore(context.Context, uuid.UUID, uuid.UUID) error {
	return errDatabaseDown
}

// staleSellerRepo serves an owner snapshot read before another request
// provisioned a store for the same seller.
type staleSellerRepo struct {
	repository.SellerRepository
	snapshot *entity.Seller
}

func (r staleSellerRepo) FindByEmail(context.Context, string) (*entity.Seller, error) {
	seller := *r.snapshot

	return &seller, nil
}

type sqliteStack struct {
	sellerRepo repository.SellerRepository
	storeRepo  repository.StoreRepository
	tokens     service.TokenService
	accounts   usecase.AccountUsecase
	stores     usecase.StoreUsecase
	sessions   usecase.SessionUsecase

	// storesWith builds a store service reading owners through sellerRepo.
	storesWith func(sellerRepo repository.SellerRepository) usecase.StoreUsecase
}

func newSQLiteStack(t *testing.T, wrap func(repository.TransactionManager) repository.TransactionManager) sqliteStack {
	db := testdb.New(t)

	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-secret"
	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	publisher := mockSvc.NewMockEventPublisher(t)
	publisher.EXPECT().PublishStoreCreated(mock.Anything, mock.Anything).Return(nil).Maybe()

	txManager := postgres.NewTransactionManager(db)
	if wrap != nil {
		txManager = wrap(txManager)
	}

	stack := sqliteStack{
		sellerRepo: postgres.NewSellerRepository(db),
		storeRepo:  postgres.NewStoreRepository(db),
		tokens:     tokens,
	}
	hasher := auth.NewBcryptHasherWithCost(bcrypt.MinCost)
	logger := newDiscardLogger()
	productRepo := postgres.NewProductRepository(db)

	stack.accounts = NewAccountService(txManager, stack.sellerRepo, postgres.NewBuyerRepository(db), stack.storeRepo, hasher, logger)
	stack.stores = NewStoreService(txManager, stack.sellerRepo, stack.storeRepo, productRepo, tokens, publisher, logger)
	stack.sessions = NewSessionService(stack.sellerRepo, hasher, tokens, logger)
	stack.storesWith = func(sellerRepo repository.SellerRepository) usecase.StoreUsecase {
		return NewStoreService(txManager, sellerRepo, stack.storeRepo, productRepo, tokens, publisher, logger)
	}

	return stack
}

func newSellerInput(email string) *usecase.RegisterSellerInput {
	return &usecase.RegisterSellerInput{
		Name:       "Ana",
		LastName:   "Souza",
		TaxID:      "12345678900",
		Email:      email,
		PostalCode: "01001-000",
		Number:     "42",
		Password:   "Secret1!",
	}
}

func newStoreInput(email, name, registration string) *usecase.CreateStoreInput {
	return &usecase.CreateStoreInput{
		Email:              email,
		Name:               name,
		RegistrationNumber: registration,
		StateRegistration:  "IE-1",
		CorporateName:      name + " Ltda",
		Category:           "books",
	}
}

func TestSQLite_SignupStoreLoginRoundTrip(t *testing.T) {
	stack := newSQLiteStack(t, nil)
	ctx := context.Background()

	registered, err := stack.accounts.RegisterSeller(ctx, newSellerInput("ana@example.com"))
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", registered.Email)

	stored, err := stack.sellerRepo.FindByEmail(ctx, "ana@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, "Secret1!", stored.PasswordHash)
	assert.False(t, stored.HasStore())

	created, err := stack.stores.CreateStore(ctx, newStoreInput("ana@example.com", "Livraria", "11.222.333/0001-44"))
	require.NoError(t, err)
	assert.NotEmpty(t, created.Token)

	session, err := stack.sessions.Login(ctx, &usecase.LoginInput{Email: "ana@example.com", Password: "Secret1!"})
	require.NoError(t, err)
	assert.Equal(t, "Livraria", session.StoreName)

	claims, err := stack.tokens.Validate(session.Token)
	require.NoError(t, err)
	assert.Equal(t, "Livraria", claims.StoreName)
	assert.Equal(t, "ana@example.com", claims.Email)

	owner, err := stack.sellerRepo.FindByEmailWithStore(ctx, "ana@example.com")
	require.NoError(t, err)
	require.NotNil(t, owner.Store)
	assert.Equal(t, "Livraria", owner.Store.Name)
}

func TestSQLite_CreateStore_RollsBackWhenOwnerLinkFails(t *testing.T) {
	stack := newSQLiteStack(t, func(tm repository.TransactionManager) repository.TransactionManager {
		return failingSellerUpdates{inner: tm}
	})
	ctx := context.Background()

	_, err := stack.accounts.RegisterSeller(ctx, newSellerInput("ana@example.com"))
	require.NoError(t, err)

	_, err = stack.stores.CreateStore(ctx, newStoreInput("ana@example.com", "Livraria", "11.222.333/0001-44"))
	assertAppError(t, err, domainerrors.ErrServiceUnavailable)

	_, err = stack.storeRepo.FindByName(ctx, "Livraria")
	assert.ErrorIs(t, err, repository.ErrStoreNotFound)

	owner, err := stack.sellerRepo.FindByEmail(ctx, "ana@example.com")
	require.NoError(t, err)
	assert.Nil(t, owner.StoreID)
}

func TestSQLite_CreateStore_StaleOwnerSnapshotCannotRelink(t *testing.T) {
	stack := newSQLiteStack(t, nil)
	ctx := context.Background()

	_, err := stack.accounts.RegisterSeller(ctx, newSellerInput("ana@example.com"))
	require.NoError(t, err)
	snapshot, err := stack.sellerRepo.FindByEmail(ctx, "ana@example.com")
	require.NoError(t, err)
	require.False(t, snapshot.HasStore())

	_, err = stack.stores.CreateStore(ctx, newStoreInput("ana@example.com", "First", "1"))
	require.NoError(t, err)

	racing := stack.storesWith(staleSellerRepo{SellerRepository: stack.sellerRepo, snapshot: snapshot})
	_, err = racing.CreateStore(ctx, newStoreInput("ana@example.com", "Second", "2"))
	assertAppError(t, err, domainerrors.ErrSellerAlreadyHasStore)

	_, err = stack.storeRepo.FindByName(ctx, "Second")
	assert.ErrorIs(t, err, repository.ErrStoreNotFound, "store insert must roll back")

	owner, err := stack.sellerRepo.FindByEmailWithStore(ctx, "ana@example.com")
	require.NoError(t, err)
	require.NotNil(t, owner.Store)
	assert.Equal(t, "First", owner.Store.Name)
}

func TestSQLite_ListStores_AcrossOwners(t *testing.T) {
	stack := newSQLiteStack(t, nil)
	ctx := context.Background()

	for _, email := range []string{"ana@example.com", "bia@example.com"} {
		_, err := stack.accounts.RegisterSeller(ctx, newSellerInput(email))
		require.NoError(t, err)
	}
	_, err := stack.stores.CreateStore(ctx, newStoreInput("ana@example.com", "Livraria", "11.222.333/0001-44"))
	require.NoError(t, err)
	_, err = stack.stores.CreateStore(ctx, newStoreInput("bia@example.com", "Mercado", "55.666.777/0001-88"))
	require.NoError(t, err)

	stores, err := stack.stores.ListStores(ctx)
	require.NoError(t, err)
	require.Len(t, stores, 2)
	assert.Equal(t, "Livraria", stores[0].Name)
	assert.Equal(t, "Mercado", stores[1].Name)
}

func TestSQLite_RegisterBuyer_RecordsClient(t *testing.T) {
	stack := newSQLiteStack(t, nil)
	ctx := context.Background()

	_, err := stack.accounts.RegisterSeller(ctx, newSellerInput("ana@example.com"))
	require.NoError(t, err)
	_, err = stack.stores.CreateStore(ctx, newStoreInput("ana@example.com", "Livraria", "11.222.333/0001-44"))
	require.NoError(t, err)

	buyer, err := stack.accounts.RegisterBuyer(ctx, "Livraria", &usecase.RegisterBuyerInput{
		Name:     "Caio",
		Email:    "caio@example.com",
		Password: "Secret1!",
	})
	require.NoError(t, err)

	stores, err := stack.stores.ListStores(ctx)
	require.NoError(t, err)
	require.Len(t, stores, 1)
	assert.Contains(t, stores[0].ClientIDs, buyer.ID)

	_, err = stack.accounts.RegisterBuyer(ctx, "Livraria", &usecase.RegisterBuyerInput{Email: "caio@example.com", Password: "x"})
	assertAppError(t, err, domainerrors.ErrBuyerAlreadyExists)
}
