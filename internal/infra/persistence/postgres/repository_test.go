package postgres

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/testdb"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newSeller(email string) *entity.Seller {
	return &entity.Seller{
		Name:         "Ana",
		LastName:     "Souza",
		TaxID:        "12345678900",
		Email:        email,
		PostalCode:   "01001-000",
		Number:       "42",
		PasswordHash: "$2a$12$hash",
	}
}

func seedSellerWithStore(t *testing.T, db *gorm.DB, email, storeName, registration string) (*entity.Seller, *entity.Store) {
	t.Helper()
	ctx := context.Background()

	seller := newSeller(email)
	require.NoError(t, NewSellerRepository(db).Create(ctx, seller))

	store := entity.NewStore(seller, storeName, registration, "IE-1", "Ana Corp", "books")
	require.NoError(t, NewStoreRepository(db).Create(ctx, store))

	require.NoError(t, NewSellerRepository(db).AssignStore(ctx, seller.ID, store.ID))
	seller.AssignStore(store)

	return seller, store
}

func TestSellerRepository_CreateAndFind(t *testing.T) {
	db := testdb.New(t)
	repo := NewSellerRepository(db)
	ctx := context.Background()

	seller := newSeller("ana@example.com")
	require.NoError(t, repo.Create(ctx, seller))
	assert.NotEqual(t, uuid.Nil, seller.ID)
	assert.False(t, seller.CreatedAt.IsZero())

	found, err := repo.FindByEmail(ctx, "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, seller.ID, found.ID)
	assert.Equal(t, "Souza", found.LastName)
	assert.False(t, found.HasStore())

	_, err = repo.FindByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, repository.ErrSellerNotFound)
}

func TestSellerRepository_CreateDuplicateEmail(t *testing.T) {
	db := testdb.New(t)
	repo := NewSellerRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newSeller("dup@example.com")))

	err := repo.Create(ctx, newSeller("dup@example.com"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrSellerAlreadyExists))
}

func TestSellerRepository_FindByEmailWithStore(t *testing.T) {
	db := testdb.New(t)
	seller, store := seedSellerWithStore(t, db, "owner@example.com", "Livraria", "11.222.333/0001-44")

	found, err := NewSellerRepository(db).FindByEmailWithStore(context.Background(), seller.Email)
	require.NoError(t, err)
	require.NotNil(t, found.StoreID)
	assert.Equal(t, store.ID, *found.StoreID)
	require.NotNil(t, found.Store)
	assert.Equal(t, "Livraria", found.Store.Name)
	assert.True(t, found.Store.BalanceAvailable.Equal(decimal.Zero))
}

func TestSellerRepository_AssignStoreOnlyOnce(t *testing.T) {
	db := testdb.New(t)
	ctx := context.Background()
	seller, first := seedSellerWithStore(t, db, "owner@example.com", "First", "1")

	second := entity.NewStore(seller, "Second", "2", "IE-2", "Ana Corp", "books")
	require.NoError(t, NewStoreRepository(db).Create(ctx, second))

	err := NewSellerRepository(db).AssignStore(ctx, seller.ID, second.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrSellerAlreadyHasStore))

	found, err := NewSellerRepository(db).FindByEmail(ctx, seller.Email)
	require.NoError(t, err)
	require.NotNil(t, found.StoreID)
	assert.Equal(t, first.ID, *found.StoreID)

	err = NewSellerRepository(db).AssignStore(ctx, uuid.New(), second.ID)
	assert.ErrorIs(t, err, repository.ErrSellerNotFound)
}

func TestSellerRepository_UpdateKeepsStoreLink(t *testing.T) {
	db := testdb.New(t)
	ctx := context.Background()
	seller, store := seedSellerWithStore(t, db, "owner@example.com", "Livraria", "1")

	stale := *seller
	stale.StoreID, stale.Store = nil, nil
	stale.Name = "Ana Maria"
	require.NoError(t, NewSellerRepository(db).Update(ctx, &stale))

	found, err := NewSellerRepository(db).FindByEmail(ctx, seller.Email)
	require.NoError(t, err)
	assert.Equal(t, "Ana Maria", found.Name)
	require.NotNil(t, found.StoreID)
	assert.Equal(t, store.ID, *found.StoreID)
}

func TestSellerRepository_UpdateMissing(t *testing.T) {
	db := testdb.New(t)
	seller := newSeller("ghost@example.com")
	seller.ID = uuid.New()

	err := NewSellerRepository(db).Update(context.Background(), seller)
	assert.ErrorIs(t, err, repository.ErrSellerNotFound)
}

func TestStoreRepository_UniquePair(t *testing.T) {
	db := testdb.New(t)
	ctx := context.Background()
	seller, _ := seedSellerWithStore(t, db, "a@example.com", "Livraria", "11")
	repo := NewStoreRepository(db)

	err := repo.Create(ctx, entity.NewStore(seller, "Livraria", "11", "IE", "Corp", "books"))
	assert.True(t, errors.Is(err, domainerrors.ErrStoreAlreadyExists))

	// Same name with a different registration number is a distinct store.
	other := newSeller("b@example.com")
	require.NoError(t, NewSellerRepository(db).Create(ctx, other))
	require.NoError(t, repo.Create(ctx, entity.NewStore(other, "Livraria", "22", "IE", "Corp", "books")))

	found, err := repo.FindByNameAndRegistration(ctx, "Livraria", "22")
	require.NoError(t, err)
	assert.Equal(t, other.ID, found.OwnerID)

	_, err = repo.FindByNameAndRegistration(ctx, "Livraria", "33")
	assert.ErrorIs(t, err, repository.ErrStoreNotFound)
}

func TestStoreRepository_FindByNameReturnsOldest(t *testing.T) {
	db := testdb.New(t)
	ctx := context.Background()
	_, first := seedSellerWithStore(t, db, "a@example.com", "Livraria", "11")
	seedSellerWithStore(t, db, "b@example.com", "Livraria", "22")

	found, err := NewStoreRepository(db).FindByName(ctx, "Livraria")
	require.NoError(t, err)
	assert.Equal(t, first.ID, found.ID)

	_, err = NewStoreRepository(db).FindByName(ctx, "Missing")
	assert.ErrorIs(t, err, repository.ErrStoreNotFound)
}

func TestStoreRepository_FindOwnedByName(t *testing.T) {
	db := testdb.New(t)
	ctx := context.Background()
	seedSellerWithStore(t, db, "a@example.com", "Livraria", "11")
	second, secondStore := seedSellerWithStore(t, db, "b@example.com", "Livraria", "22")
	repo := NewStoreRepository(db)

	found, err := repo.FindOwnedByName(ctx, "Livraria", second.Email)
	require.NoError(t, err)
	assert.Equal(t, secondStore.ID, found.ID)
	require.NotNil(t, found.Owner)
	assert.Equal(t, second.Email, found.Owner.Email)

	_, err = repo.FindOwnedByName(ctx, "Livraria", "stranger@example.com")
	assert.ErrorIs(t, err, repository.ErrStoreNotFound)
}

func TestStoreRepository_ListPopulatesRelations(t *testing.T) {
	db := testdb.New(t)
	ctx := context.Background()
	_, store := seedSellerWithStore(t, db, "a@example.com", "Livraria", "11")
	seedSellerWithStore(t, db, "b@example.com", "Mercado", "22")

	require.NoError(t, NewProductRepository(db).Create(ctx, &entity.Product{
		StoreID: store.ID, Name: "Book", Category: "books", Amount: 3, Value: decimal.RequireFromString("19.90"),
	}))

	buyer := &entity.Buyer{Name: "Bia", LastName: "Lima", TaxID: "1", Email: "bia@example.com", PostalCode: "1", Number: "1", PasswordHash: "h"}
	require.NoError(t, NewBuyerRepository(db).Create(ctx, buyer))
	require.NoError(t, NewStoreRepository(db).AddClient(ctx, store.ID, buyer.ID))
	// Adding the same client twice is a no-op.
	require.NoError(t, NewStoreRepository(db).AddClient(ctx, store.ID, buyer.ID))

	stores, err := NewStoreRepository(db).List(ctx)
	require.NoError(t, err)
	require.Len(t, stores, 2)

	assert.Equal(t, "Livraria", stores[0].Name)
	require.Len(t, stores[0].Products, 1)
	assert.Equal(t, "19.9", stores[0].Products[0].Value.String())
	assert.Equal(t, []uuid.UUID{buyer.ID}, stores[0].ClientIDs)

	assert.Equal(t, "Mercado", stores[1].Name)
	assert.Empty(t, stores[1].Products)
	assert.Empty(t, stores[1].ClientIDs)
}

func TestStoreRepository_Update(t *testing.T) {
	db := testdb.New(t)
	ctx := context.Background()
	_, store := seedSellerWithStore(t, db, "a@example.com", "Livraria", "11")
	repo := NewStoreRepository(db)

	store.CorporateName = "Ana Livros Ltda"
	store.LogoImage = "https://cdn.example.com/logo.png"
	require.NoError(t, repo.Update(ctx, store))

	found, err := repo.FindByName(ctx, "Livraria")
	require.NoError(t, err)
	assert.Equal(t, "Ana Livros Ltda", found.CorporateName)
	assert.Equal(t, "https://cdn.example.com/logo.png", found.LogoImage)

	missing := *store
	missing.ID = uuid.New()
	assert.ErrorIs(t, repo.Update(ctx, &missing), repository.ErrStoreNotFound)
}

func TestBuyerRepository(t *testing.T) {
	db := testdb.New(t)
	repo := NewBuyerRepository(db)
	ctx := context.Background()

	buyer := &entity.Buyer{Name: "Bia", Email: "bia@example.com", PasswordHash: "h"}
	require.NoError(t, repo.Create(ctx, buyer))
	assert.NotEqual(t, uuid.Nil, buyer.ID)

	found, err := repo.FindByEmail(ctx, "bia@example.com")
	require.NoError(t, err)
	assert.Equal(t, buyer.ID, found.ID)

	_, err = repo.FindByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, repository.ErrBuyerNotFound)

	err = repo.Create(ctx, &entity.Buyer{Name: "Bia", Email: "bia@example.com", PasswordHash: "h"})
	assert.True(t, errors.Is(err, domainerrors.ErrBuyerAlreadyExists))
}

func TestProductRepository_Lifecycle(t *testing.T) {
	db := testdb.New(t)
	ctx := context.Background()
	_, store := seedSellerWithStore(t, db, "a@example.com", "Livraria", "11")
	_, otherStore := seedSellerWithStore(t, db, "b@example.com", "Mercado", "22")
	repo := NewProductRepository(db)

	inStock := &entity.Product{StoreID: store.ID, Name: "Book", Category: "books", Amount: 2, Value: decimal.RequireFromString("10.50")}
	soldOut := &entity.Product{StoreID: store.ID, Name: "Pen", Category: "office", Amount: 0, Value: decimal.RequireFromString("1")}
	require.NoError(t, repo.Create(ctx, inStock))
	require.NoError(t, repo.Create(ctx, soldOut))

	products, err := repo.ListByStore(ctx, store.ID)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Book", products[0].Name)

	count, err := repo.CountActiveByStore(ctx, store.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	// Products are never visible through another store.
	_, err = repo.FindByID(ctx, otherStore.ID, inStock.ID)
	assert.ErrorIs(t, err, repository.ErrProductNotFound)

	inStock.Amount = 0
	inStock.Value = decimal.RequireFromString("12")
	require.NoError(t, repo.Update(ctx, inStock))

	found, err := repo.FindByID(ctx, store.ID, inStock.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, found.Amount)
	assert.True(t, found.Value.Equal(decimal.NewFromInt(12)))

	count, err = repo.CountActiveByStore(ctx, store.ID)
	require.NoError(t, err)
	assert.Zero(t, count)

	assert.ErrorIs(t, repo.Delete(ctx, otherStore.ID, soldOut.ID), repository.ErrProductNotFound)
	require.NoError(t, repo.Delete(ctx, store.ID, soldOut.ID))
	assert.ErrorIs(t, repo.Delete(ctx, store.ID, soldOut.ID), repository.ErrProductNotFound)
}
