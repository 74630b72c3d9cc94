package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var errDatabaseDown = errors.New("connection refused")

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// expectTransaction makes txManager run the callback against factory and return its result.
func expectTransaction(txManager *mockRepo.MockTransactionManager, factory repository.RepositoryFactory) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func testSeller(email string) *entity.Seller {
	return &entity.Seller{
		ID:           uuid.New(),
		Name:         "Ana",
		LastName:     "Souza",
		TaxID:        "12345678900",
		Email:        email,
		PostalCode:   "01001-000",
		Number:       "42",
		PasswordHash: "$2a$12$stored",
	}
}

func testStore(owner *entity.Seller, name string) *entity.Store {
	store := entity.NewStore(owner, name, "11.222.333/0001-44", "IE-1", "Ana Corp", "books")
	store.ID = uuid.New()
	owner.AssignStore(store)

	return store
}

func scopeFor(store *entity.Store) entity.StoreScope {
	return entity.StoreScope{StoreName: store.Name, Email: store.Owner.Email}
}

// assertAppError checks that err surfaces the given business error.
func assertAppError(t *testing.T, err error, target error) {
	t.Helper()
	assert.Error(t, err)
	assert.True(t, errors.Is(err, target), "expected %v, got %v", target, err)
}
