package errors

import (
	"net/http"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestBaseError_IsSurvivesWrappingAndDetails(t *testing.T) {
	wrapped := ErrStoreAlreadyExists.WrapMessage("store name taken")
	assert.True(t, pkgerrors.Is(wrapped, ErrStoreAlreadyExists))

	detailed := ErrStoreAlreadyExists.WithDetails("name=acme")
	assert.True(t, pkgerrors.Is(detailed, ErrStoreAlreadyExists))
	assert.Equal(t, "name=acme", detailed.Details())
	assert.Empty(t, ErrStoreAlreadyExists.Details())

	assert.False(t, pkgerrors.Is(wrapped, ErrSellerAlreadyExists))
}

func TestBaseError_AsAppError(t *testing.T) {
	err := pkgerrors.Wrap(ErrStoreScopeMismatch, "seller lookup")

	var appErr AppError
	assert.True(t, pkgerrors.As(err, &appErr))
	assert.Equal(t, http.StatusForbidden, appErr.HTTPCode())
	assert.Equal(t, "STORE_SCOPE_MISMATCH", appErr.ErrorCode())
}

func TestDatabaseExecuteError_HidesDriverError(t *testing.T) {
	driverErr := pkgerrors.New("pq: connection refused")
	err := NewDatabaseExecuteError(driverErr, "failed to create seller")

	assert.True(t, pkgerrors.Is(err, ErrServiceUnavailable))
	assert.True(t, pkgerrors.Is(err, driverErr))
	assert.Equal(t, http.StatusServiceUnavailable, err.HTTPCode())
	assert.Equal(t, ErrServiceUnavailable.Message(), err.Message())
	assert.NotContains(t, err.Message(), "connection refused")
}
