package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "storefront/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, fn func(echo.Context) error) (*httptest.ResponseRecorder, Response) {
	t.Helper()
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	require.NoError(t, fn(c))

	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return rec, body
}

func TestSuccess(t *testing.T) {
	rec, body := render(t, func(c echo.Context) error {
		return Success(c, http.StatusCreated, map[string]string{"email": "ana@example.com"}, "")
	})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, body.Success)
	assert.Equal(t, "Success", body.Message)
	assert.Equal(t, map[string]any{"email": "ana@example.com"}, body.Data)
	assert.Nil(t, body.Error)
}

func TestError_DetailsOnlyForClientErrors(t *testing.T) {
	tests := []struct {
		status      int
		wantDetails string
	}{
		{http.StatusUnprocessableEntity, "email is required"},
		{http.StatusConflict, "email is required"},
		{http.StatusUnauthorized, ""},
		{http.StatusForbidden, ""},
		{http.StatusServiceUnavailable, ""},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			rec, body := render(t, func(c echo.Context) error {
				return Error(c, tt.status, "SOME_CODE", "", "email is required")
			})

			assert.Equal(t, tt.status, rec.Code)
			assert.False(t, body.Success)
			assert.Equal(t, http.StatusText(tt.status), body.Message)
			require.NotNil(t, body.Error)
			assert.Equal(t, "SOME_CODE", body.Error.Code)
			assert.Equal(t, tt.wantDetails, body.Error.Details)
		})
	}
}

func TestFail(t *testing.T) {
	rec, body := render(t, func(c echo.Context) error {
		return Fail(c, domainerrors.ErrValidationFailed.WithDetails("email is required"))
	})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), body.Error.Code)
	assert.Equal(t, "email is required", body.Error.Details)
}
