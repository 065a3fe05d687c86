package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	e := New("ACC_001", "Account not found", http.StatusNotFound)
	assert.Equal(t, "[ACC_001] Account not found", e.Error())
}

func TestAppError_ErrorWithWrapped(t *testing.T) {
	inner := errors.New("connection refused")
	e := Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, inner)
	assert.Contains(t, e.Error(), "SYS_001")
	assert.Contains(t, e.Error(), "connection refused")
}

func TestAppError_Unwrap(t *testing.T) {
	inner := errors.New("boom")
	e := InternalError(fmt.Errorf("begin tx: %w", inner))
	assert.True(t, errors.Is(e, inner))
}

func TestAppError_As(t *testing.T) {
	var appErr *AppError
	err := error(ErrInsufficientBalance())
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, "ACC_002", appErr.Code)
	assert.Equal(t, http.StatusUnprocessableEntity, appErr.HTTPStatus)
}

func TestErrorCatalog(t *testing.T) {
	tests := []struct {
		err    *AppError
		code   string
		status int
	}{
		{ErrAccountNotFound(), "ACC_001", http.StatusNotFound},
		{ErrInsufficientBalance(), "ACC_002", http.StatusUnprocessableEntity},
		{Validation("field required"), "VAL_001", http.StatusBadRequest},
		{InternalError(errors.New("x")), "SYS_001", http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.code, tt.err.Code)
		assert.Equal(t, tt.status, tt.err.HTTPStatus)
	}
}
