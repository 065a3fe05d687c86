package service

import (
	"testing"

	"pix-withdrawal-service/internal/core/ports"
	"pix-withdrawal-service/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPixWithdrawMethod_Name(t *testing.T) {
	assert.Equal(t, "PIX", NewPixWithdrawMethod().Name())
}

func TestPixWithdrawMethod_Validate(t *testing.T) {
	m := NewPixWithdrawMethod()

	tests := []struct {
		name    string
		pix     ports.PixData
		wantErr string
	}{
		{"valid email key", ports.PixData{Type: "email", Key: "usuario@email.com"}, ""},
		{"missing type", ports.PixData{Key: "usuario@email.com"}, `"type" and "key"`},
		{"missing key", ports.PixData{Type: "email"}, `"type" and "key"`},
		{"unsupported type", ports.PixData{Type: "cpf", Key: "12345678900"}, "invalid PIX key type"},
		{"malformed email", ports.PixData{Type: "email", Key: "not-an-email"}, "invalid email format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := m.Validate(tt.pix)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)

			var appErr *apperror.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, "VAL_001", appErr.Code)
		})
	}
}

func TestMethodRegistry_Resolve(t *testing.T) {
	reg := NewMethodRegistry(NewPixWithdrawMethod())

	m, err := reg.Resolve("PIX")
	require.NoError(t, err)
	assert.Equal(t, "PIX", m.Name())
}

func TestMethodRegistry_Resolve_Unsupported(t *testing.T) {
	reg := NewMethodRegistry(NewPixWithdrawMethod())

	_, err := reg.Resolve("BOLETO")
	require.Error(t, err)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VAL_001", appErr.Code)
	assert.Contains(t, appErr.Message, "unsupported withdraw method")
}
