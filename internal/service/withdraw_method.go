package service

import (
	"fmt"
	"strings"

	"pix-withdrawal-service/internal/core/domain"
	"pix-withdrawal-service/internal/core/ports"
	"pix-withdrawal-service/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// PixWithdrawMethod validates PIX destination data. Supported key types are
// listed in pixKeyTypes; email keys must be syntactically valid addresses.
type PixWithdrawMethod struct{}

var pixKeyTypes = []string{domain.PixTypeEmail}

// NewPixWithdrawMethod creates the PIX method validator.
func NewPixWithdrawMethod() *PixWithdrawMethod {
	return &PixWithdrawMethod{}
}

// Name returns the canonical method tag.
func (m *PixWithdrawMethod) Name() string {
	return domain.MethodPix
}

// Validate checks the destination data before any state change.
func (m *PixWithdrawMethod) Validate(pix ports.PixData) error {
	if pix.Type == "" || pix.Key == "" {
		return apperror.Validation(`PIX requires "type" and "key" fields`)
	}

	supported := false
	for _, t := range pixKeyTypes {
		if pix.Type == t {
			supported = true
			break
		}
	}
	if !supported {
		return apperror.Validation(fmt.Sprintf(
			"invalid PIX key type. Supported types: %s", strings.Join(pixKeyTypes, ", "),
		))
	}

	if pix.Type == domain.PixTypeEmail {
		if err := validate.Var(pix.Key, "required,email"); err != nil {
			return apperror.Validation("invalid email format for PIX key")
		}
	}
	return nil
}

// MethodRegistry implements ports.WithdrawMethodRegistry as an open set of
// method validators keyed by canonical name. Adding a payment method means
// registering a new variant; the engine stays untouched.
type MethodRegistry struct {
	methods map[string]ports.WithdrawMethod
}

// NewMethodRegistry creates a registry with the given methods.
func NewMethodRegistry(methods ...ports.WithdrawMethod) *MethodRegistry {
	r := &MethodRegistry{methods: make(map[string]ports.WithdrawMethod, len(methods))}
	for _, m := range methods {
		r.methods[m.Name()] = m
	}
	return r
}

// Resolve returns the method for the given tag, or a validation error.
func (r *MethodRegistry) Resolve(method string) (ports.WithdrawMethod, error) {
	m, ok := r.methods[method]
	if !ok {
		return nil, apperror.Validation("unsupported withdraw method")
	}
	return m, nil
}
