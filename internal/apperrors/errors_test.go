package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppErrorUnwrap(t *testing.T) {
	err := NewNotFoundError("currency abc not found")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "currency abc not found")

	wrapped := fmt.Errorf("service: %w", NewValidationError("rate must be positive"))
	assert.ErrorIs(t, wrapped, ErrValidation)
	assert.NotErrorIs(t, wrapped, ErrNotFound)
}

func TestStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, http.StatusOK},
		{"validation", fmt.Errorf("%w: bad", ErrValidation), http.StatusBadRequest},
		{"not found", NewNotFoundError("gone"), http.StatusNotFound},
		{"duplicate", NewDuplicateError("exists"), http.StatusConflict},
		{"conflict", NewConflictError("in use"), http.StatusConflict},
		{"unauthorized", fmt.Errorf("login: %w", ErrUnauthorized), http.StatusUnauthorized},
		{"app error code", NewAppError(http.StatusBadRequest, "invalid nextToken", errors.New("bad base64")), http.StatusBadRequest},
		{"other", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusCode(tt.err))
		})
	}
}
