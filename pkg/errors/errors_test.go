package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCodes(t *testing.T) {
	cases := []struct {
		err    *AppError
		status int
	}{
		{Validation("email and password required"), http.StatusBadRequest},
		{Authentication("invalid credentials"), http.StatusUnauthorized},
		{Authorization("invalid token"), http.StatusForbidden},
		{Conflict("email already registered"), http.StatusConflict},
		{NotFound("activity"), http.StatusNotFound},
		{Internal(fmt.Errorf("connection refused")), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.status, tc.err.StatusCode(), tc.err.Message)
		assert.Equal(t, tc.status, Status(tc.err))
	}
}

func TestStatusDefaultsToInternal(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, Status(fmt.Errorf("plain error")))
}

func TestInternalSurfacesUnderlyingMessage(t *testing.T) {
	cause := fmt.Errorf("pq: connection refused")
	err := Internal(cause)
	assert.Equal(t, "pq: connection refused", err.Message)
	assert.ErrorIs(t, err, cause)
}

func TestIsCode(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", NotFound("reminder"))
	assert.True(t, IsCode(wrapped, ErrNotFound))
	assert.False(t, IsCode(wrapped, ErrConflict))
}
