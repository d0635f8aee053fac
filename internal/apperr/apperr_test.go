package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_Message(t *testing.T) {
	assert.Equal(t, "Bad request: Invalid UUID format", BadRequest("Invalid UUID format").Error())
	assert.Equal(t, "Not found: form schema with ID x not found", NotFound("form schema with ID %s not found", "x").Error())

	cause := errors.New("connection refused")
	err := Storage(cause, "failed to insert form schema")
	assert.Equal(t, "Database error: failed to insert form schema: connection refused", err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"bad request", BadRequest("bad"), http.StatusBadRequest},
		{"validation", Validation("invalid"), http.StatusBadRequest},
		{"not found", NotFound("missing"), http.StatusNotFound},
		{"storage", Storage(errors.New("x"), "write"), http.StatusInternalServerError},
		{"internal", Internal(errors.New("x"), "decode"), http.StatusInternalServerError},
		{"untyped", errors.New("boom"), http.StatusInternalServerError},
		{"wrapped not found", fmt.Errorf("get: %w", NotFound("missing")), http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestIs(t *testing.T) {
	err := fmt.Errorf("wrap: %w", NotFound("form schema with ID 1 not found"))

	assert.True(t, errors.Is(err, &Error{Kind: KindNotFound}))
	assert.False(t, errors.Is(err, &Error{Kind: KindStorage}))
	assert.True(t, IsNotFound(err))
	assert.False(t, IsNotFound(nil))
}
