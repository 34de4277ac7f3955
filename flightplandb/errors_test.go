package flightplandb

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyStatus(t *testing.T) {
	tests := []struct {
		name   string
		status int
		kind   error
	}{
		{"bad request", 400, ErrBadRequest},
		{"unauthorized", 401, ErrUnauthorized},
		{"forbidden", 403, ErrForbidden},
		{"not found", 404, ErrNotFound},
		{"rate limited", 429, ErrRateLimited},
		{"internal server error", 500, ErrServer},
		{"bad gateway", 502, ErrServer},
		{"service unavailable", 503, ErrServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := classifyStatus(tt.status, []byte(`{"message": "boom"}`))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.kind)
			assert.Equal(t, tt.status, err.StatusCode)
			assert.Equal(t, "boom", err.Message)
		})
	}
}

func TestClassifyStatusUnmappedCode(t *testing.T) {
	// Codes outside the documented taxonomy still classify, preserving the
	// original status and body.
	err := classifyStatus(418, []byte("I'm a teapot"))
	require.Error(t, err)

	assert.Equal(t, 418, err.StatusCode)
	assert.Equal(t, "I'm a teapot", err.Body)
	assert.Equal(t, "I'm a teapot", err.Message)

	for _, kind := range []error{ErrBadRequest, ErrUnauthorized, ErrForbidden, ErrNotFound, ErrRateLimited, ErrServer} {
		assert.NotErrorIs(t, err, kind)
	}
}

func TestErrorMessageExtraction(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "structured message",
			body: `{"message": "Unauthorized", "errors": null}`,
			want: "Unauthorized",
		},
		{
			name: "message with error list",
			body: `{"message": "Bad Request", "errors": ["fromICAO is required", "toICAO is required"]}`,
			want: "Bad Request: fromICAO is required; toICAO is required",
		},
		{
			name: "unstructured body",
			body: "502 Bad Gateway\n",
			want: "502 Bad Gateway",
		},
		{
			name: "empty body",
			body: "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errorMessage([]byte(tt.body)))
		})
	}
}

func TestAPIErrorHelpers(t *testing.T) {
	assert.True(t, classifyStatus(404, nil).IsNotFound())
	assert.False(t, classifyStatus(400, nil).IsNotFound())

	assert.True(t, classifyStatus(401, nil).IsUnauthorized())
	assert.True(t, classifyStatus(403, nil).IsUnauthorized())
	assert.False(t, classifyStatus(404, nil).IsUnauthorized())

	assert.True(t, classifyStatus(429, nil).IsRateLimited())
	assert.False(t, classifyStatus(500, nil).IsRateLimited())
}

func TestAPIErrorAsTarget(t *testing.T) {
	var err error = classifyStatus(404, []byte(`{"message": "Not Found"}`))

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 404, apiErr.StatusCode)
	assert.Contains(t, apiErr.Error(), "status 404")
	assert.Contains(t, apiErr.Error(), "Not Found")
}
