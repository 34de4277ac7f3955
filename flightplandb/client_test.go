package flightplandb

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient starts a test server with the given handler and returns a
// client pointed at it.
func newTestClient(t *testing.T, apiKey string, handler http.HandlerFunc, opts ...Option) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	opts = append([]Option{WithBaseURL(server.URL)}, opts...)
	return NewClient(apiKey, zerolog.Nop(), opts...)
}

func TestAnonymousRequestHasNoAuthHeader(t *testing.T) {
	client := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		w.Write([]byte(`{"message": "OK", "errors": null}`))
	})

	status, err := client.Ping(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &StatusResponse{Message: "OK"}, status)
}

func TestAuthenticatedRequestUsesBasicAuth(t *testing.T) {
	// The API key rides as the Basic username with an empty password.
	want := "Basic " + base64.StdEncoding.EncodeToString([]byte("secret-key:"))

	client := newTestClient(t, "secret-key", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, want, r.Header.Get("Authorization"))
		w.Write([]byte(`{"message": "OK", "errors": null}`))
	})

	_, err := client.Ping(context.Background())
	require.NoError(t, err)
}

func TestClientOptions(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("with timeout", func(t *testing.T) {
		client := NewClient("", logger, WithTimeout(5*time.Second))
		assert.Equal(t, 5*time.Second, client.httpClient.Timeout)
		// the shared default client must stay untouched
		assert.Zero(t, http.DefaultClient.Timeout)
	})

	t.Run("with custom http client", func(t *testing.T) {
		custom := &http.Client{Timeout: 10 * time.Second}
		client := NewClient("", logger, WithHTTPClient(custom))
		assert.Equal(t, custom, client.httpClient)
	})

	t.Run("base URL trailing slash is trimmed", func(t *testing.T) {
		client := NewClient("", logger, WithBaseURL("http://localhost:8080/"))
		assert.Equal(t, "http://localhost:8080", client.baseURL)
	})

	t.Run("authenticated", func(t *testing.T) {
		assert.False(t, NewClient("", logger).Authenticated())
		assert.True(t, NewClient("key", logger).Authenticated())
	})
}

func TestUnitsHeader(t *testing.T) {
	client := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "METRIC", r.Header.Get("X-Units"))
		w.Write([]byte(`{"message": "OK"}`))
	}, WithUnits(UnitsMetric))

	_, err := client.Ping(context.Background())
	require.NoError(t, err)
}

func TestRateLimitedRequestIsNotRetried(t *testing.T) {
	var requests int
	client := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"message": "Rate limit exceeded"}`))
	})

	_, err := client.Ping(context.Background())
	require.ErrorIs(t, err, ErrRateLimited)
	assert.Equal(t, 1, requests, "a rate limited request must not be retried")
}

func TestContextCancellation(t *testing.T) {
	client := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Ping(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
