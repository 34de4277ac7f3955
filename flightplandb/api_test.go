package flightplandb

import (
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func apiHeaderHandler(t *testing.T) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-API-Version", "1")
		w.Header().Set("X-Units", "AVIATION")
		w.Header().Set("X-Limit-Cap", "2000")
		w.Header().Set("X-Limit-Used", "150")
		io.WriteString(w, `{"message": "OK", "errors": null}`)
	}
}

func TestVersion(t *testing.T) {
	client := newTestClient(t, "", apiHeaderHandler(t))

	version, err := client.Version(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, version)
}

func TestServerUnits(t *testing.T) {
	client := newTestClient(t, "", apiHeaderHandler(t))

	units, err := client.ServerUnits(context.Background())
	require.NoError(t, err)
	assert.Equal(t, UnitsAviation, units)
}

func TestLimits(t *testing.T) {
	client := newTestClient(t, "key", apiHeaderHandler(t))

	cap, err := client.LimitCap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2000, cap)

	used, err := client.LimitUsed(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 150, used)
}

func TestLimitCapMissingHeader(t *testing.T) {
	client := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"message": "OK"}`)
	})

	_, err := client.LimitCap(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "X-Limit-Cap")
}

func TestRevokeKey(t *testing.T) {
	client := newTestClient(t, "key", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/revoke", r.URL.Path)
		io.WriteString(w, `{"message": "OK", "errors": null}`)
	})

	status, err := client.RevokeKey(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "OK", status.Message)
}
