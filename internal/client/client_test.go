package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kelsos/sui-wallet/internal/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *APIClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := config.NewConfig()
	cfg.BackendURL = server.URL
	cfg.BackendTimeout = 2 * time.Second
	return NewAPIClient(cfg)
}

func TestGetAddressBalance(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/balance/0xabc", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"address":"0xabc","suiBalance":"1.5","otherCoins":[{"coinType":"0x2::usdc::USDC","balance":"42"}]}`))
	})

	result, apiErr, err := c.GetAddressBalance(context.Background(), "0xabc")
	require.NoError(t, err)
	require.Nil(t, apiErr)
	assert.Equal(t, "0xabc", result.Address)
	assert.Equal(t, "1.5", result.SuiBalance)
	require.Len(t, result.OtherCoins, 1)
	assert.Equal(t, "USDC", result.OtherCoins[0].DisplayName())
}

func TestGetAddressBalanceErrorPayload(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"X","details":{"reason":"bad address","field":"address"}}`))
	})

	result, apiErr, err := c.GetAddressBalance(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, result)
	require.NotNil(t, apiErr)
	assert.Equal(t, "X", apiErr.Error)
	assert.Equal(t, `{"reason":"bad address","field":"address"}`, string(apiErr.Details))
}

func TestGetObjectErrorWithoutDetails(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/object", r.URL.Path)
		_, _ = w.Write([]byte(`{"error":"object not found"}`))
	})

	result, apiErr, err := c.GetObject(context.Background())
	require.NoError(t, err)
	assert.Nil(t, result)
	require.NotNil(t, apiErr)
	assert.Equal(t, "object not found", apiErr.Error)
	assert.False(t, apiErr.HasDetails())
}

func TestGetObject(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"admin":"0x1","id":"0x2","balance":"300"}`))
	})

	result, apiErr, err := c.GetObject(context.Background())
	require.NoError(t, err)
	require.Nil(t, apiErr)
	assert.Equal(t, "0x1", result.Admin)
	assert.Equal(t, "0x2", result.ID)
	assert.Equal(t, "300", result.Balance)
}

func TestHTTPErrorWithoutPayload(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	})

	_, apiErr, err := c.GetObject(context.Background())
	assert.Nil(t, apiErr)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP error 502")
}

func TestTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	cfg := config.NewConfig()
	cfg.BackendURL = server.URL
	server.Close()

	_, apiErr, err := NewAPIClient(cfg).GetAddressBalance(context.Background(), "0xabc")
	assert.Nil(t, apiErr)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "request failed")
}
