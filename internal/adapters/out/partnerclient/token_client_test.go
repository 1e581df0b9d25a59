package partnerclient_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pos/internal/adapters/out/partnerclient"
	"pos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPTokenClient_ExchangeToken_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/authentication/v1.0/oauth/token", r.URL.Path)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "client_credentials", r.PostForm.Get("grantType"))
		assert.Equal(t, "client-1", r.PostForm.Get("clientId"))
		assert.Equal(t, "secret-1", r.PostForm.Get("clientSecret"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"accessToken":"token-xyz","expiresIn":3600}`))
	}))
	defer server.Close()

	client := partnerclient.NewHTTPTokenClient(server.URL)
	before := time.Now().UTC()

	token, err := client.ExchangeToken(t.Context(), "client-1", "secret-1")
	require.NoError(t, err)

	assert.Equal(t, "token-xyz", token.AccessToken)
	assert.WithinDuration(t, before.Add(time.Hour), token.ExpiresAt, 10*time.Second)
}

func TestHTTPTokenClient_ExchangeToken_RejectedCredentials(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := partnerclient.NewHTTPTokenClient(server.URL)
	_, err := client.ExchangeToken(t.Context(), "client-1", "bad-secret")

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrIntegration)
	assert.Contains(t, err.Error(), "401")
}

func TestHTTPTokenClient_ExchangeToken_EmptyToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"expiresIn":3600}`))
	}))
	defer server.Close()

	client := partnerclient.NewHTTPTokenClient(server.URL)
	_, err := client.ExchangeToken(t.Context(), "client-1", "secret-1")

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrIntegration)
}

func TestHTTPTokenClient_ExchangeToken_PartnerUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))
	server.Close() // unreachable on purpose

	client := partnerclient.NewHTTPTokenClient(server.URL)
	_, err := client.ExchangeToken(t.Context(), "client-1", "secret-1")

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrIntegration)
}

func TestStubDeliveryConfirmer_Probabilities(t *testing.T) {
	always := partnerclient.NewStubDeliveryConfirmer(1.0, 42)
	confirmed, err := always.ConfirmDelivery(t.Context(), 1)
	require.NoError(t, err)
	assert.True(t, confirmed)

	never := partnerclient.NewStubDeliveryConfirmer(0.0, 42)
	confirmed, err = never.ConfirmDelivery(t.Context(), 1)
	require.NoError(t, err)
	assert.False(t, confirmed)
}

func TestStubDeliveryConfirmer_ClampsProbability(t *testing.T) {
	clamped := partnerclient.NewStubDeliveryConfirmer(7.5, 42)
	confirmed, err := clamped.ConfirmDelivery(t.Context(), 1)
	require.NoError(t, err)
	assert.True(t, confirmed)
}
