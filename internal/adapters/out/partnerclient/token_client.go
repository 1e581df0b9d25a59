// Package partnerclient talks to the delivery partner's network: the
// client-credentials token exchange and the per-attempt delivery
// confirmation. The confirmation side ships as a stub with a fixed success
// probability; the real partner transport slots in behind the same port.
package partnerclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"pos/internal/core/ports"
	"pos/internal/pkg/errs"
)

const tokenRequestTimeout = 10 * time.Second

// HTTPTokenClient performs the client-credentials exchange against the
// partner's token endpoint.
type HTTPTokenClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewHTTPTokenClient creates a token client for the given partner base URL.
func NewHTTPTokenClient(baseURL string) *HTTPTokenClient {
	return &HTTPTokenClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: tokenRequestTimeout},
	}
}

type tokenResponse struct {
	AccessToken string `json:"accessToken"`
	ExpiresIn   int64  `json:"expiresIn"`
}

// ExchangeToken trades the merchant credentials for an access token.
// All transport and protocol failures surface as IntegrationError.
func (c *HTTPTokenClient) ExchangeToken(ctx context.Context, clientID, clientSecret string) (ports.PartnerToken, error) {
	form := url.Values{}
	form.Set("grantType", "client_credentials")
	form.Set("clientId", clientID)
	form.Set("clientSecret", clientSecret)

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseURL+"/authentication/v1.0/oauth/token",
		strings.NewReader(form.Encode()),
	)
	if err != nil {
		return ports.PartnerToken{}, errs.NewIntegrationError("token-exchange", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ports.PartnerToken{}, errs.NewIntegrationError("token-exchange", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ports.PartnerToken{}, errs.NewIntegrationError(
			"token-exchange",
			fmt.Errorf("unexpected status %d", resp.StatusCode),
		)
	}

	var body tokenResponse
	if err = json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return ports.PartnerToken{}, errs.NewIntegrationError("token-exchange", err)
	}
	if body.AccessToken == "" {
		return ports.PartnerToken{}, errs.NewIntegrationError(
			"token-exchange",
			fmt.Errorf("response carries no access token"),
		)
	}

	return ports.PartnerToken{
		AccessToken: body.AccessToken,
		ExpiresAt:   time.Now().UTC().Add(time.Duration(body.ExpiresIn) * time.Second),
	}, nil
}
