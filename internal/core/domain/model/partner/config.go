package partner

import (
	"time"

	"pos/internal/pkg/errs"
)

// IntegrationConfig is the single configuration record for the delivery
// partner integration. It carries the merchant credentials and the cached
// access token with its expiry.
//
// Token refresh is manual: nothing refreshes the token before expiry, an
// explicit token exchange must be re-triggered. An expired token surfaces as
// an IntegrationError from whichever call needed it.
type IntegrationConfig struct {
	id             int64
	environment    string
	clientID       string
	clientSecret   string
	merchantID     string
	accessToken    string
	tokenExpiresAt *time.Time
	updatedAt      time.Time
}

// NewIntegrationConfig creates a config record from merchant credentials.
func NewIntegrationConfig(environment, clientID, clientSecret, merchantID string) (*IntegrationConfig, error) {
	if clientID == "" {
		return nil, errs.NewValueIsRequiredError("clientId")
	}
	if clientSecret == "" {
		return nil, errs.NewValueIsRequiredError("clientSecret")
	}

	return &IntegrationConfig{
		environment:  environment,
		clientID:     clientID,
		clientSecret: clientSecret,
		merchantID:   merchantID,
		updatedAt:    time.Now().UTC(),
	}, nil
}

// RestoreIntegrationConfig rebuilds a config record from persistence.
func RestoreIntegrationConfig(
	id int64,
	environment, clientID, clientSecret, merchantID string,
	accessToken string,
	tokenExpiresAt *time.Time,
	updatedAt time.Time,
) *IntegrationConfig {
	return &IntegrationConfig{
		id:             id,
		environment:    environment,
		clientID:       clientID,
		clientSecret:   clientSecret,
		merchantID:     merchantID,
		accessToken:    accessToken,
		tokenExpiresAt: tokenExpiresAt,
		updatedAt:      updatedAt,
	}
}

// ID returns the storage-assigned identifier.
func (c *IntegrationConfig) ID() int64 {
	return c.id
}

// Environment returns the partner environment label (e.g. "sandbox").
func (c *IntegrationConfig) Environment() string {
	return c.environment
}

// ClientID returns the merchant client id.
func (c *IntegrationConfig) ClientID() string {
	return c.clientID
}

// ClientSecret returns the merchant client secret.
func (c *IntegrationConfig) ClientSecret() string {
	return c.clientSecret
}

// MerchantID returns the partner-side merchant identifier.
func (c *IntegrationConfig) MerchantID() string {
	return c.merchantID
}

// AccessToken returns the cached access token, empty if never exchanged.
func (c *IntegrationConfig) AccessToken() string {
	return c.accessToken
}

// TokenExpiresAt returns when the cached token expires, nil if no token.
func (c *IntegrationConfig) TokenExpiresAt() *time.Time {
	return c.tokenExpiresAt
}

// UpdatedAt returns the last modification time.
func (c *IntegrationConfig) UpdatedAt() time.Time {
	return c.updatedAt
}

// UpdateCredentials replaces the merchant credentials.
// The cached token is kept; callers re-trigger the exchange when needed.
func (c *IntegrationConfig) UpdateCredentials(environment, clientID, clientSecret, merchantID string) error {
	if clientID == "" {
		return errs.NewValueIsRequiredError("clientId")
	}
	if clientSecret == "" {
		return errs.NewValueIsRequiredError("clientSecret")
	}

	c.environment = environment
	c.clientID = clientID
	c.clientSecret = clientSecret
	c.merchantID = merchantID
	c.updatedAt = time.Now().UTC()
	return nil
}

// CacheToken stores a freshly exchanged access token and its expiry.
func (c *IntegrationConfig) CacheToken(accessToken string, expiresAt time.Time) error {
	if accessToken == "" {
		return errs.NewValueIsRequiredError("accessToken")
	}

	c.accessToken = accessToken
	c.tokenExpiresAt = &expiresAt
	c.updatedAt = time.Now().UTC()
	return nil
}

// HasValidToken reports whether a cached token exists and has not expired.
func (c *IntegrationConfig) HasValidToken(now time.Time) bool {
	return c.accessToken != "" && c.tokenExpiresAt != nil && now.Before(*c.tokenExpiresAt)
}
