package commands

import (
	"errors"

	"pos/internal/pkg/errs"
	"pos/internal/pkg/guard"
)

var ErrSavePartnerConfigCommandIsNotConstructed = errors.New(
	"SavePartnerConfigCommand must be created via NewSavePartnerConfigCommand constructor",
)

// SavePartnerConfigCommand carries the merchant credentials for the delivery
// partner integration.
type SavePartnerConfigCommand struct { //nolint:recvcheck //using for validation
	environment  string
	clientID     string
	clientSecret string
	merchantID   string

	guard guard.ConstructorGuard
}

// NewSavePartnerConfigCommand creates a config save command.
func NewSavePartnerConfigCommand(environment, clientID, clientSecret, merchantID string) (SavePartnerConfigCommand, error) {
	if clientID == "" {
		return SavePartnerConfigCommand{}, errs.NewValueIsRequiredError("clientId")
	}
	if clientSecret == "" {
		return SavePartnerConfigCommand{}, errs.NewValueIsRequiredError("clientSecret")
	}

	return SavePartnerConfigCommand{
		environment:  environment,
		clientID:     clientID,
		clientSecret: clientSecret,
		merchantID:   merchantID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SavePartnerConfigCommand) Validate() error {
	return c.guard.Validate(ErrSavePartnerConfigCommandIsNotConstructed)
}

// Environment returns the partner environment label.
func (c SavePartnerConfigCommand) Environment() string {
	return c.environment
}

// ClientID returns the merchant client id.
func (c SavePartnerConfigCommand) ClientID() string {
	return c.clientID
}

// ClientSecret returns the merchant client secret.
func (c SavePartnerConfigCommand) ClientSecret() string {
	return c.clientSecret
}

// MerchantID returns the partner-side merchant identifier.
func (c SavePartnerConfigCommand) MerchantID() string {
	return c.merchantID
}
