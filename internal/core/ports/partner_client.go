package ports

import (
	"context"
	"time"
)

// DeliveryConfirmer is the confirm-or-fail outcome of one delivery handoff
// attempt against the external partner. The production implementation talks
// to the partner network; tests and local runs use a stub with a fixed
// success probability.
type DeliveryConfirmer interface {
	// ConfirmDelivery attempts to confirm the handoff of the order.
	// Returns (true, nil) when the partner confirmed, (false, nil) when it
	// did not, and an IntegrationError when the partner was unreachable or
	// answered garbage - which consumes the attempt without confirming.
	ConfirmDelivery(ctx context.Context, orderID int64) (bool, error)
}

// PartnerToken is the result of a client-credentials exchange against the
// partner's token endpoint.
type PartnerToken struct {
	AccessToken string
	ExpiresAt   time.Time
}

// TokenExchanger performs the client-credentials exchange. There is no
// automatic refresh before expiry; callers re-trigger the exchange
// explicitly.
type TokenExchanger interface {
	// ExchangeToken trades the merchant credentials for an access token.
	// Failures surface as IntegrationError.
	ExchangeToken(ctx context.Context, clientID, clientSecret string) (PartnerToken, error)
}
