package partner

import (
	"pos/internal/pkg/errs"
)

// Correlation maps a partner-side order identifier to a local order id.
// It is the idempotency anchor for webhook processing: a PLACED event whose
// partner id already has a correlation is a replay and must not create a
// second order.
type Correlation struct {
	partnerOrderID string
	orderID        int64
}

// NewCorrelation creates a correlation between a partner order id and a
// persisted local order.
func NewCorrelation(partnerOrderID string, orderID int64) (Correlation, error) {
	if partnerOrderID == "" {
		return Correlation{}, errs.NewValueIsRequiredError("partnerOrderId")
	}
	if orderID <= 0 {
		return Correlation{}, errs.NewValueIsInvalidError("orderId")
	}

	return Correlation{
		partnerOrderID: partnerOrderID,
		orderID:        orderID,
	}, nil
}

// Validate checks the correlation carries both identifiers.
func (c Correlation) Validate() error {
	if c.partnerOrderID == "" {
		return errs.NewValueIsRequiredError("partnerOrderId")
	}
	if c.orderID <= 0 {
		return errs.NewValueIsInvalidError("orderId")
	}
	return nil
}

// PartnerOrderID returns the partner-side identifier.
func (c Correlation) PartnerOrderID() string {
	return c.partnerOrderID
}

// OrderID returns the local order id.
func (c Correlation) OrderID() int64 {
	return c.orderID
}
