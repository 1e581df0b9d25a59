package order

// Payment records money taken against an order. Payment capture itself is
// handled at the point of sale; this aggregate only carries the rows.
type Payment struct {
	id          int64
	method      string
	amountCents int64
	changeCents int64
}

// RestorePayment rebuilds a payment row from persistence.
func RestorePayment(id int64, method string, amountCents, changeCents int64) Payment {
	return Payment{
		id:          id,
		method:      method,
		amountCents: amountCents,
		changeCents: changeCents,
	}
}

// ID returns the storage-assigned identifier.
func (p Payment) ID() int64 {
	return p.id
}

// Method returns the payment method label (e.g. "CASH", "CARD").
func (p Payment) Method() string {
	return p.method
}

// AmountCents returns the amount tendered.
func (p Payment) AmountCents() int64 {
	return p.amountCents
}

// ChangeCents returns the change given back.
func (p Payment) ChangeCents() int64 {
	return p.changeCents
}
