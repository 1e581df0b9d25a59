package order

import (
	"fmt"

	"pos/internal/pkg/errs"
)

// Item is one line of an order. The unit price is a snapshot taken from the
// catalog at creation time and is never re-derived afterward, so later catalog
// price changes do not affect persisted orders.
type Item struct {
	id             int64
	productID      int64
	quantity       int
	unitPriceCents int64
	note           string
}

// NewItem creates an order line with a price snapshot.
// Quantity must be at least 1; the unit price must not be negative.
func NewItem(productID int64, quantity int, unitPriceCents int64, note string) (Item, error) {
	if productID <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause(
			"productId",
			fmt.Errorf("%d is not a valid product id", productID),
		)
	}
	if quantity < 1 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	if unitPriceCents < 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause(
			"unitPriceCents",
			fmt.Errorf("%d is negative", unitPriceCents),
		)
	}

	return Item{
		productID:      productID,
		quantity:       quantity,
		unitPriceCents: unitPriceCents,
		note:           note,
	}, nil
}

// RestoreItem rebuilds an order line from persistence, including its
// storage-assigned identifier.
func RestoreItem(id, productID int64, quantity int, unitPriceCents int64, note string) (Item, error) {
	item, err := NewItem(productID, quantity, unitPriceCents, note)
	if err != nil {
		return Item{}, err
	}
	item.id = id
	return item, nil
}

// ID returns the storage-assigned identifier, zero before first persistence.
func (i Item) ID() int64 {
	return i.id
}

// ProductID returns the catalog product this line refers to.
func (i Item) ProductID() int64 {
	return i.productID
}

// Quantity returns how many units were ordered.
func (i Item) Quantity() int {
	return i.quantity
}

// UnitPriceCents returns the price snapshot taken at creation time.
func (i Item) UnitPriceCents() int64 {
	return i.unitPriceCents
}

// Note returns the free-form preparation note, empty if none.
func (i Item) Note() string {
	return i.note
}

// LineTotalCents returns unit price times quantity.
func (i Item) LineTotalCents() int64 {
	return i.unitPriceCents * int64(i.quantity)
}
