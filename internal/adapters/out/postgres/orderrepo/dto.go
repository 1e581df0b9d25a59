// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. This package implements the repository pattern for the
// order aggregate, handling the conversion between domain entities and
// database representations.
package orderrepo

import (
	"time"

	"pos/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Status and channel are stored as their string representations, indexed for
// the queue and listing queries. Version backs the compare-and-swap status
// writes.
type OrderDTO struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Channel      string `gorm:"type:varchar(32);index"`
	Status       string `gorm:"type:varchar(32);index"`
	CustomerName string
	TableID      *int64
	TotalCents   int64
	Version      int64
	CreatedAt    time.Time `gorm:"index"`
	DispatchedAt *time.Time
	Items        []ItemDTO    `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Payments     []PaymentDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents one order item line with its price snapshot.
type ItemDTO struct {
	ID             int64 `gorm:"primaryKey;autoIncrement"`
	OrderID        int64 `gorm:"index"`
	ProductID      int64
	Quantity       int
	UnitPriceCents int64
	Note           string
}

// TableName specifies the database table name for order items.
func (ItemDTO) TableName() string {
	return "order_items"
}

// PaymentDTO represents one payment recorded against an order.
type PaymentDTO struct {
	ID          int64 `gorm:"primaryKey;autoIncrement"`
	OrderID     int64 `gorm:"index"`
	Method      string
	AmountCents int64
	ChangeCents int64
}

// TableName specifies the database table name for order payments.
func (PaymentDTO) TableName() string {
	return "order_payments"
}

// fromDomain converts an order aggregate to its database representation.
// New aggregates carry zero ids; the database assigns them on insert.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			ID:             item.ID(),
			OrderID:        aggregate.ID(),
			ProductID:      item.ProductID(),
			Quantity:       item.Quantity(),
			UnitPriceCents: item.UnitPriceCents(),
			Note:           item.Note(),
		})
	}

	payments := make([]PaymentDTO, 0, len(aggregate.Payments()))
	for _, payment := range aggregate.Payments() {
		payments = append(payments, PaymentDTO{
			ID:          payment.ID(),
			OrderID:     aggregate.ID(),
			Method:      payment.Method(),
			AmountCents: payment.AmountCents(),
			ChangeCents: payment.ChangeCents(),
		})
	}

	return OrderDTO{
		ID:           aggregate.ID(),
		Channel:      aggregate.Channel().String(),
		Status:       aggregate.Status().String(),
		CustomerName: aggregate.CustomerName(),
		TableID:      aggregate.TableID(),
		TotalCents:   aggregate.TotalCents(),
		Version:      aggregate.Version(),
		CreatedAt:    aggregate.CreatedAt(),
		DispatchedAt: aggregate.DispatchedAt(),
		Items:        items,
		Payments:     payments,
	}
}

// toDomain converts a database DTO to an order aggregate using RestoreOrder,
// which trusts the stored total instead of recomputing it.
func toDomain(dto OrderDTO) (*order.Order, error) {
	channel, err := order.ChannelFromString(dto.Channel)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := order.RestoreItem(
			itemDTO.ID,
			itemDTO.ProductID,
			itemDTO.Quantity,
			itemDTO.UnitPriceCents,
			itemDTO.Note,
		)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	payments := make([]order.Payment, 0, len(dto.Payments))
	for _, paymentDTO := range dto.Payments {
		payments = append(payments, order.RestorePayment(
			paymentDTO.ID,
			paymentDTO.Method,
			paymentDTO.AmountCents,
			paymentDTO.ChangeCents,
		))
	}

	return order.RestoreOrder(
		dto.ID,
		channel,
		status,
		dto.CustomerName,
		dto.TableID,
		dto.TotalCents,
		dto.Version,
		dto.CreatedAt,
		dto.DispatchedAt,
		items,
		payments,
	)
}
