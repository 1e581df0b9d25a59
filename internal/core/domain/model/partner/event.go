package partner

import (
	"fmt"
	"strings"

	"pos/internal/pkg/errs"
)

// EventType is the closed set of partner webhook event categories the system
// reacts to. Raw wire codes are matched by containment (the partner sends both
// short and full codes, e.g. "PLC" events arrive with fullCode "PLACED"), but
// the result is always one of these tagged values; anything else is rejected
// explicitly instead of being silently ignored.
type EventType int

const (
	// EventUnknown represents an unrecognized event code.
	EventUnknown EventType = iota

	// EventPlaced announces a new partner-originated order.
	EventPlaced

	// EventConfirmed announces that the partner confirmed the handoff.
	EventConfirmed

	// EventCancelled announces that the partner cancelled the order.
	EventCancelled
)

func getEventTypeStrings() map[EventType]string {
	return map[EventType]string{
		EventUnknown:   "UNKNOWN",
		EventPlaced:    "PLACED",
		EventConfirmed: "CONFIRMED",
		EventCancelled: "CANCELLED",
	}
}

// ParseEventType classifies a raw partner event code.
// Returns an error for codes outside the closed event set.
func ParseEventType(code string) (EventType, error) {
	switch {
	case strings.Contains(code, "PLACED"):
		return EventPlaced, nil
	case strings.Contains(code, "CONFIRMED"):
		return EventConfirmed, nil
	case strings.Contains(code, "CANCELLED"):
		return EventCancelled, nil
	default:
		return EventUnknown, errs.NewValueIsInvalidErrorWithCause(
			"eventCode",
			fmt.Errorf("%q is not a recognized partner event code", code),
		)
	}
}

// String returns the canonical name of the event type.
func (t EventType) String() string {
	if s, ok := getEventTypeStrings()[t]; ok {
		return s
	}
	return "UNKNOWN"
}

// EventItem is one order line carried by a PLACED event payload.
// Prices are not trusted from the partner; they are resolved against the
// local catalog when the order is created.
type EventItem struct {
	ProductID int64
	Quantity  int
	Note      string
}

// Event is one partner webhook notification after classification.
// PartnerOrderID is the partner-side identifier used for idempotent
// correlation lookups.
type Event struct {
	Type           EventType
	Code           string
	PartnerOrderID string
	CustomerName   string
	Items          []EventItem
}

// NewEvent classifies a raw webhook payload into a typed event.
// Returns an error for unrecognized codes or a missing partner order id.
func NewEvent(code, partnerOrderID, customerName string, items []EventItem) (Event, error) {
	if partnerOrderID == "" {
		return Event{}, errs.NewValueIsRequiredError("orderId")
	}

	eventType, err := ParseEventType(code)
	if err != nil {
		return Event{}, err
	}

	return Event{
		Type:           eventType,
		Code:           code,
		PartnerOrderID: partnerOrderID,
		CustomerName:   customerName,
		Items:          items,
	}, nil
}
