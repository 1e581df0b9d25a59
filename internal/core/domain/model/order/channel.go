package order

import (
	"fmt"

	"pos/internal/pkg/errs"
)

// Channel identifies where an order originated.
type Channel int

const (
	// ChannelUnknown represents an invalid or undefined channel.
	ChannelUnknown Channel = iota

	// ChannelCounter is a walk-up order paid at the counter.
	ChannelCounter

	// ChannelTable is a dine-in order tied to a table.
	ChannelTable

	// ChannelDeliveryPartner is an order fulfilled through the external
	// delivery partner. Only these orders enter the dispatch queue.
	ChannelDeliveryPartner
)

func getChannelStrings() map[Channel]string {
	return map[Channel]string{
		ChannelUnknown:         "UNKNOWN",
		ChannelCounter:         "COUNTER",
		ChannelTable:           "TABLE",
		ChannelDeliveryPartner: "DELIVERY_PARTNER",
	}
}

func getValidChannelStrings() map[Channel]string {
	//nolint:exhaustive // ChannelUnknown is intentionally excluded as it's invalid
	return map[Channel]string{
		ChannelCounter:         "COUNTER",
		ChannelTable:           "TABLE",
		ChannelDeliveryPartner: "DELIVERY_PARTNER",
	}
}

// ChannelFromString parses the wire representation of a channel.
func ChannelFromString(s string) (Channel, error) {
	for channel, str := range getValidChannelStrings() {
		if str == s {
			return channel, nil
		}
	}
	return ChannelUnknown, errs.NewValueIsInvalidErrorWithCause(
		"channel",
		fmt.Errorf("%q is not a recognized channel", s),
	)
}

// Validate checks if the Channel value belongs to the closed channel set.
func (c Channel) Validate() error {
	if _, ok := getValidChannelStrings()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("channel", fmt.Errorf("%d is not a valid channel", c))
	}
	return nil
}

// String returns the wire representation of the channel.
func (c Channel) String() string {
	if str, ok := getChannelStrings()[c]; ok {
		return str
	}
	return "UNKNOWN"
}
