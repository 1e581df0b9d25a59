package order

import (
	"fmt"

	"pos/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	PENDING ──┬──> IN_KITCHEN ──┬──> OUT_FOR_DELIVERY ──> COMPLETED
//	          │                 └──> COMPLETED
//	          ├──> OUT_FOR_DELIVERY
//	          ├──> DISPATCHED ──> COMPLETED
//	          └──> COMPLETED
//
// Every non-terminal status may also transition to CANCELLED.
// COMPLETED and CANCELLED are terminal: no transition leaves them.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending is the initial status of every order. Orders on the
	// delivery-partner channel sit in the dispatch queue while pending.
	StatusPending

	// StatusInKitchen indicates the order is being prepared.
	StatusInKitchen

	// StatusOutForDelivery indicates the order left the kitchen with a courier.
	StatusOutForDelivery

	// StatusDispatched indicates the external delivery partner confirmed the
	// handoff of the order.
	StatusDispatched

	// StatusCompleted is a terminal status: the order was fulfilled.
	StatusCompleted

	// StatusCancelled is a terminal status: the order will not be fulfilled.
	StatusCancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:        "UNKNOWN",
		StatusPending:        "PENDING",
		StatusInKitchen:      "IN_KITCHEN",
		StatusOutForDelivery: "OUT_FOR_DELIVERY",
		StatusDispatched:     "DISPATCHED",
		StatusCompleted:      "COMPLETED",
		StatusCancelled:      "CANCELLED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPending:        "PENDING",
		StatusInKitchen:      "IN_KITCHEN",
		StatusOutForDelivery: "OUT_FOR_DELIVERY",
		StatusDispatched:     "DISPATCHED",
		StatusCompleted:      "COMPLETED",
		StatusCancelled:      "CANCELLED",
	}
}

// transitionPolicy is the single source of truth for allowed status
// transitions. Terminal statuses map to an empty set.
var transitionPolicy = map[Status][]Status{
	StatusPending:        {StatusInKitchen, StatusOutForDelivery, StatusDispatched, StatusCompleted, StatusCancelled},
	StatusInKitchen:      {StatusOutForDelivery, StatusCompleted, StatusCancelled},
	StatusOutForDelivery: {StatusCompleted, StatusCancelled},
	StatusDispatched:     {StatusCompleted, StatusCancelled},
	StatusCompleted:      {},
	StatusCancelled:      {},
}

// StatusFromString parses the wire representation of a status.
// Returns an error for any value outside the closed status set.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a recognized status", s),
	)
}

// Validate checks if the Status value belongs to the closed status set.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire representation of the status.
// Returns "UNKNOWN" for invalid status values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether no transition leaves this status.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// AllowedTransitions returns the statuses reachable from s in one step.
// The returned slice is a copy and may be modified freely.
func (s Status) AllowedTransitions() []Status {
	targets := transitionPolicy[s]
	out := make([]Status, len(targets))
	copy(out, targets)
	return out
}

// CanTransitionTo reports whether the transition s -> target is allowed
// by the policy table.
func (s Status) CanTransitionTo(target Status) bool {
	for _, t := range transitionPolicy[s] {
		if t == target {
			return true
		}
	}
	return false
}

// TransitionTo validates the transition s -> target against the policy table
// and returns the new status.
//
// Returns an error if target is outside the status set or the transition
// is not allowed, including any transition out of a terminal status.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return StatusUnknown, err
	}

	if !s.CanTransitionTo(target) {
		return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("transition %s -> %s is not allowed", s.String(), target.String()),
		)
	}

	return target, nil
}
