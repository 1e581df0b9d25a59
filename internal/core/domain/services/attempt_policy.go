package services

import (
	"fmt"
	"time"

	"pos/internal/pkg/errs"
)

const (
	// DefaultMaxAttempts is the default delivery confirmation retry budget.
	// With DefaultAttemptInterval this gives roughly a five minute window.
	DefaultMaxAttempts = 60

	// DefaultAttemptInterval is the default spacing between attempts.
	DefaultAttemptInterval = 5 * time.Second
)

// AttemptDecision is the outcome of evaluating one delivery attempt.
type AttemptDecision int

const (
	// DecisionContinue means the attempt neither succeeded nor exhausted the
	// budget; the task keeps ticking.
	DecisionContinue AttemptDecision = iota

	// DecisionDispatch means the partner confirmed: the order moves to
	// DISPATCHED and the task terminates.
	DecisionDispatch

	// DecisionExhaust means the budget is spent without confirmation: the
	// order moves to CANCELLED and the task terminates.
	DecisionExhaust
)

// AttemptPolicy is the domain service deciding the fate of a delivery attempt
// task after each tick. It owns the retry budget and attempt spacing so that
// the worker running the loop carries no business rules of its own.
type AttemptPolicy struct {
	maxAttempts int
	interval    time.Duration
}

// NewAttemptPolicy creates a policy with the given budget and spacing.
func NewAttemptPolicy(maxAttempts int, interval time.Duration) (AttemptPolicy, error) {
	if maxAttempts <= 0 {
		return AttemptPolicy{}, errs.NewValueIsInvalidErrorWithCause(
			"maxAttempts",
			fmt.Errorf("%d is not greater than 0", maxAttempts),
		)
	}
	if interval <= 0 {
		return AttemptPolicy{}, errs.NewValueIsInvalidErrorWithCause(
			"interval",
			fmt.Errorf("%s is not a positive duration", interval),
		)
	}

	return AttemptPolicy{maxAttempts: maxAttempts, interval: interval}, nil
}

// DefaultAttemptPolicy returns the 60-attempt, 5-second-spacing policy.
func DefaultAttemptPolicy() AttemptPolicy {
	policy, _ := NewAttemptPolicy(DefaultMaxAttempts, DefaultAttemptInterval)
	return policy
}

// MaxAttempts returns the retry budget.
func (p AttemptPolicy) MaxAttempts() int {
	return p.maxAttempts
}

// Interval returns the spacing between attempts.
func (p AttemptPolicy) Interval() time.Duration {
	return p.interval
}

// Decide evaluates attempt number attempt (1-based) given whether the partner
// confirmed on this attempt. Confirmation wins even on the final attempt.
func (p AttemptPolicy) Decide(attempt int, confirmed bool) AttemptDecision {
	if confirmed {
		return DecisionDispatch
	}
	if attempt >= p.maxAttempts {
		return DecisionExhaust
	}
	return DecisionContinue
}
