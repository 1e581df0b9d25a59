package partnerclient

import (
	"context"
	"math/rand"
	"sync"
)

// StubDeliveryConfirmer simulates the partner's per-attempt confirmation
// with a fixed success probability. The concrete partner transport
// implements the same port when the integration goes live.
type StubDeliveryConfirmer struct {
	probability float64

	mu  sync.Mutex
	rng *rand.Rand
}

// NewStubDeliveryConfirmer creates a stub confirmer. probability is the
// chance any single attempt confirms, clamped to [0, 1].
func NewStubDeliveryConfirmer(probability float64, seed int64) *StubDeliveryConfirmer {
	if probability < 0 {
		probability = 0
	}
	if probability > 1 {
		probability = 1
	}

	return &StubDeliveryConfirmer{
		probability: probability,
		rng:         rand.New(rand.NewSource(seed)),
	}
}

// ConfirmDelivery rolls the dice for one attempt. Never errors: the stub
// models a reachable partner that just hasn't confirmed yet.
func (c *StubDeliveryConfirmer) ConfirmDelivery(_ context.Context, _ int64) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rng.Float64() < c.probability, nil
}
