// Package dispatch runs the per-order delivery attempt tasks for
// delivery-partner orders. The pool keeps an in-flight registry keyed by
// order id: submitting an order that already has a running task is a no-op,
// so the creation-time trigger and the periodic reconciler sweep can both
// feed the pool without spawning duplicate tasks.
package dispatch

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"pos/internal/core/application/usecases/commands"
	"pos/internal/core/domain/services"
)

// Pool manages delivery attempt tasks. One goroutine per in-flight order,
// ticking at the policy's interval until the partner confirms, the budget is
// exhausted, or another writer closes the order first.
type Pool struct {
	policy          services.AttemptPolicy
	confirmer       deliveryConfirmer
	dispatchHandler commands.MarkOrderDispatchedCommandHandler
	cancelHandler   commands.CancelOrderCommandHandler
	logger          *slog.Logger

	mu       sync.Mutex
	inFlight map[int64]struct{}
	baseCtx  context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup
	started  bool
}

// deliveryConfirmer mirrors ports.DeliveryConfirmer without importing the
// ports package into the worker. Kept narrow for the pool tests.
type deliveryConfirmer interface {
	ConfirmDelivery(ctx context.Context, orderID int64) (bool, error)
}

// NewPool creates a dispatch pool. Call Start before submitting.
func NewPool(
	policy services.AttemptPolicy,
	confirmer deliveryConfirmer,
	dispatchHandler commands.MarkOrderDispatchedCommandHandler,
	cancelHandler commands.CancelOrderCommandHandler,
	logger *slog.Logger,
) *Pool {
	return &Pool{
		policy:          policy,
		confirmer:       confirmer,
		dispatchHandler: dispatchHandler,
		cancelHandler:   cancelHandler,
		logger:          logger.With("component", "dispatch_pool"),
		inFlight:        make(map[int64]struct{}),
	}
}

// Start arms the pool. Tasks spawned afterwards inherit ctx and stop when it
// is cancelled.
func (p *Pool) Start(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.started {
		return
	}
	p.baseCtx, p.cancel = context.WithCancel(ctx)
	p.started = true
}

// Stop cancels all running tasks and blocks until they have drained.
func (p *Pool) Stop() {
	p.mu.Lock()
	if !p.started {
		p.mu.Unlock()
		return
	}
	p.cancel()
	p.started = false
	p.mu.Unlock()

	p.wg.Wait()
	p.logger.Info("Dispatch pool stopped")
}

// Submit starts a delivery attempt task for the order unless one is already
// in flight. Returns true if a new task was started.
func (p *Pool) Submit(orderID int64) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started {
		return false
	}
	if _, running := p.inFlight[orderID]; running {
		return false
	}

	p.inFlight[orderID] = struct{}{}
	p.wg.Add(1)
	go p.run(p.baseCtx, orderID)
	return true
}

// InFlight reports how many attempt tasks are currently running.
func (p *Pool) InFlight() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.inFlight)
}

func (p *Pool) run(ctx context.Context, orderID int64) {
	defer p.wg.Done()
	defer p.release(orderID)

	logger := p.logger.With("order_id", orderID)
	logger.Info("Delivery attempt task started", "max_attempts", p.policy.MaxAttempts())

	ticker := time.NewTicker(p.policy.Interval())
	defer ticker.Stop()

	for attempt := 1; ; attempt++ {
		select {
		case <-ctx.Done():
			logger.Info("Delivery attempt task stopped", "attempt", attempt)
			return
		case <-ticker.C:
		}

		confirmed, err := p.confirmer.ConfirmDelivery(ctx, orderID)
		if err != nil {
			// The attempt is consumed either way.
			logger.Warn("Delivery confirmation attempt failed", "attempt", attempt, "error", err)
			confirmed = false
		}

		switch p.policy.Decide(attempt, confirmed) {
		case services.DecisionDispatch:
			p.markDispatched(ctx, logger, orderID, attempt)
			return
		case services.DecisionExhaust:
			p.cancelOrder(ctx, logger, orderID, attempt)
			return
		case services.DecisionContinue:
		}
	}
}

func (p *Pool) markDispatched(ctx context.Context, logger *slog.Logger, orderID int64, attempt int) {
	cmd, err := commands.NewMarkOrderDispatchedCommand(orderID, time.Now().UTC())
	if err != nil {
		logger.Error("Building dispatch command failed", "error", err)
		return
	}

	if _, err = p.dispatchHandler.Handle(ctx, cmd); err != nil {
		// A webhook or an operator may have closed the order first; the
		// transition policy decided, not this task.
		logger.Warn("Order not moved to dispatched", "attempt", attempt, "error", err)
		return
	}

	logger.Info("Order dispatched", "attempt", attempt)
}

func (p *Pool) cancelOrder(ctx context.Context, logger *slog.Logger, orderID int64, attempt int) {
	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		logger.Error("Building cancel command failed", "error", err)
		return
	}

	if _, err = p.cancelHandler.Handle(ctx, cmd); err != nil {
		logger.Warn("Order not cancelled after exhausting attempts", "attempt", attempt, "error", err)
		return
	}

	logger.Info("Order cancelled, attempts exhausted", "attempts", attempt)
}

func (p *Pool) release(orderID int64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.inFlight, orderID)
}
