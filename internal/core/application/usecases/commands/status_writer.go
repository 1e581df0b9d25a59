package commands

import (
	"context"
	"errors"

	"pos/internal/core/domain/model/order"
	"pos/internal/pkg/errs"
)

// statusWriteRetries bounds how often a status write is retried after losing
// a compare-and-swap race against another writer. Each retry re-reads the
// order, so the mutation is re-validated against the winner's state.
const statusWriteRetries = 3

// changeOrderStatus loads the order, applies mutate, and persists the result
// with a compare-and-swap write. Retries on version conflicts; all status
// writers (explicit updates, delivery attempt tasks, webhook ingestion) funnel
// through here, so no writer silently overwrites another.
func changeOrderStatus(
	ctx context.Context,
	uowFactory OrderUoWFactory,
	orderID int64,
	mutate func(*order.Order) error,
) (*order.Order, error) {
	var lastErr error

	for attempt := 0; attempt < statusWriteRetries; attempt++ {
		updated, err := tryChangeOrderStatus(ctx, uowFactory, orderID, mutate)
		if err == nil {
			return updated, nil
		}
		if !errors.Is(err, errs.ErrVersionConflict) {
			return nil, err
		}
		lastErr = err
	}

	return nil, lastErr
}

func tryChangeOrderStatus(
	ctx context.Context,
	uowFactory OrderUoWFactory,
	orderID int64,
	mutate func(*order.Order) error,
) (*order.Order, error) {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	aggregate, err := repo.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err = mutate(aggregate); err != nil {
		return nil, err
	}

	if err = repo.UpdateStatus(ctx, aggregate); err != nil {
		return nil, err
	}

	updated, err := repo.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return updated, nil
}
