package jobs

import (
	"context"
	"fmt"
	"log/slog"

	"pos/internal/core/application/usecases/commands"
	"pos/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// DefaultSweepSeconds is the default reconciler period.
const DefaultSweepSeconds = 10

// DispatchSweepJob is the reconciler behind the creation-time dispatch
// trigger. It periodically scans for delivery-partner orders still PENDING
// and submits them to the dispatch queue, picking up orders whose trigger
// was lost to a crash or that were inserted outside the running process.
// The queue's in-flight registry makes overlapping submissions harmless.
type DispatchSweepJob struct {
	uowFactory commands.OrderUoWFactory
	queue      ports.DispatchQueue
	cron       *cron.Cron
	spec       string
	logger     *slog.Logger
}

// NewDispatchSweepJob creates the sweep job running every sweepSeconds.
func NewDispatchSweepJob(
	uowFactory commands.OrderUoWFactory,
	queue ports.DispatchQueue,
	sweepSeconds int,
	logger *slog.Logger,
) *DispatchSweepJob {
	if sweepSeconds <= 0 {
		sweepSeconds = DefaultSweepSeconds
	}

	return &DispatchSweepJob{
		uowFactory: uowFactory,
		queue:      queue,
		cron:       cron.New(cron.WithSeconds()),
		spec:       fmt.Sprintf("*/%d * * * * *", sweepSeconds),
		logger:     logger.With("component", "dispatch_sweep_job"),
	}
}

// Start begins the periodic sweep.
func (j *DispatchSweepJob) Start() error {
	_, err := j.cron.AddFunc(j.spec, func() {
		j.sweep(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Dispatch sweep job started", "schedule", j.spec)
	return nil
}

// Stop stops the sweep job.
func (j *DispatchSweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Dispatch sweep job stopped")
}

func (j *DispatchSweepJob) sweep(ctx context.Context) {
	uow := j.uowFactory.Create()

	awaiting, err := uow.OrderRepository().ListAwaitingDispatch(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Dispatch sweep failed", "error", err)
		return
	}

	submitted := 0
	for _, aggregate := range awaiting {
		if j.queue.Submit(aggregate.ID()) {
			submitted++
		}
	}

	if submitted > 0 {
		j.logger.InfoContext(ctx, "Dispatch sweep submitted orders",
			"awaiting", len(awaiting), "submitted", submitted)
	}
}
