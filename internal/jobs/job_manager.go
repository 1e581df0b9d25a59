package jobs

import (
	"fmt"
	"log/slog"

	"pos/internal/core/application/usecases/commands"
	"pos/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	dispatchSweepJob *DispatchSweepJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	uowFactory commands.OrderUoWFactory,
	queue ports.DispatchQueue,
	sweepSeconds int,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		dispatchSweepJob: NewDispatchSweepJob(uowFactory, queue, sweepSeconds, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.dispatchSweepJob.Start(); err != nil {
		return fmt.Errorf("failed to start dispatch sweep job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.dispatchSweepJob.Stop()
}
