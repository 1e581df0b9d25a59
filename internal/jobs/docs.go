// Package jobs provides scheduled background tasks for the point-of-sale
// system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for partner order dispatch.
//
// # Available Jobs
//
// 1. DispatchSweepJob - Periodically scans for delivery-partner orders still
// awaiting dispatch and submits them to the dispatch queue. The sweep is a
// safety net behind the creation-time trigger: orders normally enter the
// queue the moment they are committed, and the sweep only catches ones whose
// trigger was lost to a crash or that were inserted outside the running
// process.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(uowFactory, dispatchQueue, sweepSeconds, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Sweep failures are logged and the next tick retries; a failed scan never
// stops the schedule.
package jobs
