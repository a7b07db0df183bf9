// Package jobs provides scheduled background tasks for the ordering system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic housekeeping required by the ordering service.
//
// # Available Jobs
//
// 1. CartJanitorJob - Runs hourly to purge cart lines left untouched longer
// than the configured idle window
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(purgeCartsHandler, cartIdleFor, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The janitor uses the cron expression "0 0 * * * *" and runs at the top of
// every hour. Abandoned carts accumulate slowly, so an hourly sweep is more
// than enough.
//
// # Error Handling
//
// - Janitor failures are logged and retried on the next tick
// - Failed job starts will stop any already running jobs
package jobs
