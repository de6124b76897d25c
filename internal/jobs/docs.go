// Package jobs provides scheduled background tasks for the order queue.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic maintenance the service needs.
//
// # Available Jobs
//
// 1. PurgeServedOrdersJob - Runs hourly to delete served orders that have aged past the retention window
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(purgeHandler, 24*time.Hour, logger)
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
// The purge job uses the cron expression "0 0 * * * *" which fires at the
// top of every hour. Served orders stay visible for same-day exports, so
// there is no need to purge more aggressively than that.
//
// # Error Handling
//
// Purge failures are logged and retried on the next tick; a missed purge
// only delays cleanup, it never loses data.
package jobs
