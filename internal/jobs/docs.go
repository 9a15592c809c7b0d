// Package jobs provides scheduled background tasks for the food delivery
// system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the ordering service.
//
// # Available Jobs
//
// 1. RiderDispatchJob - Runs every second to match unassigned orders with
// available riders
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(dispatchRiderHandler, logger)
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
// The dispatch job uses the cron expression "* * * * * *", running every
// second so placed orders pick up a rider with minimal delay.
//
// # Error Handling
//
// The dispatch job ignores expected business errors (no unassigned orders,
// no available riders) and logs everything else.
package jobs
