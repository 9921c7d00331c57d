// Package jobs provides scheduled background tasks for the dispatch system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations around the order backlog.
//
// # Available Jobs
//
// 1. DispatchBacklogJob - Samples the pending-order backlog every 30 seconds
// and logs how many orders are still waiting for a partner
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(pendingOrdersHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The backlog job is read-only. Query failures are logged and the next tick
// retries; a failed job start stops the application at boot.
package jobs
