// Package jobs provides scheduled background tasks for the laundry platform.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations the request path cannot.
//
// # Available Jobs
//
// 1. PromotionExpiryJob - Runs every minute to deactivate promotions whose
// validity window has passed, so expired codes stop applying to new orders
// without waiting for a redemption attempt to notice.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(expirePromotionsHandler, logger)
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
// The expiry job uses the cron expression "0 * * * * *" (with seconds field),
// firing at the top of every minute. Promotion validity is tracked at wall
// clock granularity, so a sweep per minute keeps the active set accurate
// without measurable load.
//
// # Error Handling
//
// Sweep failures are logged and retried on the next tick; the sweep is
// idempotent, so a failed run leaves nothing to repair.
package jobs
