// Package jobs provides scheduled background tasks for the pickup workflow.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. ReviewReminderJob - Runs every minute to nudge users whose pickup was
// completed some time ago and who have not been reminded to leave a review.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(sendReviewRemindersHandler, reminderDelay, logger)
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
// The reminder job logs failures and retries on the next tick; each
// appointment is reminded at most once, so a late tick never duplicates.
package jobs
