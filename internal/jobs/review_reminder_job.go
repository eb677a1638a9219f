package jobs

import (
	"context"
	"log/slog"
	"time"

	"recycling/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// ReviewReminderJob periodically reminds users to review a completed pickup.
// Each tick marks and notifies every appointment completed longer ago than
// the configured delay that has not been reminded yet.
type ReviewReminderJob struct {
	handler commands.SendReviewRemindersCommandHandler
	delay   time.Duration
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewReviewReminderJob creates a job that sends review reminders for
// appointments completed at least delay ago.
func NewReviewReminderJob(
	handler commands.SendReviewRemindersCommandHandler,
	delay time.Duration,
	logger *slog.Logger,
) *ReviewReminderJob {
	return &ReviewReminderJob{
		handler: handler,
		delay:   delay,
		cron:    cron.New(),
		logger:  logger.With("component", "review_reminder_job"),
	}
}

// Start begins the review reminder job to run every minute.
func (j *ReviewReminderJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		cmd, err := commands.NewSendReviewRemindersCommand(time.Now().Add(-j.delay))
		if err != nil {
			j.logger.ErrorContext(ctx, "Review reminder command rejected", "error", err)
			return
		}

		reminded, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Review reminder job failed", "error", err)
			return
		}

		if reminded > 0 {
			j.logger.InfoContext(ctx, "Review reminders sent", "count", reminded)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Review reminder job started (running every minute)",
		"delay", j.delay.String())
	return nil
}

// Stop stops the review reminder job.
func (j *ReviewReminderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Review reminder job stopped")
}
