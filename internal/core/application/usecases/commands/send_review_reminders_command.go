package commands

import (
	"errors"
	"time"

	"recycling/internal/pkg/guard"
)

var (
	ErrSendReviewRemindersCommandIsNotConstructed = errors.New(
		"SendReviewRemindersCommand must be created via NewSendReviewRemindersCommand constructor",
	)
	ErrCutoffIsRequired = errors.New("cutoff time is required")
)

// SendReviewRemindersCommand triggers the review reminder sweep: every
// appointment completed before the cutoff whose reminder is still unsent
// gets one. Runs on a schedule.
type SendReviewRemindersCommand struct { //nolint:recvcheck //using for validation
	completedBefore time.Time

	guard guard.ConstructorGuard
}

// NewSendReviewRemindersCommand creates a command to sweep for due review
// reminders. The cutoff is typically now minus the configured reminder delay.
func NewSendReviewRemindersCommand(completedBefore time.Time) (SendReviewRemindersCommand, error) {
	cmd := SendReviewRemindersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setCompletedBefore(completedBefore); err != nil {
		return SendReviewRemindersCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SendReviewRemindersCommand) Validate() error {
	return c.guard.Validate(ErrSendReviewRemindersCommandIsNotConstructed)
}

// CompletedBefore returns the completion-time cutoff for the sweep.
func (c SendReviewRemindersCommand) CompletedBefore() time.Time {
	return c.completedBefore
}

func (c *SendReviewRemindersCommand) setCompletedBefore(cutoff time.Time) error {
	if cutoff.IsZero() {
		return ErrCutoffIsRequired
	}

	c.completedBefore = cutoff
	return nil
}
