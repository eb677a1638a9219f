package commands

import (
	"context"
	"log/slog"

	"recycling/internal/core/domain/model/kernel"
	"recycling/internal/core/ports"
)

// notifications wraps the notification sink with the best-effort contract:
// every delivery error is logged and swallowed, so a flaky sink can never
// fail a committed business operation. Handlers call it after Commit only.
type notifications struct {
	notifier ports.Notifier
	logger   *slog.Logger
}

func newNotifications(notifier ports.Notifier, logger *slog.Logger) notifications {
	if logger == nil {
		logger = slog.Default()
	}
	return notifications{
		notifier: notifier,
		logger:   logger,
	}
}

func (n notifications) send(ctx context.Context, kind ports.TargetKind, targetID kernel.UUID, title, body string, related ...kernel.UUID) {
	if n.notifier == nil {
		return
	}
	if err := n.notifier.Notify(ctx, kind, targetID, title, body, related...); err != nil {
		n.logger.Warn("notification delivery failed",
			"target_kind", kind.String(),
			"target_id", targetID.String(),
			"title", title,
			"error", err)
	}
}

func (n notifications) broadcast(ctx context.Context, kind ports.TargetKind, title, body string) {
	if n.notifier == nil {
		return
	}
	if err := n.notifier.NotifyAll(ctx, kind, title, body); err != nil {
		n.logger.Warn("notification broadcast failed",
			"target_kind", kind.String(),
			"title", title,
			"error", err)
	}
}
