package ports

import (
	"context"
	"fmt"

	"recycling/internal/core/domain/model/kernel"

	"recycling/internal/pkg/errs"
)

// TargetKind identifies the actor pool a notification is addressed to.
type TargetKind int

const (
	// TargetUnknown represents an invalid or undefined target kind.
	TargetUnknown TargetKind = iota

	// TargetUser addresses the user who submitted an appointment.
	TargetUser

	// TargetRecycler addresses a recycler.
	TargetRecycler

	// TargetTransporter addresses a transporter.
	TargetTransporter

	// TargetBaseStaff addresses the processing-base staff pool.
	TargetBaseStaff
)

func getTargetKindStrings() map[TargetKind]string {
	return map[TargetKind]string{
		TargetUnknown:     "Unknown",
		TargetUser:        "user",
		TargetRecycler:    "recycler",
		TargetTransporter: "transporter",
		TargetBaseStaff:   "base_staff",
	}
}

// Validate checks if the TargetKind is one of the defined kinds.
func (k TargetKind) Validate() error {
	if k < TargetUser || k > TargetBaseStaff {
		return errs.NewValueIsInvalidErrorWithCause("targetKind",
			fmt.Errorf("%d is not a valid target kind", k))
	}
	return nil
}

// String returns the wire name of the target kind.
func (k TargetKind) String() string {
	if str, ok := getTargetKindStrings()[k]; ok {
		return str
	}
	return "Unknown"
}

// Notifier is the fire-and-forget delivery contract for user-facing and
// staff-facing messages. Delivery is best-effort: callers log and swallow
// returned errors, because business-state correctness must never depend on
// notification delivery.
type Notifier interface {
	// Notify delivers a message to one actor, optionally referencing the
	// workflow entities the message is about.
	Notify(ctx context.Context, kind TargetKind, targetID kernel.UUID, title, body string, related ...kernel.UUID) error

	// NotifyAll broadcasts a message to every actor of a kind, e.g. the
	// base staff pool.
	NotifyAll(ctx context.Context, kind TargetKind, title, body string) error
}
