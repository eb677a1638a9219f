package transport

import (
	"fmt"

	"recycling/internal/pkg/errs"
)

// Status represents the lifecycle state of a transportation order.
//
//	Pending ──> Accepted ──> InTransit ──> Completed
//
// Cancelled is a terminal side exit kept for historical records.
// While InTransit the order additionally carries a Stage; see stage.go.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusPending is the initial status of a freshly created shipment,
	// waiting for its transporter to accept the job.
	StatusPending

	// StatusAccepted indicates the assigned transporter has taken the job
	// but has not started the physical handoff yet.
	StatusAccepted

	// StatusInTransit indicates the multi-stage physical handoff is running.
	StatusInTransit

	// StatusCompleted indicates the shipment was delivered. Terminal.
	StatusCompleted

	// StatusCancelled indicates the shipment was called off. Terminal.
	StatusCancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "Unknown",
		StatusPending:   "Pending",
		StatusAccepted:  "Accepted",
		StatusInTransit: "InTransit",
		StatusCompleted: "Completed",
		StatusCancelled: "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPending:   "Pending",
		StatusAccepted:  "Accepted",
		StatusInTransit: "InTransit",
		StatusCompleted: "Completed",
		StatusCancelled: "Cancelled",
	}
}

// Validate checks if the Status value is one of the defined states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Accept transitions the status to Accepted.
// Only a Pending order can be accepted by its transporter.
func (s Status) Accept() (Status, error) {
	if s != StatusPending {
		return 0, errs.NewStateIsInvalidErrorWithCause("status",
			fmt.Errorf("status is %s, cannot accept", s))
	}
	return StatusAccepted, nil
}

// BeginTransit transitions the status to InTransit.
// Only an Accepted order can start the handoff protocol.
func (s Status) BeginTransit() (Status, error) {
	if s != StatusAccepted {
		return 0, errs.NewStateIsInvalidErrorWithCause("status",
			fmt.Errorf("status is %s, cannot confirm pickup", s))
	}
	return StatusInTransit, nil
}

// Complete transitions the status to Completed.
// Only an InTransit order can complete; the stage guard is enforced by the
// Order aggregate on top of this.
func (s Status) Complete() (Status, error) {
	if s != StatusInTransit {
		return 0, errs.NewStateIsInvalidErrorWithCause("status",
			fmt.Errorf("status is %s, cannot complete", s))
	}
	return StatusCompleted, nil
}
