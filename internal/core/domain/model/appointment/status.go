package appointment

import (
	"fmt"

	"recycling/internal/pkg/errs"
)

// Status represents the lifecycle state of a pickup appointment.
// It implements a state machine with defined transitions:
//
//	Pending ──┬──> InProgress ──┬──> Completed
//	          │                 └──> CancelledByRecyclerRollback
//	          └──> Cancelled (user-initiated, before acceptance)
//
// Completed, Cancelled and CancelledByRecyclerRollback are terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Pending is the initial status of a user-submitted appointment,
	// waiting for a recycler to accept it.
	Pending

	// InProgress indicates a recycler has accepted the appointment
	// and the pickup is being negotiated.
	InProgress

	// Completed indicates the pickup was finished and its items were
	// posted to the recycler's staging inventory. Terminal.
	Completed

	// Cancelled indicates the owning user cancelled the appointment
	// before it was accepted. Terminal.
	Cancelled

	// CancelledByRecyclerRollback indicates the assigned recycler backed
	// out of an accepted appointment. Terminal.
	CancelledByRecyclerRollback
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:                     "Unknown",
		Pending:                     "Pending",
		InProgress:                  "InProgress",
		Completed:                   "Completed",
		Cancelled:                   "Cancelled",
		CancelledByRecyclerRollback: "CancelledByRecyclerRollback",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:                     "Pending",
		InProgress:                  "InProgress",
		Completed:                   "Completed",
		Cancelled:                   "Cancelled",
		CancelledByRecyclerRollback: "CancelledByRecyclerRollback",
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
// Implements fmt.Stringer and is safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transitions are allowed.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled || s == CancelledByRecyclerRollback
}

// RequiresRecycler reports whether the status implies an assigned recycler.
// The appointment invariant is: RecyclerID is non-nil iff the status is one
// of InProgress, Completed or CancelledByRecyclerRollback.
func (s Status) RequiresRecycler() bool {
	return s == InProgress || s == Completed || s == CancelledByRecyclerRollback
}

// Accept transitions the status to InProgress.
// Only a Pending appointment can be accepted.
func (s Status) Accept() (Status, error) {
	if s != Pending {
		return 0, errs.NewStateIsInvalidErrorWithCause("status",
			fmt.Errorf("status is %s, cannot accept", s))
	}
	return InProgress, nil
}

// Cancel transitions the status to Cancelled.
// Only a Pending appointment is cancellable by its owner.
func (s Status) Cancel() (Status, error) {
	if s != Pending {
		return 0, errs.NewStateIsInvalidErrorWithCause("status",
			fmt.Errorf("status is %s, not cancellable", s))
	}
	return Cancelled, nil
}

// Rollback transitions the status to CancelledByRecyclerRollback.
// Only an InProgress appointment can be rolled back by its recycler.
func (s Status) Rollback() (Status, error) {
	if s != InProgress {
		return 0, errs.NewStateIsInvalidErrorWithCause("status",
			fmt.Errorf("status is %s, cannot roll back", s))
	}
	return CancelledByRecyclerRollback, nil
}

// Complete transitions the status to Completed.
// Only an InProgress appointment can be completed.
func (s Status) Complete() (Status, error) {
	if s != InProgress {
		return 0, errs.NewStateIsInvalidErrorWithCause("status",
			fmt.Errorf("status is %s, cannot complete", s))
	}
	return Completed, nil
}
