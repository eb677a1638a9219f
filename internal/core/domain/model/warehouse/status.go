package warehouse

import (
	"fmt"

	"recycling/internal/pkg/errs"
)

// Status represents the lifecycle state of a warehouse receipt.
// The machine is deliberately small: Pending -> Processed, nothing else.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusPending is the initial status of a created receipt; the
	// shipment has arrived but its contents are not yet durable stock.
	StatusPending

	// StatusProcessed indicates the receipt's line items were posted to
	// warehouse inventory. Terminal.
	StatusProcessed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "Unknown",
		StatusPending:   "Pending",
		StatusProcessed: "Processed",
	}
}

// Validate checks if the Status value is one of the defined states.
func (s Status) Validate() error {
	if s != StatusPending && s != StatusProcessed {
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

// Process transitions the status to Processed.
// Only a Pending receipt can be processed, exactly once.
func (s Status) Process() (Status, error) {
	if s != StatusPending {
		return 0, errs.NewStateIsInvalidErrorWithCause("status",
			fmt.Errorf("status is %s, not pending", s))
	}
	return StatusProcessed, nil
}
