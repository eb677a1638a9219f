package transport

import (
	"fmt"

	"recycling/internal/pkg/errs"
)

// Stage is the position of an in-transit shipment within the fixed
// physical handoff sequence:
//
//	ConfirmPickup -> ArrivePickup -> LoadingComplete -> ConfirmDelivery -> ArriveDelivery
//
// A stage is only meaningful while the order status is InTransit and
// advances monotonically; completion is only possible from ArriveDelivery.
type Stage int

const (
	// StageUnknown represents an invalid or undefined stage.
	StageUnknown Stage = iota

	// StageConfirmPickup: the transporter confirmed they are heading to the
	// recycler's staging point. First stage, entered when transit begins.
	StageConfirmPickup

	// StageArrivePickup: the transporter arrived at the staging point.
	StageArrivePickup

	// StageLoadingComplete: staged goods are on the vehicle. Entering this
	// stage clears the recycler's staging inventory.
	StageLoadingComplete

	// StageConfirmDelivery: the transporter confirmed departure towards
	// the processing base.
	StageConfirmDelivery

	// StageArriveDelivery: the vehicle arrived at the base. Terminal stage;
	// the order can now complete.
	StageArriveDelivery
)

func getStageStrings() map[Stage]string {
	return map[Stage]string{
		StageUnknown:         "Unknown",
		StageConfirmPickup:   "ConfirmPickup",
		StageArrivePickup:    "ArrivePickup",
		StageLoadingComplete: "LoadingComplete",
		StageConfirmDelivery: "ConfirmDelivery",
		StageArriveDelivery:  "ArriveDelivery",
	}
}

// Validate checks if the Stage value is one of the defined stages.
func (s Stage) Validate() error {
	if s < StageConfirmPickup || s > StageArriveDelivery {
		return errs.NewValueIsInvalidErrorWithCause("stage",
			fmt.Errorf("%d is not a valid stage", s))
	}
	return nil
}

// String returns the human-readable name of the stage.
func (s Stage) String() string {
	if str, ok := getStageStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Previous returns the stage that must be current for this stage to be
// entered, and false for the first stage, which is entered from the
// Accepted status rather than from another stage.
func (s Stage) Previous() (Stage, bool) {
	if s <= StageConfirmPickup || s > StageArriveDelivery {
		return StageUnknown, false
	}
	return s - 1, true
}

// IsTerminal reports whether this is the last stage of the sequence.
func (s Stage) IsTerminal() bool {
	return s == StageArriveDelivery
}

// ClearsStaging reports whether entering this stage clears the originating
// recycler's staging inventory. Goods on the vehicle must no longer be
// counted as staged.
func (s Stage) ClearsStaging() bool {
	return s == StageLoadingComplete
}
