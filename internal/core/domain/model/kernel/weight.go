package kernel

import (
	"fmt"
	"math"

	"recycling/internal/pkg/errs"
	"recycling/internal/pkg/guard"
)

// ErrWeightIsNotConstructed is returned when attempting to use an improperly initialized Weight.
// Weights must be created via the NewWeight constructor to ensure validity.
var ErrWeightIsNotConstructed = errs.NewValueIsRequiredError(
	"weight must be created via NewWeight constructor")

// Weight represents a mass in kilograms.
// Weight is an immutable value object: zero is valid, negative and
// non-finite values are not. The zero value of the struct is invalid
// and will fail validation - use NewWeight to create instances.
//
// Example:
//
//	w, err := kernel.NewWeight(42.5)
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(w) // Output: 42.5 kg
type Weight struct { //nolint:recvcheck //using for validation
	kg    float64
	guard guard.ConstructorGuard
}

// NewWeight creates a Weight from a kilogram amount.
// The amount must be finite and not negative.
func NewWeight(kg float64) (Weight, error) {
	if math.IsNaN(kg) || math.IsInf(kg, 0) {
		return Weight{}, errs.NewValueIsInvalidErrorWithCause("weight",
			fmt.Errorf("%v is not a finite number", kg))
	}
	if kg < 0 {
		return Weight{}, errs.NewValueIsInvalidErrorWithCause("weight",
			fmt.Errorf("%v is negative", kg))
	}

	return Weight{
		kg:    kg,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Kg returns the weight in kilograms.
func (w Weight) Kg() float64 {
	return w.kg
}

// IsPositive reports whether the weight is strictly greater than zero.
func (w Weight) IsPositive() bool {
	return w.kg > 0
}

// Add returns the sum of two weights.
func (w Weight) Add(other Weight) (Weight, error) {
	if err := w.Validate(); err != nil {
		return Weight{}, err
	}
	if err := other.Validate(); err != nil {
		return Weight{}, err
	}
	return NewWeight(w.kg + other.kg)
}

// Scale returns the weight multiplied by a non-negative factor.
func (w Weight) Scale(factor float64) (Weight, error) {
	if err := w.Validate(); err != nil {
		return Weight{}, err
	}
	return NewWeight(w.kg * factor)
}

// IsEqual compares two weights for exact equality.
func (w Weight) IsEqual(other Weight) bool {
	return w.kg == other.kg
}

// String returns the weight formatted for display, e.g. "42.5 kg".
func (w Weight) String() string {
	return fmt.Sprintf("%g kg", w.kg)
}

// Validate checks that the weight was created via NewWeight.
func (w Weight) Validate() error {
	return w.guard.Validate(ErrWeightIsNotConstructed)
}
