package services

import (
	"errors"
	"fmt"

	"recycling/internal/core/domain/model/appointment"
	"recycling/internal/core/domain/model/kernel"
	"recycling/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrNothingToAllocate indicates an allocation was requested over an empty
// item list.
var ErrNothingToAllocate = errors.New("no category items to allocate weight across")

// Allocation is one category's share of an appointment's weight, ready to
// become a staging inventory posting.
type Allocation struct {
	Category string
	Weight   kernel.Weight
	Value    decimal.Decimal
}

// WeightAllocator proportions an appointment's weight across its category
// line items. When a pickup is completed the recycler may record an actual
// weighed total differing from the user's estimates; staging inventory must
// then reflect the measured total, split across categories in the same
// proportions the user declared.
type WeightAllocator struct{}

// NewWeightAllocator creates a WeightAllocator.
func NewWeightAllocator() WeightAllocator {
	return WeightAllocator{}
}

// Allocate returns one allocation per category item.
//
// With a nil actual weight each item keeps its declared weight. With an
// actual weight, declared weights are scaled by actual/declared-total so the
// allocations sum to the measured value. Line values pass through unscaled;
// payout corrections are a settlement concern, not an inventory one.
func (WeightAllocator) Allocate(items []appointment.CategoryItem, actual *kernel.Weight) ([]Allocation, error) {
	if len(items) == 0 {
		return nil, ErrNothingToAllocate
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}

	factor := 1.0
	if actual != nil {
		if err := actual.Validate(); err != nil {
			return nil, err
		}

		declaredTotal := 0.0
		for _, item := range items {
			declaredTotal += item.Weight().Kg()
		}
		if declaredTotal <= 0 {
			return nil, errs.NewValueIsInvalidErrorWithCause("items",
				fmt.Errorf("declared weights sum to %g, cannot proportion %s", declaredTotal, actual))
		}
		factor = actual.Kg() / declaredTotal
	}

	allocations := make([]Allocation, 0, len(items))
	for _, item := range items {
		weight, err := item.Weight().Scale(factor)
		if err != nil {
			return nil, err
		}
		allocations = append(allocations, Allocation{
			Category: item.Category(),
			Weight:   weight,
			Value:    item.Value(),
		})
	}

	return allocations, nil
}
