package transport

import (
	"errors"

	"recycling/internal/core/domain/model/kernel"
	"recycling/internal/pkg/errs"
	"recycling/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrCategoryIsNotConstructed indicates that a Category was not created
// through the NewCategory constructor.
var ErrCategoryIsNotConstructed = errors.New(
	"Category must be created via NewCategory constructor")

// Category is one line of a shipment's item manifest: a category key with
// the staged weight and value being moved. Manifest lines are inserted
// atomically with their order and are immutable afterwards.
type Category struct { //nolint:recvcheck //using for validation
	category string
	weight   kernel.Weight
	value    decimal.Decimal

	guard guard.ConstructorGuard
}

// NewCategory creates a manifest line. The category key must be non-empty,
// the weight valid and the value not negative.
func NewCategory(category string, weight kernel.Weight, value decimal.Decimal) (Category, error) {
	c := Category{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setCategory(category),
		c.setWeight(weight),
		c.setValue(value),
	); err != nil {
		return Category{}, err
	}

	return c, nil
}

// Validate ensures the Category was created through NewCategory.
func (c Category) Validate() error {
	return c.guard.Validate(ErrCategoryIsNotConstructed)
}

// Category returns the category key.
func (c Category) Category() string {
	return c.category
}

// Weight returns the staged weight of the line.
func (c Category) Weight() kernel.Weight {
	return c.weight
}

// Value returns the monetary value of the line.
func (c Category) Value() decimal.Decimal {
	return c.value
}

func (c *Category) setCategory(category string) error {
	if category == "" {
		return errs.NewValueIsRequiredError("category")
	}
	c.category = category
	return nil
}

func (c *Category) setWeight(weight kernel.Weight) error {
	if err := weight.Validate(); err != nil {
		return err
	}
	c.weight = weight
	return nil
}

func (c *Category) setValue(value decimal.Decimal) error {
	if value.IsNegative() {
		return errs.NewValueIsInvalidError("value")
	}
	c.value = value
	return nil
}
