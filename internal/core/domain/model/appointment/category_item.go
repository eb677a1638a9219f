package appointment

import (
	"errors"

	"recycling/internal/core/domain/model/kernel"
	"recycling/internal/pkg/errs"
	"recycling/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrCategoryItemIsNotConstructed indicates that a CategoryItem was not
// created through the NewCategoryItem constructor.
var ErrCategoryItemIsNotConstructed = errors.New(
	"CategoryItem must be created via NewCategoryItem constructor")

// CategoryItem is one category line of an appointment: what kind of
// recyclable the user is handing over, how much of it, and the user's
// free-form answers to the category questionnaire.
//
// CategoryItem is an immutable value object.
type CategoryItem struct { //nolint:recvcheck //using for validation
	category string
	answers  string
	weight   kernel.Weight
	value    decimal.Decimal

	guard guard.ConstructorGuard
}

// NewCategoryItem creates a category line item.
// The category key must be non-empty and the weight must be a valid Weight.
// Answers are free-form and may be empty. Value is the estimated payout for
// the line and must not be negative.
func NewCategoryItem(category, answers string, weight kernel.Weight, value decimal.Decimal) (CategoryItem, error) {
	item := CategoryItem{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setCategory(category),
		item.setAnswers(answers),
		item.setWeight(weight),
		item.setValue(value),
	); err != nil {
		return CategoryItem{}, err
	}

	return item, nil
}

// Validate ensures the item was created through NewCategoryItem.
func (i CategoryItem) Validate() error {
	return i.guard.Validate(ErrCategoryItemIsNotConstructed)
}

// Category returns the category key, e.g. "paper" or "metal".
func (i CategoryItem) Category() string {
	return i.category
}

// Answers returns the free-form questionnaire answers for the line.
func (i CategoryItem) Answers() string {
	return i.answers
}

// Weight returns the declared weight of the line.
func (i CategoryItem) Weight() kernel.Weight {
	return i.weight
}

// Value returns the estimated payout for the line.
func (i CategoryItem) Value() decimal.Decimal {
	return i.value
}

func (i *CategoryItem) setCategory(category string) error {
	if category == "" {
		return errs.NewValueIsRequiredError("category")
	}
	i.category = category
	return nil
}

func (i *CategoryItem) setAnswers(answers string) error {
	i.answers = answers
	return nil
}

func (i *CategoryItem) setWeight(weight kernel.Weight) error {
	if err := weight.Validate(); err != nil {
		return err
	}
	i.weight = weight
	return nil
}

func (i *CategoryItem) setValue(value decimal.Decimal) error {
	if value.IsNegative() {
		return errs.NewValueIsInvalidError("value")
	}
	i.value = value
	return nil
}
