package inventory

import (
	"errors"
	"fmt"
	"time"

	"recycling/internal/core/domain/model/kernel"
	"recycling/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Scope says whose books an inventory posting belongs to.
type Scope int

const (
	// ScopeUnknown represents an invalid or undefined scope.
	ScopeUnknown Scope = iota

	// ScopeStaging is inventory held by a recycler: collected from users
	// but not yet shipped. Staging postings are logically cleared when
	// their goods depart on a transportation order.
	ScopeStaging

	// ScopeWarehouse is durable inventory received at the processing base.
	// Warehouse postings are never cleared.
	ScopeWarehouse
)

func getScopeStrings() map[Scope]string {
	return map[Scope]string{
		ScopeUnknown:   "Unknown",
		ScopeStaging:   "Staging",
		ScopeWarehouse: "Warehouse",
	}
}

// Validate checks if the Scope is one of the defined scopes.
func (s Scope) Validate() error {
	if s != ScopeStaging && s != ScopeWarehouse {
		return errs.NewValueIsInvalidErrorWithCause("scope",
			fmt.Errorf("%d is not a valid scope", s))
	}
	return nil
}

// String returns the human-readable name of the scope.
func (s Scope) String() string {
	if str, ok := getScopeStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ErrPostingIsNotConstructed is returned when a Posting was not created
// through one of its constructors.
var ErrPostingIsNotConstructed = errors.New(
	"Posting must be created via NewStagingPosting, NewWarehousePosting or RestorePosting constructor")

// Posting is one append-only line of the inventory ledger: a weight and
// value of one category, booked to either a recycler's staging scope or
// the warehouse-global scope, traceable to the appointment or receipt
// that produced it.
//
// Postings are never updated or deleted; aggregates are computed by
// summation. The only post-hoc mark a staging posting ever receives is the
// logical clear timestamp set when its goods leave on a shipment, which
// removes it from staging totals without touching the row's substance.
type Posting struct {
	id         kernel.UUID
	scope      Scope
	ownerID    *kernel.UUID
	category   string
	weight     kernel.Weight
	price      decimal.Decimal
	sourceID   kernel.UUID
	recordedAt time.Time
	clearedAt  *time.Time

	isConstructed bool
}

// NewStagingPosting books weight into a recycler's staging scope.
// sourceID is the appointment the goods came from.
func NewStagingPosting(
	id kernel.UUID,
	recyclerID kernel.UUID,
	category string,
	weight kernel.Weight,
	price decimal.Decimal,
	sourceID kernel.UUID,
	now time.Time,
) (*Posting, error) {
	if err := recyclerID.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("recyclerID", err)
	}

	p, err := newPosting(id, ScopeStaging, category, weight, price, sourceID, now)
	if err != nil {
		return nil, err
	}
	p.ownerID = &recyclerID
	return p, nil
}

// NewWarehousePosting books weight into the warehouse-global scope.
// sourceID is the warehouse receipt the goods arrived under.
func NewWarehousePosting(
	id kernel.UUID,
	category string,
	weight kernel.Weight,
	price decimal.Decimal,
	sourceID kernel.UUID,
	now time.Time,
) (*Posting, error) {
	return newPosting(id, ScopeWarehouse, category, weight, price, sourceID, now)
}

// RestorePosting reconstructs a ledger line from persistence.
func RestorePosting(
	id kernel.UUID,
	scope Scope,
	ownerID *kernel.UUID,
	category string,
	weight kernel.Weight,
	price decimal.Decimal,
	sourceID kernel.UUID,
	recordedAt time.Time,
	clearedAt *time.Time,
) (*Posting, error) {
	if err := scope.Validate(); err != nil {
		return nil, err
	}
	if scope == ScopeStaging && ownerID == nil {
		return nil, errs.NewValueIsRequiredError("ownerID")
	}
	if ownerID != nil {
		if err := ownerID.Validate(); err != nil {
			return nil, err
		}
	}

	p, err := newPosting(id, scope, category, weight, price, sourceID, recordedAt)
	if err != nil {
		return nil, err
	}
	p.ownerID = ownerID
	p.clearedAt = clearedAt
	return p, nil
}

func newPosting(
	id kernel.UUID,
	scope Scope,
	category string,
	weight kernel.Weight,
	price decimal.Decimal,
	sourceID kernel.UUID,
	recordedAt time.Time,
) (*Posting, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if category == "" {
		return nil, errs.NewValueIsRequiredError("category")
	}
	if err := weight.Validate(); err != nil {
		return nil, err
	}
	if price.IsNegative() {
		return nil, errs.NewValueIsInvalidError("price")
	}
	if err := sourceID.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("sourceID", err)
	}

	return &Posting{
		id:            id,
		scope:         scope,
		category:      category,
		weight:        weight,
		price:         price,
		sourceID:      sourceID,
		recordedAt:    recordedAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Posting instance was properly constructed.
func (p *Posting) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPostingIsNotConstructed
	}
	return nil
}

// ID returns the posting's unique identifier.
func (p *Posting) ID() kernel.UUID {
	return p.id
}

// Scope returns whose books the posting belongs to.
func (p *Posting) Scope() Scope {
	return p.scope
}

// Owner returns the recycler owning a staging posting, nil for warehouse scope.
func (p *Posting) Owner() *kernel.UUID {
	return p.ownerID
}

// Category returns the category key of the posted goods.
func (p *Posting) Category() string {
	return p.category
}

// Weight returns the posted weight.
func (p *Posting) Weight() kernel.Weight {
	return p.weight
}

// Price returns the posted monetary value.
func (p *Posting) Price() decimal.Decimal {
	return p.price
}

// SourceID returns the appointment or receipt the posting traces back to.
func (p *Posting) SourceID() kernel.UUID {
	return p.sourceID
}

// RecordedAt returns when the posting was booked.
func (p *Posting) RecordedAt() time.Time {
	return p.recordedAt
}

// ClearedAt returns when a staging posting was logically cleared,
// or nil if it is still counted.
func (p *Posting) ClearedAt() *time.Time {
	return p.clearedAt
}

// IsCleared reports whether the posting has been logically cleared.
func (p *Posting) IsCleared() bool {
	return p.clearedAt != nil
}
