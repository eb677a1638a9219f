// Package recycler contains the minimal recycler aggregate the workflow
// needs: identity and the availability flag gating appointment acceptance.
// The rest of recycler administration lives outside this core.
package recycler

import (
	"errors"

	"recycling/internal/core/domain/model/kernel"
	"recycling/internal/pkg/errs"
)

// ErrRecyclerIsNotConstructed is returned when a Recycler was not created
// through NewRecycler or RestoreRecycler.
var ErrRecyclerIsNotConstructed = errors.New(
	"Recycler must be created via NewRecycler or RestoreRecycler constructor")

// Recycler is a collector who accepts pickup appointments and stages the
// collected goods until they ship.
type Recycler struct {
	id        kernel.UUID
	name      string
	available bool

	isConstructed bool
}

// NewRecycler creates an available recycler.
func NewRecycler(id kernel.UUID, name string) (*Recycler, error) {
	return RestoreRecycler(id, name, true)
}

// RestoreRecycler reconstructs a recycler from persistence.
func RestoreRecycler(id kernel.UUID, name string, available bool) (*Recycler, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	return &Recycler{
		id:            id,
		name:          name,
		available:     available,
		isConstructed: true,
	}, nil
}

// Validate ensures the Recycler instance was properly constructed.
func (r *Recycler) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRecyclerIsNotConstructed
	}
	return nil
}

// ID returns the recycler's unique identifier.
func (r *Recycler) ID() kernel.UUID {
	return r.id
}

// Name returns the recycler's display name.
func (r *Recycler) Name() string {
	return r.name
}

// IsAvailable reports whether the recycler is open for new appointments.
// Accepting an appointment does not toggle this; it is a separate business
// switch managed outside the workflow.
func (r *Recycler) IsAvailable() bool {
	return r.available
}

// SetAvailable flips the intake switch.
func (r *Recycler) SetAvailable(available bool) {
	r.available = available
}
