package appointment

import (
	"errors"
	"fmt"
	"time"

	"recycling/internal/core/domain/model/kernel"
	"recycling/internal/pkg/errs"
)

var (
	// ErrAppointmentIsNotConstructed is returned when an Appointment instance was not
	// created through NewAppointment or RestoreAppointment.
	ErrAppointmentIsNotConstructed = errors.New(
		"Appointment must be created via NewAppointment or RestoreAppointment constructor")

	// ErrNotAssignedRecycler indicates the caller is not the recycler
	// assigned to the appointment.
	ErrNotAssignedRecycler = errors.New("caller is not the assigned recycler")

	// ErrNotAppointmentOwner indicates the caller is not the user who
	// submitted the appointment.
	ErrNotAppointmentOwner = errors.New("caller is not the owning user")

	// ErrNoCategoryItems indicates an appointment was submitted without
	// any category line items.
	ErrNoCategoryItems = errors.New("appointment must have at least one category item")

	// ErrReviewReminderAlreadySent indicates the post-completion review
	// reminder was already delivered for the appointment.
	ErrReviewReminderAlreadySent = errors.New("review reminder already sent")
)

// DefaultRollbackReason is substituted when a recycler rolls back an
// appointment without giving a reason.
const DefaultRollbackReason = "the recycler is unable to carry out this pickup"

// Appointment is the aggregate root for a single user-submitted pickup
// request. It governs the request from creation to close.
//
// Appointment maintains these invariants:
//   - Must have a valid unique identifier and owning user
//   - Must carry at least one category line item
//   - RecyclerID is non-nil iff the status requires an assigned recycler
//     (InProgress, Completed, CancelledByRecyclerRollback)
//   - Status transitions follow the Pending/InProgress state machine
//   - Appointments are never physically deleted; terminal statuses close them
type Appointment struct {
	id              kernel.UUID
	userID          kernel.UUID
	recyclerID      *kernel.UUID
	status          Status
	estimatedWeight kernel.Weight
	actualWeight    *kernel.Weight
	items           []CategoryItem
	createdAt       time.Time
	updatedAt       time.Time
	remindedAt      *time.Time

	isConstructed bool
}

// NewAppointment creates a Pending appointment from a user submission.
// The estimated weight must be positive and at least one category item
// is required.
func NewAppointment(
	id kernel.UUID,
	userID kernel.UUID,
	estimatedWeight kernel.Weight,
	items []CategoryItem,
	now time.Time,
) (*Appointment, error) {
	a := &Appointment{
		status:        Pending,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		a.setID(id),
		a.setUserID(userID),
		a.setEstimatedWeight(estimatedWeight),
		a.setItems(items),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreAppointment reconstructs an appointment from persistence.
// It revalidates all invariants, including the status/recycler consistency rule.
func RestoreAppointment(
	id kernel.UUID,
	userID kernel.UUID,
	recyclerID *kernel.UUID,
	status Status,
	estimatedWeight kernel.Weight,
	actualWeight *kernel.Weight,
	items []CategoryItem,
	createdAt time.Time,
	updatedAt time.Time,
	remindedAt *time.Time,
) (*Appointment, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if status.RequiresRecycler() && recyclerID == nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("recyclerID",
			fmt.Errorf("status %s requires an assigned recycler", status))
	}
	if !status.RequiresRecycler() && recyclerID != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("recyclerID",
			fmt.Errorf("status %s must not have an assigned recycler", status))
	}
	if recyclerID != nil {
		if err := recyclerID.Validate(); err != nil {
			return nil, err
		}
	}
	if actualWeight != nil {
		if err := actualWeight.Validate(); err != nil {
			return nil, err
		}
	}

	a := &Appointment{
		status:        status,
		recyclerID:    recyclerID,
		actualWeight:  actualWeight,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		remindedAt:    remindedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		a.setID(id),
		a.setUserID(userID),
		a.setEstimatedWeight(estimatedWeight),
		a.setItems(items),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// Validate ensures the Appointment instance was properly constructed.
func (a *Appointment) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAppointmentIsNotConstructed
	}
	return nil
}

// IsEqual compares two appointments by their unique identifiers.
func (a *Appointment) IsEqual(other *Appointment) bool {
	return other != nil && a.id.IsEqual(other.id)
}

// ID returns the appointment's unique identifier.
func (a *Appointment) ID() kernel.UUID {
	return a.id
}

// UserID returns the owning user's identifier.
func (a *Appointment) UserID() kernel.UUID {
	return a.userID
}

// Recycler returns the assigned recycler's identifier,
// or nil if no recycler has accepted the appointment.
func (a *Appointment) Recycler() *kernel.UUID {
	return a.recyclerID
}

// Status returns the current lifecycle status.
func (a *Appointment) Status() Status {
	return a.status
}

// EstimatedWeight returns the weight declared at submission.
func (a *Appointment) EstimatedWeight() kernel.Weight {
	return a.estimatedWeight
}

// ActualWeight returns the weight measured at completion, or nil before that.
func (a *Appointment) ActualWeight() *kernel.Weight {
	return a.actualWeight
}

// Items returns a copy of the category line items.
func (a *Appointment) Items() []CategoryItem {
	items := make([]CategoryItem, len(a.items))
	copy(items, a.items)
	return items
}

// CreatedAt returns the submission time.
func (a *Appointment) CreatedAt() time.Time {
	return a.createdAt
}

// UpdatedAt returns the time of the last mutation.
func (a *Appointment) UpdatedAt() time.Time {
	return a.updatedAt
}

// ReviewRemindedAt returns when the post-completion review reminder was
// sent, or nil if it has not been sent.
func (a *Appointment) ReviewRemindedAt() *time.Time {
	return a.remindedAt
}

// Accept assigns a recycler to a Pending appointment and moves it to InProgress.
// The recycler's availability is a precondition checked by the caller, since
// availability lives on the recycler aggregate.
func (a *Appointment) Accept(recyclerID kernel.UUID, now time.Time) error {
	if err := recyclerID.Validate(); err != nil {
		return err
	}

	newStatus, err := a.status.Accept()
	if err != nil {
		return err
	}

	a.status = newStatus
	a.recyclerID = &recyclerID
	a.updatedAt = now
	return nil
}

// Cancel closes a Pending appointment at the owning user's request.
// Returns ErrNotAppointmentOwner if the caller does not own the appointment.
func (a *Appointment) Cancel(userID kernel.UUID, now time.Time) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	if !a.userID.IsEqual(userID) {
		return ErrNotAppointmentOwner
	}

	newStatus, err := a.status.Cancel()
	if err != nil {
		return err
	}

	a.status = newStatus
	a.updatedAt = now
	return nil
}

// Rollback closes an InProgress appointment at the assigned recycler's request.
// Returns ErrNotAssignedRecycler if the caller is not the assigned recycler.
// The recycler assignment is kept so the rollback remains attributable.
func (a *Appointment) Rollback(recyclerID kernel.UUID, now time.Time) error {
	if err := recyclerID.Validate(); err != nil {
		return err
	}
	if a.recyclerID == nil || !a.recyclerID.IsEqual(recyclerID) {
		return ErrNotAssignedRecycler
	}

	newStatus, err := a.status.Rollback()
	if err != nil {
		return err
	}

	a.status = newStatus
	a.updatedAt = now
	return nil
}

// Complete finishes an InProgress appointment. The caller must be the
// assigned recycler. An optional actual weight recorded at pickup replaces
// the estimate for inventory purposes.
//
// The conversation both-ended gate and the staging inventory posting are
// coordinated by the application layer in the same transaction.
func (a *Appointment) Complete(recyclerID kernel.UUID, actualWeight *kernel.Weight, now time.Time) error {
	if err := recyclerID.Validate(); err != nil {
		return err
	}
	if a.recyclerID == nil || !a.recyclerID.IsEqual(recyclerID) {
		return ErrNotAssignedRecycler
	}
	if actualWeight != nil {
		if err := actualWeight.Validate(); err != nil {
			return err
		}
	}

	newStatus, err := a.status.Complete()
	if err != nil {
		return err
	}

	a.status = newStatus
	a.actualWeight = actualWeight
	a.updatedAt = now
	return nil
}

// MarkReviewReminded records that the post-completion review reminder was
// delivered. Only valid once, on a Completed appointment.
func (a *Appointment) MarkReviewReminded(now time.Time) error {
	if a.status != Completed {
		return errs.NewStateIsInvalidErrorWithCause("status",
			fmt.Errorf("status is %s, cannot send review reminder", a.status))
	}
	if a.remindedAt != nil {
		return ErrReviewReminderAlreadySent
	}

	a.remindedAt = &now
	a.updatedAt = now
	return nil
}

func (a *Appointment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Appointment) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	a.userID = userID
	return nil
}

func (a *Appointment) setEstimatedWeight(weight kernel.Weight) error {
	if err := weight.Validate(); err != nil {
		return err
	}
	if !weight.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("estimatedWeight",
			fmt.Errorf("%s is not greater than 0", weight))
	}
	a.estimatedWeight = weight
	return nil
}

func (a *Appointment) setItems(items []CategoryItem) error {
	if len(items) == 0 {
		return ErrNoCategoryItems
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	a.items = make([]CategoryItem, len(items))
	copy(a.items, items)
	return nil
}
