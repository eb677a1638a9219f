package appointment_test

import (
	"testing"
	"time"

	"recycling/internal/core/domain/model/appointment"
	"recycling/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testItems(t *testing.T) []appointment.CategoryItem {
	t.Helper()
	weight, err := kernel.NewWeight(5)
	require.NoError(t, err)
	item, err := appointment.NewCategoryItem("paper", "clean and dry", weight, decimal.NewFromInt(10))
	require.NoError(t, err)
	return []appointment.CategoryItem{item}
}

func newPendingAppointment(t *testing.T) (*appointment.Appointment, kernel.UUID) {
	t.Helper()
	userID := kernel.NewUUID()
	weight, err := kernel.NewWeight(5)
	require.NoError(t, err)

	a, err := appointment.NewAppointment(kernel.NewUUID(), userID, weight, testItems(t), time.Now())
	require.NoError(t, err)
	return a, userID
}

func TestNewAppointment_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	userID := kernel.NewUUID()
	weight, err := kernel.NewWeight(12.5)
	require.NoError(t, err)
	now := time.Now()

	a, err := appointment.NewAppointment(id, userID, weight, testItems(t), now)
	require.NoError(t, err)

	assert.Equal(t, id, a.ID())
	assert.Equal(t, userID, a.UserID())
	assert.Equal(t, appointment.Pending, a.Status())
	assert.Nil(t, a.Recycler())
	assert.Nil(t, a.ActualWeight())
	assert.Nil(t, a.ReviewRemindedAt())
	assert.Len(t, a.Items(), 1)
	assert.NoError(t, a.Validate())
}

func TestNewAppointment_NoItems(t *testing.T) {
	weight, err := kernel.NewWeight(5)
	require.NoError(t, err)

	_, err = appointment.NewAppointment(kernel.NewUUID(), kernel.NewUUID(), weight, nil, time.Now())
	require.Error(t, err)
	assert.ErrorIs(t, err, appointment.ErrNoCategoryItems)
}

func TestNewAppointment_ZeroWeight(t *testing.T) {
	weight, err := kernel.NewWeight(0)
	require.NoError(t, err)

	_, err = appointment.NewAppointment(kernel.NewUUID(), kernel.NewUUID(), weight, testItems(t), time.Now())
	require.Error(t, err)
}

func TestAppointment_Accept(t *testing.T) {
	a, _ := newPendingAppointment(t)
	recyclerID := kernel.NewUUID()

	require.NoError(t, a.Accept(recyclerID, time.Now()))
	assert.Equal(t, appointment.InProgress, a.Status())
	require.NotNil(t, a.Recycler())
	assert.True(t, a.Recycler().IsEqual(recyclerID))

	// Second acceptance hits the status guard.
	err := a.Accept(kernel.NewUUID(), time.Now())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "InProgress")
}

func TestAppointment_Cancel(t *testing.T) {
	a, userID := newPendingAppointment(t)

	require.NoError(t, a.Cancel(userID, time.Now()))
	assert.Equal(t, appointment.Cancelled, a.Status())
}

func TestAppointment_Cancel_NotOwner(t *testing.T) {
	a, _ := newPendingAppointment(t)

	err := a.Cancel(kernel.NewUUID(), time.Now())
	require.Error(t, err)
	assert.ErrorIs(t, err, appointment.ErrNotAppointmentOwner)
	assert.Equal(t, appointment.Pending, a.Status())
}

func TestAppointment_Cancel_AfterAccept(t *testing.T) {
	a, userID := newPendingAppointment(t)
	require.NoError(t, a.Accept(kernel.NewUUID(), time.Now()))

	err := a.Cancel(userID, time.Now())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "InProgress")
}

func TestAppointment_Rollback(t *testing.T) {
	a, _ := newPendingAppointment(t)
	recyclerID := kernel.NewUUID()
	require.NoError(t, a.Accept(recyclerID, time.Now()))

	require.NoError(t, a.Rollback(recyclerID, time.Now()))
	assert.Equal(t, appointment.CancelledByRecyclerRollback, a.Status())
	// The assignment is kept so the rollback remains attributable.
	require.NotNil(t, a.Recycler())
	assert.True(t, a.Recycler().IsEqual(recyclerID))
}

func TestAppointment_Rollback_NotAssignedRecycler(t *testing.T) {
	a, _ := newPendingAppointment(t)
	require.NoError(t, a.Accept(kernel.NewUUID(), time.Now()))

	err := a.Rollback(kernel.NewUUID(), time.Now())
	require.Error(t, err)
	assert.ErrorIs(t, err, appointment.ErrNotAssignedRecycler)
	assert.Equal(t, appointment.InProgress, a.Status())
}

func TestAppointment_Rollback_AfterComplete(t *testing.T) {
	a, _ := newPendingAppointment(t)
	recyclerID := kernel.NewUUID()
	require.NoError(t, a.Accept(recyclerID, time.Now()))
	require.NoError(t, a.Complete(recyclerID, nil, time.Now()))

	err := a.Rollback(recyclerID, time.Now())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Completed")
	assert.Equal(t, appointment.Completed, a.Status())
}

func TestAppointment_Complete_WithActualWeight(t *testing.T) {
	a, _ := newPendingAppointment(t)
	recyclerID := kernel.NewUUID()
	require.NoError(t, a.Accept(recyclerID, time.Now()))

	actual, err := kernel.NewWeight(42.5)
	require.NoError(t, err)

	require.NoError(t, a.Complete(recyclerID, &actual, time.Now()))
	assert.Equal(t, appointment.Completed, a.Status())
	require.NotNil(t, a.ActualWeight())
	assert.InDelta(t, 42.5, a.ActualWeight().Kg(), 1e-9)
}

func TestAppointment_Complete_NotAssignedRecycler(t *testing.T) {
	a, _ := newPendingAppointment(t)
	require.NoError(t, a.Accept(kernel.NewUUID(), time.Now()))

	err := a.Complete(kernel.NewUUID(), nil, time.Now())
	require.Error(t, err)
	assert.ErrorIs(t, err, appointment.ErrNotAssignedRecycler)
}

func TestAppointment_MarkReviewReminded(t *testing.T) {
	a, _ := newPendingAppointment(t)
	recyclerID := kernel.NewUUID()
	require.NoError(t, a.Accept(recyclerID, time.Now()))
	require.NoError(t, a.Complete(recyclerID, nil, time.Now()))

	require.NoError(t, a.MarkReviewReminded(time.Now()))
	require.NotNil(t, a.ReviewRemindedAt())

	err := a.MarkReviewReminded(time.Now())
	require.Error(t, err)
	assert.ErrorIs(t, err, appointment.ErrReviewReminderAlreadySent)
}

func TestAppointment_MarkReviewReminded_NotCompleted(t *testing.T) {
	a, _ := newPendingAppointment(t)

	err := a.MarkReviewReminded(time.Now())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Pending")
}

func TestRestoreAppointment_StatusRecyclerConsistency(t *testing.T) {
	weight, err := kernel.NewWeight(5)
	require.NoError(t, err)
	now := time.Now()
	recyclerID := kernel.NewUUID()

	// InProgress without a recycler violates the invariant.
	_, err = appointment.RestoreAppointment(
		kernel.NewUUID(), kernel.NewUUID(), nil, appointment.InProgress,
		weight, nil, testItems(t), now, now, nil)
	require.Error(t, err)

	// Pending with a recycler also does.
	_, err = appointment.RestoreAppointment(
		kernel.NewUUID(), kernel.NewUUID(), &recyclerID, appointment.Pending,
		weight, nil, testItems(t), now, now, nil)
	require.Error(t, err)

	// The consistent combinations restore fine.
	restored, err := appointment.RestoreAppointment(
		kernel.NewUUID(), kernel.NewUUID(), &recyclerID, appointment.InProgress,
		weight, nil, testItems(t), now, now, nil)
	require.NoError(t, err)
	assert.Equal(t, appointment.InProgress, restored.Status())
}

func TestAppointment_Validate_NotConstructed(t *testing.T) {
	var a appointment.Appointment
	require.Error(t, a.Validate())
	assert.ErrorIs(t, a.Validate(), appointment.ErrAppointmentIsNotConstructed)
}
