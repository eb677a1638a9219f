package appointment_test

import (
	"testing"

	"recycling/internal/core/domain/model/appointment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	valid := []appointment.Status{
		appointment.Pending,
		appointment.InProgress,
		appointment.Completed,
		appointment.Cancelled,
		appointment.CancelledByRecyclerRollback,
	}
	for _, s := range valid {
		assert.NoError(t, s.Validate(), s.String())
	}

	assert.Error(t, appointment.Unknown.Validate())
	assert.Error(t, appointment.Status(99).Validate())
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "Pending", appointment.Pending.String())
	assert.Equal(t, "InProgress", appointment.InProgress.String())
	assert.Equal(t, "Completed", appointment.Completed.String())
	assert.Equal(t, "Cancelled", appointment.Cancelled.String())
	assert.Equal(t, "CancelledByRecyclerRollback", appointment.CancelledByRecyclerRollback.String())
	assert.Equal(t, "Unknown", appointment.Status(99).String())
}

func TestStatus_Accept(t *testing.T) {
	next, err := appointment.Pending.Accept()
	require.NoError(t, err)
	assert.Equal(t, appointment.InProgress, next)

	for _, s := range []appointment.Status{
		appointment.InProgress,
		appointment.Completed,
		appointment.Cancelled,
		appointment.CancelledByRecyclerRollback,
	} {
		_, err := s.Accept()
		require.Error(t, err, s.String())
		assert.Contains(t, err.Error(), s.String())
	}
}

func TestStatus_Cancel(t *testing.T) {
	next, err := appointment.Pending.Cancel()
	require.NoError(t, err)
	assert.Equal(t, appointment.Cancelled, next)

	_, err = appointment.InProgress.Cancel()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "InProgress")
}

func TestStatus_Rollback(t *testing.T) {
	next, err := appointment.InProgress.Rollback()
	require.NoError(t, err)
	assert.Equal(t, appointment.CancelledByRecyclerRollback, next)

	// A completed pickup cannot be rolled back; the error names the
	// current status so the caller can resynchronize.
	_, err = appointment.Completed.Rollback()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Completed")

	_, err = appointment.Pending.Rollback()
	require.Error(t, err)
}

func TestStatus_Complete(t *testing.T) {
	next, err := appointment.InProgress.Complete()
	require.NoError(t, err)
	assert.Equal(t, appointment.Completed, next)

	_, err = appointment.Pending.Complete()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Pending")
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.False(t, appointment.Pending.IsTerminal())
	assert.False(t, appointment.InProgress.IsTerminal())
	assert.True(t, appointment.Completed.IsTerminal())
	assert.True(t, appointment.Cancelled.IsTerminal())
	assert.True(t, appointment.CancelledByRecyclerRollback.IsTerminal())
}

func TestStatus_RequiresRecycler(t *testing.T) {
	assert.False(t, appointment.Pending.RequiresRecycler())
	assert.False(t, appointment.Cancelled.RequiresRecycler())
	assert.True(t, appointment.InProgress.RequiresRecycler())
	assert.True(t, appointment.Completed.RequiresRecycler())
	assert.True(t, appointment.CancelledByRecyclerRollback.RequiresRecycler())
}
