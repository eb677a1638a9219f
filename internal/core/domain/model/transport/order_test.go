package transport_test

import (
	"testing"
	"time"

	"recycling/internal/core/domain/model/kernel"
	"recycling/internal/core/domain/model/transport"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testManifest(t *testing.T) []transport.Category {
	t.Helper()
	weight, err := kernel.NewWeight(20)
	require.NoError(t, err)
	category, err := transport.NewCategory("metal", weight, decimal.NewFromInt(50))
	require.NoError(t, err)
	return []transport.Category{category}
}

func newPendingOrder(t *testing.T) (*transport.Order, kernel.UUID) {
	t.Helper()
	transporterID := kernel.NewUUID()
	weight, err := kernel.NewWeight(40)
	require.NoError(t, err)

	o, err := transport.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), transporterID,
		"12 Staging Yard", "Processing Base North",
		"Alex", "+1-555-0100",
		weight, testManifest(t), time.Now())
	require.NoError(t, err)
	return o, transporterID
}

func newInTransitOrder(t *testing.T) (*transport.Order, kernel.UUID) {
	t.Helper()
	o, transporterID := newPendingOrder(t)
	require.NoError(t, o.Accept(transporterID, time.Now()))
	require.NoError(t, o.AdvanceTo(transport.StageConfirmPickup, time.Now()))
	return o, transporterID
}

func TestNewOrder(t *testing.T) {
	o, _ := newPendingOrder(t)

	assert.Equal(t, transport.StatusPending, o.Status())
	assert.Nil(t, o.Stage())
	assert.Nil(t, o.AcceptedAt())
	assert.Nil(t, o.ActualWeight())
	assert.Len(t, o.Categories(), 1)
	assert.Regexp(t, `^TO-\d{8}-[0-9A-F]{8}$`, o.OrderNumber())
}

func TestNewOrder_MissingPickupAddress(t *testing.T) {
	weight, err := kernel.NewWeight(40)
	require.NoError(t, err)

	_, err = transport.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		"", "Processing Base North", "Alex", "+1-555-0100",
		weight, nil, time.Now())
	require.Error(t, err)
}

func TestOrder_Accept(t *testing.T) {
	o, transporterID := newPendingOrder(t)

	require.NoError(t, o.Accept(transporterID, time.Now()))
	assert.Equal(t, transport.StatusAccepted, o.Status())
	assert.NotNil(t, o.AcceptedAt())
}

func TestOrder_Accept_WrongTransporter(t *testing.T) {
	o, _ := newPendingOrder(t)

	err := o.Accept(kernel.NewUUID(), time.Now())
	require.Error(t, err)
	assert.ErrorIs(t, err, transport.ErrNotAssignedTransporter)
	assert.Equal(t, transport.StatusPending, o.Status())
}

func TestOrder_AdvanceTo_FullSequence(t *testing.T) {
	o, transporterID := newPendingOrder(t)
	require.NoError(t, o.Accept(transporterID, time.Now()))

	require.NoError(t, o.AdvanceTo(transport.StageConfirmPickup, time.Now()))
	assert.Equal(t, transport.StatusInTransit, o.Status())

	for _, stage := range []transport.Stage{
		transport.StageArrivePickup,
		transport.StageLoadingComplete,
		transport.StageConfirmDelivery,
		transport.StageArriveDelivery,
	} {
		require.NoError(t, o.AdvanceTo(stage, time.Now()))
		require.NotNil(t, o.Stage())
		assert.Equal(t, stage, *o.Stage())
	}

	assert.NotNil(t, o.PickedUpAt())
}

func TestOrder_AdvanceTo_OutOfOrder(t *testing.T) {
	o, _ := newInTransitOrder(t)

	// Skipping ArrivePickup is rejected, the error names the current
	// stage, and the order is left untouched.
	err := o.AdvanceTo(transport.StageLoadingComplete, time.Now())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ConfirmPickup")
	require.NotNil(t, o.Stage())
	assert.Equal(t, transport.StageConfirmPickup, *o.Stage())
	assert.Nil(t, o.PickedUpAt())
}

func TestOrder_AdvanceTo_BeforeAccept(t *testing.T) {
	o, _ := newPendingOrder(t)

	err := o.AdvanceTo(transport.StageConfirmPickup, time.Now())
	require.Error(t, err)
	assert.Equal(t, transport.StatusPending, o.Status())
}

func TestOrder_Complete_WithActualWeight(t *testing.T) {
	o, _ := newInTransitOrder(t)
	for _, stage := range []transport.Stage{
		transport.StageArrivePickup,
		transport.StageLoadingComplete,
		transport.StageConfirmDelivery,
		transport.StageArriveDelivery,
	} {
		require.NoError(t, o.AdvanceTo(stage, time.Now()))
	}

	actual, err := kernel.NewWeight(42.5)
	require.NoError(t, err)

	require.NoError(t, o.Complete(&actual, time.Now()))
	assert.Equal(t, transport.StatusCompleted, o.Status())
	assert.Nil(t, o.Stage())
	assert.NotNil(t, o.CompletedAt())
	require.NotNil(t, o.ActualWeight())
	assert.InDelta(t, 42.5, o.ActualWeight().Kg(), 1e-9)
}

func TestOrder_Complete_NotAtTerminalStage(t *testing.T) {
	o, _ := newInTransitOrder(t)

	err := o.Complete(nil, time.Now())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ConfirmPickup")
	assert.Equal(t, transport.StatusInTransit, o.Status())
}

func TestRestoreOrder_LegacyNilStage(t *testing.T) {
	o, transporterID := newInTransitOrder(t)
	weight, err := kernel.NewWeight(40)
	require.NoError(t, err)
	now := time.Now()

	// Rows that predate stage tracking restore InTransit with no stage
	// and match any stage guard.
	legacy, err := transport.RestoreOrder(
		o.ID(), o.OrderNumber(), o.RecyclerID(), transporterID,
		o.PickupAddress(), o.Destination(), o.ContactName(), o.ContactPhone(),
		weight, nil, testManifest(t),
		transport.StatusInTransit, nil,
		now, &now, nil, nil)
	require.NoError(t, err)
	assert.Nil(t, legacy.Stage())

	require.NoError(t, legacy.AdvanceTo(transport.StageConfirmDelivery, time.Now()))
	require.NotNil(t, legacy.Stage())
	assert.Equal(t, transport.StageConfirmDelivery, *legacy.Stage())
}

func TestRestoreOrder_LegacyNilStage_CanComplete(t *testing.T) {
	o, transporterID := newInTransitOrder(t)
	weight, err := kernel.NewWeight(40)
	require.NoError(t, err)
	now := time.Now()

	legacy, err := transport.RestoreOrder(
		o.ID(), o.OrderNumber(), o.RecyclerID(), transporterID,
		o.PickupAddress(), o.Destination(), o.ContactName(), o.ContactPhone(),
		weight, nil, testManifest(t),
		transport.StatusInTransit, nil,
		now, &now, nil, nil)
	require.NoError(t, err)

	require.NoError(t, legacy.Complete(nil, time.Now()))
	assert.Equal(t, transport.StatusCompleted, legacy.Status())
}

func TestRestoreOrder_StageOutsideTransit(t *testing.T) {
	o, transporterID := newPendingOrder(t)
	weight, err := kernel.NewWeight(40)
	require.NoError(t, err)
	stage := transport.StageArrivePickup
	now := time.Now()

	_, err = transport.RestoreOrder(
		o.ID(), o.OrderNumber(), o.RecyclerID(), transporterID,
		o.PickupAddress(), o.Destination(), o.ContactName(), o.ContactPhone(),
		weight, nil, testManifest(t),
		transport.StatusAccepted, &stage,
		now, &now, nil, nil)
	require.Error(t, err)
}

func TestStage_Previous(t *testing.T) {
	_, ok := transport.StageConfirmPickup.Previous()
	assert.False(t, ok)

	prev, ok := transport.StageArriveDelivery.Previous()
	require.True(t, ok)
	assert.Equal(t, transport.StageConfirmDelivery, prev)
}

func TestStage_ClearsStaging(t *testing.T) {
	assert.True(t, transport.StageLoadingComplete.ClearsStaging())
	assert.False(t, transport.StageConfirmPickup.ClearsStaging())
	assert.False(t, transport.StageArriveDelivery.ClearsStaging())
}
