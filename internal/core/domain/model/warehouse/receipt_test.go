package warehouse_test

import (
	"testing"
	"time"

	"recycling/internal/core/domain/model/kernel"
	"recycling/internal/core/domain/model/transport"
	"recycling/internal/core/domain/model/warehouse"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSummary(t *testing.T) []transport.Category {
	t.Helper()
	weight, err := kernel.NewWeight(30)
	require.NoError(t, err)
	category, err := transport.NewCategory("glass", weight, decimal.NewFromInt(15))
	require.NoError(t, err)
	return []transport.Category{category}
}

func newPendingReceipt(t *testing.T) *warehouse.Receipt {
	t.Helper()
	weight, err := kernel.NewWeight(30)
	require.NoError(t, err)

	r, err := warehouse.NewReceipt(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		weight, testSummary(t), "pallet slightly damaged", time.Now())
	require.NoError(t, err)
	return r
}

func TestNewReceipt(t *testing.T) {
	r := newPendingReceipt(t)

	assert.Equal(t, warehouse.StatusPending, r.Status())
	assert.Nil(t, r.ProcessedAt())
	assert.Equal(t, "pallet slightly damaged", r.Notes())
	assert.Len(t, r.Categories(), 1)
	assert.Regexp(t, `^WR-\d{8}-[0-9A-F]{8}$`, r.ReceiptNumber())
}

func TestNewReceipt_ZeroWeight(t *testing.T) {
	weight, err := kernel.NewWeight(0)
	require.NoError(t, err)

	_, err = warehouse.NewReceipt(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		weight, nil, "", time.Now())
	require.Error(t, err)
}

func TestReceipt_Process(t *testing.T) {
	r := newPendingReceipt(t)

	require.NoError(t, r.Process(time.Now()))
	assert.Equal(t, warehouse.StatusProcessed, r.Status())
	assert.NotNil(t, r.ProcessedAt())
}

func TestReceipt_Process_Twice(t *testing.T) {
	r := newPendingReceipt(t)
	require.NoError(t, r.Process(time.Now()))
	firstProcessedAt := r.ProcessedAt()

	err := r.Process(time.Now())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Processed")
	assert.Equal(t, firstProcessedAt, r.ProcessedAt())
}

func TestRestoreReceipt(t *testing.T) {
	r := newPendingReceipt(t)
	weight, err := kernel.NewWeight(30)
	require.NoError(t, err)
	now := time.Now()

	restored, err := warehouse.RestoreReceipt(
		r.ID(), r.ReceiptNumber(), r.TransportOrderID(), r.RecyclerID(), r.WorkerID(),
		weight, testSummary(t), r.Notes(), warehouse.StatusProcessed, now, &now)
	require.NoError(t, err)
	assert.Equal(t, warehouse.StatusProcessed, restored.Status())

	_, err = warehouse.RestoreReceipt(
		r.ID(), "", r.TransportOrderID(), r.RecyclerID(), r.WorkerID(),
		weight, nil, "", warehouse.StatusPending, now, nil)
	require.Error(t, err)
}

func TestReceipt_Validate_NotConstructed(t *testing.T) {
	var r warehouse.Receipt
	require.ErrorIs(t, r.Validate(), warehouse.ErrReceiptIsNotConstructed)
}
