package services_test

import (
	"testing"

	"recycling/internal/core/domain/model/appointment"
	"recycling/internal/core/domain/model/kernel"
	"recycling/internal/core/domain/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func item(t *testing.T, category string, kg float64, value int64) appointment.CategoryItem {
	t.Helper()
	weight, err := kernel.NewWeight(kg)
	require.NoError(t, err)
	i, err := appointment.NewCategoryItem(category, "", weight, decimal.NewFromInt(value))
	require.NoError(t, err)
	return i
}

func TestWeightAllocator_NoActualWeight(t *testing.T) {
	allocator := services.NewWeightAllocator()
	items := []appointment.CategoryItem{
		item(t, "paper", 10, 5),
		item(t, "metal", 30, 60),
	}

	allocations, err := allocator.Allocate(items, nil)
	require.NoError(t, err)
	require.Len(t, allocations, 2)

	// Declared weights pass through untouched.
	assert.Equal(t, "paper", allocations[0].Category)
	assert.InDelta(t, 10, allocations[0].Weight.Kg(), 1e-9)
	assert.InDelta(t, 30, allocations[1].Weight.Kg(), 1e-9)
	assert.True(t, allocations[0].Value.Equal(decimal.NewFromInt(5)))
}

func TestWeightAllocator_ScalesToActualWeight(t *testing.T) {
	allocator := services.NewWeightAllocator()
	items := []appointment.CategoryItem{
		item(t, "paper", 10, 5),
		item(t, "metal", 30, 60),
	}

	actual, err := kernel.NewWeight(42.5)
	require.NoError(t, err)

	allocations, err := allocator.Allocate(items, &actual)
	require.NoError(t, err)
	require.Len(t, allocations, 2)

	// 42.5 over a declared total of 40 scales each line by 1.0625.
	assert.InDelta(t, 10.625, allocations[0].Weight.Kg(), 1e-9)
	assert.InDelta(t, 31.875, allocations[1].Weight.Kg(), 1e-9)

	total := allocations[0].Weight.Kg() + allocations[1].Weight.Kg()
	assert.InDelta(t, 42.5, total, 1e-9)

	// Line values are not rescaled.
	assert.True(t, allocations[1].Value.Equal(decimal.NewFromInt(60)))
}

func TestWeightAllocator_EmptyItems(t *testing.T) {
	allocator := services.NewWeightAllocator()

	_, err := allocator.Allocate(nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrNothingToAllocate)
}

func TestWeightAllocator_ZeroDeclaredTotal(t *testing.T) {
	allocator := services.NewWeightAllocator()
	items := []appointment.CategoryItem{item(t, "paper", 0, 0)}

	actual, err := kernel.NewWeight(10)
	require.NoError(t, err)

	_, err = allocator.Allocate(items, &actual)
	require.Error(t, err)
}
