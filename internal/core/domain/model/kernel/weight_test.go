package kernel_test

import (
	"math"
	"testing"

	"recycling/internal/core/domain/model/kernel"
	"recycling/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWeight(t *testing.T) {
	t.Run("valid_positive_weight", func(t *testing.T) {
		w, err := kernel.NewWeight(42.5)
		require.NoError(t, err)
		assert.InDelta(t, 42.5, w.Kg(), 0.0001)
		assert.True(t, w.IsPositive())
		require.NoError(t, w.Validate())
	})

	t.Run("zero_weight_is_valid", func(t *testing.T) {
		w, err := kernel.NewWeight(0)
		require.NoError(t, err)
		assert.False(t, w.IsPositive())
		require.NoError(t, w.Validate())
	})

	t.Run("negative_weight_is_invalid", func(t *testing.T) {
		_, err := kernel.NewWeight(-1)
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("non_finite_weight_is_invalid", func(t *testing.T) {
		for _, kg := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
			_, err := kernel.NewWeight(kg)
			require.Error(t, err)
		}
	})
}

func TestWeight_Validate(t *testing.T) {
	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var w kernel.Weight
		require.Error(t, w.Validate())
		require.ErrorIs(t, w.Validate(), errs.ErrValueIsRequired)
	})
}

func TestWeight_Add(t *testing.T) {
	t.Run("sums_two_weights", func(t *testing.T) {
		a, _ := kernel.NewWeight(10)
		b, _ := kernel.NewWeight(2.5)

		sum, err := a.Add(b)
		require.NoError(t, err)
		assert.InDelta(t, 12.5, sum.Kg(), 0.0001)
	})

	t.Run("rejects_unconstructed_operand", func(t *testing.T) {
		a, _ := kernel.NewWeight(10)
		_, err := a.Add(kernel.Weight{})
		require.Error(t, err)
	})
}

func TestWeight_Scale(t *testing.T) {
	t.Run("scales_by_factor", func(t *testing.T) {
		w, _ := kernel.NewWeight(10)
		scaled, err := w.Scale(0.5)
		require.NoError(t, err)
		assert.InDelta(t, 5, scaled.Kg(), 0.0001)
	})

	t.Run("negative_factor_is_invalid", func(t *testing.T) {
		w, _ := kernel.NewWeight(10)
		_, err := w.Scale(-2)
		require.Error(t, err)
	})
}

func TestWeight_IsEqual(t *testing.T) {
	a, _ := kernel.NewWeight(7)
	b, _ := kernel.NewWeight(7)
	c, _ := kernel.NewWeight(8)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}

func TestWeight_String(t *testing.T) {
	w, _ := kernel.NewWeight(42.5)
	assert.Equal(t, "42.5 kg", w.String())
}
