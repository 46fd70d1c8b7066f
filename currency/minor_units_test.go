package currency

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type adjustment struct {
	code         Code
	amount       float64
	rawMinor     int64
	roundedMinor int64
}

type recordingObserver struct {
	adjustments []adjustment
}

func (r *recordingObserver) RoundingAdjusted(code Code, amount float64, rawMinor, roundedMinor int64) {
	r.adjustments = append(r.adjustments, adjustment{code, amount, rawMinor, roundedMinor})
}

func TestMinorUnitsUSD(t *testing.T) {
	cases := []struct {
		amount float64
		want   int64
	}{
		{10, 1000},
		{0.01, 1},
		{1200.50, 120050},
		{49.999, 5000},
		{0.004, 0},
	}

	n := Normalizer{}
	for _, tc := range cases {
		got, err := n.MinorUnits(tc.amount, "USD")
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "amount %v", tc.amount)
	}
}

func TestMinorUnitsLowercaseCode(t *testing.T) {
	got, err := Normalizer{}.MinorUnits(25, "usd")
	require.NoError(t, err)
	assert.Equal(t, int64(2500), got)
}

func TestMinorUnitsInvalidAmount(t *testing.T) {
	n := Normalizer{}
	for _, amount := range []float64{0, -5, math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := n.MinorUnits(amount, "USD")
		assert.ErrorIs(t, err, ErrInvalidAmount, "amount %v", amount)
	}
}

func TestMinorUnitsUnsupportedCurrency(t *testing.T) {
	_, err := Normalizer{}.MinorUnits(10, "EUR")
	assert.ErrorIs(t, err, ErrUnsupportedCurrency)
}

func TestMinorUnitsUGXMultipleOf100(t *testing.T) {
	obs := &recordingObserver{}
	n := Normalizer{Observer: obs}

	for _, amount := range []float64{1, 150, 150.004, 150.6, 999.49, 2500.5} {
		got, err := n.MinorUnits(amount, "UGX")
		require.NoError(t, err)
		assert.Zerof(t, got%100, "amount %v produced %d", amount, got)
	}
}

func TestMinorUnitsUGXSnapping(t *testing.T) {
	t.Run("whole amount needs no adjustment", func(t *testing.T) {
		obs := &recordingObserver{}
		got, err := Normalizer{Observer: obs}.MinorUnits(150, "UGX")
		require.NoError(t, err)
		assert.Equal(t, int64(15000), got)
		assert.Empty(t, obs.adjustments)
	})

	t.Run("sub-cent noise rounds away before snapping", func(t *testing.T) {
		obs := &recordingObserver{}
		got, err := Normalizer{Observer: obs}.MinorUnits(150.004, "UGX")
		require.NoError(t, err)
		assert.Equal(t, int64(15000), got)
		assert.Empty(t, obs.adjustments)
	})

	t.Run("fractional amount is snapped and reported", func(t *testing.T) {
		obs := &recordingObserver{}
		got, err := Normalizer{Observer: obs}.MinorUnits(150.6, "UGX")
		require.NoError(t, err)
		assert.Equal(t, int64(15100), got)

		require.Len(t, obs.adjustments, 1)
		adj := obs.adjustments[0]
		assert.Equal(t, UGX, adj.code)
		assert.Equal(t, 150.6, adj.amount)
		assert.Equal(t, int64(15060), adj.rawMinor)
		assert.Equal(t, int64(15100), adj.roundedMinor)
	})

	t.Run("nil observer is fine", func(t *testing.T) {
		got, err := Normalizer{}.MinorUnits(150.6, "UGX")
		require.NoError(t, err)
		assert.Equal(t, int64(15100), got)
	})
}
