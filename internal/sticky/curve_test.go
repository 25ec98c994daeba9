package sticky

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStretchHeightScenario(t *testing.T) {
	m := testMetrics

	assert.Equal(t, 200.0, m.HeightFor(0))
	assert.Equal(t, 100.0, m.HeightFor(100))
	assert.Equal(t, 64.0, m.HeightFor(136))
	assert.Equal(t, 64.0, m.HeightFor(200))
	assert.Equal(t, 230.0, m.HeightFor(-30))
	assert.Equal(t, 260.0, m.HeightFor(-80))
}

func TestStretchHeightMonotonic(t *testing.T) {
	m := testMetrics

	prev := m.HeightFor(0)
	for y := 0.5; y <= 400; y += 0.5 {
		h := m.HeightFor(y)
		require.LessOrEqual(t, h, prev, "offset %v", y)
		prev = h
	}

	prev = m.HeightFor(-400)
	for y := -399.5; y < 0; y += 0.5 {
		h := m.HeightFor(y)
		require.GreaterOrEqual(t, h, prev, "offset %v", y)
		prev = h
	}
}

func TestStretchHeightClamped(t *testing.T) {
	m := testMetrics
	inputs := []float64{-1e9, -261, -60, -1, 0, 1, 135.9, 136, 1e9, math.Inf(1), math.Inf(-1), math.NaN()}
	for _, y := range inputs {
		h := m.HeightFor(y)
		assert.GreaterOrEqual(t, h, m.MinHeight, "offset %v", y)
		assert.LessOrEqual(t, h, m.StretchLimit(), "offset %v", y)
	}
	assert.Equal(t, m.MaxHeight, m.HeightFor(math.NaN()))
}

func TestAdjustedOffsetY(t *testing.T) {
	sv := &fakeScrollView{offset: Point{Y: -230}, inset: Insets{Top: 200}}
	assert.Equal(t, -30.0, AdjustedOffsetY(sv))
}

func TestHeaderMetricsValidate(t *testing.T) {
	require.NoError(t, testMetrics.Validate())
	require.NoError(t, HeaderMetrics{MinHeight: 0, MaxHeight: 1}.Validate())

	bad := []HeaderMetrics{
		{MinHeight: 200, MaxHeight: 200},
		{MinHeight: 300, MaxHeight: 200},
		{MinHeight: -1, MaxHeight: 200},
		{MinHeight: 64, MaxHeight: 200, MaxStretch: -5},
		{MinHeight: math.NaN(), MaxHeight: 200},
	}
	for _, m := range bad {
		assert.ErrorIs(t, m.Validate(), ErrInvalidMetrics, "%+v", m)
	}
}
