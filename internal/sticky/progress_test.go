package sticky

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollapseProgressEndpoints(t *testing.T) {
	p, ok := CollapseProgress(200, 64, 200)
	require.True(t, ok)
	assert.Equal(t, 0.0, p)

	p, ok = CollapseProgress(64, 64, 200)
	require.True(t, ok)
	assert.Equal(t, 1.0, p)
}

func TestCollapseProgressScenario(t *testing.T) {
	p, _ := CollapseProgress(100, 64, 200)
	assert.InDelta(t, 0.735, p, 0.001)

	p, _ = CollapseProgress(260, 64, 200)
	assert.Equal(t, 0.0, p, "stretched header is fully expanded")

	p, _ = CollapseProgress(10, 64, 200)
	assert.Equal(t, 1.0, p)
}

func TestCollapseProgressMonotonic(t *testing.T) {
	prev := 1.0
	for h := 64.0; h <= 260; h++ {
		p, _ := CollapseProgress(h, 64, 200)
		require.LessOrEqual(t, p, prev, "height %v", h)
		prev = p
	}
}

func TestCollapseProgressNoRange(t *testing.T) {
	_, ok := CollapseProgress(100, 200, 200)
	assert.False(t, ok)
	_, ok = CollapseProgress(100, 300, 200)
	assert.False(t, ok)
}

func TestProgressTrackerAnimatedThreshold(t *testing.T) {
	m := HeaderMetrics{MinHeight: 0, MaxHeight: 100}

	tr := NewProgressTracker(0)
	assert.Equal(t, DefaultAnimateThreshold, tr.Threshold)

	p, animated, ok := tr.Update(50, m)
	require.True(t, ok)
	assert.Equal(t, 0.5, p)
	assert.True(t, animated, "first emission has nothing to jump from")

	p, animated, _ = tr.Update(45, m)
	assert.InDelta(t, 0.55, p, 1e-9)
	assert.True(t, animated)

	tr.Update(50, m)
	p, animated, _ = tr.Update(30, m)
	assert.InDelta(t, 0.70, p, 1e-9)
	assert.False(t, animated)
}

func TestProgressTrackerKeepsLastOnEmptyRange(t *testing.T) {
	tr := NewProgressTracker(0.25)
	tr.Update(100, testMetrics)
	before, _ := tr.Last()

	p, _, ok := tr.Update(10, HeaderMetrics{MinHeight: 50, MaxHeight: 50})
	assert.False(t, ok)
	assert.Equal(t, before, p)

	last, has := tr.Last()
	assert.True(t, has)
	assert.Equal(t, before, last)
}
