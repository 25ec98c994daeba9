package scroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlideJumpsWithoutAnimation(t *testing.T) {
	s := Slide{Speed: 0.18}
	s.MoveTo(480, false)
	assert.Equal(t, 480.0, s.Position())
	assert.True(t, s.Settled())
}

func TestSlideSettlesAfterAnimating(t *testing.T) {
	s := Slide{Speed: 0.18}
	s.MoveTo(480, true)
	assert.False(t, s.Settled())

	s.Step()
	assert.InDelta(t, 86.4, s.Position(), 1e-9)
	assert.False(t, s.Settled(), "input stays blocked mid-slide")

	for range 100 {
		s.Step()
	}
	assert.True(t, s.Settled())
	assert.Equal(t, 480.0, s.Position())
}
