package ui

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Spinner is the activity indicator shown in the space the controller
// reserves below the header while a page reloads.
type Spinner struct {
	phase float64
}

// Animate turns the spinner. Call from Update().
func (s *Spinner) Animate() {
	s.phase = math.Mod(s.phase+0.18, 2*math.Pi)
}

// Draw renders into r; nothing is drawn for an empty frame.
func (s *Spinner) Draw(dst *ebiten.Image, r Rect) {
	if r.H <= 0 {
		return
	}
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), ColorBackground, false)
	radius := float32(math.Min(r.H/2-8, 14))
	if radius <= 0 {
		return
	}
	drawSpinnerArc(dst, float32(r.X+r.W/2), float32(r.Y+r.H/2), radius, s.phase, ColorPrimary)
}
