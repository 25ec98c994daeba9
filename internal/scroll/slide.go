package scroll

import "math"

// Slide is a one-dimensional position easing towards a target, used for
// horizontal page switches.
type Slide struct {
	// Speed is the per-frame fraction of the remaining distance covered.
	Speed float64

	pos    float64
	target float64
}

// MoveTo sets the target. Without animation the position jumps there.
func (s *Slide) MoveTo(target float64, animated bool) {
	s.target = target
	if !animated {
		s.pos = target
	}
}

// Position is the current position.
func (s *Slide) Position() float64 { return s.pos }

// Target is where the slide is heading.
func (s *Slide) Target() float64 { return s.target }

// Step advances one frame and snaps once within half a point.
func (s *Slide) Step() {
	s.pos = lerp(s.pos, s.target, s.Speed)
	if math.Abs(s.pos-s.target) < snapEpsilon {
		s.pos = s.target
	}
}

// Settled reports whether the slide has reached its target.
func (s *Slide) Settled() bool { return s.pos == s.target }
