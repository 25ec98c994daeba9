// Package scroll models a vertically scrolling surface with rubber-band
// over-scroll, the way a touch platform's scroll view behaves. It does no
// input handling or drawing.
package scroll

import (
	"math"

	"github.com/depeter/stickypager/internal/sticky"
)

const (
	// RubberBand scales drag movement while the view is pulled out of bounds.
	RubberBand = 0.5
	// Deceleration is the per-frame velocity multiplier after a release.
	Deceleration = 0.92
	// RelaxSpeed is the per-frame fraction by which an over-scrolled view
	// returns to its bounds.
	RelaxSpeed = 0.2

	minVelocity = 0.1
	snapEpsilon = 0.5
)

// View holds the scroll state of one page. It satisfies sticky.ScrollView.
type View struct {
	ContentHeight  float64
	ViewportHeight float64

	// MinContentHeight pads short content so it can still scroll under the
	// header; usually the viewport minus the safe-area bottom.
	MinContentHeight float64

	// OnScroll fires after user driven offset changes (drag, wheel, momentum).
	OnScroll func()
	// OnEndDrag fires when a drag is released.
	OnEndDrag func()

	offset    sticky.Point
	inset     sticky.Insets
	indicator sticky.Insets

	dragging  bool
	lastDragY float64
	velocity  float64
}

func (v *View) ContentOffset() sticky.Point { return v.offset }

// SetContentOffset moves the view without notifying OnScroll.
func (v *View) SetContentOffset(p sticky.Point) {
	v.offset = p
	v.velocity = 0
}

func (v *View) ContentInset() sticky.Insets { return v.inset }

func (v *View) SetContentInset(in sticky.Insets) { v.inset = in }

func (v *View) ScrollIndicatorInsets() sticky.Insets { return v.indicator }

func (v *View) SetScrollIndicatorInsets(in sticky.Insets) { v.indicator = in }

// MinOffsetY is the resting offset at the top of the content.
func (v *View) MinOffsetY() float64 {
	return -v.inset.Top
}

// MaxOffsetY is the offset at which the end of the content is visible.
func (v *View) MaxOffsetY() float64 {
	content := math.Max(v.ContentHeight, v.MinContentHeight)
	return math.Max(v.MinOffsetY(), content+v.inset.Bottom-v.ViewportHeight)
}

// Dragging reports whether a drag is in progress.
func (v *View) Dragging() bool { return v.dragging }

// OverScroll returns how far the view is pulled past its bounds; negative
// values are above the top.
func (v *View) OverScroll() float64 {
	switch y := v.offset.Y; {
	case y < v.MinOffsetY():
		return y - v.MinOffsetY()
	case y > v.MaxOffsetY():
		return y - v.MaxOffsetY()
	}
	return 0
}

// ScrollToTop resets the view to its resting position.
func (v *View) ScrollToTop() {
	v.SetContentOffset(sticky.Point{Y: v.MinOffsetY()})
	v.notifyScroll()
}

// BeginDrag starts a drag at pointer position y.
func (v *View) BeginDrag(y float64) {
	v.dragging = true
	v.lastDragY = y
	v.velocity = 0
}

// DragTo moves the content with the pointer. Out of bounds the movement is
// damped by RubberBand.
func (v *View) DragTo(y float64) {
	if !v.dragging {
		return
	}
	delta := v.lastDragY - y
	v.lastDragY = y
	if delta == 0 {
		return
	}
	if v.OverScroll() != 0 {
		delta *= RubberBand
	}
	v.offset.Y += delta
	v.velocity = delta
	v.notifyScroll()
}

// EndDrag releases the drag and lets momentum take over.
func (v *View) EndDrag() {
	if !v.dragging {
		return
	}
	v.dragging = false
	if v.OnEndDrag != nil {
		v.OnEndDrag()
	}
}

// ScrollBy scrolls by dy, clamped to the content bounds. Used for wheel and
// keyboard scrolling, which never over-scroll.
func (v *View) ScrollBy(dy float64) {
	if dy == 0 {
		return
	}
	y := math.Min(math.Max(v.offset.Y+dy, v.MinOffsetY()), v.MaxOffsetY())
	if y == v.offset.Y {
		return
	}
	v.offset.Y = y
	v.velocity = 0
	v.notifyScroll()
}

// Step advances momentum and rubber-band relaxation by one frame.
func (v *View) Step() {
	if v.dragging {
		return
	}
	before := v.offset.Y

	if over := v.OverScroll(); over != 0 {
		v.velocity = 0
		target := v.offset.Y - over
		v.offset.Y = lerp(v.offset.Y, target, RelaxSpeed)
		if math.Abs(v.offset.Y-target) < snapEpsilon {
			v.offset.Y = target
		}
	} else if math.Abs(v.velocity) >= minVelocity {
		v.offset.Y += v.velocity
		v.velocity *= Deceleration
	} else {
		v.velocity = 0
	}

	if v.offset.Y != before {
		v.notifyScroll()
	}
}

func (v *View) notifyScroll() {
	if v.OnScroll != nil {
		v.OnScroll()
	}
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
