package ui

import (
	"image"

	"github.com/depeter/stickypager/internal/sticky"
)

// Rect is an axis-aligned rectangle in screen points.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether the point lies inside r.
func (r Rect) Contains(x, y int) bool {
	return PointInRect(x, y, r.X, r.Y, r.W, r.H)
}

// Bottom is the y coordinate of the lower edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

func rectImage(r Rect) image.Rectangle {
	return image.Rect(int(r.X), int(r.Y), int(r.X+r.W), int(r.Bottom()))
}

// Frames are the positions of the sticky screen's parts after a layout pass.
type Frames struct {
	Pager   Rect
	Header  Rect
	Spinner Rect // zero height unless loading
	NavBar  Rect
}

// LayoutState is what a layout pass needs to know about the controller.
type LayoutState struct {
	HeaderHeight  float64
	NavBarHeight  float64
	SpinnerHeight float64
	Loading       bool
}

// StickyLayout stacks header and spinner over the pager and overlays the nav
// bar, all below the safe-area top inset. It implements sticky.LayoutRequester.
type StickyLayout struct {
	Width, Height float64
	// SafeArea reports the platform safe-area insets; nil means none.
	SafeArea func() sticky.Insets

	needsLayout bool
	frames      Frames
}

func NewStickyLayout(width, height float64, safeArea func() sticky.Insets) *StickyLayout {
	return &StickyLayout{Width: width, Height: height, SafeArea: safeArea, needsLayout: true}
}

// SetNeedsLayout schedules a layout pass.
func (l *StickyLayout) SetNeedsLayout() { l.needsLayout = true }

// NeedsLayout reports whether a layout pass is pending.
func (l *StickyLayout) NeedsLayout() bool { return l.needsLayout }

// Frames returns the result of the last layout pass.
func (l *StickyLayout) Frames() Frames { return l.frames }

func (l *StickyLayout) safeTop() float64 {
	if l.SafeArea == nil {
		return 0
	}
	return l.SafeArea().Top
}

// Layout computes the frames for s and clears the pending flag.
func (l *StickyLayout) Layout(s LayoutState) Frames {
	top := l.safeTop()
	f := Frames{
		Pager:  Rect{X: 0, Y: top, W: l.Width, H: l.Height - top},
		Header: Rect{X: 0, Y: top, W: l.Width, H: s.HeaderHeight},
		NavBar: Rect{X: 0, Y: top, W: l.Width, H: s.NavBarHeight},
	}
	f.Spinner = Rect{X: 0, Y: f.Header.Bottom(), W: l.Width}
	if s.Loading {
		f.Spinner.H = s.SpinnerHeight
	}
	l.frames = f
	l.needsLayout = false
	return f
}
