package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerEvent is what happened to the tracked pointer this frame.
type PointerEvent int

const (
	PointerNone PointerEvent = iota
	PointerDown
	PointerMove
	PointerUp
)

// Pointer follows one mouse or touch drag at a time.
type Pointer struct {
	X, Y int

	active  bool
	touch   bool
	touchID ebiten.TouchID
	touches []ebiten.TouchID
}

// Active reports whether a drag is in progress.
func (p *Pointer) Active() bool { return p.active }

// Update polls input. Call once per frame from Update().
func (p *Pointer) Update() PointerEvent {
	if !p.active {
		p.touches = inpututil.AppendJustPressedTouchIDs(p.touches[:0])
		if len(p.touches) > 0 {
			p.active, p.touch, p.touchID = true, true, p.touches[0]
			p.X, p.Y = ebiten.TouchPosition(p.touchID)
			return PointerDown
		}
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			p.active, p.touch = true, false
			p.X, p.Y = ebiten.CursorPosition()
			return PointerDown
		}
		return PointerNone
	}

	if p.touch {
		if inpututil.IsTouchJustReleased(p.touchID) {
			p.active = false
			return PointerUp
		}
		return p.moveTo(ebiten.TouchPosition(p.touchID))
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		p.active = false
		return PointerUp
	}
	return p.moveTo(ebiten.CursorPosition())
}

func (p *Pointer) moveTo(x, y int) PointerEvent {
	if x == p.X && y == p.Y {
		return PointerNone
	}
	p.X, p.Y = x, y
	return PointerMove
}

// MouseJustClicked returns the cursor position and whether the left mouse button was just clicked.
func MouseJustClicked() (x, y int, clicked bool) {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y = ebiten.CursorPosition()
		clicked = true
	}
	return
}

// PointInRect returns true if point (px, py) is inside the rectangle (rx, ry, rw, rh).
func PointInRect(px, py int, rx, ry, rw, rh float64) bool {
	return float64(px) >= rx && float64(px) <= rx+rw &&
		float64(py) >= ry && float64(py) <= ry+rh
}

// MouseWheelDelta returns the mouse wheel scroll delta.
func MouseWheelDelta() (dx, dy float64) {
	return ebiten.Wheel()
}

// Lerp for smooth animation
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
