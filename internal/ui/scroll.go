package ui

import "github.com/depeter/stickypager/internal/scroll"

// ScrollInput feeds pointer drags and the mouse wheel into a scroll.View.
// Keep one per screen and call Update once per frame.
type ScrollInput struct {
	pointer Pointer
	view    *scroll.View
}

// Update routes this frame's input to view. Drags only begin inside area;
// a drag in progress follows the pointer anywhere. Switching views ends
// any drag on the previous one.
func (si *ScrollInput) Update(view *scroll.View, area Rect) {
	if si.view != view {
		if si.view != nil {
			si.view.EndDrag()
		}
		si.view = view
	}

	switch si.pointer.Update() {
	case PointerDown:
		if view != nil && area.Contains(si.pointer.X, si.pointer.Y) {
			view.BeginDrag(float64(si.pointer.Y))
		}
	case PointerMove:
		if view != nil {
			view.DragTo(float64(si.pointer.Y))
		}
	case PointerUp:
		if view != nil {
			view.EndDrag()
		}
	}

	if view == nil || view.Dragging() {
		return
	}
	if _, wy := MouseWheelDelta(); wy != 0 {
		view.ScrollBy(-wy * ScrollWheelSpeed)
	}
}

// Dragging reports whether a drag is being tracked.
func (si *ScrollInput) Dragging() bool {
	return si.view != nil && si.view.Dragging()
}
