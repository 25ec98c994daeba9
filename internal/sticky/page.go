package sticky

import "context"

// Point is a scroll position in points.
type Point struct {
	X, Y float64
}

// Insets are edge insets of a scroll surface.
type Insets struct {
	Top, Left, Bottom, Right float64
}

// ScrollView is the scrollable surface of a page. The controller reads and
// writes offsets and insets but never owns the widget.
type ScrollView interface {
	ContentOffset() Point
	SetContentOffset(p Point)
	ContentInset() Insets
	SetContentInset(in Insets)
	SetScrollIndicatorInsets(in Insets)
}

// ReloadFunc starts a one-shot reload. The returned channel yields nil or an
// error once, or is closed without a value on success. Cancelling ctx means the
// result is no longer wanted.
type ReloadFunc func(ctx context.Context) <-chan error

// PageDelegate receives scroll, drag and reload events from a page.
// Controller implements it.
type PageDelegate interface {
	PageDidScroll(p Page)
	PageDidEndDragging(p Page)
	PageDidStartReloading(p Page)
}

// Page is one swipeable page hosted by the controller.
type Page interface {
	ScrollView() ScrollView
	// SetDelegate installs the event sink; nil detaches it.
	SetDelegate(d PageDelegate)
	// ReloadSignal returns nil when the page does not support reloading.
	ReloadSignal() ReloadFunc
}

// Lifecycle is optionally implemented by pages that want to know when they
// are attached to or detached from the controller.
type Lifecycle interface {
	OnEnter()
	OnExit()
}

// CollapsibleView accepts collapse progress updates. 0 is fully expanded,
// 1 fully collapsed.
type CollapsibleView interface {
	SetCollapseProgress(progress float64, animated bool)
}

// LayoutRequester is anything that can be asked for a layout pass.
type LayoutRequester interface {
	SetNeedsLayout()
}

// Header is the stretchy header view.
type Header interface {
	CollapsibleView
	LayoutRequester
	Metrics() HeaderMetrics
	SetHeight(h float64)
}

// Pager is the horizontally paged container hosting the pages.
type Pager interface {
	ScrollToPage(index int, animated bool)
}

// PageSource feeds the pager with pages.
type PageSource interface {
	PageCount() int
	PageAt(index int) Page
}
