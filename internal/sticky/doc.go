// Package sticky synchronizes a stretchy header and a navigation bar with the
// scroll position of a set of swipeable pages.
//
// The Controller listens to the active page, maps its scroll offset to a
// header height (StretchHeight), maps that height to a collapse progress
// (CollapseProgress) and pushes both to the header and navigation bar. Pulling
// the page past the header's stretch limit and releasing it starts a reload;
// at most one reload runs at a time.
//
// The package does no drawing. Pages, the header, the navigation bar, the
// pager and the layout engine are collaborators described by the interfaces
// in page.go. Everything runs on the UI thread; reload completion is observed
// by calling Controller.Update once per frame.
package sticky
