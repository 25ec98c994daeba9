package sticky

import (
	"context"
	"fmt"
	"log"
)

// DefaultSpinnerHeight is the height of the reload spinner row.
const DefaultSpinnerHeight = 56.0

// Options tune a Controller. Zero values select the defaults.
type Options struct {
	SpinnerHeight    float64
	AnimateThreshold float64
	// RelayoutOnReloadFailure makes a failed reload re-derive the header and
	// request layout the way a successful one does. Off by default.
	RelayoutOnReloadFailure bool

	Pager   Pager
	Layout  LayoutRequester
	Context context.Context
	Logger  *log.Logger
}

// Controller keeps a sticky header and navigation bar in sync with the scroll
// position of the active page and drives pull-to-reload. All methods must be
// called from the UI thread.
type Controller struct {
	header Header
	navBar CollapsibleView
	pages  []Page
	opts   Options
	log    *log.Logger

	metrics      HeaderMetrics
	currentIndex int
	headerHeight float64
	progress     *ProgressTracker
	reload       *ReloadController
}

// New creates a controller for a fixed list of pages. Header metrics are
// validated up front; navBar may be nil.
func New(header Header, navBar CollapsibleView, pages []Page, opts Options) (*Controller, error) {
	if header == nil {
		return nil, fmt.Errorf("sticky: header is required")
	}
	metrics := header.Metrics()
	if err := metrics.Validate(); err != nil {
		return nil, fmt.Errorf("sticky: %w", err)
	}
	if opts.SpinnerHeight <= 0 {
		opts.SpinnerHeight = DefaultSpinnerHeight
	}
	if opts.AnimateThreshold <= 0 {
		opts.AnimateThreshold = DefaultAnimateThreshold
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Controller{
		header:       header,
		navBar:       navBar,
		pages:        append([]Page(nil), pages...),
		opts:         opts,
		log:          logger,
		metrics:      metrics,
		currentIndex: -1,
		headerHeight: metrics.MaxHeight,
		progress:     NewProgressTracker(opts.AnimateThreshold),
		reload:       NewReloadController(opts.Context),
	}, nil
}

// Load shows the first page.
func (c *Controller) Load() {
	c.SetPage(0, false)
}

// SetPage makes pages[index] the active page. It is a no-op without pages and
// panics when index is out of range.
func (c *Controller) SetPage(index int, animated bool) {
	if len(c.pages) == 0 {
		return
	}
	if index < 0 || index >= len(c.pages) {
		panic(fmt.Sprintf("sticky: page index %d out of range [0,%d)", index, len(c.pages)))
	}

	oldIndex := c.currentIndex
	c.currentIndex = index
	page := c.pages[index]

	if oldIndex != index {
		if oldIndex >= 0 {
			c.detach(c.pages[oldIndex])
		}
		if lc, ok := page.(Lifecycle); ok {
			lc.OnEnter()
		}
	}
	page.SetDelegate(c)

	if c.reload.Loading() && page.ReloadSignal() == nil {
		c.reload.Abandon()
	}

	// Carry the vertical position over before the header is derived so the
	// new page shows up without a jump.
	if oldIndex >= 0 && oldIndex != index {
		y := c.pages[oldIndex].ScrollView().ContentOffset().Y
		page.ScrollView().SetContentOffset(Point{X: 0, Y: y})
	}

	c.updateInsets(page)
	c.scrollDidUpdate(page)

	if c.opts.Pager != nil {
		c.opts.Pager.ScrollToPage(index, animated)
	}
}

func (c *Controller) detach(p Page) {
	p.SetDelegate(nil)
	if lc, ok := p.(Lifecycle); ok {
		lc.OnExit()
	}
}

// PageDidScroll re-derives insets, header height and collapse progress.
func (c *Controller) PageDidScroll(p Page) {
	c.updateInsets(p)
	c.scrollDidUpdate(p)
}

// PageDidEndDragging starts a reload when the page was released while pulled
// past the stretch limit.
func (c *Controller) PageDidEndDragging(p Page) {
	if c.reload.Loading() {
		return
	}
	adjusted := AdjustedOffsetY(p.ScrollView())
	if adjusted < 0 && c.metrics.MaxHeight-adjusted > c.metrics.StretchLimit() {
		c.tryReloading(p)
	}
}

// PageDidStartReloading starts a reload on behalf of the page.
func (c *Controller) PageDidStartReloading(p Page) {
	c.tryReloading(p)
}

// Update observes reload completion. Call once per frame.
func (c *Controller) Update() {
	finished, err := c.reload.Poll()
	if !finished {
		return
	}
	page := c.CurrentPage()
	if page == nil {
		return
	}
	if err != nil {
		c.log.Printf("Reload failed: %v", err)
		if !c.opts.RelayoutOnReloadFailure {
			c.updateInsets(page)
			return
		}
	}
	c.updateInsets(page)
	c.scrollDidUpdate(page)
	c.requestLayout()
}

// DidLayout re-applies insets to the current page after a layout pass.
func (c *Controller) DidLayout() {
	if page := c.CurrentPage(); page != nil {
		c.updateInsets(page)
	}
}

// Close abandons any reload and detaches the current page.
func (c *Controller) Close() {
	c.reload.Close()
	if page := c.CurrentPage(); page != nil {
		c.detach(page)
	}
}

func (c *Controller) tryReloading(p Page) {
	if c.reload.Loading() {
		return
	}
	if !c.reload.Begin(p.ReloadSignal()) {
		return
	}
	c.updateInsets(p)
	c.scrollDidUpdate(p)
	c.requestLayout()
}

func (c *Controller) loadingExtra() float64 {
	if c.reload.Loading() {
		return c.opts.SpinnerHeight
	}
	return 0
}

func (c *Controller) updateInsets(p Page) {
	p.ScrollView().SetContentInset(Insets{Top: c.metrics.MaxHeight + c.loadingExtra()})
}

func (c *Controller) scrollDidUpdate(p Page) {
	sv := p.ScrollView()
	height := c.metrics.HeightFor(AdjustedOffsetY(sv))
	c.headerHeight = height
	c.header.SetHeight(height)
	c.header.SetNeedsLayout()

	sv.SetScrollIndicatorInsets(Insets{Top: height + c.loadingExtra()})

	progress, animated, ok := c.progress.Update(height, c.metrics)
	if !ok {
		return
	}
	c.header.SetCollapseProgress(progress, animated)
	if c.navBar != nil {
		c.navBar.SetCollapseProgress(progress, animated)
	}
}

func (c *Controller) requestLayout() {
	if c.opts.Layout != nil {
		c.opts.Layout.SetNeedsLayout()
	}
}

// CurrentIndex is -1 until the first page is shown.
func (c *Controller) CurrentIndex() int { return c.currentIndex }

// CurrentPage returns the active page or nil.
func (c *Controller) CurrentPage() Page {
	if c.currentIndex < 0 || c.currentIndex >= len(c.pages) {
		return nil
	}
	return c.pages[c.currentIndex]
}

// IsLoading reports whether a reload is in flight.
func (c *Controller) IsLoading() bool { return c.reload.Loading() }

// ReloadState returns the state of the reload machine.
func (c *Controller) ReloadState() ReloadState { return c.reload.State() }

// HeaderHeight is the last derived header height.
func (c *Controller) HeaderHeight() float64 { return c.headerHeight }

// Progress is the last emitted collapse progress.
func (c *Controller) Progress() float64 {
	p, _ := c.progress.Last()
	return p
}

// Metrics returns the header metrics captured at construction.
func (c *Controller) Metrics() HeaderMetrics { return c.metrics }

// SpinnerHeight is the extra inset applied while loading.
func (c *Controller) SpinnerHeight() float64 { return c.opts.SpinnerHeight }

// PageCount implements PageSource.
func (c *Controller) PageCount() int { return len(c.pages) }

// PageAt implements PageSource.
func (c *Controller) PageAt(index int) Page { return c.pages[index] }
