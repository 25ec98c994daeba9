package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/depeter/stickypager/internal/scroll"
	"github.com/depeter/stickypager/internal/sticky"
)

// Row is one line of a list page.
type Row struct {
	Title    string
	Subtitle string
}

// Section groups rows under a title.
type Section struct {
	Title string
	Rows  []Row
}

// ListPage is a vertically scrolling list of sections. It implements
// sticky.Page and sticky.Lifecycle.
type ListPage struct {
	Title string
	// Sections is called every frame; it reflects the latest reloaded data.
	Sections func() []Section

	view     scroll.View
	delegate sticky.PageDelegate
	reload   sticky.ReloadFunc
	errs     chan error
	banner   ErrorBanner
	active   bool
}

// NewListPage creates a page. A nil reload makes the page non-reloadable.
func NewListPage(title string, sections func() []Section, reload sticky.ReloadFunc) *ListPage {
	p := &ListPage{
		Title:    title,
		Sections: sections,
		reload:   reload,
		errs:     make(chan error, 1),
	}
	p.view.OnScroll = func() {
		if p.delegate != nil {
			p.delegate.PageDidScroll(p)
		}
	}
	p.view.OnEndDrag = func() {
		if p.delegate != nil {
			p.delegate.PageDidEndDragging(p)
		}
	}
	p.view.ContentHeight = p.contentHeight()
	return p
}

func (p *ListPage) ScrollView() sticky.ScrollView { return &p.view }

// View exposes the concrete scroll model for input routing.
func (p *ListPage) View() *scroll.View { return &p.view }

func (p *ListPage) SetDelegate(d sticky.PageDelegate) { p.delegate = d }

func (p *ListPage) ReloadSignal() sticky.ReloadFunc {
	if p.reload == nil {
		return nil
	}
	return sticky.ReportFailures(p.reload, p.errs)
}

// RequestReload asks the controller to reload this page.
func (p *ListPage) RequestReload() {
	if p.delegate != nil {
		p.delegate.PageDidStartReloading(p)
	}
}

func (p *ListPage) OnEnter() { p.active = true }

func (p *ListPage) OnExit() {
	p.active = false
	p.view.EndDrag()
}

// Active reports whether the controller is showing this page.
func (p *ListPage) Active() bool { return p.active }

// Update refreshes the content size, advances scrolling and the error
// banner. Call once per frame for every page.
func (p *ListPage) Update() {
	select {
	case err := <-p.errs:
		p.banner.Show("Reload failed: " + err.Error())
	default:
	}
	p.banner.Tick()
	p.view.ContentHeight = p.contentHeight()
	p.view.Step()
}

// HandleClick lets the error banner consume a click inside r.
func (p *ListPage) HandleClick(r Rect, mx, my int) bool {
	return p.banner.HandleClick(r, mx, my)
}

func (p *ListPage) contentHeight() float64 {
	if p.Sections == nil {
		return 0
	}
	h := 0.0
	for _, s := range p.Sections() {
		h += SectionTitleH + float64(len(s.Rows))*(RowHeight+RowGap)
	}
	return h + RowPadding
}

// Draw renders the visible rows into r, clipped to r.
func (p *ListPage) Draw(dst *ebiten.Image, r Rect) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	clip := dst.SubImage(rectImage(r)).(*ebiten.Image)
	vector.DrawFilledRect(clip, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), ColorBackground, false)

	if p.Sections != nil {
		y := r.Y - p.view.ContentOffset().Y
		for _, s := range p.Sections() {
			if y+SectionTitleH >= r.Y && y <= r.Bottom() {
				DrawText(clip, s.Title, r.X+RowPadding, y+SectionTitleH-FontSizeHeading-8, FontSizeHeading, ColorTextSecondary)
			}
			y += SectionTitleH
			for _, row := range s.Rows {
				if y+RowHeight >= r.Y && y <= r.Bottom() {
					p.drawRow(clip, row, Rect{X: r.X, Y: y, W: r.W, H: RowHeight})
				}
				y += RowHeight + RowGap
			}
		}
	}

	p.banner.Draw(clip, r)
}

func (p *ListPage) drawRow(dst *ebiten.Image, row Row, r Rect) {
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), ColorSurface, false)
	vector.DrawFilledCircle(dst, float32(r.X+RowPadding+18), float32(r.Y+r.H/2), 18, ColorSurfaceHover, false)
	tx := r.X + RowPadding*2 + 36
	tw := r.W - tx - RowPadding
	DrawText(dst, TruncateText(row.Title, tw, FontSizeBody), tx, r.Y+14, FontSizeBody, ColorText)
	if row.Subtitle != "" {
		DrawText(dst, TruncateText(row.Subtitle, tw, FontSizeSmall), tx, r.Y+40, FontSizeSmall, ColorTextSecondary)
	}
}
