package app

import (
	"context"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/depeter/stickypager/internal/config"
	"github.com/depeter/stickypager/internal/feed"
	"github.com/depeter/stickypager/internal/sticky"
	"github.com/depeter/stickypager/internal/ui"
)

// Game implements ebiten.Game and wires the sticky controller to the
// Ebitengine views.
type Game struct {
	Config *config.Config
	Source *feed.Source

	Width, Height int

	header  *ui.StickyHeader
	navBar  *ui.NavBar
	spinner ui.Spinner
	pages   []*ui.ListPage
	layout  *ui.StickyLayout
	pager   *ui.Pager
	ctrl    *sticky.Controller
	input   ui.ScrollInput
	keys    keybinds
}

// NewGame seeds the feeds, builds one page per configured page and shows the
// first one. safeArea may be nil.
func NewGame(ctx context.Context, cfg *config.Config, src *feed.Source, safeArea func() sticky.Insets) (*Game, error) {
	g := &Game{
		Config: cfg,
		Source: src,
		Width:  cfg.UI.Width,
		Height: cfg.UI.Height,
		header: ui.NewStickyHeader(cfg.Header.Title, cfg.Metrics()),
		keys:   resolveKeybinds(cfg.Keybinds),
	}

	tabs := make([]string, 0, len(cfg.Pages))
	pages := make([]sticky.Page, 0, len(cfg.Pages))
	for _, pc := range cfg.Pages {
		names := pc.FeedNames()
		for _, name := range names {
			src.Seed(name, pc.Rows)
		}
		var reload sticky.ReloadFunc
		if pc.Reloadable {
			reload = src.ReloadFunc(names...)
		}
		page := ui.NewListPage(pc.Title, g.sections(names), reload)
		g.pages = append(g.pages, page)
		pages = append(pages, page)
		tabs = append(tabs, pc.Title)
	}
	if len(g.pages) > 0 {
		g.header.Subtitle = g.pages[0].Title
	}

	g.navBar = ui.NewNavBar(cfg.NavBar.Title, cfg.NavBar.Height, tabs)
	g.layout = ui.NewStickyLayout(float64(g.Width), float64(g.Height), safeArea)
	g.pager = ui.NewPager(nil, float64(g.Width), float64(g.Height), safeArea)

	ctrl, err := sticky.New(g.header, g.navBar, pages, sticky.Options{
		SpinnerHeight:           cfg.Reload.SpinnerHeight,
		AnimateThreshold:        cfg.Reload.AnimateThreshold,
		RelayoutOnReloadFailure: cfg.Reload.RelayoutOnFailure,
		Pager:                   g.pager,
		Layout:                  g.layout,
		Context:                 ctx,
	})
	if err != nil {
		return nil, err
	}
	g.ctrl = ctrl
	g.pager.Source = ctrl
	g.pager.SizePages()
	g.navBar.OnSelect = func(index int) { g.showPage(index, true) }

	ctrl.Load()
	if last := cfg.UI.LastPage; last > 0 && last < len(g.pages) {
		g.showPage(last, false)
	}
	g.relayout()
	return g, nil
}

func (g *Game) sections(names []string) func() []ui.Section {
	return func() []ui.Section {
		sections := make([]ui.Section, 0, len(names))
		for _, name := range names {
			items := g.Source.Items(name)
			rows := make([]ui.Row, len(items))
			for i, it := range items {
				rows[i] = ui.Row{Title: it.Title, Subtitle: it.Subtitle}
			}
			sections = append(sections, ui.Section{Title: name, Rows: rows})
		}
		return sections
	}
}

func (g *Game) showPage(index int, animated bool) {
	if index < 0 || index >= len(g.pages) {
		return
	}
	g.ctrl.SetPage(index, animated)
	g.navBar.Active = index
	g.header.Subtitle = g.pages[index].Title
}

func (g *Game) currentPage() *ui.ListPage {
	i := g.ctrl.CurrentIndex()
	if i < 0 || i >= len(g.pages) {
		return nil
	}
	return g.pages[i]
}

// Close abandons any running reload, detaches the active page and saves it
// as the page to start on next time.
func (g *Game) Close() {
	if i := g.ctrl.CurrentIndex(); i >= 0 && i != g.Config.UI.LastPage {
		g.Config.UI.LastPage = i
		if err := g.Config.Save(); err != nil {
			log.Printf("Failed to save config: %v", err)
		}
	}
	g.ctrl.Close()
}

func (g *Game) Update() error {
	// Alt+Enter toggles fullscreen
	if (inpututil.IsKeyJustPressed(ebiten.KeyEnter) && ebiten.IsKeyPressed(ebiten.KeyAlt)) ||
		g.keys.fullscreen.justPressed() {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	// F12 toggles debug overlay
	ui.ToggleDebugOverlay()

	g.handleKeys()

	page := g.currentPage()
	frames := g.layout.Frames()
	consumed := false
	if mx, my, clicked := ui.MouseJustClicked(); clicked {
		consumed = g.navBar.HandleClick(frames.NavBar, mx, my)
		if !consumed && page != nil {
			consumed = page.HandleClick(frames.Pager, mx, my)
		}
	}
	// Drags wait for a page slide to finish.
	if !consumed && page != nil && g.pager.Settled() {
		dragArea := frames.Pager
		dragArea.Y = frames.NavBar.Bottom()
		dragArea.H = frames.Pager.Bottom() - dragArea.Y
		g.input.Update(page.View(), dragArea)
	}

	for _, p := range g.pages {
		p.Update()
	}
	g.ctrl.Update()

	g.header.Animate()
	g.navBar.Animate()
	g.pager.Animate()
	if g.ctrl.IsLoading() {
		g.spinner.Animate()
	}

	headerDirty := g.header.TakeNeedsLayout()
	if headerDirty || g.layout.NeedsLayout() {
		g.relayout()
	}
	return nil
}

func (g *Game) handleKeys() {
	idx := g.ctrl.CurrentIndex()
	if g.keys.nextPage.justPressed() {
		g.showPage(idx+1, true)
	}
	if g.keys.prevPage.justPressed() {
		g.showPage(idx-1, true)
	}

	page := g.currentPage()
	if page == nil {
		return
	}
	if g.keys.reload.justPressed() {
		if page.ReloadSignal() == nil {
			log.Printf("Page %q does not reload", page.Title)
		}
		page.RequestReload()
	}
	if g.keys.scrollTop.justPressed() {
		page.View().ScrollToTop()
	}
	if !g.input.Dragging() {
		if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
			page.View().ScrollBy(ui.ScrollKeySpeed)
		}
		if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
			page.View().ScrollBy(-ui.ScrollKeySpeed)
		}
	}
}

// relayout runs a layout pass and lets the controller re-apply insets.
func (g *Game) relayout() {
	g.layout.Layout(ui.LayoutState{
		HeaderHeight:  g.ctrl.HeaderHeight(),
		NavBarHeight:  g.navBar.Height,
		SpinnerHeight: g.ctrl.SpinnerHeight(),
		Loading:       g.ctrl.IsLoading(),
	})
	g.ctrl.DidLayout()
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(ui.ColorBackground)
	f := g.layout.Frames()
	g.pager.Draw(screen, f.Pager)
	g.header.Draw(screen, f.Header)
	g.spinner.Draw(screen, f.Spinner)
	g.navBar.Draw(screen, f.NavBar)
	ui.DrawDebugOverlay(screen, g.debugInfo())
}

func (g *Game) debugInfo() ui.DebugInfo {
	info := ui.DebugInfo{
		Page:         g.ctrl.CurrentIndex(),
		Pages:        g.ctrl.PageCount(),
		HeaderHeight: g.ctrl.HeaderHeight(),
		Progress:     g.ctrl.Progress(),
		Reload:       g.ctrl.ReloadState().String(),
	}
	if page := g.currentPage(); page != nil {
		sv := page.ScrollView()
		info.OffsetY = sv.ContentOffset().Y
		info.InsetTop = sv.ContentInset().Top
	}
	return info
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.Width || outsideHeight != g.Height {
		g.Width, g.Height = outsideWidth, outsideHeight
		g.layout.Width, g.layout.Height = float64(outsideWidth), float64(outsideHeight)
		g.layout.SetNeedsLayout()
		g.pager.Resize(float64(outsideWidth), float64(outsideHeight))
	}
	return g.Width, g.Height
}
