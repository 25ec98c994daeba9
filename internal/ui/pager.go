package ui

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/depeter/stickypager/internal/scroll"
	"github.com/depeter/stickypager/internal/sticky"
)

// Drawable is a page that can render itself into a frame.
type Drawable interface {
	Draw(dst *ebiten.Image, r Rect)
}

// Pager lays pages out side by side and slides between them. The user
// cannot swipe it; pages change only through ScrollToPage. It implements
// sticky.Pager.
type Pager struct {
	Source   sticky.PageSource
	SafeArea func() sticky.Insets
	Width    float64
	Height   float64

	slide scroll.Slide
}

func NewPager(src sticky.PageSource, width, height float64, safeArea func() sticky.Insets) *Pager {
	return &Pager{
		Source:   src,
		SafeArea: safeArea,
		Width:    width,
		Height:   height,
		slide:    scroll.Slide{Speed: PageAnimSpeed},
	}
}

// ScrollToPage moves to the page at index, sliding there when animated.
func (pg *Pager) ScrollToPage(index int, animated bool) {
	pg.slide.MoveTo(float64(index)*pg.Width, animated)
}

// Animate advances the slide. Call from Update().
func (pg *Pager) Animate() { pg.slide.Step() }

// Settled reports whether the slide animation has finished.
func (pg *Pager) Settled() bool { return pg.slide.Settled() }

// PageHeight is the height pages are materialized with: the screen minus
// the safe-area top.
func (pg *Pager) PageHeight() float64 {
	h := pg.Height
	if pg.SafeArea != nil {
		h -= pg.SafeArea().Top
	}
	return math.Max(h, 0)
}

// Resize updates the pager to a new screen size and keeps the target page
// in place.
func (pg *Pager) Resize(width, height float64) {
	if width == pg.Width && height == pg.Height {
		return
	}
	if pg.Width > 0 {
		index := math.Round(pg.slide.Target() / pg.Width)
		pg.slide.MoveTo(index*width, false)
	}
	pg.Width, pg.Height = width, height
	pg.SizePages()
}

// SizePages gives every scroll.View page the materialized page height.
func (pg *Pager) SizePages() {
	if pg.Source == nil {
		return
	}
	h := pg.PageHeight()
	var bottom float64
	if pg.SafeArea != nil {
		bottom = pg.SafeArea().Bottom
	}
	for i := 0; i < pg.Source.PageCount(); i++ {
		if v, ok := pg.Source.PageAt(i).ScrollView().(*scroll.View); ok {
			v.ViewportHeight = h
			// Every page can scroll far enough to collapse the header.
			v.MinContentHeight = math.Max(h-bottom, 0)
		}
	}
}

// Draw renders the pages overlapping frame.
func (pg *Pager) Draw(dst *ebiten.Image, frame Rect) {
	if pg.Source == nil {
		return
	}
	pg.SizePages()
	for i := 0; i < pg.Source.PageCount(); i++ {
		x := frame.X + float64(i)*pg.Width - pg.slide.Position()
		if x+pg.Width <= frame.X || x >= frame.X+frame.W {
			continue
		}
		if d, ok := pg.Source.PageAt(i).(Drawable); ok {
			d.Draw(dst, Rect{X: x, Y: frame.Y, W: pg.Width, H: pg.PageHeight()})
		}
	}
}
