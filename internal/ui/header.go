package ui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/depeter/stickypager/internal/sticky"
)

// StickyHeader is the stretchy header drawn above the pages. Its title
// shrinks and its subtitle fades out as the header collapses.
type StickyHeader struct {
	Title    string
	Subtitle string

	metrics     sticky.HeaderMetrics
	height      float64
	progress    float64
	target      float64
	needsLayout bool
}

func NewStickyHeader(title string, m sticky.HeaderMetrics) *StickyHeader {
	return &StickyHeader{
		Title:   title,
		metrics: m,
		height:  m.MaxHeight,
	}
}

func (h *StickyHeader) Metrics() sticky.HeaderMetrics { return h.metrics }

func (h *StickyHeader) SetHeight(v float64) { h.height = v }

func (h *StickyHeader) Height() float64 { return h.height }

func (h *StickyHeader) SetNeedsLayout() { h.needsLayout = true }

// TakeNeedsLayout reports and clears the pending layout flag.
func (h *StickyHeader) TakeNeedsLayout() bool {
	n := h.needsLayout
	h.needsLayout = false
	return n
}

// SetCollapseProgress animates towards progress, or jumps there.
func (h *StickyHeader) SetCollapseProgress(progress float64, animated bool) {
	h.target = progress
	if !animated {
		h.progress = progress
	}
}

// Progress is the displayed (possibly still animating) progress.
func (h *StickyHeader) Progress() float64 { return h.progress }

// Animate advances the progress animation. Call from Update().
func (h *StickyHeader) Animate() {
	h.progress = Lerp(h.progress, h.target, ProgressAnimSpeed)
}

func (h *StickyHeader) Draw(dst *ebiten.Image, r Rect) {
	p := h.progress
	bg := mixColor(ColorPrimaryDark, ColorSurface, p)
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), bg, false)
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Bottom()-1), float32(r.W), 1, ColorSurfaceHover, false)

	if r.H <= 0 {
		return
	}

	// Title sits on the bottom edge and shrinks towards the heading size.
	size := math.Round(FontSizeTitle - (FontSizeTitle-FontSizeHeading)*p)
	_, th := MeasureText(h.Title, size)
	titleY := r.Bottom() - th - RowPadding
	if h.Subtitle != "" {
		sub := float32(1 - p*2)
		DrawTextAlpha(dst, h.Subtitle, r.X+RowPadding, r.Bottom()-FontSizeSmall-RowPadding, FontSizeSmall, ColorText, sub)
		if sub > 0 {
			titleY -= (FontSizeSmall + 6) * float64(sub)
		}
	}
	DrawText(dst, TruncateText(h.Title, r.W-RowPadding*2, size), r.X+RowPadding, titleY, size, ColorText)
}

func mixColor(a, b color.RGBA, t float64) color.RGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}

// fade scales c by alpha, keeping it premultiplied.
func fade(c color.RGBA, alpha float64) color.RGBA {
	alpha = math.Min(math.Max(alpha, 0), 1)
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}
