package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// bannerFrames is how long a banner stays up, ~3 seconds at 60fps.
const bannerFrames = 180

// ErrorBanner shows the last reload error along the bottom of a page.
// Store one per page, call Tick in Update and Draw each frame.
type ErrorBanner struct {
	text  string
	timer int
}

// Show replaces the current message and restarts the timer.
func (b *ErrorBanner) Show(msg string) {
	b.text = msg
	b.timer = bannerFrames
}

// Text is the message on display, or "" when hidden.
func (b *ErrorBanner) Text() string {
	if b.timer <= 0 {
		return ""
	}
	return b.text
}

// Tick counts the banner down by one frame.
func (b *ErrorBanner) Tick() {
	if b.timer > 0 {
		b.timer--
	}
}

// HandleClick dismisses the banner when clicked. Returns true if consumed.
func (b *ErrorBanner) HandleClick(r Rect, mx, my int) bool {
	if b.Text() == "" {
		return false
	}
	if b.rect(r).Contains(mx, my) {
		b.timer = 0
		return true
	}
	return false
}

func (b *ErrorBanner) rect(r Rect) Rect {
	h := float64(FontSizeBody + 20)
	return Rect{X: r.X + RowPadding, Y: r.Bottom() - h - RowPadding, W: r.W - RowPadding*2, H: h}
}

// Draw renders the banner at the bottom of r.
func (b *ErrorBanner) Draw(dst *ebiten.Image, r Rect) {
	msg := b.Text()
	if msg == "" {
		return
	}
	br := b.rect(r)
	alpha := float32(1)
	if b.timer < 30 {
		alpha = float32(b.timer) / 30
	}
	bg := fade(ColorSurface, float64(alpha))
	vector.DrawFilledRect(dst, float32(br.X), float32(br.Y), float32(br.W), float32(br.H), bg, false)
	vector.StrokeRect(dst, float32(br.X), float32(br.Y), float32(br.W), float32(br.H), 1, ColorError, false)
	DrawTextAlpha(dst, TruncateText(msg, br.W-24, FontSizeBody), br.X+12, br.Y+10, FontSizeBody, ColorError, alpha)
}
