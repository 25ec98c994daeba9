package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var debugOverlayVisible bool

// ToggleDebugOverlay toggles the debug overlay on F12.
func ToggleDebugOverlay() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		debugOverlayVisible = !debugOverlayVisible
	}
}

// DebugInfo is the controller state shown by the overlay.
type DebugInfo struct {
	Page         int
	Pages        int
	OffsetY      float64
	InsetTop     float64
	HeaderHeight float64
	Progress     float64
	Reload       string
}

func (d DebugInfo) lines() []string {
	return []string{
		fmt.Sprintf("page      %d/%d", d.Page+1, d.Pages),
		fmt.Sprintf("offset.y  %.1f", d.OffsetY),
		fmt.Sprintf("inset.top %.1f", d.InsetTop),
		fmt.Sprintf("header    %.1f", d.HeaderHeight),
		fmt.Sprintf("progress  %.3f", d.Progress),
		fmt.Sprintf("reload    %s", d.Reload),
	}
}

// DrawDebugOverlay draws the debug overlay if visible.
func DrawDebugOverlay(screen *ebiten.Image, info DebugInfo) {
	if !debugOverlayVisible {
		return
	}

	const (
		padX    = 16.0
		padY    = 12.0
		lineH   = 18.0
		marginR = 20.0
		marginB = 20.0
	)

	lines := info.lines()
	panelH := float64(len(lines)+1)*lineH + padY*2
	panelW := 220.0
	b := screen.Bounds()
	px := float64(b.Dx()) - panelW - marginR
	py := float64(b.Dy()) - panelH - marginB

	vector.DrawFilledRect(screen, float32(px), float32(py), float32(panelW), float32(panelH), ColorOverlay, false)

	x := px + padX
	y := py + padY

	DrawText(screen, "Debug (F12 to close)", x, y, FontSizeSmall, ColorPrimary)
	y += lineH
	for _, line := range lines {
		DrawText(screen, line, x, y, FontSizeSmall, ColorText)
		y += lineH
	}
}
