package ui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type iconFunc func(dst *ebiten.Image, cx, cy, r float32, clr color.Color)

var tabIcons = []iconFunc{drawListIcon, drawGridIcon, drawInfoIcon}

// drawTabIcon draws the icon for tab i, cycling through the set.
func drawTabIcon(dst *ebiten.Image, i int, cx, cy, r float32, clr color.Color) {
	tabIcons[i%len(tabIcons)](dst, cx, cy, r, clr)
}

// drawListIcon draws a list/document icon at (cx, cy) with given radius.
func drawListIcon(dst *ebiten.Image, cx, cy, r float32, clr color.Color) {
	lineW := r * 1.2
	gap := r * 0.5
	for i := -1; i <= 1; i++ {
		ly := cy + float32(i)*gap
		vector.DrawFilledCircle(dst, cx-lineW*0.6, ly, 1.5, clr, false)
		vector.StrokeLine(dst, cx-lineW*0.3, ly, cx+lineW*0.7, ly, 1.8, clr, false)
	}
}

// drawGridIcon draws a 2x2 tile icon.
func drawGridIcon(dst *ebiten.Image, cx, cy, r float32, clr color.Color) {
	s := r * 0.8
	gap := r * 0.2
	for _, dx := range []float32{-1, 1} {
		for _, dy := range []float32{-1, 1} {
			x := cx + dx*gap/2
			if dx < 0 {
				x -= s
			}
			y := cy + dy*gap/2
			if dy < 0 {
				y -= s
			}
			vector.DrawFilledRect(dst, x, y, s, s, clr, false)
		}
	}
}

// drawInfoIcon draws a circled "i".
func drawInfoIcon(dst *ebiten.Image, cx, cy, r float32, clr color.Color) {
	vector.StrokeCircle(dst, cx, cy, r, 1.5, clr, false)
	vector.DrawFilledCircle(dst, cx, cy-r*0.45, 1.5, clr, false)
	vector.StrokeLine(dst, cx, cy-r*0.1, cx, cy+r*0.55, 1.8, clr, false)
}

// drawSpinnerArc draws a ring of dots with one bright head at angle phase.
func drawSpinnerArc(dst *ebiten.Image, cx, cy, r float32, phase float64, clr color.RGBA) {
	const dots = 10
	for i := 0; i < dots; i++ {
		angle := phase - float64(i)*2*math.Pi/dots
		tx := cx + r*float32(math.Cos(angle))
		ty := cy + r*float32(math.Sin(angle))
		vector.DrawFilledCircle(dst, tx, ty, 2.5, fade(clr, 1-float64(i)/dots), false)
	}
}
