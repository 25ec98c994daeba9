package icon

import (
	"image"
	"image/color"
	"math"
)

// Theme colors from the app, premultiplied
var (
	primary     = color.RGBA{R: 0x00, G: 0xA4, B: 0xDC, A: 0xFF}
	primaryDark = color.RGBA{R: 0x00, G: 0x78, B: 0xA8, A: 0xFF}
	darkBG      = color.RGBA{R: 0x10, G: 0x10, B: 0x14, A: 0xFF}
	rowCol      = color.RGBA{R: 0x28, G: 0x28, B: 0x34, A: 0xFF}
	textCol     = color.RGBA{R: 0xB6, G: 0xB6, B: 0xB6, A: 0xD0}
	glowCol     = color.RGBA{R: 0x00, G: 0x3D, B: 0x52, A: 0x60}
)

// Generate returns 64x64 and 32x32 icon images for use with ebiten.SetWindowIcon.
func Generate() []image.Image {
	return []image.Image{
		generate(64),
		generate(32),
	}
}

func generate(size int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	s := float64(size)

	fillRect(img, 0, 0, size, size, darkBG)

	// Stretched header with a title bar
	fillRoundedRect(img, s*0.08, s*0.08, s*0.84, s*0.36, s*0.08, primaryDark)
	fillRoundedRect(img, s*0.16, s*0.30, s*0.44, s*0.07, s*0.03, textCol)

	// Pull-to-reload ring below the header
	drawRing(img, s*0.50, s*0.53, s*0.06, s*0.025, primary)

	// List rows
	for i, y := range []float64{0.64, 0.79} {
		fillRoundedRect(img, s*0.08, s*y, s*0.84, s*0.11, s*0.03, rowCol)
		fillCircle(img, s*0.17, s*(y+0.055), s*0.035, glowCol)
		fillRoundedRect(img, s*0.26, s*(y+0.04), s*(0.50-0.12*float64(i)), s*0.03, s*0.015, textCol)
	}

	return img
}

// drawRing strokes a circle of radius r with the given width, leaving a gap
// at the top like a spinner.
func drawRing(img *image.RGBA, cx, cy, r, width float64, c color.Color) {
	steps := int(2 * math.Pi * r * 2)
	for i := 0; i < steps; i++ {
		a := float64(i) / float64(steps) * 2 * math.Pi
		if a > math.Pi*1.3 && a < math.Pi*1.7 {
			continue
		}
		fillCircle(img, cx+math.Cos(a)*r, cy+math.Sin(a)*r, width, c)
	}
}

func fillRect(img *image.RGBA, x0, y0, w, h int, c color.Color) {
	bounds := img.Bounds()
	for y := max(y0, 0); y < y0+h && y < bounds.Max.Y; y++ {
		for x := max(x0, 0); x < x0+w && x < bounds.Max.X; x++ {
			blendPixel(img, x, y, c)
		}
	}
}

// fillRoundedRect fills the rectangle with corners of radius r.
func fillRoundedRect(img *image.RGBA, xf, yf, wf, hf, r float64, c color.Color) {
	bounds := img.Bounds()
	for y := max(int(yf), 0); y <= int(yf+hf) && y < bounds.Max.Y; y++ {
		for x := max(int(xf), 0); x <= int(xf+wf) && x < bounds.Max.X; x++ {
			// Distance from the inner rectangle shrunk by r.
			dx := math.Max(math.Max(xf+r-float64(x), float64(x)-(xf+wf-r)), 0)
			dy := math.Max(math.Max(yf+r-float64(y), float64(y)-(yf+hf-r)), 0)
			if dx*dx+dy*dy <= r*r {
				blendPixel(img, x, y, c)
			}
		}
	}
}

func fillCircle(img *image.RGBA, cx, cy, r float64, c color.Color) {
	bounds := img.Bounds()
	r2 := r * r
	for y := max(int(cy-r), 0); y <= int(cy+r+1) && y < bounds.Max.Y; y++ {
		for x := max(int(cx-r), 0); x <= int(cx+r+1) && x < bounds.Max.X; x++ {
			dx := float64(x) - cx
			dy := float64(y) - cy
			if dx*dx+dy*dy <= r2 {
				blendPixel(img, x, y, c)
			}
		}
	}
}

// blendPixel alpha-blends color c onto the existing pixel at (x, y).
func blendPixel(img *image.RGBA, x, y int, c color.Color) {
	r0, g0, b0, a0 := c.RGBA()
	if a0 == 0 {
		return
	}
	if a0 == 0xFFFF {
		img.Set(x, y, c)
		return
	}

	// color.RGBA is premultiplied, so the source only needs the destination
	// scaled by the inverse alpha.
	existing := img.RGBAAt(x, y)
	inv := 0xFFFF - a0
	mix := func(src uint32, dst uint8) uint8 {
		return uint8(min(src+uint32(dst)*257*inv/0xFFFF, 0xFFFF) >> 8)
	}
	img.SetRGBA(x, y, color.RGBA{
		R: mix(r0, existing.R),
		G: mix(g0, existing.G),
		B: mix(b0, existing.B),
		A: 0xFF,
	})
}
