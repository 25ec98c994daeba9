package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// NavBar is the fixed bar overlaid on top of the header. Its background
// becomes opaque and the collapsed title fades in as the header collapses.
// The tab strip along its bottom edge switches pages.
type NavBar struct {
	Title  string
	Height float64
	Tabs   []string
	Active int

	// OnSelect is called with the index of a clicked tab.
	OnSelect func(index int)

	progress float64
	target   float64
}

func NewNavBar(title string, height float64, tabs []string) *NavBar {
	return &NavBar{Title: title, Height: height, Tabs: tabs}
}

// SetCollapseProgress implements sticky.CollapsibleView.
func (nb *NavBar) SetCollapseProgress(progress float64, animated bool) {
	nb.target = progress
	if !animated {
		nb.progress = progress
	}
}

// Animate advances the fade. Call from Update().
func (nb *NavBar) Animate() {
	nb.progress = Lerp(nb.progress, nb.target, ProgressAnimSpeed)
}

func (nb *NavBar) tabRect(r Rect, i int) Rect {
	w := r.W / float64(len(nb.Tabs))
	h := float64(TabBarHeight)
	if h > r.H {
		h = r.H
	}
	return Rect{X: r.X + w*float64(i), Y: r.Bottom() - h, W: w, H: h}
}

// HandleClick checks if (mx, my) hits a tab and selects it. Returns true if consumed.
func (nb *NavBar) HandleClick(r Rect, mx, my int) bool {
	if !r.Contains(mx, my) {
		return false
	}
	for i := range nb.Tabs {
		if nb.tabRect(r, i).Contains(mx, my) {
			if i != nb.Active && nb.OnSelect != nil {
				nb.OnSelect(i)
			}
			return true
		}
	}
	// The bar swallows clicks so they do not start a drag underneath.
	return true
}

// Draw renders the navbar overlay into r.
func (nb *NavBar) Draw(dst *ebiten.Image, r Rect) {
	bg := fade(ColorBackground, nb.progress)
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), bg, false)

	titleAlpha := float32(nb.progress*2 - 1)
	if nb.Title != "" && titleAlpha > 0 {
		tw, _ := MeasureText(nb.Title, FontSizeBody)
		DrawTextAlpha(dst, nb.Title, r.X+(r.W-tw)/2, r.Y+4, FontSizeBody, ColorText, titleAlpha)
	}

	if len(nb.Tabs) == 0 {
		return
	}
	for i, tab := range nb.Tabs {
		tr := nb.tabRect(r, i)
		clr := ColorTextSecondary
		if i == nb.Active {
			clr = ColorText
			vector.DrawFilledRect(dst, float32(tr.X+12), float32(tr.Bottom()-3), float32(tr.W-24), 3, ColorPrimary, false)
		}
		drawTabIcon(dst, i, float32(tr.X+18), float32(tr.Y+tr.H/2), 7, clr)
		label := TruncateText(tab, tr.W-44, FontSizeSmall)
		DrawTextCentered(dst, label, tr.X+tr.W/2+10, tr.Y+tr.H/2, FontSizeSmall, clr)
	}
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Bottom()-1), float32(r.W), 1, ColorSurfaceHover, false)
}
