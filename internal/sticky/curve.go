package sticky

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidMetrics is returned for header metrics that cannot produce a
// sensible collapse range.
var ErrInvalidMetrics = errors.New("invalid header metrics")

// HeaderMetrics are the constant size bounds of a sticky header.
type HeaderMetrics struct {
	MinHeight  float64 // fully collapsed
	MaxHeight  float64 // resting height
	MaxStretch float64 // extra height allowed when pulled past the top
}

// Validate requires 0 <= MinHeight < MaxHeight and MaxStretch >= 0.
func (m HeaderMetrics) Validate() error {
	switch {
	case math.IsNaN(m.MinHeight) || math.IsNaN(m.MaxHeight) || math.IsNaN(m.MaxStretch):
		return fmt.Errorf("%w: NaN in %+v", ErrInvalidMetrics, m)
	case m.MinHeight < 0:
		return fmt.Errorf("%w: min height %v is negative", ErrInvalidMetrics, m.MinHeight)
	case m.MaxHeight <= m.MinHeight:
		return fmt.Errorf("%w: max height %v must exceed min height %v", ErrInvalidMetrics, m.MaxHeight, m.MinHeight)
	case m.MaxStretch < 0:
		return fmt.Errorf("%w: max stretch %v is negative", ErrInvalidMetrics, m.MaxStretch)
	}
	return nil
}

// StretchLimit is the tallest the header can get.
func (m HeaderMetrics) StretchLimit() float64 {
	return m.MaxHeight + m.MaxStretch
}

// HeightFor maps an adjusted scroll offset to a header height.
func (m HeaderMetrics) HeightFor(adjustedOffsetY float64) float64 {
	return StretchHeight(adjustedOffsetY, m.MinHeight, m.MaxHeight, m.MaxStretch)
}

// StretchHeight maps an adjusted scroll offset (0 = resting position) to a
// header height. Pulling down (negative offsets) grows the header up to
// maxHeight+maxStretch, scrolling into content shrinks it down to minHeight.
// NaN is treated as the resting position.
func StretchHeight(adjustedOffsetY, minHeight, maxHeight, maxStretch float64) float64 {
	if math.IsNaN(adjustedOffsetY) {
		adjustedOffsetY = 0
	}
	if adjustedOffsetY < 0 {
		return math.Min(maxHeight-adjustedOffsetY, maxHeight+maxStretch)
	}
	return math.Max(minHeight, maxHeight-adjustedOffsetY)
}

// AdjustedOffsetY returns the offset of sv relative to its resting position.
func AdjustedOffsetY(sv ScrollView) float64 {
	return sv.ContentOffset().Y + sv.ContentInset().Top
}
