package sticky

import "math"

// DefaultAnimateThreshold separates continuous scrolling from jumps such as
// page switches. Progress deltas below it are animated.
const DefaultAnimateThreshold = 0.1

// CollapseProgress maps a header height to [0,1]. ok is false when the
// metrics leave no collapse range, in which case the previous progress stands.
func CollapseProgress(height, minHeight, maxHeight float64) (progress float64, ok bool) {
	span := maxHeight - minHeight
	if !(span > 0) {
		return 0, false
	}
	return math.Min(math.Max((maxHeight-height)/span, 0), 1), true
}

// ProgressTracker remembers the last emitted progress so that each update can
// be classified as animated or instant.
type ProgressTracker struct {
	Threshold float64

	last float64
	has  bool
}

// NewProgressTracker returns a tracker using threshold, or
// DefaultAnimateThreshold when threshold is not positive.
func NewProgressTracker(threshold float64) *ProgressTracker {
	if !(threshold > 0) {
		threshold = DefaultAnimateThreshold
	}
	return &ProgressTracker{Threshold: threshold}
}

// Update derives progress for height and reports whether the change from the
// previous value should be animated. ok is false when nothing was emitted.
func (t *ProgressTracker) Update(height float64, m HeaderMetrics) (progress float64, animated, ok bool) {
	progress, ok = CollapseProgress(height, m.MinHeight, m.MaxHeight)
	if !ok {
		return t.last, false, false
	}
	previous := progress
	if t.has {
		previous = t.last
	}
	t.last = progress
	t.has = true
	return progress, math.Abs(progress-previous) < t.Threshold, true
}

// Last returns the last emitted progress and whether anything was emitted.
func (t *ProgressTracker) Last() (float64, bool) {
	return t.last, t.has
}
