package paint

import (
	"image"
	"math"
)

// MinCaptureSize is the smallest selection side, in pixels, that produces a
// capture. Smaller drags are treated as accidental taps.
const MinCaptureSize = 5

// Capture is a rectangular region cut out of the surface with the select
// tool, held for preview until it is saved or discarded. Captures never
// touch the history.
type Capture struct {
	// Rect is the captured region in surface coordinates.
	Rect image.Rectangle
	// Image holds the region's pixels with its origin at (0, 0).
	Image *image.NRGBA
}

// selection tracks an in-progress select drag.
type selection struct {
	start, end Point
}

// rect converts the drag into a pixel rectangle clipped to bounds. It
// reports false when either side of the drag is shorter than
// MinCaptureSize or nothing of it lies on the surface.
func (sel selection) rect(bounds image.Rectangle) (image.Rectangle, bool) {
	x := math.Min(sel.start.X, sel.end.X)
	y := math.Min(sel.start.Y, sel.end.Y)
	w := math.Abs(sel.end.X - sel.start.X)
	h := math.Abs(sel.end.Y - sel.start.Y)
	if w < MinCaptureSize || h < MinCaptureSize {
		return image.Rectangle{}, false
	}

	r := image.Rect(
		int(math.Floor(x)), int(math.Floor(y)),
		int(math.Floor(x+w)), int(math.Floor(y+h)),
	).Intersect(bounds)
	if r.Empty() {
		return image.Rectangle{}, false
	}
	return r, true
}
