package paint

import (
	"image"

	"github.com/kidsart/paint/internal/flood"
)

// DefaultFillLimit is the default maximum number of pixels one bucket fill
// may recolor.
const DefaultFillLimit = flood.DefaultLimit

// FillResult describes the outcome of a bucket fill.
type FillResult struct {
	// Filled is the number of recolored pixels; zero means nothing changed.
	Filled int

	// Capped reports that the region exceeded the limit. The partial fill
	// is kept.
	Capped bool

	// Target is the color found at the start point.
	Target Color

	// Bounds encloses the recolored pixels, for partial repaints.
	Bounds image.Rectangle
}

// Changed reports whether the fill wrote any pixel.
func (r FillResult) Changed() bool {
	return r.Filled > 0
}

// FloodFill recolors the 4-connected region of pixels sharing the color at
// (x, y). Out-of-bounds starts and fills whose target already equals c are
// no-ops. At most limit pixels are written; limit <= 0 means no cap.
func (s *Surface) FloodFill(x, y int, c Color, limit int) FillResult {
	res := flood.Fill(s.data, s.width, s.height, x, y, flood.RGBA{c.R, c.G, c.B, c.A}, limit)
	return FillResult{
		Filled: res.Filled,
		Capped: res.Capped,
		Target: Color{R: res.Target[0], G: res.Target[1], B: res.Target[2], A: res.Target[3]},
		Bounds: res.Bounds,
	}
}
