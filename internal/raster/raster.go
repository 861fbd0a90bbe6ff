// Package raster converts round brush strokes into horizontal pixel spans.
//
// A brush of width w covers pixel (px, py) iff the integer point (px, py)
// lies within max(w/2, 0.5) of the stroked segment. The covered set of a
// segment is a capsule (a rectangle with two half-disc caps); consecutive
// capsules of a polyline share their end discs, which yields round caps and
// round joins without any join logic.
//
// Coverage is binary: there is no anti-aliasing, so every covered pixel is
// written with the full brush color.
package raster

import (
	"image"
	"math"
)

// Point represents a 2D point in surface pixel coordinates.
type Point struct {
	X, Y float64
}

// SpanFunc receives a covered run of pixels [x0, x1) on row y.
// Spans are always clipped and non-empty.
type SpanFunc func(y, x0, x1 int)

// minRadius keeps hairline brushes at least one pixel wide.
const minRadius = 0.5

// Brush is a round brush of a fixed width.
type Brush struct {
	Width float64
}

// Radius returns the coverage radius of the brush.
func (b Brush) Radius() float64 {
	return math.Max(b.Width/2, minRadius)
}

// Dot rasterizes a single brush stamp centered at p.
func (b Brush) Dot(p Point, clip image.Rectangle, emit SpanFunc) {
	b.Segment(p, p, clip, emit)
}

// Segment rasterizes the capsule swept by the brush from p0 to p1.
func (b Brush) Segment(p0, p1 Point, clip image.Rectangle, emit SpanFunc) {
	if clip.Empty() || !finite(p0) || !finite(p1) {
		return
	}
	r := b.Radius()

	yMin := int(math.Ceil(math.Min(p0.Y, p1.Y) - r))
	yMax := int(math.Floor(math.Max(p0.Y, p1.Y) + r))
	yMin = max(yMin, clip.Min.Y)
	yMax = min(yMax, clip.Max.Y-1)

	body := newQuad(p0, p1, r)

	for y := yMin; y <= yMax; y++ {
		fy := float64(y)
		lo, hi := math.Inf(1), math.Inf(-1)

		if l, h, ok := discRow(p0, r, fy); ok {
			lo, hi = math.Min(lo, l), math.Max(hi, h)
		}
		if l, h, ok := discRow(p1, r, fy); ok {
			lo, hi = math.Min(lo, l), math.Max(hi, h)
		}
		if body != nil {
			if l, h, ok := body.row(fy); ok {
				lo, hi = math.Min(lo, l), math.Max(hi, h)
			}
		}
		if lo > hi {
			continue
		}

		x0 := max(int(math.Ceil(lo)), clip.Min.X)
		x1 := min(int(math.Floor(hi))+1, clip.Max.X)
		if x0 < x1 {
			emit(y, x0, x1)
		}
	}
}

// Polyline rasterizes connected segments through pts. A single point
// produces a dot.
func (b Brush) Polyline(pts []Point, clip image.Rectangle, emit SpanFunc) {
	switch len(pts) {
	case 0:
		return
	case 1:
		b.Dot(pts[0], clip, emit)
		return
	}
	for i := 1; i < len(pts); i++ {
		b.Segment(pts[i-1], pts[i], clip, emit)
	}
}

// discRow returns the x-extent of the disc (c, r) on row y.
func discRow(c Point, r, y float64) (lo, hi float64, ok bool) {
	dy := y - c.Y
	d := r*r - dy*dy
	if d < 0 {
		return 0, 0, false
	}
	half := math.Sqrt(d)
	return c.X - half, c.X + half, true
}

func finite(p Point) bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}
