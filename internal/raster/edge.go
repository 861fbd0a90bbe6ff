package raster

import "math"

// quad is the rectangular body of a capsule: the segment p0→p1 offset by
// ±r along its unit normal.
type quad struct {
	edges [4]edge
}

// edge is one side of the capsule body.
type edge struct {
	x0, y0 float64
	x1, y1 float64
}

// newQuad returns nil for a degenerate (zero-length) segment, whose
// coverage is just the end disc.
func newQuad(p0, p1 Point, r float64) *quad {
	dx, dy := p1.X-p0.X, p1.Y-p0.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return nil
	}
	nx, ny := -dy/length*r, dx/length*r

	a := Point{p0.X + nx, p0.Y + ny}
	b := Point{p1.X + nx, p1.Y + ny}
	c := Point{p1.X - nx, p1.Y - ny}
	d := Point{p0.X - nx, p0.Y - ny}

	return &quad{edges: [4]edge{
		{a.X, a.Y, b.X, b.Y},
		{b.X, b.Y, c.X, c.Y},
		{c.X, c.Y, d.X, d.Y},
		{d.X, d.Y, a.X, a.Y},
	}}
}

// row returns the x-extent of the quad on row y. The quad is convex, so
// the extent is the min/max over all edge crossings.
func (q *quad) row(y float64) (lo, hi float64, ok bool) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, e := range q.edges {
		xa, xb, hit := e.cross(y)
		if !hit {
			continue
		}
		lo = math.Min(lo, math.Min(xa, xb))
		hi = math.Max(hi, math.Max(xa, xb))
		ok = true
	}
	return lo, hi, ok
}

// cross intersects the edge with the horizontal line at y. A horizontal
// edge lying on the line returns both of its endpoints.
func (e edge) cross(y float64) (xa, xb float64, ok bool) {
	if e.y0 == e.y1 {
		if y != e.y0 {
			return 0, 0, false
		}
		return e.x0, e.x1, true
	}
	if y < math.Min(e.y0, e.y1) || y > math.Max(e.y0, e.y1) {
		return 0, 0, false
	}
	x := e.x0 + (y-e.y0)*(e.x1-e.x0)/(e.y1-e.y0)
	return x, x, true
}
