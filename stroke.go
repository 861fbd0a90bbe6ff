package paint

import "github.com/kidsart/paint/internal/raster"

// Brush and eraser width presets, in pixels.
const (
	BrushSmall  = 3
	BrushMedium = 5
	BrushLarge  = 8
	BrushXLarge = 12

	EraserSmall  = 10
	EraserMedium = 20
	EraserLarge  = 30
	EraserXLarge = 40
)

// Stroke is one continuous pointer-down to pointer-up gesture: an ordered
// list of points drawn with one resolved color at one width.
// Strokes are transient; only the pixels they leave behind are kept.
type Stroke struct {
	Points []Point
	Color  Color
	Width  float64
}

// Draw rasterizes the stroke onto s.
func (st Stroke) Draw(s *Surface) {
	s.RasterizeStroke(st.Points, st.Color, st.Width)
}

// RasterizeStroke draws connected line segments through points with round
// caps and round joins. Covered pixels are overwritten with c (source-over
// with an opaque color replaces the destination). A single point draws a
// dot.
//
// Erasing is a stroke with c set to opaque White; there is no alpha erasure.
func (s *Surface) RasterizeStroke(points []Point, c Color, width float64) {
	pts := make([]raster.Point, len(points))
	for i, p := range points {
		pts[i] = p.raster()
	}
	raster.Brush{Width: width}.Polyline(pts, s.Bounds(), s.spanWriter(c))
}

// DrawSegment draws a single round-capped segment from p0 to p1.
func (s *Surface) DrawSegment(p0, p1 Point, c Color, width float64) {
	raster.Brush{Width: width}.Segment(p0.raster(), p1.raster(), s.Bounds(), s.spanWriter(c))
}

// DrawDot draws a single brush stamp centered at p.
func (s *Surface) DrawDot(p Point, c Color, width float64) {
	raster.Brush{Width: width}.Dot(p.raster(), s.Bounds(), s.spanWriter(c))
}

func (s *Surface) spanWriter(c Color) raster.SpanFunc {
	return func(y, x0, x1 int) {
		s.FillSpan(x0, x1, y, c)
	}
}
