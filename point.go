package paint

import (
	"image"
	"math"

	"github.com/kidsart/paint/internal/raster"
)

// Point is a position in surface-local pixel coordinates. The UI layer
// converts device or page coordinates (scroll, scaling) before calling in.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Floor returns the pixel containing p.
func (p Point) Floor() image.Point {
	return image.Pt(int(math.Floor(p.X)), int(math.Floor(p.Y)))
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

func (p Point) raster() raster.Point {
	return raster.Point{X: p.X, Y: p.Y}
}
