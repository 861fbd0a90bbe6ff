package paint

import (
	"bytes"
	"image"
)

// Snapshot is an immutable copy of a surface buffer at one instant.
// Nothing mutates a snapshot after Surface.Snapshot returns it.
type Snapshot struct {
	width  int
	height int
	pix    []uint8
}

// Width returns the width of the captured surface.
func (s Snapshot) Width() int {
	return s.width
}

// Height returns the height of the captured surface.
func (s Snapshot) Height() int {
	return s.height
}

// Pixel returns the captured color at (x, y), or false outside the bounds.
func (s Snapshot) Pixel(x, y int) (Color, bool) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Color{}, false
	}
	i := (y*s.width + x) * 4
	return Color{R: s.pix[i], G: s.pix[i+1], B: s.pix[i+2], A: s.pix[i+3]}, true
}

// Equal reports whether two snapshots are pixel-identical.
func (s Snapshot) Equal(o Snapshot) bool {
	return s.width == o.width && s.height == o.height && bytes.Equal(s.pix, o.pix)
}

// Image returns a fresh image.NRGBA holding the snapshot pixels.
func (s Snapshot) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, s.width, s.height))
	copy(img.Pix, s.pix)
	return img
}

// Crop returns a fresh image.NRGBA holding the pixels of r, clipped to the
// snapshot. The result has its origin at (0, 0).
func (s Snapshot) Crop(r image.Rectangle) *image.NRGBA {
	return cropPix(s.pix, s.width, s.height, r)
}

func cropPix(pix []uint8, width, height int, r image.Rectangle) *image.NRGBA {
	r = r.Intersect(image.Rect(0, 0, width, height))
	img := image.NewNRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	for y := 0; y < r.Dy(); y++ {
		src := ((r.Min.Y+y)*width + r.Min.X) * 4
		copy(img.Pix[y*img.Stride:(y+1)*img.Stride], pix[src:src+r.Dx()*4])
	}
	return img
}
