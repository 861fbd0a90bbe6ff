package paint

import (
	"fmt"
	"image"
	"image/color"
)

// Surface is the canvas bitmap: a rectangular buffer of non-premultiplied
// RGBA pixels, 4 bytes per pixel, row-major.
//
// Pixel access outside the surface is silently ignored. Pointer
// coordinates routinely drift past the edges during fast drags.
type Surface struct {
	width  int
	height int
	data   []uint8
}

// NewSurface creates a surface of the given dimensions filled opaque white.
func NewSurface(width, height int) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	s := &Surface{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
	s.Clear(White)
	return s, nil
}

// Width returns the width of the surface.
func (s *Surface) Width() int {
	return s.width
}

// Height returns the height of the surface.
func (s *Surface) Height() int {
	return s.height
}

// Data returns the raw pixel data (RGBA format). The slice aliases the
// surface; callers must not retain it across mutations.
func (s *Surface) Data() []uint8 {
	return s.data
}

// In reports whether (x, y) lies on the surface.
func (s *Surface) In(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

// Pixel returns the color of a single pixel. The second result is false
// when (x, y) is outside the surface.
func (s *Surface) Pixel(x, y int) (Color, bool) {
	if !s.In(x, y) {
		return Color{}, false
	}
	i := (y*s.width + x) * 4
	return Color{R: s.data[i], G: s.data[i+1], B: s.data[i+2], A: s.data[i+3]}, true
}

// SetPixel sets the color of a single pixel.
func (s *Surface) SetPixel(x, y int, c Color) {
	if !s.In(x, y) {
		return
	}
	i := (y*s.width + x) * 4
	s.data[i+0] = c.R
	s.data[i+1] = c.G
	s.data[i+2] = c.B
	s.data[i+3] = c.A
}

// FillSpan writes c to pixels [x0, x1) of row y, clipped to the surface.
func (s *Surface) FillSpan(x0, x1, y int, c Color) {
	if y < 0 || y >= s.height {
		return
	}
	x0 = max(x0, 0)
	x1 = min(x1, s.width)
	if x0 >= x1 {
		return
	}
	row := s.data[(y*s.width+x0)*4 : (y*s.width+x1)*4]
	for i := 0; i < len(row); i += 4 {
		row[i+0] = c.R
		row[i+1] = c.G
		row[i+2] = c.B
		row[i+3] = c.A
	}
}

// Clear fills the entire surface with a color.
func (s *Surface) Clear(c Color) {
	for i := 0; i < len(s.data); i += 4 {
		s.data[i+0] = c.R
		s.data[i+1] = c.G
		s.data[i+2] = c.B
		s.data[i+3] = c.A
	}
}

// Snapshot copies the full buffer.
func (s *Surface) Snapshot() Snapshot {
	pix := make([]uint8, len(s.data))
	copy(pix, s.data)
	return Snapshot{width: s.width, height: s.height, pix: pix}
}

// Restore overwrites the full buffer from a snapshot of the same size.
func (s *Surface) Restore(snap Snapshot) error {
	if snap.width != s.width || snap.height != s.height {
		return fmt.Errorf("%w: snapshot %dx%d, surface %dx%d",
			ErrSnapshotMismatch, snap.width, snap.height, s.width, s.height)
	}
	copy(s.data, snap.pix)
	return nil
}

// Image returns a copy of the surface as an image.NRGBA.
func (s *Surface) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, s.width, s.height))
	copy(img.Pix, s.data)
	return img
}

// Crop returns a copy of the pixels in r, clipped to the surface, with
// its origin at (0, 0).
func (s *Surface) Crop(r image.Rectangle) *image.NRGBA {
	return cropPix(s.data, s.width, s.height, r)
}

// At implements the image.Image interface.
func (s *Surface) At(x, y int) color.Color {
	c, _ := s.Pixel(x, y)
	return c
}

// Bounds implements the image.Image interface.
func (s *Surface) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.width, s.height)
}

// ColorModel implements the image.Image interface.
func (s *Surface) ColorModel() color.Model {
	return color.NRGBAModel
}
