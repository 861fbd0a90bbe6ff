package paint

import (
	"errors"
	"image"
	"testing"
)

func newTestSurface(t *testing.T, w, h int) *Surface {
	t.Helper()
	s, err := NewSurface(w, h)
	if err != nil {
		t.Fatalf("NewSurface(%d, %d) error: %v", w, h, err)
	}
	return s
}

func TestNewSurface(t *testing.T) {
	s := newTestSurface(t, 4, 3)
	if s.Width() != 4 || s.Height() != 3 {
		t.Errorf("size = %dx%d, want 4x3", s.Width(), s.Height())
	}
	if len(s.Data()) != 4*3*4 {
		t.Errorf("len(Data()) = %d, want %d", len(s.Data()), 4*3*4)
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			if c, _ := s.Pixel(x, y); c != White {
				t.Fatalf("Pixel(%d, %d) = %v, want White", x, y, c)
			}
		}
	}
}

func TestNewSurface_InvalidDimensions(t *testing.T) {
	for _, sz := range [][2]int{{0, 10}, {10, 0}, {-1, 5}, {0, 0}} {
		_, err := NewSurface(sz[0], sz[1])
		if !errors.Is(err, ErrInvalidDimensions) {
			t.Errorf("NewSurface(%d, %d) error = %v, want ErrInvalidDimensions", sz[0], sz[1], err)
		}
	}
}

func TestSurface_SetPixelRoundTrip(t *testing.T) {
	s := newTestSurface(t, 5, 5)
	tests := []struct {
		x, y int
		c    Color
	}{
		{0, 0, RGB(255, 0, 0)},
		{4, 4, Color{1, 2, 3, 4}},
		{2, 3, Transparent},
		{3, 1, Color{10, 20, 30, 128}},
	}
	for _, tt := range tests {
		s.SetPixel(tt.x, tt.y, tt.c)
		got, ok := s.Pixel(tt.x, tt.y)
		if !ok || got != tt.c {
			t.Errorf("Pixel(%d, %d) = %+v, %v; want %+v", tt.x, tt.y, got, ok, tt.c)
		}
	}
}

func TestSurface_OutOfBoundsIgnored(t *testing.T) {
	s := newTestSurface(t, 3, 3)
	before := s.Snapshot()

	for _, p := range [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 3}, {100, 100}} {
		s.SetPixel(p[0], p[1], Black)
		if _, ok := s.Pixel(p[0], p[1]); ok {
			t.Errorf("Pixel(%d, %d) reported in bounds", p[0], p[1])
		}
	}
	if !s.Snapshot().Equal(before) {
		t.Error("out-of-bounds SetPixel modified the surface")
	}
}

func TestSurface_FillSpanClipped(t *testing.T) {
	s := newTestSurface(t, 5, 2)
	s.FillSpan(-3, 2, 0, Black)
	s.FillSpan(3, 99, 1, Black)
	s.FillSpan(0, 5, 7, Black) // row out of range
	s.FillSpan(4, 2, 0, Black) // empty

	want := [2]string{"XX...", "...XX"}
	for y := 0; y < 2; y++ {
		for x := 0; x < 5; x++ {
			c, _ := s.Pixel(x, y)
			isBlack := c == Black
			if isBlack != (want[y][x] == 'X') {
				t.Errorf("Pixel(%d, %d) = %v, want row %q", x, y, c, want[y])
			}
		}
	}
}

func TestSurface_Clear(t *testing.T) {
	s := newTestSurface(t, 2, 2)
	s.Clear(RGB(0, 255, 0))
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if c, _ := s.Pixel(x, y); c != RGB(0, 255, 0) {
				t.Errorf("Pixel(%d, %d) = %v after Clear", x, y, c)
			}
		}
	}
}

func TestSnapshot_Immutable(t *testing.T) {
	s := newTestSurface(t, 3, 3)
	snap := s.Snapshot()
	s.SetPixel(1, 1, Black)

	if c, _ := snap.Pixel(1, 1); c != White {
		t.Errorf("snapshot Pixel(1, 1) = %v after surface edit, want White", c)
	}
	if snap.Width() != 3 || snap.Height() != 3 {
		t.Errorf("snapshot size = %dx%d", snap.Width(), snap.Height())
	}

	img := snap.Image()
	img.Pix[0] = 0
	if c, _ := snap.Pixel(0, 0); c != White {
		t.Error("mutating Image() changed the snapshot")
	}
}

func TestSurface_Restore(t *testing.T) {
	s := newTestSurface(t, 3, 3)
	snap := s.Snapshot()
	s.SetPixel(0, 0, Black)

	if err := s.Restore(snap); err != nil {
		t.Fatalf("Restore error: %v", err)
	}
	if !s.Snapshot().Equal(snap) {
		t.Error("Restore did not reproduce the snapshot")
	}

	other := newTestSurface(t, 4, 3).Snapshot()
	if err := s.Restore(other); !errors.Is(err, ErrSnapshotMismatch) {
		t.Errorf("Restore(4x3 into 3x3) error = %v, want ErrSnapshotMismatch", err)
	}
}

func TestSurface_Crop(t *testing.T) {
	s := newTestSurface(t, 6, 6)
	s.SetPixel(2, 3, Black)

	img := s.Crop(image.Rect(2, 2, 10, 4))
	if got := img.Bounds(); got != image.Rect(0, 0, 4, 2) {
		t.Fatalf("Crop bounds = %v, want (0,0)-(4,2)", got)
	}
	if c := FromColor(img.At(0, 1)); c != Black {
		t.Errorf("cropped (0, 1) = %v, want Black", c)
	}
	if c := FromColor(img.At(1, 1)); c != White {
		t.Errorf("cropped (1, 1) = %v, want White", c)
	}

	if img := s.Crop(image.Rect(10, 10, 20, 20)); !img.Bounds().Empty() {
		t.Errorf("Crop outside = %v, want empty", img.Bounds())
	}
}

func TestSurface_ImageInterface(t *testing.T) {
	s := newTestSurface(t, 2, 2)
	s.SetPixel(1, 0, RGB(1, 2, 3))

	var img image.Image = s
	if img.Bounds() != image.Rect(0, 0, 2, 2) {
		t.Errorf("Bounds() = %v", img.Bounds())
	}
	if c := FromColor(img.At(1, 0)); c != RGB(1, 2, 3) {
		t.Errorf("At(1, 0) = %v", c)
	}
	if c := FromColor(s.Image().At(1, 0)); c != RGB(1, 2, 3) {
		t.Errorf("Image().At(1, 0) = %v", c)
	}
}
