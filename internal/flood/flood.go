// Package flood implements bucket fill over raw RGBA pixel buffers.
//
// The fill is a breadth-first traversal of 4-connected neighbors (no
// diagonals). A pixel joins the region iff its color equals the color at
// the start point captured before any write, and each pixel is visited at
// most once.
package flood

import "image"

// DefaultLimit is the maximum number of pixels a single fill may write.
const DefaultLimit = 500_000

// RGBA is one pixel in buffer byte order.
type RGBA [4]uint8

// Result describes the outcome of a fill.
type Result struct {
	// Filled is the number of pixels recolored. Zero means the fill was a
	// no-op (start outside the buffer, or target already the fill color).
	Filled int

	// Capped is true when the region was larger than the limit and the
	// fill stopped early. The pixels already written stay written.
	Capped bool

	// Target is the color found at the start point.
	Target RGBA

	// Bounds encloses every recolored pixel.
	Bounds image.Rectangle
}

// Fill recolors the region containing (x, y) in pix, a width×height
// buffer with 4 bytes per pixel. limit <= 0 disables the pixel cap.
func Fill(pix []uint8, width, height, x, y int, fill RGBA, limit int) Result {
	if x < 0 || x >= width || y < 0 || y >= height || len(pix) < width*height*4 {
		return Result{}
	}

	start := y*width + x
	target := at(pix, start)
	if target == fill {
		return Result{Target: target}
	}

	var (
		visited = newBitset(width * height)
		queue   = []int{start}
		head    int
		filled  int
		bounds  = image.Rectangle{Min: image.Pt(x, y), Max: image.Pt(x+1, y+1)}
	)
	visited.set(start)

	push := func(i int) {
		if visited.get(i) || at(pix, i) != target {
			return
		}
		visited.set(i)
		queue = append(queue, i)
	}

	for head < len(queue) {
		if limit > 0 && filled >= limit {
			break
		}
		i := queue[head]
		head++

		copy(pix[i*4:i*4+4], fill[:])
		filled++

		px, py := i%width, i/width
		bounds = bounds.Union(image.Rect(px, py, px+1, py+1))

		if px+1 < width {
			push(i + 1)
		}
		if px > 0 {
			push(i - 1)
		}
		if py+1 < height {
			push(i + width)
		}
		if py > 0 {
			push(i - width)
		}
	}

	return Result{
		Filled: filled,
		Capped: head < len(queue),
		Target: target,
		Bounds: bounds,
	}
}

func at(pix []uint8, i int) RGBA {
	o := i * 4
	return RGBA{pix[o], pix[o+1], pix[o+2], pix[o+3]}
}

// bitset marks visited pixels.
type bitset []uint64

func newBitset(n int) bitset {
	return make(bitset, (n+63)/64)
}

func (b bitset) get(i int) bool {
	return b[i>>6]&(1<<(uint(i)&63)) != 0
}

func (b bitset) set(i int) {
	b[i>>6] |= 1 << (uint(i) & 63)
}
