// Command paintdemo scripts a drawing session through the paint API and
// writes the exported picture.
package main

import (
	"flag"
	"log"
	"log/slog"
	"math"
	"math/rand/v2"
	"os"

	"github.com/kidsart/paint"
)

func main() {
	var (
		width   = flag.Int("width", paint.DefaultWidth, "surface width")
		height  = flag.Int("height", paint.DefaultHeight, "surface height")
		format  = flag.String("format", "png", "export format (png, bmp, tiff, pdf)")
		dir     = flag.String("dir", ".", "output directory")
		scale   = flag.Float64("scale", 1, "export scale factor")
		seed    = flag.Uint64("seed", 1, "rainbow random seed")
		lang    = flag.String("lang", "en", "notice language")
		verbose = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if *verbose {
		paint.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	s, err := paint.New(
		paint.WithSize(*width, *height),
		paint.WithRand(rand.New(rand.NewPCG(*seed, *seed))),
		paint.WithLanguage(paint.MatchLanguage(*lang)),
		paint.WithNoticeHandler(func(n paint.Notice) {
			log.Printf("[%s] %s", n.Kind, n.Text)
		}),
	)
	if err != nil {
		log.Fatalf("Failed to start session: %v", err)
	}

	drawHouse(s, *width, *height)
	drawSun(s, *width)
	drawRainbow(s, *width, *height)

	path, err := s.Save(*dir, *format, paint.WithScale(*scale))
	if err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Demo saved to %s (%dx%d, %d undo steps)", path, *width, *height, s.HistoryIndex())
}

// drawHouse outlines a house with the pointer API, then bucket-fills its
// walls and roof.
func drawHouse(s *paint.Session, w, h int) {
	fw, fh := float64(w), float64(h)
	left, right := fw*0.2, fw*0.5
	top, bottom := fh*0.5, fh*0.9
	peak := fh * 0.3

	must(s.SetColor("Black"))
	must(s.SetBrushWidth(paint.BrushMedium))
	stroke(s, []paint.Point{
		{X: left, Y: top}, {X: right, Y: top}, {X: right, Y: bottom},
		{X: left, Y: bottom}, {X: left, Y: top},
	})
	stroke(s, []paint.Point{
		{X: left, Y: top}, {X: (left + right) / 2, Y: peak}, {X: right, Y: top},
	})

	must(s.SetTool(paint.ToolFill))
	must(s.SetColor("Yellow"))
	s.PointerDown((left+right)/2, (top+bottom)/2)
	must(s.SetColor("Red"))
	s.PointerDown((left+right)/2, (peak+top)/2+5)

	// A mistake, taken back.
	must(s.SetColor("Purple"))
	s.PointerDown(5, 5)
	s.Undo()

	must(s.SetTool(paint.ToolPaint))
}

func drawSun(s *paint.Session, w int) {
	cx, cy, r := float64(w)*0.8, 90.0, 40.0

	must(s.SetColor("Orange"))
	must(s.SetBrushWidth(paint.BrushLarge))
	pts := make([]paint.Point, 0, 37)
	for i := 0; i <= 36; i++ {
		a := float64(i) * math.Pi / 18
		pts = append(pts, paint.Point{X: cx + r*math.Cos(a), Y: cy + r*math.Sin(a)})
	}
	stroke(s, pts)

	must(s.SetTool(paint.ToolFill))
	s.PointerDown(cx, cy)
	must(s.SetTool(paint.ToolPaint))
}

func drawRainbow(s *paint.Session, w, h int) {
	must(s.SetColor("rainbow"))
	must(s.SetBrushWidth(paint.BrushXLarge))
	y := float64(h) * 0.15
	pts := make([]paint.Point, 0, 20)
	for x := float64(w) * 0.05; x < float64(w)*0.6; x += 20 {
		pts = append(pts, paint.Point{X: x, Y: y + 15*math.Sin(x/40)})
	}
	stroke(s, pts)
}

func stroke(s *paint.Session, pts []paint.Point) {
	s.PointerDown(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		s.PointerMove(p.X, p.Y)
	}
	s.PointerUp()
}

func must(err error) {
	if err != nil {
		log.Fatal(err)
	}
}
