package paint

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"
	"math"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"
)

// File name prefixes for exported images.
const (
	ArtPrefix     = "kids-art"
	CapturePrefix = "kids-art-capture"
)

// EncodeFunc writes img to w in one image format.
type EncodeFunc func(w io.Writer, img image.Image) error

// Format describes a registered export format.
type Format struct {
	// Name is the registry key, e.g. "png".
	Name string
	// Ext is the file extension without the dot.
	Ext string
	// MIME is the media type served for downloads.
	MIME string
	// Encode writes the image.
	Encode EncodeFunc
}

// Registry state - protected by mutex for thread-safe access.
var (
	formatsMu sync.RWMutex
	formats   = make(map[string]Format)
)

func init() {
	RegisterFormat(Format{Name: "png", Ext: "png", MIME: "image/png", Encode: encodePNG})
	RegisterFormat(Format{Name: "bmp", Ext: "bmp", MIME: "image/bmp", Encode: bmp.Encode})
	RegisterFormat(Format{Name: "tiff", Ext: "tiff", MIME: "image/tiff", Encode: encodeTIFF})
	RegisterFormat(Format{Name: "pdf", Ext: "pdf", MIME: "application/pdf", Encode: encodePDF})
}

// RegisterFormat makes an export format available by name.
//
// RegisterFormat panics if the encoder is nil or the name is already
// registered, so that duplicate registrations surface at program start.
func RegisterFormat(f Format) {
	formatsMu.Lock()
	defer formatsMu.Unlock()

	if f.Encode == nil {
		panic("paint: RegisterFormat encoder is nil")
	}
	name := strings.ToLower(f.Name)
	if _, dup := formats[name]; dup {
		panic("paint: RegisterFormat called twice for " + name)
	}
	if f.Ext == "" {
		f.Ext = name
	}
	f.Name = name
	formats[name] = f
}

// UnregisterFormat removes a format. Missing names are ignored.
func UnregisterFormat(name string) {
	formatsMu.Lock()
	defer formatsMu.Unlock()
	delete(formats, strings.ToLower(name))
}

// LookupFormat returns the format registered under name.
func LookupFormat(name string) (Format, error) {
	formatsMu.RLock()
	f, ok := formats[strings.ToLower(name)]
	formatsMu.RUnlock()

	if !ok {
		return Format{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
	return f, nil
}

// Formats returns the registered format names, sorted.
func Formats() []string {
	formatsMu.RLock()
	defer formatsMu.RUnlock()

	names := make([]string, 0, len(formats))
	for name := range formats {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ExportOption configures a single export.
type ExportOption func(*exportOptions)

type exportOptions struct {
	scale float64
}

// WithScale resamples the exported image by factor (CatmullRom). Factors
// <= 0 or equal to 1 export at the surface size.
func WithScale(factor float64) ExportOption {
	return func(o *exportOptions) {
		o.scale = factor
	}
}

// Encode writes img in the named format.
func Encode(w io.Writer, img image.Image, format string, opts ...ExportOption) error {
	f, err := LookupFormat(format)
	if err != nil {
		return err
	}

	o := exportOptions{scale: 1}
	for _, opt := range opts {
		opt(&o)
	}
	img = scaled(img, o.scale)

	if err := f.Encode(w, img); err != nil {
		return fmt.Errorf("paint: encode %s: %w", f.Name, err)
	}
	return nil
}

// EncodeBytes is Encode into a byte slice.
func EncodeBytes(img image.Image, format string, opts ...ExportOption) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, img, format, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Filename returns "<prefix>-<unix millis>.<ext>".
func Filename(prefix, ext string, t time.Time) string {
	return fmt.Sprintf("%s-%d.%s", prefix, t.UnixMilli(), ext)
}

func scaled(img image.Image, factor float64) image.Image {
	if factor <= 0 || factor == 1 || math.IsNaN(factor) || math.IsInf(factor, 0) {
		return img
	}
	b := img.Bounds()
	w := max(int(math.Round(float64(b.Dx())*factor)), 1)
	h := max(int(math.Round(float64(b.Dy())*factor)), 1)

	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

func encodePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

func encodeTIFF(w io.Writer, img image.Image) error {
	return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
}
