package paint

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
)

// Color is a non-premultiplied sRGB color with 8-bit channels.
//
// Color is the canonical form of every color string the package accepts:
// shorthand hex is expanded and an omitted alpha becomes 255. Two colors
// match iff they compare equal with ==.
type Color struct {
	R, G, B, A uint8
}

// RGBA implements the color.Color interface.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA(c).RGBA()
}

// Opaque reports whether the color is fully opaque.
func (c Color) Opaque() bool {
	return c.A == 255
}

// String returns "#RRGGBB" for opaque colors and "rgba(r, g, b, a)" otherwise.
func (c Color) String() string {
	if c.A == 255 {
		return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	}
	a := strconv.FormatFloat(float64(c.A)/255, 'f', -1, 64)
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B, a)
}

// FromColor converts a standard color.Color to Color.
func FromColor(c color.Color) Color {
	if c == nil {
		return Transparent
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color(n)
}

// RGB creates an opaque color from 8-bit components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(255, 255, 255)
	Transparent = Color{}
)

// Hex creates a color from a hex string, returning opaque black when the
// string is not valid hex. Use ParseHex to detect invalid input.
func Hex(hex string) Color {
	c, err := ParseHex(hex)
	if err != nil {
		return Black
	}
	return c
}

// ParseHex parses a hex color string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", each with an
// optional leading '#'.
func ParseHex(hex string) (Color, error) {
	s := strings.TrimPrefix(hex, "#")

	var v [4]uint8
	v[3] = 255

	switch len(s) {
	case 3, 4:
		for i := 0; i < len(s); i++ {
			d, ok := hexDigit(s[i])
			if !ok {
				return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, hex)
			}
			v[i] = d * 17
		}
	case 6, 8:
		for i := 0; i < len(s); i += 2 {
			hi, ok1 := hexDigit(s[i])
			lo, ok2 := hexDigit(s[i+1])
			if !ok1 || !ok2 {
				return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, hex)
			}
			v[i/2] = hi<<4 | lo
		}
	default:
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, hex)
	}

	return Color{R: v[0], G: v[1], B: v[2], A: v[3]}, nil
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// ParseColor parses any color string the package understands:
// hex (see ParseHex), "rgb(r, g, b)", "rgba(r, g, b, a)" with a in [0, 1],
// and the palette names ("white", "Purple", ...), matched case-insensitively.
// The rainbow marker is not a color; see ParseColorSpec.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Color{}, fmt.Errorf("%w: empty string", ErrInvalidColor)
	}

	lower := strings.ToLower(s)
	switch {
	case strings.HasPrefix(lower, "rgba(") || strings.HasPrefix(lower, "rgb("):
		return parseFunctional(lower)
	case s[0] == '#':
		return ParseHex(s)
	}

	if e, ok := LookupPalette(s); ok && !e.Spec.IsRainbow() {
		return e.Spec.Color(), nil
	}
	return ParseHex(s)
}

// parseFunctional parses "rgb(...)" and "rgba(...)". Both accept an optional
// fourth alpha component, which is scaled to round(a*255).
func parseFunctional(s string) (Color, error) {
	open := strings.IndexByte(s, '(')
	if !strings.HasSuffix(s, ")") {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	parts := strings.Split(s[open+1:len(s)-1], ",")
	if len(parts) != 3 && len(parts) != 4 {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}

	var v [4]uint8
	v[3] = 255
	for i := 0; i < 3; i++ {
		n, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil || n < 0 || n > 255 {
			return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		v[i] = uint8(n)
	}
	if len(parts) == 4 {
		a, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil || a < 0 || a > 1 || math.IsNaN(a) {
			return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		v[3] = uint8(math.Round(a * 255))
	}

	return Color{R: v[0], G: v[1], B: v[2], A: v[3]}, nil
}
