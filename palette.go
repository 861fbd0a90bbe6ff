package paint

import (
	"math/rand/v2"
	"strings"
)

// RainbowCycle is the fixed color cycle the rainbow marker resolves into.
var RainbowCycle = [7]Color{
	RGB(0xFF, 0x00, 0x00),
	RGB(0xFF, 0x7F, 0x00),
	RGB(0xFF, 0xFF, 0x00),
	RGB(0x00, 0xFF, 0x00),
	RGB(0x00, 0x00, 0xFF),
	RGB(0x4B, 0x00, 0x82),
	RGB(0x94, 0x00, 0xD3),
}

// ColorSpec is the color a user has selected: either a solid color or the
// rainbow marker. Rainbow is resolved to a concrete color at the point of
// use and is never stored as resolved state.
//
// The zero value is solid transparent; use Solid or Rainbow.
type ColorSpec struct {
	rainbow bool
	color   Color
}

// Solid returns a ColorSpec for a single color.
func Solid(c Color) ColorSpec {
	return ColorSpec{color: c}
}

// Rainbow is the rainbow marker.
var Rainbow = ColorSpec{rainbow: true}

// IsRainbow reports whether the spec is the rainbow marker.
func (s ColorSpec) IsRainbow() bool {
	return s.rainbow
}

// Color returns the solid color, or the first rainbow color for the marker.
func (s ColorSpec) Color() Color {
	if s.rainbow {
		return RainbowCycle[0]
	}
	return s.color
}

// ForFill resolves the spec for a bucket fill. Rainbow fills always use the
// first cycle color.
func (s ColorSpec) ForFill() Color {
	return s.Color()
}

// ForSegment resolves the spec for one drawn stroke segment. Rainbow picks a
// uniformly random cycle color; a nil r uses the global source.
func (s ColorSpec) ForSegment(r *rand.Rand) Color {
	if !s.rainbow {
		return s.color
	}
	if r == nil {
		return RainbowCycle[rand.IntN(len(RainbowCycle))]
	}
	return RainbowCycle[r.IntN(len(RainbowCycle))]
}

// String returns "rainbow" for the marker and the color string otherwise.
func (s ColorSpec) String() string {
	if s.rainbow {
		return "rainbow"
	}
	return s.color.String()
}

// ParseColorSpec parses a color selection: "rainbow" (any case) or anything
// ParseColor accepts.
func ParseColorSpec(s string) (ColorSpec, error) {
	if strings.EqualFold(strings.TrimSpace(s), "rainbow") {
		return Rainbow, nil
	}
	c, err := ParseColor(s)
	if err != nil {
		return ColorSpec{}, err
	}
	return Solid(c), nil
}

// PaletteEntry is a named swatch.
type PaletteEntry struct {
	Name string
	Spec ColorSpec
}

// Palette is the swatch list offered to the user, in display order.
var Palette = []PaletteEntry{
	{"Black", Solid(Hex("#000000"))},
	{"White", Solid(Hex("#FFFFFF"))},
	{"Red", Solid(Hex("#FF0000"))},
	{"Blue", Solid(Hex("#0000FF"))},
	{"Green", Solid(Hex("#00FF00"))},
	{"Yellow", Solid(Hex("#FFFF00"))},
	{"Purple", Solid(Hex("#800080"))},
	{"Orange", Solid(Hex("#FFA500"))},
	{"Pink", Solid(Hex("#FFC0CB"))},
	{"Brown", Solid(Hex("#964B00"))},
	{"Gray", Solid(Hex("#808080"))},
	{"Rainbow", Rainbow},
}

// LookupPalette finds a palette entry by name, ignoring case.
func LookupPalette(name string) (PaletteEntry, bool) {
	for _, e := range Palette {
		if strings.EqualFold(e.Name, name) {
			return e, true
		}
	}
	return PaletteEntry{}, false
}
