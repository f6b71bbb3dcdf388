package drawing

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/csscolorparser"
)

// Color is a non-premultiplied sRGB color with components in [0, 1].
type Color struct {
	R, G, B, A float64
}

// ParseColor parses a CSS color: a name ("red"), hex ("#ff0000",
// "#f008") or functional notation ("rgb(255 0 0)").
func ParseColor(s string) (Color, error) {
	c, err := csscolorparser.Parse(s)
	if err != nil {
		return Color{}, &ParseError{Type: "Color", Input: s, Err: err}
	}
	return Color{R: c.R, G: c.G, B: c.B, A: c.A}, nil
}

// MustParseColor is like ParseColor but panics on error.
func MustParseColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{R: c.R, G: c.G, B: c.B}
}

// Hex returns "#rrggbb", or "#rrggbbaa" for translucent colors.
func (c Color) Hex() string {
	h := c.colorful().Clamped().Hex()
	if c.A >= 1 {
		return h
	}
	return fmt.Sprintf("%s%02x", h, uint8(math.Round(math.Max(0, c.A)*255)))
}

// AlmostEqual reports whether c and o are equal up to rounding error.
func (c Color) AlmostEqual(o Color) bool {
	return c.colorful().AlmostEqualRgb(o.colorful()) && math.Abs(c.A-o.A) < 1.0/255
}

func (c Color) String() string { return c.Hex() }
