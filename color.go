package basetypes

import (
	"fmt"
	"math"

	icolor "github.com/gogpu/basetypes/internal/color"
	"github.com/gogpu/basetypes/internal/textfmt"
)

// Color represents an RGB color. Components are conventionally in [0, 1]
// but are not clamped.
type Color struct {
	rgb [3]float64
}

// NewColor creates a color from RGB components.
func NewColor(r, g, b float64) Color {
	return Color{rgb: [3]float64{r, g, b}}
}

// ColorFromHSV creates a color from hue (degrees), saturation and value.
func ColorFromHSV(h, s, v float64) Color {
	var c Color
	c.SetHSV(h, s, v)
	return c
}

// R returns the red component.
func (c Color) R() float64 { return c.rgb[0] }

// G returns the green component.
func (c Color) G() float64 { return c.rgb[1] }

// B returns the blue component.
func (c Color) B() float64 { return c.rgb[2] }

// At returns component i (0 red, 1 green, 2 blue). It panics if i is out of range.
func (c Color) At(i int) float64 {
	if i < 0 || i >= 3 {
		indexPanic("Color", i, 3)
	}
	return c.rgb[i]
}

// SetR sets the red component. It panics if value is NaN.
func (c *Color) SetR(value float64) { c.set(0, value) }

// SetG sets the green component. It panics if value is NaN.
func (c *Color) SetG(value float64) { c.set(1, value) }

// SetB sets the blue component. It panics if value is NaN.
func (c *Color) SetB(value float64) { c.set(2, value) }

func (c *Color) set(i int, value float64) {
	mustNotNaN("Color", value)
	c.rgb[i] = value
}

// HSV returns the hue in [0, 360) and the saturation and value in [0, 1].
// Hue is 0 when the color is a shade of gray.
func (c Color) HSV() (h, s, v float64) {
	return icolor.RGBToHSV(c.rgb[0], c.rgb[1], c.rgb[2])
}

// SetHSV replaces the color with the one described by hue (degrees,
// wrapped into [0, 360)), saturation and value. It panics if any input is NaN.
func (c *Color) SetHSV(h, s, v float64) {
	mustNotNaN("Color", h)
	mustNotNaN("Color", s)
	mustNotNaN("Color", v)
	r, g, b := icolor.HSVToRGB(h, s, v)
	c.rgb = [3]float64{r, g, b}
}

// Linear returns the color with the sRGB transfer function removed.
func (c Color) Linear() Color {
	return NewColor(
		icolor.SRGBToLinear(c.rgb[0]),
		icolor.SRGBToLinear(c.rgb[1]),
		icolor.SRGBToLinear(c.rgb[2]),
	)
}

// SRGB returns a linear color encoded with the sRGB transfer function.
func (c Color) SRGB() Color {
	return NewColor(
		icolor.LinearToSRGB(c.rgb[0]),
		icolor.LinearToSRGB(c.rgb[1]),
		icolor.LinearToSRGB(c.rgb[2]),
	)
}

// Lerp performs linear interpolation between two colors.
func (c Color) Lerp(other Color, t float64) Color {
	return NewColor(
		c.rgb[0]+(other.rgb[0]-c.rgb[0])*t,
		c.rgb[1]+(other.rgb[1]-c.rgb[1])*t,
		c.rgb[2]+(other.rgb[2]-c.rgb[2])*t,
	)
}

// RGBA implements the color.Color interface. The color is opaque and
// components are clamped to [0, 1].
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(icolor.ToByte(c.rgb[0])) * 0x101
	g = uint32(icolor.ToByte(c.rgb[1])) * 0x101
	b = uint32(icolor.ToByte(c.rgb[2])) * 0x101
	return r, g, b, 0xffff
}

// Approx returns true if two colors are approximately equal within epsilon.
func (c Color) Approx(other Color, epsilon float64) bool {
	return math.Abs(c.rgb[0]-other.rgb[0]) < epsilon &&
		math.Abs(c.rgb[1]-other.rgb[1]) < epsilon &&
		math.Abs(c.rgb[2]-other.rgb[2]) < epsilon
}

// String returns "r g b".
func (c Color) String() string {
	return textfmt.Format(c.rgb[:]...)
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Scan implements fmt.Scanner.
func (c *Color) Scan(state fmt.ScanState, _ rune) error {
	v, err := scanFloats("Color", state, 3)
	if err != nil {
		return err
	}
	*c = NewColor(v[0], v[1], v[2])
	return nil
}

// ParseColor parses "r g b".
func ParseColor(s string) (Color, error) {
	v, err := decodeFloats("Color", s, 3)
	if err != nil {
		return Color{}, err
	}
	return NewColor(v[0], v[1], v[2]), nil
}

// Common colors
var (
	Black = NewColor(0, 0, 0)
	White = NewColor(1, 1, 1)
	Red   = NewColor(1, 0, 0)
	Green = NewColor(0, 1, 0)
	Blue  = NewColor(0, 0, 1)
)
