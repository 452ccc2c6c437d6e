// Package color provides scalar color space conversions for basetypes.
//
// All functions operate on float64 channels. RGB and value are nominally in
// [0,1] and hue is in degrees; inputs outside those ranges are not clamped.
package color

import "math"

// RGBToHSV converts an RGB triple to hue, saturation and value.
// Hue is in [0, 360) and is 0 for achromatic colors.
func RGBToHSV(r, g, b float64) (h, s, v float64) {
	maxc := max(r, g, b)
	minc := min(r, g, b)
	v = maxc
	if maxc > 0 {
		s = (maxc - minc) / maxc
	}
	if s <= 0 {
		return 0, s, v
	}

	delta := maxc - minc
	rc := (maxc - r) / delta
	gc := (maxc - g) / delta
	bc := (maxc - b) / delta

	switch maxc {
	case r:
		h = bc - gc
	case g:
		h = 2 + rc - bc
	default:
		h = 4 + gc - rc
	}
	h *= 60
	if h < 0 {
		h += 360
	}
	if h >= 360 {
		h -= 360
	}
	return h, s, v
}

// HSVToRGB converts hue (degrees), saturation and value to RGB.
// Hue is wrapped into [0, 360) first, so 360 and -90 are accepted.
func HSVToRGB(h, s, v float64) (r, g, b float64) {
	if s == 0 {
		return v, v, v
	}

	h = WrapHue(h) / 60
	i := math.Floor(h)
	f := h - i
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))

	switch int(i) {
	case 0:
		return v, t, p
	case 1:
		return q, v, p
	case 2:
		return p, v, t
	case 3:
		return p, q, v
	case 4:
		return t, p, v
	default:
		return v, p, q
	}
}

// WrapHue maps any angle in degrees onto [0, 360).
func WrapHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	// math.Mod of a tiny negative value can round up to exactly 360.
	if h >= 360 {
		h = 0
	}
	return h
}
