package color

import (
	"fmt"
	"math"
)

// HexToHSL converts a "#rrggbb" string to hue, saturation and lightness.
func HexToHSL(hex string) HSL {
	return FromHex(hex).HSL()
}

// HSLToHex converts hue, saturation and lightness to a lowercase "#rrggbb".
func HSLToHex(h, s, l float64) string {
	return hslToRGB(h, s, l).Hex()
}

// HexToRGB formats a "#rrggbb" string as "rgb(r, g, b)".
func HexToRGB(hex string) string {
	return FromHex(hex).String()
}

// HSLToRGB formats hue, saturation and lightness as "rgb(r, g, b)".
func HSLToRGB(h, s, l float64) string {
	return hslToRGB(h, s, l).String()
}

// HSLToString formats hue, saturation and lightness as "hsl(h, s%, l%)".
// Each component is rounded to the nearest integer.
func HSLToString(h, s, l float64) string {
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", int(math.Round(h)), int(math.Round(s)), int(math.Round(l)))
}

// NormalizeHue reduces a hue in degrees into [0,360).
func NormalizeHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	// -1e-14 + 360 rounds to 360 in float64.
	if h >= 360 {
		h = 0
	}
	return h
}

// clampPercent restricts v to [0,100].
func clampPercent(v float64) float64 {
	return math.Max(0, math.Min(100, v))
}

// hslToRGB converts HSL to RGB using the chroma / intermediate / match
// decomposition. Sectors are half-open: [0,60), [60,120) ... [300,360).
// h: hue (any real, wrapped), s: saturation (0-100), l: lightness (0-100).
func hslToRGB(h, s, l float64) RGB {
	h = NormalizeHue(h)
	s = clampPercent(s)
	l = clampPercent(l)

	c := (1 - math.Abs(2*l/100-1)) * s / 100
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := l/100 - c/2

	var r1, g1, b1 float64
	switch {
	case h < 60:
		r1, g1, b1 = c, x, 0
	case h < 120:
		r1, g1, b1 = x, c, 0
	case h < 180:
		r1, g1, b1 = 0, c, x
	case h < 240:
		r1, g1, b1 = 0, x, c
	case h < 300:
		r1, g1, b1 = x, 0, c
	default:
		r1, g1, b1 = c, 0, x
	}

	return RGB{
		R: toByte(r1 + m),
		G: toByte(g1 + m),
		B: toByte(b1 + m),
	}
}

// toByte scales a [0,1] channel to [0,255], rounding to nearest.
func toByte(v float64) uint8 {
	return uint8(math.Max(0, math.Min(255, math.Round(v*255))))
}
