// Package color converts between hex, RGB and HSL color representations and
// measures WCAG contrast between colors.
//
// RGB is the canonical value. Hex strings and HSL triples are derived views:
// RGB to hex is lossless, RGB to HSL and back may move a channel by one unit.
// Apart from ParseHex, every function here is total and never rejects input.
package color

import (
	"fmt"
	"strconv"

	domainerrors "github.com/swatchkit/swatch/internal/errors"
)

// hexLen is the length of a "#rrggbb" color string.
const hexLen = 7

// RGB is a color with three 8-bit channels.
type RGB struct {
	R, G, B uint8
}

// Predefined colors.
var (
	Black = RGB{0, 0, 0}
	White = RGB{255, 255, 255}
)

// HSL is a color in hue (degrees, [0,360)), saturation and lightness
// (percentages, [0,100]).
type HSL struct {
	H, S, L float64
}

// ParseHex strictly decodes a "#rrggbb" string. Upper and lower case digits
// are accepted.
func ParseHex(s string) (RGB, error) {
	if len(s) != hexLen || s[0] != '#' {
		return RGB{}, domainerrors.InvalidColorf("invalid hex color %q: want #RRGGBB", s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return RGB{}, domainerrors.InvalidColorf("invalid hex color %q", s).WithCause(err)
	}
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// FromHex decodes a "#rrggbb" string without validating it. A channel whose
// two digits cannot be decoded reads as 0.
func FromHex(s string) RGB {
	return RGB{
		R: channelAt(s, 1),
		G: channelAt(s, 3),
		B: channelAt(s, 5),
	}
}

func channelAt(s string, i int) uint8 {
	if len(s) < i+2 {
		return 0
	}
	v, err := strconv.ParseUint(s[i:i+2], 16, 8)
	if err != nil {
		return 0
	}
	return uint8(v)
}

// Hex returns the color as "#rrggbb" with lowercase digits.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String returns the CSS form "rgb(r, g, b)".
func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// HSL converts the color to hue, saturation and lightness.
func (c RGB) HSL() HSL {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255

	maxC := max(r, g, b)
	minC := min(r, g, b)
	l := (maxC + minC) / 2

	// Achromatic (gray)
	if maxC == minC {
		return HSL{H: 0, S: 0, L: l * 100}
	}

	d := maxC - minC
	var s float64
	if l > 0.5 {
		s = d / (2 - maxC - minC)
	} else {
		s = d / (maxC + minC)
	}

	var h float64
	switch maxC {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}

	h /= 6

	return HSL{H: h * 360, S: s * 100, L: l * 100}
}

// Complement returns the per-channel inversion of the color.
func (c RGB) Complement() RGB {
	return RGB{R: 255 - c.R, G: 255 - c.G, B: 255 - c.B}
}

// Brightness returns the YIQ perceived brightness in [0,255].
func (c RGB) Brightness() float64 {
	return (float64(c.R)*299 + float64(c.G)*587 + float64(c.B)*114) / 1000
}

// RGB converts the HSL color back to 8-bit channels. Saturation and lightness
// are clamped to [0,100] and the hue is reduced modulo 360 first.
func (c HSL) RGB() RGB {
	return hslToRGB(c.H, c.S, c.L)
}

// Hex returns the HSL color as "#rrggbb".
func (c HSL) Hex() string {
	return c.RGB().Hex()
}

// String returns the CSS form "hsl(h, s%, l%)" with rounded components.
func (c HSL) String() string {
	return HSLToString(c.H, c.S, c.L)
}
