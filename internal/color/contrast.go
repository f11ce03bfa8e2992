package color

import (
	"math"
	"strings"

	domainerrors "github.com/swatchkit/swatch/internal/errors"
)

// Level is a WCAG conformance level for text contrast.
type Level string

// Supported levels. The zero value behaves as LevelAA.
const (
	LevelAA  Level = "AA"
	LevelAAA Level = "AAA"
)

// Minimum contrast ratios for normal-size text.
const (
	MinRatioAA  = 4.5
	MinRatioAAA = 7.0
)

// ParseLevel converts "AA" or "AAA" (case-insensitive) to a Level. An empty
// string yields LevelAA.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", string(LevelAA):
		return LevelAA, nil
	case string(LevelAAA):
		return LevelAAA, nil
	default:
		return "", domainerrors.InvalidLevelf("invalid accessibility level %q: must be AA or AAA", s)
	}
}

// MinRatio returns the minimum contrast ratio the level requires.
func (l Level) MinRatio() float64 {
	if l == LevelAAA {
		return MinRatioAAA
	}
	return MinRatioAA
}

// String returns the level name, defaulting to AA.
func (l Level) String() string {
	if l == "" {
		return string(LevelAA)
	}
	return string(l)
}

// Luminance returns the WCAG relative luminance of c, from 0 (black) to 1
// (white).
func Luminance(c RGB) float64 {
	return 0.2126*linearize(c.R) + 0.7152*linearize(c.G) + 0.0722*linearize(c.B)
}

// linearize applies the sRGB transfer function to one 8-bit channel.
func linearize(v uint8) float64 {
	c := float64(v) / 255
	if c <= 0.03928 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// ContrastRatio returns the WCAG contrast ratio between a and b, in [1,21].
// The result does not depend on argument order.
func ContrastRatio(a, b RGB) float64 {
	la := Luminance(a)
	lb := Luminance(b)
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}

// ContrastRatioHex is ContrastRatio for "#rrggbb" strings.
func ContrastRatioHex(a, b string) float64 {
	return ContrastRatio(FromHex(a), FromHex(b))
}

// IsAccessible reports whether a and b have enough contrast for level.
func IsAccessible(a, b RGB, level Level) bool {
	return ContrastRatio(a, b) >= level.MinRatio()
}

// IsAccessibleHex is IsAccessible for "#rrggbb" strings.
func IsAccessibleHex(a, b string, level Level) bool {
	return IsAccessible(FromHex(a), FromHex(b), level)
}

// ReadableText picks black or white text for the background bg using YIQ
// brightness.
func ReadableText(bg RGB) RGB {
	if bg.Brightness() > 128 {
		return Black
	}
	return White
}
