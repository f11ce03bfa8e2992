package palette

import (
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/swatchkit/swatch/internal/color"
)

// CustomColorName is returned for seeds with no entry in the named table.
const CustomColorName = "Custom Color"

// NamedColor is a well-known seed color.
type NamedColor struct {
	Hex  string `json:"hex"`
	Name string `json:"name"`
}

var namedColors = []NamedColor{
	{"#D2691E", "Chocolate"},
	{"#FF6B6B", "Coral Red"},
	{"#4ECDC4", "Turquoise"},
	{"#45B7D1", "Sky Blue"},
	{"#96CEB4", "Sage Green"},
	{"#FFEAA7", "Cream Yellow"},
	{"#DDA0DD", "Plum"},
	{"#98D8C8", "Mint Green"},
	{"#F7DC6F", "Golden Yellow"},
	{"#BB8FCE", "Lavender"},
	{"#85C1E9", "Light Blue"},
}

// namesByHex is keyed by uppercase hex.
var namesByHex = func() map[string]string {
	m := make(map[string]string, len(namedColors))
	for _, nc := range namedColors {
		m[nc.Hex] = nc.Name
	}
	return m
}()

// NamedColors returns the named seed table in display order.
func NamedColors() []NamedColor {
	out := make([]NamedColor, len(namedColors))
	copy(out, namedColors)
	return out
}

// NameFor returns the name of hex if it is a named seed, otherwise
// CustomColorName. Matching ignores case.
func NameFor(hex string) string {
	if name, ok := namesByHex[strings.ToUpper(hex)]; ok {
		return name
	}
	return CustomColorName
}

// Match is the closest named seed to a color.
type Match struct {
	NamedColor
	Distance float64 `json:"distance"`
}

// Nearest returns the named seed perceptually closest to hex, using the
// CIEDE2000 color difference.
func Nearest(hex string) Match {
	target := toColorful(color.FromHex(hex))

	var best Match
	for i, nc := range namedColors {
		d := target.DistanceCIEDE2000(toColorful(color.FromHex(nc.Hex)))
		if i == 0 || d < best.Distance {
			best = Match{NamedColor: nc, Distance: d}
		}
	}
	return best
}

func toColorful(c color.RGB) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}
