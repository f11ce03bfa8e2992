// Package palette derives a twelve-role UI color palette from a single seed
// color and grades the result against WCAG contrast thresholds.
//
// Every role is an algebraic transform of the seed's hue, saturation and
// lightness. Generation is a pure function: the same seed always produces the
// same palette, and a palette is never modified after it is built.
package palette

import (
	"github.com/swatchkit/swatch/internal/color"
)

// Fixed text colors. Dark text is used on light backgrounds.
const (
	textPrimaryOnLight   = "#000000"
	textSecondaryOnLight = "#333333"
	textPrimaryOnDark    = "#FFFFFF"
	textSecondaryOnDark  = "#E0E0E0"
)

// ColorRole is a color assigned to a palette role.
type ColorRole struct {
	Role  Role   `json:"role"`
	Hex   string `json:"hex"`
	RGB   string `json:"rgb"`
	HSL   string `json:"hsl"`
	Name  string `json:"name"`
	Usage string `json:"usage"`
}

// Color decodes the role's hex value.
func (c ColorRole) Color() color.RGB {
	return color.FromHex(c.Hex)
}

// Palette is the full set of roles derived from one seed.
type Palette struct {
	Primary            ColorRole `json:"primary"`
	Secondary          ColorRole `json:"secondary"`
	Background         ColorRole `json:"background"`
	Accent             ColorRole `json:"accent"`
	Analogous1         ColorRole `json:"analogous1"`
	Analogous2         ColorRole `json:"analogous2"`
	Triadic1           ColorRole `json:"triadic1"`
	Triadic2           ColorRole `json:"triadic2"`
	MonochromaticLight ColorRole `json:"monochromatic-light"`
	MonochromaticDark  ColorRole `json:"monochromatic-dark"`
	TextPrimary        ColorRole `json:"text-primary"`
	TextSecondary      ColorRole `json:"text-secondary"`
}

// Generate derives a palette from seedHex, which must be a "#rrggbb" string.
// Malformed seeds are not rejected here; validate at the boundary first.
func Generate(seedHex string) Palette {
	seed := color.FromHex(seedHex)
	hsl := seed.HSL()
	h, s, l := hsl.H, hsl.S, hsl.L

	background := color.HSLToHex(h, max(0, s-60), backgroundLightness(l))
	textPrimary, textSecondary := textColors(background)

	return Palette{
		Primary:            newColorRole(RolePrimary, seed.Hex()),
		Secondary:          newColorRole(RoleSecondary, color.HSLToHex(h, max(0, s-30), min(95, l+20))),
		Background:         newColorRole(RoleBackground, background),
		Accent:             newColorRole(RoleAccent, color.HSLToHex(wrapHue(h+180), min(100, s+10), max(30, l-10))),
		Analogous1:         newColorRole(RoleAnalogous1, color.HSLToHex(wrapHue(h+30), max(0, s-20), max(40, l-10))),
		Analogous2:         newColorRole(RoleAnalogous2, color.HSLToHex(wrapHue(h-30+360), max(0, s-20), max(40, l-10))),
		Triadic1:           newColorRole(RoleTriadic1, color.HSLToHex(wrapHue(h+120), max(0, s-15), max(35, l-15))),
		Triadic2:           newColorRole(RoleTriadic2, color.HSLToHex(wrapHue(h+240), max(0, s-15), max(35, l-15))),
		MonochromaticLight: newColorRole(RoleMonochromaticLight, color.HSLToHex(h, max(0, s-40), max(60, l+20))),
		MonochromaticDark:  newColorRole(RoleMonochromaticDark, color.HSLToHex(h, max(0, s-30), max(20, l-20))),
		TextPrimary:        newColorRole(RoleTextPrimary, textPrimary),
		TextSecondary:      newColorRole(RoleTextSecondary, textSecondary),
	}
}

// Roles returns all twelve roles in canonical order.
func (p Palette) Roles() []ColorRole {
	return []ColorRole{
		p.Primary,
		p.Secondary,
		p.Background,
		p.Accent,
		p.Analogous1,
		p.Analogous2,
		p.Triadic1,
		p.Triadic2,
		p.MonochromaticLight,
		p.MonochromaticDark,
		p.TextPrimary,
		p.TextSecondary,
	}
}

// Role returns the color assigned to r.
func (p Palette) Role(r Role) (ColorRole, bool) {
	for _, c := range p.Roles() {
		if c.Role == r {
			return c, true
		}
	}
	return ColorRole{}, false
}

// backgroundLightness inverts the seed's brightness: dark seeds get a near
// white background, light seeds a near black one.
func backgroundLightness(seedLightness float64) float64 {
	if seedLightness < 50 {
		return 95
	}
	return 15
}

// textColors picks text colors from the background's own lightness.
func textColors(backgroundHex string) (primary, secondary string) {
	if color.HexToHSL(backgroundHex).L > 50 {
		return textPrimaryOnLight, textSecondaryOnLight
	}
	return textPrimaryOnDark, textSecondaryOnDark
}

// wrapHue reduces a rotated hue into [0,360).
func wrapHue(h float64) float64 {
	return color.NormalizeHue(h)
}

func newColorRole(r Role, hex string) ColorRole {
	hsl := color.HexToHSL(hex)
	return ColorRole{
		Role:  r,
		Hex:   hex,
		RGB:   color.HexToRGB(hex),
		HSL:   hsl.String(),
		Name:  r.Name(),
		Usage: r.Usage(),
	}
}
