package palette

import "github.com/swatchkit/swatch/internal/color"

// Scheme is the mood label of a palette, chosen from the seed hue.
type Scheme string

// Schemes by hue band.
const (
	SchemeWarmEnergetic        Scheme = "Warm & Energetic"
	SchemeWarmInviting         Scheme = "Warm & Inviting"
	SchemeFreshNatural         Scheme = "Fresh & Natural"
	SchemeCalmTrustworthy      Scheme = "Calm & Trustworthy"
	SchemeProfessionalStable   Scheme = "Professional & Stable"
	SchemeCreativeLuxurious    Scheme = "Creative & Luxurious"
	SchemeElegantSophisticated Scheme = "Elegant & Sophisticated"
)

// SchemeFor returns the mood of a hue in degrees. Bands are half-open.
func SchemeFor(hue float64) Scheme {
	h := color.NormalizeHue(hue)
	switch {
	case h < 30:
		return SchemeWarmEnergetic
	case h < 60:
		return SchemeWarmInviting
	case h < 120:
		return SchemeFreshNatural
	case h < 180:
		return SchemeCalmTrustworthy
	case h < 240:
		return SchemeProfessionalStable
	case h < 300:
		return SchemeCreativeLuxurious
	default:
		return SchemeElegantSophisticated
	}
}

// Scheme returns the mood of the palette's primary role.
func (p Palette) Scheme() Scheme {
	return SchemeFor(color.HexToHSL(p.Primary.Hex).H)
}
