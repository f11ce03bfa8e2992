package color

// Lightness and saturation used for seeds derived from text.
const (
	keySaturation = 40
	keyLightness  = 65
)

// ForKey derives a consistent seed color from an arbitrary string, such as a
// user or project name. The same key always yields the same color; only the
// hue varies between keys.
func ForKey(key string) RGB {
	h := 0
	for _, c := range key {
		h = 31*h + int(c)
	}
	if h < 0 {
		h = -h
	}
	hue := float64(h % 360)

	return HSL{H: hue, S: keySaturation, L: keyLightness}.RGB()
}
