package ui

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swatchkit/swatch/internal/color"
	"github.com/swatchkit/swatch/internal/logger"
	"github.com/swatchkit/swatch/internal/service"
	"github.com/swatchkit/swatch/internal/validation"
)

func newService() *service.PaletteService {
	return service.NewPaletteService(validation.New(), logger.Discard().Logger, color.LevelAA)
}

func TestRenderPalette_Plain(t *testing.T) {
	result, err := newService().Generate("#D2691E")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, RenderPalette(&buf, result, false))
	out := buf.String()

	assert.NotContains(t, out, "\x1b[", "plain output has no escapes")
	assert.True(t, strings.HasPrefix(out, "Chocolate (#D2691E) Warm & Energetic\n"))
	for _, role := range result.Palette.Roles() {
		assert.Contains(t, out, role.Hex)
		assert.Contains(t, out, role.HSL)
		assert.Contains(t, out, role.Usage)
	}
	assert.Contains(t, out, "Accessibility: Fail 3.41")
	assert.Contains(t, out, "Text Secondary on Background")
	assert.Contains(t, out, "Target AA: fail")
	assert.Contains(t, out, "Nearest named color: Chocolate")
}

func TestRenderContrast_Plain(t *testing.T) {
	result, err := newService().Contrast("#767676", "#FFFFFF", "")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, RenderContrast(&buf, result, false))

	want := " #767676  on  #FFFFFF \n" +
		"Ratio: 4.54:1\n" +
		"AA:    pass\n" +
		"AAA:   fail\n" +
		"Readable text on background: #000000\n"
	assert.Equal(t, want, buf.String())
}

func TestRenderJSON(t *testing.T) {
	result, err := newService().Generate("#3366CC")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, RenderJSON(&buf, result))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "#3366CC", decoded["seed"])
	assert.Equal(t, "Professional & Stable", decoded["scheme"])

	pal, ok := decoded["palette"].(map[string]any)
	require.True(t, ok)
	assert.Len(t, pal, 12)
	assert.Contains(t, pal, "monochromatic-light")

	report, ok := decoded["accessibility"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "AA", report["grade"])
}

func TestSwatch_Plain(t *testing.T) {
	assert.Equal(t, " #d2691e ", Swatch("#d2691e", false))
}

func TestColorize_Plain(t *testing.T) {
	assert.Equal(t, "score 4.50", Colorize(false, Success, "score %.2f", 4.5))
	assert.Equal(t, "100%", Colorize(false, Fail, "100%"))
}
