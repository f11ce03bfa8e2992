package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/swatchkit/swatch/internal/color"
	"github.com/swatchkit/swatch/internal/palette"
	"github.com/swatchkit/swatch/internal/service"
)

const (
	nameWidth  = 20
	labelWidth = 30
)

var (
	nameStyle  = lipgloss.NewStyle().Width(nameWidth)
	labelStyle = lipgloss.NewStyle().Width(labelWidth)
)

// Swatch renders hex as a block of its own color with readable text on top.
// Without rich output it is the bare hex code.
func Swatch(hex string, rich bool) string {
	label := " " + hex + " "
	if !rich {
		return label
	}
	text := color.ReadableText(color.FromHex(hex)).Hex()
	return lipgloss.NewStyle().
		Background(lipgloss.Color(hex)).
		Foreground(lipgloss.Color(text)).
		Render(label)
}

// RenderPalette writes a palette result as a table.
func RenderPalette(w io.Writer, r *service.Result, rich bool) error {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s\n",
		Colorize(rich, Heading, "%s (%s)", r.Name, r.Seed),
		Colorize(rich, Muted, "%s", r.Scheme))
	b.WriteString("\n")

	for _, c := range r.Palette.Roles() {
		fmt.Fprintf(&b, "  %s %s  %-18s  %-18s  %s\n",
			nameStyle.Render(c.Name),
			Swatch(c.Hex, rich),
			c.RGB,
			c.HSL,
			Colorize(rich, Muted, "%s", c.Usage))
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %s %s\n",
		Colorize(rich, Heading, "Accessibility:"),
		gradeText(r.Report.Grade, rich),
		Colorize(rich, Muted, "%.2f  %s", r.Report.Score, r.Report.Description))

	for _, c := range r.Report.Checks {
		writeCheck(&b, c, rich)
	}
	for _, c := range r.Report.TextChecks {
		writeCheck(&b, c, rich)
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "Target %s: %s\n", r.Level, verdict(r.Passes, rich))
	fmt.Fprintf(&b, "Nearest named color: %s %s\n",
		r.Nearest.Name,
		Colorize(rich, Muted, "(%s, ΔE %.2f)", r.Nearest.Hex, r.Nearest.Distance))

	_, err := io.WriteString(w, b.String())
	return err
}

// RenderContrast writes a contrast result.
func RenderContrast(w io.Writer, r *service.ContrastResult, rich bool) error {
	var b strings.Builder

	fmt.Fprintf(&b, "%s on %s\n", Swatch(r.Foreground, rich), Swatch(r.Background, rich))
	fmt.Fprintf(&b, "Ratio: %.2f:1\n", r.Ratio)
	fmt.Fprintf(&b, "AA:    %s\n", verdict(r.AA, rich))
	fmt.Fprintf(&b, "AAA:   %s\n", verdict(r.AAA, rich))
	fmt.Fprintf(&b, "Readable text on background: %s\n", r.Readable)

	_, err := io.WriteString(w, b.String())
	return err
}

// RenderJSON writes v as indented JSON.
func RenderJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeCheck(b *strings.Builder, c palette.Check, rich bool) {
	fmt.Fprintf(b, "  %s %6.2f  AA %s  AAA %s\n",
		labelStyle.Render(c.Label),
		c.Ratio,
		verdict(c.AA, rich),
		verdict(c.AAA, rich))
}

func verdict(ok bool, rich bool) string {
	if ok {
		return Colorize(rich, Success, "pass")
	}
	return Colorize(rich, Fail, "fail")
}

func gradeText(g palette.Grade, rich bool) string {
	switch g {
	case palette.GradeAAA:
		return Colorize(rich, Success, "%s", g)
	case palette.GradeAA:
		return Colorize(rich, Warn, "%s", g)
	default:
		return Colorize(rich, Fail, "%s", g)
	}
}
