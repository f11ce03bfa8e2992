// Package service holds the palette use cases shared by the command-line tools.
package service

import (
	"log/slog"
	"strings"

	"github.com/swatchkit/swatch/internal/color"
	domainerrors "github.com/swatchkit/swatch/internal/errors"
	"github.com/swatchkit/swatch/internal/palette"
	"github.com/swatchkit/swatch/internal/validation"
)

// Result is a generated palette together with everything derived from it.
type Result struct {
	Seed    string          `json:"seed"`
	Name    string          `json:"name"`
	Scheme  palette.Scheme  `json:"scheme"`
	Palette palette.Palette `json:"palette"`
	Report  palette.Report  `json:"accessibility"`
	Nearest palette.Match   `json:"nearest"`
	Level   color.Level     `json:"level"`
	Passes  bool            `json:"passes"`
}

// ContrastResult is the outcome of a standalone contrast query.
type ContrastResult struct {
	Foreground string      `json:"foreground"`
	Background string      `json:"background"`
	Ratio      float64     `json:"ratio"`
	AA         bool        `json:"aa"`
	AAA        bool        `json:"aaa"`
	Level      color.Level `json:"level"`
	Passes     bool        `json:"passes"`
	// Readable is the plain text color best suited to the background.
	Readable string `json:"readable"`
}

// PaletteService validates seeds and runs the palette engine.
type PaletteService struct {
	validator *validation.Validator
	logger    *slog.Logger
	level     color.Level
}

// NewPaletteService creates a new palette service. Results are judged
// against level; the zero level means AA.
func NewPaletteService(v *validation.Validator, logger *slog.Logger, level color.Level) *PaletteService {
	if level == "" {
		level = color.LevelAA
	}
	return &PaletteService{
		validator: v,
		logger:    logger,
		level:     level,
	}
}

// Level returns the WCAG level results are judged against.
func (s *PaletteService) Level() color.Level {
	return s.level
}

// Generate builds the palette and accessibility report for seed.
func (s *PaletteService) Generate(seed string) (*Result, error) {
	seed = strings.TrimSpace(seed)
	if err := s.validator.ValidateSeed(seed); err != nil {
		return nil, domainerrors.InvalidColorf("invalid seed %q", seed).WithCause(err)
	}

	p := palette.Generate(seed)
	report := palette.Assess(p)

	result := &Result{
		Seed:    seed,
		Name:    palette.NameFor(seed),
		Scheme:  p.Scheme(),
		Palette: p,
		Report:  report,
		Nearest: palette.Nearest(seed),
		Level:   s.level,
		Passes:  report.Passes(s.level),
	}

	s.logger.Debug("palette generated",
		"seed", seed,
		"scheme", result.Scheme,
		"score", report.Score,
		"grade", report.Grade,
	)

	if !result.Passes {
		s.logger.Info("palette below target level",
			"seed", seed,
			"level", s.level,
			"score", report.Score,
		)
	}

	return result, nil
}

// Contrast measures a foreground/background pair. An empty level uses the
// service level.
func (s *PaletteService) Contrast(fg, bg string, level color.Level) (*ContrastResult, error) {
	fg, bg = strings.TrimSpace(fg), strings.TrimSpace(bg)
	if level == "" {
		level = s.level
	}

	req := validation.ContrastRequest{Foreground: fg, Background: bg, Level: string(level)}
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	fgRGB := color.FromHex(fg)
	bgRGB := color.FromHex(bg)

	result := &ContrastResult{
		Foreground: fg,
		Background: bg,
		Ratio:      color.ContrastRatio(fgRGB, bgRGB),
		AA:         color.IsAccessible(fgRGB, bgRGB, color.LevelAA),
		AAA:        color.IsAccessible(fgRGB, bgRGB, color.LevelAAA),
		Level:      level,
		Readable:   color.ReadableText(bgRGB).Hex(),
	}
	result.Passes = color.IsAccessible(fgRGB, bgRGB, level)

	s.logger.Debug("contrast measured",
		"foreground", fg,
		"background", bg,
		"ratio", result.Ratio,
	)

	return result, nil
}
