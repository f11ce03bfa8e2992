package palette

import (
	"github.com/swatchkit/swatch/internal/color"
)

// Grade is the overall accessibility grade of a palette.
type Grade string

// Grades, best first.
const (
	GradeAAA  Grade = "AAA"
	GradeAA   Grade = "AA"
	GradeFail Grade = "Fail"
)

var gradeDescriptions = map[Grade]string{
	GradeAAA:  "Excellent contrast - meets highest accessibility standards",
	GradeAA:   "Good contrast - meets accessibility standards",
	GradeFail: "Poor contrast - may cause accessibility issues",
}

// Description returns the fixed explanation of the grade.
func (g Grade) Description() string {
	return gradeDescriptions[g]
}

// Check is the contrast of one role drawn on another.
type Check struct {
	Foreground Role    `json:"foreground"`
	Background Role    `json:"background"`
	Label      string  `json:"label"`
	Ratio      float64 `json:"ratio"`
	AA         bool    `json:"aa"`
	AAA        bool    `json:"aaa"`
}

// Passes reports whether the check meets level.
func (c Check) Passes(level color.Level) bool {
	return c.Ratio >= level.MinRatio()
}

// Report grades a palette. Score is the mean contrast of the primary,
// secondary and accent roles on the background; text checks are reported
// alongside but do not contribute to the score.
type Report struct {
	Checks      []Check `json:"checks"`
	TextChecks  []Check `json:"text_checks"`
	Score       float64 `json:"score"`
	Grade       Grade   `json:"grade"`
	Description string  `json:"description"`
}

// Passes reports whether the palette's score meets level.
func (r Report) Passes(level color.Level) bool {
	return r.Score >= level.MinRatio()
}

// scoredRoles are measured against the background to compute the score.
var scoredRoles = []Role{RolePrimary, RoleSecondary, RoleAccent}

var textRoles = []Role{RoleTextPrimary, RoleTextSecondary}

// Assess measures the palette's roles against its background.
func Assess(p Palette) Report {
	checks := checksOn(p, p.Background, scoredRoles)

	var sum float64
	for _, c := range checks {
		sum += c.Ratio
	}
	score := sum / float64(len(checks))
	grade := gradeFor(score)

	return Report{
		Checks:      checks,
		TextChecks:  checksOn(p, p.Background, textRoles),
		Score:       score,
		Grade:       grade,
		Description: grade.Description(),
	}
}

func checksOn(p Palette, bg ColorRole, roles []Role) []Check {
	out := make([]Check, 0, len(roles))
	for _, r := range roles {
		fg, _ := p.Role(r)
		out = append(out, measure(fg, bg))
	}
	return out
}

func measure(fg, bg ColorRole) Check {
	ratio := color.ContrastRatio(fg.Color(), bg.Color())
	return Check{
		Foreground: fg.Role,
		Background: bg.Role,
		Label:      fg.Name + " on " + bg.Name,
		Ratio:      ratio,
		AA:         ratio >= color.MinRatioAA,
		AAA:        ratio >= color.MinRatioAAA,
	}
}

func gradeFor(score float64) Grade {
	switch {
	case score >= color.MinRatioAAA:
		return GradeAAA
	case score >= color.MinRatioAA:
		return GradeAA
	default:
		return GradeFail
	}
}
