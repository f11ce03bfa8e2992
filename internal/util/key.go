// Package util provides common utility functions.
package util

import (
	"regexp"
	"strings"
)

var (
	// Matches spaces, underscores, dots, and slashes.
	keySeparatorRe = regexp.MustCompile(`[\s_./]+`)
	// Matches anything that is not a lowercase letter, digit, or dash.
	keyInvalidRe = regexp.MustCompile(`[^a-z0-9-]`)
	keyDashesRe  = regexp.MustCompile(`-+`)
)

// NormalizeKey canonicalizes free text before it is hashed into a seed
// color, so spelling variants of one name share a palette.
//
//	"Project Atlas"  → "project-atlas"
//	"project_atlas"  → "project-atlas"
//	"acme.io/web"    → "acme-io-web"
//
// Input with no letters or digits is kept as trimmed text rather than
// collapsing to the empty key.
func NormalizeKey(input string) string {
	raw := strings.TrimSpace(input)

	s := strings.ToLower(raw)
	s = keySeparatorRe.ReplaceAllString(s, "-")
	s = keyInvalidRe.ReplaceAllString(s, "")
	s = keyDashesRe.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")

	if s == "" {
		return raw
	}
	return s
}
