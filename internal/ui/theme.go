// Package ui renders palette results for terminals.
package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
)

// Theme functions wrap fatih/color so command output stays consistent.
// NO_COLOR and FORCE_COLOR are honored through IsRich.

// IsRich reports whether the terminal should receive styled output.
func IsRich() bool {
	if os.Getenv("NO_COLOR") != "" && !isForceColor() {
		return false
	}
	return !color.NoColor || isForceColor()
}

func isForceColor() bool {
	fc := strings.TrimSpace(os.Getenv("FORCE_COLOR"))
	return fc != "" && fc != "0"
}

// Heading returns bold text for section headers.
func Heading(format string, a ...any) string {
	return color.New(color.FgHiMagenta, color.Bold).Sprintf(format, a...)
}

// Success returns text for passing checks.
func Success(format string, a ...any) string {
	return color.New(color.FgGreen).Sprintf(format, a...)
}

// Fail returns text for failing checks.
func Fail(format string, a ...any) string {
	return color.New(color.FgRed).Sprintf(format, a...)
}

// Warn returns text for borderline results.
func Warn(format string, a ...any) string {
	return color.New(color.FgYellow).Sprintf(format, a...)
}

// Muted returns secondary text.
func Muted(format string, a ...any) string {
	return color.New(color.FgHiBlack).Sprintf(format, a...)
}

// Colorize applies colorFn only in rich mode.
func Colorize(rich bool, colorFn func(string, ...any) string, format string, a ...any) string {
	if rich {
		return colorFn(format, a...)
	}
	if len(a) == 0 {
		return format
	}
	return fmt.Sprintf(format, a...)
}
