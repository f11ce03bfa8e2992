// Package config provides configuration for the swatch tools with support for
// command-line flags, environment variables, and .env files.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/swatchkit/swatch/internal/color"
)

// Output formats.
const (
	FormatTable = "table"
	FormatJSON  = "json"
)

// Config holds the application configuration.
type Config struct {
	App     AppConfig
	Logger  LoggerConfig
	Palette PaletteConfig
	Output  OutputConfig
}

// AppConfig holds application-level configuration.
type AppConfig struct {
	Environment string
}

// LoggerConfig holds logging configuration.
type LoggerConfig struct {
	Level string
}

// PaletteConfig holds palette grading configuration.
type PaletteConfig struct {
	// Level is the WCAG level results are judged against (default: AA).
	Level color.Level
}

// OutputConfig holds rendering configuration.
type OutputConfig struct {
	Format  string // table or json (default: table)
	NoColor bool   // disable ANSI styling (also set by NO_COLOR)
}

// Flags carries command-line overrides. Empty strings mean "not set".
type Flags struct {
	Env      string
	LogLevel string
	Level    string
	Format   string
	EnvFile  string
	NoColor  bool
}

// LoadConfig loads configuration from multiple sources with precedence:
// 1. Command-line flags (highest priority).
// 2. Environment variables.
// 3. .env file.
// 4. Default values (lowest priority).
func LoadConfig(flags Flags) (*Config, error) {
	envFile := flags.EnvFile
	if envFile == "" {
		envFile = ".env"
	}

	// Load .env file if it exists (silently ignore if not found).
	_ = loadEnvFile(envFile)

	levelStr := getConfigValue(flags.Level, "SWATCH_LEVEL", string(color.LevelAA))
	level, err := color.ParseLevel(levelStr)
	if err != nil {
		return nil, fmt.Errorf("invalid accessibility level %q: %w", levelStr, err)
	}

	cfg := &Config{
		App: AppConfig{
			Environment: getConfigValue(flags.Env, "SWATCH_ENV", "development"),
		},
		Logger: LoggerConfig{
			Level: getConfigValue(flags.LogLevel, "SWATCH_LOG_LEVEL", "warn"),
		},
		Palette: PaletteConfig{
			Level: level,
		},
		Output: OutputConfig{
			Format:  strings.ToLower(getConfigValue(flags.Format, "SWATCH_FORMAT", FormatTable)),
			NoColor: flags.NoColor || os.Getenv("NO_COLOR") != "" || getBoolConfigValue("", "SWATCH_NO_COLOR", false),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks that all config values are present and valid.
func (c *Config) Validate() error {
	if c.App.Environment == "" {
		return errors.New("SWATCH_ENV is required")
	}

	validEnvs := map[string]bool{
		"development": true,
		"test":        true,
		"production":  true,
	}
	if !validEnvs[c.App.Environment] {
		return fmt.Errorf("invalid environment: %s (must be development, test, or production)", c.App.Environment)
	}

	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[strings.ToLower(c.Logger.Level)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	switch c.Palette.Level {
	case "", color.LevelAA, color.LevelAAA:
	default:
		return fmt.Errorf("invalid accessibility level: %s (must be AA or AAA)", c.Palette.Level)
	}

	if c.Output.Format != FormatTable && c.Output.Format != FormatJSON {
		return fmt.Errorf("invalid output format: %s (must be table or json)", c.Output.Format)
	}

	return nil
}

// getConfigValue returns the first non-empty value from flag, env var, or default.
func getConfigValue(flagValue, envKey, defaultValue string) string {
	// Priority 1: Command-line flag.
	if flagValue != "" {
		return flagValue
	}

	// Priority 2: Environment variable.
	if envValue := os.Getenv(envKey); envValue != "" {
		return envValue
	}

	// Priority 3: Default value.
	return defaultValue
}

// getBoolConfigValue returns a bool from flag, env var, or default.
// Accepts: "true", "1", "yes" (case-insensitive) as true; anything else is false.
func getBoolConfigValue(flagValue, envKey string, defaultValue bool) bool {
	strValue := getConfigValue(flagValue, envKey, "")
	if strValue == "" {
		return defaultValue
	}
	strValue = strings.ToLower(strValue)
	return strValue == "true" || strValue == "1" || strValue == "yes"
}

// loadEnvFile loads environment variables from a .env file. Variables that
// are already set keep their value.
func loadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}
