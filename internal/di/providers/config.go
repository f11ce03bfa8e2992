// Package providers contains dependency injection providers for the swatch tools.
package providers

import (
	"github.com/samber/do/v2"

	"github.com/swatchkit/swatch/internal/config"
	"github.com/swatchkit/swatch/internal/logger"
)

// ProvideConfig provides the application configuration.
func ProvideConfig(i do.Injector) (*config.Config, error) {
	flags := do.MustInvoke[config.Flags](i)
	return config.LoadConfig(flags)
}

// ProvideLogger provides the structured logger.
func ProvideLogger(i do.Injector) (*logger.Logger, error) {
	cfg := do.MustInvoke[*config.Config](i)

	log := logger.New(logger.Config{
		Level:       logger.ParseLevel(cfg.Logger.Level),
		AddSource:   cfg.App.Environment == "development",
		Environment: cfg.App.Environment,
		NoColor:     cfg.Output.NoColor,
	})

	log.Debug("Starting swatch",
		"environment", cfg.App.Environment,
		"log_level", cfg.Logger.Level,
		"level", cfg.Palette.Level,
		"format", cfg.Output.Format,
	)

	return log, nil
}
