// Package di provides dependency injection configuration for the swatch tools.
package di

import (
	"github.com/samber/do/v2"

	"github.com/swatchkit/swatch/internal/config"
	"github.com/swatchkit/swatch/internal/di/providers"
	"github.com/swatchkit/swatch/internal/logger"
	"github.com/swatchkit/swatch/internal/service"
	"github.com/swatchkit/swatch/internal/validation"
)

// NewContainer creates and configures the DI container with all providers.
// flags carries the command-line overrides for configuration loading.
func NewContainer(flags config.Flags) *do.RootScope {
	injector := do.New()

	// Core infrastructure
	do.ProvideValue(injector, flags)
	do.Provide(injector, providers.ProvideConfig)
	do.Provide(injector, providers.ProvideLogger)

	// Business services
	do.Provide(injector, providers.ProvideValidator)
	do.Provide(injector, providers.ProvidePaletteService)

	return injector
}

// Bootstrap initializes all services eagerly so configuration errors surface
// before any command runs.
func Bootstrap(injector *do.RootScope) error {
	if _, err := do.Invoke[*config.Config](injector); err != nil {
		return err
	}
	_ = do.MustInvoke[*logger.Logger](injector)
	_ = do.MustInvoke[*validation.Validator](injector)
	_ = do.MustInvoke[*service.PaletteService](injector)

	return nil
}
