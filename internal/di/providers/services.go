package providers

import (
	"github.com/samber/do/v2"

	"github.com/swatchkit/swatch/internal/config"
	"github.com/swatchkit/swatch/internal/logger"
	"github.com/swatchkit/swatch/internal/service"
	"github.com/swatchkit/swatch/internal/validation"
)

// ProvideValidator provides the request validator.
func ProvideValidator(_ do.Injector) (*validation.Validator, error) {
	return validation.New(), nil
}

// ProvidePaletteService provides the palette service.
func ProvidePaletteService(i do.Injector) (*service.PaletteService, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)
	v := do.MustInvoke[*validation.Validator](i)

	return service.NewPaletteService(v, log.Logger, cfg.Palette.Level), nil
}
