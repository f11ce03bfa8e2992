// Command swatch generates accessible color palettes from a seed color.
package main

import (
	"fmt"
	"os"

	"github.com/samber/do/v2"
	"github.com/spf13/cobra"

	"github.com/swatchkit/swatch/internal/config"
	"github.com/swatchkit/swatch/internal/di"
	domainerrors "github.com/swatchkit/swatch/internal/errors"
	"github.com/swatchkit/swatch/internal/service"
	"github.com/swatchkit/swatch/internal/ui"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(domainerrors.ExitCode(err))
	}
}

// newRootCmd builds the command tree. Flags bind to a fresh config.Flags so
// every invocation starts clean.
func newRootCmd() *cobra.Command {
	flags := &config.Flags{}

	rootCmd := &cobra.Command{
		Use:   "swatch",
		Short: "Generate accessible color palettes",
		Long: `swatch derives a 12-role palette from a single seed color and grades it
against the WCAG contrast levels.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.Env, "env", "", "environment: development, test, production (env: SWATCH_ENV)")
	pf.StringVar(&flags.LogLevel, "log-level", "", "log level: debug, info, warn, error (env: SWATCH_LOG_LEVEL)")
	pf.StringVar(&flags.Level, "level", "", "WCAG level to judge against: AA or AAA (env: SWATCH_LEVEL)")
	pf.StringVar(&flags.Format, "format", "", "output format: table or json (env: SWATCH_FORMAT)")
	pf.StringVar(&flags.EnvFile, "env-file", "", "path to .env file (default: .env)")
	pf.BoolVar(&flags.NoColor, "no-color", false, "disable colored output (env: NO_COLOR)")

	rootCmd.AddCommand(newGenerateCmd(flags))
	rootCmd.AddCommand(newContrastCmd(flags))

	return rootCmd
}

// app is the wired state a subcommand runs against.
type app struct {
	cfg     *config.Config
	palette *service.PaletteService
}

func newApp(flags *config.Flags) (*app, error) {
	injector := di.NewContainer(*flags)
	if err := di.Bootstrap(injector); err != nil {
		return nil, err
	}

	return &app{
		cfg:     do.MustInvoke[*config.Config](injector),
		palette: do.MustInvoke[*service.PaletteService](injector),
	}, nil
}

func (a *app) rich() bool {
	return !a.cfg.Output.NoColor && ui.IsRich()
}

func (a *app) json() bool {
	return a.cfg.Output.Format == config.FormatJSON
}
