package main

import (
	"github.com/spf13/cobra"

	"github.com/swatchkit/swatch/internal/color"
	"github.com/swatchkit/swatch/internal/config"
	domainerrors "github.com/swatchkit/swatch/internal/errors"
	"github.com/swatchkit/swatch/internal/ui"
	"github.com/swatchkit/swatch/internal/util"
)

func newGenerateCmd(flags *config.Flags) *cobra.Command {
	var from string

	cmd := &cobra.Command{
		Use:   "generate [#RRGGBB]",
		Short: "Generate a palette from a seed color",
		Long: `Generate a palette from a seed color and report its accessibility.

The seed is either a #RRGGBB color or, with --from, any text that is
hashed to a stable pastel color. Case, spacing, and punctuation in the
text are ignored.

Examples:
  swatch generate "#D2691E"
  swatch generate --from "project atlas" --format json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seed, err := seedFrom(args, from)
			if err != nil {
				return err
			}

			a, err := newApp(flags)
			if err != nil {
				return err
			}

			result, err := a.palette.Generate(seed)
			if err != nil {
				return err
			}

			if a.json() {
				return ui.RenderJSON(cmd.OutOrStdout(), result)
			}
			return ui.RenderPalette(cmd.OutOrStdout(), result, a.rich())
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "derive the seed from text instead of a color")

	return cmd
}

func seedFrom(args []string, from string) (string, error) {
	switch {
	case len(args) == 1 && from != "":
		return "", domainerrors.Validation("pass either a seed color or --from, not both")
	case len(args) == 1:
		return args[0], nil
	case from != "":
		return color.ForKey(util.NormalizeKey(from)).Hex(), nil
	default:
		return "", domainerrors.Validation("a seed color or --from is required")
	}
}
