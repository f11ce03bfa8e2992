package main

import (
	"github.com/spf13/cobra"

	"github.com/swatchkit/swatch/internal/config"
	"github.com/swatchkit/swatch/internal/ui"
)

func newContrastCmd(flags *config.Flags) *cobra.Command {
	return &cobra.Command{
		Use:   "contrast <foreground> <background>",
		Short: "Measure the contrast ratio of two colors",
		Long: `Measure the WCAG contrast ratio of two #RRGGBB colors.

Examples:
  swatch contrast "#767676" "#FFFFFF"
  swatch contrast "#767676" "#FFFFFF" --level AAA`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(flags)
			if err != nil {
				return err
			}

			result, err := a.palette.Contrast(args[0], args[1], "")
			if err != nil {
				return err
			}

			if a.json() {
				return ui.RenderJSON(cmd.OutOrStdout(), result)
			}
			return ui.RenderContrast(cmd.OutOrStdout(), result, a.rich())
		},
	}
}
