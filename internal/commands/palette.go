package commands

import (
	"fmt"

	"github.com/setanarut/bmpgrad/utils"
	"github.com/spf13/cobra"
)

func newPaletteCmd() *cobra.Command {
	var (
		o        renderOptions
		colors   int
		method   string
		swatch   string
		tileSize int
	)
	paletteCmd := &cobra.Command{
		Use:   "palette",
		Short: "Print the dominant colours of a gradient",
		Long:  "Render a gradient in memory and print its dominant colours as hex, sorted from dark to bright.",
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.NoArgs(cmd, args); err != nil {
				return err
			}
			if colors <= 0 {
				return fmt.Errorf("colors must be > 0, got %d", colors)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := utils.ParsePaletteMethod(method)
			if err != nil {
				return newExitCodeError(err, ExitCodeInvalidArguments)
			}
			cfg, err := o.load(cmd)
			if err != nil {
				return err
			}
			buf, err := render(cfg)
			if err != nil {
				return err
			}

			palette := utils.ExtractPalette(buf, colors, m)
			if len(palette) == 0 {
				return newExitCodeError(fmt.Errorf("no colours found"), ExitCodeRenderError)
			}
			utils.SortPaletteByBrightness(palette)
			for _, hex := range utils.PaletteHex(palette) {
				cmd.Println(hex)
			}

			if swatch != "" {
				if err := utils.SavePalette(palette, tileSize, swatch, cfg.Encoder()); err != nil {
					return newExitCodeError(fmt.Errorf("could not write swatch %s: %w", swatch, err), ExitCodeOutputError)
				}
			}
			return nil
		},
	}
	addRenderOptions(paletteCmd, &o)
	paletteCmd.Flags().IntVarP(&colors, "colors", "k", 5, "Number of colours to extract.")
	paletteCmd.Flags().StringVar(&method, "method", "dominantcolor", "Extraction method: dominantcolor or kmeans.")
	paletteCmd.Flags().StringVar(&swatch, "swatch", "", "Also write the palette as a BMP swatch to this file.")
	paletteCmd.Flags().IntVar(&tileSize, "tile-size", 64, "Swatch tile size in pixels.")
	return paletteCmd
}
