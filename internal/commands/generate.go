package commands

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/setanarut/bmpgrad"
	"github.com/spf13/cobra"
)

func newGenerateCmd() *cobra.Command {
	var o renderOptions
	generateCmd := &cobra.Command{
		Use:   "generate [output]",
		Short: "Render a gradient into a BMP file",
		Long:  "Render a gradient into a BMP file. The output path defaults to the config file's output, or result.bmp.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := o.load(cmd)
			if err != nil {
				return err
			}
			if len(args) == 1 {
				cfg.Output = args[0]
			}

			buf, err := render(cfg)
			if err != nil {
				return err
			}

			if dir := filepath.Dir(cfg.Output); dir != "." {
				if err := os.MkdirAll(dir, 0755); err != nil {
					return newExitCodeError(fmt.Errorf("could not create output directory %s: %w", dir, err), ExitCodeOutputError)
				}
			}
			enc := cfg.Encoder()
			if err := enc.WriteFile(cfg.Output, buf); err != nil {
				return newExitCodeError(fmt.Errorf("could not write %s: %w", cfg.Output, err), ExitCodeOutputError)
			}

			log.Printf("Rendered %dx%d %s gradient", cfg.Width, cfg.Height, cfg.Mode)
			cmd.Printf("Wrote %s (%d bytes)\n", cfg.Output, bmpgrad.BMPSize(cfg.Width, cfg.Height)+bmpgrad.HeaderLen)
			return nil
		},
	}
	addRenderOptions(generateCmd, &o)
	return generateCmd
}
