package commands

import (
	"github.com/setanarut/bmpgrad"
	"github.com/setanarut/bmpgrad/config"
	"github.com/spf13/cobra"
)

// renderOptions are the flags shared by every command that renders a
// gradient. Flags that were set win over the config file.
type renderOptions struct {
	configFile string
	width      int
	height     int
	upperLeft  string
	upperRight string
	lowerLeft  string
	lowerRight string
	mode       string
	dpi        float64
	topDown    bool
}

func addRenderOptions(command *cobra.Command, o *renderOptions) {
	d := config.Default()
	command.Flags().StringVarP(&o.configFile, "config", "c", "", "YAML file describing the gradient.")
	command.Flags().IntVar(&o.width, "width", d.Width, "Image width in pixels.")
	command.Flags().IntVar(&o.height, "height", d.Height, "Image height in pixels.")
	command.Flags().StringVar(&o.upperLeft, "upper-left", d.Corners.UpperLeft, "Upper left corner colour, as hex.")
	command.Flags().StringVar(&o.upperRight, "upper-right", d.Corners.UpperRight, "Upper right corner colour, as hex.")
	command.Flags().StringVar(&o.lowerLeft, "lower-left", d.Corners.LowerLeft, "Lower left corner colour, as hex.")
	command.Flags().StringVar(&o.lowerRight, "lower-right", d.Corners.LowerRight, "Lower right corner colour, as hex.")
	command.Flags().StringVar(&o.mode, "mode", d.Mode, "Blend mode: average or lab.")
	command.Flags().Float64Var(&o.dpi, "dpi", d.DPI, "Resolution stored in the file.")
	command.Flags().BoolVar(&o.topDown, "top-down", d.TopDown, "Store a negative height so readers keep row 0 on top.")
}

// load merges defaults, the config file and the flags that were set.
func (o *renderOptions) load(command *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	if o.configFile != "" {
		loaded, err := config.Load(o.configFile)
		if err != nil {
			return nil, newExitCodeError(err, ExitCodeInvalidConfig)
		}
		cfg = loaded
	}

	flags := command.Flags()
	if flags.Changed("width") {
		cfg.Width = o.width
	}
	if flags.Changed("height") {
		cfg.Height = o.height
	}
	if flags.Changed("upper-left") {
		cfg.Corners.UpperLeft = o.upperLeft
	}
	if flags.Changed("upper-right") {
		cfg.Corners.UpperRight = o.upperRight
	}
	if flags.Changed("lower-left") {
		cfg.Corners.LowerLeft = o.lowerLeft
	}
	if flags.Changed("lower-right") {
		cfg.Corners.LowerRight = o.lowerRight
	}
	if flags.Changed("mode") {
		cfg.Mode = o.mode
	}
	if flags.Changed("dpi") {
		cfg.DPI = o.dpi
	}
	if flags.Changed("top-down") {
		cfg.TopDown = o.topDown
	}

	if err := cfg.Validate(); err != nil {
		return nil, newExitCodeError(err, ExitCodeInvalidArguments)
	}
	return cfg, nil
}

func render(cfg *config.Config) (*bmpgrad.PixelBuffer, error) {
	opt, err := cfg.Options()
	if err != nil {
		return nil, newExitCodeError(err, ExitCodeInvalidArguments)
	}
	gb, err := bmpgrad.NewGradientBuilder(cfg.Width, cfg.Height)
	if err != nil {
		return nil, newExitCodeError(err, ExitCodeInvalidArguments)
	}
	if err := gb.Build(opt); err != nil {
		return nil, newExitCodeError(err, ExitCodeRenderError)
	}
	return gb.Buffer, nil
}
