package config

import (
	"fmt"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/setanarut/bmpgrad"
	"gopkg.in/yaml.v3"
)

// Config describes one gradient render.
type Config struct {
	Width   int               `yaml:"width"`
	Height  int               `yaml:"height"`
	Output  string            `yaml:"output"`
	Mode    string            `yaml:"mode"`     // average, lab
	DPI     float64           `yaml:"dpi"`      // stored as pixels per meter
	TopDown bool              `yaml:"top_down"` // negative height, rows read top to bottom
	Corners CornersConfig     `yaml:"corners"`
	Weights bmpgrad.Weighting `yaml:"weights"`
}

// CornersConfig holds the corner colours as hex strings.
type CornersConfig struct {
	UpperLeft  string `yaml:"upper_left"`
	UpperRight string `yaml:"upper_right"`
	LowerLeft  string `yaml:"lower_left"`
	LowerRight string `yaml:"lower_right"`
}

// Default returns the 500x250 red, green, blue and white gradient.
func Default() *Config {
	return &Config{
		Width:  500,
		Height: 250,
		Output: "result.bmp",
		Mode:   bmpgrad.BlendAverage.String(),
		DPI:    72,
		Corners: CornersConfig{
			UpperLeft:  "#ff0000",
			UpperRight: "#00ff00",
			LowerLeft:  "#0000ff",
			LowerRight: "#ffffff",
		},
	}
}

// Load reads a YAML file. Keys missing from the file keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks the configuration and fills in empty weights.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("width and height must be > 0, got %dx%d", c.Width, c.Height)
	}
	if c.Output == "" {
		return fmt.Errorf("output is required")
	}
	if c.DPI <= 0 {
		return fmt.Errorf("dpi must be > 0")
	}
	if _, err := bmpgrad.ParseBlendMode(c.Mode); err != nil {
		return err
	}
	if _, err := c.Corners.Parse(); err != nil {
		return err
	}

	c.Weights = c.Weights.WithDefaults()
	if _, err := c.Weights.Compile(); err != nil {
		return err
	}
	return nil
}

// Parse converts the hex strings.
func (cc CornersConfig) Parse() (bmpgrad.Corners, error) {
	var out bmpgrad.Corners
	for _, f := range []struct {
		name string
		hex  string
		dst  *colorful.Color
	}{
		{"upper_left", cc.UpperLeft, &out.UpperLeft},
		{"upper_right", cc.UpperRight, &out.UpperRight},
		{"lower_left", cc.LowerLeft, &out.LowerLeft},
		{"lower_right", cc.LowerRight, &out.LowerRight},
	} {
		col, err := colorful.Hex(f.hex)
		if err != nil {
			return out, fmt.Errorf("corners.%s: %w", f.name, err)
		}
		*f.dst = col
	}
	return out, nil
}

// Options returns the gradient options described by c.
func (c *Config) Options() (bmpgrad.Options, error) {
	mode, err := bmpgrad.ParseBlendMode(c.Mode)
	if err != nil {
		return bmpgrad.Options{}, err
	}
	corners, err := c.Corners.Parse()
	if err != nil {
		return bmpgrad.Options{}, err
	}
	return bmpgrad.Options{
		Corners:   corners,
		Weighting: c.Weights.WithDefaults(),
		Mode:      mode,
	}, nil
}

// Encoder returns the BMP encoder settings described by c.
func (c *Config) Encoder() bmpgrad.Encoder {
	ppm := bmpgrad.PixelsPerMeter(c.DPI)
	return bmpgrad.Encoder{
		XPixelsPerMeter: ppm,
		YPixelsPerMeter: ppm,
		TopDown:         c.TopDown,
	}
}
