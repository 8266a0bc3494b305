package bmpgrad

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/mat"
)

// Corners are the four colours a gradient is built from.
type Corners struct {
	UpperLeft  colorful.Color
	UpperRight colorful.Color
	LowerLeft  colorful.Color
	LowerRight colorful.Color
}

// DefaultCorners returns red, green, blue and white.
func DefaultCorners() Corners {
	return Corners{
		UpperLeft:  colorful.Color{R: 1, G: 0, B: 0},
		UpperRight: colorful.Color{R: 0, G: 1, B: 0},
		LowerLeft:  colorful.Color{R: 0, G: 0, B: 1},
		LowerRight: colorful.Color{R: 1, G: 1, B: 1},
	}
}

func (c Corners) list() [4]colorful.Color {
	return [4]colorful.Color{c.UpperLeft, c.UpperRight, c.LowerLeft, c.LowerRight}
}

// dense returns the corners as a 4x3 matrix of channel values in [0, 255].
func (c Corners) dense() *mat.Dense {
	data := make([]float64, 0, 12)
	for _, col := range c.list() {
		r, g, b := col.Clamped().RGB255()
		data = append(data, float64(r), float64(g), float64(b))
	}
	return mat.NewDense(4, 3, data)
}

type Options struct {
	Corners   Corners
	Weighting Weighting
	Mode      BlendMode
}

func DefaultOptions() Options {
	return Options{
		Corners:   DefaultCorners(),
		Weighting: DefaultWeighting(),
		Mode:      BlendAverage,
	}
}

// GradientBuilder renders a four-corner gradient into a PixelBuffer.
type GradientBuilder struct {
	Width, Height int
	Buffer        *PixelBuffer
}

func NewGradientBuilder(width, height int) (*GradientBuilder, error) {
	buf, err := NewPixelBuffer(width, height)
	if err != nil {
		return nil, err
	}
	return &GradientBuilder{
		Width:  width,
		Height: height,
		Buffer: buf,
	}, nil
}

// Build sets every pixel of the buffer. A weighting that drives a channel
// outside [0, 255] fails with ErrInvalidColor.
func (gb *GradientBuilder) Build(opt Options) error {
	weights, err := opt.Weighting.Compile()
	if err != nil {
		return err
	}
	var mix func(w [4]float64) (r, g, b int)
	switch opt.Mode {
	case BlendLab:
		mix = labMixer(opt.Corners)
	default:
		mix = averageMixer(opt.Corners)
	}
	for x := 0; x < gb.Width; x++ {
		for y := 0; y < gb.Height; y++ {
			w, err := weights.At(x, y, gb.Width, gb.Height)
			if err != nil {
				return err
			}
			r, g, b := mix(w)
			if err := gb.Buffer.SetChannels(x, y, r, g, b); err != nil {
				return fmt.Errorf("build gradient: %w", err)
			}
		}
	}
	return nil
}

// averageMixer scales each corner by its weight and applies Blend per channel.
func averageMixer(c Corners) func([4]float64) (int, int, int) {
	corners := c.dense()
	diag := mat.NewDiagDense(4, nil)
	contrib := mat.NewDense(4, 3, nil)
	col := make([]float64, 4)
	return func(w [4]float64) (int, int, int) {
		for i, v := range w {
			diag.SetDiag(i, v)
		}
		contrib.Mul(diag, corners)
		var out [3]int
		for ch := range out {
			mat.Col(col, ch, contrib)
			out[ch] = Blend(col...)
		}
		return out[0], out[1], out[2]
	}
}

// labMixer takes the weighted mean of the corners in L*a*b*. Negative
// weights count as zero.
func labMixer(c Corners) func([4]float64) (int, int, int) {
	var labs [4][3]float64
	for i, col := range c.list() {
		labs[i][0], labs[i][1], labs[i][2] = col.Lab()
	}
	return func(w [4]float64) (int, int, int) {
		var l, a, b, total float64
		for i, v := range w {
			if v <= 0 {
				continue
			}
			l += v * labs[i][0]
			a += v * labs[i][1]
			b += v * labs[i][2]
			total += v
		}
		if total == 0 {
			return 0, 0, 0
		}
		r8, g8, b8 := colorful.Lab(l/total, a/total, b/total).Clamped().RGB255()
		return int(r8), int(g8), int(b8)
	}
}
