package bmpgrad

import (
	"fmt"
	"image"
	"image/color"
)

// RGB is a 24-bit pixel value.
type RGB struct {
	R, G, B uint8
}

// PixelBuffer is a fixed-size, dense grid of RGB pixels.
type PixelBuffer struct {
	w, h int
	// Pix holds the pixels in R, G, B order. The pixel at (x, y) starts at
	// Pix[(y*w + x)*3].
	Pix []uint8
}

// NewPixelBuffer returns a black buffer of the given size.
func NewPixelBuffer(width, height int) (*PixelBuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, width, height)
	}
	return &PixelBuffer{
		w:   width,
		h:   height,
		Pix: make([]uint8, width*height*3),
	}, nil
}

func (p *PixelBuffer) Width() int  { return p.w }
func (p *PixelBuffer) Height() int { return p.h }

// PixOffset returns the index of the first element of Pix that corresponds to
// the pixel at (x, y).
func (p *PixelBuffer) PixOffset(x, y int) int {
	return (y*p.w + x) * 3
}

func (p *PixelBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < p.w && y >= 0 && y < p.h
}

// SetPixel overwrites the pixel at (x, y).
func (p *PixelBuffer) SetPixel(x, y int, c RGB) error {
	if !p.inBounds(x, y) {
		return fmt.Errorf("%w: (%d,%d) not in %dx%d", ErrOutOfBounds, x, y, p.w, p.h)
	}
	i := p.PixOffset(x, y)
	s := p.Pix[i : i+3 : i+3]
	s[0], s[1], s[2] = c.R, c.G, c.B
	return nil
}

// SetChannels is SetPixel for integer channels, which must be in [0, 255].
func (p *PixelBuffer) SetChannels(x, y, r, g, b int) error {
	if !p.inBounds(x, y) {
		return fmt.Errorf("%w: (%d,%d) not in %dx%d", ErrOutOfBounds, x, y, p.w, p.h)
	}
	for _, v := range [3]int{r, g, b} {
		if v < 0 || v > 255 {
			return fmt.Errorf("%w: (%d,%d,%d) at (%d,%d)", ErrInvalidColor, r, g, b, x, y)
		}
	}
	return p.SetPixel(x, y, RGB{uint8(r), uint8(g), uint8(b)})
}

// Pixel returns the pixel at (x, y).
func (p *PixelBuffer) Pixel(x, y int) (RGB, error) {
	if !p.inBounds(x, y) {
		return RGB{}, fmt.Errorf("%w: (%d,%d) not in %dx%d", ErrOutOfBounds, x, y, p.w, p.h)
	}
	i := p.PixOffset(x, y)
	return RGB{p.Pix[i], p.Pix[i+1], p.Pix[i+2]}, nil
}

func (p *PixelBuffer) ColorModel() color.Model { return color.RGBAModel }

func (p *PixelBuffer) Bounds() image.Rectangle { return image.Rect(0, 0, p.w, p.h) }

func (p *PixelBuffer) At(x, y int) color.Color {
	return p.RGBAAt(x, y)
}

func (p *PixelBuffer) RGBAAt(x, y int) color.RGBA {
	if !p.inBounds(x, y) {
		return color.RGBA{}
	}
	i := p.PixOffset(x, y)
	return color.RGBA{p.Pix[i], p.Pix[i+1], p.Pix[i+2], 255}
}
