package bmpgrad

import (
	"errors"
	"image/color"
	"testing"
)

func TestNewPixelBuffer(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		wantErr       error
	}{
		{"1x1", 1, 1, nil},
		{"wide", 500, 250, nil},
		{"zero width", 0, 10, ErrInvalidDimension},
		{"zero height", 10, 0, ErrInvalidDimension},
		{"negative", -3, 4, ErrInvalidDimension},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf, err := NewPixelBuffer(tt.width, tt.height)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("NewPixelBuffer(%d, %d) error = %v, want %v", tt.width, tt.height, err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if buf.Width() != tt.width || buf.Height() != tt.height {
				t.Errorf("size = %dx%d, want %dx%d", buf.Width(), buf.Height(), tt.width, tt.height)
			}
			for i, v := range buf.Pix {
				if v != 0 {
					t.Fatalf("Pix[%d] = %d, want 0", i, v)
				}
			}
		})
	}
}

func TestPixelBufferSetAndGet(t *testing.T) {
	buf, err := NewPixelBuffer(3, 2)
	if err != nil {
		t.Fatal(err)
	}
	if err := buf.SetPixel(2, 1, RGB{10, 20, 30}); err != nil {
		t.Fatal(err)
	}
	if err := buf.SetChannels(0, 1, 255, 0, 128); err != nil {
		t.Fatal(err)
	}
	// Overwrite.
	if err := buf.SetPixel(2, 1, RGB{1, 2, 3}); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		x, y int
		want RGB
	}{
		{2, 1, RGB{1, 2, 3}},
		{0, 1, RGB{255, 0, 128}},
		{1, 0, RGB{}},
	}
	for _, tt := range tests {
		got, err := buf.Pixel(tt.x, tt.y)
		if err != nil {
			t.Fatalf("Pixel(%d, %d): %v", tt.x, tt.y, err)
		}
		if got != tt.want {
			t.Errorf("Pixel(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}

	if got := buf.At(0, 1); got != (color.RGBA{255, 0, 128, 255}) {
		t.Errorf("At(0, 1) = %v", got)
	}
	if got := buf.At(3, 0); got != (color.RGBA{}) {
		t.Errorf("At outside bounds = %v, want zero", got)
	}
}

func TestPixelBufferErrors(t *testing.T) {
	buf, err := NewPixelBuffer(2, 2)
	if err != nil {
		t.Fatal(err)
	}
	if err := buf.SetPixel(1, 1, RGB{9, 9, 9}); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		call    func() error
		wantErr error
	}{
		{"set x too large", func() error { return buf.SetPixel(2, 0, RGB{}) }, ErrOutOfBounds},
		{"set negative y", func() error { return buf.SetPixel(0, -1, RGB{}) }, ErrOutOfBounds},
		{"channels out of bounds", func() error { return buf.SetChannels(5, 5, 0, 0, 0) }, ErrOutOfBounds},
		{"red too large", func() error { return buf.SetChannels(1, 1, 256, 0, 0) }, ErrInvalidColor},
		{"blue negative", func() error { return buf.SetChannels(1, 1, 0, 0, -1) }, ErrInvalidColor},
		{"get out of bounds", func() error { _, err := buf.Pixel(0, 2); return err }, ErrOutOfBounds},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.call(); !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}

	got, err := buf.Pixel(1, 1)
	if err != nil {
		t.Fatal(err)
	}
	if got != (RGB{9, 9, 9}) {
		t.Errorf("failed calls modified the buffer: Pixel(1, 1) = %v", got)
	}
}
