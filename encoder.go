package bmpgrad

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"image"
	"io"
	"math"
	"os"
)

const (
	fileHeaderLen = 14
	dibHeaderLen  = 40
	// HeaderLen is the offset of the pixel data. No color table is written.
	HeaderLen = fileHeaderLen + dibHeaderLen

	// DefaultPixelsPerMeter is roughly 72 DPI.
	DefaultPixelsPerMeter = 2835
)

// FileHeader is the 14-byte BITMAPFILEHEADER.
type FileHeader struct {
	Magic      [2]byte
	FileSize   uint32
	Reserved   uint32
	DataOffset uint32
}

// DIBHeader is the 40-byte BITMAPINFOHEADER.
type DIBHeader struct {
	HeaderSize      uint32
	Width           int32
	Height          int32
	Planes          uint16
	BitsPerPixel    uint16
	Compression     uint32
	ImageSize       uint32
	XPixelsPerMeter int32
	YPixelsPerMeter int32
	ColorsUsed      uint32
	ColorsImportant uint32
}

// RowPadding returns the zero bytes appended to a row of width pixels so the
// row length is a multiple of 4.
func RowPadding(width int) int {
	return (4 - (3*width)%4) % 4
}

// RowStride returns the length in bytes of one padded row.
func RowStride(width int) int {
	return 3*width + RowPadding(width)
}

// BMPSize returns the length of the pixel data section.
func BMPSize(width, height int) int {
	return RowStride(width) * height
}

// PixelsPerMeter converts a resolution in dots per inch.
func PixelsPerMeter(dpi float64) int32 {
	return int32(math.Round(dpi / 0.0254))
}

// Encoder writes 24-bit uncompressed BMP files.
//
// Rows are emitted starting with y = 0. By default the height is stored as a
// positive number, which BMP readers interpret as bottom-up, so the image
// shows vertically flipped. Set TopDown to store a negative height instead.
type Encoder struct {
	// Zero means DefaultPixelsPerMeter.
	XPixelsPerMeter int32
	YPixelsPerMeter int32
	TopDown         bool
}

// Encode writes m to w using a default Encoder.
func Encode(w io.Writer, m image.Image) error {
	var e Encoder
	return e.Encode(w, m)
}

// Marshal returns the BMP encoding of m using a default Encoder.
func Marshal(m image.Image) ([]byte, error) {
	var e Encoder
	return e.Marshal(m)
}

// WriteFile encodes m into the named file using a default Encoder.
func WriteFile(path string, m image.Image) error {
	var e Encoder
	return e.WriteFile(path, m)
}

// Marshal returns the complete file as one slice.
func (e *Encoder) Marshal(m image.Image) ([]byte, error) {
	parts, err := e.encode(m)
	if err != nil {
		return nil, err
	}
	return bytes.Join(parts[:], nil), nil
}

// Encode writes the file header, DIB header and pixel data to w, in that
// order. Nothing is written if the image cannot be encoded.
func (e *Encoder) Encode(w io.Writer, m image.Image) error {
	parts, err := e.encode(m)
	if err != nil {
		return err
	}
	for _, p := range parts {
		if _, err := w.Write(p); err != nil {
			return &IOError{Op: "write", Err: err}
		}
	}
	return nil
}

// WriteFile creates path and encodes m into it. The file is closed on every
// path; a partially written file is left in place.
func (e *Encoder) WriteFile(path string, m image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return &IOError{Op: "create", Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &IOError{Op: "close", Err: cerr}
		}
	}()
	return e.Encode(f, m)
}

func (e *Encoder) encode(m image.Image) ([3][]byte, error) {
	var parts [3][]byte

	b := m.Bounds()
	w, h := b.Dx(), b.Dy()
	if w > math.MaxInt32 || h > math.MaxInt32 ||
		uint64(RowStride(w))*uint64(h)+HeaderLen > math.MaxUint32 {
		return parts, fmt.Errorf("%w: %dx%d exceeds BMP limits", ErrInvalidDimension, w, h)
	}
	size := BMPSize(w, h)

	var err error
	parts[0], err = pack(FileHeader{
		Magic:      [2]byte{'B', 'M'},
		FileSize:   uint32(size + HeaderLen),
		DataOffset: HeaderLen,
	})
	if err != nil {
		return parts, err
	}

	dib := DIBHeader{
		HeaderSize:      dibHeaderLen,
		Width:           int32(w),
		Height:          int32(h),
		Planes:          1,
		BitsPerPixel:    24,
		ImageSize:       uint32(size),
		XPixelsPerMeter: e.XPixelsPerMeter,
		YPixelsPerMeter: e.YPixelsPerMeter,
	}
	if dib.XPixelsPerMeter == 0 {
		dib.XPixelsPerMeter = DefaultPixelsPerMeter
	}
	if dib.YPixelsPerMeter == 0 {
		dib.YPixelsPerMeter = DefaultPixelsPerMeter
	}
	if e.TopDown {
		dib.Height = -dib.Height
	}
	parts[1], err = pack(dib)
	if err != nil {
		return parts, err
	}

	parts[2] = pixelData(m, w, h)

	n := len(parts[0]) + len(parts[1]) + len(parts[2])
	if n != size+HeaderLen {
		return [3][]byte{}, fmt.Errorf("%w: emitted %d bytes, declared %d", ErrEncodingSizeMismatch, n, size+HeaderLen)
	}
	return parts, nil
}

func pack(v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := binary.Write(&buf, binary.LittleEndian, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// pixelData lays out the rows in BGR order, each followed by RowPadding zero
// bytes.
func pixelData(m image.Image, w, h int) []byte {
	stride := RowStride(w)
	out := make([]byte, stride*h)
	b := m.Bounds()
	for y := 0; y < h; y++ {
		row := out[y*stride : y*stride+3*w]
		if p, ok := m.(*PixelBuffer); ok {
			src := p.Pix[p.PixOffset(0, y) : p.PixOffset(0, y)+3*w]
			for x := 0; x < len(src); x += 3 {
				row[x], row[x+1], row[x+2] = src[x+2], src[x+1], src[x]
			}
			continue
		}
		for x := 0; x < w; x++ {
			r, g, bl, _ := m.At(b.Min.X+x, b.Min.Y+y).RGBA()
			row[3*x] = uint8(bl >> 8)
			row[3*x+1] = uint8(g >> 8)
			row[3*x+2] = uint8(r >> 8)
		}
	}
	return out
}
