package bmpgrad

import "errors"

var (
	// ErrInvalidDimension is returned for non-positive buffer sizes and for
	// images too large for the 32-bit BMP size fields.
	ErrInvalidDimension = errors.New("bmpgrad: invalid dimension")
	// ErrOutOfBounds is returned when a coordinate lies outside the buffer.
	ErrOutOfBounds = errors.New("bmpgrad: coordinate out of bounds")
	// ErrInvalidColor is returned when a channel value is outside [0, 255].
	ErrInvalidColor = errors.New("bmpgrad: invalid color")
	// ErrEncodingSizeMismatch means the emitted byte count disagrees with the
	// declared file size. It indicates a bug in the encoder, not bad input.
	ErrEncodingSizeMismatch = errors.New("bmpgrad: encoded size mismatch")
)

// IOError reports a failure of the output sink.
type IOError struct {
	Op  string
	Err error
}

func (e *IOError) Error() string {
	return "bmpgrad: " + e.Op + ": " + e.Err.Error()
}

func (e *IOError) Unwrap() error {
	return e.Err
}
