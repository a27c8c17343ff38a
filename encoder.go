package bggen

import (
	"image"
	"io"
)

// Encoder serializes a rendered canvas into the bg.png wire format.
type Encoder interface {
	Encode(w io.Writer, img image.Image) error
}

// EncoderFunc adapts a plain function to Encoder.
type EncoderFunc func(w io.Writer, img image.Image) error

func (f EncoderFunc) Encode(w io.Writer, img image.Image) error {
	return f(w, img)
}
