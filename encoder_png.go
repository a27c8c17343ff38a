//go:build !nopng

package bggen

import (
	"image"
	"image/png"
	"io"

	"github.com/m-mizutani/goerr/v2"
)

type pngEncoder struct {
	enc png.Encoder
}

func (x *pngEncoder) Encode(w io.Writer, img image.Image) error {
	if err := x.enc.Encode(w, img); err != nil {
		return goerr.Wrap(err, "failed to encode PNG")
	}
	return nil
}

// DefaultEncoder returns the PNG encoder compiled into this build.
func DefaultEncoder() Encoder {
	return &pngEncoder{
		enc: png.Encoder{CompressionLevel: png.BestCompression},
	}
}
