package bggen

import "image"

// Internal functions exported for testing
var (
	VerifyImage = verifyImage
	Flatten     = flatten
)

const Instructions = instructions

func (x DotOverlay) Mask() *image.Alpha {
	return x.mask()
}
