package bggen

import "errors"

var (
	// ErrMissingCapability means no image encoder is available, so only the
	// instructions file can be produced.
	ErrMissingCapability = errors.New("image encoding capability is not available")

	// ErrInvalidArtifact means a written bg.png failed verification.
	ErrInvalidArtifact = errors.New("invalid background image artifact")
)
