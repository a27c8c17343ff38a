package bggen

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
)

const (
	// ImageFileName is the file the image viewer looks for beside its executable.
	ImageFileName = "bg.png"
	// InstructionsFileName is written instead of ImageFileName when no encoder is available.
	InstructionsFileName = "bg.png说明.txt"
)

// ArtifactKind tells which file a run left in the output directory.
type ArtifactKind int

const (
	// ArtifactImage is a freshly generated bg.png.
	ArtifactImage ArtifactKind = iota
	// ArtifactInstructions is the fallback text explaining how to supply bg.png.
	ArtifactInstructions
	// ArtifactExisting is a bg.png that was already present and kept as is.
	ArtifactExisting
)

func (x ArtifactKind) String() string {
	return []string{"image", "instructions", "existing"}[x]
}

// instructions is the fixed content of the fallback file.
const instructions = `bg.png background image

This file stands in for a PNG image that the image viewer uses as its default background.

Recommended format:
- Format: PNG
- Size: any (the image is tiled automatically)
- Content: a texture, gradient or pattern

To get a bg.png you can:
1. Run bggen from a build that includes PNG support (built without the nopng tag) to generate the sample image
2. Create your own bg.png with any image editing software
3. Download a suitable texture image and rename it to bg.png

Put bg.png in the same directory as the viewer's executable to enable the default background.
`

var pngSignature = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

// writeImage encodes img fully in memory and writes it in a single call.
func writeImage(path string, enc Encoder, img image.Image) error {
	var buf bytes.Buffer
	if err := enc.Encode(&buf, img); err != nil {
		return goerr.Wrap(err, "failed to encode background image")
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return goerr.Wrap(err, "failed to write background image", goerr.V("path", path))
	}
	return nil
}

func writeInstructions(path string) error {
	if err := os.WriteFile(path, []byte(instructions), 0644); err != nil {
		return goerr.Wrap(err, "failed to write instructions", goerr.V("path", path))
	}
	return nil
}

// verifyImage checks that path holds a PNG of the given size.
func verifyImage(path string, width, height int) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return goerr.Wrap(err, "failed to read background image", goerr.V("path", path))
	}

	if len(data) < len(pngSignature) || !bytes.Equal(data[:len(pngSignature)], pngSignature) {
		return goerr.Wrap(ErrInvalidArtifact, "PNG signature not found", goerr.V("path", path))
	}

	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return goerr.Wrap(ErrInvalidArtifact, "failed to decode PNG header",
			goerr.V("path", path), goerr.V("cause", err.Error()))
	}
	if cfg.Width != width || cfg.Height != height {
		return goerr.Wrap(ErrInvalidArtifact, "unexpected image size",
			goerr.V("path", path),
			goerr.V("width", cfg.Width),
			goerr.V("height", cfg.Height),
		)
	}

	return nil
}

func fileExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, goerr.Wrap(err, "failed to stat file", goerr.V("path", path))
}

// removeStale deletes a leftover artifact from an earlier run, if any.
func removeStale(path string) (bool, error) {
	if err := os.Remove(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, goerr.Wrap(err, "failed to remove stale artifact", goerr.V("path", path))
	}
	return true, nil
}

func artifactPaths(dir string) (imagePath, textPath string) {
	return filepath.Join(dir, ImageFileName), filepath.Join(dir, InstructionsFileName)
}
