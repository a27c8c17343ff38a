package main

import (
	"fmt"
	"io"

	"github.com/m-mizutani/bggen"
	"github.com/m-mizutani/goerr/v2"
)

// report prints the human readable outcome of a run.
func report(w io.Writer, resp *bggen.Result) error {
	var lines []string
	switch resp.Kind {
	case bggen.ArtifactImage:
		lines = []string{
			fmt.Sprintf("%s background image created", bggen.ImageFileName),
			fmt.Sprintf("  location: %s", resp.Path),
			fmt.Sprintf("  size:     %dx%d", resp.Width, resp.Height),
			fmt.Sprintf("  effect:   %s", bggen.Effect),
		}

	case bggen.ArtifactInstructions:
		lines = []string{
			"PNG support is not available in this build (rebuild without the nopng tag)",
			fmt.Sprintf("instructions file created: %s", resp.Path),
		}

	case bggen.ArtifactExisting:
		lines = []string{
			"PNG support is not available in this build (rebuild without the nopng tag)",
			fmt.Sprintf("keeping existing background image: %s", resp.Path),
		}

	default:
		return goerr.New("unknown artifact kind", goerr.V("kind", int(resp.Kind)))
	}

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return goerr.Wrap(err, "failed to write report")
		}
	}
	return nil
}
