package main_test

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/bggen"
	main "github.com/m-mizutani/bggen/cmd/bggen"
	"github.com/m-mizutani/gt"
)

func TestCommand(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.DiscardHandler)

	t.Run("creates bg.png", func(t *testing.T) {
		dir := t.TempDir()
		var buf bytes.Buffer

		cmd := main.NewCommand(logger, bggen.WithDir(dir))
		cmd.Writer = &buf
		gt.NoError(t, cmd.Run(ctx, []string{"bggen"}))

		_, err := os.Stat(filepath.Join(dir, bggen.ImageFileName))
		gt.NoError(t, err)
		gt.S(t, buf.String()).Contains("bg.png background image created")
		gt.S(t, buf.String()).Contains("400x300")
	})

	t.Run("falls back to instructions", func(t *testing.T) {
		dir := t.TempDir()
		var buf bytes.Buffer

		cmd := main.NewCommand(logger, bggen.WithDir(dir), bggen.WithEncoder(nil))
		cmd.Writer = &buf
		gt.NoError(t, cmd.Run(ctx, []string{"bggen"}))

		_, err := os.Stat(filepath.Join(dir, bggen.InstructionsFileName))
		gt.NoError(t, err)
		_, err = os.Stat(filepath.Join(dir, bggen.ImageFileName))
		gt.True(t, os.IsNotExist(err))
		gt.S(t, buf.String()).Contains("PNG support is not available")
	})

	t.Run("reports generation failure", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "missing")
		var buf bytes.Buffer

		cmd := main.NewCommand(logger, bggen.WithDir(dir))
		cmd.Writer = &buf
		err := cmd.Run(ctx, []string{"bggen"})
		gt.Error(t, err)
		gt.S(t, err.Error()).Contains("failed to create background image")
		gt.Equal(t, "", buf.String())
	})
}

func TestReport(t *testing.T) {
	t.Run("image", func(t *testing.T) {
		var buf bytes.Buffer
		gt.NoError(t, main.Report(&buf, &bggen.Result{
			Kind:   bggen.ArtifactImage,
			Path:   "bg.png",
			Width:  400,
			Height: 300,
		}))
		gt.S(t, buf.String()).Contains("location: bg.png")
		gt.S(t, buf.String()).Contains("size:     400x300")
		gt.S(t, buf.String()).Contains(bggen.Effect)
	})

	t.Run("existing", func(t *testing.T) {
		var buf bytes.Buffer
		gt.NoError(t, main.Report(&buf, &bggen.Result{
			Kind: bggen.ArtifactExisting,
			Path: "bg.png",
		}))
		gt.S(t, buf.String()).Contains("keeping existing background image: bg.png")
	})

	t.Run("unknown kind", func(t *testing.T) {
		var buf bytes.Buffer
		gt.Error(t, main.Report(&buf, &bggen.Result{Kind: bggen.ArtifactKind(42)}))
	})
}
