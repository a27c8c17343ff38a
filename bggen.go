// Package bggen generates the default background image of the image viewer.
//
// The image is a 400x300 vertical blue gradient with a grid of faint white
// dots, written as bg.png. When the running build has no PNG encoder, an
// instructions file explaining how to supply bg.png is written instead.
package bggen

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
)

// Effect describes the look of the generated image for status reports.
const Effect = "blue gradient with decorative dots"

// Result describes the artifact left by a Generate call.
type Result struct {
	Kind   ArtifactKind
	Path   string
	Width  int
	Height int
}

func (x Result) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("kind", x.Kind.String()),
		slog.String("path", x.Path),
		slog.Int("width", x.Width),
		slog.Int("height", x.Height),
	)
}

type config struct {
	dir     string
	encoder Encoder
	logger  *slog.Logger
}

// Option is the type for the options of the Generator.
type Option func(*config)

// WithDir sets the output directory. Default is the current working directory.
func WithDir(dir string) Option {
	return func(c *config) {
		c.dir = dir
	}
}

// WithEncoder replaces the encoder resolved at build time. Passing nil
// simulates a build without imaging support, so only the instructions
// file is produced.
func WithEncoder(enc Encoder) Option {
	return func(c *config) {
		c.encoder = enc
	}
}

// WithLogger sets the logger for diagnostics. Default discards all logs.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// Generator produces bg.png, or the instructions file when it cannot.
type Generator struct {
	config
}

// New creates a Generator. The encoder capability is resolved here, once.
func New(opts ...Option) *Generator {
	cfg := config{
		dir:     ".",
		encoder: DefaultEncoder(),
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.New(slog.DiscardHandler)
	}
	return &Generator{config: cfg}
}

// Available reports whether the generator can produce an image.
func (x *Generator) Available() bool {
	return x.encoder != nil
}

type ctxLoggerKey struct{}

func ctxWithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxLoggerKey{}, logger)
}

// LoggerFromContext returns the logger attached by Generate, or a discard logger.
func LoggerFromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(ctxLoggerKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.New(slog.DiscardHandler)
}

// Generate writes exactly one artifact into the output directory. A missing
// encoder is not an error: the instructions file is written and its Result
// returned. Any other failure is returned as an error.
func (x *Generator) Generate(ctx context.Context) (*Result, error) {
	ctx = ctxWithLogger(ctx, x.logger)

	if x.encoder == nil {
		LoggerFromContext(ctx).Warn("PNG encoder is not available, falling back to instructions",
			slog.Any("error", ErrMissingCapability))
		return x.fallback(ctx)
	}
	return x.generateImage(ctx)
}

func (x *Generator) generateImage(ctx context.Context) (*Result, error) {
	logger := LoggerFromContext(ctx)
	imagePath, textPath := artifactPaths(x.dir)

	img := Render(CanvasWidth, CanvasHeight, DefaultGradient, DefaultDotOverlay)
	logger.Debug("rendered canvas",
		slog.Int("width", CanvasWidth),
		slog.Int("height", CanvasHeight),
	)

	if err := ctx.Err(); err != nil {
		return nil, goerr.Wrap(err, "generation canceled")
	}

	if err := writeImage(imagePath, x.encoder, img); err != nil {
		return nil, err
	}
	if err := verifyImage(imagePath, CanvasWidth, CanvasHeight); err != nil {
		return nil, err
	}

	removed, err := removeStale(textPath)
	if err != nil {
		return nil, err
	}
	if removed {
		logger.Debug("removed stale instructions", slog.String("path", textPath))
	}

	resp := &Result{
		Kind:   ArtifactImage,
		Path:   imagePath,
		Width:  CanvasWidth,
		Height: CanvasHeight,
	}
	logger.Info("background image created", slog.Any("result", resp))
	return resp, nil
}

func (x *Generator) fallback(ctx context.Context) (*Result, error) {
	logger := LoggerFromContext(ctx)
	imagePath, textPath := artifactPaths(x.dir)

	// A bg.png supplied by hand already satisfies the viewer.
	exists, err := fileExists(imagePath)
	if err != nil {
		return nil, err
	}
	if exists {
		if _, err := removeStale(textPath); err != nil {
			return nil, err
		}
		resp := &Result{Kind: ArtifactExisting, Path: imagePath}
		logger.Info("keeping existing background image", slog.Any("result", resp))
		return resp, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, goerr.Wrap(err, "generation canceled")
	}
	if err := writeInstructions(textPath); err != nil {
		return nil, err
	}

	resp := &Result{Kind: ArtifactInstructions, Path: textPath}
	logger.Info("instructions created", slog.Any("result", resp))
	return resp, nil
}
