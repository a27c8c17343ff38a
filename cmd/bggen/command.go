package main

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/bggen"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func newCommand(logger *slog.Logger, opts ...bggen.Option) *cli.Command {
	return &cli.Command{
		Name:  "bggen",
		Usage: "Generate bg.png, the default background of the image viewer",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			genOpts := append([]bggen.Option{bggen.WithLogger(logger)}, opts...)
			gen := bggen.New(genOpts...)

			resp, err := gen.Generate(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to create background image")
			}

			return report(cmd.Root().Writer, resp)
		},
	}
}
