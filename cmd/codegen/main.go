package main

import (
	"context"
	"fmt"
	"go/format"
	"os"
	"time"

	"github.com/delaneyj/cascade/cmd/codegen/templates"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v3"
)

const (
	maxArityKey = "count"
	outputKey   = "out"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cmd := &cli.Command{
		Name:  "generate",
		Usage: "Generate the Combine family for package signal",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  maxArityKey,
				Usage: "Largest number of sources a generated Combine accepts",
				Value: 4,
			},
			&cli.StringFlag{
				Name:  outputKey,
				Usage: "File to write",
				Value: "signal/combine_gen.go",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return generate(logger, int(cmd.Int(maxArityKey)), cmd.String(outputKey))
		},
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		logger.Fatal().Err(err).Msg("codegen failed")
	}
}

func generate(logger zerolog.Logger, maxArity int, out string) error {
	if maxArity < templates.MinArity {
		return fmt.Errorf("count must be at least %d, got %d", templates.MinArity, maxArity)
	}

	start := time.Now()
	logger.Info().Int("count", maxArity).Str("out", out).Msg("codegen started")
	defer func() {
		logger.Info().Dur("took", time.Since(start)).Msg("codegen finished")
	}()

	src, err := format.Source([]byte(templates.CombineGen(maxArity)))
	if err != nil {
		return fmt.Errorf("formatting generated code: %w", err)
	}

	return os.WriteFile(out, src, 0644)
}
