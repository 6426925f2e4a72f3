package main

import (
	"context"
	"fmt"
	"os"
	"runtime/pprof"
	"time"

	"github.com/delaneyj/cascade/signal"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v3"
)

const (
	iterationsKey = "iterations"
	maxSizeKey    = "max"
	profileKey    = "profile"
)

var sizes = []int{1, 10, 100, 1_000}

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cmd := &cli.Command{
		Name:  "benchmark",
		Usage: "Time Set on a source feeding width x height chains of Map",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  iterationsKey,
				Usage: "Writes timed per configuration",
				Value: 100,
			},
			&cli.IntFlag{
				Name:  maxSizeKey,
				Usage: "Skip widths and heights above this",
				Value: 1_000,
			},
			&cli.StringFlag{
				Name:  profileKey,
				Usage: "Write a CPU profile to this file",
				Value: "default.pgo",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if path := cmd.String(profileKey); path != "" {
				f, err := os.Create(path)
				if err != nil {
					return err
				}
				defer f.Close()
				if err := pprof.StartCPUProfile(f); err != nil {
					return err
				}
				defer pprof.StopCPUProfile()
			}

			iters := int(cmd.Int(iterationsKey))
			maxSize := int(cmd.Int(maxSizeKey))

			logger.Info().Msg("warming up")
			benchmarkChains(iters, maxSize, false)
			benchmarkChains(iters, maxSize, true)
			return nil
		},
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		logger.Fatal().Err(err).Msg("benchmark failed")
	}
}

func addOne(v int) int {
	return v + 1
}

func benchmarkChains(iters, maxSize int, shouldRender bool) {
	tbl := table.NewWriter()
	tbl.SetTitle("cascade signals")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})

	for _, w := range sizes {
		if w > maxSize {
			continue
		}
		for _, h := range sizes {
			if h > maxSize {
				continue
			}

			tach := tachymeter.New(&tachymeter.Config{Size: iters})

			src := signal.New(1)
			for i := 0; i < w; i++ {
				var last signal.Value[int] = src
				for j := 0; j < h; j++ {
					last = signal.Map(last, addOne)
				}
				last.ForEachForever(func(int) {})
			}

			for i := 0; i < iters; i++ {
				start := time.Now()
				src.Update(addOne)
				tach.AddTime(time.Since(start))
			}

			calc := tach.Calc()
			tbl.AppendRows([]table.Row{
				{
					fmt.Sprintf("propagate: %d * %d", w, h),
					calc.Time.Avg,
					calc.Time.Min,
					calc.Time.P75,
					calc.Time.P99,
					calc.Time.Max,
				},
			})
		}
	}

	if shouldRender {
		tbl.Render()
	}
}
