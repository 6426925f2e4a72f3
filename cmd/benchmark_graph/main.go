package main

import (
	"context"
	"encoding/binary"
	"fmt"
	"math"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/delaneyj/cascade/signal"
	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v3"
)

const repeatsKey = "repeats"

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cmd := &cli.Command{
		Name:  "benchmark_graph",
		Usage: "Push writes through layered graphs of All + Map",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  repeatsKey,
				Usage: "Runs per configuration, the fastest one is reported",
				Value: 5,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			run(logger, int(cmd.Int(repeatsKey)))
			return nil
		},
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		logger.Fatal().Err(err).Msg("benchmark failed")
	}
}

type benchmarkTestConfig struct {
	name         string  // friendly name for the test, should be unique
	width        int64   // width of dependency graph to construct
	totalLayers  int64   // depth of dependency graph to construct
	nSources     int64   // number of sources feeding each node
	readFraction float64 // fraction of [0, 1] leaves read in each iteration
	iterations   int64   // number of test iterations
}

var perfTestCfgs = []benchmarkTestConfig{
	{
		name:         "simple component",
		width:        10,
		totalLayers:  5,
		nSources:     2,
		readFraction: 0.2,
		iterations:   100_000,
	},
	{
		name:         "large web app",
		width:        1000,
		totalLayers:  5,
		nSources:     4,
		readFraction: 1,
		iterations:   3000,
	},
	{
		name:         "fan in",
		width:        100,
		totalLayers:  4,
		nSources:     8,
		readFraction: 1,
		iterations:   1000,
	},
	{
		name:         "deep",
		width:        5,
		totalLayers:  100,
		nSources:     1,
		readFraction: 1,
		iterations:   5000,
	},
}

type results struct {
	sum      int
	count    int64
	digest   uint64
	duration time.Duration
}

func run(logger zerolog.Logger, testRepeats int) {
	logger.Info().Msg("starting graph benchmark, please wait...")
	defer logger.Info().Msg("finished graph benchmark")

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{
		"size", "nSources", "read%", "nTimes", "test", "time",
		"updateRate", "digest", "title",
	})

	for _, cfg := range perfTestCfgs {
		logger.Info().Str("config", cfg.name).Msg("running")
		counter := new(int64)

		bestResult := &results{
			duration: time.Hour,
		}

		for i := 0; i < testRepeats; i++ {
			logger.Debug().
				Str("config", cfg.name).
				Int("repeat", i+1).
				Int("of", testRepeats).
				Msg("iteration")

			// a fresh graph per run, writes cannot be undone
			*counter = 0
			graph := benchmarkMakeGraph(&benchmarkMakeGraphConfig{
				counter:     counter,
				width:       cfg.width,
				totalLayers: cfg.totalLayers,
				nSources:    cfg.nSources,
			})

			start := time.Now()
			sum, digest := benchmarkRunGraph(&benchmarkRunGraphConfig{
				graph:        graph,
				iteration:    cfg.iterations,
				readFraction: cfg.readFraction,
			})
			duration := time.Since(start)

			if duration < bestResult.duration {
				bestResult.duration = duration
				bestResult.sum = sum
				bestResult.count = *counter
				bestResult.digest = digest
			}
		}

		makeTitle := func() string {
			sb := strings.Builder{}
			sb.WriteString(fmt.Sprintf("%dx%d %d sources", cfg.width, cfg.totalLayers, cfg.nSources))
			if cfg.readFraction < 1 {
				sb.WriteString(fmt.Sprintf(" read %0.2f%%", 100*cfg.readFraction))
			}
			return sb.String()
		}

		updateRate := float64(bestResult.count) / (float64(bestResult.duration) / float64(time.Millisecond))

		table.Append([]string{
			fmt.Sprintf("%dx%d", cfg.width, cfg.totalLayers), // size
			fmt.Sprint(cfg.nSources),                         // nSources
			fmt.Sprint(cfg.readFraction),                     // read%
			humanize.Comma(cfg.iterations),                   // nTimes
			cfg.name,                                         // test
			fmt.Sprint(bestResult.duration),                  // time
			humanize.Comma(int64(updateRate)),                // updateRate
			fmt.Sprintf("%016x", bestResult.digest),          // digest
			makeTitle(),                                      // title
		})
	}
	table.Render()
}

type benchmarkGraph struct {
	sources []signal.Mutable[int]
	layers  [][]signal.Signal[int]
}

type benchmarkMakeGraphConfig struct {
	counter                      *int64
	width, totalLayers, nSources int64
}

func benchmarkMakeGraph(cfg *benchmarkMakeGraphConfig) *benchmarkGraph {
	sources := make([]signal.Mutable[int], cfg.width)
	prevRow := make([]signal.Value[int], cfg.width)
	for i := range sources {
		sources[i] = signal.New(i)
		prevRow[i] = sources[i]
	}

	graph := &benchmarkGraph{sources: sources}
	for l := int64(0); l < cfg.totalLayers-1; l++ {
		row := benchmarkMakeRow(prevRow, cfg.nSources, cfg.counter)
		graph.layers = append(graph.layers, row)

		prevRow = make([]signal.Value[int], len(row))
		for i, node := range row {
			prevRow[i] = node
		}
	}
	return graph
}

func benchmarkMakeRow(sources []signal.Value[int], nSources int64, counter *int64) []signal.Signal[int] {
	row := make([]signal.Signal[int], len(sources))
	for myDex := range sources {
		mySources := make([]signal.Value[int], 0, nSources)
		for sourceDex := 0; sourceDex < int(nSources); sourceDex++ {
			mySources = append(mySources, sources[(myDex+sourceDex)%len(sources)])
		}

		row[myDex] = signal.Map(signal.All(mySources...), func(values []int) int {
			*counter++
			sum := 0
			for _, v := range values {
				sum += v
			}
			return sum
		})
	}
	return row
}

type benchmarkRunGraphConfig struct {
	graph        *benchmarkGraph
	iteration    int64
	readFraction float64
}

// Execute the graph by writing one of the sources and reading some or all of the leaves.
// Returns the sum of the leaves read on the last iteration and a digest of every sum.
func benchmarkRunGraph(cfg *benchmarkRunGraphConfig) (int, uint64) {
	random := rand.New(rand.NewSource(0))
	leaves := cfg.graph.sourcesAsLeaves()
	if len(cfg.graph.layers) > 0 {
		leaves = cfg.graph.layers[len(cfg.graph.layers)-1]
	}
	skipCount := int(math.Round(float64(len(leaves)) * (1 - cfg.readFraction)))
	readLeaves := benchmarkRemoveElems(leaves, skipCount, random)

	digest := xxhash.New()
	buf := make([]byte, 0, 8)
	sum := 0
	for i := 0; i < int(cfg.iteration); i++ {
		sourceDex := i % len(cfg.graph.sources)
		cfg.graph.sources[sourceDex].Set(i + sourceDex)

		sum = 0
		for _, leaf := range readLeaves {
			sum += leaf.Get()
		}
		buf = binary.LittleEndian.AppendUint64(buf[:0], uint64(sum))
		digest.Write(buf)
	}
	return sum, digest.Sum64()
}

func (g *benchmarkGraph) sourcesAsLeaves() []signal.Signal[int] {
	leaves := make([]signal.Signal[int], len(g.sources))
	for i, src := range g.sources {
		leaves[i] = src.ReadOnly()
	}
	return leaves
}

func benchmarkRemoveElems[T any](src []T, rmCount int, rand *rand.Rand) []T {
	copyWithRemovals := make([]T, len(src))
	copy(copyWithRemovals, src)
	for i := 0; i < rmCount; i++ {
		rmDex := rand.Intn(len(copyWithRemovals))
		copyWithRemovals[rmDex] = copyWithRemovals[len(copyWithRemovals)-1]
		copyWithRemovals = copyWithRemovals[:len(copyWithRemovals)-1]
	}
	return copyWithRemovals
}
