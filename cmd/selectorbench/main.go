// Command selectorbench compares a memoized category selector against the plain
// function it wraps, over synthetic states of several sizes.
//
// Usage:
//
//	go run ./cmd/selectorbench -sizes 10,100,1000 -max-time 2s
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/on-the-ground/selectorbench/bench"
	"github.com/on-the-ground/selectorbench/internal/logging"
	"github.com/on-the-ground/selectorbench/scenario"
	"github.com/on-the-ground/selectorbench/selector"
	"github.com/on-the-ground/selectorbench/synth"
	"go.uber.org/zap"
)

type options struct {
	seed     string
	sizes    []int
	config   bench.Config
	parallel int
	level    string
	dev      bool
}

func parseFlags(args []string) (options, error) {
	fs := flag.NewFlagSet("selectorbench", flag.ContinueOnError)
	var opts options
	sizes := fs.String("sizes", "10,100,1000", "comma-separated state sizes")
	fs.StringVar(&opts.seed, "seed", "selectorbench", "seed for state generation")
	fs.DurationVar(&opts.config.SampleTime, "sample-time", 10*time.Millisecond, "minimum duration of one sample")
	fs.IntVar(&opts.config.MinSamples, "min-samples", 5, "minimum samples per case")
	fs.DurationVar(&opts.config.MaxTime, "max-time", time.Second, "sampling time per case")
	fs.IntVar(&opts.parallel, "parallel", 0, "also time the field selector from this many goroutines")
	fs.StringVar(&opts.level, "log-level", "info", "log level: debug, info, warn, error")
	fs.BoolVar(&opts.dev, "dev", false, "human-readable development logging")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	for _, raw := range strings.Split(*sizes, ",") {
		size, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return opts, fmt.Errorf("invalid size %q: %w", raw, err)
		}
		opts.sizes = append(opts.sizes, size)
	}
	return opts, nil
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	logger, err := logging.New(logging.LogLevel(opts.level), opts.dev)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer logging.Sync(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, opts, logger, os.Stdout); err != nil {
		logger.Error("selectorbench failed", zap.Error(err))
		stop()
		logging.Sync(logger)
		os.Exit(1)
	}
}

// sink keeps benchmarked results observable so the calls are not elided.
var sink any

func run(ctx context.Context, opts options, logger *zap.Logger, out io.Writer) error {
	gen := synth.NewGenerator(opts.seed)
	states := make([]synth.State, len(opts.sizes))
	for i, size := range opts.sizes {
		start := time.Now()
		state, err := gen.State(size)
		if err != nil {
			return err
		}
		states[i] = state
		logger.Debug("state generated", zap.Int("size", size), zap.Duration("took", time.Since(start)))
	}

	identity := scenario.NewIdentitySelector(selector.WithLogger(logger))
	fields := scenario.NewFieldSelector(selector.WithLogger(logger))
	for i, state := range states {
		want, err := scenario.Pure(state)
		if err != nil {
			return err
		}
		verr := scenario.Verify(state, identity, fields)
		fmt.Fprintf(out, "%s %t\n", describe(want), verr == nil)
		if verr != nil {
			return fmt.Errorf("self-check failed for size %d: %w", opts.sizes[i], verr)
		}
	}
	// Verification must not count toward the timed selectors' hit/miss stats.
	identity.ResetStats()
	fields.ResetStats()

	suite := bench.NewSuite(opts.config, logger)
	suite.
		Add(caseName("create selector", ""), func() { sink = scenario.NewFieldSelector() }).
		Add(caseName("create selector 2", ""), func() { sink = scenario.NewIdentitySelector() }).
		Add(caseName("create pure selector", ""), func() { sink = scenario.Pure })

	for i, state := range states {
		dims := fmt.Sprintf("%d*%d", opts.sizes[i], opts.sizes[i])
		suite.
			Add(caseName("reselect", dims), func() { sink = identity.MustCompute(state) }).
			Add(caseName("reselect 2", dims), func() { sink = fields.MustCompute(state) }).
			Add(caseName("pure selector", dims), func() { sink, _ = scenario.Pure(state) })
		if opts.parallel > 0 {
			suite.Add(caseName(fmt.Sprintf("reselect 2 x%d", opts.parallel), dims),
				bench.Parallel(opts.parallel, func() { _ = fields.MustCompute(state) }))
		}
	}

	report, err := suite.Run(ctx)
	if _, werr := report.WriteTo(out); werr != nil {
		return werr
	}
	for name, sel := range map[string]scenario.Selector{"reselect": identity, "reselect 2": fields} {
		stats := sel.Stats()
		logger.Info("selector stats",
			zap.String("selector", name),
			zap.Uint64("hits", stats.Hits),
			zap.Uint64("misses", stats.Misses),
			zap.Float64("hit_ratio", stats.HitRatio()),
		)
	}
	return err
}

// caseName pads names into aligned columns.
func caseName(name, dims string) string {
	return fmt.Sprintf("%-20s%11s", name, dims)
}

func describe(v any) string {
	if m, ok := v.(synth.State); ok {
		return fmt.Sprintf("object(%d keys)", len(m))
	}
	return fmt.Sprintf("%v", v)
}
