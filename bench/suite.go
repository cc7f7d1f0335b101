// Package bench runs named zero-argument cases repeatedly and reports their
// throughput side by side.
package bench

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Case is one named callable to time.
type Case struct {
	Name string
	Fn   func()
}

// Config controls sampling.
type Config struct {
	// SampleTime is the minimum duration of one sample; iteration counts are
	// calibrated until a sample takes at least this long.
	SampleTime time.Duration
	// MinSamples is the minimum number of samples per case.
	MinSamples int
	// MaxTime bounds sampling per case once MinSamples is reached.
	MaxTime time.Duration
}

const (
	defaultSampleTime = 10 * time.Millisecond
	defaultMinSamples = 5
	defaultMaxTime    = time.Second
)

func (c Config) withDefaults() Config {
	if c.SampleTime <= 0 {
		c.SampleTime = defaultSampleTime
	}
	if c.MinSamples <= 0 {
		c.MinSamples = defaultMinSamples
	}
	if c.MaxTime <= 0 {
		c.MaxTime = defaultMaxTime
	}
	return c
}

// Suite is an ordered set of cases.
type Suite struct {
	config Config
	logger *zap.Logger
	cases  []Case
	now    func() time.Time
}

// NewSuite creates an empty suite. A nil logger disables logging.
func NewSuite(config Config, logger *zap.Logger) *Suite {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Suite{
		config: config.withDefaults(),
		logger: logger,
		now:    time.Now,
	}
}

// Add appends a case and returns the suite for chaining.
func (s *Suite) Add(name string, fn func()) *Suite {
	s.cases = append(s.cases, Case{Name: name, Fn: fn})
	return s
}

// Cases returns the registered cases in order.
func (s *Suite) Cases() []Case {
	return append([]Case(nil), s.cases...)
}

// Run times every case in order.
//
// A case that panics gets its error recorded and the suite moves on; all such errors
// are returned combined. Cancelling ctx stops the run between samples and returns
// the results gathered so far together with ctx.Err().
func (s *Suite) Run(ctx context.Context) (Report, error) {
	start := s.now()
	report := Report{Results: make([]Result, 0, len(s.cases))}
	var errs error

	for _, c := range s.cases {
		res, err := s.runCase(ctx, c)
		if ctxErr := ctx.Err(); ctxErr != nil {
			report.Span = NewTimeSpan(start, s.now())
			return report, multierr.Append(errs, ctxErr)
		}
		if err != nil {
			res.Err = err
			errs = multierr.Append(errs, err)
			s.logger.Error("case failed", zap.String("name", c.Name), zap.Error(err))
		} else {
			s.logger.Info("cycle",
				zap.String("name", c.Name),
				zap.Float64("ops_per_sec", res.OpsPerSec),
				zap.Float64("rme_percent", res.RME),
				zap.Int("samples", len(res.Samples)),
			)
		}
		report.Results = append(report.Results, res)
	}

	report.Span = NewTimeSpan(start, s.now())
	s.logger.Info("complete",
		zap.Strings("fastest", report.Fastest()),
		zap.Duration("elapsed", report.Span.Duration()),
	)
	return report, errs
}

func (s *Suite) runCase(ctx context.Context, c Case) (res Result, err error) {
	res.Name = c.Name
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("case %q panicked: %v", c.Name, r)
		}
	}()

	count := s.calibrate(ctx, c.Fn)
	begin := s.now()
	for len(res.Samples) < s.config.MinSamples || s.now().Sub(begin) < s.config.MaxTime {
		if ctx.Err() != nil {
			return res, ctx.Err()
		}
		elapsed := timeLoop(c.Fn, count)
		res.Samples = append(res.Samples, float64(elapsed.Nanoseconds())/float64(count))
	}

	st := summarize(res.Samples)
	res.NsPerOp = st.mean
	res.RME = st.rme
	res.moe = st.moe
	if st.mean > 0 {
		res.OpsPerSec = float64(time.Second) / st.mean
	}
	return res, nil
}

// calibrate doubles the iteration count until one loop takes at least SampleTime.
func (s *Suite) calibrate(ctx context.Context, fn func()) int {
	count := 1
	for ctx.Err() == nil {
		if timeLoop(fn, count) >= s.config.SampleTime || count >= 1<<30 {
			break
		}
		count *= 2
	}
	return count
}

func timeLoop(fn func(), count int) time.Duration {
	start := time.Now()
	for i := 0; i < count; i++ {
		fn()
	}
	return time.Since(start)
}
