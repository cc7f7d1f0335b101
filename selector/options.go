package selector

import "go.uber.org/zap"

// Option configures a selector.
type Option func(*config)

type config struct {
	equal  EqualFunc
	logger *zap.Logger
}

func newConfig(opts []Option) config {
	cfg := config{
		equal:  Identical,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithEqual replaces the input equality predicate. A nil predicate keeps the default.
func WithEqual(eq EqualFunc) Option {
	return func(c *config) {
		if eq != nil {
			c.equal = eq
		}
	}
}

// WithLogger makes the selector log every recomputation at debug level.
func WithLogger(logger *zap.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}
