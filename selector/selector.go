package selector

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
)

// InputFunc derives one value from the selector argument.
type InputFunc[S any] func(S) (any, error)

// ResultFunc combines the derived values, in the order the inputs were declared.
type ResultFunc[O any] func(inputs []any) (O, error)

// ErrDerivation is returned when an input function or the result function fails.
var ErrDerivation = errors.New("derivation failed")

// Stats holds hit/miss counts of a selector.
type Stats struct {
	Hits   uint64
	Misses uint64
}

// HitRatio returns Hits / (Hits + Misses), or 0 before the first call.
func (s Stats) HitRatio() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

// Selector memoizes the most recent input tuple and output.
type Selector[S, O any] struct {
	inputs []InputFunc[S]
	result ResultFunc[O]
	equal  EqualFunc
	logger *zap.Logger

	mu        sync.Mutex
	populated bool
	lastIn    []any
	lastOut   O

	recomputations atomic.Uint64
	hits           atomic.Uint64
	misses         atomic.Uint64
}

// New builds a selector from input functions and a result function.
// The result function receives exactly len(inputs) values; arity is the caller's concern.
func New[S, O any](inputs []InputFunc[S], result ResultFunc[O], opts ...Option) *Selector[S, O] {
	if len(inputs) == 0 {
		panic("selector: at least one input function is required")
	}
	if result == nil {
		panic("selector: result function is required")
	}
	cfg := newConfig(opts)
	return &Selector[S, O]{
		inputs: append([]InputFunc[S](nil), inputs...),
		result: result,
		equal:  cfg.equal,
		logger: cfg.logger,
	}
}

// Compute returns the selector output for arg, reusing the cached output when every
// input equals its cached counterpart.
//
// On failure the cache is left as it was and the error wraps ErrDerivation.
func (s *Selector[S, O]) Compute(arg S) (O, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero O
	values := make([]any, len(s.inputs))
	for i, in := range s.inputs {
		v, err := in(arg)
		if err != nil {
			return zero, fmt.Errorf("%w: input %d: %w", ErrDerivation, i, err)
		}
		values[i] = v
	}

	if s.populated && s.sameInputs(values) {
		s.hits.Add(1)
		return s.lastOut, nil
	}

	s.misses.Add(1)
	s.recomputations.Add(1)
	out, err := s.result(values)
	if err != nil {
		return zero, fmt.Errorf("%w: result: %w", ErrDerivation, err)
	}
	s.lastIn = values
	s.lastOut = out
	s.populated = true
	s.logger.Debug("selector recomputed",
		zap.Int("inputs", len(values)),
		zap.Uint64("recomputations", s.recomputations.Load()),
	)
	return out, nil
}

// MustCompute is the panic-on-failure variant of Compute.
func (s *Selector[S, O]) MustCompute(arg S) O {
	out, err := s.Compute(arg)
	if err != nil {
		panic(err)
	}
	return out
}

func (s *Selector[S, O]) sameInputs(values []any) bool {
	if len(values) != len(s.lastIn) {
		return false
	}
	for i, v := range values {
		if !s.equal(s.lastIn[i], v) {
			return false
		}
	}
	return true
}

// Recomputations returns how many times the result function has been invoked.
func (s *Selector[S, O]) Recomputations() uint64 {
	return s.recomputations.Load()
}

// ResetRecomputations sets the recomputation counter back to zero.
func (s *Selector[S, O]) ResetRecomputations() {
	s.recomputations.Store(0)
}

// Stats returns a snapshot of hit/miss counts.
func (s *Selector[S, O]) Stats() Stats {
	return Stats{Hits: s.hits.Load(), Misses: s.misses.Load()}
}

// ResetStats sets hit/miss counts back to zero.
func (s *Selector[S, O]) ResetStats() {
	s.hits.Store(0)
	s.misses.Store(0)
}

// ClearCache empties the slot; the next call is a miss.
func (s *Selector[S, O]) ClearCache() {
	s.mu.Lock()
	defer s.mu.Unlock()
	var zero O
	s.populated = false
	s.lastIn = nil
	s.lastOut = zero
}

// ResultFunc returns the unmemoized result function.
func (s *Selector[S, O]) ResultFunc() ResultFunc[O] {
	return s.result
}
