// Package scenario holds the category derivation benchmarked by selectorbench, in a
// plain form and two memoized forms.
package scenario

import (
	"fmt"
	"math"

	"github.com/on-the-ground/selectorbench/selector"
	"github.com/on-the-ground/selectorbench/synth"
	"go.uber.org/multierr"
)

// ErrMalformedState means a field had a shape the derivation cannot read.
var ErrMalformedState = fmt.Errorf("malformed state")

// Selector is a memoized category selector.
type Selector = *selector.Selector[synth.State, any]

// Pure derives the category without memoization.
func Pure(state synth.State) (any, error) {
	return resolve(state[synth.Category], state[synth.ContentMode])
}

// NewIdentitySelector memoizes on the state object itself, so it only hits when
// called twice with the same state.
func NewIdentitySelector(opts ...selector.Option) Selector {
	return selector.Create1E(
		selector.IdentityE[synth.State](),
		Pure,
		opts...,
	)
}

// NewFieldSelector memoizes on the category and contentMode fields.
func NewFieldSelector(opts ...selector.Option) Selector {
	return selector.Create2E(
		field(synth.Category),
		field(synth.ContentMode),
		resolve,
		opts...,
	)
}

func field(key string) func(synth.State) (any, error) {
	return func(s synth.State) (any, error) {
		return s[key], nil
	}
}

// resolve returns contentMode[contentMode.map.currentMode] when a current mode is
// set, and the category otherwise. Unset means falsy: nil, false, zero or "".
func resolve(category, contentMode any) (any, error) {
	if !truthy(contentMode) {
		return category, nil
	}
	mode, err := typedValueOf[synth.State](synth.ContentMode, contentMode)
	if err != nil {
		return nil, err
	}
	modeMap, err := typedValueOf[synth.State](synth.ModeMap, mode[synth.ModeMap])
	if err != nil {
		return nil, err
	}
	current := modeMap[synth.CurrentMode]
	if !truthy(current) {
		return category, nil
	}
	key, ok := current.(string)
	if !ok {
		key = fmt.Sprint(current)
	}
	return mode[key], nil
}

// truthy reports whether v counts as set. Maps, even empty ones, are set; nil
// maps are not.
func truthy(v any) bool {
	switch v := v.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != ""
	case int:
		return v != 0
	case int64:
		return v != 0
	case float64:
		return v != 0 && !math.IsNaN(v)
	case synth.State:
		return v != nil
	default:
		return true
	}
}

// typedValueOf asserts a field value to T, naming the field on failure.
func typedValueOf[T any](name string, raw any) (T, error) {
	val, ok := raw.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: %s: unexpected type: %T", ErrMalformedState, name, raw)
	}
	return val, nil
}

// Verify checks every selector against Pure for the given state.
// Results are compared with selector.Identical.
func Verify(state synth.State, selectors ...Selector) error {
	want, err := Pure(state)
	if err != nil {
		return err
	}
	var errs error
	for i, sel := range selectors {
		got, err := sel.Compute(state)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("selector %d: %w", i, err))
			continue
		}
		if !selector.Identical(want, got) {
			errs = multierr.Append(errs, fmt.Errorf("selector %d: got %v, want %v", i, got, want))
		}
	}
	return errs
}
