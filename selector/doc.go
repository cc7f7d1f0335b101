// Package selector provides a single-slot memoizing selector for derived values.
//
// A selector is built from one or more input functions and one result function.
// Every call evaluates the input functions against the argument and compares each
// value with the one seen on the previous call:
//
//	→ all inputs equal: the cached output is returned (hit)
//	→ any input differs: the result function runs again (miss)
//
// The cache holds exactly one entry. It is not a keyed cache: switching back to an
// argument seen two calls ago is a miss.
//
// Equality defaults to Identical, which compares maps, slices, pointers and
// functions by identity and everything else with ==. Use WithEqual to replace it.
//
// Features:
//   - Create1 to Create4 (and the fallible Create1E to Create4E): typed constructors.
//   - New: untyped constructor over any number of inputs.
//   - Recomputations and Stats for hit/miss accounting.
//   - Safe for concurrent callers; a whole invocation is one critical section.
//
// WARNING: Do not memoize impure result functions. A hit skips the result function
// entirely, so anything it depends on besides its inputs goes unnoticed.
package selector
