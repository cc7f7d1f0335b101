// Package synth generates the nested, randomized state objects the selectors are
// benchmarked against.
//
// A state of size n has n outer keys, each mapping to an object of n inner keys.
// One outer key is "category"; another, when the random draw does not collide with
// it, is "contentMode". Inside contentMode the inner key "map" holds
// {"currentMode": <street>} and contentMode[<street>] holds n.
package synth

import (
	"encoding/binary"
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/cespare/xxhash/v2"
)

const (
	Category    = "category"
	ContentMode = "contentMode"
	ModeMap     = "map"
	CurrentMode = "currentMode"
)

// State is a nested mapping of mappings.
type State = map[string]any

var ErrInvalidSize = fmt.Errorf("state size must be positive")

// Generator produces reproducible states from a seed.
// It is not safe for concurrent use.
type Generator struct {
	rng     *rand.Rand
	entropy io.Reader
}

// NewGenerator derives a ChaCha8 stream from the seed; equal seeds produce equal states.
func NewGenerator(seed string) *Generator {
	var key [32]byte
	for i := 0; i < len(key)/8; i++ {
		binary.LittleEndian.PutUint64(key[i*8:], xxhash.Sum64String(fmt.Sprintf("%s/%d", seed, i)))
	}
	src := rand.NewChaCha8(key)
	return &Generator{
		rng:     rand.New(src),
		entropy: src,
	}
}

// State builds a state with size outer keys and size inner keys per outer key.
func (g *Generator) State(size int) (State, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	state := make(State, size)
	categoryIdx := g.rng.IntN(size)
	contentModeIdx := g.rng.IntN(size)

	for i := 0; i < size; i++ {
		outerKey, err := g.outerKey(i, categoryIdx, contentModeIdx)
		if err != nil {
			return nil, err
		}
		inner := make(State, size)
		for j := 0; j < size; j++ {
			innerKey := ModeMap
			if i != contentModeIdx || j != contentModeIdx {
				if innerKey, err = g.Email(); err != nil {
					return nil, err
				}
			}
			street, err := g.Street()
			if err != nil {
				return nil, err
			}
			inner[innerKey] = State{CurrentMode: street}
			if innerKey == ModeMap {
				inner[street] = size
			}
		}
		state[outerKey] = inner
	}
	return state, nil
}

func (g *Generator) outerKey(i, categoryIdx, contentModeIdx int) (string, error) {
	switch i {
	case categoryIdx:
		return Category, nil
	case contentModeIdx:
		return ContentMode, nil
	default:
		return g.Name()
	}
}
