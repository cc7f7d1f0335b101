package synth_test

import (
	"testing"

	"github.com/on-the-ground/selectorbench/synth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestState_Shape(t *testing.T) {
	g := synth.NewGenerator("shape")
	for _, size := range []int{1, 10, 100} {
		state, err := g.State(size)
		require.NoError(t, err)

		assert.Len(t, state, size)
		require.Contains(t, state, synth.Category)
		for _, v := range state {
			inner, ok := v.(synth.State)
			require.True(t, ok)
			assert.GreaterOrEqual(t, len(inner), size)
		}

		raw, ok := state[synth.ContentMode]
		if !ok {
			continue // collided with category
		}
		mode := raw.(synth.State)
		modeMap, ok := mode[synth.ModeMap].(synth.State)
		require.True(t, ok)
		current, ok := modeMap[synth.CurrentMode].(string)
		require.True(t, ok)
		assert.Equal(t, size, mode[current])
	}
}

func TestState_Reproducible(t *testing.T) {
	a, err := synth.NewGenerator("seed").State(10)
	require.NoError(t, err)
	b, err := synth.NewGenerator("seed").State(10)
	require.NoError(t, err)
	c, err := synth.NewGenerator("other").State(10)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestState_InvalidSize(t *testing.T) {
	_, err := synth.NewGenerator("x").State(0)
	assert.ErrorIs(t, err, synth.ErrInvalidSize)
}

func TestWords(t *testing.T) {
	g := synth.NewGenerator("words")

	email, err := g.Email()
	require.NoError(t, err)
	assert.Contains(t, email, "@")

	street, err := g.Street()
	require.NoError(t, err)
	assert.Contains(t, street, "Apt.")

	n1, err := g.Name()
	require.NoError(t, err)
	n2, err := g.Name()
	require.NoError(t, err)
	assert.NotEqual(t, n1, n2)
}
