package scenario_test

import (
	"testing"

	"github.com/on-the-ground/selectorbench/scenario"
	"github.com/on-the-ground/selectorbench/selector"
	"github.com/on-the-ground/selectorbench/synth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withMode(current string) synth.State {
	return synth.State{
		synth.Category: "X",
		synth.ContentMode: synth.State{
			synth.ModeMap: synth.State{synth.CurrentMode: current},
			"street":      7,
		},
	}
}

func TestPure(t *testing.T) {
	cases := []struct {
		name  string
		state synth.State
		want  any
	}{
		{"no content mode", synth.State{synth.Category: "X"}, "X"},
		{"nil content mode", synth.State{synth.Category: "X", synth.ContentMode: nil}, "X"},
		{"current mode set", withMode("street"), 7},
		{"current mode empty", withMode(""), "X"},
		{"current mode unknown", withMode("elsewhere"), nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := scenario.Pure(tc.state)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestPure_FalsyFields(t *testing.T) {
	for _, mode := range []any{"", 0, 0.0, false, synth.State(nil)} {
		got, err := scenario.Pure(synth.State{synth.Category: "X", synth.ContentMode: mode})
		require.NoError(t, err, "contentMode %#v", mode)
		assert.Equal(t, "X", got)
	}

	for _, current := range []any{nil, "", 0, false} {
		state := withMode("street")
		state[synth.ContentMode].(synth.State)[synth.ModeMap] = synth.State{synth.CurrentMode: current}
		got, err := scenario.Pure(state)
		require.NoError(t, err)
		assert.Equal(t, "X", got, "currentMode %#v", current)
	}
}

func TestPure_NonStringCurrentMode(t *testing.T) {
	state := synth.State{
		synth.Category: "X",
		synth.ContentMode: synth.State{
			synth.ModeMap: synth.State{synth.CurrentMode: 5},
			"5":           "five",
		},
	}
	got, err := scenario.Pure(state)
	require.NoError(t, err)
	assert.Equal(t, "five", got)
}

func TestPure_Malformed(t *testing.T) {
	_, err := scenario.Pure(synth.State{synth.ContentMode: "not a map"})
	assert.ErrorIs(t, err, scenario.ErrMalformedState)

	_, err = scenario.Pure(synth.State{synth.ContentMode: synth.State{}})
	assert.ErrorIs(t, err, scenario.ErrMalformedState)
}

func TestFieldSelector_MalformedIsNotCached(t *testing.T) {
	sel := scenario.NewFieldSelector()
	bad := synth.State{synth.Category: "X", synth.ContentMode: synth.State{}}

	_, err := sel.Compute(bad)
	assert.ErrorIs(t, err, selector.ErrDerivation)
	assert.ErrorIs(t, err, scenario.ErrMalformedState)
	_, err = sel.Compute(bad)
	assert.ErrorIs(t, err, scenario.ErrMalformedState)
	assert.Equal(t, uint64(2), sel.Recomputations())
}

func TestSelectors_HitAndMiss(t *testing.T) {
	identity := scenario.NewIdentitySelector()
	fields := scenario.NewFieldSelector()

	s1 := synth.State{synth.Category: "X", "noise": 1}
	s2 := synth.State{synth.Category: "X", "noise": 2}
	for _, s := range []synth.State{s1, s1, s2} {
		require.NoError(t, scenario.Verify(s, identity, fields))
	}

	assert.Equal(t, selector.Stats{Hits: 1, Misses: 2}, identity.Stats())
	assert.Equal(t, selector.Stats{Hits: 2, Misses: 1}, fields.Stats())
}

func TestVerify_GeneratedStates(t *testing.T) {
	g := synth.NewGenerator("verify")
	identity := scenario.NewIdentitySelector()
	fields := scenario.NewFieldSelector()
	for _, size := range []int{10, 100} {
		state, err := g.State(size)
		require.NoError(t, err)
		assert.NoError(t, scenario.Verify(state, identity, fields))
	}
}

func TestVerify_ReportsMismatch(t *testing.T) {
	stale := scenario.NewFieldSelector(selector.WithEqual(func(a, b any) bool { return true }))
	require.NoError(t, scenario.Verify(synth.State{synth.Category: "X"}, stale))

	err := scenario.Verify(synth.State{synth.Category: "Y"}, stale)
	assert.ErrorContains(t, err, "got X, want Y")
}
