package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/on-the-ground/selectorbench/bench"
	"github.com/on-the-ground/selectorbench/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	opts, err := parseFlags([]string{
		"-sizes", "5, 20", "-seed", "s", "-parallel", "2",
		"-sample-time", "2ms", "-min-samples", "7", "-max-time", "3s",
	})
	require.NoError(t, err)
	assert.Equal(t, 2*time.Millisecond, opts.config.SampleTime)
	assert.Equal(t, 7, opts.config.MinSamples)
	assert.Equal(t, []int{5, 20}, opts.sizes)
	assert.Equal(t, "s", opts.seed)
	assert.Equal(t, 2, opts.parallel)
	assert.Equal(t, 3*time.Second, opts.config.MaxTime)

	opts, err = parseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, []int{10, 100, 1000}, opts.sizes)

	_, err = parseFlags([]string{"-sizes", "10,x"})
	assert.ErrorContains(t, err, `invalid size "x"`)
}

func TestRun(t *testing.T) {
	opts := options{
		seed:     "run",
		sizes:    []int{3, 10},
		parallel: 2,
		config: bench.Config{
			SampleTime: time.Millisecond,
			MinSamples: 2,
			MaxTime:    2 * time.Millisecond,
		},
	}
	var out bytes.Buffer
	require.NoError(t, run(context.Background(), opts, logging.NewTestLogger(), &out))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	// two self-check lines, 3 creation cases, 4 cases per size, fastest, span
	require.Len(t, lines, 2+3+4*2+2)
	assert.True(t, strings.HasSuffix(lines[0], " true"))
	assert.True(t, strings.HasSuffix(lines[1], " true"))
	assert.Contains(t, out.String(), "reselect 2")
	assert.Contains(t, out.String(), "10*10")
	assert.Contains(t, out.String(), "Fastest is ")
}

func TestRun_InvalidSize(t *testing.T) {
	err := run(context.Background(), options{seed: "x", sizes: []int{0}}, logging.NewTestLogger(), &bytes.Buffer{})
	assert.Error(t, err)
}

func TestCaseName(t *testing.T) {
	assert.Equal(t, "reselect"+strings.Repeat(" ", 18)+"10*10", caseName("reselect", "10*10"))
	assert.Len(t, caseName("create selector", ""), 31)
}
