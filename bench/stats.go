package bench

import (
	"math"

	"golang.org/x/perf/benchmath"
)

const confidence = 0.95

// sampleStats summarizes per-op durations in nanoseconds.
type sampleStats struct {
	mean float64
	// moe is the half-width of the 95% confidence interval of the mean.
	moe float64
	// rme is moe relative to the mean, in percent.
	rme float64
}

func summarize(samples []float64) sampleStats {
	if len(samples) == 0 {
		return sampleStats{}
	}
	// NewSample sorts in place; callers keep samples in run order.
	values := append([]float64(nil), samples...)
	sum := benchmath.AssumeNormal.Summary(benchmath.NewSample(values, &benchmath.DefaultThresholds), confidence)

	st := sampleStats{mean: sum.Center}
	if len(samples) < 2 || math.IsNaN(sum.Lo) || math.IsNaN(sum.Hi) {
		return st
	}
	st.moe = (sum.Hi - sum.Lo) / 2
	if st.mean > 0 {
		st.rme = st.moe / st.mean * 100
	}
	return st
}
