package bench

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// Result is the outcome of timing one case.
type Result struct {
	Name string
	// Samples are per-op durations in nanoseconds.
	Samples   []float64
	NsPerOp   float64
	OpsPerSec float64
	// RME is the relative margin of error of the mean, in percent.
	RME float64
	Err error

	moe float64
}

func (r Result) String() string {
	if r.Err != nil {
		return fmt.Sprintf("%s: %v", r.Name, r.Err)
	}
	return fmt.Sprintf("%s x %s ops/sec ±%.2f%% (%d runs sampled)",
		r.Name, formatOps(r.OpsPerSec), r.RME, len(r.Samples))
}

func formatOps(ops float64) string {
	if ops < 100 {
		return fmt.Sprintf("%.2f", ops)
	}
	return humanize.Comma(int64(math.Round(ops)))
}

// Report collects the results of a suite run.
type Report struct {
	Results []Result
	Span    TimeSpan
}

// Fastest returns the names of the cases whose mean is indistinguishable from the
// fastest mean within the margins of error. Failed cases are ignored.
func (r Report) Fastest() []string {
	best := -1
	for i, res := range r.Results {
		if res.Err != nil || res.NsPerOp <= 0 {
			continue
		}
		if best < 0 || res.NsPerOp < r.Results[best].NsPerOp {
			best = i
		}
	}
	if best < 0 {
		return nil
	}
	ceiling := r.Results[best].NsPerOp + r.Results[best].moe
	var names []string
	for _, res := range r.Results {
		if res.Err != nil || res.NsPerOp <= 0 {
			continue
		}
		if res.NsPerOp-res.moe <= ceiling {
			names = append(names, strings.TrimSpace(res.Name))
		}
	}
	return names
}

// WriteTo prints one line per case followed by the fastest cases and the run span.
func (r Report) WriteTo(w io.Writer) (int64, error) {
	var sb strings.Builder
	for _, res := range r.Results {
		sb.WriteString(res.String())
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "Fastest is %s\n", strings.Join(r.Fastest(), ","))
	fmt.Fprintf(&sb, "Ran %d cases from %s in %s\n",
		len(r.Results),
		r.Span.Start().Format(time.RFC3339),
		r.Span.Duration().Round(time.Millisecond),
	)
	n, err := io.WriteString(w, sb.String())
	return int64(n), err
}
