package selector_test

import (
	"testing"

	"github.com/on-the-ground/selectorbench/selector"
)

func sumInputs(xs []int) int {
	return xs[0] + xs[1]
}

func BenchmarkPureSum(b *testing.B) {
	xs := []int{1, 2}
	for i := 0; i < b.N; i++ {
		_ = sumInputs(xs)
	}
}

func BenchmarkSelectorSumHit(b *testing.B) {
	sel := selector.Create2(
		func(xs []int) int { return xs[0] },
		func(xs []int) int { return xs[1] },
		func(a, c int) int { return a + c },
	)
	xs := []int{1, 2}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = sel.MustCompute(xs)
	}
}

func BenchmarkSelectorSumMiss(b *testing.B) {
	sel := selector.Create2(
		func(xs []int) int { return xs[0] },
		func(xs []int) int { return xs[1] },
		func(a, c int) int { return a + c },
	)
	inputs := [][]int{{1, 2}, {3, 4}}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = sel.MustCompute(inputs[i%2])
	}
}

func BenchmarkIdentical(b *testing.B) {
	m := map[string]any{"a": 1}
	for i := 0; i < b.N; i++ {
		_ = selector.Identical(m, m)
	}
}
