package analytics

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/wonny/churnlens/internal/contracts"
)

// mean returns NaN for an empty slice
func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	return stat.Mean(xs, nil)
}

// sampleStdDev is the n-1 standard deviation; NaN below two values
func sampleStdDev(xs []float64) float64 {
	if len(xs) < 2 {
		return math.NaN()
	}
	return stat.StdDev(xs, nil)
}

// sum returns 0 for an empty slice
func sum(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	return floats.Sum(xs)
}

// quantile uses linear interpolation between closest ranks (describe
// semantics: h = (n-1)p). sorted must be ascending and non-empty.
func quantile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 1 {
		return sorted[0]
	}
	h := float64(n-1) * p
	lo := int(math.Floor(h))
	if lo >= n-1 {
		return sorted[n-1]
	}
	return sorted[lo] + (h-float64(lo))*(sorted[lo+1]-sorted[lo])
}

func sortedCopy(xs []float64) []float64 {
	s := append([]float64(nil), xs...)
	sort.Float64s(s)
	return s
}

// numericSummary computes count/mean/std/min/quartiles/max. Empty input
// gives count 0 and NaN everywhere else.
func numericSummary(xs []float64) contracts.NumericSummary {
	if len(xs) == 0 {
		nan := math.NaN()
		return contracts.NumericSummary{Mean: nan, Std: nan, Min: nan, Q1: nan, Median: nan, Q3: nan, Max: nan}
	}
	s := sortedCopy(xs)
	return contracts.NumericSummary{
		Count:  len(s),
		Mean:   mean(s),
		Std:    sampleStdDev(s),
		Min:    floats.Min(s),
		Q1:     quantile(s, 0.25),
		Median: quantile(s, 0.5),
		Q3:     quantile(s, 0.75),
		Max:    floats.Max(s),
	}
}

// boxSummary is the five-number summary of a group
func boxSummary(code int, label string, xs []float64) contracts.BoxSummary {
	ns := numericSummary(xs)
	return contracts.BoxSummary{
		Code:   code,
		Label:  label,
		Count:  ns.Count,
		Min:    ns.Min,
		Q1:     ns.Q1,
		Median: ns.Median,
		Q3:     ns.Q3,
		Max:    ns.Max,
	}
}
