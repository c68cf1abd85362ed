package analytics

import (
	"math"

	"github.com/wonny/churnlens/internal/dataset"
)

// numericFrame holds the numeric series averaged by a grouped aggregation,
// in header order. Coerced series override the raw numeric view of their
// column.
type numericFrame struct {
	columns []string
	series  map[string]dataset.Series
}

// buildFrame selects every column inferred numeric over the whole table
// plus the coerced columns, keeping header order.
func buildFrame(t *dataset.Table, coerced map[string]dataset.Series) numericFrame {
	numeric := make(map[string]bool)
	for _, c := range dataset.NumericColumns(t) {
		numeric[c] = true
	}

	f := numericFrame{series: make(map[string]dataset.Series)}
	for _, c := range t.Columns() {
		if _, dup := f.series[c]; dup {
			continue
		}
		if s, ok := coerced[c]; ok {
			f.columns = append(f.columns, c)
			f.series[c] = s
			continue
		}
		if numeric[c] {
			s, _ := dataset.ToNumeric(t, c)
			f.columns = append(f.columns, c)
			f.series[c] = s
		}
	}
	return f
}

// means averages each column over the given rows, skipping invalid cells.
// A column with no valid cell in the group is NaN.
func (f numericFrame) means(rows []int) map[string]float64 {
	out := make(map[string]float64, len(f.columns))
	for _, c := range f.columns {
		s := f.series[c]
		var total float64
		n := 0
		for _, r := range rows {
			if s.Valid[r] {
				total += s.Values[r]
				n++
			}
		}
		if n == 0 {
			out[c] = math.NaN()
			continue
		}
		out[c] = total / float64(n)
	}
	return out
}

// validAt collects a series' valid values over the given rows
func validAt(s dataset.Series, rows []int) []float64 {
	out := make([]float64, 0, len(rows))
	for _, r := range rows {
		if s.Valid[r] {
			out = append(out, s.Values[r])
		}
	}
	return out
}

// allValid returns the row indices valid in every series
func allValid(n int, series ...dataset.Series) []int {
	var rows []int
	for i := 0; i < n; i++ {
		ok := true
		for _, s := range series {
			if !s.Valid[i] {
				ok = false
				break
			}
		}
		if ok {
			rows = append(rows, i)
		}
	}
	return rows
}
