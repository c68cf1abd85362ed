// Package analytics is the churn analytics engine: pure functions over an
// immutable dataset.Table returning plain contracts. Nothing here renders,
// logs or mutates the table.
package analytics

import (
	"math/rand/v2"
	"strings"

	"github.com/wonny/churnlens/internal/contracts"
	"github.com/wonny/churnlens/internal/dataset"
)

// Sample returns min(n, rows) rows drawn uniformly without replacement.
// n <= 0 yields an empty table. A nil rng uses the global source.
func Sample(t *dataset.Table, n int, rng *rand.Rand) *dataset.Table {
	k := min(max(n, 0), t.Len())

	var perm []int
	if rng != nil {
		perm = rng.Perm(t.Len())
	} else {
		perm = rand.Perm(t.Len())
	}
	return t.Subset(perm[:k])
}

// Profile describes every column: inferred kind, missing count and
// describe()-style summary statistics.
func Profile(t *dataset.Table) contracts.Profile {
	columns := t.Columns()
	p := contracts.Profile{
		Rows:        t.Len(),
		ColumnCount: len(columns),
		Columns:     make([]contracts.ColumnProfile, 0, len(columns)),
	}

	for _, name := range columns {
		raw, _ := t.Column(name)
		p.Columns = append(p.Columns, profileColumn(name, raw))
	}
	return p
}

func profileColumn(name string, raw []string) contracts.ColumnProfile {
	cp := contracts.ColumnProfile{Name: name}
	for _, cell := range raw {
		if dataset.IsMissing(cell) {
			cp.Missing++
		}
	}
	cp.NonNull = len(raw) - cp.Missing

	kind := dataset.InferKind(raw)
	cp.Kind = string(kind)

	if kind == dataset.KindNumeric {
		values := make([]float64, 0, cp.NonNull)
		for _, cell := range raw {
			if v, ok := dataset.ParseNumber(cell); ok {
				values = append(values, v)
			}
		}
		ns := numericSummary(values)
		cp.Numeric = &ns
		return cp
	}

	cp.Categorical = categoricalSummary(raw)
	return cp
}

// categoricalSummary: ties for top go to the first-seen value
func categoricalSummary(raw []string) *contracts.CategoricalSummary {
	counts := make(map[string]int)
	var order []string
	cs := &contracts.CategoricalSummary{}

	for _, cell := range raw {
		if dataset.IsMissing(cell) {
			continue
		}
		key := strings.TrimSpace(cell)
		if _, ok := counts[key]; !ok {
			order = append(order, key)
		}
		counts[key]++
		cs.Count++
	}

	cs.Unique = len(order)
	for _, key := range order {
		if counts[key] > cs.Freq {
			cs.Top, cs.Freq = key, counts[key]
		}
	}
	return cs
}
