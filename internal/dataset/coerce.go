package dataset

import (
	"math"
	"strconv"
	"strings"
)

// Kind is the inferred type of a column.
type Kind string

const (
	KindNumeric     Kind = "numeric"
	KindCategorical Kind = "categorical"
)

var missingMarkers = map[string]bool{
	"":      true,
	"na":    true,
	"n/a":   true,
	"nan":   true,
	"null":  true,
	"<nil>": true,
}

// IsMissing reports whether a raw cell is a missing-value marker.
func IsMissing(raw string) bool {
	return missingMarkers[strings.ToLower(strings.TrimSpace(raw))]
}

// ParseNumber coerces a raw cell to a finite float64. Missing, infinite or
// non-numeric cells return ok=false.
func ParseNumber(raw string) (float64, bool) {
	if IsMissing(raw) {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// Series is a numeric view of one column. Valid[i] is false where the
// source cell was missing or not coercible; Values[i] is then 0.
type Series struct {
	Name   string
	Values []float64
	Valid  []bool
}

// Len returns the row count (valid or not).
func (s Series) Len() int { return len(s.Values) }

// ValidValues returns the coercible values in row order.
func (s Series) ValidValues() []float64 {
	out := make([]float64, 0, len(s.Values))
	for i, v := range s.Values {
		if s.Valid[i] {
			out = append(out, v)
		}
	}
	return out
}

// ValidCount returns the number of coercible cells.
func (s Series) ValidCount() int {
	n := 0
	for _, ok := range s.Valid {
		if ok {
			n++
		}
	}
	return n
}

// Codes is a categorical column mapped to integer codes. Labels[code] is
// the source value that was assigned that code.
type Codes struct {
	Series
	Labels []string
}

// Label returns the source value for a code.
func (c Codes) Label(code int) string {
	if code < 0 || code >= len(c.Labels) {
		return ""
	}
	return c.Labels[code]
}

// ToNumeric coerces a column to numbers; unparseable cells become invalid.
func ToNumeric(t *Table, column string) (Series, error) {
	raw, err := t.Column(column)
	if err != nil {
		return Series{}, err
	}
	s := Series{Name: column, Values: make([]float64, len(raw)), Valid: make([]bool, len(raw))}
	for i, cell := range raw {
		s.Values[i], s.Valid[i] = ParseNumber(cell)
	}
	return s, nil
}

// ToCategorical assigns codes 0..k-1 in first-seen order of the trimmed
// values. Missing cells are invalid.
func ToCategorical(t *Table, column string) (Codes, error) {
	raw, err := t.Column(column)
	if err != nil {
		return Codes{}, err
	}
	return encode(column, raw, -1), nil
}

// ToBinary coerces a column to {0,1}. When any present cell is numeric the
// column is read as numeric: 0 and 1 are kept, other numbers and text are
// invalid. A column of booleans (True/False) maps true → 1, false → 0.
// Otherwise it is a two-valued categorical: first-seen value → 0,
// second → 1, further distinct values invalid.
func ToBinary(t *Table, column string) (Codes, error) {
	raw, err := t.Column(column)
	if err != nil {
		return Codes{}, err
	}

	if hasNumeric(raw) {
		c := Codes{
			Series: Series{Name: column, Values: make([]float64, len(raw)), Valid: make([]bool, len(raw))},
			Labels: []string{"0", "1"},
		}
		for i, cell := range raw {
			v, ok := ParseNumber(cell)
			if ok && (v == 0 || v == 1) {
				c.Values[i], c.Valid[i] = v, true
			}
		}
		return c, nil
	}

	if isBoolean(raw) {
		c := Codes{
			Series: Series{Name: column, Values: make([]float64, len(raw)), Valid: make([]bool, len(raw))},
			Labels: []string{"False", "True"},
		}
		for i, cell := range raw {
			if IsMissing(cell) {
				continue
			}
			b, _ := strconv.ParseBool(strings.TrimSpace(cell))
			if b {
				c.Values[i] = 1
			}
			c.Valid[i] = true
		}
		return c, nil
	}

	return encode(column, raw, 2), nil
}

// isBoolean: at least one present cell, and every present cell parses as a bool
func isBoolean(raw []string) bool {
	present := 0
	for _, cell := range raw {
		if IsMissing(cell) {
			continue
		}
		if _, err := strconv.ParseBool(strings.TrimSpace(cell)); err != nil {
			return false
		}
		present++
	}
	return present > 0
}

// encode maps values to first-seen codes, keeping at most limit distinct
// values (limit < 0 means unbounded).
func encode(column string, raw []string, limit int) Codes {
	c := Codes{
		Series: Series{Name: column, Values: make([]float64, len(raw)), Valid: make([]bool, len(raw))},
	}
	seen := make(map[string]int)
	for i, cell := range raw {
		if IsMissing(cell) {
			continue
		}
		key := strings.TrimSpace(cell)
		code, ok := seen[key]
		if !ok {
			if limit >= 0 && len(c.Labels) >= limit {
				continue
			}
			code = len(c.Labels)
			seen[key] = code
			c.Labels = append(c.Labels, key)
		}
		c.Values[i], c.Valid[i] = float64(code), true
	}
	return c
}

func hasNumeric(raw []string) bool {
	for _, cell := range raw {
		if _, ok := ParseNumber(cell); ok {
			return true
		}
	}
	return false
}

// InferKind returns KindNumeric when every present cell parses as a number
// (including an all-missing column), KindCategorical otherwise.
func InferKind(raw []string) Kind {
	for _, cell := range raw {
		if IsMissing(cell) {
			continue
		}
		if _, ok := ParseNumber(cell); !ok {
			return KindCategorical
		}
	}
	return KindNumeric
}

// NumericColumns lists the columns whose inferred kind is numeric, in
// header order.
func NumericColumns(t *Table) []string {
	var out []string
	for _, c := range t.Columns() {
		raw, _ := t.Column(c)
		if InferKind(raw) == KindNumeric {
			out = append(out, c)
		}
	}
	return out
}
