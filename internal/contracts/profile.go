package contracts

import (
	"fmt"
	"strings"
)

// NumericSummary is describe() output for a numeric column
type NumericSummary struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Std    float64 `json:"std"`
	Min    float64 `json:"min"`
	Q1     float64 `json:"q1"`     // 25%
	Median float64 `json:"median"` // 50%
	Q3     float64 `json:"q3"`     // 75%
	Max    float64 `json:"max"`
}

// CategoricalSummary is describe() output for a categorical column
type CategoricalSummary struct {
	Count  int    `json:"count"`
	Unique int    `json:"unique"`
	Top    string `json:"top"`
	Freq   int    `json:"freq"`
}

// ColumnProfile describes one column of the dataset
type ColumnProfile struct {
	Name        string              `json:"name"`
	Kind        string              `json:"kind"` // numeric, categorical
	NonNull     int                 `json:"non_null"`
	Missing     int                 `json:"missing"`
	Numeric     *NumericSummary     `json:"numeric,omitempty"`
	Categorical *CategoricalSummary `json:"categorical,omitempty"`
}

// Profile is the "About Dataset" view: size, types, missing values, statistics
type Profile struct {
	Rows        int             `json:"rows"`
	ColumnCount int             `json:"column_count"`
	Columns     []ColumnProfile `json:"columns"`
}

// Column looks up a column profile by name
func (p *Profile) Column(name string) (*ColumnProfile, bool) {
	for i := range p.Columns {
		if p.Columns[i].Name == name {
			return &p.Columns[i], true
		}
	}
	return nil, false
}

// MissingValues returns the missing count per column
func (p *Profile) MissingValues() map[string]int {
	out := make(map[string]int, len(p.Columns))
	for _, c := range p.Columns {
		out[c.Name] = c.Missing
	}
	return out
}

// Info renders an info()-style summary block
func (p *Profile) Info() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "RangeIndex: %d entries\n", p.Rows)
	fmt.Fprintf(&sb, "Data columns (total %d columns):\n", p.ColumnCount)
	fmt.Fprintf(&sb, " %-3s %-20s %-16s %s\n", "#", "Column", "Non-Null Count", "Kind")
	for i, c := range p.Columns {
		fmt.Fprintf(&sb, " %-3d %-20s %-16s %s\n", i, c.Name, fmt.Sprintf("%d non-null", c.NonNull), c.Kind)
	}
	return sb.String()
}
