package contracts

import "github.com/wonny/churnlens/internal/dataset"

// ChurnGroup holds per-column means of one churn value
type ChurnGroup struct {
	Code  int                `json:"code"`  // 0 or 1
	Label string             `json:"label"` // source value, e.g. "Yes"
	Count int                `json:"count"`
	Means map[string]float64 `json:"means"`
}

// ChurnBreakdown is the churn-correlated insights table.
// SpendByChurn and DelayByChurn are read off Groups, not separate passes.
type ChurnBreakdown struct {
	Columns           []string     `json:"columns"` // numeric columns averaged, header order
	Groups            []ChurnGroup `json:"groups"`
	SpendByChurn      []GroupMean  `json:"spend_by_churn"`
	DelayByChurn      []GroupMean  `json:"delay_by_churn"`
	SpendDistribution []BoxSummary `json:"spend_distribution"`
	RowsUsed          int          `json:"rows_used"`
	RowsDropped       int          `json:"rows_dropped"`

	// Set when no row survived coercion; all slices are then empty.
	Insufficient *dataset.InsufficientDataError `json:"insufficient,omitempty"`
}

// Empty reports an "insufficient data" result
func (b *ChurnBreakdown) Empty() bool {
	return b.Insufficient != nil
}

// Group returns the group for a churn code
func (b *ChurnBreakdown) Group(code int) (*ChurnGroup, bool) {
	for i := range b.Groups {
		if b.Groups[i].Code == code {
			return &b.Groups[i], true
		}
	}
	return nil, false
}

// DelayChart is the "Churn vs. Payment Delay" bar data
func (b *ChurnBreakdown) DelayChart() ChartSeries {
	return seriesFromMeans("Churn vs. Payment Delay", "Churn", "Average Payment Delay", b.DelayByChurn)
}

// SpendChart is the mean Total Spend per churn group
func (b *ChurnBreakdown) SpendChart() ChartSeries {
	return seriesFromMeans("Churn vs. Total Spend", "Churn", "Average Total Spend", b.SpendByChurn)
}
