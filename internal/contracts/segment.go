package contracts

import "github.com/wonny/churnlens/internal/dataset"

// Segment is one (Subscription Type, Tenure) group
type Segment struct {
	SubscriptionCode int                `json:"subscription_code"`
	Subscription     string             `json:"subscription"`
	Tenure           float64            `json:"tenure"`
	Count            int                `json:"count"`
	Means            map[string]float64 `json:"means"`
}

// Frequency is a value count
type Frequency struct {
	Code  int    `json:"code"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Segmentation is the customer segmentation result.
// SubscriptionCounts is counted over rows, not derived from Segments.
type Segmentation struct {
	Columns            []string    `json:"columns"`
	Segments           []Segment   `json:"segments"`
	SubscriptionCounts []Frequency `json:"subscription_counts"`
	RowsUsed           int         `json:"rows_used"`
	RowsDropped        int         `json:"rows_dropped"`

	// Set when Subscription Type or Tenure left no usable row.
	Insufficient *dataset.InsufficientDataError `json:"insufficient,omitempty"`
}

// Empty reports an explicit empty-segmentation result
func (s *Segmentation) Empty() bool {
	return s.Insufficient != nil
}

// Find returns the segment for a subscription label and tenure
func (s *Segmentation) Find(subscription string, tenure float64) (*Segment, bool) {
	for i := range s.Segments {
		if s.Segments[i].Subscription == subscription && s.Segments[i].Tenure == tenure {
			return &s.Segments[i], true
		}
	}
	return nil, false
}

// SubscriptionChart is the "Subscription Type Distribution" bar data
func (s *Segmentation) SubscriptionChart() ChartSeries {
	c := ChartSeries{Name: "Subscription Type Distribution", XAxis: "Subscription Type", YAxis: "Count"}
	for _, f := range s.SubscriptionCounts {
		c.Points = append(c.Points, ChartPoint{Label: f.Label, Value: float64(f.Count)})
	}
	return c
}
