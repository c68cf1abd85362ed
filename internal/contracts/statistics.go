package contracts

// Statistic keys as displayed on the dashboard
const (
	StatAverageAge          = "Average Age"
	StatAverageTenure       = "Average Tenure"
	StatTotalSpend          = "Total Spend"
	StatAverageSupportCalls = "Average Support Calls"
	StatChurnRate           = "Churn Rate (%)"
	StatPaymentDelayStdDev  = "Payment Delay Std Dev"
)

// Statistics is the customer statistics summary.
// Mean of an empty column is NaN, sum of an empty column is 0.
type Statistics struct {
	AverageAge          float64 `json:"average_age"`
	AverageTenure       float64 `json:"average_tenure"`
	TotalSpend          float64 `json:"total_spend"`
	AverageSupportCalls float64 `json:"average_support_calls"`
	ChurnRate           float64 `json:"churn_rate"` // percent, 0~100
	PaymentDelayStdDev  float64 `json:"payment_delay_std_dev"`
}

// Stat is one labelled statistic
type Stat struct {
	Key   string  `json:"key"`
	Value float64 `json:"value"`
}

// Entries returns the statistics in display order
func (s Statistics) Entries() []Stat {
	return []Stat{
		{StatAverageAge, s.AverageAge},
		{StatAverageTenure, s.AverageTenure},
		{StatTotalSpend, s.TotalSpend},
		{StatAverageSupportCalls, s.AverageSupportCalls},
		{StatChurnRate, s.ChurnRate},
		{StatPaymentDelayStdDev, s.PaymentDelayStdDev},
	}
}

// Map returns the statistics keyed by display name
func (s Statistics) Map() map[string]float64 {
	entries := s.Entries()
	out := make(map[string]float64, len(entries))
	for _, e := range entries {
		out[e.Key] = e.Value
	}
	return out
}
