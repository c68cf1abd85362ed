package contracts

// Projection keys
const (
	ProjectionTotalSpend   = "Projected Total Spend Next Year"
	ProjectionChurn        = "Projected Churn Next Year"
	ProjectionSupportCalls = "Projected Support Calls Increase"
	ProjectionPaymentDelay = "Projected Payment Delay Increase"
	ProjectionUpgrades     = "Projected Subscription Upgrades"
	ProjectionTenure       = "Projected Tenure Growth"
)

// Projection is one heuristic extrapolation. Err is set instead of Value
// when the input column is missing or has no valid value.
type Projection struct {
	Key     string  `json:"key"`
	Column  string  `json:"column"`
	Formula string  `json:"formula"`
	Value   float64 `json:"value"`
	Err     error   `json:"-"`
	Error   string  `json:"error,omitempty"`
}

// OK reports whether the projection computed
func (p Projection) OK() bool {
	return p.Err == nil
}

// Projections is the ordered batch of projections
type Projections []Projection

// Get returns a projection by key
func (ps Projections) Get(key string) (Projection, bool) {
	for _, p := range ps {
		if p.Key == key {
			return p, true
		}
	}
	return Projection{}, false
}

// Values returns the computed projections keyed by name
func (ps Projections) Values() map[string]float64 {
	out := make(map[string]float64, len(ps))
	for _, p := range ps {
		if p.OK() {
			out[p.Key] = p.Value
		}
	}
	return out
}

// Errors returns the failed projections keyed by name
func (ps Projections) Errors() map[string]error {
	out := make(map[string]error)
	for _, p := range ps {
		if !p.OK() {
			out[p.Key] = p.Err
		}
	}
	return out
}
