package analytics

import (
	"sort"

	"github.com/wonny/churnlens/internal/contracts"
	"github.com/wonny/churnlens/internal/dataset"
)

type segmentKey struct {
	code   int
	tenure float64
}

// Segment groups customers by (Subscription Type, Tenure) and averages
// every numeric column per group. Subscription Type is coded in first-seen
// order; rows with unparseable Tenure or missing Subscription Type are
// dropped. Degenerate inputs return Insufficient with the cause.
func Segment(t *dataset.Table) (*contracts.Segmentation, error) {
	if err := t.Require(dataset.ColSubscriptionType, dataset.ColTenure); err != nil {
		return nil, err
	}

	sub, _ := dataset.ToCategorical(t, dataset.ColSubscriptionType)
	tenure, _ := dataset.ToNumeric(t, dataset.ColTenure)

	rows := allValid(t.Len(), sub.Series, tenure)
	result := &contracts.Segmentation{
		RowsUsed:    len(rows),
		RowsDropped: t.Len() - len(rows),
	}

	if cause := segmentationCause(sub, tenure, rows); cause != "" {
		result.Insufficient = &dataset.InsufficientDataError{Operation: "segmentation", Cause: cause}
		return result, nil
	}

	frame := buildFrame(t, map[string]dataset.Series{
		dataset.ColSubscriptionType: sub.Series,
		dataset.ColTenure:           tenure,
	})
	result.Columns = frame.columns

	groups := make(map[segmentKey][]int)
	counts := make(map[int]int)
	for _, r := range rows {
		code := int(sub.Values[r])
		key := segmentKey{code: code, tenure: tenure.Values[r]}
		groups[key] = append(groups[key], r)
		counts[code]++
	}

	keys := make([]segmentKey, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].code != keys[j].code {
			return keys[i].code < keys[j].code
		}
		return keys[i].tenure < keys[j].tenure
	})

	for _, k := range keys {
		members := groups[k]
		result.Segments = append(result.Segments, contracts.Segment{
			SubscriptionCode: k.code,
			Subscription:     sub.Label(k.code),
			Tenure:           k.tenure,
			Count:            len(members),
			Means:            frame.means(members),
		})
	}

	result.SubscriptionCounts = subscriptionCounts(sub, counts)
	return result, nil
}

func segmentationCause(sub dataset.Codes, tenure dataset.Series, rows []int) string {
	switch {
	case sub.ValidCount() == 0:
		return "Subscription Type has no value"
	case tenure.ValidCount() == 0:
		return "Tenure has no parseable value"
	case len(rows) == 0:
		return "no row has both Subscription Type and parseable Tenure"
	}
	return ""
}

// subscriptionCounts orders value counts descending, ties by code
func subscriptionCounts(sub dataset.Codes, counts map[int]int) []contracts.Frequency {
	out := make([]contracts.Frequency, 0, len(counts))
	for code, n := range counts {
		out = append(out, contracts.Frequency{Code: code, Label: sub.Label(code), Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Code < out[j].Code
	})
	return out
}
