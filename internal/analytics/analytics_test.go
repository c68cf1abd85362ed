package analytics

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/churnlens/internal/contracts"
	"github.com/wonny/churnlens/internal/dataset"
	"github.com/wonny/churnlens/internal/sampledata"
)

// without returns the sample dataset minus one column
func without(column string) *dataset.Table {
	var cols []string
	var idx []int
	for i, c := range sampledata.Columns {
		if c != column {
			cols = append(cols, c)
			idx = append(idx, i)
		}
	}
	var rows [][]string
	for _, r := range sampledata.Rows() {
		row := make([]string, 0, len(idx))
		for _, i := range idx {
			row = append(row, r[i])
		}
		rows = append(rows, row)
	}
	return dataset.New(cols, rows)
}

func TestSample(t *testing.T) {
	tbl := sampledata.Table()

	tests := []struct {
		name string
		n    int
		want int
	}{
		{"fewer than rows", 3, 3},
		{"exactly rows", 5, 5},
		{"more than rows", 10, 5},
		{"zero", 0, 0},
		{"negative", -2, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sample(tbl, tt.n, rand.New(rand.NewPCG(1, 2)))
			assert.Equal(t, tt.want, got.Len())
			assert.Equal(t, tbl.Columns(), got.Columns())
		})
	}
}

func TestSample_WithoutReplacement(t *testing.T) {
	tbl := sampledata.Table()
	got := Sample(tbl, 5, rand.New(rand.NewPCG(7, 7)))

	seen := make(map[string]bool)
	for i := 0; i < got.Len(); i++ {
		id := got.Value(i, dataset.ColCustomerID)
		assert.False(t, seen[id], "customer %s sampled twice", id)
		seen[id] = true
	}
	assert.Len(t, seen, 5)
}

func TestSample_Deterministic(t *testing.T) {
	tbl := sampledata.Table()
	a := Sample(tbl, 3, rand.New(rand.NewPCG(42, 0)))
	b := Sample(tbl, 3, rand.New(rand.NewPCG(42, 0)))
	assert.Equal(t, a.Rows(), b.Rows())
}

func TestProfile(t *testing.T) {
	tbl := dataset.New(
		[]string{"Age", "Gender", "Total Spend"},
		[][]string{
			{"20", "Male", "100"},
			{"30", "Female", ""},
			{"40", "Male", "300"},
			{"", "", "200"},
		},
	)

	p := Profile(tbl)
	assert.Equal(t, 4, p.Rows)
	assert.Equal(t, 3, p.ColumnCount)

	age, ok := p.Column("Age")
	require.True(t, ok)
	assert.Equal(t, "numeric", age.Kind)
	assert.Equal(t, 1, age.Missing)
	assert.Equal(t, 3, age.NonNull)
	require.NotNil(t, age.Numeric)
	assert.Equal(t, 3, age.Numeric.Count)
	assert.InDelta(t, 30, age.Numeric.Mean, 1e-9)
	assert.InDelta(t, 10, age.Numeric.Std, 1e-9)
	assert.Equal(t, 20.0, age.Numeric.Min)
	assert.InDelta(t, 25, age.Numeric.Q1, 1e-9)
	assert.InDelta(t, 30, age.Numeric.Median, 1e-9)
	assert.InDelta(t, 35, age.Numeric.Q3, 1e-9)
	assert.Equal(t, 40.0, age.Numeric.Max)

	gender, ok := p.Column("Gender")
	require.True(t, ok)
	assert.Equal(t, "categorical", gender.Kind)
	require.NotNil(t, gender.Categorical)
	assert.Equal(t, contracts.CategoricalSummary{Count: 3, Unique: 2, Top: "Male", Freq: 2}, *gender.Categorical)

	assert.Equal(t, map[string]int{"Age": 1, "Gender": 1, "Total Spend": 1}, p.MissingValues())
	assert.Contains(t, p.Info(), "4 entries")
	assert.Contains(t, p.Info(), "3 non-null")
}

func TestProfile_SingleValueStdIsNaN(t *testing.T) {
	p := Profile(dataset.New([]string{"x"}, [][]string{{"5"}}))
	col, _ := p.Column("x")
	assert.True(t, math.IsNaN(col.Numeric.Std))
	assert.Equal(t, 5.0, col.Numeric.Median)
}

func TestStatistics(t *testing.T) {
	stats, err := Statistics(sampledata.Table())
	require.NoError(t, err)

	assert.InDelta(t, 37, stats.AverageAge, 1e-9)
	assert.InDelta(t, 19.2, stats.AverageTenure, 1e-9)
	assert.InDelta(t, 4200, stats.TotalSpend, 1e-9)
	assert.InDelta(t, 2.2, stats.AverageSupportCalls, 1e-9)
	assert.InDelta(t, 40, stats.ChurnRate, 1e-9)
	assert.InDelta(t, math.Sqrt(37.3), stats.PaymentDelayStdDev, 1e-9)

	m := stats.Map()
	assert.Len(t, m, 6)
	assert.InDelta(t, 40, m[contracts.StatChurnRate], 1e-9)
	assert.Equal(t, contracts.StatAverageAge, stats.Entries()[0].Key)
}

func TestStatistics_MissingColumn(t *testing.T) {
	for _, column := range statisticsColumns {
		t.Run(column, func(t *testing.T) {
			_, err := Statistics(without(column))

			var mc *dataset.MissingColumnError
			require.ErrorAs(t, err, &mc)
			assert.Equal(t, column, mc.Column)
		})
	}
}

func TestStatistics_ChurnRateMatchesCount(t *testing.T) {
	tbl := dataset.New(
		[]string{"Age", "Tenure", "Total Spend", "Support Calls", "Churn", "Payment Delay"},
		[][]string{
			{"30", "1", "10", "1", "1", "1"},
			{"31", "2", "20", "2", "0", "2"},
			{"32", "3", "30", "3", "", "3"},
			{"33", "4", "40", "4", "1", "4"},
			{"34", "5", "50", "5", "x", "5"},
		},
	)

	stats, err := Statistics(tbl)
	require.NoError(t, err)

	// two of the three coercible churn cells are 1
	assert.InDelta(t, 100.0*2/3, stats.ChurnRate, 1e-9)
	assert.GreaterOrEqual(t, stats.ChurnRate, 0.0)
	assert.LessOrEqual(t, stats.ChurnRate, 100.0)
}

func TestStatistics_CategoricalChurnRate(t *testing.T) {
	tbl := dataset.New(
		[]string{"Age", "Tenure", "Total Spend", "Support Calls", "Churn", "Payment Delay"},
		[][]string{
			{"30", "1", "10", "1", "No", "1"},
			{"31", "2", "20", "2", "Yes", "2"},
			{"32", "3", "30", "3", "No", "3"},
			{"33", "4", "40", "4", "No", "4"},
		},
	)

	stats, err := Statistics(tbl)
	require.NoError(t, err)
	// first-seen "No" → 0, "Yes" → 1
	assert.InDelta(t, 25, stats.ChurnRate, 1e-9)
}

func TestStatistics_BooleanChurnRate(t *testing.T) {
	tbl := dataset.New(
		[]string{"Age", "Tenure", "Total Spend", "Support Calls", "Churn", "Payment Delay"},
		[][]string{
			{"30", "1", "10", "1", "True", "1"},
			{"31", "2", "20", "2", "False", "2"},
			{"32", "3", "30", "3", "False", "3"},
			{"33", "4", "40", "4", "False", "4"},
		},
	)

	stats, err := Statistics(tbl)
	require.NoError(t, err)
	// True is churned regardless of row order
	assert.InDelta(t, 25, stats.ChurnRate, 1e-9)

	churn, ok := Project(tbl).Get(contracts.ProjectionChurn)
	require.True(t, ok)
	assert.InDelta(t, 1, churn.Value, 1e-9)
}

func TestStatistics_EmptyColumns(t *testing.T) {
	tbl := dataset.New(
		[]string{"Age", "Tenure", "Total Spend", "Support Calls", "Churn", "Payment Delay"},
		[][]string{{"", "", "", "", "", ""}},
	)

	stats, err := Statistics(tbl)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(stats.AverageAge))
	assert.True(t, math.IsNaN(stats.ChurnRate))
	assert.True(t, math.IsNaN(stats.PaymentDelayStdDev))
	assert.Equal(t, 0.0, stats.TotalSpend)
}

func TestChurnBreakdown_GroupMeans(t *testing.T) {
	tbl := dataset.New(
		[]string{"Churn", "Total Spend", "Payment Delay"},
		[][]string{
			{"0", "100", "4"},
			{"0", "300", "6"},
			{"1", "50", "20"},
		},
	)

	b, err := ChurnBreakdown(tbl)
	require.NoError(t, err)
	require.False(t, b.Empty())
	require.Len(t, b.Groups, 2)

	g0, ok := b.Group(0)
	require.True(t, ok)
	assert.Equal(t, 2, g0.Count)
	assert.InDelta(t, 200, g0.Means["Total Spend"], 1e-9)
	assert.InDelta(t, 5, g0.Means["Payment Delay"], 1e-9)

	g1, ok := b.Group(1)
	require.True(t, ok)
	assert.InDelta(t, 50, g1.Means["Total Spend"], 1e-9)

	assert.Equal(t, []contracts.GroupMean{
		{Code: 0, Label: "0", Value: 200},
		{Code: 1, Label: "1", Value: 50},
	}, b.SpendByChurn)
	assert.Equal(t, []contracts.GroupMean{
		{Code: 0, Label: "0", Value: 5},
		{Code: 1, Label: "1", Value: 20},
	}, b.DelayByChurn)

	chart := b.DelayChart()
	require.Len(t, chart.Points, 2)
	assert.Equal(t, 20.0, chart.Points[1].Value)
}

func TestChurnBreakdown_SampleDataset(t *testing.T) {
	b, err := ChurnBreakdown(sampledata.Table())
	require.NoError(t, err)

	assert.Equal(t, 5, b.RowsUsed)
	assert.Equal(t, 0, b.RowsDropped)
	assert.Equal(t, []string{"CustomerID", "Age", "Tenure", "Usage Frequency", "Support Calls",
		"Payment Delay", "Total Spend", "Last Interaction", "Churn"}, b.Columns)

	g0, _ := b.Group(0)
	g1, _ := b.Group(1)
	assert.Equal(t, 3, g0.Count)
	assert.Equal(t, 2, g1.Count)
	assert.InDelta(t, 2150.0/3, g0.Means["Total Spend"], 1e-9)
	assert.InDelta(t, 1025, g1.Means["Total Spend"], 1e-9)
	assert.InDelta(t, 88.0/3, g0.Means["Age"], 1e-9)
	assert.InDelta(t, 1, g1.Means["Churn"], 1e-9)

	require.Len(t, b.SpendDistribution, 2)
	assert.Equal(t, contracts.BoxSummary{
		Code: 0, Label: "0", Count: 3, Min: 500, Q1: 625, Median: 750, Q3: 825, Max: 900,
	}, b.SpendDistribution[0])
}

func TestChurnBreakdown_CategoricalChurn(t *testing.T) {
	tbl := dataset.New(
		[]string{"Churn", "Total Spend", "Payment Delay"},
		[][]string{
			{"Yes", "100", "1"},
			{"No", "200", "2"},
			{"Yes", "300", "3"},
		},
	)

	b, err := ChurnBreakdown(tbl)
	require.NoError(t, err)

	g0, _ := b.Group(0)
	assert.Equal(t, "Yes", g0.Label)
	assert.InDelta(t, 200, g0.Means["Total Spend"], 1e-9)
	assert.InDelta(t, 0, g0.Means["Churn"], 1e-9)

	g1, _ := b.Group(1)
	assert.Equal(t, "No", g1.Label)
	assert.Equal(t, 1, g1.Count)
}

func TestChurnBreakdown_DropsUnparseableRows(t *testing.T) {
	tbl := dataset.New(
		[]string{"Churn", "Total Spend", "Payment Delay"},
		[][]string{
			{"0", "100", "1"},
			{"1", "abc", "2"},
			{"", "300", "3"},
			{"1", "400", ""},
			{"1", "500", "5"},
		},
	)

	b, err := ChurnBreakdown(tbl)
	require.NoError(t, err)
	assert.Equal(t, 2, b.RowsUsed)
	assert.Equal(t, 3, b.RowsDropped)

	g1, _ := b.Group(1)
	assert.Equal(t, 1, g1.Count)
	assert.InDelta(t, 500, g1.Means["Total Spend"], 1e-9)
}

func TestChurnBreakdown_InsufficientData(t *testing.T) {
	tbl := dataset.New(
		[]string{"Churn", "Total Spend", "Payment Delay"},
		[][]string{
			{"0", "abc", "1"},
			{"1", "200", "late"},
		},
	)

	b, err := ChurnBreakdown(tbl)
	require.NoError(t, err)
	require.True(t, b.Empty())
	assert.ErrorIs(t, b.Insufficient, dataset.ErrInsufficientData)
	assert.Empty(t, b.Groups)
	assert.Equal(t, 2, b.RowsDropped)
}

func TestChurnBreakdown_MissingColumn(t *testing.T) {
	_, err := ChurnBreakdown(without(dataset.ColPaymentDelay))

	var mc *dataset.MissingColumnError
	require.ErrorAs(t, err, &mc)
	assert.Equal(t, dataset.ColPaymentDelay, mc.Column)
}

func TestSegment_CollapsesIdenticalKeys(t *testing.T) {
	tbl := dataset.New(
		[]string{"Subscription Type", "Tenure", "Total Spend"},
		[][]string{
			{"Basic", "2", "100"},
			{"Basic", "2", "300"},
		},
	)

	s, err := Segment(tbl)
	require.NoError(t, err)
	require.False(t, s.Empty())
	require.Len(t, s.Segments, 1)

	seg := s.Segments[0]
	assert.Equal(t, "Basic", seg.Subscription)
	assert.Equal(t, 0, seg.SubscriptionCode)
	assert.Equal(t, 2.0, seg.Tenure)
	assert.Equal(t, 2, seg.Count)
	assert.InDelta(t, 200, seg.Means["Total Spend"], 1e-9)
	assert.InDelta(t, 2, seg.Means["Tenure"], 1e-9)
	assert.InDelta(t, 0, seg.Means["Subscription Type"], 1e-9)

	assert.Equal(t, []contracts.Frequency{{Code: 0, Label: "Basic", Count: 2}}, s.SubscriptionCounts)
}

func TestSegment_SampleDataset(t *testing.T) {
	s, err := Segment(sampledata.Table())
	require.NoError(t, err)

	require.Len(t, s.Segments, 5)
	var keys []string
	for _, seg := range s.Segments {
		keys = append(keys, seg.Subscription)
	}
	assert.Equal(t, []string{"Basic", "Basic", "Standard", "Standard", "Premium"}, keys)
	assert.Equal(t, 12.0, s.Segments[0].Tenure)
	assert.Equal(t, 36.0, s.Segments[1].Tenure)

	premium, ok := s.Find("Premium", 6)
	require.True(t, ok)
	assert.InDelta(t, 1000, premium.Means["Total Spend"], 1e-9)

	assert.Equal(t, []contracts.Frequency{
		{Code: 0, Label: "Basic", Count: 2},
		{Code: 1, Label: "Standard", Count: 2},
		{Code: 2, Label: "Premium", Count: 1},
	}, s.SubscriptionCounts)
	assert.Contains(t, s.Columns, "Subscription Type")

	chart := s.SubscriptionChart()
	require.Len(t, chart.Points, 3)
	assert.Equal(t, "Basic", chart.Points[0].Label)
}

func TestSegment_Degenerate(t *testing.T) {
	tests := []struct {
		name  string
		rows  [][]string
		cause string
	}{
		{
			name:  "tenure unparseable",
			rows:  [][]string{{"Basic", "abc"}, {"Premium", ""}},
			cause: "Tenure has no parseable value",
		},
		{
			name:  "subscription missing",
			rows:  [][]string{{"", "1"}, {"NA", "2"}},
			cause: "Subscription Type has no value",
		},
		{
			name:  "no overlap",
			rows:  [][]string{{"Basic", ""}, {"", "3"}},
			cause: "no row has both Subscription Type and parseable Tenure",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Segment(dataset.New([]string{"Subscription Type", "Tenure"}, tt.rows))
			require.NoError(t, err)
			require.True(t, s.Empty())
			assert.Equal(t, tt.cause, s.Insufficient.Cause)
			assert.Empty(t, s.Segments)
		})
	}
}

func TestSegment_MissingColumn(t *testing.T) {
	_, err := Segment(without(dataset.ColTenure))
	var mc *dataset.MissingColumnError
	require.ErrorAs(t, err, &mc)
	assert.Equal(t, dataset.ColTenure, mc.Column)
}

func TestProject_SampleDataset(t *testing.T) {
	ps := Project(sampledata.Table())
	require.Len(t, ps, 6)
	assert.Empty(t, ps.Errors())

	v := ps.Values()
	assert.InDelta(t, 50400, v[contracts.ProjectionTotalSpend], 1e-9)
	assert.InDelta(t, 2, v[contracts.ProjectionChurn], 1e-9)
	assert.InDelta(t, 2.42, v[contracts.ProjectionSupportCalls], 1e-9)
	assert.InDelta(t, 6.72, v[contracts.ProjectionPaymentDelay], 1e-9)
	assert.InDelta(t, 0.6, v[contracts.ProjectionUpgrades], 1e-9)
	assert.InDelta(t, 23.04, v[contracts.ProjectionTenure], 1e-9)
}

func TestProject_MissingColumnIsolation(t *testing.T) {
	ps := Project(without(dataset.ColSupportCalls))

	errs := ps.Errors()
	require.Len(t, errs, 1)
	var mc *dataset.MissingColumnError
	require.ErrorAs(t, errs[contracts.ProjectionSupportCalls], &mc)
	assert.Equal(t, dataset.ColSupportCalls, mc.Column)

	p, ok := ps.Get(contracts.ProjectionSupportCalls)
	require.True(t, ok)
	assert.False(t, p.OK())
	assert.Equal(t, "missing column: Support Calls", p.Error)

	v := ps.Values()
	assert.Len(t, v, 5)
	assert.InDelta(t, 50400, v[contracts.ProjectionTotalSpend], 1e-9)
	assert.InDelta(t, 23.04, v[contracts.ProjectionTenure], 1e-9)
}

func TestProject_NoValidValue(t *testing.T) {
	tbl := dataset.New(
		[]string{"Total Spend", "Churn", "Support Calls", "Payment Delay", "Subscription Type", "Tenure"},
		[][]string{{"", "0", "3", "x", "Premium", "10"}},
	)

	ps := Project(tbl)
	errs := ps.Errors()
	assert.Len(t, errs, 2)
	assert.ErrorIs(t, errs[contracts.ProjectionTotalSpend], dataset.ErrInsufficientData)
	assert.ErrorIs(t, errs[contracts.ProjectionPaymentDelay], dataset.ErrInsufficientData)

	v := ps.Values()
	assert.Equal(t, 0.0, v[contracts.ProjectionUpgrades])
	assert.InDelta(t, 3.3, v[contracts.ProjectionSupportCalls], 1e-9)
}

func TestProjector_CustomFactors(t *testing.T) {
	f := DefaultFactors()
	f.UpgradeTiers = []string{"basic"}
	f.UpgradeRate = 0.5

	v, err := NewProjector(f).SubscriptionUpgrades(sampledata.Table())
	require.NoError(t, err)
	assert.InDelta(t, 1.0, v, 1e-9)
}

func TestDefaultFactors(t *testing.T) {
	assert.Equal(t, Factors{
		SpendMonths:        12,
		SupportCallGrowth:  1.10,
		PaymentDelayGrowth: 1.05,
		UpgradeRate:        0.15,
		UpgradeTiers:       []string{"Basic", "Standard"},
		TenureGrowth:       1.20,
	}, DefaultFactors())
}

func TestAggregations_Idempotent(t *testing.T) {
	tbl := sampledata.Table()
	before := tbl.Rows()

	s1, err1 := Statistics(tbl)
	s2, err2 := Statistics(tbl)
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, s1, s2)

	b1, _ := ChurnBreakdown(tbl)
	b2, _ := ChurnBreakdown(tbl)
	assert.Equal(t, b1, b2)

	g1, _ := Segment(tbl)
	g2, _ := Segment(tbl)
	assert.Equal(t, g1, g2)

	assert.Equal(t, Project(tbl), Project(tbl))
	assert.Equal(t, Profile(tbl), Profile(tbl))

	assert.Equal(t, before, tbl.Rows(), "table must not be mutated")
}
