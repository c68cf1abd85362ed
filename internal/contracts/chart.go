package contracts

// ChartSeries is the data behind a bar chart. Rendering belongs to the caller.
type ChartSeries struct {
	Name   string       `json:"name"`
	XAxis  string       `json:"x_axis,omitempty"`
	YAxis  string       `json:"y_axis,omitempty"`
	Points []ChartPoint `json:"points"`
}

// ChartPoint is a single labelled bar
type ChartPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// GroupMean is the mean of one column within one group
type GroupMean struct {
	Code  int     `json:"code"`
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// BoxSummary is the five-number summary of one group (box plot data)
type BoxSummary struct {
	Code   int     `json:"code"`
	Label  string  `json:"label"`
	Count  int     `json:"count"`
	Min    float64 `json:"min"`
	Q1     float64 `json:"q1"`
	Median float64 `json:"median"`
	Q3     float64 `json:"q3"`
	Max    float64 `json:"max"`
}

func seriesFromMeans(name, xAxis, yAxis string, means []GroupMean) ChartSeries {
	s := ChartSeries{Name: name, XAxis: xAxis, YAxis: yAxis, Points: make([]ChartPoint, 0, len(means))}
	for _, m := range means {
		s.Points = append(s.Points, ChartPoint{Label: m.Label, Value: m.Value})
	}
	return s
}
