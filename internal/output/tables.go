package output

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/wonny/churnlens/internal/contracts"
	"github.com/wonny/churnlens/internal/dataset"
)

func (p *Printer) newTable(header []string) *tablewriter.Table {
	t := tablewriter.NewWriter(p.w)
	t.SetHeader(header)
	t.SetAutoFormatHeaders(false)
	t.SetAutoWrapText(false)
	return t
}

// Rows prints a table's rows under its header
func (p *Printer) Rows(t *dataset.Table) {
	if t.Len() == 0 {
		p.Info("No rows.")
		return
	}
	tbl := p.newTable(t.Columns())
	tbl.AppendBulk(t.Rows())
	tbl.Render()
}

// Profile prints the info block, describe() tables and missing values
func (p *Printer) Profile(prof contracts.Profile) {
	fmt.Fprint(p.w, prof.Info())

	var numeric, categorical [][]string
	for _, c := range prof.Columns {
		switch {
		case c.Numeric != nil:
			n := c.Numeric
			numeric = append(numeric, []string{
				c.Name, strconv.Itoa(n.Count),
				FormatFloat(n.Mean), FormatFloat(n.Std), FormatFloat(n.Min),
				FormatFloat(n.Q1), FormatFloat(n.Median), FormatFloat(n.Q3), FormatFloat(n.Max),
			})
		case c.Categorical != nil:
			cs := c.Categorical
			categorical = append(categorical, []string{
				c.Name, strconv.Itoa(cs.Count), strconv.Itoa(cs.Unique), cs.Top, strconv.Itoa(cs.Freq),
			})
		}
	}

	if len(numeric) > 0 {
		p.Subsection("Summary Statistics")
		tbl := p.newTable([]string{"Column", "count", "mean", "std", "min", "25%", "50%", "75%", "max"})
		tbl.AppendBulk(numeric)
		tbl.Render()
	}
	if len(categorical) > 0 {
		p.Subsection("Categorical Columns")
		tbl := p.newTable([]string{"Column", "count", "unique", "top", "freq"})
		tbl.AppendBulk(categorical)
		tbl.Render()
	}

	p.Subsection("Missing Values")
	tbl := p.newTable([]string{"Column", "Missing"})
	for _, c := range prof.Columns {
		tbl.Append([]string{c.Name, strconv.Itoa(c.Missing)})
	}
	tbl.Render()
}

// Statistics prints the customer statistics
func (p *Printer) Statistics(s contracts.Statistics) {
	tbl := p.newTable([]string{"Statistic", "Value"})
	tbl.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})
	for _, e := range s.Entries() {
		tbl.Append([]string{e.Key, FormatFloat(e.Value)})
	}
	tbl.Render()
}

// ChurnBreakdown prints per-churn-group means, one column per group
func (p *Printer) ChurnBreakdown(b *contracts.ChurnBreakdown) {
	if b.Empty() {
		p.Warning(b.Insufficient.Error())
		return
	}

	header := []string{"Column"}
	for _, g := range b.Groups {
		header = append(header, fmt.Sprintf("Churn = %s (n=%d)", g.Label, g.Count))
	}
	tbl := p.newTable(header)
	for _, col := range b.Columns {
		row := []string{col}
		for _, g := range b.Groups {
			row = append(row, FormatFloat(g.Means[col]))
		}
		tbl.Append(row)
	}
	tbl.Render()
	p.rowsNote(b.RowsUsed, b.RowsDropped)

	p.Chart(b.DelayChart())
	p.Chart(b.SpendChart())
	p.SpendDistribution(b.SpendDistribution)
}

// SpendDistribution prints the box-plot summary of Total Spend per churn group
func (p *Printer) SpendDistribution(boxes []contracts.BoxSummary) {
	if len(boxes) == 0 {
		return
	}
	p.Subsection("Total Spend Distribution by Churn")
	tbl := p.newTable([]string{"Churn", "count", "min", "25%", "50%", "75%", "max"})
	for _, bx := range boxes {
		tbl.Append([]string{
			bx.Label, strconv.Itoa(bx.Count),
			FormatFloat(bx.Min), FormatFloat(bx.Q1), FormatFloat(bx.Median), FormatFloat(bx.Q3), FormatFloat(bx.Max),
		})
	}
	tbl.Render()
}

// Segmentation prints one row per (Subscription Type, Tenure) group
func (p *Printer) Segmentation(s *contracts.Segmentation) {
	if s.Empty() {
		p.Warning(s.Insufficient.Error())
		return
	}

	header := append([]string{"Subscription Type", "Tenure", "Count"}, s.Columns...)
	tbl := p.newTable(header)
	for _, seg := range s.Segments {
		row := []string{seg.Subscription, formatKey(seg.Tenure), strconv.Itoa(seg.Count)}
		for _, col := range s.Columns {
			row = append(row, FormatFloat(seg.Means[col]))
		}
		tbl.Append(row)
	}
	tbl.Render()
	p.rowsNote(s.RowsUsed, s.RowsDropped)

	p.Chart(s.SubscriptionChart())
}

// Projections prints every projection; a failed one shows its error in place
func (p *Printer) Projections(ps contracts.Projections) {
	tbl := p.newTable([]string{"Projection", "Value", "Formula"})
	tbl.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT})
	for _, proj := range ps {
		value := FormatFloat(proj.Value)
		if !proj.OK() {
			value = "error: " + proj.Error
		}
		tbl.Append([]string{proj.Key, value, proj.Formula})
	}
	tbl.Render()
}

// Chart prints a horizontal bar chart scaled to the largest magnitude
func (p *Printer) Chart(c contracts.ChartSeries) {
	p.Subsection(c.Name)
	if len(c.Points) == 0 {
		p.Info("No data.")
		return
	}

	labelWidth := 0
	peak := 0.0
	for _, pt := range c.Points {
		labelWidth = max(labelWidth, len(pt.Label))
		if !math.IsNaN(pt.Value) {
			peak = math.Max(peak, math.Abs(pt.Value))
		}
	}

	bar := p.paint(colorBar)
	for _, pt := range c.Points {
		n := 0
		if peak > 0 && !math.IsNaN(pt.Value) {
			n = int(math.Round(math.Abs(pt.Value) / peak * barWidth))
		}
		fmt.Fprintf(p.w, "  %-*s │", labelWidth, pt.Label)
		bar.Fprint(p.w, strings.Repeat("█", n))
		fmt.Fprintf(p.w, " %s\n", FormatFloat(pt.Value))
	}
	if c.YAxis != "" {
		fmt.Fprintf(p.w, "  (%s)\n", c.YAxis)
	}
}

func (p *Printer) rowsNote(used, dropped int) {
	if dropped > 0 {
		p.Info(fmt.Sprintf("%d rows used, %d dropped for missing or unparseable values", used, dropped))
	}
}
