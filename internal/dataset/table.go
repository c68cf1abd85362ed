package dataset

// Column names of the churn CSV schema.
const (
	ColCustomerID       = "CustomerID"
	ColAge              = "Age"
	ColGender           = "Gender"
	ColTenure           = "Tenure"
	ColUsageFrequency   = "Usage Frequency"
	ColSupportCalls     = "Support Calls"
	ColPaymentDelay     = "Payment Delay"
	ColSubscriptionType = "Subscription Type"
	ColContractLength   = "Contract Length"
	ColTotalSpend       = "Total Spend"
	ColLastInteraction  = "Last Interaction"
	ColChurn            = "Churn"
)

// Table is an immutable in-memory dataset of raw string cells.
// Every accessor returns copies so callers cannot mutate the bound table;
// coercions produce derived series instead of rewriting cells.
type Table struct {
	columns []string
	index   map[string]int
	rows    [][]string
}

// New builds a Table from a header and rows. Short rows are padded with
// empty (missing) cells, long rows are truncated to the header width.
func New(columns []string, rows [][]string) *Table {
	t := &Table{
		columns: append([]string(nil), columns...),
		index:   make(map[string]int, len(columns)),
		rows:    make([][]string, len(rows)),
	}
	for i, c := range t.columns {
		if _, dup := t.index[c]; !dup {
			t.index[c] = i
		}
	}
	for i, r := range rows {
		row := make([]string, len(columns))
		copy(row, r)
		t.rows[i] = row
	}
	return t
}

// Len returns the row count.
func (t *Table) Len() int { return len(t.rows) }

// Columns returns the header in source order.
func (t *Table) Columns() []string { return append([]string(nil), t.columns...) }

// Has reports whether the column exists.
func (t *Table) Has(column string) bool {
	_, ok := t.index[column]
	return ok
}

// Require returns a *MissingColumnError for the first absent column.
func (t *Table) Require(columns ...string) error {
	for _, c := range columns {
		if !t.Has(c) {
			return &MissingColumnError{Column: c}
		}
	}
	return nil
}

// Value returns the raw cell, or "" when out of range.
func (t *Table) Value(row int, column string) string {
	ci, ok := t.index[column]
	if !ok || row < 0 || row >= len(t.rows) {
		return ""
	}
	return t.rows[row][ci]
}

// Row returns a copy of row i.
func (t *Table) Row(i int) []string {
	if i < 0 || i >= len(t.rows) {
		return nil
	}
	return append([]string(nil), t.rows[i]...)
}

// Rows returns a deep copy of all rows.
func (t *Table) Rows() [][]string {
	out := make([][]string, len(t.rows))
	for i := range t.rows {
		out[i] = t.Row(i)
	}
	return out
}

// Column returns a copy of the raw cells of a column.
func (t *Table) Column(column string) ([]string, error) {
	ci, ok := t.index[column]
	if !ok {
		return nil, &MissingColumnError{Column: column}
	}
	out := make([]string, len(t.rows))
	for i, r := range t.rows {
		out[i] = r[ci]
	}
	return out, nil
}

// Subset returns a new table holding the given rows in the given order.
func (t *Table) Subset(indices []int) *Table {
	rows := make([][]string, 0, len(indices))
	for _, i := range indices {
		if i >= 0 && i < len(t.rows) {
			rows = append(rows, t.rows[i])
		}
	}
	return New(t.columns, rows)
}
