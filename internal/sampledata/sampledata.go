// Package sampledata holds the fixed five-customer illustrative dataset.
// It is a convenience for demos and tests, not part of the engine.
package sampledata

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/wonny/churnlens/internal/dataset"
)

// Columns is the full churn schema in file order
var Columns = []string{
	dataset.ColCustomerID,
	dataset.ColAge,
	dataset.ColGender,
	dataset.ColTenure,
	dataset.ColUsageFrequency,
	dataset.ColSupportCalls,
	dataset.ColPaymentDelay,
	dataset.ColSubscriptionType,
	dataset.ColContractLength,
	dataset.ColTotalSpend,
	dataset.ColLastInteraction,
	dataset.ColChurn,
}

// Mean Total Spend is 840; churn rate is 40%.
var rows = [][]string{
	{"1", "25", "Female", "12", "15", "2", "5", "Basic", "Monthly", "500", "10", "0"},
	{"2", "34", "Male", "24", "20", "1", "0", "Standard", "Annual", "750", "5", "0"},
	{"3", "45", "Female", "6", "8", "5", "15", "Premium", "Monthly", "1000", "20", "1"},
	{"4", "29", "Male", "36", "25", "0", "2", "Basic", "Quarterly", "900", "3", "0"},
	{"5", "52", "Female", "18", "12", "3", "10", "Standard", "Annual", "1050", "15", "1"},
}

// Rows returns a copy of the sample rows
func Rows() [][]string {
	out := make([][]string, len(rows))
	for i, r := range rows {
		out[i] = append([]string(nil), r...)
	}
	return out
}

// Table returns the sample dataset as a table
func Table() *dataset.Table {
	return dataset.New(Columns, rows)
}

// Write encodes the sample dataset as CSV with a header row
func Write(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Columns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("write rows: %w", err)
	}
	return nil
}

// WriteFile writes the sample dataset to path
func WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := Write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
