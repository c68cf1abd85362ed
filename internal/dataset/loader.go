package dataset

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// nanValues are folded to gota's "NaN" marker on load; IsMissing treats
// the marker as missing.
var nanValues = []string{"NA", "N/A", "NaN", "null", "<nil>"}

var utf8BOM = []byte("\ufeff")

// LoadFile reads a CSV dataset from path.
// Returns *NotFoundError if the path is absent, a directory or unreadable,
// *ParseError if the content is not CSV with a header row.
func LoadFile(path string) (*Table, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, &NotFoundError{Path: path, Err: err}
	}
	if info.IsDir() {
		return nil, &NotFoundError{Path: path, Err: errors.New("is a directory")}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &NotFoundError{Path: path, Err: err}
	}

	return parse(path, data)
}

// Parse reads a CSV dataset from an uploaded byte stream.
func Parse(r io.Reader) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &ParseError{Source: "stream", Err: fmt.Errorf("read: %w", err)}
	}
	return parse("stream", data)
}

// LoadBytes is Parse over an in-memory upload.
func LoadBytes(data []byte) (*Table, error) {
	return parse("bytes", data)
}

func parse(source string, data []byte) (*Table, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, &ParseError{Source: source, Err: errors.New("empty content")}
	}

	records, err := readRecords(data)
	if err != nil {
		return nil, &ParseError{Source: source, Err: err}
	}

	// All columns load as strings; coercion happens per aggregation.
	df := dataframe.LoadRecords(records,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.NaNValues(nanValues),
	)
	if df.Err != nil {
		return nil, &ParseError{Source: source, Err: df.Err}
	}

	records = df.Records()
	if len(records) == 0 {
		return nil, &ParseError{Source: source, Err: errors.New("missing header row")}
	}

	header := make([]string, len(records[0]))
	for i, h := range records[0] {
		header[i] = strings.TrimSpace(h)
	}

	return New(header, records[1:]), nil
}

// readRecords reads CSV with a variable field count. Short rows are padded
// with empty (missing) cells; a row wider than the header is an error.
func readRecords(data []byte) ([][]string, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, errors.New("missing header row")
	}

	width := len(records[0])
	for i, rec := range records[1:] {
		switch {
		case len(rec) > width:
			return nil, fmt.Errorf("record %d: expected %d fields, saw %d", i+1, width, len(rec))
		case len(rec) < width:
			padded := make([]string, width)
			copy(padded, rec)
			records[i+1] = padded
		}
	}
	return records, nil
}
