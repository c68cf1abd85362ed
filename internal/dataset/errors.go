package dataset

import (
	"errors"
	"fmt"
)

// Sentinels for errors.Is matching against the typed errors below.
var (
	ErrNotFound         = errors.New("dataset not found")
	ErrParse            = errors.New("dataset parse failed")
	ErrMissingColumn    = errors.New("missing column")
	ErrInsufficientData = errors.New("insufficient data")
)

// NotFoundError: source path does not resolve to a readable file.
type NotFoundError struct {
	Path string
	Err  error
}

func (e *NotFoundError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("dataset not found: %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("dataset not found: %s", e.Path)
}

func (e *NotFoundError) Unwrap() error        { return e.Err }
func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// ParseError: content is not delimited tabular data with a header row.
type ParseError struct {
	Source string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Source, e.Err)
}

func (e *ParseError) Unwrap() error        { return e.Err }
func (e *ParseError) Is(target error) bool { return target == ErrParse }

// MissingColumnError names the required column that is absent.
type MissingColumnError struct {
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("missing column: %s", e.Column)
}

func (e *MissingColumnError) Is(target error) bool { return target == ErrMissingColumn }

// InsufficientDataError reports that every row was excluded after coercion.
type InsufficientDataError struct {
	Operation string
	Cause     string
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("%s: insufficient data: %s", e.Operation, e.Cause)
}

func (e *InsufficientDataError) Is(target error) bool { return target == ErrInsufficientData }
