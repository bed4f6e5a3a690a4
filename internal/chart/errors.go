package chart

import (
	"errors"
	"fmt"
)

// Sentinel errors reported by the chart pipeline. Match them with errors.Is.
var (
	// ErrEmptyAggregate is returned when no line survived normalization.
	ErrEmptyAggregate = errors.New("no data")

	// ErrParse is returned when a value or numeric key is not a number.
	ErrParse = errors.New("not a number")

	// ErrMalformedLine is returned when a two-column line has a single field.
	ErrMalformedLine = errors.New("missing second column")
)

// ParseError locates a failed parse in the input.
type ParseError struct {
	// Line is the 1-based input line number, or 0 when the text is a key
	// being parsed for numeric sorting.
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %q: %v", e.Line, e.Text, e.Err)
	}
	return fmt.Sprintf("key %q: %v", e.Text, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
