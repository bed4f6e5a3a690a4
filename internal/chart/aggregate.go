// Package chart aggregates input lines and renders them as a bar histogram.
package chart

import (
	"iter"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/verte-zerg/barchart/internal/model"
)

// Table accumulates values per key in a single pass.
type Table struct {
	values map[string]decimal.Decimal
	order  []string

	// Total is the sum of every accumulated value.
	Total decimal.Decimal
	// Fractional is set once any parsed value had a decimal point or a
	// non-integer value.
	Fractional bool
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{values: map[string]decimal.Decimal{}}
}

// Add adds value to key and to the running total.
func (t *Table) Add(key string, value decimal.Decimal) {
	cur, ok := t.values[key]
	if !ok {
		t.order = append(t.order, key)
	}
	t.values[key] = cur.Add(value)
	t.Total = t.Total.Add(value)
}

// Len returns the number of distinct keys.
func (t *Table) Len() int {
	return len(t.order)
}

// Value returns the accumulated value for key.
func (t *Table) Value(key string) (decimal.Decimal, bool) {
	v, ok := t.values[key]
	return v, ok
}

// Entries returns the keys and values in first-seen order.
func (t *Table) Entries() []model.Entry {
	out := make([]model.Entry, 0, len(t.order))
	for _, key := range t.order {
		out = append(out, model.Entry{Key: key, Value: t.values[key]})
	}
	return out
}

// Aggregate consumes numbered lines under the given input mode.
func Aggregate(lines iter.Seq2[int, string], mode model.InputMode) (*Table, error) {
	table := NewTable()
	for lineNo, line := range lines {
		if mode == model.CountLines {
			table.Add(line, one)
			continue
		}
		key, literal, err := splitLine(line, mode)
		if err != nil {
			return nil, &ParseError{Line: lineNo, Text: line, Err: err}
		}
		value, err := decimal.NewFromString(literal)
		if err != nil {
			return nil, &ParseError{Line: lineNo, Text: literal, Err: ErrParse}
		}
		if strings.ContainsRune(literal, '.') || !value.IsInteger() {
			table.Fractional = true
		}
		table.Add(key, value)
	}
	if table.Len() == 0 {
		return nil, ErrEmptyAggregate
	}
	return table, nil
}

// splitLine returns the key and the value literal of a two-column line.
func splitLine(line string, mode model.InputMode) (key, value string, err error) {
	switch mode {
	case model.KeyValue:
		line = strings.TrimRightFunc(line, unicode.IsSpace)
		idx := strings.LastIndexFunc(line, unicode.IsSpace)
		if idx < 0 {
			return "", "", ErrMalformedLine
		}
		_, size := utf8.DecodeRuneInString(line[idx:])
		value = line[idx+size:]
		key = strings.TrimRightFunc(line[:idx], unicode.IsSpace)
	case model.ValueKey:
		line = strings.TrimLeftFunc(line, unicode.IsSpace)
		idx := strings.IndexFunc(line, unicode.IsSpace)
		if idx < 0 {
			return "", "", ErrMalformedLine
		}
		value = line[:idx]
		key = strings.TrimLeftFunc(line[idx:], unicode.IsSpace)
	default:
		return line, "1", nil
	}
	if key == "" {
		return "", "", ErrMalformedLine
	}
	return key, value, nil
}
