package chart

import (
	"iter"

	"github.com/shopspring/decimal"

	"github.com/verte-zerg/barchart/internal/model"
)

// Chart is a fully aggregated, immutable data set ready to be rendered in
// any sort order.
type Chart struct {
	entries    []model.Entry
	total      decimal.Decimal
	fractional bool
}

// Build aggregates lines and freezes the result. Nothing is rendered if this
// fails.
func Build(lines iter.Seq2[int, string], mode model.InputMode) (*Chart, error) {
	table, err := Aggregate(lines, mode)
	if err != nil {
		return nil, err
	}
	return FromTable(table), nil
}

// FromTable freezes an aggregated table.
func FromTable(t *Table) *Chart {
	return &Chart{
		entries:    t.Entries(),
		total:      t.Total,
		fractional: t.Fractional,
	}
}

// Entries returns a copy of the aggregated entries in first-seen order.
func (c *Chart) Entries() []model.Entry {
	out := make([]model.Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Total returns the sum of all values.
func (c *Chart) Total() decimal.Decimal {
	return c.total
}

// Fractional reports whether values are formatted with two decimals.
func (c *Chart) Fractional() bool {
	return c.fractional
}
