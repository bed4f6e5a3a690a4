package chart

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/verte-zerg/barchart/internal/model"
)

type sortItem struct {
	entry model.Entry
	num   decimal.Decimal
}

// Sort returns a sorted copy of entries. Equal elements keep their input
// order in both directions.
func Sort(entries []model.Entry, cfg model.Config) ([]model.Entry, error) {
	items := make([]sortItem, len(entries))
	for i, e := range entries {
		items[i].entry = e
	}

	var less func(a, b sortItem) bool
	switch {
	case cfg.Sort == model.SortByValue:
		less = func(a, b sortItem) bool { return a.entry.Value.LessThan(b.entry.Value) }
	case cfg.Numeric:
		for i := range items {
			num, err := decimal.NewFromString(items[i].entry.Key)
			if err != nil {
				return nil, &ParseError{Text: items[i].entry.Key, Err: ErrParse}
			}
			items[i].num = num
		}
		less = func(a, b sortItem) bool { return a.num.LessThan(b.num) }
	default:
		less = func(a, b sortItem) bool { return a.entry.Key < b.entry.Key }
	}

	sort.SliceStable(items, func(i, j int) bool {
		if cfg.Reverse {
			return less(items[j], items[i])
		}
		return less(items[i], items[j])
	})

	out := make([]model.Entry, len(items))
	for i, item := range items {
		out[i] = item.entry
	}
	return out, nil
}

// Truncate returns at most n leading entries. n <= 0 keeps them all.
func Truncate(entries []model.Entry, n int) []model.Entry {
	if n <= 0 || n >= len(entries) {
		return entries
	}
	return entries[:n]
}
