// Package model defines shared data structures.
package model

import "github.com/shopspring/decimal"

// InputMode selects how input lines become key/value pairs.
type InputMode int

const (
	// CountLines counts each line as one occurrence of its content.
	CountLines InputMode = iota
	// KeyValue reads "key value", splitting on the last whitespace run.
	KeyValue
	// ValueKey reads "value key", splitting on the first whitespace run.
	ValueKey
)

func (m InputMode) String() string {
	switch m {
	case KeyValue:
		return "key-value"
	case ValueKey:
		return "value-key"
	default:
		return "count"
	}
}

// SortMode selects the ordering of chart rows.
type SortMode int

const (
	// SortByKey orders rows by key text, or by key number when Numeric is set.
	SortByKey SortMode = iota
	// SortByValue orders rows by aggregated value.
	SortByValue
)

func (m SortMode) String() string {
	if m == SortByValue {
		return "value"
	}
	return "key"
}

// Defaults for chart options.
const (
	DefaultMaxKeyWidth = 50
	DefaultDot         = "∎"
	DefaultEncoding    = "utf-8"
)

// Config defines resolved chart settings.
type Config struct {
	Mode        InputMode
	Sort        SortMode
	Reverse     bool
	Numeric     bool
	Lines       int
	MaxKeyWidth int
	Percentage  bool
	Dot         string
	Encoding    string
}

// DefaultConfig returns the settings used when no flag or config value is given.
func DefaultConfig() Config {
	return Config{
		Mode:        CountLines,
		Sort:        SortByKey,
		MaxKeyWidth: DefaultMaxKeyWidth,
		Dot:         DefaultDot,
		Encoding:    DefaultEncoding,
	}
}

// Entry is one aggregated key and its accumulated value.
type Entry struct {
	Key   string
	Value decimal.Decimal
}
