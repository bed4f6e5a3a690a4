package chart

import (
	"github.com/shopspring/decimal"

	"github.com/verte-zerg/barchart/internal/model"
)

// barHeadroom is the column budget reserved for the value and bar beyond the
// configured key width.
const barHeadroom = 30

var one = decimal.NewFromInt(1)

// Scale describes the column layout and bar divisor of a chart.
type Scale struct {
	KeyWidth   int
	ValueWidth int
	// Factor is the value represented by one bar symbol. Always a whole
	// number >= 1, kept as a decimal so arbitrarily large inputs scale exactly.
	Factor decimal.Decimal
}

// ComputeScale derives the layout from the aggregated entries.
func ComputeScale(entries []model.Entry, maxKeyWidth int) Scale {
	keyWidth := 0
	for _, e := range entries {
		if w := DisplayWidth(e.Key); w > keyWidth {
			keyWidth = w
		}
	}
	if keyWidth > maxKeyWidth {
		keyWidth = maxKeyWidth
	}
	if keyWidth < 0 {
		keyWidth = 0
	}

	valueWidth := maxKeyWidth + barHeadroom - keyWidth
	if valueWidth < 1 {
		valueWidth = 1
	}

	return Scale{
		KeyWidth:   keyWidth,
		ValueWidth: valueWidth,
		Factor:     scaleFactor(maxValue(entries), valueWidth),
	}
}

func maxValue(entries []model.Entry) decimal.Decimal {
	if len(entries) == 0 {
		return decimal.Zero
	}
	out := entries[0].Value
	for _, e := range entries[1:] {
		if e.Value.GreaterThan(out) {
			out = e.Value
		}
	}
	return out
}

func scaleFactor(top decimal.Decimal, valueWidth int) decimal.Decimal {
	factor, rem := top.QuoRem(decimal.NewFromInt(int64(valueWidth)), 0)
	if rem.Sign() > 0 {
		factor = factor.Add(one)
	}
	if factor.LessThan(one) {
		return one
	}
	return factor
}

// BarLength returns how many bar symbols represent value. Values below one
// factor, including negative ones, get an empty bar.
func (s Scale) BarLength(value decimal.Decimal) int {
	factor := s.Factor
	if factor.LessThan(one) {
		factor = one
	}
	n, _ := value.QuoRem(factor, 0)
	if n.Sign() <= 0 {
		return 0
	}
	if s.ValueWidth > 0 && n.GreaterThan(decimal.NewFromInt(int64(s.ValueWidth))) {
		return s.ValueWidth
	}
	return int(n.IntPart())
}
