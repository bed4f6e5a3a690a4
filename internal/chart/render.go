package chart

import (
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/verte-zerg/barchart/internal/model"
)

var hundred = decimal.NewFromInt(100)

// Row is one rendered chart line before formatting.
type Row struct {
	Key   string
	Value decimal.Decimal
	Bar   int
}

// RenderOptions adjusts presentation without changing chart content.
type RenderOptions struct {
	// Bar decorates a non-empty run of bar symbols, e.g. with colour.
	Bar func(string) string
}

// Lines returns the legend followed by one formatted line per row.
func (c *Chart) Lines(cfg model.Config, opts RenderOptions) ([]string, error) {
	sorted, err := Sort(c.entries, cfg)
	if err != nil {
		return nil, err
	}
	scale := ComputeScale(c.entries, cfg.MaxKeyWidth)
	rows := Truncate(sorted, cfg.Lines)

	dot := cfg.Dot
	if dot == "" {
		dot = model.DefaultDot
	}

	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, c.legend(dot, scale))
	for _, e := range rows {
		row := Row{Key: e.Key, Value: e.Value, Bar: scale.BarLength(e.Value)}
		lines = append(lines, c.formatRow(row, scale, dot, cfg.Percentage, opts))
	}
	return lines, nil
}

// Render writes the legend and rows to w.
func (c *Chart) Render(w io.Writer, cfg model.Config, opts RenderOptions) error {
	lines, err := c.Lines(cfg, opts)
	if err != nil {
		return err
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func (c *Chart) legend(dot string, scale Scale) string {
	return fmt.Sprintf("# each %s represents a count of %s. total %s", dot, scale.Factor.String(), c.formatValue(c.total))
}

func (c *Chart) formatRow(row Row, scale Scale, dot string, percentage bool, opts RenderOptions) string {
	var b strings.Builder
	b.WriteString(padKey(row.Key, scale.KeyWidth))
	fmt.Fprintf(&b, " [%6s] ", c.formatValue(row.Value))
	if row.Bar > 0 {
		bar := strings.Repeat(dot, row.Bar)
		if opts.Bar != nil {
			bar = opts.Bar(bar)
		}
		b.WriteString(bar)
	}
	if percentage {
		fmt.Fprintf(&b, " (%s%%)", c.percent(row.Value))
	}
	return b.String()
}

func (c *Chart) formatValue(v decimal.Decimal) string {
	if c.fractional {
		return v.StringFixedBank(2)
	}
	return v.String()
}

func (c *Chart) percent(v decimal.Decimal) string {
	if c.total.IsZero() {
		return decimal.Zero.StringFixed(2)
	}
	return v.Mul(hundred).Div(c.total).StringFixedBank(2)
}
