package chart

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// widthCondition classifies runes without the East-Asian ambiguous widening
// that runewidth derives from the locale, so output does not depend on it.
var widthCondition = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	return c
}()

// RuneWidth returns 2 for East-Asian wide and fullwidth runes and 1 otherwise.
func RuneWidth(r rune) int {
	if widthCondition.RuneWidth(r) == 2 {
		return 2
	}
	return 1
}

// DisplayWidth returns the number of terminal columns used by s.
func DisplayWidth(s string) int {
	width := 0
	for _, r := range s {
		width += RuneWidth(r)
	}
	return width
}

// truncateWidth returns the longest prefix of s that fits in width columns
// and the columns it uses. A wide rune is never split.
func truncateWidth(s string, width int) (string, int) {
	used := 0
	for i, r := range s {
		w := RuneWidth(r)
		if used+w > width {
			return s[:i], used
		}
		used += w
	}
	return s, used
}

// padKey truncates key to width columns and left-pads it to exactly width.
func padKey(key string, width int) string {
	title, used := truncateWidth(key, width)
	if used >= width {
		return title
	}
	return strings.Repeat(" ", width-used) + title
}
