package chart

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// DefaultBarColor is the bar foreground used when colour is enabled.
const DefaultBarColor = "#C89A3A"

// ColorBars returns a bar decorator that paints bars in color for output to w.
// With force set, ANSI 256-colour codes are emitted even when w is not a
// terminal.
func ColorBars(w io.Writer, color string, force bool) func(string) string {
	r := lipgloss.NewRenderer(w)
	if force {
		r.SetColorProfile(termenv.ANSI256)
	}
	if color == "" {
		color = DefaultBarColor
	}
	style := r.NewStyle().Foreground(lipgloss.Color(color))
	return func(bar string) string {
		return style.Render(bar)
	}
}
