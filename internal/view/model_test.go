package view

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/barchart/internal/chart"
	"github.com/verte-zerg/barchart/internal/input"
	"github.com/verte-zerg/barchart/internal/model"
)

func newTestModel(t *testing.T, raw []string) *Model {
	t.Helper()
	c, err := chart.Build(input.FromStrings(raw), model.CountLines)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	m, err := NewModel(c, model.DefaultConfig(), chart.RenderOptions{})
	if err != nil {
		t.Fatalf("NewModel failed: %v", err)
	}
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 12})
	return m
}

func press(m *Model, s string) tea.Cmd {
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return cmd
}

func rowBefore(view, first, second string) bool {
	i := strings.Index(view, first)
	j := strings.Index(view, second)
	return i >= 0 && j >= 0 && i < j
}

func TestViewShowsLegendAndRows(t *testing.T) {
	m := newTestModel(t, []string{"a", "c", "c", "b"})
	out := m.View()
	if !strings.Contains(out, "# each ∎ represents a count of 1. total 4") {
		t.Fatalf("expected legend in view: %s", out)
	}
	if !rowBefore(out, "a [", "b [") || !rowBefore(out, "b [", "c [") {
		t.Fatalf("expected key order a, b, c: %s", out)
	}
	if !strings.Contains(out, "Sort: key asc") {
		t.Fatalf("expected settings summary: %s", out)
	}
}

func TestViewResortsByValue(t *testing.T) {
	m := newTestModel(t, []string{"a", "c", "c", "b"})
	press(m, "v")
	press(m, "r")
	if m.Config().Sort != model.SortByValue || !m.Config().Reverse {
		t.Fatalf("unexpected config: %+v", m.Config())
	}
	out := m.View()
	if !rowBefore(out, "c [", "a [") {
		t.Fatalf("expected c first when sorted by value desc: %s", out)
	}
	if !strings.Contains(out, "Sort: value desc") {
		t.Fatalf("expected updated summary: %s", out)
	}
}

func TestViewTogglesPercentage(t *testing.T) {
	m := newTestModel(t, []string{"a", "b"})
	press(m, "p")
	if !strings.Contains(m.View(), "(50.00%)") {
		t.Fatalf("expected percentages after toggle: %s", m.View())
	}
	press(m, "p")
	if strings.Contains(m.View(), "%)") {
		t.Fatalf("expected percentages hidden after second toggle")
	}
}

func TestViewNumericSortErrorKeepsPrevious(t *testing.T) {
	m := newTestModel(t, []string{"10", "x"})
	press(m, "n")
	if m.Config().Numeric {
		t.Fatalf("expected numeric sort to be rolled back")
	}
	out := m.View()
	if !strings.Contains(out, "not a number") {
		t.Fatalf("expected error in footer: %s", out)
	}
	press(m, "v")
	if strings.Contains(m.View(), "not a number") {
		t.Fatalf("expected error cleared after a successful change")
	}
}

func TestNewModelFailsOnBadNumericSort(t *testing.T) {
	c, err := chart.Build(input.FromStrings([]string{"x"}), model.CountLines)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	cfg := model.DefaultConfig()
	cfg.Numeric = true
	if _, err := NewModel(c, cfg, chart.RenderOptions{}); err == nil {
		t.Fatalf("expected error for non-numeric key")
	}
}

func TestViewQuit(t *testing.T) {
	m := newTestModel(t, []string{"a"})
	cmd := press(m, "q")
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func TestViewEmptyBeforeResize(t *testing.T) {
	c, err := chart.Build(input.FromStrings([]string{"a"}), model.CountLines)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	m, err := NewModel(c, model.DefaultConfig(), chart.RenderOptions{})
	if err != nil {
		t.Fatalf("NewModel failed: %v", err)
	}
	if m.View() != "" {
		t.Fatalf("expected empty view before the first resize")
	}
}

func TestViewErrorFooterFitsWideKeys(t *testing.T) {
	m := newTestModel(t, []string{"中文中文中文"})
	m.Update(tea.WindowSizeMsg{Width: 20, Height: 8})
	press(m, "n")
	lines := strings.Split(m.View(), "\n")
	footer := lines[len(lines)-1]
	if !strings.Contains(footer, "...") {
		t.Fatalf("expected truncated error footer, got %q", footer)
	}
	if w := lipgloss.Width(footer); w > 20 {
		t.Fatalf("expected footer within 20 columns, got %d: %q", w, footer)
	}
}

func TestTruncateLineUsesDisplayWidth(t *testing.T) {
	cases := []struct {
		in    string
		width int
		want  string
	}{
		{in: "abc", width: 5, want: "abc"},
		{in: "中文中文", width: 8, want: "中文中文"},
		{in: "中文中文", width: 7, want: "中文..."},
		{in: "中文中文", width: 6, want: "中..."},
		{in: "a中", width: 2, want: "a"},
	}
	for _, tc := range cases {
		got := truncateLine(tc.in, tc.width)
		if got != tc.want {
			t.Fatalf("truncateLine(%q, %d): expected %q, got %q", tc.in, tc.width, tc.want, got)
		}
		if w := chart.DisplayWidth(got); w > tc.width {
			t.Fatalf("truncateLine(%q, %d): width %d exceeds limit", tc.in, tc.width, w)
		}
	}
}
