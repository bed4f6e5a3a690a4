// Package view provides the Bubble Tea chart pager.
package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/barchart/internal/chart"
	"github.com/verte-zerg/barchart/internal/model"
)

var (
	legendStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
)

type keyMap struct {
	SortKey   key.Binding
	SortValue key.Binding
	Numeric   key.Binding
	Reverse   key.Binding
	Percent   key.Binding
	Top       key.Binding
	Bottom    key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		SortKey:   key.NewBinding(key.WithKeys("k"), key.WithHelp("k", "by key")),
		SortValue: key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "by value")),
		Numeric:   key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "numeric")),
		Reverse:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reverse")),
		Percent:   key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "percent")),
		Top:       key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "top")),
		Bottom:    key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "bottom")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.SortKey, k.SortValue, k.Numeric, k.Reverse, k.Percent, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.SortKey, k.SortValue, k.Numeric, k.Reverse},
		{k.Percent, k.Top, k.Bottom, k.Quit},
	}
}

// Model implements the Bubble Tea chart pager.
type Model struct {
	chart *chart.Chart
	cfg   model.Config
	opts  chart.RenderOptions

	legend   string
	rowCount int
	viewport viewport.Model
	help     help.Model
	keys     keyMap
	errMsg   string

	width  int
	height int
}

// NewModel renders c with cfg and wraps it in a pager. It fails when the
// initial render does, e.g. numeric sorting of non-numeric keys.
func NewModel(c *chart.Chart, cfg model.Config, opts chart.RenderOptions) (*Model, error) {
	m := &Model{
		chart:    c,
		cfg:      cfg,
		opts:     opts,
		viewport: viewport.New(0, 0),
		help:     help.New(),
		keys:     defaultKeyMap(),
	}
	if err := m.refresh(); err != nil {
		return nil, err
	}
	return m, nil
}

// Config returns the settings currently applied.
func (m *Model) Config() model.Config {
	return m.cfg
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.updateLayout()
		return m, nil
	case tea.KeyMsg:
		next := m.cfg
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.SortKey):
			next.Sort = model.SortByKey
		case key.Matches(msg, m.keys.SortValue):
			next.Sort = model.SortByValue
		case key.Matches(msg, m.keys.Numeric):
			next.Sort = model.SortByKey
			next.Numeric = !next.Numeric
		case key.Matches(msg, m.keys.Reverse):
			next.Reverse = !next.Reverse
		case key.Matches(msg, m.keys.Percent):
			next.Percentage = !next.Percentage
		case key.Matches(msg, m.keys.Top):
			m.viewport.GotoTop()
			return m, nil
		case key.Matches(msg, m.keys.Bottom):
			m.viewport.GotoBottom()
			return m, nil
		default:
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
		m.apply(next)
		return m, nil
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	headerHeight, bodyHeight, footerHeight := m.layoutHeights()
	header := fitLines(m.renderHeader(), m.width, headerHeight)
	body := fitLines(m.viewport.View(), m.width, bodyHeight)
	footer := fitLines(m.renderFooter(), m.width, footerHeight)
	return strings.Join([]string{header, body, footer}, "\n")
}

func (m *Model) apply(next model.Config) {
	prev := m.cfg
	m.cfg = next
	if err := m.refresh(); err != nil {
		m.cfg = prev
		m.errMsg = err.Error()
		m.updateLayout()
		return
	}
	m.errMsg = ""
	m.updateLayout()
}

func (m *Model) refresh() error {
	lines, err := m.chart.Lines(m.cfg, m.opts)
	if err != nil {
		return err
	}
	m.legend = lines[0]
	m.rowCount = len(lines) - 1
	m.viewport.SetContent(strings.Join(lines[1:], "\n"))
	return nil
}

func (m *Model) layoutHeights() (headerHeight, bodyHeight, footerHeight int) {
	headerHeight = 2
	footerHeight = 1
	if m.errMsg != "" {
		footerHeight++
	}
	bodyHeight = m.height - headerHeight - footerHeight
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	return headerHeight, bodyHeight, footerHeight
}

func (m *Model) updateLayout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	_, bodyHeight, _ := m.layoutHeights()
	m.viewport.Width = m.width
	m.viewport.Height = bodyHeight
}

func (m *Model) renderHeader() string {
	return legendStyle.Render(truncateLine(m.legend, m.width)) + "\n" +
		headerStyle.Render(truncateLine(m.settingsSummary(), m.width))
}

func (m *Model) settingsSummary() string {
	order := m.cfg.Sort.String()
	if m.cfg.Sort == model.SortByKey && m.cfg.Numeric {
		order = "key (numeric)"
	}
	direction := "asc"
	if m.cfg.Reverse {
		direction = "desc"
	}
	return fmt.Sprintf("Sort: %s %s  Rows: %d  Percent: %v", order, direction, m.rowCount, m.cfg.Percentage)
}

func (m *Model) renderFooter() string {
	helpView := m.help.View(m.keys)
	if m.errMsg != "" {
		return helpView + "\n" + errorStyle.Render(truncateLine(m.errMsg, m.width))
	}
	return helpView
}

func padLine(line string, width int) string {
	lineWidth := lipgloss.Width(line)
	if lineWidth < width {
		return line + strings.Repeat(" ", width-lineWidth)
	}
	return line
}

func fitLines(s string, width, height int) string {
	if width <= 0 || height <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = padLine(line, width)
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, strings.Repeat(" ", width))
	}
	return strings.Join(lines, "\n")
}

// truncateLine cuts s to width display columns, marking the cut with "...".
func truncateLine(s string, width int) string {
	if width <= 0 || chart.DisplayWidth(s) <= width {
		return s
	}
	if width <= 3 {
		return cutWidth(s, width)
	}
	return cutWidth(s, width-3) + "..."
}

func cutWidth(s string, width int) string {
	used := 0
	for i, r := range s {
		w := chart.RuneWidth(r)
		if used+w > width {
			return s[:i]
		}
		used += w
	}
	return s
}
