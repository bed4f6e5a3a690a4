// Package main provides the CLI entrypoint for barchart.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rivo/uniseg"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/barchart/internal/chart"
	"github.com/verte-zerg/barchart/internal/config"
	"github.com/verte-zerg/barchart/internal/input"
	"github.com/verte-zerg/barchart/internal/model"
	"github.com/verte-zerg/barchart/internal/view"
)

const (
	colorAuto   = "auto"
	colorAlways = "always"
	colorNever  = "never"
)

// errNoInput is returned when stdin is a terminal and no file was given.
// Usage has already been printed when it is returned.
var errNoInput = errors.New("no input")

var (
	chartAggValueKey bool
	chartAggKeyValue bool
	chartSortKeys    bool
	chartSortValues  bool
	chartReverse     bool
	chartNumeric     bool
	chartPercentage  bool
	chartLines       int
	chartMaxKeyWidth int
	chartDot         string
	chartEncoding    string
	chartColor       string
	chartBarColor    string
	chartInteractive bool
	chartVerbose     bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errNoInput) {
			logErrf("Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "barchart [flags] [file]",
		Short: "Generate an ASCII bar chart for input data",
		Example: `  cut -d' ' -f1 access.log | barchart -v -r -l 10
  sort data | uniq -c | barchart -a -p`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runChartCmd,
	}

	flags := rootCmd.Flags()
	flags.BoolVarP(&chartAggValueKey, "agg", "a", false, "two column input format, space separated with value<space>key")
	flags.BoolVarP(&chartAggKeyValue, "agg-key-value", "A", false, "two column input format, space separated with key<space>value")
	flags.BoolVarP(&chartSortKeys, "sort-keys", "k", true, "sort by the key")
	flags.BoolVarP(&chartSortValues, "sort-values", "v", false, "sort by the frequency")
	flags.BoolVarP(&chartReverse, "reverse-sort", "r", false, "reverse the sort")
	flags.BoolVarP(&chartNumeric, "numeric-sort", "n", false, "sort keys by numeric sequencing")
	flags.BoolVarP(&chartPercentage, "percentage", "p", false, "list percentage for each bar")
	flags.IntVarP(&chartLines, "lines", "l", 0, "limit output to N rows (0 = all)")
	flags.IntVar(&chartMaxKeyWidth, "max-key-width", model.DefaultMaxKeyWidth, "maximum display width of the key column")
	flags.StringVar(&chartDot, "dot", model.DefaultDot, "bar symbol")
	flags.StringVar(&chartEncoding, "encoding", model.DefaultEncoding, "input character encoding (IANA name)")
	flags.StringVar(&chartColor, "color", colorAuto, "colorize bars: auto, always or never")
	flags.StringVar(&chartBarColor, "bar-color", chart.DefaultBarColor, "bar color (hex or ANSI number)")
	flags.BoolVarP(&chartInteractive, "interactive", "i", false, "browse the chart in an interactive view")
	flags.BoolVar(&chartVerbose, "verbose", false, "log debug details to stderr")
	rootCmd.MarkFlagsMutuallyExclusive("agg", "agg-key-value")

	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func runChartCmd(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd.ErrOrStderr(), chartVerbose)

	configPath := config.DefaultConfigPath()
	fileCfg, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := applyFileConfig(cmd, fileCfg.Chart); err != nil {
		return err
	}

	cfg := resolveConfig()
	if err := validateConfig(cfg, chartColor); err != nil {
		return err
	}
	logger.Debug("config resolved",
		slog.String("path", configPath),
		slog.String("mode", cfg.Mode.String()),
		slog.String("sort", cfg.Sort.String()),
		slog.Bool("reverse", cfg.Reverse),
		slog.Bool("numeric", cfg.Numeric),
		slog.Int("lines", cfg.Lines),
		slog.Int("max_key_width", cfg.MaxKeyWidth),
		slog.String("encoding", cfg.Encoding),
	)

	in, closeInput, err := openInput(cmd, args)
	if err != nil {
		if errors.Is(err, errNoInput) {
			if uerr := cmd.Usage(); uerr != nil {
				return uerr
			}
			logErrln("for more help use --help")
		}
		return err
	}
	defer closeInput()

	reader, err := input.NewReader(in, cfg.Encoding)
	if err != nil {
		return err
	}
	c, err := chart.Build(reader.Lines(), cfg.Mode)
	if rerr := reader.Err(); rerr != nil {
		return rerr
	}
	if err != nil {
		return err
	}
	scale := chart.ComputeScale(c.Entries(), cfg.MaxKeyWidth)
	logger.Debug("input aggregated",
		slog.Int("keys", len(c.Entries())),
		slog.String("total", c.Total().String()),
		slog.Bool("fractional", c.Fractional()),
		slog.Int("key_width", scale.KeyWidth),
		slog.String("scale", scale.Factor.String()),
	)

	if chartInteractive {
		return runInteractive(c, cfg)
	}

	out := cmd.OutOrStdout()
	opts := chart.RenderOptions{Bar: barDecorator(out, chartColor, chartBarColor)}
	if err := c.Render(out, cfg, opts); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}

func runInteractive(c *chart.Chart, cfg model.Config) error {
	opts := chart.RenderOptions{Bar: barDecorator(os.Stdout, chartColor, chartBarColor)}
	m, err := view.NewModel(c, cfg, opts)
	if err != nil {
		return err
	}
	program := tea.NewProgram(m, tea.WithAltScreen(), tea.WithInputTTY())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run chart view: %w", err)
	}
	return nil
}

func openInput(cmd *cobra.Command, args []string) (io.Reader, func(), error) {
	if len(args) == 1 && args[0] != "-" {
		file, err := os.Open(args[0])
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open input: %w", err)
		}
		return file, func() {
			if cerr := file.Close(); cerr != nil {
				// Best-effort close for read-only input.
				_ = cerr
			}
		}, nil
	}
	in := cmd.InOrStdin()
	if file, ok := in.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		return nil, nil, errNoInput
	}
	return in, func() {}, nil
}

func barDecorator(w io.Writer, mode, color string) func(string) string {
	switch mode {
	case colorAlways:
		return chart.ColorBars(w, color, true)
	case colorNever:
		return nil
	}
	if os.Getenv("NO_COLOR") != "" {
		return nil
	}
	file, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(file.Fd())) {
		return nil
	}
	return chart.ColorBars(w, color, false)
}

func resolveConfig() model.Config {
	cfg := model.DefaultConfig()
	switch {
	case chartAggValueKey:
		cfg.Mode = model.ValueKey
	case chartAggKeyValue:
		cfg.Mode = model.KeyValue
	}
	if chartSortValues {
		cfg.Sort = model.SortByValue
	}
	cfg.Reverse = chartReverse
	cfg.Numeric = chartNumeric
	cfg.Percentage = chartPercentage
	cfg.Lines = chartLines
	cfg.MaxKeyWidth = chartMaxKeyWidth
	cfg.Dot = chartDot
	cfg.Encoding = chartEncoding
	return cfg
}

func validateConfig(cfg model.Config, color string) error {
	if cfg.Lines < 0 {
		return fmt.Errorf("--lines must be >= 0")
	}
	if cfg.MaxKeyWidth <= 0 {
		return fmt.Errorf("--max-key-width must be > 0")
	}
	if uniseg.GraphemeClusterCount(cfg.Dot) != 1 {
		return fmt.Errorf("--dot must be a single character, got %q", cfg.Dot)
	}
	switch color {
	case colorAuto, colorAlways, colorNever:
	default:
		return fmt.Errorf("--color must be one of auto, always, never")
	}
	return nil
}

func applyFileConfig(cmd *cobra.Command, fc config.ChartConfig) error {
	if err := applyModeConfig(cmd, fc.Mode); err != nil {
		return err
	}
	if err := applySortConfig(cmd, fc.Sort); err != nil {
		return err
	}
	applyBoolConfig(cmd, "reverse-sort", &chartReverse, fc.Reverse)
	applyBoolConfig(cmd, "numeric-sort", &chartNumeric, fc.Numeric)
	applyBoolConfig(cmd, "percentage", &chartPercentage, fc.Percentage)
	applyIntConfig(cmd, "lines", &chartLines, fc.Lines)
	applyIntConfig(cmd, "max-key-width", &chartMaxKeyWidth, fc.MaxKeyWidth)
	applyStringConfig(cmd, "dot", &chartDot, fc.Dot)
	applyStringConfig(cmd, "encoding", &chartEncoding, fc.Encoding)
	applyStringConfig(cmd, "color", &chartColor, fc.Color)
	applyStringConfig(cmd, "bar-color", &chartBarColor, fc.BarColor)
	return nil
}

func applyModeConfig(cmd *cobra.Command, value *string) error {
	if value == nil {
		return nil
	}
	if cmd.Flags().Changed("agg") || cmd.Flags().Changed("agg-key-value") {
		return nil
	}
	switch strings.ToLower(strings.TrimSpace(*value)) {
	case "", "count":
	case "value-key":
		chartAggValueKey = true
	case "key-value":
		chartAggKeyValue = true
	default:
		return fmt.Errorf("invalid mode %q in config (want count, key-value or value-key)", *value)
	}
	return nil
}

func applySortConfig(cmd *cobra.Command, value *string) error {
	if value == nil {
		return nil
	}
	if cmd.Flags().Changed("sort-keys") || cmd.Flags().Changed("sort-values") {
		return nil
	}
	switch strings.ToLower(strings.TrimSpace(*value)) {
	case "", "key":
		chartSortValues = false
	case "value":
		chartSortValues = true
	default:
		return fmt.Errorf("invalid sort %q in config (want key or value)", *value)
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# barchart configuration
# Uncomment a value to enable it. CLI flags override config values.

[chart]
# mode = "count"          # count, key-value or value-key
# sort = "key"            # key or value
# reverse = false         # Reverse the sort
# numeric = false         # Sort keys numerically
# percentage = false      # Show each row's share of the total
# lines = 0               # Maximum rows (0 = all)
# max-key-width = %d      # Maximum display width of the key column
# dot = %q               # Bar symbol
# encoding = %q       # Input character encoding
# color = %q          # auto, always or never
# bar-color = %q    # Bar color
`,
		model.DefaultMaxKeyWidth,
		model.DefaultDot,
		model.DefaultEncoding,
		colorAuto,
		chart.DefaultBarColor,
	)
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

func logErrln(args ...any) {
	if _, err := fmt.Fprintln(os.Stderr, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
