package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/tablepick/internal/config"
	"github.com/alexisbeaulieu97/tablepick/internal/gate"
	"github.com/alexisbeaulieu97/tablepick/internal/gesture"
	"github.com/alexisbeaulieu97/tablepick/internal/layout"
	"github.com/alexisbeaulieu97/tablepick/internal/ports"
	"github.com/alexisbeaulieu97/tablepick/internal/tui"
	"github.com/alexisbeaulieu97/tablepick/internal/watch"
)

// errCancelled is returned when the picker exits without a selection.
var errCancelled = errors.New("selection cancelled")

type pickFlags struct {
	rows            int
	cols            int
	maxRows         int
	maxCols         int
	theme           string
	shrinkThreshold int
	pixelsPerColumn int
	touch           bool
	noExpand        bool
	noFooter        bool
	keepOpen        bool
	watch           bool
	output          string
}

type pickOptions struct {
	File       *config.File
	Overrides  *config.File
	ConfigPath string
	KeepOpen   bool
	Watch      bool
	Output     string
	LogFile    string
}

var pickCmdRunner = runPick

func newPickCmd(root *rootFlags) *cobra.Command {
	flags := &pickFlags{}

	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Run the interactive picker and print the chosen size",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := resolvePickOptions(cmd, root, flags)
			if err != nil {
				return err
			}
			// The picker draws on stderr so stdout stays free for the result.
			if !isTerminal(os.Stdin) || !isTerminal(os.Stderr) {
				return fmt.Errorf("tablepick needs an interactive terminal on stdin and stderr")
			}
			return pickCmdRunner(cmd.Context(), opts, cmd.OutOrStdout())
		},
	}

	f := cmd.Flags()
	f.IntVar(&flags.rows, "rows", layout.DefaultRows, "Initial number of rows")
	f.IntVar(&flags.cols, "cols", layout.DefaultCols, "Initial number of columns")
	f.IntVar(&flags.maxRows, "max-rows", layout.MaxGridSize, "Maximum number of rows")
	f.IntVar(&flags.maxCols, "max-cols", layout.MaxGridSize, "Maximum number of columns")
	f.StringVar(&flags.theme, "theme", "auto", "Theme: light, dark or auto")
	f.IntVar(&flags.shrinkThreshold, "shrink-threshold", layout.DefaultShrinkThreshold, "Cells the pointer must retreat before the grid shrinks")
	f.IntVar(&flags.pixelsPerColumn, "pixels-per-column", config.DefaultPixelsPerColumn, "Pixel width assumed for one terminal column")
	f.BoolVar(&flags.touch, "touch", false, "Treat mouse press/drag/release as touch gestures")
	f.BoolVar(&flags.noExpand, "no-expand", false, "Keep the grid at its initial size")
	f.BoolVar(&flags.noFooter, "no-footer", false, "Hide the selection footer")
	f.BoolVar(&flags.keepOpen, "keep-open", false, "Keep the picker open after a selection")
	f.BoolVar(&flags.watch, "watch", false, "Reload the config file when it changes")
	f.StringVarP(&flags.output, "output", "o", "text", "Output format: text, json or yaml")

	return cmd
}

// resolvePickOptions loads the config file, then layers explicitly set flags
// on top of it.
func resolvePickOptions(cmd *cobra.Command, root *rootFlags, flags *pickFlags) (pickOptions, error) {
	if err := validateOutputFormat(flags.output); err != nil {
		return pickOptions{}, err
	}
	if flags.watch && root.configPath == "" {
		return pickOptions{}, fmt.Errorf("--watch requires --config")
	}

	file, err := loadConfigFile(root.configPath)
	if err != nil {
		return pickOptions{}, err
	}

	changed := cmd.Flags().Changed
	override := &config.File{}
	if changed("rows") {
		override.Rows = &flags.rows
	}
	if changed("cols") {
		override.Cols = &flags.cols
	}
	if changed("max-rows") {
		override.MaxRows = &flags.maxRows
	}
	if changed("max-cols") {
		override.MaxCols = &flags.maxCols
	}
	if changed("theme") {
		override.Theme = &flags.theme
	}
	if changed("shrink-threshold") {
		override.ShrinkThreshold = &flags.shrinkThreshold
	}
	if changed("pixels-per-column") {
		override.PixelsPerColumn = &flags.pixelsPerColumn
	}
	if changed("touch") {
		override.Touch = &flags.touch
	}
	if changed("no-expand") {
		expandable := !flags.noExpand
		override.Expandable = &expandable
	}
	if changed("no-footer") {
		footer := !flags.noFooter
		override.ShowFooter = &footer
	}
	if root.logLevel != "" {
		override.LogLevel = &root.logLevel
	}

	merged := file.Merge(override)
	if err := config.Validate(merged); err != nil {
		return pickOptions{}, err
	}

	return pickOptions{
		File:       merged,
		Overrides:  override,
		ConfigPath: root.configPath,
		KeepOpen:   flags.keepOpen,
		Watch:      flags.watch,
		Output:     flags.output,
		LogFile:    root.logFile,
	}, nil
}

func loadConfigFile(path string) (*config.File, error) {
	if path == "" {
		return &config.File{}, nil
	}
	return config.ParseFile(path)
}

func runPick(ctx context.Context, opts pickOptions, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	rt := opts.File.Runtime()
	log, closeLog, err := openLogger(opts.LogFile, rt.LogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, _ = ports.NewSession(ctx)
	cfg := opts.File.Layout()
	log.Info(ctx, "starting picker", "rows", cfg.Rows, "cols", cfg.Cols, "max_rows", cfg.MaxRows, "max_cols", cfg.MaxCols, "touch", rt.Touch)

	// Styles and background detection follow the stream the UI is drawn on.
	lipgloss.SetDefaultRenderer(lipgloss.NewRenderer(os.Stderr))

	var haptics ports.Haptics = gesture.NoHaptics{}
	if rt.Touch {
		haptics = gesture.NewBellHaptics(os.Stderr, ports.HapticMedium.Duration())
	}

	model := tui.NewModel(tui.Options{
		Layout:          cfg,
		Runtime:         rt,
		KeepOpen:        opts.KeepOpen,
		Haptics:         haptics,
		Logger:          log,
		DetectSystem:    tui.DetectBackground,
		ResizeDebouncer: gate.NewDebouncer(gate.DefaultDebounceDuration),
	})

	program := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithOutput(os.Stderr),
		tea.WithContext(ctx),
	)

	if opts.Watch {
		w := watch.New(opts.ConfigPath, 0, log, func(f *config.File) {
			program.Send(tui.ConfigReloadedMsg{File: f.Merge(opts.Overrides)})
		})
		go func() {
			if err := w.Run(ctx); err != nil {
				log.Warn(ctx, "config watcher stopped", "error", err)
			}
		}()
	}

	final, err := program.Run()
	if err != nil {
		log.Error(ctx, "picker failed", "error", err)
		return fmt.Errorf("run picker: %w", err)
	}

	result, ok := final.(tui.Model)
	if !ok {
		return fmt.Errorf("unexpected model type %T", final)
	}
	sel, ok := result.Selection()
	if !ok {
		log.Info(ctx, "picker cancelled")
		return errCancelled
	}

	log.Info(ctx, "picker finished", "rows", sel.Rows, "cols", sel.Cols)
	return writeSelection(out, opts.Output, sel)
}

func isTerminal(f *os.File) bool {
	return termIsTerminal(int(f.Fd()))
}

var termIsTerminal = func(fd int) bool {
	return term.IsTerminal(fd)
}
