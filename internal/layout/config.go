package layout

import "github.com/alexisbeaulieu97/tablepick/internal/theme"

// Bounds applied by Validate.
const (
	MinGridSize     = 3
	MaxGridSize     = 20
	MinCellSize     = 20
	MaxCellSize     = 40
	MinMinCellSize  = 16
	DefaultRows     = 10
	DefaultCols     = 10
	DefaultCellSize = 24
	DefaultMinCell  = 20

	DefaultAriaLabel = "Table layout selector"
)

// LayoutConfig is a complete, bounded picker configuration.
type LayoutConfig struct {
	Rows        int        `json:"rows" yaml:"rows"`
	Cols        int        `json:"cols" yaml:"cols"`
	MaxRows     int        `json:"max_rows" yaml:"max_rows"`
	MaxCols     int        `json:"max_cols" yaml:"max_cols"`
	CellSize    int        `json:"cell_size" yaml:"cell_size"`
	MinCellSize int        `json:"min_cell_size" yaml:"min_cell_size"`
	ShowFooter  bool       `json:"show_footer" yaml:"show_footer"`
	Theme       theme.Mode `json:"theme" yaml:"theme"`
	Expandable  bool       `json:"expandable" yaml:"expandable"`
	Responsive  bool       `json:"responsive" yaml:"responsive"`
	AriaLabel   string     `json:"aria_label" yaml:"aria_label"`
}

// Initial returns the configured starting extent.
func (c LayoutConfig) Initial() GridDimensions {
	return GridDimensions{Rows: c.Rows, Cols: c.Cols}
}

// Limit returns the configured maximum extent.
func (c LayoutConfig) Limit() GridDimensions {
	return GridDimensions{Rows: c.MaxRows, Cols: c.MaxCols}
}

// Partial is a configuration where nil fields fall back to defaults.
type Partial struct {
	Rows        *int
	Cols        *int
	MaxRows     *int
	MaxCols     *int
	CellSize    *int
	MinCellSize *int
	ShowFooter  *bool
	Theme       *theme.Mode
	Expandable  *bool
	Responsive  *bool
	AriaLabel   *string
}

// Validate applies defaults and clamps every value into range. It never
// rejects input.
func Validate(p Partial) LayoutConfig {
	rows := clamp(intOr(p.Rows, DefaultRows), MinGridSize, MaxGridSize)
	cols := clamp(intOr(p.Cols, DefaultCols), MinGridSize, MaxGridSize)

	mode := theme.ModeAuto
	if p.Theme != nil {
		switch *p.Theme {
		case theme.ModeLight, theme.ModeDark, theme.ModeAuto:
			mode = *p.Theme
		}
	}

	return LayoutConfig{
		Rows:        rows,
		Cols:        cols,
		MaxRows:     max(rows, min(MaxGridSize, intOr(p.MaxRows, MaxGridSize))),
		MaxCols:     max(cols, min(MaxGridSize, intOr(p.MaxCols, MaxGridSize))),
		CellSize:    clamp(intOr(p.CellSize, DefaultCellSize), MinCellSize, MaxCellSize),
		MinCellSize: max(MinMinCellSize, intOr(p.MinCellSize, DefaultMinCell)),
		ShowFooter:  boolOr(p.ShowFooter, true),
		Theme:       mode,
		Expandable:  boolOr(p.Expandable, true),
		Responsive:  boolOr(p.Responsive, true),
		AriaLabel:   stringOr(p.AriaLabel, DefaultAriaLabel),
	}
}

// Int returns a pointer to v for building a Partial.
func Int(v int) *int { return &v }

// Bool returns a pointer to v for building a Partial.
func Bool(v bool) *bool { return &v }

// String returns a pointer to v for building a Partial.
func String(v string) *string { return &v }

// ThemeMode returns a pointer to v for building a Partial.
func ThemeMode(v theme.Mode) *theme.Mode { return &v }

func intOr(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

func stringOr(v *string, def string) string {
	if v == nil {
		return def
	}
	return *v
}
