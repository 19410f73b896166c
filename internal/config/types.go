package config

import (
	"github.com/alexisbeaulieu97/tablepick/internal/layout"
	"github.com/alexisbeaulieu97/tablepick/internal/theme"
)

// Defaults for runtime settings that live outside LayoutConfig.
const (
	DefaultPixelsPerColumn = 8
	DefaultLogLevel        = "info"
)

// File is the on-disk picker configuration. Nil fields are unset and fall
// back to defaults. Numeric layout values are never rejected here; they are
// clamped by layout.Validate.
type File struct {
	Rows        *int    `yaml:"rows,omitempty"`
	Cols        *int    `yaml:"cols,omitempty"`
	MaxRows     *int    `yaml:"max_rows,omitempty"`
	MaxCols     *int    `yaml:"max_cols,omitempty"`
	CellSize    *int    `yaml:"cell_size,omitempty"`
	MinCellSize *int    `yaml:"min_cell_size,omitempty"`
	ShowFooter  *bool   `yaml:"show_footer,omitempty"`
	Theme       *string `yaml:"theme,omitempty" validate:"omitempty,theme_mode"`
	Expandable  *bool   `yaml:"expandable,omitempty"`
	Responsive  *bool   `yaml:"responsive,omitempty"`
	AriaLabel   *string `yaml:"aria_label,omitempty" validate:"omitempty,max=200"`

	ShrinkThreshold *int    `yaml:"shrink_threshold,omitempty" validate:"omitempty,min=0,max=20"`
	Touch           *bool   `yaml:"touch,omitempty"`
	PixelsPerColumn *int    `yaml:"pixels_per_column,omitempty" validate:"omitempty,min=1,max=64"`
	LogLevel        *string `yaml:"log_level,omitempty" validate:"omitempty,log_level"`
}

// Runtime holds the settings that drive the host rather than the grid.
type Runtime struct {
	ShrinkThreshold int    `yaml:"shrink_threshold"`
	Touch           bool   `yaml:"touch"`
	PixelsPerColumn int    `yaml:"pixels_per_column"`
	LogLevel        string `yaml:"log_level"`
}

// Partial converts the layout keys into a layout.Partial.
func (f *File) Partial() layout.Partial {
	if f == nil {
		return layout.Partial{}
	}
	p := layout.Partial{
		Rows:        f.Rows,
		Cols:        f.Cols,
		MaxRows:     f.MaxRows,
		MaxCols:     f.MaxCols,
		CellSize:    f.CellSize,
		MinCellSize: f.MinCellSize,
		ShowFooter:  f.ShowFooter,
		Expandable:  f.Expandable,
		Responsive:  f.Responsive,
		AriaLabel:   f.AriaLabel,
	}
	if f.Theme != nil {
		if mode, err := theme.ParseMode(*f.Theme); err == nil {
			p.Theme = &mode
		}
	}
	return p
}

// Layout returns the clamped layout configuration.
func (f *File) Layout() layout.LayoutConfig {
	return layout.Validate(f.Partial())
}

// Runtime returns the host settings with defaults applied.
func (f *File) Runtime() Runtime {
	rt := Runtime{
		ShrinkThreshold: layout.DefaultShrinkThreshold,
		PixelsPerColumn: DefaultPixelsPerColumn,
		LogLevel:        DefaultLogLevel,
	}
	if f == nil {
		return rt
	}
	if f.ShrinkThreshold != nil {
		rt.ShrinkThreshold = *f.ShrinkThreshold
	}
	if f.Touch != nil {
		rt.Touch = *f.Touch
	}
	if f.PixelsPerColumn != nil {
		rt.PixelsPerColumn = *f.PixelsPerColumn
	}
	if f.LogLevel != nil {
		rt.LogLevel = *f.LogLevel
	}
	return rt
}

// Merge returns a copy of f with every non-nil field of override applied.
func (f *File) Merge(override *File) *File {
	out := File{}
	if f != nil {
		out = *f
	}
	if override == nil {
		return &out
	}
	setIf(&out.Rows, override.Rows)
	setIf(&out.Cols, override.Cols)
	setIf(&out.MaxRows, override.MaxRows)
	setIf(&out.MaxCols, override.MaxCols)
	setIf(&out.CellSize, override.CellSize)
	setIf(&out.MinCellSize, override.MinCellSize)
	setIf(&out.ShowFooter, override.ShowFooter)
	setIf(&out.Theme, override.Theme)
	setIf(&out.Expandable, override.Expandable)
	setIf(&out.Responsive, override.Responsive)
	setIf(&out.AriaLabel, override.AriaLabel)
	setIf(&out.ShrinkThreshold, override.ShrinkThreshold)
	setIf(&out.Touch, override.Touch)
	setIf(&out.PixelsPerColumn, override.PixelsPerColumn)
	setIf(&out.LogLevel, override.LogLevel)
	return &out
}

func setIf[T any](dst **T, src *T) {
	if src != nil {
		v := *src
		*dst = &v
	}
}
