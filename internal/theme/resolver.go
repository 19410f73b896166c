package theme

// Resolver tracks the theme preference and the observed system preference.
// The zero value is not usable; call NewResolver.
type Resolver struct {
	mode     Mode
	system   Theme
	resolved Theme

	onChange func(Theme)
}

// NewResolver starts in auto mode against a light system preference.
func NewResolver() *Resolver {
	return &Resolver{
		mode:     ModeAuto,
		system:   Light,
		resolved: Light,
	}
}

// OnChange registers the callback fired whenever the resolved theme changes.
func (r *Resolver) OnChange(fn func(Theme)) {
	r.onChange = fn
}

// Mode returns the explicit preference.
func (r *Resolver) Mode() Mode {
	return r.mode
}

// SystemPreference returns the last observed system preference.
func (r *Resolver) SystemPreference() Theme {
	return r.system
}

// Resolved returns the theme that should be rendered.
func (r *Resolver) Resolved() Theme {
	return r.resolved
}

// SetMode updates the explicit preference. Unknown modes are treated as auto.
func (r *Resolver) SetMode(mode Mode) {
	switch mode {
	case ModeLight, ModeDark, ModeAuto:
	default:
		mode = ModeAuto
	}
	r.mode = mode
	r.recompute()
}

// SetSystemPreference records a new system signal.
func (r *Resolver) SetSystemPreference(system Theme) {
	if system != Dark {
		system = Light
	}
	r.system = system
	r.recompute()
}

// Toggle flips the rendered theme and pins the result as an explicit mode.
func (r *Resolver) Toggle() {
	r.SetMode(r.resolved.Opposite().Mode())
}

func (r *Resolver) recompute() {
	next := Resolve(r.mode, r.system)
	if next == r.resolved {
		return
	}
	r.resolved = next
	if r.onChange != nil {
		r.onChange(next)
	}
}
