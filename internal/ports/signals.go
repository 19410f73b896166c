package ports

// ViewportSignal reports the host viewport size in pixels.
type ViewportSignal interface {
	Viewport() (width, height int)
}

// SystemThemeSignal reports whether the host environment prefers a dark
// theme.
type SystemThemeSignal interface {
	PrefersDark() bool
}
