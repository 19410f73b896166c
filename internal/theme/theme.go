// Package theme resolves the rendered light/dark theme from an explicit
// preference and the system signal.
package theme

import (
	"fmt"
	"strings"
)

// Mode is the user-facing theme preference.
type Mode string

const (
	ModeLight Mode = "light"
	ModeDark  Mode = "dark"
	ModeAuto  Mode = "auto"
)

// Theme is a concrete, rendered theme. It is never auto.
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// Opposite returns the other concrete theme.
func (t Theme) Opposite() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

// Mode returns the explicit mode that renders t.
func (t Theme) Mode() Mode {
	return Mode(t)
}

// ParseMode converts user input into a Mode.
func ParseMode(value string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(value))) {
	case ModeLight:
		return ModeLight, nil
	case ModeDark:
		return ModeDark, nil
	case ModeAuto, "":
		return ModeAuto, nil
	default:
		return "", fmt.Errorf("unknown theme mode %q", value)
	}
}

// Resolve collapses mode against the system preference.
func Resolve(mode Mode, system Theme) Theme {
	switch mode {
	case ModeLight:
		return Light
	case ModeDark:
		return Dark
	default:
		if system == Dark {
			return Dark
		}
		return Light
	}
}
