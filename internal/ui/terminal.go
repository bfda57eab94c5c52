package ui

import (
	"os"

	"golang.org/x/term"
)

// IsTerminal reports whether stdout is attached to a TTY.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// ShouldUseColor decides whether rendered engine output gets ANSI
// styling, honoring the NO_COLOR (https://no-color.org/), CLICOLOR and
// CLICOLOR_FORCE conventions. Piped output stays plain so results can
// be fed straight into another tool.
func ShouldUseColor() bool {
	// Any NO_COLOR value wins, even empty.
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		return false
	}

	if os.Getenv("CLICOLOR") == "0" {
		return false
	}

	// CLICOLOR_FORCE keeps styling on even without a TTY.
	if _, exists := os.LookupEnv("CLICOLOR_FORCE"); exists {
		return true
	}

	return IsTerminal()
}
