// Package ui renders FriCAS output for the terminal, coloring result
// lines and type annotations when the output is a TTY.
package ui

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	colorResult    = lipgloss.Color("76")  // green
	colorType      = lipgloss.Color("242") // gray
	colorError     = lipgloss.Color("196") // bright red
	colorWarning   = lipgloss.Color("214") // orange
	colorHighlight = lipgloss.Color("39")  // blue
)

// Styles for rendered engine output
var (
	resultStyle = lipgloss.NewStyle().
			Foreground(colorResult).
			Bold(true)

	typeStyle = lipgloss.NewStyle().
			Foreground(colorType)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorError).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(colorWarning)

	headerStyle = lipgloss.NewStyle().
			Foreground(colorHighlight).
			Bold(true)
)
