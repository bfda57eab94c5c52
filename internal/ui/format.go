package ui

import (
	"regexp"
	"strings"
)

var (
	resultLinePattern = regexp.MustCompile(`^\s*\(\d+\)\s`)
	typeLinePattern   = regexp.MustCompile(`^\s*Type:\s`)
	errorLinePattern  = regexp.MustCompile(`(?i)^\s*(>>\s*)?error\b`)
	warnLinePattern   = regexp.MustCompile(`(?i)^\s*warning\b`)
)

// Palette renders engine output with optional ANSI coloring.
// A disabled palette passes everything through unchanged.
type Palette struct {
	enabled bool
}

// NewPalette creates a palette. When enabled is false every Render
// method returns its input verbatim.
func NewPalette(enabled bool) *Palette {
	return &Palette{enabled: enabled}
}

// Enabled reports whether this palette applies ANSI styling.
func (p *Palette) Enabled() bool {
	return p.enabled
}

// RenderOutput colors a cleaned FriCAS response line by line: numbered
// result lines green, Type annotations gray, errors red, warnings
// orange. Everything else is left untouched.
func (p *Palette) RenderOutput(text string) string {
	if !p.enabled || text == "" {
		return text
	}

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		switch {
		case resultLinePattern.MatchString(line):
			lines[i] = resultStyle.Render(line)
		case typeLinePattern.MatchString(line):
			lines[i] = typeStyle.Render(line)
		case errorLinePattern.MatchString(line):
			lines[i] = errorStyle.Render(line)
		case warnLinePattern.MatchString(line):
			lines[i] = warningStyle.Render(line)
		}
	}

	return strings.Join(lines, "\n")
}

// RenderVersion styles the identification lines printed by the
// version command.
func (p *Palette) RenderVersion(text string) string {
	if !p.enabled || text == "" {
		return text
	}

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = headerStyle.Render(line)
	}

	return strings.Join(lines, "\n")
}

// RenderError styles a CLI error message.
func (p *Palette) RenderError(msg string) string {
	if !p.enabled {
		return msg
	}

	return errorStyle.Render(msg)
}
