package engine

import (
	"strings"
)

const versionTitle = "FriCAS Computer Algebra System"

// ExtractVersion picks the identification lines out of a startup
// banner: the title line plus the Version: and Timestamp: lines that
// follow it. Advisory lines ("Issue )...") are dropped. Returns "" when
// the banner carries no recognizable identification.
func ExtractVersion(banner string) string {
	var lines []string

	for _, ln := range strings.Split(banner, "\n") {
		ln = strings.TrimSpace(ln)
		if ln == "" || strings.HasPrefix(ln, "Issue )") {
			continue
		}

		lines = append(lines, ln)
	}

	titleIdx := -1

	for i, ln := range lines {
		if strings.Contains(ln, versionTitle) {
			titleIdx = i

			break
		}
	}

	if titleIdx >= 0 {
		var pick []string

		// The core lines sit within a few lines of the title.
		end := min(titleIdx+6, len(lines))
		for _, ln := range lines[titleIdx:end] {
			if isVersionLine(ln) {
				pick = append(pick, ln)
			}
		}

		if len(pick) > 0 {
			return strings.Join(pick, "\n")
		}
	}

	// No title region: pick the first three identification lines
	// wherever they appear.
	var wanted []string

	for _, ln := range lines {
		if isVersionLine(ln) {
			wanted = append(wanted, ln)
			if len(wanted) == 3 {
				break
			}
		}
	}

	return strings.Join(wanted, "\n")
}

func isVersionLine(ln string) bool {
	return strings.Contains(ln, versionTitle) ||
		strings.HasPrefix(ln, "Version:") ||
		strings.HasPrefix(ln, "Timestamp:")
}
