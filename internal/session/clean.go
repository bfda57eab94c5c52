package session

import (
	"regexp"
	"strings"
)

// bannerStripPatterns identify known non-content lines in engine
// output: startup diagnostics, separators, and banner boilerplate.
// Matching decides inclusion only; the underlying block is never
// mutated. Order matches the original ruleset.
var bannerStripPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^Checking for foreign routines$`),
	regexp.MustCompile(`^FRICAS=.*$`),
	regexp.MustCompile(`^spad-lib=.*$`),
	regexp.MustCompile(`^foreign routines found$`),
	regexp.MustCompile(`^openServer result.*$`),
	regexp.MustCompile(`^\s*-{3,}\s*$`),
	regexp.MustCompile(`^\s*FriCAS Computer Algebra System\s*$`),
	regexp.MustCompile(`^\s*Version:.*$`),
	regexp.MustCompile(`^\s*Timestamp:.*$`),
	regexp.MustCompile(`^\s*Issue \)copyright.*$`),
	regexp.MustCompile(`^\s*Issue \)summary.*$`),
	regexp.MustCompile(`^\s*Issue \)quit.*$`),
}

// CleanBlock drops banner-pattern lines and blank lines from a response
// block, preserving all other lines verbatim and in order.
func CleanBlock(text string) string {
	var cleaned []string

	for _, line := range strings.Split(text, "\n") {
		if isBannerLine(line) {
			continue
		}

		if strings.TrimSpace(line) == "" {
			continue
		}

		cleaned = append(cleaned, strings.TrimRight(line, " \t\r"))
	}

	return strings.TrimSpace(strings.Join(cleaned, "\n"))
}

func isBannerLine(line string) bool {
	line = strings.TrimRight(line, "\r")
	for _, rx := range bannerStripPatterns {
		if rx.MatchString(line) {
			return true
		}
	}

	return false
}

// dropEcho removes the final line of a cleaned block when it is an
// exact echo of the submitted input, which some engine builds reprint
// before their result.
func dropEcho(text, line string) string {
	lines := strings.Split(text, "\n")
	if len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == strings.TrimSpace(line) {
		lines = lines[:len(lines)-1]
	}

	return strings.TrimSpace(strings.Join(lines, "\n"))
}
