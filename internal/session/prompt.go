package session

import (
	"regexp"
	"strings"
)

// promptPattern recognizes the engine's numbered prompt, e.g. "(3) -> ",
// anchored to the end of the tested window. The prompt may arrive
// without a trailing newline, so it is matched against the buffer tail,
// never line by line. This is the single hardcoded protocol contract
// between driver and engine.
var promptPattern = regexp.MustCompile(`\(\d+\)\s*->\s*$`)

// trailingPromptPattern strips the delimiting prompt from the very end
// of a response block. Same shape as promptPattern but tolerant of
// trailing spaces only, so real content is never eaten.
var trailingPromptPattern = regexp.MustCompile(`\(\d+\)\s*->[ \t]*$`)

// StripTrailingPrompt removes a prompt marker from the end of a block,
// if present. Stripping twice equals stripping once.
func StripTrailingPrompt(text string) string {
	text = strings.TrimRight(text, " \t\r\n")

	return strings.TrimRight(trailingPromptPattern.ReplaceAllString(text, ""), " \t\r\n")
}

// tailBuffer retains only the last max bytes of the output stream for
// prompt matching. The full stream is never kept here; per-request
// collection happens in the prompt-wait accumulator. Bounding the tail
// keeps memory constant in arbitrarily long sessions.
type tailBuffer struct {
	buf    []byte
	max    int
	window int
}

func newTailBuffer(window int) *tailBuffer {
	// Retain a few windows so a prompt split across chunk boundaries is
	// still visible after trimming.
	return &tailBuffer{
		buf:    make([]byte, 0, 4*window),
		max:    4 * window,
		window: window,
	}
}

// write appends p, trimming the front so the buffer never exceeds max.
func (b *tailBuffer) write(p []byte) {
	b.buf = append(b.buf, p...)
	if len(b.buf) > b.max {
		excess := len(b.buf) - b.max
		copy(b.buf, b.buf[excess:])
		b.buf = b.buf[:b.max]
	}
}

// endsWithPrompt tests the last window bytes against the prompt pattern.
// Cost is O(window) per call regardless of how much output accumulated.
func (b *tailBuffer) endsWithPrompt() bool {
	tail := b.buf
	if len(tail) > b.window {
		tail = tail[len(tail)-b.window:]
	}

	return promptPattern.Match(tail)
}

// reset clears the buffer. Called after each successful prompt
// detection so a stale prompt can never satisfy the next wait.
func (b *tailBuffer) reset() {
	b.buf = b.buf[:0]
}

func (b *tailBuffer) len() int {
	return len(b.buf)
}
