package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanBlock_DropsBannerLines(t *testing.T) {
	in := "Checking for foreign routines\n" +
		"FRICAS=/usr/lib/fricas\n" +
		"spad-lib=/usr/lib/fricas/lib\n" +
		"foreign routines found\n" +
		"openServer result 0\n" +
		"   4"

	assert.Equal(t, "4", CleanBlock(in))
}

func TestCleanBlock_DropsSeparatorsAndAdvisories(t *testing.T) {
	in := "-----------------------------------------\n" +
		"   FriCAS Computer Algebra System\n" +
		" Version: FriCAS 1.3.12\n" +
		" Timestamp: Mon Jan 1 00:00:00 UTC 2024\n" +
		"   Issue )copyright to view copyright notices.\n" +
		"   Issue )summary for a summary of useful system commands.\n" +
		"   Issue )quit to leave FriCAS and return to shell.\n" +
		"real content stays"

	assert.Equal(t, "real content stays", CleanBlock(in))
}

func TestCleanBlock_PreservesOrderAndContent(t *testing.T) {
	in := "first\n\n Version: 1.3.12\nsecond\n\nthird"

	assert.Equal(t, "first\nsecond\nthird", CleanBlock(in))
}

func TestCleanBlock_TrimsTrailingWhitespacePerLine(t *testing.T) {
	assert.Equal(t, "a\nb", CleanBlock("a   \nb\t\n"))
}

func TestDropEcho(t *testing.T) {
	assert.Equal(t, "4", dropEcho("4\n2+2", "2+2"), "echo as last line is dropped")
	assert.Equal(t, "2+2\n4", dropEcho("2+2\n4", "2+2"), "echo not in last position survives")
	assert.Equal(t, "4", dropEcho("4", "2+2"), "no echo present")
	assert.Equal(t, "", dropEcho("2+2", "  2+2  "), "comparison ignores surrounding whitespace")
}

// End-to-end shape of Request's cleanup on a typical eval exchange.
func TestCleanup_EvalScenario(t *testing.T) {
	block := "\n   4\n(2) -> "

	text := StripTrailingPrompt(block)
	got := dropEcho(CleanBlock(text), "2+2")

	assert.Equal(t, "4", got)
}
