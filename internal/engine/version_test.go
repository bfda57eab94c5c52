package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const sampleBanner = `Checking for foreign routines
FRICAS=/usr/lib/fricas
foreign routines found
openServer result 0
-----------------------------------------------------------------------------
   FriCAS Computer Algebra System
                         Version: FriCAS 1.3.12
                  Timestamp: Mon Jan  1 00:00:00 UTC 2024
-----------------------------------------------------------------------------
   Issue )copyright to view copyright notices.
   Issue )summary for a summary of useful system commands.
   Issue )quit to leave FriCAS and return to shell.
-----------------------------------------------------------------------------`

func TestExtractVersion_PicksCoreLines(t *testing.T) {
	got := ExtractVersion(sampleBanner)

	assert.Equal(t,
		"FriCAS Computer Algebra System\n"+
			"Version: FriCAS 1.3.12\n"+
			"Timestamp: Mon Jan  1 00:00:00 UTC 2024",
		got)
}

func TestExtractVersion_DropsAdvisories(t *testing.T) {
	got := ExtractVersion(sampleBanner)

	assert.NotContains(t, got, "Issue )")
	assert.NotContains(t, got, "openServer")
}

func TestExtractVersion_FallbackWithoutTitle(t *testing.T) {
	banner := "something else\nVersion: FriCAS 1.3.11\nTimestamp: then"

	got := ExtractVersion(banner)

	assert.Equal(t, "Version: FriCAS 1.3.11\nTimestamp: then", got)
}

func TestExtractVersion_EmptyBanner(t *testing.T) {
	assert.Empty(t, ExtractVersion(""))
	assert.Empty(t, ExtractVersion("no identification here"))
}
