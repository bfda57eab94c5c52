package ui

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShouldUseColor_EnvConventions(t *testing.T) {
	// NO_COLOR beats everything, including the force flag.
	t.Setenv("NO_COLOR", "")
	t.Setenv("CLICOLOR_FORCE", "1")
	assert.False(t, ShouldUseColor())
}

func TestShouldUseColor_CliColorZeroDisables(t *testing.T) {
	t.Setenv("CLICOLOR", "0")
	assert.False(t, ShouldUseColor())
}

func TestShouldUseColor_ForceEnablesWithoutTTY(t *testing.T) {
	// Test binaries run with stdout piped, so only the force flag can
	// turn color on here. Clear any ambient NO_COLOR first.
	if v, ok := os.LookupEnv("NO_COLOR"); ok {
		os.Unsetenv("NO_COLOR")
		t.Cleanup(func() { os.Setenv("NO_COLOR", v) })
	}

	t.Setenv("CLICOLOR", "")
	t.Setenv("CLICOLOR_FORCE", "1")
	assert.True(t, ShouldUseColor())
}
