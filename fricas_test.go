package fricas_test

import (
	"context"
	"errors"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	fricas "github.com/Foadsf/fricas-pro-cli"
)

// shEngine is a /bin/sh stand-in speaking the FriCAS prompt protocol.
const shEngine = `
printf 'Welcome\n(1) -> '
n=2
while IFS= read -r line; do
  case "$line" in
    ")quit"*) exit 0 ;;
  esac
  printf '\n   4\n(%d) -> ' "$n"
  n=$((n+1))
done
`

func shOptions(t *testing.T, extra ...fricas.Option) []fricas.Option {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("fake engine requires /bin/sh")
	}

	opts := []fricas.Option{
		fricas.WithExePath("/bin/sh"),
		fricas.WithArgs("-c", shEngine),
		fricas.WithStartupTimeout(5 * time.Second),
		fricas.WithCommandTimeout(5 * time.Second),
		fricas.WithPollInterval(5 * time.Millisecond),
	}

	return append(opts, extra...)
}

func TestWithSession(t *testing.T) {
	ctx := context.Background()

	var banner string

	err := fricas.WithSession(ctx, func(s *fricas.Session) error {
		banner = s.Banner()

		out, err := s.Request(ctx, "2 + 2", false)
		if err != nil {
			return err
		}

		assert.Equal(t, "4", out)

		return nil
	}, shOptions(t)...)
	require.NoError(t, err)

	assert.Equal(t, "Welcome", banner)
}

func TestWithSession_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := fricas.WithSession(ctx, func(*fricas.Session) error {
		t.Fatal("callback must not run")

		return nil
	}, shOptions(t)...)

	assert.ErrorIs(t, err, context.Canceled)
}

func TestWithSession_CallbackError(t *testing.T) {
	wantErr := errors.New("callback failed")

	err := fricas.WithSession(context.Background(), func(*fricas.Session) error {
		return wantErr
	}, shOptions(t)...)

	assert.ErrorIs(t, err, wantErr)
}

func TestNew_StartsOnFirstRequest(t *testing.T) {
	s := fricas.New(shOptions(t)...)
	defer s.Stop()

	assert.Equal(t, fricas.StateNotStarted, s.State())

	out, err := s.Request(context.Background(), "2 + 2", false)
	require.NoError(t, err)

	assert.Equal(t, "4", out)
	assert.Equal(t, fricas.StateRunning, s.State())
}

func TestWithSession_StartFailure(t *testing.T) {
	err := fricas.WithSession(context.Background(), func(*fricas.Session) error {
		t.Fatal("callback must not run")

		return nil
	}, fricas.WithExePath("/nonexistent/FRICASsys"))

	require.Error(t, err)

	var launchErr *fricas.LaunchError
	assert.True(t, errors.As(err, &launchErr))
}

func TestDiscover_ExplicitPath(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on /bin/sh existing")
	}

	path, err := fricas.Discover("/bin/sh", nil)
	require.NoError(t, err)
	assert.Equal(t, "/bin/sh", path)

	_, err = fricas.Discover("/nonexistent/FRICASsys", fricas.NopLogger())
	require.Error(t, err)

	var notFound *fricas.EngineNotFoundError
	assert.True(t, errors.As(err, &notFound))
	assert.Contains(t, notFound.SearchedPaths, "/nonexistent/FRICASsys")
}

func TestExtractVersion(t *testing.T) {
	banner := "Checking for foreign routines\n" +
		"-----------------------------------------------------------\n" +
		"   FriCAS Computer Algebra System\n" +
		"   Version: FriCAS 1.3.12\n" +
		"   Timestamp: Mon Jan 12 11:00:00 UTC 2026\n" +
		"-----------------------------------------------------------\n" +
		"   Issue )copyright to view copyright notices.\n"

	v := fricas.ExtractVersion(banner)

	assert.Contains(t, v, "FriCAS 1.3.12")
	assert.NotContains(t, v, "copyright")
}
