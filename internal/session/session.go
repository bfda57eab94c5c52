package session

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	"golang.org/x/sync/errgroup"

	"github.com/Foadsf/fricas-pro-cli/internal/config"
	"github.com/Foadsf/fricas-pro-cli/internal/errors"
)

// State is the lifecycle state of a Session.
type State string

const (
	StateNotStarted State = "not_started"
	StateRunning    State = "running"
	StateStopped    State = "stopped"
)

// Session owns exactly one FriCAS child process and provides a
// synchronous "submit one line, get one delimited response" primitive
// on top of asynchronous byte delivery.
//
// At most one request may be in flight at a time. The mutex serializes
// lifecycle transitions and requests; callers must still not expect
// concurrent Sends to interleave meaningfully.
type Session struct {
	id   string
	log  *slog.Logger
	opts *config.Options

	mu     sync.Mutex
	state  State
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	pr     *os.File
	rd     *reader
	eg     *errgroup.Group
	exited chan struct{}
	tail   *tailBuffer
	banner string
}

// New creates a session for the engine described by opts. The process
// is not spawned until Start (or the first Send, which auto-starts).
func New(opts *config.Options) *Session {
	if opts == nil {
		opts = &config.Options{}
	}

	opts = opts.Normalize()

	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	id := ulid.Make().String()

	return &Session{
		id:    id,
		log:   log.With("component", "session", "session_id", id),
		opts:  opts,
		state: StateNotStarted,
		tail:  newTailBuffer(opts.TailWindow),
	}
}

// ID returns the session's ULID, used for log correlation.
func (s *Session) ID() string {
	return s.id
}

// State reports the current lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state
}

// Banner returns the text the engine emitted before its first prompt.
// Captured once during Start and cached; re-readable without another
// Start call.
func (s *Session) Banner() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.banner
}

// Start launches the engine with piped stdin and combined stdout/stderr,
// spawns the reader, and waits for the first prompt. Everything seen
// before that prompt is retained as the banner. A no-op if the process
// is already running.
//
// Returns LaunchError if the process or its streams cannot be set up,
// StartupTimeoutError if no prompt appears within the startup deadline.
func (s *Session) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.startLocked(ctx)
}

func (s *Session) startLocked(ctx context.Context) error {
	if s.state == StateRunning && s.alive() {
		return nil
	}

	if s.opts.ExePath == "" {
		return &errors.LaunchError{Err: stderrors.New("no engine path configured")}
	}

	s.log.Info("Starting FriCAS process", "exe_path", s.opts.ExePath)

	//nolint:gosec // G204: launching the configured engine binary is the point
	cmd := exec.Command(s.opts.ExePath, s.opts.Args...)
	cmd.Dir = s.opts.Cwd
	cmd.Env = buildEnv(s.opts.Env)

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return &errors.LaunchError{Err: fmt.Errorf("stdin pipe: %w", err)}
	}

	// Single pipe for stdout and stderr: all diagnostics arrive
	// interleaved in emission order, no separate error channel.
	pr, pw, err := os.Pipe()
	if err != nil {
		return &errors.LaunchError{Err: fmt.Errorf("output pipe: %w", err)}
	}

	cmd.Stdout = pw
	cmd.Stderr = pw

	if err := cmd.Start(); err != nil {
		pr.Close()
		pw.Close()

		return &errors.LaunchError{Err: fmt.Errorf("start process: %w", err)}
	}

	// The child holds the write end now; closing ours makes EOF reach
	// the reader when the child exits.
	pw.Close()

	s.cmd = cmd
	s.stdin = stdin
	s.pr = pr
	s.rd = newReader(s.log, pr)
	s.exited = make(chan struct{})
	s.tail.reset()
	s.banner = ""

	exited := s.exited
	rd := s.rd

	s.eg = &errgroup.Group{}
	s.eg.Go(func() error {
		_ = rd.run()

		waitErr := cmd.Wait()
		pr.Close()
		close(exited)

		s.log.Debug("Engine process exited", "error", waitErr)

		return nil
	})

	s.log.Debug("Waiting for initial prompt", "pid", cmd.Process.Pid)

	found, banner, err := s.waitForPrompt(ctx, s.opts.StartupTimeout)
	if err != nil {
		s.stopLocked()

		return err
	}

	if !found {
		s.stopLocked()

		return &errors.StartupTimeoutError{
			Timeout: s.opts.StartupTimeout,
			Partial: decodeText(banner),
		}
	}

	s.banner = StripTrailingPrompt(decodeText(banner))
	s.state = StateRunning
	s.log.Info("Engine ready", "pid", cmd.Process.Pid, "banner_bytes", len(banner))

	return nil
}

// waitForPrompt pulls chunks off the reader channel, appending to both
// the per-call accumulator and the rolling tail buffer, and tests the
// buffer tail against the prompt pattern after each append. Returns on
// first match, on deadline expiry, or on context cancellation; the
// collected bytes are returned on every path so callers can preserve
// them for diagnosis.
//
// On a match the tail buffer is cleared, so each request's delta is its
// own response only, never cumulative from session start.
func (s *Session) waitForPrompt(ctx context.Context, timeout time.Duration) (bool, []byte, error) {
	deadline := time.Now().Add(timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}

	var collected []byte

	for {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return false, collected, nil
		}

		poll := s.opts.PollInterval
		if poll > remaining {
			poll = remaining
		}

		select {
		case chunk, ok := <-s.rd.out:
			if !ok {
				// Stream closed: the engine exited or closed its output.
				// No further bytes will ever arrive, so report not-found
				// without burning the rest of the deadline.
				return false, collected, nil
			}

			collected = append(collected, chunk...)
			s.tail.write(chunk)

			if s.tail.endsWithPrompt() {
				s.tail.reset()

				return true, collected, nil
			}

		case <-ctx.Done():
			return false, collected, ctx.Err()

		case <-time.After(poll):
		}
	}
}

// Send writes one line to the engine and blocks until the next prompt
// or the command deadline. Auto-starts the session if the process is
// not running (including after an unexpected engine exit).
//
// Returns CommandTimeoutError carrying the offending line and the
// partial output if no prompt appears in time.
func (s *Session) Send(ctx context.Context, line string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sendLocked(ctx, line)
}

func (s *Session) sendLocked(ctx context.Context, line string) (string, error) {
	if s.state != StateRunning || !s.alive() {
		if err := s.startLocked(ctx); err != nil {
			return "", err
		}
	}

	s.log.Debug("Submitting line", "line", line)

	if err := s.writeLine(line); err != nil {
		return "", fmt.Errorf("write line: %w", err)
	}

	found, block, err := s.waitForPrompt(ctx, s.opts.CommandTimeout)
	if err != nil {
		return "", err
	}

	if !found {
		return "", &errors.CommandTimeoutError{
			Line:    line,
			Timeout: s.opts.CommandTimeout,
			Partial: decodeText(block),
		}
	}

	s.log.Debug("Collected response block", "bytes", len(block))

	return decodeText(block), nil
}

// Request is Send plus response cleanup: the trailing prompt marker is
// stripped, and unless raw is set, banner-rule lines, blank lines, and
// a final input echo are dropped.
func (s *Session) Request(ctx context.Context, line string, raw bool) (string, error) {
	text, err := s.Send(ctx, line)
	if err != nil {
		return "", err
	}

	text = StripTrailingPrompt(text)
	if raw {
		return text, nil
	}

	return dropEcho(CleanBlock(text), line), nil
}

// writeLine sends line plus a newline to the engine's stdin. Pipes are
// unbuffered, so the engine sees the command immediately. Invalid
// UTF-8 in the line is dropped rather than rejected.
func (s *Session) writeLine(line string) error {
	if s.stdin == nil {
		return errors.ErrSessionNotStarted
	}

	_, err := s.stdin.Write(append([]byte(strings.ToValidUTF8(line, "")), '\n'))

	return err
}

// Stop shuts the session down: a graceful quit command first, then a
// cooperative reader stop, then a forced kill if the process is still
// alive. Best-effort on every step; never fails visibly. Safe to call
// on a never-started session and safe to call twice.
func (s *Session) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopLocked()
}

func (s *Session) stopLocked() {
	if s.cmd == nil {
		return
	}

	if s.alive() && s.stdin != nil {
		if err := s.writeLine(s.opts.QuitCommand); err == nil {
			s.waitExit(s.opts.GracefulTimeout)
		}
	}

	s.rd.signalStop()

	if s.alive() {
		s.log.Debug("Killing engine process", "pid", s.cmd.Process.Pid)

		_ = s.cmd.Process.Kill()
	}

	// A grandchild of the engine (say, a background job started via
	// )system) can hold the write end of the output pipe open past the
	// engine's death, so the reader would never see EOF. Closing our
	// read end unblocks its pending Read, which lets the errgroup
	// goroutine reach cmd.Wait and reap the child.
	if s.pr != nil {
		_ = s.pr.Close()
	}

	s.waitExit(time.Second)

	if s.stdin != nil {
		_ = s.stdin.Close()
		s.stdin = nil
	}

	_ = s.eg.Wait()

	s.cmd = nil
	s.pr = nil
	s.rd = nil
	s.eg = nil
	s.state = StateStopped
	s.log.Info("Session stopped")
}

// waitExit blocks until the process has been reaped or d elapses.
func (s *Session) waitExit(d time.Duration) {
	select {
	case <-s.exited:
	case <-time.After(d):
	}
}

// alive reports whether the child process has not yet been reaped.
func (s *Session) alive() bool {
	if s.cmd == nil || s.exited == nil {
		return false
	}

	select {
	case <-s.exited:
		return false
	default:
		return true
	}
}

// decodeText converts raw engine bytes to a string, dropping invalid
// UTF-8 sequences rather than raising.
func decodeText(b []byte) string {
	return strings.ToValidUTF8(string(b), "")
}

// buildEnv merges extra variables over the inherited environment.
// With no extras the child simply inherits.
func buildEnv(extra map[string]string) []string {
	if len(extra) == 0 {
		return nil
	}

	env := os.Environ()
	for k, v := range extra {
		env = append(env, k+"="+v)
	}

	return env
}
