package fricas

import (
	"context"
	"fmt"
)

// WithSession manages session lifecycle with automatic cleanup.
//
// This helper creates a session, starts the engine with the provided
// options, executes the callback, and stops the engine when done.
//
// The callback receives a fully started Session with the startup
// banner already consumed. If the callback returns an error, it is
// returned to the caller.
//
// Example usage:
//
//	err := fricas.WithSession(ctx, func(s *fricas.Session) error {
//	    out, err := s.Request(ctx, "2 + 2", false)
//	    if err != nil {
//	        return err
//	    }
//	    fmt.Println(out)
//	    return nil
//	},
//	    fricas.WithExePath(path),
//	    fricas.WithLogger(log),
//	)
func WithSession(ctx context.Context, fn func(*Session) error, opts ...Option) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	s := New(opts...)
	if err := s.Start(ctx); err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}

	defer s.Stop()

	return fn(s)
}
