// Package fricas provides a Go driver for the FriCAS computer algebra
// system's interactive console.
//
// FriCAS has no streaming API: it reads input lines on a prompt of the
// form "(N) -> " and writes free-form text until the next prompt
// appears. This package launches the FriCAS binary as a child process,
// waits for prompts under explicit timeouts, and returns each
// command's response with prompt echo and startup noise stripped.
//
// # Basic Usage
//
// For one-off evaluation with automatic lifecycle management, use
// WithSession:
//
//	ctx := context.Background()
//	err := fricas.WithSession(ctx, func(s *fricas.Session) error {
//	    out, err := s.Request(ctx, "integrate(1/(1+x^4), x)", false)
//	    if err != nil {
//	        return err
//	    }
//	    fmt.Println(out)
//	    return nil
//	},
//	    fricas.WithExePath("/usr/local/bin/FRICASsys"),
//	    fricas.WithCommandTimeout(30*time.Second),
//	)
//
// # Long-Lived Sessions
//
// For many commands against one engine, create the session directly:
//
//	s := fricas.New(fricas.WithExePath(path))
//	if err := s.Start(ctx); err != nil {
//	    return err
//	}
//	defer s.Stop()
//
//	out, err := s.Request(ctx, "D(sin(x), x)", false)
//
// The session restarts the engine automatically if it has died, so a
// crash in one command does not poison the next.
//
// # Errors
//
// Failures are typed: EngineNotFoundError, LaunchError,
// StartupTimeoutError and CommandTimeoutError all implement the
// FricasError marker interface, and the timeout errors carry whatever
// partial output the engine produced before the deadline.
package fricas
