package session

import (
	"io"
	"log/slog"
	"sync"
)

// readChunkSize keeps reads small so a prompt becomes visible to the
// driver as soon as the engine emits it. Correctness, not throughput,
// is what matters here.
const readChunkSize = 64

// reader continuously pulls bytes from the child's combined output
// stream and forwards them on a channel, preserving emission order.
// It terminates on EOF, on any read error, or when asked to stop; it
// never inspects or transforms content. Read errors are not surfaced:
// the driver detects the resulting silence via its own deadline.
type reader struct {
	log *slog.Logger
	src io.Reader
	out chan []byte

	stop     chan struct{}
	stopOnce sync.Once
}

func newReader(log *slog.Logger, src io.Reader) *reader {
	return &reader{
		log:  log.With("component", "reader"),
		src:  src,
		out:  make(chan []byte, 64),
		stop: make(chan struct{}),
	}
}

// run loops until EOF or stop. Always returns nil: the reader going
// quiet is a condition for the driver's deadline, not an error.
func (r *reader) run() error {
	defer close(r.out)

	buf := make([]byte, readChunkSize)

	for {
		select {
		case <-r.stop:
			return nil
		default:
		}

		n, err := r.src.Read(buf)
		if n > 0 {
			chunk := make([]byte, n)
			copy(chunk, buf[:n])

			select {
			case r.out <- chunk:
			case <-r.stop:
				return nil
			}
		}

		if err != nil {
			if err != io.EOF {
				r.log.Debug("Read error on engine output stream", "error", err)
			}

			return nil
		}
	}
}

// signalStop asks the reader to exit. Safe to call multiple times.
func (r *reader) signalStop() {
	r.stopOnce.Do(func() {
		close(r.stop)
	})
}
