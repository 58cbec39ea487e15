// Package wire serializes writes from a connection's negotiation and
// animation tasks onto its outbound stream.
package wire

import (
	"bufio"
	"errors"
	"sync"
)

// ErrSinkClosed is reported for writes after Close, when no write error was
// latched first.
var ErrSinkClosed = errors.New("wire: sink closed")

type request struct {
	buf  []byte
	errc chan error
}

// Sink owns a connection's buffered writer. A single goroutine performs
// every write+flush, so a frame or negotiation response is never split on
// the wire by a concurrent writer. The first failure is latched, reported
// to every later caller, and Done is closed so the connection's other task
// can stop promptly instead of discovering the fault on its own next write.
type Sink struct {
	reqs chan request
	done chan struct{}

	mu  sync.Mutex
	err error
}

// NewSink starts the writer goroutine for w.
func NewSink(w *bufio.Writer) *Sink {
	s := &Sink{
		reqs: make(chan request),
		done: make(chan struct{}),
	}
	go s.run(w)
	return s
}

// WriteFrame writes and flushes b as one unit and reports the outcome. It
// blocks while another writer's unit is in flight.
func (s *Sink) WriteFrame(b []byte) error {
	errc := make(chan error, 1)
	select {
	case s.reqs <- request{buf: b, errc: errc}:
		return <-errc
	case <-s.done:
		return s.Err()
	}
}

// Err returns the latched failure, or nil while the sink is healthy.
func (s *Sink) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Done is closed on the first write failure or on Close.
func (s *Sink) Done() <-chan struct{} { return s.done }

// Close stops the writer goroutine. Later writes report ErrSinkClosed
// unless a write error was latched first. Close is idempotent.
func (s *Sink) Close() {
	s.fail(ErrSinkClosed)
}

func (s *Sink) fail(err error) {
	s.mu.Lock()
	if s.err == nil {
		s.err = err
		close(s.done)
	}
	s.mu.Unlock()
}

func (s *Sink) run(w *bufio.Writer) {
	for {
		select {
		case <-s.done:
			return
		case req := <-s.reqs:
			// A request can race the closing of done; the latched error
			// wins so nothing is written after a failure or Close.
			err := s.Err()
			if err == nil {
				_, err = w.Write(req.buf)
				if err == nil {
					err = w.Flush()
				}
				if err != nil {
					s.fail(err)
				}
			}
			req.errc <- err
		}
	}
}
