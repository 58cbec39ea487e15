package server

import (
	"errors"
	"testing"
)

func TestMetricsSnapshot(t *testing.T) {
	m := &Metrics{}
	m.IncAccepted()
	m.IncAccepted()
	m.AddActive(1)
	m.IncAnimations()
	m.IncNegotiationErrors()

	snap := m.Snapshot()
	if got := snap["connections_accepted"]; got != int64(2) {
		t.Errorf("connections_accepted = %v, want 2", got)
	}
	if got := snap["connections_active"]; got != int64(1) {
		t.Errorf("connections_active = %v, want 1", got)
	}
	if got := snap["animations_started"]; got != int64(1) {
		t.Errorf("animations_started = %v, want 1", got)
	}
	if got := snap["negotiation_errors"]; got != int64(1) {
		t.Errorf("negotiation_errors = %v, want 1", got)
	}
}

type stubSink struct {
	err error
	n   int
}

func (s *stubSink) WriteFrame(b []byte) error {
	if s.err != nil {
		return s.err
	}
	s.n++
	return nil
}

func TestCountingSink(t *testing.T) {
	m := &Metrics{}
	ok := countingSink{Sink: &stubSink{}, metrics: m}
	_ = ok.WriteFrame([]byte("frame"))
	_ = ok.WriteFrame([]byte("frame"))

	failed := countingSink{Sink: &stubSink{err: errors.New("gone")}, metrics: m}
	_ = failed.WriteFrame([]byte("frame"))

	if got := m.Snapshot()["frames_written"]; got != int64(2) {
		t.Errorf("frames_written = %v, want 2: failed writes must not count", got)
	}
}
