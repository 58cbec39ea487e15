package server

import (
	"sync/atomic"

	"telnet-animations/internal/animation"
)

// Metrics tracks service-wide counters for the admin endpoint.
type Metrics struct {
	ConnectionsAccepted int64
	ConnectionsActive   int64
	AnimationsStarted   int64
	NegotiationErrors   int64
	FramesWritten       int64
}

func (m *Metrics) IncAccepted()          { atomic.AddInt64(&m.ConnectionsAccepted, 1) }
func (m *Metrics) AddActive(d int64)     { atomic.AddInt64(&m.ConnectionsActive, d) }
func (m *Metrics) IncAnimations()        { atomic.AddInt64(&m.AnimationsStarted, 1) }
func (m *Metrics) IncNegotiationErrors() { atomic.AddInt64(&m.NegotiationErrors, 1) }
func (m *Metrics) IncFrames()            { atomic.AddInt64(&m.FramesWritten, 1) }

// Snapshot returns a read-only copy for HTTP output.
func (m *Metrics) Snapshot() map[string]any {
	return map[string]any{
		"connections_accepted": atomic.LoadInt64(&m.ConnectionsAccepted),
		"connections_active":   atomic.LoadInt64(&m.ConnectionsActive),
		"animations_started":   atomic.LoadInt64(&m.AnimationsStarted),
		"negotiation_errors":   atomic.LoadInt64(&m.NegotiationErrors),
		"frames_written":       atomic.LoadInt64(&m.FramesWritten),
	}
}

// countingSink counts successfully written frames on top of another sink.
type countingSink struct {
	animation.Sink
	metrics *Metrics
}

func (c countingSink) WriteFrame(b []byte) error {
	err := c.Sink.WriteFrame(b)
	if err == nil {
		c.metrics.IncFrames()
	}
	return err
}
