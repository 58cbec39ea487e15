// Package animation holds the frame generators served over Telnet: the
// tracked rollercoaster engine, the fixed-frame flicker loops, and the
// registry that maps configured names to them. All output is a byte stream
// of ANSI screen-control sequences.
package animation

import "context"

// Sink receives one write unit at a time: a full base frame, one tick's
// updates, or a negotiation response. Implementations must write and flush
// the whole slice atomically, never interleaved with another writer's unit.
type Sink interface {
	WriteFrame(b []byte) error
}

// Animation streams frames to a sink until the context is canceled or the
// sink fails. Animations never finish on their own.
type Animation interface {
	Play(ctx context.Context, sink Sink) error
}
