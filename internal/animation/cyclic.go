package animation

import (
	"context"
	"time"
)

// Cyclic is a fixed-frame flicker animation: the base art is painted once,
// then a short list of overwrite sequences loops forever. It carries no
// state between frames.
type Cyclic struct {
	canvas   *Canvas
	frames   []string
	interval time.Duration
}

// NewCyclic builds a flicker animation from a canvas and its overwrite
// frames, played at the given interval.
func NewCyclic(canvas *Canvas, frames []string, interval time.Duration) *Cyclic {
	return &Cyclic{canvas: canvas, frames: frames, interval: interval}
}

// Play paints the base frame, then cycles the overwrite frames until the
// context is canceled or the sink fails.
func (c *Cyclic) Play(ctx context.Context, sink Sink) error {
	if err := sink.WriteFrame([]byte(ClearScreen() + Home() + c.canvas.BaseFrame())); err != nil {
		return err
	}
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for i := 0; ; i = (i + 1) % len(c.frames) {
		if err := sink.WriteFrame([]byte(c.frames[i])); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
