package animation

import (
	"context"
	"errors"
	"strings"
	"time"
)

// Position is a (row, col) cell on or near a canvas, 0-based. Positions off
// the canvas are legal transients while a train moves past an edge.
type Position struct {
	Row, Col int
}

// Rollercoaster animates a multi-character train riding a scripted course
// over a static canvas. Advance emits only the cells that changed since the
// previous tick: it erases the trailing segment and redraws the shifted
// train, which keeps the per-tick byte count low on a long-running stream.
type Rollercoaster struct {
	canvas    *Canvas
	train     []rune     // glyphs, leading segment first
	start     []Position // original window, one entry per glyph
	movements []Movement
	interval  time.Duration

	positions []Position // sliding window, leading segment first
	frame     int        // index of the next movement to apply
}

// NewRollercoaster builds a tracked animation. The train must be non-empty
// and have exactly one start position per glyph.
func NewRollercoaster(canvas *Canvas, train string, start []Position, movements []Movement, interval time.Duration) (*Rollercoaster, error) {
	glyphs := []rune(train)
	if len(glyphs) == 0 {
		return nil, errors.New("rollercoaster: empty train")
	}
	if len(glyphs) != len(start) {
		return nil, errors.New("rollercoaster: train length and start positions differ")
	}
	r := &Rollercoaster{
		canvas:    canvas,
		train:     glyphs,
		start:     append([]Position(nil), start...),
		movements: movements,
		interval:  interval,
		positions: make([]Position, len(start)),
	}
	r.Reset()
	return r, nil
}

// Canvas returns the background the train rides over.
func (r *Rollercoaster) Canvas() *Canvas { return r.canvas }

// Train returns the train glyphs, leading segment first.
func (r *Rollercoaster) Train() string { return string(r.train) }

// Positions returns a copy of the current position window, leading segment
// first.
func (r *Rollercoaster) Positions() []Position {
	return append([]Position(nil), r.positions...)
}

// TotalFrames returns the number of ticks in one run of the script.
func (r *Rollercoaster) TotalFrames() int { return len(r.movements) }

// Reset restores the position window to the original starting positions and
// rewinds the script. It may be called any number of times.
func (r *Rollercoaster) Reset() {
	r.frame = 0
	copy(r.positions, r.start)
}

// Advance produces the screen-control sequence for the next tick, or ok ==
// false once the whole script has been consumed. Callers reset and loop for
// continuous playback.
func (r *Rollercoaster) Advance() (cmds string, ok bool) {
	if r.frame >= len(r.movements) {
		return "", false
	}
	var sb strings.Builder

	// Restore the background cell under the trailing segment.
	tail := r.positions[len(r.positions)-1]
	if r.canvas.Contains(tail.Row, tail.Col) {
		sb.WriteString(MoveTo(tail.Row+1, tail.Col+1))
		sb.WriteRune(r.canvas.CharAt(tail.Row, tail.Col))
	}

	// Slide the window: drop the trailing entry, lead with the new head.
	dRow, dCol := r.movements[r.frame].Delta()
	head := r.positions[0]
	copy(r.positions[1:], r.positions[:len(r.positions)-1])
	r.positions[0] = Position{Row: head.Row + dRow, Col: head.Col + dCol}

	// Redraw the train, skipping off-canvas segments. When a segment sits
	// directly right of the previously emitted cell the cursor is already
	// there, so the move is omitted.
	havePrev := false
	var prev Position
	for i, pos := range r.positions {
		if !r.canvas.Contains(pos.Row, pos.Col) {
			continue
		}
		if !havePrev || pos.Row != prev.Row || pos.Col != prev.Col+1 {
			sb.WriteString(MoveTo(pos.Row+1, pos.Col+1))
		}
		sb.WriteRune(r.train[i])
		prev, havePrev = pos, true
	}

	r.frame++
	return sb.String(), true
}

// Play streams the animation to sink until the context is canceled or a
// write fails. Each run paints the base frame, plays the script through,
// then resets and starts over.
func (r *Rollercoaster) Play(ctx context.Context, sink Sink) error {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		r.Reset()
		if err := sink.WriteFrame([]byte(ClearScreen() + Home() + r.canvas.BaseFrame())); err != nil {
			return err
		}
		for {
			cmds, ok := r.Advance()
			if !ok {
				break
			}
			if err := sink.WriteFrame([]byte(cmds)); err != nil {
				return err
			}
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-ticker.C:
			}
		}
	}
}
