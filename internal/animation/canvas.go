package animation

import (
	"errors"
	"strings"
)

// Canvas is the immutable multi-line background a moving train is drawn
// over. Width is the widest line in characters, height the line count.
type Canvas struct {
	lines  []string
	width  int
	height int
}

// NewCanvas builds a canvas from background lines. At least one line is
// required and the first line must not be empty.
func NewCanvas(lines []string) (*Canvas, error) {
	if len(lines) == 0 {
		return nil, errors.New("canvas: no lines")
	}
	if lines[0] == "" {
		return nil, errors.New("canvas: first line is empty")
	}
	width := 0
	for _, l := range lines {
		if n := len([]rune(l)); n > width {
			width = n
		}
	}
	return &Canvas{lines: lines, width: width, height: len(lines)}, nil
}

// MustCanvas is NewCanvas for compiled-in art, split on newlines.
func MustCanvas(art string) *Canvas {
	c, err := NewCanvas(strings.Split(art, "\n"))
	if err != nil {
		panic(err)
	}
	return c
}

// Width returns the widest line length in characters.
func (c *Canvas) Width() int { return c.width }

// Height returns the number of lines.
func (c *Canvas) Height() int { return c.height }

// Lines returns the background lines. Callers must treat them as read-only.
func (c *Canvas) Lines() []string { return c.lines }

// Contains reports whether (row, col) lies on the canvas.
func (c *Canvas) Contains(row, col int) bool {
	return row >= 0 && col >= 0 && row < c.height && col < c.width
}

// CharAt returns the background character at (row, col). Columns past the
// end of a short line read as spaces.
func (c *Canvas) CharAt(row, col int) rune {
	line := []rune(c.lines[row])
	if col >= len(line) {
		return ' '
	}
	return line[col]
}

// BaseFrame renders the full background with CRLF line endings, ready to
// follow a clear-screen + home sequence.
func (c *Canvas) BaseFrame() string {
	var sb strings.Builder
	for _, l := range c.lines {
		sb.WriteString(l)
		sb.WriteString("\r\n")
	}
	return sb.String()
}
