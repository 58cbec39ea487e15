package animation

import "fmt"

// Movement is one of the eight compass directions a train segment can take
// between two frames.
type Movement int

const (
	UpLeft Movement = iota
	Up
	UpRight
	Left
	Right
	DownLeft
	Down
	DownRight
)

// Delta returns the (row, col) offset of one movement step. Rows grow
// downward, matching ANSI cursor addressing.
func (m Movement) Delta() (dRow, dCol int) {
	switch m {
	case UpLeft:
		return -1, -1
	case Up:
		return -1, 0
	case UpRight:
		return -1, 1
	case Left:
		return 0, -1
	case Right:
		return 0, 1
	case DownLeft:
		return 1, -1
	case Down:
		return 1, 0
	case DownRight:
		return 1, 1
	}
	return 0, 0
}

// DecodeMovements converts a movement script into a list of movements. The
// script mirrors the layout of a numeric keypad:
//
//	7 8 9    up-left, up, up-right
//	4   6    left, right
//	1 2 3    down-left, down, down-right
//
// Decoding is all-or-nothing: any character outside these eight digits
// fails the whole script.
func DecodeMovements(script string) ([]Movement, error) {
	out := make([]Movement, 0, len(script))
	for i, c := range script {
		var m Movement
		switch c {
		case '7':
			m = UpLeft
		case '8':
			m = Up
		case '9':
			m = UpRight
		case '4':
			m = Left
		case '6':
			m = Right
		case '1':
			m = DownLeft
		case '2':
			m = Down
		case '3':
			m = DownRight
		default:
			return nil, fmt.Errorf("movement script: invalid character %q at offset %d", c, i)
		}
		out = append(out, m)
	}
	return out, nil
}
