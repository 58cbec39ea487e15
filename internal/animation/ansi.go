package animation

import "fmt"

const (
	ESC = "\x1b"
	CSI = ESC + "["
)

// MoveTo positions the cursor at row, col (1-based).
func MoveTo(row, col int) string {
	return fmt.Sprintf("%s%d;%dH", CSI, row, col)
}

// ClearScreen clears the entire screen.
func ClearScreen() string {
	return CSI + "2J"
}

// Home moves the cursor to the top-left corner.
func Home() string {
	return CSI + "H"
}
