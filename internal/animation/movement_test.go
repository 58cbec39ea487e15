package animation

import "testing"

// TestMovementDelta verifies every compass direction maps to a unique,
// correct (row, col) offset.
func TestMovementDelta(t *testing.T) {
	tests := []struct {
		name       string
		m          Movement
		dRow, dCol int
	}{
		{"up-left", UpLeft, -1, -1},
		{"up", Up, -1, 0},
		{"up-right", UpRight, -1, 1},
		{"left", Left, 0, -1},
		{"right", Right, 0, 1},
		{"down-left", DownLeft, 1, -1},
		{"down", Down, 1, 0},
		{"down-right", DownRight, 1, 1},
	}

	seen := map[[2]int]string{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dRow, dCol := tt.m.Delta()
			if dRow != tt.dRow || dCol != tt.dCol {
				t.Errorf("got (%d,%d), want (%d,%d)", dRow, dCol, tt.dRow, tt.dCol)
			}
			if prev, dup := seen[[2]int{dRow, dCol}]; dup {
				t.Errorf("delta (%d,%d) already used by %s", dRow, dCol, prev)
			}
			seen[[2]int{dRow, dCol}] = tt.name
		})
	}
}

func TestDecodeMovements(t *testing.T) {
	got, err := DecodeMovements("123468798")
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	want := []Movement{DownLeft, Down, DownRight, Left, Right, Up, UpLeft, UpRight, Up}
	if len(got) != len(want) {
		t.Fatalf("got %d movements, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("movement %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

// TestDecodeMovementsAllOrNothing verifies that any non-keypad character
// fails the whole script, with no partial result.
func TestDecodeMovementsAllOrNothing(t *testing.T) {
	for _, script := range []string{"abc", "12 3", "5", "123x", "60", "6\n6"} {
		t.Run(script, func(t *testing.T) {
			got, err := DecodeMovements(script)
			if err == nil {
				t.Fatalf("decode %q succeeded with %d movements, want error", script, len(got))
			}
			if got != nil {
				t.Errorf("decode %q returned partial result %v", script, got)
			}
		})
	}
}
