package animation

import "testing"

func TestNewCanvasValidation(t *testing.T) {
	if _, err := NewCanvas(nil); err == nil {
		t.Error("empty canvas accepted")
	}
	if _, err := NewCanvas([]string{""}); err == nil {
		t.Error("empty first line accepted")
	}
	if _, err := NewCanvas([]string{"x", ""}); err != nil {
		t.Errorf("later empty lines should be fine: %v", err)
	}
}

func TestCanvasDimensions(t *testing.T) {
	c, err := NewCanvas([]string{"ab", "abcd", "a"})
	if err != nil {
		t.Fatal(err)
	}
	if c.Width() != 4 {
		t.Errorf("width = %d, want 4", c.Width())
	}
	if c.Height() != 3 {
		t.Errorf("height = %d, want 3", c.Height())
	}
}

func TestCanvasCharAt(t *testing.T) {
	c, err := NewCanvas([]string{"ab", "abcd"})
	if err != nil {
		t.Fatal(err)
	}
	if got := c.CharAt(1, 3); got != 'd' {
		t.Errorf("CharAt(1,3) = %q, want 'd'", got)
	}
	// Columns past a short line read as spaces.
	if got := c.CharAt(0, 3); got != ' ' {
		t.Errorf("CharAt(0,3) = %q, want ' '", got)
	}
}

func TestCanvasContains(t *testing.T) {
	c, err := NewCanvas([]string{"ab", "cd"})
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		row, col int
		want     bool
	}{
		{0, 0, true},
		{1, 1, true},
		{-1, 0, false},
		{0, -1, false},
		{2, 0, false},
		{0, 2, false},
	}
	for _, tt := range tests {
		if got := c.Contains(tt.row, tt.col); got != tt.want {
			t.Errorf("Contains(%d,%d) = %v, want %v", tt.row, tt.col, got, tt.want)
		}
	}
}

func TestCanvasBaseFrame(t *testing.T) {
	c, err := NewCanvas([]string{"ab", "cd"})
	if err != nil {
		t.Fatal(err)
	}
	if got, want := c.BaseFrame(), "ab\r\ncd\r\n"; got != want {
		t.Errorf("BaseFrame() = %q, want %q", got, want)
	}
}
