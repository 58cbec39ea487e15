// Command preview plays a tracked animation in the local terminal, for
// checking art and movement scripts without a Telnet client. Press q, Esc,
// or Ctrl-C to quit.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"telnet-animations/internal/animation"
)

func main() {
	var name string
	var delay time.Duration
	flag.StringVar(&name, "animation", "lollercoaster", "tracked animation to play")
	flag.DurationVar(&delay, "delay", 50*time.Millisecond, "delay between frames")
	flag.Parse()

	coaster, ok := animation.Tracked(name)
	if !ok {
		fmt.Fprintf(os.Stderr, "preview: %q is not a tracked animation (registered: %s)\n",
			name, strings.Join(animation.Names(), ", "))
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "preview: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "preview: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	quit := make(chan struct{})
	go func() {
		for {
			switch ev := screen.PollEvent().(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
					close(quit)
					return
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		}
	}()

	ticker := time.NewTicker(delay)
	defer ticker.Stop()
	for {
		coaster.Reset()
		for {
			if _, ok := coaster.Advance(); !ok {
				break
			}
			draw(screen, coaster)
			select {
			case <-quit:
				return
			case <-ticker.C:
			}
		}
	}
}

// draw repaints the whole screen. The terminal is local, so there is no
// bandwidth worth saving with incremental updates.
func draw(screen tcell.Screen, c *animation.Rollercoaster) {
	screen.Clear()
	style := tcell.StyleDefault
	for row, line := range c.Canvas().Lines() {
		for col, ch := range []rune(line) {
			screen.SetContent(col, row, ch, nil, style)
		}
	}
	train := []rune(c.Train())
	for i, pos := range c.Positions() {
		if !c.Canvas().Contains(pos.Row, pos.Col) {
			continue
		}
		screen.SetContent(pos.Col, pos.Row, train[i], nil, style.Bold(true))
	}
	screen.Show()
}
