package animation

import "time"

const lollercoasterArt = `                      THE ULTIMATE LOLLERCOASTER
_____
     \         ___     (sponsored by LMAONADE)
      \       /   \
       \     /    |
        \___/     |
                  |      ___
                  A     /   \
                  H    /     \
                  V    |     |     ___
                  |    |     /    /   \
        __________|____|____/    /     \
       /          |    \        /      |
       |          /     \______/       A
       \__<I>____/            ___      V
                             /   \     |
                             |    \    /
                             A     \__/
                             V
                             |
                             \
                              \___________________`

// lollercoasterScript is the keypad-encoded course the train rides, one
// digit per tick.
const lollercoasterScript = "66666666333366999666632222" +
	"11222214444414447889666666" +
	"66666666666666988744122223" +
	"66666999966663321212147774" +
	"44412323236666666666666666" +
	"666666"

const lollercoasterInterval = 50 * time.Millisecond

// Lollercoaster returns the tracked LOL train riding the classic course.
// The train starts just left of the canvas and rolls in.
func Lollercoaster() *Rollercoaster {
	movements, err := DecodeMovements(lollercoasterScript)
	if err != nil {
		panic(err)
	}
	r, err := NewRollercoaster(
		MustCanvas(lollercoasterArt),
		"LOL",
		[]Position{{Row: 1, Col: -3}, {Row: 1, Col: -2}, {Row: 1, Col: -1}},
		movements,
		lollercoasterInterval,
	)
	if err != nil {
		panic(err)
	}
	return r
}
