package animation

import "time"

const roflcopterArt = `ROFL:ROFL:LOL:ROFL:ROFL
           ^
  L  /-----------
 LOL===       [] \
  L    \          \
        \__________]
            I   I
         -----------/`

// roflcopterFrames alternates the rotor blades between horizontal and
// vertical.
var roflcopterFrames = []string{
	Home() + "     " + MoveTo(1, 19) + "     " +
		MoveTo(3, 2) + " L " + MoveTo(4, 2) + " O " + MoveTo(5, 2) + " L ",
	Home() + "ROFL:" + MoveTo(1, 19) + ":ROFL" +
		MoveTo(3, 2) + "   " + MoveTo(4, 2) + "LOL" + MoveTo(5, 2) + "   ",
}

// Roflcopter returns the two-frame rotor flicker.
func Roflcopter() *Cyclic {
	return NewCyclic(MustCanvas(roflcopterArt), roflcopterFrames, 50*time.Millisecond)
}
