package animation

import "time"

const lollerskatesArt = `        /\O
         /\/
        /\
       /  \
      LOL LOL
:-D LOLLERSKATES :-D`

// lollerskatesFrames swings the skater through three poses.
var lollerskatesFrames = []string{
	MoveTo(1, 9) + " _" + MoveTo(2, 9) + "//|_" + MoveTo(3, 9) + " |" +
		MoveTo(4, 8) + " /| " + MoveTo(5, 7) + " LLOL   ",
	MoveTo(1, 10) + " " + MoveTo(2, 9) + " /_ " + MoveTo(3, 11) + `\` +
		MoveTo(4, 10) + " |" + MoveTo(5, 9) + "OLLOL",
	MoveTo(1, 9) + `/\` + MoveTo(2, 11) + `\/` + MoveTo(3, 9) + `/\ ` +
		MoveTo(4, 8) + `/  \` + MoveTo(5, 7) + "LOL LOL",
}

// Lollerskates returns the three-frame skater flicker.
func Lollerskates() *Cyclic {
	return NewCyclic(MustCanvas(lollerskatesArt), lollerskatesFrames, 100*time.Millisecond)
}
