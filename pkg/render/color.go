package render

import "github.com/muesli/termenv"

// Raw ANSI sequences. They are always emitted, whether or not stdout is a
// terminal.
var (
	// ColorA marks entries at even display positions (light/white).
	ColorA = termenv.CSI + termenv.ANSIWhite.Sequence(false) + "m"
	// ColorB marks entries at odd display positions (green).
	ColorB = termenv.CSI + termenv.ANSIGreen.Sequence(false) + "m"
	// Reset restores the default terminal color.
	Reset = termenv.CSI + termenv.ResetSeq + "m"
)

// ColorFor returns the color of the entry at the given display index.
// Parity is taken over the displayed (filtered) list.
func ColorFor(index int) string {
	if index%2 == 0 {
		return ColorA
	}
	return ColorB
}
