package midi

import (
	"fmt"
	"io"
)

// writeTrace prints "MIDI <cable>: XX XX XX". Only lengths 1 to 3 are
// printed, and clock and active sensing pulses are skipped.
func writeTrace(w io.Writer, msg []byte, cable uint) {
	switch len(msg) {
	case 1:
		if msg[0] == TimingClock || msg[0] == ActiveSensing {
			return
		}
		fmt.Fprintf(w, "MIDI %d: %02X\n", cable, msg[0])
	case 2:
		fmt.Fprintf(w, "MIDI %d: %02X %02X\n", cable, msg[0], msg[1])
	case 3:
		fmt.Fprintf(w, "MIDI %d: %02X %02X %02X\n", cable, msg[0], msg[1], msg[2])
	}
}
