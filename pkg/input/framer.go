package input

const (
	statusSysEx    = 0xF0
	statusEOX      = 0xF7
	firstRealtime  = 0xF8
	statusBitMask  = 0x80
	systemMsgType  = 0xF
	noRunningState = 0
)

// messageLength is the full length of a message starting with status,
// or 0 for bytes that never start a framed message.
func messageLength(status byte) int {
	switch status >> 4 {
	case 0x8, 0x9, 0xA, 0xB, 0xE:
		return 3
	case 0xC, 0xD:
		return 2
	case systemMsgType:
		switch status {
		case 0xF1, 0xF3:
			return 2
		case 0xF2:
			return 3
		case 0xF6:
			return 1
		}
	}
	return 0
}

// Framer splits a raw MIDI byte stream, as read from a UART, into complete
// messages and hands them to a Handler. Realtime bytes are passed on
// immediately, even in the middle of another message. SysEx is skipped.
// Running status is restored for channel messages.
//
// The slice given to the handler is only valid during the call.
type Framer struct {
	h     Handler
	cable uint

	buf     [3]byte
	rt      [1]byte
	n       int
	want    int
	running byte
	sysex   bool
}

func NewFramer(h Handler, cable uint) *Framer {
	return &Framer{h: h, cable: cable}
}

// Write feeds p into the framer. It never fails.
func (f *Framer) Write(p []byte) (int, error) {
	for _, b := range p {
		f.WriteByte(b)
	}
	return len(p), nil
}

func (f *Framer) WriteByte(b byte) error {
	switch {
	case b >= firstRealtime:
		f.rt[0] = b
		f.h.MessageHandler(f.rt[:], f.cable)

	case b == statusSysEx:
		f.sysex = true
		f.running = noRunningState
		f.n = 0

	case b == statusEOX:
		f.sysex = false
		f.n = 0

	case b&statusBitMask != 0:
		f.status(b)

	default:
		f.data(b)
	}
	return nil
}

// Reset drops a partial message and the running status.
func (f *Framer) Reset() {
	f.n = 0
	f.running = noRunningState
	f.sysex = false
}

func (f *Framer) status(b byte) {
	f.sysex = false
	f.n = 0

	want := messageLength(b)
	if want == 0 {
		f.running = noRunningState
		return
	}

	if b>>4 == systemMsgType {
		f.running = noRunningState
	} else {
		f.running = b
	}

	f.buf[0] = b
	f.n = 1
	f.want = want
	if f.n == f.want {
		f.emit()
	}
}

func (f *Framer) data(b byte) {
	if f.sysex {
		return
	}

	if f.n == 0 {
		if f.running == noRunningState {
			return
		}
		f.buf[0] = f.running
		f.n = 1
		f.want = messageLength(f.running)
	}

	f.buf[f.n] = b
	f.n++
	if f.n == f.want {
		f.emit()
	}
}

func (f *Framer) emit() {
	f.h.MessageHandler(f.buf[:f.n], f.cable)
	f.n = 0
}
