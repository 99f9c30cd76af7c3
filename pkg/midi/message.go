package midi

import "fmt"

// Message types, the high nibble of a status byte.
const (
	TypeNoteOff       uint8 = 0x8
	TypeNoteOn        uint8 = 0x9
	TypeAftertouch    uint8 = 0xA
	TypeControlChange uint8 = 0xB
	TypeProgramChange uint8 = 0xC
	TypePitchBend     uint8 = 0xE
)

// Controller numbers.
const (
	CCBankSelectMSB uint8 = 0
	CCBankSelectLSB uint8 = 32
)

// System realtime bytes that are never traced.
const (
	TimingClock   uint8 = 0xF8
	ActiveSensing uint8 = 0xFE
)

const maxDataValue = 127

type EventKind int

const (
	EventNone EventKind = iota
	EventNoteOn
	EventNoteOff
	EventBankSelectLSB
	EventProgramChange
	EventPitchBend
)

var eventKindNames = map[EventKind]string{
	EventNone:          "none",
	EventNoteOn:        "note-on",
	EventNoteOff:       "note-off",
	EventBankSelectLSB: "bank-select-lsb",
	EventProgramChange: "program-change",
	EventPitchBend:     "pitch-bend",
}

func (k EventKind) String() string {
	if s, ok := eventKindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// Event is a decoded message. Key and Velocity are set for note events,
// Value for the others.
type Event struct {
	Kind     EventKind
	Key      uint8
	Velocity uint8
	Value    uint8
}

func (e Event) String() string {
	switch e.Kind {
	case EventNoteOn:
		return fmt.Sprintf("%s key=%d velocity=%d", e.Kind, e.Key, e.Velocity)
	case EventNoteOff:
		return fmt.Sprintf("%s key=%d", e.Kind, e.Key)
	case EventNone:
		return e.Kind.String()
	default:
		return fmt.Sprintf("%s value=%d", e.Kind, e.Value)
	}
}

// Decode maps one framed message to an Event. Anything that does not carry
// an event (too short, unknown type, unhandled controller, out of range
// velocity) decodes to EventNone.
//
// The channel nibble is ignored, all channels are treated the same.
func Decode(msg []byte) Event {
	if len(msg) < 2 {
		return Event{}
	}

	msgType := msg[0] >> 4
	data1 := msg[1]

	switch msgType {
	case TypeNoteOn:
		if len(msg) < 3 {
			break
		}
		velocity := msg[2]
		if velocity == 0 {
			return Event{Kind: EventNoteOff, Key: data1}
		}
		if velocity <= maxDataValue {
			return Event{Kind: EventNoteOn, Key: data1, Velocity: velocity}
		}

	case TypeNoteOff:
		if len(msg) < 3 {
			break
		}
		return Event{Kind: EventNoteOff, Key: data1}

	case TypeControlChange:
		if len(msg) < 3 {
			break
		}
		if data1 == CCBankSelectLSB {
			return Event{Kind: EventBankSelectLSB, Value: msg[2]}
		}

	case TypeProgramChange:
		return Event{Kind: EventProgramChange, Value: data1}

	case TypePitchBend:
		// only the first data byte is forwarded
		return Event{Kind: EventPitchBend, Value: data1}
	}

	return Event{}
}
