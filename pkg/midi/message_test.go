package midi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		msg  []byte
		want Event
	}{
		{"empty", nil, Event{}},
		{"status only", []byte{0x90}, Event{}},
		{"note on", []byte{0x90, 60, 100}, Event{Kind: EventNoteOn, Key: 60, Velocity: 100}},
		{"note on other channel", []byte{0x9A, 60, 100}, Event{Kind: EventNoteOn, Key: 60, Velocity: 100}},
		{"note on velocity 0", []byte{0x91, 0x40, 0x00}, Event{Kind: EventNoteOff, Key: 0x40}},
		{"note on velocity 128", []byte{0x90, 60, 128}, Event{}},
		{"note on short", []byte{0x90, 60}, Event{}},
		{"note off", []byte{0x80, 60, 64}, Event{Kind: EventNoteOff, Key: 60}},
		{"note off short", []byte{0x80, 60}, Event{}},
		{"bank select lsb", []byte{0xB0, 0x20, 0x05}, Event{Kind: EventBankSelectLSB, Value: 5}},
		{"bank select msb", []byte{0xB0, 0x00, 0x05}, Event{}},
		{"control change short", []byte{0xB0, 0x20}, Event{}},
		{"program change", []byte{0xC3, 12}, Event{Kind: EventProgramChange, Value: 12}},
		{"pitch bend", []byte{0xE0, 0x11, 0x22}, Event{Kind: EventPitchBend, Value: 0x11}},
		{"pitch bend short", []byte{0xE0, 0x11}, Event{Kind: EventPitchBend, Value: 0x11}},
		{"aftertouch", []byte{0xA0, 60, 10}, Event{}},
		{"system", []byte{0xF3, 1}, Event{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decode(tt.msg))
		})
	}
}

func TestEvent_String(t *testing.T) {
	assert.Equal(t, "note-on key=60 velocity=100", Event{Kind: EventNoteOn, Key: 60, Velocity: 100}.String())
	assert.Equal(t, "note-off key=60", Event{Kind: EventNoteOff, Key: 60}.String())
	assert.Equal(t, "pitch-bend value=3", Event{Kind: EventPitchBend, Value: 3}.String())
	assert.Equal(t, "none", Event{}.String())
	assert.Equal(t, "EventKind(42)", EventKind(42).String())
}
