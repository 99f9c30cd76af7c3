package midi

import (
	"io"
	"os"

	"go.uber.org/zap"
)

//go:generate mockgen -destination=mocks/mock_synthesizer.go -package=mocks github.com/Garik-/mididevice/pkg/midi Synthesizer

// Synthesizer receives the decoded events. Calls are synchronous and are
// expected to return promptly.
type Synthesizer interface {
	NoteOn(key, velocity uint8)
	NoteOff(key uint8)
	BankSelectLSB(value uint8)
	ProgramChange(value uint8)
	PitchBend(value uint8)
}

// DumpConfig tells the device whether incoming messages are traced.
// It is asked once per message so the flag may change at runtime.
type DumpConfig interface {
	MIDIDumpEnabled() bool
}

type Option func(*Device)

// WithTraceWriter sets where trace lines go, os.Stdout by default.
func WithTraceWriter(w io.Writer) Option {
	return func(d *Device) {
		d.trace = w
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(d *Device) {
		if l != nil {
			d.log = l.Named("device")
		}
	}
}

// Device decodes framed MIDI messages and drives a Synthesizer.
// It keeps no state between messages and does no locking: callers
// delivering from several cables at once must serialize the calls.
type Device struct {
	synth  Synthesizer
	config DumpConfig
	trace  io.Writer
	log    *zap.Logger
}

// NewDevice panics if synth is nil. A nil config disables tracing.
func NewDevice(synth Synthesizer, config DumpConfig, opts ...Option) *Device {
	if synth == nil {
		panic("midi: NewDevice called with nil Synthesizer")
	}

	d := &Device{
		synth:  synth,
		config: config,
		trace:  os.Stdout,
		log:    zap.NewNop(),
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// MessageHandler handles one complete message received on cable.
func (d *Device) MessageHandler(msg []byte, cable uint) {
	d.Dispatch(msg, cable, d.config != nil && d.config.MIDIDumpEnabled())
}

// Dispatch is MessageHandler with the trace flag given explicitly.
// Malformed or unsupported messages are dropped without error.
func (d *Device) Dispatch(msg []byte, cable uint, traceEnabled bool) {
	if traceEnabled {
		writeTrace(d.trace, msg, cable)
	}

	if len(msg) < 2 {
		return
	}

	e := Decode(msg)
	if e.Kind == EventNone {
		d.log.Debug("dropped", zap.Uint("cable", cable), zap.Binary("msg", msg))
		return
	}

	d.log.Debug("event", zap.Uint("cable", cable), zap.Stringer("event", e))
	d.apply(e)
}

func (d *Device) apply(e Event) {
	switch e.Kind {
	case EventNoteOn:
		d.synth.NoteOn(e.Key, e.Velocity)
	case EventNoteOff:
		d.synth.NoteOff(e.Key)
	case EventBankSelectLSB:
		d.synth.BankSelectLSB(e.Value)
	case EventProgramChange:
		d.synth.ProgramChange(e.Value)
	case EventPitchBend:
		d.synth.PitchBend(e.Value)
	case EventNone:
	}
}
