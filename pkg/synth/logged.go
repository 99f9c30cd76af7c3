package synth

import (
	"github.com/Garik-/mididevice/pkg/midi"
	"go.uber.org/zap"
)

type logged struct {
	next midi.Synthesizer
	log  *zap.Logger
}

// Logged logs every call at info level and forwards it to next.
// next may be nil, then the calls are only logged.
func Logged(next midi.Synthesizer, l *zap.Logger) midi.Synthesizer {
	if l == nil {
		l = zap.NewNop()
	}
	return &logged{next: next, log: l.Named("synth")}
}

func (s *logged) NoteOn(key, velocity uint8) {
	s.log.Info("note on", zap.Uint8("key", key), zap.Uint8("velocity", velocity))
	if s.next != nil {
		s.next.NoteOn(key, velocity)
	}
}

func (s *logged) NoteOff(key uint8) {
	s.log.Info("note off", zap.Uint8("key", key))
	if s.next != nil {
		s.next.NoteOff(key)
	}
}

func (s *logged) BankSelectLSB(value uint8) {
	s.log.Info("bank select lsb", zap.Uint8("value", value))
	if s.next != nil {
		s.next.BankSelectLSB(value)
	}
}

func (s *logged) ProgramChange(value uint8) {
	s.log.Info("program change", zap.Uint8("value", value))
	if s.next != nil {
		s.next.ProgramChange(value)
	}
}

func (s *logged) PitchBend(value uint8) {
	s.log.Info("pitch bend", zap.Uint8("value", value))
	if s.next != nil {
		s.next.PitchBend(value)
	}
}
