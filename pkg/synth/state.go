package synth

import (
	"sort"
	"sync"
)

// Snapshot is a copy of the State at one point in time.
type Snapshot struct {
	Keys          map[uint8]uint8 // key -> velocity
	BankSelectLSB uint8
	Program       uint8
	PitchBend     uint8
	NoteOns       int
	NoteOffs      int
}

// State tracks what the incoming events have done to a synthesizer:
// which keys are held, the selected bank and program and the last bend.
// It is safe for concurrent use.
type State struct {
	mu   sync.Mutex
	snap Snapshot
}

func NewState() *State {
	return &State{snap: Snapshot{Keys: make(map[uint8]uint8)}}
}

func (s *State) NoteOn(key, velocity uint8) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snap.Keys[key] = velocity
	s.snap.NoteOns++
}

func (s *State) NoteOff(key uint8) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.snap.Keys, key)
	s.snap.NoteOffs++
}

func (s *State) BankSelectLSB(value uint8) {
	s.mu.Lock()
	s.snap.BankSelectLSB = value
	s.mu.Unlock()
}

func (s *State) ProgramChange(value uint8) {
	s.mu.Lock()
	s.snap.Program = value
	s.mu.Unlock()
}

func (s *State) PitchBend(value uint8) {
	s.mu.Lock()
	s.snap.PitchBend = value
	s.mu.Unlock()
}

func (s *State) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := s.snap
	out.Keys = make(map[uint8]uint8, len(s.snap.Keys))
	for k, v := range s.snap.Keys {
		out.Keys[k] = v
	}
	return out
}

// ActiveKeys returns the held keys in ascending order.
func (s *State) ActiveKeys() []uint8 {
	s.mu.Lock()
	defer s.mu.Unlock()

	keys := make([]uint8, 0, len(s.snap.Keys))
	for k := range s.snap.Keys {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
