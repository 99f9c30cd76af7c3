package input

import "sync"

// Handler receives one complete MIDI message at a time.
// *midi.Device satisfies it.
type Handler interface {
	MessageHandler(msg []byte, cable uint)
}

type HandlerFunc func(msg []byte, cable uint)

func (f HandlerFunc) MessageHandler(msg []byte, cable uint) {
	f(msg, cable)
}

type serialized struct {
	mu sync.Mutex
	h  Handler
}

// Serialize makes h safe to call from several sources at once by letting
// only one message through at a time.
func Serialize(h Handler) Handler {
	return &serialized{h: h}
}

func (s *serialized) MessageHandler(msg []byte, cable uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.h.MessageHandler(msg, cable)
}
