package input

import (
	"errors"
	"fmt"
	"strings"

	gomidi "gitlab.com/gomidi/midi/v2"
	"go.uber.org/zap"
)

// ErrPortNotFound is returned when no input port matches a configured name.
var ErrPortNotFound = errors.New("midi input port not found")

// Ports listens on the system MIDI input ports. A driver has to be
// registered by the program, e.g. by importing rtmididrv.
type Ports struct {
	stops []func()
	log   *zap.Logger
}

// ListPorts returns the names of the available input ports.
func ListPorts() []string {
	var names []string
	for _, in := range gomidi.GetInPorts() {
		names = append(names, in.String())
	}
	return names
}

// matchPort finds want in available, first as an exact name and then as a
// case insensitive substring.
func matchPort(available []string, want string) (int, bool) {
	for i, name := range available {
		if name == want {
			return i, true
		}
	}

	want = strings.ToLower(want)
	for i, name := range available {
		if strings.Contains(strings.ToLower(name), want) {
			return i, true
		}
	}
	return -1, false
}

// OpenPorts starts listening on every named port. The position of a name
// in names is the cable its messages are delivered on.
func OpenPorts(names []string, h Handler, l *zap.Logger) (*Ports, error) {
	if l == nil {
		l = zap.NewNop()
	}

	p := &Ports{log: l.Named("ports")}

	ins := gomidi.GetInPorts()
	available := make([]string, len(ins))
	for i, in := range ins {
		available[i] = in.String()
	}

	for i, name := range names {
		idx, ok := matchPort(available, name)
		if !ok {
			p.Close()
			return nil, fmt.Errorf("%w: %q", ErrPortNotFound, name)
		}

		cable := uint(i)
		in := ins[idx]
		log := p.log.With(zap.String("port", in.String()), zap.Uint("cable", cable))

		stop, err := gomidi.ListenTo(in, func(msg gomidi.Message, timestampms int32) {
			h.MessageHandler(msg, cable)
		}, gomidi.UseActiveSense(), gomidi.HandleError(func(err error) {
			log.Warn("listen", zap.Error(err))
		}))
		if err != nil {
			p.Close()
			return nil, fmt.Errorf("listen on %q: %w", in.String(), err)
		}

		log.Info("listening")
		p.stops = append(p.stops, stop)
	}

	return p, nil
}

func (p *Ports) Close() {
	for _, stop := range p.stops {
		stop()
	}
	p.stops = nil
}
