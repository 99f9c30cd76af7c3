package input

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/Garik-/mididevice/pkg/config"
	"go.bug.st/serial"
	"go.uber.org/zap"
)

const serialReadTimeout = 100 * time.Millisecond

// Serial reads MIDI from a UART, the way a DIN socket is wired to a board.
type Serial struct {
	port   serial.Port
	device string
	baud   int
	framer *Framer
	log    *zap.Logger
}

func OpenSerial(cfg config.SerialConfig, h Handler, l *zap.Logger) (*Serial, error) {
	if l == nil {
		l = zap.NewNop()
	}

	baud := cfg.BaudRate
	if baud <= 0 {
		baud = config.DefaultBaudRate
	}

	port, err := serial.Open(cfg.Device, &serial.Mode{BaudRate: baud})
	if err != nil {
		return nil, fmt.Errorf("open serial %s: %w", cfg.Device, err)
	}

	if err := port.SetReadTimeout(serialReadTimeout); err != nil {
		port.Close()
		return nil, fmt.Errorf("serial %s read timeout: %w", cfg.Device, err)
	}

	return &Serial{
		port:   port,
		device: cfg.Device,
		baud:   baud,
		framer: NewFramer(h, cfg.Cable),
		log:    l.Named("serial").With(zap.String("device", cfg.Device), zap.Uint("cable", cfg.Cable)),
	}, nil
}

// Run reads until ctx is done or the port fails, then closes the port.
func (s *Serial) Run(ctx context.Context) error {
	defer s.port.Close()

	s.log.Info("listening", zap.Int("baud", s.baud))
	err := readLoop(ctx, s.port, s.framer)
	if err != nil && !errors.Is(err, context.Canceled) {
		s.log.Error("read", zap.Error(err))
		return fmt.Errorf("serial %s: %w", s.device, err)
	}
	return err
}

// readLoop copies r into the framer. A zero read is a timeout and only
// gives ctx a chance to stop the loop. io.EOF ends the loop without error.
func readLoop(ctx context.Context, r io.Reader, f *Framer) error {
	buf := make([]byte, 128)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		n, err := r.Read(buf)
		if n > 0 {
			f.Write(buf[:n])
		}

		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}
