package smf

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/Garik-/mididevice/pkg/input"
	"go.uber.org/zap"
)

// DefaultTempo is 120 bpm, used until the first set tempo event.
const DefaultTempo uint32 = 500000

// Player sends the messages of a decoded file to a handler in real time,
// each track on the cable with its index.
type Player struct {
	handler input.Handler
	log     *zap.Logger

	// Sleep waits for d or until ctx is done.
	Sleep func(ctx context.Context, d time.Duration) error
}

func NewPlayer(h input.Handler, l *zap.Logger) *Player {
	if l == nil {
		l = zap.NewNop()
	}
	return &Player{
		handler: h,
		log:     l.Named("player"),
		Sleep:   sleep,
	}
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func ticksToDuration(ticks uint64, tempo uint32, ticksPerQuarter uint16) time.Duration {
	return time.Duration(ticks) * time.Duration(tempo) * time.Microsecond / time.Duration(ticksPerQuarter)
}

// Play blocks until every message is sent or ctx is done.
func (p *Player) Play(ctx context.Context, d *Decoder) error {
	if d.TimeFormat != MetricalTF || d.TicksPerQuarterNote == 0 {
		return fmt.Errorf("%w - only metrical time can be played", ErrFmtNotSupported)
	}

	msgs := d.Merged()

	tempos := append([]TempoChange(nil), d.Tempos...)
	sort.SliceStable(tempos, func(i, j int) bool {
		return tempos[i].Tick < tempos[j].Tick
	})

	p.log.Info("play", zap.Int("tracks", len(d.Tracks)), zap.Int("messages", len(msgs)))

	tempo := DefaultTempo
	var lastTick uint64
	ti := 0

	for _, m := range msgs {
		var wait time.Duration
		for ti < len(tempos) && tempos[ti].Tick <= m.Tick {
			wait += ticksToDuration(tempos[ti].Tick-lastTick, tempo, d.TicksPerQuarterNote)
			lastTick = tempos[ti].Tick
			tempo = tempos[ti].MicrosPerQuarter
			ti++
		}
		wait += ticksToDuration(m.Tick-lastTick, tempo, d.TicksPerQuarterNote)
		lastTick = m.Tick

		if wait > 0 {
			if err := p.Sleep(ctx, wait); err != nil {
				return err
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}

		p.handler.MessageHandler(m.Data, uint(m.Track))
	}

	return nil
}
