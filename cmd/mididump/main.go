package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/Garik-/mididevice/pkg/config"
	"github.com/Garik-/mididevice/pkg/input"
	"github.com/Garik-/mididevice/pkg/midi"
	"github.com/Garik-/mididevice/pkg/smf"
	"github.com/Garik-/mididevice/pkg/synth"
	gomidi "gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // registers the driver
	"go.uber.org/zap"
)

var (
	configFlag = flag.String("config", "", "The path to the YAML config file")
	dumpFlag   = flag.Bool("dump", false, "Print every incoming message, overrides midi_dump")
	listFlag   = flag.Bool("list", false, "List MIDI input ports and exit")
	debugFlag  = flag.Bool("debug", false, "Development logging at debug level")
	fileFlag   = flag.String("file", "", "Standard MIDI file to play through the device")
)

func playFile(ctx context.Context, p *smf.Player, name string) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}

	defer f.Close()

	decoder := smf.NewDecoder(f)
	if err := decoder.Decode(); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	return p.Play(ctx, decoder)
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s \n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	defer gomidi.CloseDriver()

	if *listFlag {
		for i, name := range input.ListPorts() {
			fmt.Printf("%d: %s\n", i, name)
		}
		return
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		log.Fatal(err)
	}

	if *dumpFlag {
		cfg.SetMIDIDump(true)
	}

	files := cfg.Files
	if *fileFlag != "" {
		files = append(files, *fileFlag)
	}

	if len(cfg.Ports) == 0 && cfg.Serial.Device == "" && len(files) == 0 {
		flag.Usage()
		return
	}

	logger, err := newLogger(cfg.LogLevel, *debugFlag)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	state := synth.NewState()
	device := midi.NewDevice(synth.Logged(state, logger), cfg, midi.WithLogger(logger))
	handler := input.Serialize(device)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	live := false
	var wg sync.WaitGroup

	if len(cfg.Ports) > 0 {
		ports, err := input.OpenPorts(cfg.Ports, handler, logger)
		if err != nil {
			logger.Fatal("open ports", zap.Error(err))
		}
		defer ports.Close()
		live = true
	}

	if cfg.Serial.Device != "" {
		s, err := input.OpenSerial(cfg.Serial, handler, logger)
		if err != nil {
			logger.Fatal("open serial", zap.Error(err))
		}
		live = true

		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := s.Run(ctx); err != nil && ctx.Err() == nil {
				logger.Error("serial stopped", zap.Error(err))
			}
		}()
	}

	if len(files) > 0 {
		player := smf.NewPlayer(handler, logger)

		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, name := range files {
				if err := playFile(ctx, player, name); err != nil {
					logger.Error("play", zap.String("file", name), zap.Error(err))
					return
				}
			}
		}()
	}

	if live {
		<-ctx.Done()
	}
	wg.Wait()

	snap := state.Snapshot()
	logger.Info("done",
		zap.Int("note_ons", snap.NoteOns),
		zap.Int("note_offs", snap.NoteOffs),
		zap.Uint8s("held", state.ActiveKeys()),
		zap.Uint8("bank_lsb", snap.BankSelectLSB),
		zap.Uint8("program", snap.Program),
		zap.Uint8("pitch_bend", snap.PitchBend),
	)
}
