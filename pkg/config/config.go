package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync/atomic"

	"gopkg.in/yaml.v3"
)

const DefaultBaudRate = 31250

// ErrInvalid is returned by Validate.
var ErrInvalid = errors.New("invalid config")

// SerialConfig describes a UART MIDI input.
type SerialConfig struct {
	Device   string `yaml:"device"`
	BaudRate int    `yaml:"baud"`
	Cable    uint   `yaml:"cable"`
}

type Config struct {
	MIDIDump bool         `yaml:"midi_dump"`
	LogLevel string       `yaml:"log_level"`
	Ports    []string     `yaml:"ports"`
	Serial   SerialConfig `yaml:"serial"`
	Files    []string     `yaml:"files"`

	dump atomic.Bool
}

func Default() *Config {
	return &Config{
		LogLevel: "info",
		Serial: SerialConfig{
			BaudRate: DefaultBaudRate,
		},
	}
}

// Load reads a YAML config. An empty path gives the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %q: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %q: %w", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cfg.dump.Store(cfg.MIDIDump)
	return cfg, nil
}

func (c *Config) Validate() error {
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown log_level %q", ErrInvalid, c.LogLevel)
	}

	if c.Serial.BaudRate <= 0 {
		return fmt.Errorf("%w: serial baud must be > 0, got %d", ErrInvalid, c.Serial.BaudRate)
	}

	for i, p := range c.Ports {
		if strings.TrimSpace(p) == "" {
			return fmt.Errorf("%w: ports[%d] is empty", ErrInvalid, i)
		}
	}

	return nil
}

// MIDIDumpEnabled reports whether incoming messages are traced.
func (c *Config) MIDIDumpEnabled() bool {
	return c.dump.Load()
}

// SetMIDIDump switches tracing at runtime.
func (c *Config) SetMIDIDump(enabled bool) {
	c.dump.Store(enabled)
}
