package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"card-garden/ambient"
	"card-garden/cards"
)

// Config is the optional card-garden.yaml. Every field has a default, so an
// absent file or an absent key means the built-in behaviour.
type Config struct {
	Window       Window   `yaml:"window"`
	FlipSettleMS int      `yaml:"flip_settle_ms" validate:"min=0,max=5000"`
	Audio        Audio    `yaml:"audio"`
	Prefs        Prefs    `yaml:"prefs"`
	Preview      Preview  `yaml:"preview"`
	Messages     []string `yaml:"messages" validate:"dive,nonblank"`
	LogLevel     string   `yaml:"log_level" validate:"oneof=trace debug info warn error"`
}

type Window struct {
	Width  int    `yaml:"width" validate:"min=320,max=7680"`
	Height int    `yaml:"height" validate:"min=240,max=4320"`
	Title  string `yaml:"title" validate:"required"`
}

type Audio struct {
	SampleRate int     `yaml:"sample_rate" validate:"oneof=22050 44100 48000"`
	TargetGain float64 `yaml:"target_gain" validate:"gt=0,lte=1"`
	RampOnMS   int     `yaml:"ramp_on_ms" validate:"min=0,max=10000"`
	RampOffMS  int     `yaml:"ramp_off_ms" validate:"min=0,max=10000"`
}

type Prefs struct {
	Backend     string `yaml:"backend" validate:"oneof=file memory redis"`
	Path        string `yaml:"path"`
	RedisAddr   string `yaml:"redis_addr" validate:"required_if=Backend redis"`
	RedisPrefix string `yaml:"redis_prefix"`
}

// Preview configures the HTTP preview server. Enabled also runs it beside
// the window so /metrics reports the live session.
type Preview struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr" validate:"required"`
	Size    int    `yaml:"size" validate:"min=16,max=4096"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	pad := ambient.DefaultConfig()
	return Config{
		Window: Window{
			Width:  1080,
			Height: 720,
			Title:  "Card Garden",
		},
		FlipSettleMS: int(cards.DefaultSettle / time.Millisecond),
		Audio: Audio{
			SampleRate: pad.SampleRate,
			TargetGain: pad.TargetGain,
			RampOnMS:   int(pad.RampOn / time.Millisecond),
			RampOffMS:  int(pad.RampOff / time.Millisecond),
		},
		Prefs: Prefs{
			Backend:     "file",
			RedisPrefix: "card-garden:prefs:",
		},
		Preview: Preview{
			Addr: ":8088",
			Size: 512,
		},
		LogLevel: "info",
	}
}

// Load reads path over the defaults and validates the result. An empty path
// returns Default.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// FlipSettle is the delay between a card flip and its reveal.
func (c Config) FlipSettle() time.Duration {
	return time.Duration(c.FlipSettleMS) * time.Millisecond
}

// Ambient applies the audio overrides to the default pad voicing.
func (c Config) Ambient() ambient.Config {
	pad := ambient.DefaultConfig()
	pad.SampleRate = c.Audio.SampleRate
	pad.TargetGain = c.Audio.TargetGain
	pad.RampOn = time.Duration(c.Audio.RampOnMS) * time.Millisecond
	pad.RampOff = time.Duration(c.Audio.RampOffMS) * time.Millisecond
	return pad
}

// Catalog returns the message override, or the built-in messages when none
// is configured.
func (c Config) Catalog() (*cards.Catalog, error) {
	if c.Messages == nil {
		return cards.DefaultCatalog(), nil
	}
	return cards.NewCatalog(c.Messages)
}
