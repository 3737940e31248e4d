package prefs

import (
	"errors"
	"fmt"

	"card-garden/logger"
)

// Keys under which the two preferences are stored.
const (
	ThemeKey = "cg_theme"
	AudioKey = "cg_audio"
)

var ErrInvalidValue = errors.New("prefs: invalid value")

// Store is a synchronous string key-value store that outlives the session.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string) error
}

type Theme string

const (
	Pastel Theme = "pastel"
	Dark   Theme = "dark"
)

func ParseTheme(s string) (Theme, error) {
	switch Theme(s) {
	case Pastel, Dark:
		return Theme(s), nil
	}
	return Pastel, fmt.Errorf("%w: theme %q", ErrInvalidValue, s)
}

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == Dark {
		return Pastel
	}
	return Dark
}

func FormatAudio(on bool) string {
	if on {
		return "on"
	}
	return "off"
}

func ParseAudio(s string) (bool, error) {
	switch s {
	case "on":
		return true, nil
	case "off":
		return false, nil
	}
	return false, fmt.Errorf("%w: audio %q", ErrInvalidValue, s)
}

// Preferences are the two user choices that survive a restart.
type Preferences struct {
	Theme   Theme
	AudioOn bool
}

// Defaults is what a first run, or a store holding garbage, starts with.
func Defaults() Preferences {
	return Preferences{Theme: Pastel, AudioOn: false}
}

// Load reads both preferences. Missing values take the defaults silently,
// malformed ones take the defaults with a warning.
func Load(s Store, log *logger.Logger) Preferences {
	p := Defaults()

	if raw, ok := s.Get(ThemeKey); ok {
		if t, err := ParseTheme(raw); err != nil {
			log.With("key", ThemeKey).Warn(err.Error())
		} else {
			p.Theme = t
		}
	}

	if raw, ok := s.Get(AudioKey); ok {
		if on, err := ParseAudio(raw); err != nil {
			log.With("key", AudioKey).Warn(err.Error())
		} else {
			p.AudioOn = on
		}
	}
	return p
}

func SaveTheme(s Store, t Theme) error {
	if _, err := ParseTheme(string(t)); err != nil {
		return err
	}
	return s.Set(ThemeKey, string(t))
}

func SaveAudio(s Store, on bool) error {
	return s.Set(AudioKey, FormatAudio(on))
}
