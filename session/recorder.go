package session

import (
	"card-garden/flower"
	"card-garden/prefs"
)

// Recorder receives one call per user-visible event. The telemetry package
// backs it with prometheus counters.
type Recorder interface {
	CardActivated(kind flower.Kind)
	OverlayOpened(kind flower.Kind)
	ThemeChanged(theme prefs.Theme)
	AudioChanged(on bool)
	AudioFailed()
	Reset()
}

type nopRecorder struct{}

func (nopRecorder) CardActivated(flower.Kind) {}
func (nopRecorder) OverlayOpened(flower.Kind) {}
func (nopRecorder) ThemeChanged(prefs.Theme)  {}
func (nopRecorder) AudioChanged(bool)         {}
func (nopRecorder) AudioFailed()              {}
func (nopRecorder) Reset()                    {}
