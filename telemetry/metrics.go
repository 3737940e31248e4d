package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"

	"card-garden/flower"
	"card-garden/prefs"
)

// Metrics counts what the user does with the cards. It satisfies
// session.Recorder.
type Metrics struct {
	registry *prometheus.Registry

	flips     *prometheus.CounterVec
	opens     *prometheus.CounterVec
	themes    *prometheus.CounterVec
	audio     *prometheus.CounterVec
	failures  prometheus.Counter
	resets    prometheus.Counter
	renders   *prometheus.CounterVec
	renderDur *prometheus.HistogramVec
}

// NewMetrics registers every collector on a private registry so several
// instances can coexist in tests.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		flips: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cardgarden_cards_flipped_total",
				Help: "Card flips by flower kind",
			},
			[]string{"flower"},
		),
		opens: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cardgarden_overlay_opened_total",
				Help: "Overlay reveals by flower kind",
			},
			[]string{"flower"},
		),
		themes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cardgarden_theme_changes_total",
				Help: "Theme toggles by resulting theme",
			},
			[]string{"theme"},
		),
		audio: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cardgarden_audio_toggles_total",
				Help: "Audio toggles by resulting state",
			},
			[]string{"state"},
		),
		failures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "cardgarden_audio_failures_total",
			Help: "Audio start requests the platform refused",
		}),
		resets: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "cardgarden_resets_total",
			Help: "Reset-all requests",
		}),
		renders: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cardgarden_preview_renders_total",
				Help: "Preview server renders by flower kind and format",
			},
			[]string{"flower", "format"},
		),
		renderDur: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "cardgarden_preview_render_seconds",
				Help:    "Time spent generating and encoding a preview",
				Buckets: prometheus.ExponentialBuckets(0.0005, 2, 12),
			},
			[]string{"format"},
		),
	}
	m.registry.MustRegister(m.flips, m.opens, m.themes, m.audio, m.failures, m.resets, m.renders, m.renderDur)
	return m
}

func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

func (m *Metrics) CardActivated(kind flower.Kind) {
	m.flips.WithLabelValues(kind.String()).Inc()
}

func (m *Metrics) OverlayOpened(kind flower.Kind) {
	m.opens.WithLabelValues(kind.String()).Inc()
}

func (m *Metrics) ThemeChanged(theme prefs.Theme) {
	m.themes.WithLabelValues(string(theme)).Inc()
}

func (m *Metrics) AudioChanged(on bool) {
	m.audio.WithLabelValues(prefs.FormatAudio(on)).Inc()
}

func (m *Metrics) AudioFailed() { m.failures.Inc() }

func (m *Metrics) Reset() { m.resets.Inc() }
