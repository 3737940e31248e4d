package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	"card-garden/ambient"
	"card-garden/cards"
	"card-garden/config"
	"card-garden/logger"
	"card-garden/prefs"
	"card-garden/session"
	"card-garden/telemetry"
)

// app is everything a command needs, built once from the configuration.
type app struct {
	cfg     config.Config
	log     *logger.Logger
	metrics *telemetry.Metrics
	store   prefs.Store
}

func newApp(configPath string, verbose bool) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	level := cfg.LogLevel
	if verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{Level: level, HumanReadable: true, Writer: os.Stderr})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return &app{cfg: cfg, log: log, metrics: telemetry.NewMetrics()}, nil
}

// openStore returns the configured preference backend. A broken backend
// degrades to an in-memory store so the session still runs.
func (a *app) openStore() prefs.Store {
	p := a.cfg.Prefs
	switch p.Backend {
	case "memory":
		return prefs.NewMemoryStore()
	case "redis":
		opts := []prefs.RedisOption{prefs.WithLogger(a.log)}
		if p.RedisPrefix != "" {
			opts = append(opts, prefs.WithPrefix(p.RedisPrefix))
		}
		return prefs.NewRedisStore(p.RedisAddr, "", 0, opts...)
	}

	path := p.Path
	if path == "" {
		def, err := prefs.DefaultPath()
		if err != nil {
			a.log.Error(err, "no preference path, preferences will not persist")
			return prefs.NewMemoryStore()
		}
		path = def
	}
	store, err := prefs.OpenFile(path)
	if err != nil {
		a.log.With("path", path).Error(err, "preference file unreadable, preferences will not persist")
		return prefs.NewMemoryStore()
	}
	a.log.With("path", path).Debug("preferences loaded")
	return store
}

// newSession builds the deck, the audio engine and the orchestrator.
func (a *app) newSession(backend ambient.Backend) (*session.Orchestrator, error) {
	catalog, err := a.cfg.Catalog()
	if err != nil {
		return nil, err
	}
	deck, err := cards.NewDeck(cards.DefaultDefinitions(), catalog, cards.WithSettle(a.cfg.FlipSettle()))
	if err != nil {
		return nil, err
	}
	engine := ambient.NewEngine(backend, a.cfg.Ambient(), a.log)
	a.store = a.openStore()
	return session.New(deck, a.store, engine,
		session.WithLogger(a.log),
		session.WithRecorder(a.metrics),
	), nil
}

// previewHandler serves flower previews and the metrics the session records.
func (a *app) previewHandler() http.Handler {
	return telemetry.NewHandler(a.metrics, a.cfg.Preview.Size, a.log)
}

// startPreview runs the preview server in the background until the returned
// stop func is called. stop waits for the server to shut down.
func (a *app) startPreview(ctx context.Context, addr string) (stop func()) {
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := telemetry.Serve(ctx, addr, a.previewHandler(), a.log); err != nil {
			a.log.Error(err, "preview server stopped")
		}
	}()
	return func() {
		cancel()
		<-done
	}
}

// closeStore releases a preference backend that holds a connection.
func (a *app) closeStore() {
	c, ok := a.store.(io.Closer)
	if !ok {
		return
	}
	if err := c.Close(); err != nil {
		a.log.Error(err, "close preference store")
	}
}
