package main

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"card-garden/config"
	"card-garden/logger"
	"card-garden/prefs"
	"card-garden/telemetry"
)

func newTestApp(t *testing.T, cfg config.Config) *app {
	t.Helper()
	return &app{cfg: cfg, log: logger.Nop(), metrics: telemetry.NewMetrics()}
}

func scrape(t *testing.T, h http.Handler) string {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	return string(body)
}

func TestPreviewHandlerReportsSessionMetrics(t *testing.T) {
	cfg := config.Default()
	cfg.Prefs.Backend = "memory"
	a := newTestApp(t, cfg)
	o, err := a.newSession(&silentBackend{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = o.Close() })

	require.NoError(t, o.Activate(2))
	o.Tick(time.Now().Add(time.Second))
	o.ToggleTheme()

	body := scrape(t, a.previewHandler())
	assert.Contains(t, body, `cardgarden_cards_flipped_total{flower="daisy"} 1`)
	assert.Contains(t, body, `cardgarden_overlay_opened_total{flower="daisy"} 1`)
	assert.Contains(t, body, `cardgarden_theme_changes_total{theme="dark"} 1`)
}

func TestCloseStoreReleasesRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := config.Default()
	cfg.Prefs.Backend = "redis"
	cfg.Prefs.RedisAddr = mr.Addr()
	a := newTestApp(t, cfg)

	o, err := a.newSession(&silentBackend{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = o.Close() })

	store, ok := a.store.(*prefs.RedisStore)
	require.True(t, ok)
	require.NoError(t, store.Set(prefs.ThemeKey, "dark"))
	assert.GreaterOrEqual(t, mr.CurrentConnectionCount(), 1)

	a.closeStore()
	assert.Eventually(t, func() bool { return mr.CurrentConnectionCount() == 0 }, time.Second, 10*time.Millisecond)
	_, found := store.Get(prefs.ThemeKey)
	assert.False(t, found)
}

func TestCloseStoreIgnoresPlainStores(t *testing.T) {
	a := newTestApp(t, config.Default())
	a.store = prefs.NewMemoryStore()
	assert.NotPanics(t, a.closeStore)
}
