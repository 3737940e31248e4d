package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"card-garden/ambient"
	"card-garden/cards"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "card-garden.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, cards.DefaultSettle, cfg.FlipSettle())
	assert.Equal(t, ambient.DefaultConfig(), cfg.Ambient())
}

func TestLoadEmptyPathReturnsDefault(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesOnlyGivenKeys(t *testing.T) {
	path := writeConfig(t, `
flip_settle_ms: 600
audio:
  target_gain: 0.1
prefs:
  backend: redis
  redis_addr: localhost:6379
messages:
  - "hello"
  - "again"
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 600*time.Millisecond, cfg.FlipSettle())
	assert.Equal(t, 0.1, cfg.Ambient().TargetGain)
	assert.Equal(t, 48000, cfg.Ambient().SampleRate)
	assert.Equal(t, "Card Garden", cfg.Window.Title)
	assert.Equal(t, "redis", cfg.Prefs.Backend)

	catalog, err := cfg.Catalog()
	require.NoError(t, err)
	assert.Equal(t, []string{"hello", "again"}, catalog.Messages())
}

func TestPreviewEnabledKeepsDefaults(t *testing.T) {
	assert.False(t, Default().Preview.Enabled)

	cfg, err := Load(writeConfig(t, "preview:\n  enabled: true\n"))
	require.NoError(t, err)
	assert.True(t, cfg.Preview.Enabled)
	assert.Equal(t, ":8088", cfg.Preview.Addr)
	assert.Equal(t, 512, cfg.Preview.Size)
}

func TestValidationFailures(t *testing.T) {
	cases := map[string]string{
		"gain out of range":  "audio:\n  target_gain: 1.5\n",
		"blank message":      "messages:\n  - \"  \"\n",
		"empty messages":     "messages: []\n",
		"unknown backend":    "prefs:\n  backend: sqlite\n",
		"redis without addr": "prefs:\n  backend: redis\n",
		"bad level":          "log_level: loud\n",
		"tiny window":        "window:\n  width: 10\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, body))
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestValidationNamesTheField(t *testing.T) {
	_, err := Load(writeConfig(t, "audio:\n  target_gain: 0\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "audio.targetgain")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalid)
}

func TestCatalogDefaultsWithoutOverride(t *testing.T) {
	catalog, err := Default().Catalog()
	require.NoError(t, err)
	assert.Equal(t, cards.DefaultCatalog().Messages(), catalog.Messages())
}
