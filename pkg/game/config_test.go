package game

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, time.Second/60, cfg.FrameDuration())
	assert.Equal(t, 300*time.Millisecond, time.Duration(cfg.FlashDelay))
}

func TestConfigValidate(t *testing.T) {
	tests := map[string]func(*Config){
		"narrow":       func(c *Config) { c.Columns = 3 },
		"short":        func(c *Config) { c.Rows = 0 },
		"tick rate":    func(c *Config) { c.TickRate = 0 },
		"min cadence":  func(c *Config) { c.MinCadence = 0 },
		"base cadence": func(c *Config) { c.BaseCadence = 5 },
		"divisor":      func(c *Config) { c.SpeedDivisor = 0 },
		"soft drop":    func(c *Config) { c.SoftDropCadence = -1 },
		"repeat":       func(c *Config) { c.RepeatThreshold = 0 },
		"flash delay":  func(c *Config) { c.FlashDelay = -1 },
		"randomizer":   func(c *Config) { c.Randomizer = "history" },
	}

	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := DefaultConfig()
			mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"rows": 22, "flash_delay": "100ms", "randomizer": "bag", "seed": 9}`), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 22, cfg.Rows)
	assert.Equal(t, 10, cfg.Columns)
	assert.Equal(t, 100*time.Millisecond, time.Duration(cfg.FlashDelay))
	assert.Equal(t, "bag", cfg.Randomizer)
	assert.Equal(t, int64(9), cfg.Seed)

	g, err := New(cfg)
	require.NoError(t, err)
	assert.Equal(t, 22, g.Grid.H)
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadConfig(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"rows": 2}`), 0644))
	_, err = LoadConfig(bad)
	assert.ErrorContains(t, err, "rows")

	dur := filepath.Join(dir, "dur.json")
	require.NoError(t, os.WriteFile(dur, []byte(`{"flash_delay": 300}`), 0644))
	_, err = LoadConfig(dur)
	assert.Error(t, err)
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SpeedDivisor = 0

	_, err := New(cfg)
	assert.Error(t, err)
}
