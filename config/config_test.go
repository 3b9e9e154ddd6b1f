package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEnv(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err, "a missing .env is not an error")
	assert.Equal(t, Default(), cfg)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadEnvFile(t *testing.T) {
	path := writeEnv(t, `
WOODLAND_ASSETS=/srv/woodland
WOODLAND_EFFECT_VOLUME=0.25
WOODLAND_MUTE=true
WOODLAND_SEED=42
WOODLAND_TREES=7
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/srv/woodland", cfg.Assets)
	assert.Equal(t, 0.25, cfg.EffectVolume)
	assert.True(t, cfg.Mute)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, 7, cfg.Trees)
	assert.Equal(t, Default().TPS, cfg.TPS)
}

func TestEnvironmentWinsOverFile(t *testing.T) {
	path := writeEnv(t, "WOODLAND_TPS=30\nWOODLAND_MUSIC=/tmp/tracks\n")
	t.Setenv(EnvTPS, "240")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 240, cfg.TPS)
	assert.Equal(t, "/tmp/tracks", cfg.MusicDir())
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv(EnvTPS, "fast")
	t.Setenv(EnvEffectVolume, "loud")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvTPS)
	assert.Contains(t, err.Error(), EnvEffectVolume)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"defaults", func(*Config) {}, true},
		{"muted volume", func(c *Config) { c.MusicVolume = 0 }, true},
		{"negative volume", func(c *Config) { c.EffectVolume = -1 }, false},
		{"zero tps", func(c *Config) { c.TPS = 0 }, false},
		{"negative trees", func(c *Config) { c.Trees = -3 }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			if tt.ok {
				assert.NoError(t, cfg.Validate())
			} else {
				assert.Error(t, cfg.Validate())
			}
		})
	}
}

func TestBindFlagsOverride(t *testing.T) {
	cfg := Default()
	cfg.Trees = 12

	flags := flag.NewFlagSet("woodland", flag.ContinueOnError)
	cfg.BindFlags(flags)
	require.NoError(t, flags.Parse([]string{"-seed", "9", "-mute"}))

	assert.Equal(t, uint64(9), cfg.Seed)
	assert.True(t, cfg.Mute)
	assert.Equal(t, 12, cfg.Trees, "unset flags keep the loaded value")
}

func TestDirectories(t *testing.T) {
	cfg := Default()
	cfg.Assets = "data"

	assert.Equal(t, filepath.Join("data", "sprites"), cfg.SpritesDir())
	assert.Equal(t, filepath.Join("data", "sounds"), cfg.SoundDir())
	assert.Equal(t, filepath.Join("data", "music"), cfg.MusicDir())

	cfg.Sounds = "elsewhere"
	assert.Equal(t, "elsewhere", cfg.SoundDir())
}

func TestSimConfig(t *testing.T) {
	cfg := Default()
	cfg.Trees = 3

	s := cfg.Sim()
	assert.Equal(t, 3, s.TreeCount)
	assert.Equal(t, float32(1280), s.ScreenWidth)
}
