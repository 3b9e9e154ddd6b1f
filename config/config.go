// Package config resolves host settings from defaults, a .env file, the
// process environment and command-line flags, in increasing precedence.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/plus3/woodland/sim"
)

// Environment variables read by Load.
const (
	EnvAssets       = "WOODLAND_ASSETS"
	EnvSounds       = "WOODLAND_SOUNDS"
	EnvMusic        = "WOODLAND_MUSIC"
	EnvEffectVolume = "WOODLAND_EFFECT_VOLUME"
	EnvMusicVolume  = "WOODLAND_MUSIC_VOLUME"
	EnvMute         = "WOODLAND_MUTE"
	EnvSeed         = "WOODLAND_SEED"
	EnvTPS          = "WOODLAND_TPS"
	EnvTrees        = "WOODLAND_TREES"
)

// Config is everything the host needs before the first frame.
// Empty Sounds and Music directories resolve under Assets.
type Config struct {
	Assets       string
	Sounds       string
	Music        string
	EffectVolume float64
	MusicVolume  float64
	Mute         bool
	Seed         uint64 // 0 picks a random seed
	TPS          int
	Trees        int
}

// Default returns the settings used when nothing overrides them.
func Default() Config {
	return Config{
		Assets:       "assets",
		EffectVolume: 1,
		MusicVolume:  0.6,
		TPS:          144,
		Trees:        sim.DefaultConfig().TreeCount,
	}
}

// Load starts from Default and applies envFile (if it exists) and then the
// process environment. A variable set in the environment wins over the file.
func Load(envFile string) (Config, error) {
	cfg := Default()

	file := map[string]string{}
	if envFile != "" {
		read, err := godotenv.Read(envFile)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return cfg, fmt.Errorf("read %s: %w", envFile, err)
		default:
			file = read
		}
	}

	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := file[key]
		return v, ok
	}
	if err := cfg.apply(lookup); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) apply(lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok {
			*dst = v
		}
	}
	str(EnvAssets, &c.Assets)
	str(EnvSounds, &c.Sounds)
	str(EnvMusic, &c.Music)

	var errs []error
	parse := func(key string, set func(string) error) {
		v, ok := lookup(key)
		if !ok {
			return
		}
		if err := set(v); err != nil {
			errs = append(errs, fmt.Errorf("%s=%q: %w", key, v, err))
		}
	}
	parse(EnvEffectVolume, func(v string) (err error) {
		c.EffectVolume, err = strconv.ParseFloat(v, 64)
		return err
	})
	parse(EnvMusicVolume, func(v string) (err error) {
		c.MusicVolume, err = strconv.ParseFloat(v, 64)
		return err
	})
	parse(EnvMute, func(v string) (err error) {
		c.Mute, err = strconv.ParseBool(v)
		return err
	})
	parse(EnvSeed, func(v string) (err error) {
		c.Seed, err = strconv.ParseUint(v, 10, 64)
		return err
	})
	parse(EnvTPS, func(v string) (err error) {
		c.TPS, err = strconv.Atoi(v)
		return err
	})
	parse(EnvTrees, func(v string) (err error) {
		c.Trees, err = strconv.Atoi(v)
		return err
	})
	return errors.Join(errs...)
}

// BindFlags registers a flag per setting, defaulting to the current values,
// so flags parsed afterwards override everything else.
func (c *Config) BindFlags(flags *flag.FlagSet) {
	flags.StringVar(&c.Assets, "assets", c.Assets, "assets directory")
	flags.StringVar(&c.Sounds, "sounds", c.Sounds, "sound effects directory (default <assets>/sounds)")
	flags.StringVar(&c.Music, "music", c.Music, "music directory (default <assets>/music)")
	flags.Float64Var(&c.EffectVolume, "effect-volume", c.EffectVolume, "sound effect gain")
	flags.Float64Var(&c.MusicVolume, "music-volume", c.MusicVolume, "music gain")
	flags.BoolVar(&c.Mute, "mute", c.Mute, "disable audio")
	flags.Uint64Var(&c.Seed, "seed", c.Seed, "world seed (0 for random)")
	flags.IntVar(&c.TPS, "tps", c.TPS, "simulation ticks per second")
	flags.IntVar(&c.Trees, "trees", c.Trees, "number of trees")
}

// Validate rejects settings the game cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.EffectVolume < 0 || c.MusicVolume < 0 {
		errs = append(errs, errors.New("volumes must not be negative"))
	}
	if c.TPS <= 0 {
		errs = append(errs, fmt.Errorf("tps must be positive, got %d", c.TPS))
	}
	if c.Trees < 0 {
		errs = append(errs, fmt.Errorf("trees must not be negative, got %d", c.Trees))
	}
	return errors.Join(errs...)
}

// SpritesDir is where sprite sheets live.
func (c *Config) SpritesDir() string {
	return filepath.Join(c.Assets, "sprites")
}

// SoundDir is where sound effects live.
func (c *Config) SoundDir() string {
	if c.Sounds != "" {
		return c.Sounds
	}
	return filepath.Join(c.Assets, "sounds")
}

// MusicDir is where music tracks live.
func (c *Config) MusicDir() string {
	if c.Music != "" {
		return c.Music
	}
	return filepath.Join(c.Assets, "music")
}

// Sim returns the simulation settings for this host.
func (c *Config) Sim() sim.Config {
	cfg := sim.DefaultConfig()
	cfg.TreeCount = c.Trees
	return cfg
}
