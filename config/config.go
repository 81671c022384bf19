// @focus: #config { file, env, flags }
// Package config resolves runtime settings from defaults, a TOML file, the
// environment and command-line flags, in that order of precedence
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/space-snake/audio"
	"github.com/lixenwraith/space-snake/constants"
	"github.com/lixenwraith/space-snake/input"
)

// DefaultConfigFile is read from the working directory when -config is not given
const DefaultConfigFile = "space-snake.toml"

// Environment overrides
const (
	EnvAudioEnabled = "SPACE_SNAKE_AUDIO_ENABLED"
	EnvMasterVolume = "SPACE_SNAKE_MASTER_VOLUME" // 0-100
	EnvDatabase     = "SPACE_SNAKE_DB"
	EnvFPS          = "SPACE_SNAKE_FPS"
)

// Config is the resolved runtime configuration
type Config struct {
	Debug  bool
	FPS    int
	Seed   uint64 // 0 picks a time-based seed
	DBPath string // empty disables the score store
	LogDir string

	Audio *audio.AudioConfig
	Keys  *input.KeyTable

	// ShowTop prints this many best rounds and exits when positive
	ShowTop int

	// Source is the config file that was loaded, empty if none
	Source string
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		FPS:    constants.TargetFPS,
		DBPath: "space-snake.db",
		LogDir: "logs",
		Audio:  audio.DefaultAudioConfig(),
		Keys:   input.DefaultKeyTable(),
	}
}

// fileConfig is the TOML layout; pointer fields distinguish absent from zero
//
//	[game]
//	fps = 60
//
//	[audio]
//	master_volume = 0.4
//	[audio.effects]
//	crash = 0.9
//
//	[keys]
//	k = "up"
type fileConfig struct {
	Game struct {
		FPS      *int    `toml:"fps"`
		Seed     *int64  `toml:"seed"`
		Database *string `toml:"database"`
		LogDir   *string `toml:"log_dir"`
		Debug    *bool   `toml:"debug"`
	} `toml:"game"`

	Audio struct {
		Enabled      *bool              `toml:"enabled"`
		MasterVolume *float64           `toml:"master_volume"`
		MusicVolume  *float64           `toml:"music_volume"`
		SampleRate   *int               `toml:"sample_rate"`
		Effects      map[string]float64 `toml:"effects"`
	} `toml:"audio"`

	Keys    map[string]string `toml:"keys"`
	Special map[string]string `toml:"special"`
}

type flagValues struct {
	config string
	debug  bool
	db     string
	mute   bool
	seed   uint64
	fps    int
	top    int
}

// Load resolves the configuration for the given command-line args
// getenv is usually os.Getenv; nil disables environment overrides
func Load(args []string, getenv func(string) string) (*Config, error) {
	fset := flag.NewFlagSet("space-snake", flag.ContinueOnError)
	fset.SetOutput(io.Discard)

	var fv flagValues
	fset.StringVar(&fv.config, "config", "", "path to TOML config file")
	fset.BoolVar(&fv.debug, "debug", false, "write debug logs")
	fset.StringVar(&fv.db, "db", "", "score database path, \"off\" disables it")
	fset.BoolVar(&fv.mute, "mute", false, "disable audio")
	fset.Uint64Var(&fv.seed, "seed", 0, "random seed, 0 for time-based")
	fset.IntVar(&fv.fps, "fps", 0, "frames per second")
	fset.IntVar(&fv.top, "top", 0, "print the N best rounds and exit")
	if err := fset.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	cfg := Default()

	path, explicit := fv.config, fv.config != ""
	if !explicit {
		path = DefaultConfigFile
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := cfg.applyFile(data); err != nil {
			return nil, fmt.Errorf("config %s: %w", path, err)
		}
		cfg.Source = path
	case explicit || !errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("read config: %w", err)
	}

	if getenv != nil {
		if err := cfg.applyEnv(getenv); err != nil {
			return nil, err
		}
	}

	set := make(map[string]bool)
	fset.Visit(func(f *flag.Flag) { set[f.Name] = true })
	cfg.applyFlags(fv, set)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.Audio.Normalize()
	return cfg, nil
}

// Parse applies TOML data on top of the defaults
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := cfg.applyFile(data); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.Audio.Normalize()
	return cfg, nil
}

func (c *Config) applyFile(data []byte) error {
	var f fileConfig
	md, err := toml.Decode(string(data), &f)
	if err != nil {
		return fmt.Errorf("parse: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("unknown key %q", undecoded[0].String())
	}

	g := f.Game
	if g.FPS != nil {
		c.FPS = *g.FPS
	}
	if g.Seed != nil {
		c.Seed = uint64(*g.Seed)
	}
	if g.Database != nil {
		c.DBPath = *g.Database
	}
	if g.LogDir != nil {
		c.LogDir = *g.LogDir
	}
	if g.Debug != nil {
		c.Debug = *g.Debug
	}

	a := f.Audio
	if a.Enabled != nil {
		c.Audio.Enabled = *a.Enabled
	}
	if a.MasterVolume != nil {
		c.Audio.MasterVolume = *a.MasterVolume
	}
	if a.MusicVolume != nil {
		c.Audio.MusicVolume = *a.MusicVolume
	}
	if a.SampleRate != nil {
		c.Audio.SampleRate = *a.SampleRate
	}
	for name, v := range a.Effects {
		st, ok := audio.ParseSoundType(name)
		if !ok {
			return fmt.Errorf("[audio.effects] unknown sound %q", name)
		}
		c.Audio.EffectVolumes[st] = v
	}

	if len(f.Keys) > 0 || len(f.Special) > 0 {
		override, err := input.BuildKeyTable(f.Keys, f.Special)
		if err != nil {
			return err
		}
		c.Keys = input.MergeKeyTable(c.Keys, override)
	}
	return nil
}

func (c *Config) applyEnv(getenv func(string) string) error {
	if v := getenv(EnvAudioEnabled); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvAudioEnabled, err)
		}
		c.Audio.Enabled = b
	}
	if v := getenv(EnvMasterVolume); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvMasterVolume, err)
		}
		c.Audio.MasterVolume = float64(n) / 100.0
	}
	if v := getenv(EnvDatabase); v != "" {
		c.DBPath = v
	}
	if v := getenv(EnvFPS); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvFPS, err)
		}
		c.FPS = n
	}
	return nil
}

func (c *Config) applyFlags(fv flagValues, set map[string]bool) {
	if set["debug"] {
		c.Debug = fv.debug
	}
	if set["db"] {
		c.DBPath = fv.db
	}
	if set["mute"] && fv.mute {
		c.Audio.Enabled = false
	}
	if set["seed"] {
		c.Seed = fv.seed
	}
	if set["fps"] {
		c.FPS = fv.fps
	}
	if set["top"] {
		c.ShowTop = fv.top
	}
	if c.DBPath == "off" {
		c.DBPath = ""
	}
}

// Validate rejects settings the game loop cannot run with
func (c *Config) Validate() error {
	if c.FPS <= 0 || c.FPS > 240 {
		return fmt.Errorf("fps %d out of range 1-240", c.FPS)
	}
	return nil
}
