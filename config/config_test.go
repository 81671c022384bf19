package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/space-snake/audio"
	"github.com/lixenwraith/space-snake/constants"
	"github.com/lixenwraith/space-snake/input"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "game.toml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestDefaults(t *testing.T) {
	// Run from an empty dir so no space-snake.toml is picked up
	t.Chdir(t.TempDir())

	cfg, err := Load(nil, nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.FPS != constants.TargetFPS {
		t.Errorf("FPS = %d, want %d", cfg.FPS, constants.TargetFPS)
	}
	if !cfg.Audio.Enabled {
		t.Error("audio should be enabled by default")
	}
	if cfg.Source != "" {
		t.Errorf("Source = %q, want empty", cfg.Source)
	}
	if cfg.Keys.Runes['w'] != input.ActionUp {
		t.Error("default keymap not loaded")
	}
}

func TestFileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[game]
fps = 30
seed = 99
database = "scores.db"

[audio]
master_volume = 0.25
[audio.effects]
crash = 0.1

[keys]
k = "up"
w = "none"

[special]
F2 = "mute"
`)
	cfg, err := Load([]string{"-config", path}, nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.FPS != 30 || cfg.Seed != 99 || cfg.DBPath != "scores.db" {
		t.Errorf("game section not applied: %+v", cfg)
	}
	if cfg.Audio.MasterVolume != 0.25 {
		t.Errorf("MasterVolume = %v, want 0.25", cfg.Audio.MasterVolume)
	}
	if cfg.Audio.EffectVolumes[audio.SoundCrash] != 0.1 {
		t.Errorf("crash volume = %v, want 0.1", cfg.Audio.EffectVolumes[audio.SoundCrash])
	}
	if cfg.Keys.Runes['k'] != input.ActionUp {
		t.Error("k should steer up")
	}
	if _, ok := cfg.Keys.Runes['w']; ok {
		t.Error("w binding should be removed")
	}
	if cfg.Keys.Keys[tcell.KeyF2] != input.ActionMute {
		t.Error("F2 should toggle mute")
	}
	// Untouched defaults survive the merge
	if cfg.Keys.Keys[tcell.KeyUp] != input.ActionUp {
		t.Error("arrow binding lost")
	}
	if cfg.Source != path {
		t.Errorf("Source = %q, want %q", cfg.Source, path)
	}
}

func TestPrecedence(t *testing.T) {
	path := writeConfig(t, `
[game]
fps = 30
database = "file.db"

[audio]
enabled = true
master_volume = 0.9
`)
	env := envMap(map[string]string{
		EnvFPS:          "50",
		EnvDatabase:     "env.db",
		EnvMasterVolume: "40",
	})

	cfg, err := Load([]string{"-config", path, "-fps", "120", "-mute"}, env)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.FPS != 120 {
		t.Errorf("flag should win: FPS = %d", cfg.FPS)
	}
	if cfg.DBPath != "env.db" {
		t.Errorf("env should beat file: DBPath = %q", cfg.DBPath)
	}
	if cfg.Audio.MasterVolume != 0.4 {
		t.Errorf("MasterVolume = %v, want 0.4", cfg.Audio.MasterVolume)
	}
	if cfg.Audio.Enabled {
		t.Error("-mute should disable audio")
	}
}

func TestDatabaseOff(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load([]string{"-db", "off"}, nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DBPath != "" {
		t.Errorf("DBPath = %q, want empty", cfg.DBPath)
	}
}

func TestVolumeClamped(t *testing.T) {
	cfg, err := Parse([]byte("[audio]\nmaster_volume = 3.0\nmusic_volume = -1.0\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.Audio.MasterVolume != 1 || cfg.Audio.MusicVolume != 0 {
		t.Errorf("volumes not clamped: master=%v music=%v", cfg.Audio.MasterVolume, cfg.Audio.MusicVolume)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		args func(t *testing.T) []string
		env  map[string]string
		want string
	}{
		{
			name: "missing explicit file",
			args: func(t *testing.T) []string {
				return []string{"-config", filepath.Join(t.TempDir(), "absent.toml")}
			},
			want: "read config",
		},
		{
			name: "bad toml",
			args: func(t *testing.T) []string { return []string{"-config", writeConfig(t, "[game\n")} },
			want: "parse",
		},
		{
			name: "unknown key",
			args: func(t *testing.T) []string { return []string{"-config", writeConfig(t, "[game]\nspeed = 3\n")} },
			want: "unknown key",
		},
		{
			name: "unknown action",
			args: func(t *testing.T) []string { return []string{"-config", writeConfig(t, "[keys]\nx = \"fly\"\n")} },
			want: "unknown action",
		},
		{
			name: "unknown sound",
			args: func(t *testing.T) []string {
				return []string{"-config", writeConfig(t, "[audio.effects]\nbell = 0.5\n")}
			},
			want: "unknown sound",
		},
		{
			name: "bad env",
			args: func(t *testing.T) []string { return []string{"-db", "off"} },
			env:  map[string]string{EnvFPS: "fast"},
			want: EnvFPS,
		},
		{
			name: "fps out of range",
			args: func(t *testing.T) []string { return []string{"-fps", "0"} },
			want: "fps",
		},
		{
			name: "unknown flag",
			args: func(t *testing.T) []string { return []string{"-turbo"} },
			want: "parse flags",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Chdir(t.TempDir())
			_, err := Load(tt.args(t), envMap(tt.env))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestDefaultFilePickedUp(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	if err := os.WriteFile(filepath.Join(dir, DefaultConfigFile), []byte("[game]\ndebug = true\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(nil, nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !cfg.Debug {
		t.Error("debug from default config file not applied")
	}
	if cfg.Source != DefaultConfigFile {
		t.Errorf("Source = %q", cfg.Source)
	}
}

func TestTopFlag(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load([]string{"-top", "5"}, nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.ShowTop != 5 {
		t.Errorf("ShowTop = %d, want 5", cfg.ShowTop)
	}
}
