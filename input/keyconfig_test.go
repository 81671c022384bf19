package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestLoadKeyConfig(t *testing.T) {
	data := []byte(`
[keys]
k = "up"
j = "down"
w = "none"
space = "confirm"

[special]
F2 = "mute"
enter = "none"
`)
	override, err := LoadKeyConfig(data)
	if err != nil {
		t.Fatalf("LoadKeyConfig: %v", err)
	}

	kt := MergeKeyTable(DefaultKeyTable(), override)

	if kt.Runes['k'] != ActionUp || kt.Runes['j'] != ActionDown {
		t.Error("expected k/j rebound")
	}
	if _, ok := kt.Runes['w']; ok {
		t.Error("expected w unbound by none")
	}
	if kt.Runes[' '] != ActionConfirm {
		t.Error("expected space alias bound")
	}
	if kt.Keys[tcell.KeyF2] != ActionMute {
		t.Error("expected F2 bound to mute")
	}
	if _, ok := kt.Keys[tcell.KeyEnter]; ok {
		t.Error("expected Enter unbound")
	}
	// Untouched defaults survive
	if kt.Runes['d'] != ActionRight {
		t.Error("expected default d binding kept")
	}
	// Base is not mutated
	if DefaultKeyTable().Runes['w'] != ActionUp {
		t.Error("default table must be unchanged")
	}
}

func TestLoadKeyConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"unknown action", "[keys]\nx = \"fly\"\n"},
		{"multi-char rune", "[keys]\nxy = \"up\"\n"},
		{"unknown special", "[special]\nHyper = \"up\"\n"},
		{"bad toml", "[keys\n"},
		{"non-string value", "[keys]\nx = 3\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadKeyConfig([]byte(tt.data)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLookupCaseFallback(t *testing.T) {
	kt := DefaultKeyTable()
	kt.Runes['W'] = ActionMute

	if a := kt.Lookup(tcell.NewEventKey(tcell.KeyRune, 'W', tcell.ModNone)); a != ActionMute {
		t.Errorf("exact binding should win, got %s", a)
	}
	if a := kt.Lookup(tcell.NewEventKey(tcell.KeyRune, 'D', tcell.ModNone)); a != ActionRight {
		t.Errorf("expected lowercase fallback, got %s", a)
	}
	if a := kt.Lookup(tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone)); a != ActionNone {
		t.Errorf("unbound rune should be none, got %s", a)
	}
}

func TestActionNames(t *testing.T) {
	for a := ActionNone; a < actionCount; a++ {
		got, ok := ActionByName(a.String())
		if !ok || got != a {
			t.Errorf("round trip failed for %d", a)
		}
	}
}
