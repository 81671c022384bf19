package input

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/gdamore/tcell/v2"
)

// Rune aliases for keys that can't be bare single-char TOML keys
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

// keyFile is the TOML layout of a keymap
//
//	[keys]
//	k = "up"
//	space = "confirm"
//
//	[special]
//	F2 = "mute"
type keyFile struct {
	Keys    map[string]string `toml:"keys"`
	Special map[string]string `toml:"special"`
}

// LoadKeyConfig parses TOML keymap data into a sparse override KeyTable
// Only keys present in TOML are populated
// Returns error on unknown action names, invalid key names, or parse failure
func LoadKeyConfig(data []byte) (*KeyTable, error) {
	var f keyFile
	if _, err := toml.Decode(string(data), &f); err != nil {
		return nil, fmt.Errorf("keymap parse: %w", err)
	}
	return f.table()
}

func (f keyFile) table() (*KeyTable, error) {
	kt := &KeyTable{
		Runes: make(map[rune]Action, len(f.Keys)),
		Keys:  make(map[tcell.Key]Action, len(f.Special)),
	}

	for keyStr, name := range f.Keys {
		r, err := resolveRune(keyStr)
		if err != nil {
			return nil, fmt.Errorf("[keys] key %q: %w", keyStr, err)
		}
		a, err := resolveAction(name)
		if err != nil {
			return nil, fmt.Errorf("[keys] key %q: %w", keyStr, err)
		}
		kt.Runes[r] = a
	}

	for keyStr, name := range f.Special {
		k, ok := keyByName(keyStr)
		if !ok {
			return nil, fmt.Errorf("[special] unknown key name: %q", keyStr)
		}
		a, err := resolveAction(name)
		if err != nil {
			return nil, fmt.Errorf("[special] key %q: %w", keyStr, err)
		}
		kt.Keys[k] = a
	}

	return kt, nil
}

// resolveRune converts a TOML key string to a rune
// Accepts single characters and named aliases
func resolveRune(s string) (rune, error) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, nil
	}

	runes := []rune(s)
	if len(runes) == 1 {
		return runes[0], nil
	}

	return 0, fmt.Errorf("invalid rune key: %q (expected single character or alias)", s)
}

// resolveAction converts an action name string to an Action
func resolveAction(name string) (Action, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	a, ok := ActionByName(name)
	if !ok {
		return ActionNone, fmt.Errorf("unknown action: %q", name)
	}
	return a, nil
}

// keyByName matches tcell key names ("Enter", "F2", "Ctrl-X") case-insensitively
func keyByName(name string) (tcell.Key, bool) {
	name = strings.ToLower(name)
	for k, n := range tcell.KeyNames {
		if strings.ToLower(n) == name {
			return k, true
		}
	}
	return 0, false
}

// MergeKeyTable returns a new KeyTable with base values overridden by override
// Override entries bound to ActionNone delete the key from the result
func MergeKeyTable(base, override *KeyTable) *KeyTable {
	result := base.Clone()
	if override == nil {
		return result
	}

	for k, v := range override.Runes {
		if v == ActionNone {
			delete(result.Runes, k)
		} else {
			result.Runes[k] = v
		}
	}
	for k, v := range override.Keys {
		if v == ActionNone {
			delete(result.Keys, k)
		} else {
			result.Keys[k] = v
		}
	}

	return result
}

// BuildKeyTable builds an override table from already-decoded [keys] and [special] maps
func BuildKeyTable(keys, special map[string]string) (*KeyTable, error) {
	return keyFile{Keys: keys, Special: special}.table()
}
