package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// KeyTable maps keys to actions
// Runes are matched case-insensitively when the exact rune is unbound
type KeyTable struct {
	Runes map[rune]Action
	Keys  map[tcell.Key]Action
}

// DefaultKeyTable returns the built-in bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Runes: map[rune]Action{
			'w': ActionUp,
			's': ActionDown,
			'a': ActionLeft,
			'd': ActionRight,
			'1': ActionEasy,
			'2': ActionNormal,
			'3': ActionHard,
			'e': ActionEasy,
			'n': ActionNormal,
			'h': ActionHard,
			'r': ActionRetry,
			'm': ActionMenu,
			'q': ActionBack,
		},
		Keys: map[tcell.Key]Action{
			tcell.KeyUp:     ActionUp,
			tcell.KeyDown:   ActionDown,
			tcell.KeyLeft:   ActionLeft,
			tcell.KeyRight:  ActionRight,
			tcell.KeyEnter:  ActionConfirm,
			tcell.KeyEscape: ActionBack,
			tcell.KeyCtrlC:  ActionQuit,
			tcell.KeyCtrlQ:  ActionQuit,
			tcell.KeyCtrlS:  ActionMute,
		},
	}
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	c := &KeyTable{
		Runes: make(map[rune]Action, len(kt.Runes)),
		Keys:  make(map[tcell.Key]Action, len(kt.Keys)),
	}
	for k, v := range kt.Runes {
		c.Runes[k] = v
	}
	for k, v := range kt.Keys {
		c.Keys[k] = v
	}
	return c
}

// Lookup resolves a key event to its bound action
func (kt *KeyTable) Lookup(ev *tcell.EventKey) Action {
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if a, ok := kt.Runes[r]; ok {
			return a
		}
		return kt.Runes[unicode.ToLower(r)]
	}
	return kt.Keys[ev.Key()]
}
