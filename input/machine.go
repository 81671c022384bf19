// @focus: #input { keys, mouse }
package input

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/space-snake/constants"
	"github.com/lixenwraith/space-snake/engine"
	"github.com/lixenwraith/space-snake/engine/fsm"
	"github.com/lixenwraith/space-snake/event"
)

// CellMapper converts a terminal cell to playfield coordinates
type CellMapper interface {
	CellToWorld(col, row int) (x, y int)
}

// heldAxis tracks a pressed movement key
// Terminals report presses only, so a key counts as released once no autorepeat
// arrives before deadline
type heldAxis struct {
	active   bool
	deadline time.Time
}

// Machine is the input state machine
// Parses tcell events into Intents for the current game state
type Machine struct {
	keys   *KeyTable
	mapper CellMapper

	width, height int

	hold    time.Duration
	held    [2]heldAxis
	buttons tcell.ButtonMask

	out []Intent
}

// NewMachine creates a new input machine for a width x height playfield
// nil keys uses DefaultKeyTable
func NewMachine(keys *KeyTable, mapper CellMapper, width, height int) *Machine {
	if keys == nil {
		keys = DefaultKeyTable()
	}
	return &Machine{
		keys:   keys,
		mapper: mapper,
		width:  width,
		height: height,
		hold:   constants.KeyHoldTimeout,
		out:    make([]Intent, 0, 4),
	}
}

// SetHoldTimeout overrides the emulated key release delay
func (m *Machine) SetHoldTimeout(d time.Duration) {
	if d > 0 {
		m.hold = d
	}
}

// Process parses a tcell event and returns the resulting intents
// The returned slice is reused by the next call
func (m *Machine) Process(ev tcell.Event, state fsm.StateID, now time.Time) []Intent {
	m.out = m.out[:0]

	switch e := ev.(type) {
	case *tcell.EventKey:
		m.processKey(e, state, now)
	case *tcell.EventMouse:
		m.processMouse(e, state)
	case *tcell.EventResize:
		m.out = append(m.out, Intent{Type: IntentResize})
	}
	return m.out
}

// Expire releases movement axes whose key stopped repeating
// Outside Playing every axis is dropped without steering
func (m *Machine) Expire(state fsm.StateID, now time.Time) []Intent {
	m.out = m.out[:0]

	for axis := range m.held {
		h := &m.held[axis]
		if !h.active {
			continue
		}
		if state != engine.StatePlaying {
			h.active = false
			continue
		}
		if now.After(h.deadline) {
			h.active = false
			m.out = append(m.out, steer(engine.Axis(axis), 0))
		}
	}
	return m.out
}

func (m *Machine) processKey(ev *tcell.EventKey, state fsm.StateID, now time.Time) {
	a := m.keys.Lookup(ev)

	switch {
	case a == ActionNone:
		return
	case a == ActionQuit:
		m.out = append(m.out, Intent{Type: IntentQuit})
	case a == ActionMute:
		m.out = append(m.out, Intent{Type: IntentToggleMute})
	case a.IsMovement():
		if state != engine.StatePlaying {
			return
		}
		axis, v := movement(a)
		m.held[axis] = heldAxis{active: true, deadline: now.Add(m.hold)}
		m.out = append(m.out, steer(axis, v))
	default:
		if in, ok := shortcut(a, state); ok {
			m.out = append(m.out, in)
		}
	}
}

// processMouse activates the button under a fresh left press
// Drags with the button held do not repeat the click
func (m *Machine) processMouse(ev *tcell.EventMouse, state fsm.StateID) {
	btn := ev.Buttons()
	pressed := btn&tcell.Button1 != 0 && m.buttons&tcell.Button1 == 0
	m.buttons = btn
	if !pressed || m.mapper == nil {
		return
	}

	col, row := ev.Position()
	x, y := m.mapper.CellToWorld(col, row)
	if b, ok := engine.ButtonAt(state, m.width, m.height, x, y); ok {
		m.out = append(m.out, Intent{Type: IntentEvent, Event: b.Event})
	}
}

// movement maps a movement action to the velocity it sets
func movement(a Action) (engine.Axis, float64) {
	switch a {
	case ActionUp:
		return engine.AxisY, -constants.ActorSpeedY
	case ActionDown:
		return engine.AxisY, constants.ActorSpeedY
	case ActionLeft:
		return engine.AxisX, -constants.ActorSpeedX
	default:
		return engine.AxisX, constants.ActorSpeedX
	}
}

// shortcut maps a keyboard action to the button it stands for in state
func shortcut(a Action, state fsm.StateID) (Intent, bool) {
	switch state {
	case engine.StateMenu:
		switch a {
		case ActionConfirm:
			return dispatch(event.EventStart, nil), true
		case ActionBack:
			return dispatch(event.EventExit, nil), true
		}
	case engine.StateDifficultySelection:
		switch a {
		case ActionEasy:
			return dispatch(event.EventSelectDifficulty, engine.DifficultyEasy), true
		case ActionNormal, ActionConfirm:
			return dispatch(event.EventSelectDifficulty, engine.DifficultyNormal), true
		case ActionHard:
			return dispatch(event.EventSelectDifficulty, engine.DifficultyHard), true
		case ActionBack, ActionMenu:
			return dispatch(event.EventToMenu, nil), true
		}
	case engine.StateGameOver:
		switch a {
		case ActionConfirm, ActionRetry:
			return dispatch(event.EventRetry, nil), true
		case ActionMenu, ActionBack:
			return dispatch(event.EventToMenu, nil), true
		}
	}
	return Intent{}, false
}
