package input

import (
	"github.com/lixenwraith/space-snake/engine"
	"github.com/lixenwraith/space-snake/event"
)

// IntentType discriminates what the game loop should do with an input
type IntentType uint8

const (
	IntentNone IntentType = iota
	IntentQuit            // Terminal closed or quit key
	IntentSteer           // Overwrite one actor velocity axis
	IntentEvent           // Dispatch a game event (buttons, shortcuts)
	IntentToggleMute      // Flip audio output
	IntentResize          // Terminal resized
)

// Intent is a parsed input action
type Intent struct {
	Type  IntentType
	Axis  engine.Axis
	Value float64
	Event event.GameEvent
}

func steer(axis engine.Axis, v float64) Intent {
	return Intent{Type: IntentSteer, Axis: axis, Value: v}
}

func dispatch(typ event.EventType, payload any) Intent {
	return Intent{Type: IntentEvent, Event: event.GameEvent{Type: typ, Payload: payload}}
}
