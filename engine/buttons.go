package engine

import (
	"github.com/lixenwraith/space-snake/constants"
	"github.com/lixenwraith/space-snake/engine/fsm"
	"github.com/lixenwraith/space-snake/event"
)

// Button is a clickable rectangle in world units
type Button struct {
	Label      string
	X, Y, W, H int
	Event      event.GameEvent
}

// Contains reports whether (x, y) is inside; the right and bottom edges are exclusive
func (b Button) Contains(x, y int) bool {
	return x >= b.X && x < b.X+b.W && y >= b.Y && y < b.Y+b.H
}

// ButtonsFor returns the buttons shown in state for a width x height playfield
// Playing and Terminated have none
func ButtonsFor(state fsm.StateID, width, height int) []Button {
	cx, cy := width/2, height/2
	at := func(label string, offY, w int, ev event.GameEvent) Button {
		return Button{
			Label: label,
			X:     cx + constants.ButtonOffsetX,
			Y:     cy + offY,
			W:     w,
			H:     constants.ButtonHeight,
			Event: ev,
		}
	}

	switch state {
	case StateMenu:
		return []Button{
			at("Start", constants.MenuStartOffsetY, constants.ButtonWidth, event.GameEvent{Type: event.EventStart}),
			at("Exit", constants.MenuExitOffsetY, constants.ButtonWidth, event.GameEvent{Type: event.EventExit}),
		}
	case StateDifficultySelection:
		offsets := [...]int{constants.EasyOffsetY, constants.NormalOffsetY, constants.HardOffsetY}
		buttons := make([]Button, len(Difficulties))
		for i, d := range Difficulties {
			buttons[i] = at(d.Label(), offsets[i], constants.ButtonWidth,
				event.GameEvent{Type: event.EventSelectDifficulty, Payload: d})
		}
		return buttons
	case StateGameOver:
		return []Button{
			at("Retry", constants.RetryOffsetY, constants.GameOverBtnWidth, event.GameEvent{Type: event.EventRetry}),
			at("Main Menu", constants.MainMenuOffsetY, constants.GameOverBtnWidth, event.GameEvent{Type: event.EventToMenu}),
			at("Exit", constants.GameOverExitOffsY, constants.GameOverBtnWidth, event.GameEvent{Type: event.EventExit}),
		}
	}
	return nil
}

// ButtonAt returns the button of state under world point (x, y)
func ButtonAt(state fsm.StateID, width, height, x, y int) (Button, bool) {
	for _, b := range ButtonsFor(state, width, height) {
		if b.Contains(x, y) {
			return b, true
		}
	}
	return Button{}, false
}
