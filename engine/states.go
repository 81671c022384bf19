package engine

import "github.com/lixenwraith/space-snake/engine/fsm"

// Game states registered on the FSM
// Every playable state is a child of stateRoot so Quit is caught everywhere
const (
	stateRoot fsm.StateID = iota + 1
	StateMenu
	StateDifficultySelection
	StatePlaying
	StateGameOver
	StateTerminated
)

var stateNames = map[fsm.StateID]string{
	stateRoot:                "Root",
	StateMenu:                "Menu",
	StateDifficultySelection: "DifficultySelection",
	StatePlaying:             "Playing",
	StateGameOver:            "GameOver",
	StateTerminated:          "Terminated",
}
