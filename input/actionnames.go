package input

// Action is a bindable game command
type Action uint8

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionConfirm // Start in Menu, Retry in GameOver
	ActionEasy
	ActionNormal
	ActionHard
	ActionRetry
	ActionMenu
	ActionBack // Back to Menu, Exit from Menu
	ActionQuit
	ActionMute
	actionCount
)

// actionNames maps TOML action names to actions
// "none" unbinds a key
var actionNames = map[string]Action{
	"none":    ActionNone,
	"up":      ActionUp,
	"down":    ActionDown,
	"left":    ActionLeft,
	"right":   ActionRight,
	"confirm": ActionConfirm,
	"easy":    ActionEasy,
	"normal":  ActionNormal,
	"hard":    ActionHard,
	"retry":   ActionRetry,
	"menu":    ActionMenu,
	"back":    ActionBack,
	"quit":    ActionQuit,
	"mute":    ActionMute,
}

// ActionByName resolves a TOML action name
func ActionByName(name string) (Action, bool) {
	a, ok := actionNames[name]
	return a, ok
}

func (a Action) String() string {
	for name, v := range actionNames {
		if v == a {
			return name
		}
	}
	return "unknown"
}

// IsMovement reports whether a steers the actor
func (a Action) IsMovement() bool {
	return a >= ActionUp && a <= ActionRight
}
