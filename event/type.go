package event

// EventType represents the type of game event
type EventType int

const (
	// EventNone is the zero value and never dispatched
	EventNone EventType = iota

	// === Navigation Event ===

	// EventStart leaves the title menu
	// Trigger: Start button, Enter | Consumer: FSM Menu | Payload: nil
	EventStart

	// EventSelectDifficulty starts a fresh round
	// Trigger: Difficulty buttons, 1/2/3 | Consumer: FSM DifficultySelection | Payload: difficulty key
	EventSelectDifficulty

	// EventRetry restarts a round on the current difficulty
	// Trigger: Retry button, r | Consumer: FSM GameOver | Payload: nil
	EventRetry

	// EventToMenu returns to the title menu
	// Trigger: Main Menu button, m, Esc in difficulty selection | Consumer: FSM | Payload: nil
	EventToMenu

	// EventExit terminates the game through a menu choice
	// Trigger: Exit buttons, q | Consumer: FSM Menu, GameOver | Payload: nil
	EventExit

	// EventQuit terminates the game from any state
	// Trigger: Ctrl-C, terminal close | Consumer: FSM root | Payload: nil
	EventQuit

	// === Round Event ===

	// EventObstacleHit ends the round
	// Trigger: CollisionSystem | Consumer: FSM Playing | Payload: nil
	EventObstacleHit

	// EventScoreNegative ends the round after a debris penalty
	// Trigger: CollisionSystem | Consumer: FSM Playing | Payload: int score
	EventScoreNegative

	// === Audio Event ===

	// EventMusicEnded requests the next random track
	// Trigger: MusicPlayer end callback | Consumer: Game | Payload: nil
	EventMusicEnded
)

var eventNames = map[EventType]string{
	EventNone:             "None",
	EventStart:            "Start",
	EventSelectDifficulty: "SelectDifficulty",
	EventRetry:            "Retry",
	EventToMenu:           "ToMenu",
	EventExit:             "Exit",
	EventQuit:             "Quit",
	EventObstacleHit:      "ObstacleHit",
	EventScoreNegative:    "ScoreNegative",
	EventMusicEnded:       "MusicEnded",
}

func (e EventType) String() string {
	if name, ok := eventNames[e]; ok {
		return name
	}
	return "Unknown"
}

// GameEvent is a dispatched event with its optional payload
type GameEvent struct {
	Type    EventType
	Payload any
}
