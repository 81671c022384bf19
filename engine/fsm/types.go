package fsm

import "github.com/lixenwraith/space-snake/event"

// StateID is a unique identifier for a node
type StateID int

const StateNone StateID = 0

// Machine is a hierarchical finite state machine driven by game events
// T is the context type passed to actions and guards (e.g., *engine.Game)
type Machine[T any] struct {
	// Graph data, immutable after CompilePaths
	nodes map[StateID]*Node[T]

	InitialStateID StateID

	// Runtime state
	activeStateID StateID
	activePath    []StateID // Root -> ... -> Leaf
	ticksInState  int
}

// Node represents a state in the hierarchy
type Node[T any] struct {
	ID       StateID
	Name     string
	ParentID StateID

	// Pre-calculated path from the outermost ancestor to this node
	Path []StateID

	OnEnter []ActionFunc[T]
	OnExit  []ActionFunc[T]

	// Transitions in evaluation order
	Transitions []Transition[T]
}

// Transition defines a link between states
type Transition[T any] struct {
	TargetID StateID
	Event    event.EventType
	Guard    GuardFunc[T]  // nil = always true
	Action   ActionFunc[T] // runs after exits, before enters; nil = none
}

// GuardFunc returns true if the transition should occur
type GuardFunc[T any] func(ctx T, ev event.GameEvent) bool

// ActionFunc executes a side effect; ev is the triggering event (zero on Init)
type ActionFunc[T any] func(ctx T, ev event.GameEvent)
