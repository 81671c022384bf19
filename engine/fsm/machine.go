package fsm

import (
	"fmt"

	"github.com/lixenwraith/space-snake/event"
)

// NewMachine creates a new FSM instance
func NewMachine[T any]() *Machine[T] {
	return &Machine[T]{
		nodes:      make(map[StateID]*Node[T]),
		activePath: make([]StateID, 0, 4),
	}
}

// Init enters InitialStateID, running OnEnter from the outermost ancestor down
func (m *Machine[T]) Init(ctx T) error {
	node, ok := m.nodes[m.InitialStateID]
	if !ok {
		return fmt.Errorf("initial state ID %d not found", m.InitialStateID)
	}
	if len(node.Path) == 0 {
		return fmt.Errorf("initial state %q has no path, call CompilePaths first", node.Name)
	}

	m.activeStateID = node.ID
	m.activePath = append(m.activePath[:0], node.Path...)
	m.ticksInState = 0

	for _, id := range m.activePath {
		for _, action := range m.nodes[id].OnEnter {
			action(ctx, event.GameEvent{})
		}
	}
	return nil
}

// HandleEvent routes an event from the active leaf up through its ancestors
// Returns true if a transition fired
func (m *Machine[T]) HandleEvent(ctx T, ev event.GameEvent) bool {
	if m.activeStateID == StateNone {
		return false
	}

	currID := m.activeStateID
	for currID != StateNone {
		node := m.nodes[currID]
		for _, trans := range node.Transitions {
			if trans.Event != ev.Type {
				continue
			}
			if trans.Guard == nil || trans.Guard(ctx, ev) {
				m.transition(ctx, trans, ev)
				return true
			}
		}
		currID = node.ParentID
	}
	return false
}

// Tick advances the time-in-state counter
func (m *Machine[T]) Tick() {
	m.ticksInState++
}

// transition exits up to the lowest common ancestor, runs the transition action,
// then enters down to the target
// A transition to the active state re-runs its exit and enter actions
func (m *Machine[T]) transition(ctx T, trans Transition[T], ev event.GameEvent) {
	target, ok := m.nodes[trans.TargetID]
	if !ok {
		return
	}

	lca := commonPrefix(m.activePath, target.Path)
	if trans.TargetID == m.activeStateID {
		lca = len(target.Path) - 1
	}

	for i := len(m.activePath) - 1; i >= lca; i-- {
		for _, action := range m.nodes[m.activePath[i]].OnExit {
			action(ctx, ev)
		}
	}

	if trans.Action != nil {
		trans.Action(ctx, ev)
	}

	m.activeStateID = target.ID
	m.activePath = append(m.activePath[:0], target.Path...)
	m.ticksInState = 0

	for i := lca; i < len(target.Path); i++ {
		for _, action := range m.nodes[target.Path[i]].OnEnter {
			action(ctx, ev)
		}
	}
}

// commonPrefix returns the length of the shared ancestor prefix
func commonPrefix(a, b []StateID) int {
	n := 0
	for n < len(a) && n < len(b) && a[n] == b[n] {
		n++
	}
	return n
}

// Current returns the active leaf state
func (m *Machine[T]) Current() StateID {
	return m.activeStateID
}

// CurrentName returns the active leaf's name, empty before Init
func (m *Machine[T]) CurrentName() string {
	if node, ok := m.nodes[m.activeStateID]; ok {
		return node.Name
	}
	return ""
}

// TicksInState returns ticks counted since the last transition
func (m *Machine[T]) TicksInState() int {
	return m.ticksInState
}
