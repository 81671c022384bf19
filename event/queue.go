package event

// EventQueue buffers events raised during a tick until the game loop drains them
// Single goroutine only; producers on other goroutines go through the input channel
type EventQueue struct {
	events []GameEvent
}

func NewEventQueue() *EventQueue {
	return &EventQueue{events: make([]GameEvent, 0, 8)}
}

// Push appends an event
func (eq *EventQueue) Push(ev GameEvent) {
	eq.events = append(eq.events, ev)
}

// Consume returns pending events in FIFO order and empties the queue
// The returned slice is owned by the caller
func (eq *EventQueue) Consume() []GameEvent {
	if len(eq.events) == 0 {
		return nil
	}
	out := make([]GameEvent, len(eq.events))
	copy(out, eq.events)
	eq.events = eq.events[:0]
	return out
}

func (eq *EventQueue) Len() int { return len(eq.events) }
