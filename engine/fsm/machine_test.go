package fsm

import (
	"reflect"
	"testing"

	"github.com/lixenwraith/space-snake/event"
)

const (
	stRoot StateID = iota + 1
	stIdle
	stRun
	stDone
)

type recorder struct {
	log     []string
	allowed bool
}

func (r *recorder) add(s string) { r.log = append(r.log, s) }

func buildMachine(t *testing.T) *Machine[*recorder] {
	t.Helper()
	m := NewMachine[*recorder]()
	m.AddState(stRoot, "Root", StateNone).
		Enter(func(r *recorder, _ event.GameEvent) { r.add("enter root") })
	m.AddState(stIdle, "Idle", stRoot).
		Enter(func(r *recorder, _ event.GameEvent) { r.add("enter idle") }).
		Exit(func(r *recorder, _ event.GameEvent) { r.add("exit idle") })
	m.AddState(stRun, "Run", stRoot).
		Enter(func(r *recorder, ev event.GameEvent) { r.add("enter run " + ev.Type.String()) }).
		Exit(func(r *recorder, _ event.GameEvent) { r.add("exit run") })
	m.AddState(stDone, "Done", stRoot)

	m.AddTransition(stIdle, Transition[*recorder]{
		TargetID: stRun,
		Event:    event.EventStart,
		Guard:    func(r *recorder, _ event.GameEvent) bool { return r.allowed },
		Action:   func(r *recorder, _ event.GameEvent) { r.add("action") },
	})
	m.AddTransition(stRun, Transition[*recorder]{TargetID: stRun, Event: event.EventRetry})
	m.AddTransition(stRoot, Transition[*recorder]{TargetID: stDone, Event: event.EventQuit})

	m.InitialStateID = stIdle
	if err := m.CompilePaths(); err != nil {
		t.Fatalf("CompilePaths: %v", err)
	}
	return m
}

func TestMachineInitEntersPath(t *testing.T) {
	m := buildMachine(t)
	r := &recorder{}
	if err := m.Init(r); err != nil {
		t.Fatalf("Init: %v", err)
	}
	want := []string{"enter root", "enter idle"}
	if !reflect.DeepEqual(r.log, want) {
		t.Errorf("log = %v, want %v", r.log, want)
	}
	if m.Current() != stIdle || m.CurrentName() != "Idle" {
		t.Errorf("current = %d %q", m.Current(), m.CurrentName())
	}
}

func TestMachineGuardBlocksTransition(t *testing.T) {
	m := buildMachine(t)
	r := &recorder{}
	_ = m.Init(r)
	r.log = nil

	if m.HandleEvent(r, event.GameEvent{Type: event.EventStart}) {
		t.Fatal("guard should block transition")
	}
	if m.Current() != stIdle {
		t.Fatal("state changed despite guard")
	}

	r.allowed = true
	if !m.HandleEvent(r, event.GameEvent{Type: event.EventStart}) {
		t.Fatal("transition should fire")
	}
	want := []string{"exit idle", "action", "enter run Start"}
	if !reflect.DeepEqual(r.log, want) {
		t.Errorf("log = %v, want %v", r.log, want)
	}
}

func TestMachineSelfTransitionReenters(t *testing.T) {
	m := buildMachine(t)
	r := &recorder{allowed: true}
	_ = m.Init(r)
	m.HandleEvent(r, event.GameEvent{Type: event.EventStart})
	r.log = nil
	m.Tick()
	m.Tick()

	if !m.HandleEvent(r, event.GameEvent{Type: event.EventRetry}) {
		t.Fatal("self transition should fire")
	}
	want := []string{"exit run", "enter run Retry"}
	if !reflect.DeepEqual(r.log, want) {
		t.Errorf("log = %v, want %v", r.log, want)
	}
	if m.TicksInState() != 0 {
		t.Errorf("ticks in state = %d, want 0", m.TicksInState())
	}
}

func TestMachineEventBubblesToParent(t *testing.T) {
	m := buildMachine(t)
	r := &recorder{}
	_ = m.Init(r)
	r.log = nil

	if !m.HandleEvent(r, event.GameEvent{Type: event.EventQuit}) {
		t.Fatal("root transition should catch Quit")
	}
	if m.Current() != stDone {
		t.Errorf("current = %q, want Done", m.CurrentName())
	}
	// Root stays entered
	want := []string{"exit idle"}
	if !reflect.DeepEqual(r.log, want) {
		t.Errorf("log = %v, want %v", r.log, want)
	}
	if m.HandleEvent(r, event.GameEvent{Type: event.EventStart}) {
		t.Error("Done has no Start transition")
	}
}

func TestMachineCompilePathsMissingParent(t *testing.T) {
	m := NewMachine[*recorder]()
	m.AddState(stIdle, "Idle", StateID(42))
	if err := m.CompilePaths(); err == nil {
		t.Error("expected missing parent error")
	}
}

func TestMachineInitUnknownState(t *testing.T) {
	m := NewMachine[*recorder]()
	m.InitialStateID = stRun
	if err := m.Init(&recorder{}); err == nil {
		t.Error("expected error for unknown initial state")
	}
}
