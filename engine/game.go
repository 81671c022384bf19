package engine

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/lixenwraith/space-snake/engine/fsm"
	"github.com/lixenwraith/space-snake/event"
	"github.com/lixenwraith/space-snake/vmath"
)

// Options configures a Game; nil collaborators are replaced by no-ops
type Options struct {
	Width, Height int
	Rng           *vmath.FastRand
	Log           *zap.SugaredLogger
	Music         MusicPlayer
	Sounds        SoundPlayer
	Recorder      RoundRecorder
	TimeProvider  TimeProvider
}

// Game holds the state machine, the round and the systems run every tick
// All methods must be called from the game loop goroutine
type Game struct {
	Round   *RoundState
	Spawner *Spawner
	Machine *fsm.Machine[*Game]

	Log      *zap.SugaredLogger
	Music    MusicPlayer
	Sounds   SoundPlayer
	Recorder RoundRecorder

	TimeProvider TimeProvider

	Width, Height int

	// Frame counts ticks since Start, in every state
	Frame int

	systems []System
	events  *event.EventQueue
	running bool
}

// NewGame creates a game in the Menu state; call Start before the first tick
func NewGame(opts Options) (*Game, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("invalid playfield %dx%d", opts.Width, opts.Height)
	}
	if opts.Rng == nil {
		opts.Rng = vmath.NewFastRand(1)
	}
	if opts.Log == nil {
		opts.Log = zap.NewNop().Sugar()
	}
	if opts.Music == nil {
		opts.Music = nopAudio{}
	}
	if opts.Sounds == nil {
		opts.Sounds = nopAudio{}
	}
	if opts.TimeProvider == nil {
		opts.TimeProvider = NewMonotonicTimeProvider()
	}

	g := &Game{
		Round:        NewRoundState(),
		Spawner:      NewSpawner(opts.Width, opts.Height, opts.Rng),
		Log:          opts.Log,
		Music:        opts.Music,
		Sounds:       opts.Sounds,
		Recorder:     opts.Recorder,
		TimeProvider: opts.TimeProvider,
		Width:        opts.Width,
		Height:       opts.Height,
		events:       event.NewEventQueue(),
	}

	m, err := buildMachine()
	if err != nil {
		return nil, fmt.Errorf("build state machine: %w", err)
	}
	g.Machine = m
	return g, nil
}

// buildMachine registers the four game states under a root that catches Quit
func buildMachine() (*fsm.Machine[*Game], error) {
	m := fsm.NewMachine[*Game]()

	m.AddState(stateRoot, stateNames[stateRoot], fsm.StateNone)
	m.AddState(StateMenu, stateNames[StateMenu], stateRoot)
	m.AddState(StateDifficultySelection, stateNames[StateDifficultySelection], stateRoot)
	m.AddState(StatePlaying, stateNames[StatePlaying], stateRoot)
	m.AddState(StateGameOver, stateNames[StateGameOver], stateRoot).
		Enter((*Game).enterGameOver)
	m.AddState(StateTerminated, stateNames[StateTerminated], stateRoot).
		Enter((*Game).enterTerminated)

	type edge struct {
		from fsm.StateID
		t    fsm.Transition[*Game]
	}
	edges := []edge{
		{stateRoot, fsm.Transition[*Game]{TargetID: StateTerminated, Event: event.EventQuit}},

		{StateMenu, fsm.Transition[*Game]{TargetID: StateDifficultySelection, Event: event.EventStart}},
		{StateMenu, fsm.Transition[*Game]{TargetID: StateTerminated, Event: event.EventExit}},

		{StateDifficultySelection, fsm.Transition[*Game]{
			TargetID: StatePlaying,
			Event:    event.EventSelectDifficulty,
			Action:   (*Game).selectDifficulty,
		}},
		{StateDifficultySelection, fsm.Transition[*Game]{TargetID: StateMenu, Event: event.EventToMenu}},

		{StatePlaying, fsm.Transition[*Game]{TargetID: StateGameOver, Event: event.EventObstacleHit}},
		{StatePlaying, fsm.Transition[*Game]{
			TargetID: StateGameOver,
			Event:    event.EventScoreNegative,
			Guard:    func(g *Game, _ event.GameEvent) bool { return g.Round.Score < 0 },
		}},

		{StateGameOver, fsm.Transition[*Game]{
			TargetID: StatePlaying,
			Event:    event.EventRetry,
			Action:   (*Game).retry,
		}},
		{StateGameOver, fsm.Transition[*Game]{TargetID: StateMenu, Event: event.EventToMenu}},
		{StateGameOver, fsm.Transition[*Game]{TargetID: StateTerminated, Event: event.EventExit}},
	}
	for _, e := range edges {
		m.AddTransition(e.from, e.t)
	}

	m.InitialStateID = StateMenu
	if err := m.CompilePaths(); err != nil {
		return nil, err
	}
	return m, nil
}

// AddSystem registers a system; systems run in ascending priority
func (g *Game) AddSystem(s System) {
	g.systems = append(g.systems, s)
	sort.SliceStable(g.systems, func(i, j int) bool {
		return g.systems[i].Priority() < g.systems[j].Priority()
	})
}

// Start enters the Menu state and starts a looping random track
func (g *Game) Start() error {
	if err := g.Machine.Init(g); err != nil {
		return fmt.Errorf("init state machine: %w", err)
	}
	g.running = true
	g.Music.PlayRandom(true)
	g.Log.Infow("game started", "state", g.StateName())
	return nil
}

// Update runs one tick: systems in priority order, then events raised during the tick
func (g *Game) Update() {
	if !g.running {
		return
	}
	for _, s := range g.systems {
		s.Update(g)
	}
	for _, ev := range g.events.Consume() {
		g.Dispatch(ev)
	}
	g.Machine.Tick()
	g.Frame++
}

// Emit queues an event raised by a system; it is dispatched at the end of the tick
func (g *Game) Emit(ev event.GameEvent) {
	g.events.Push(ev)
}

// Dispatch delivers an event immediately
// Returns true if it changed state or was otherwise consumed
func (g *Game) Dispatch(ev event.GameEvent) bool {
	if ev.Type == event.EventMusicEnded {
		g.Music.PlayRandom(false)
		return true
	}

	from := g.StateName()
	if !g.Machine.HandleEvent(g, ev) {
		return false
	}
	g.Log.Debugw("state transition", "event", ev.Type.String(), "from", from, "to", g.StateName())
	return true
}

// Steer overwrites one velocity axis of the actor
// No-op outside a round
func (g *Game) Steer(axis Axis, v float64) {
	a := g.Round.Actor
	if a == nil {
		return
	}
	switch axis {
	case AxisX:
		a.VX = v
	case AxisY:
		a.VY = v
	}
}

// LogField writes the latest gravity evaluation at debug level
func (g *Game) LogField() {
	f := g.Round.Field
	g.Log.Debugw("gravity field",
		"samples", f.Samples,
		"lagrange_x", f.RawX,
		"lagrange_y", f.RawY,
		"applied_x", f.AppliedX,
		"applied_y", f.AppliedY,
	)
}

func (g *Game) State() fsm.StateID { return g.Machine.Current() }
func (g *Game) StateName() string  { return g.Machine.CurrentName() }
func (g *Game) IsPlaying() bool    { return g.Machine.Current() == StatePlaying }

// Running is false once the game reached Terminated
func (g *Game) Running() bool { return g.running }

// resetRound rebuilds the round for d; shared by difficulty selection and retry
func (g *Game) resetRound(d Difficulty) {
	g.Round.Reset(d, g.Spawner)
	g.Log.Infow("round started", "difficulty", string(d), "gravity", g.Round.Gravity)
}

func (g *Game) selectDifficulty(ev event.GameEvent) {
	var d Difficulty
	switch v := ev.Payload.(type) {
	case Difficulty:
		d = v
	case string:
		d = Difficulty(v)
	}
	g.resetRound(d)
	g.Music.PlayDifferent(true)
}

func (g *Game) retry(event.GameEvent) {
	g.resetRound(g.Round.Difficulty)
}

func (g *Game) enterGameOver(ev event.GameEvent) {
	r := g.Round
	g.Log.Infow("round over",
		"reason", ev.Type.String(),
		"score", r.Score,
		"time", r.RealTime,
		"difficulty", string(r.Difficulty),
	)

	if g.Recorder != nil {
		summary := RoundSummary{
			Difficulty: r.Difficulty,
			Score:      r.Score,
			Ticks:      r.Ticks,
			RealTime:   r.RealTime,
			EndedBy:    ev.Type,
			Stats:      r.Stats,
			FinishedAt: g.TimeProvider.Now(),
		}
		if err := g.Recorder.RecordRound(context.Background(), summary); err != nil {
			g.Log.Warnw("record round failed", "error", err)
		}
	}

	r.Discard()
}

func (g *Game) enterTerminated(event.GameEvent) {
	g.running = false
	g.Music.Stop()
	g.Log.Info("game terminated")
}
