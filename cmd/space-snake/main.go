package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"text/tabwriter"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/space-snake/audio"
	"github.com/lixenwraith/space-snake/config"
	"github.com/lixenwraith/space-snake/constants"
	"github.com/lixenwraith/space-snake/engine"
	"github.com/lixenwraith/space-snake/engine/fsm"
	"github.com/lixenwraith/space-snake/event"
	"github.com/lixenwraith/space-snake/input"
	"github.com/lixenwraith/space-snake/render"
	"github.com/lixenwraith/space-snake/store"
	"github.com/lixenwraith/space-snake/systems"
	"github.com/lixenwraith/space-snake/vmath"
)

// musicEnded is posted through the screen event queue when a non-looping track finishes
type musicEnded struct{}

func main() {
	cfg, err := config.Load(os.Args[1:], os.Getenv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "space-snake: %v\n", err)
		os.Exit(2)
	}

	if cfg.ShowTop > 0 {
		if err := printTopScores(os.Stdout, cfg.DBPath, cfg.ShowTop); err != nil {
			fmt.Fprintf(os.Stderr, "space-snake: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "space-snake: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	log, closeLog, err := setupLogging(cfg.Debug, cfg.LogDir)
	if err != nil {
		return fmt.Errorf("setup logging: %w", err)
	}
	defer closeLog()

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Infow("starting", "seed", seed, "fps", cfg.FPS, "config", cfg.Source)

	// Score store is optional; the game runs without history
	var (
		recorder engine.RoundRecorder
		db       *store.DB
	)
	if cfg.DBPath != "" {
		db, err = store.Open(cfg.DBPath)
		if err != nil {
			log.Warnw("score store unavailable", "path", cfg.DBPath, "error", err)
		} else {
			defer db.Close()
			recorder = db
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	// Panic Recovery: restore the terminal before printing the trace
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\nSPACE-SNAKE CRASHED: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	screen.EnableMouse()
	screen.HideCursor()

	// Audio uses its own generator; track picks happen on the game loop goroutine
	sm := audio.NewSoundManager(cfg.Audio, vmath.NewFastRand(seed^0x9E3779B97F4A7C15))
	if err := sm.Initialize(); err != nil {
		log.Warnw("audio initialization failed, continuing without audio", "error", err)
	}
	defer sm.Cleanup()
	sm.OnMusicEnded(func() {
		// Runs under the speaker lock; PostEvent never blocks
		_ = screen.PostEvent(tcell.NewEventInterrupt(musicEnded{}))
	})

	g, err := engine.NewGame(engine.Options{
		Width:    constants.PlayfieldWidth,
		Height:   constants.PlayfieldHeight,
		Rng:      vmath.NewFastRand(seed),
		Log:      log,
		Music:    sm,
		Sounds:   sm,
		Recorder: recorder,
	})
	if err != nil {
		return fmt.Errorf("create game: %w", err)
	}
	g.AddSystem(systems.NewGravitySystem())
	g.AddSystem(systems.NewCollisionSystem())
	g.AddSystem(systems.NewTimerSystem())
	g.AddSystem(systems.NewMovementSystem())

	renderer := render.NewTerminalRenderer(screen, constants.PlayfieldWidth, constants.PlayfieldHeight, seed)
	im := input.NewMachine(cfg.Keys, renderer.Viewport(), constants.PlayfieldWidth, constants.PlayfieldHeight)

	if err := g.Start(); err != nil {
		return err
	}

	events := make(chan tcell.Event, constants.EventQueueSize)
	go pollEvents(screen, events)

	ticker := time.NewTicker(time.Second / time.Duration(cfg.FPS))
	defer ticker.Stop()

	best := bestScore(db, log)
	lastState := fsm.StateNone

	for g.Running() {
		select {
		case ev, ok := <-events:
			if !ok {
				// Terminal closed
				events = nil
				g.Dispatch(event.GameEvent{Type: event.EventQuit})
				continue
			}
			if intr, ok := ev.(*tcell.EventInterrupt); ok {
				if _, ok := intr.Data().(musicEnded); ok {
					g.Dispatch(event.GameEvent{Type: event.EventMusicEnded})
				}
				continue
			}
			for _, in := range im.Process(ev, g.State(), time.Now()) {
				applyIntent(g, sm, renderer, in)
			}

		case <-ticker.C:
			for _, in := range im.Expire(g.State(), time.Now()) {
				applyIntent(g, sm, renderer, in)
			}

			g.Update()

			if s := g.State(); s != lastState {
				lastState = s
				if s == engine.StateMenu || s == engine.StateGameOver {
					best = bestScore(db, log)
				}
			}

			if g.Running() {
				renderer.RenderFrame(g, render.Status{
					Track:   sm.CurrentName(),
					Muted:   sm.Muted(),
					Best:    best.score,
					HasBest: best.ok,
				})
			}
		}
	}

	log.Infow("exiting", "frames", g.Frame)
	return nil
}

// pollEvents forwards terminal events until the screen is finalized
func pollEvents(screen tcell.Screen, out chan<- tcell.Event) {
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\nEVENT POLLER CRASHED: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	for {
		ev := screen.PollEvent()
		if ev == nil {
			close(out)
			return
		}
		out <- ev
	}
}

func applyIntent(g *engine.Game, sm *audio.SoundManager, r *render.TerminalRenderer, in input.Intent) {
	switch in.Type {
	case input.IntentSteer:
		g.Steer(in.Axis, in.Value)
		if in.Value != 0 {
			g.LogField()
		}
	case input.IntentEvent:
		g.Dispatch(in.Event)
	case input.IntentQuit:
		g.Dispatch(event.GameEvent{Type: event.EventQuit})
	case input.IntentToggleMute:
		g.Log.Infow("audio toggled", "muted", sm.ToggleMute())
	case input.IntentResize:
		r.Resize()
	}
}

type bestResult struct {
	score int
	ok    bool
}

func bestScore(db *store.DB, log *zap.SugaredLogger) bestResult {
	if db == nil {
		return bestResult{}
	}
	score, ok, err := db.BestScore(context.Background(), "")
	if err != nil {
		log.Warnw("best score lookup failed", "error", err)
		return bestResult{}
	}
	return bestResult{score: score, ok: ok}
}

// printTopScores writes the n best rounds as a table
func printTopScores(w io.Writer, path string, n int) error {
	if path == "" {
		return fmt.Errorf("score store disabled")
	}
	db, err := store.Open(path)
	if err != nil {
		return err
	}
	defer db.Close()

	rows, err := db.TopScores(context.Background(), n)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tSCORE\tDIFFICULTY\tTIME\tSTARS\tENDED BY\tFINISHED")
	for i, r := range rows {
		fmt.Fprintf(tw, "%d\t%d\t%s\t%d\t%d\t%s\t%s\n",
			i+1, r.Score, r.Difficulty.Label(), r.RealTime, r.Stats.StarsCollected, r.EndedBy,
			r.FinishedAt.Local().Format(time.DateTime))
	}
	return tw.Flush()
}
