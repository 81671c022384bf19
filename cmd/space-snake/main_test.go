package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/space-snake/audio"
	"github.com/lixenwraith/space-snake/constants"
	"github.com/lixenwraith/space-snake/engine"
	"github.com/lixenwraith/space-snake/event"
	"github.com/lixenwraith/space-snake/input"
	"github.com/lixenwraith/space-snake/render"
	"github.com/lixenwraith/space-snake/store"
	"github.com/lixenwraith/space-snake/vmath"
)

func TestPrintTopScores(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.db")
	db, err := store.Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	ctx := context.Background()
	for _, s := range []int{4, 17} {
		err := db.RecordRound(ctx, engine.RoundSummary{
			Difficulty: engine.DifficultyHard,
			Score:      s,
			EndedBy:    event.EventObstacleHit,
			FinishedAt: time.Now(),
		})
		if err != nil {
			t.Fatalf("RecordRound failed: %v", err)
		}
	}
	db.Close()

	var buf bytes.Buffer
	if err := printTopScores(&buf, path, 10); err != nil {
		t.Fatalf("printTopScores failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header and 2 rows, got %d lines:\n%s", len(lines), buf.String())
	}
	if !strings.Contains(lines[1], "17") || !strings.Contains(lines[2], "4") {
		t.Errorf("rows not ordered by score:\n%s", buf.String())
	}
	if !strings.Contains(lines[1], engine.DifficultyHard.Label()) {
		t.Errorf("difficulty label missing: %q", lines[1])
	}
}

func TestPrintTopScoresDisabled(t *testing.T) {
	var buf bytes.Buffer
	if err := printTopScores(&buf, "", 5); err == nil {
		t.Error("expected error when the store is disabled")
	}
}

func TestApplyIntent(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(150, 30)

	g, err := engine.NewGame(engine.Options{
		Width:  constants.PlayfieldWidth,
		Height: constants.PlayfieldHeight,
		Rng:    vmath.NewFastRand(7),
	})
	if err != nil {
		t.Fatalf("NewGame failed: %v", err)
	}
	if err := g.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	cfg := audio.DefaultAudioConfig()
	cfg.Enabled = false
	sm := audio.NewSoundManager(cfg, vmath.NewFastRand(1))
	r := render.NewTerminalRenderer(screen, constants.PlayfieldWidth, constants.PlayfieldHeight, 1)

	applyIntent(g, sm, r, input.Intent{Type: input.IntentEvent, Event: event.GameEvent{Type: event.EventStart}})
	applyIntent(g, sm, r, input.Intent{
		Type:  input.IntentEvent,
		Event: event.GameEvent{Type: event.EventSelectDifficulty, Payload: engine.DifficultyEasy},
	})
	if !g.IsPlaying() {
		t.Fatalf("state = %s, want Playing", g.StateName())
	}

	applyIntent(g, sm, r, input.Intent{Type: input.IntentSteer, Axis: engine.AxisX, Value: constants.ActorSpeedX})
	if g.Round.Actor.VX != constants.ActorSpeedX {
		t.Errorf("VX = %v, want %v", g.Round.Actor.VX, constants.ActorSpeedX)
	}

	applyIntent(g, sm, r, input.Intent{Type: input.IntentToggleMute})
	if !sm.Muted() {
		t.Error("mute intent should mute audio")
	}

	screen.SetSize(80, 20)
	applyIntent(g, sm, r, input.Intent{Type: input.IntentResize})
	if vp := r.Viewport(); vp.Cols != 80 || vp.Rows != 20 {
		t.Errorf("viewport = %dx%d, want 80x20", vp.Cols, vp.Rows)
	}

	applyIntent(g, sm, r, input.Intent{Type: input.IntentQuit})
	if g.Running() {
		t.Error("quit intent should terminate the game")
	}
}
