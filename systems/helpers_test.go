package systems

import (
	"context"
	"testing"
	"time"

	"github.com/lixenwraith/space-snake/components"
	"github.com/lixenwraith/space-snake/constants"
	"github.com/lixenwraith/space-snake/engine"
	"github.com/lixenwraith/space-snake/event"
	"github.com/lixenwraith/space-snake/vmath"
)

type fakeSounds struct {
	coin, buzz, crash int
}

func (f *fakeSounds) PlayCoin()  { f.coin++ }
func (f *fakeSounds) PlayBuzz()  { f.buzz++ }
func (f *fakeSounds) PlayCrash() { f.crash++ }

type fakeRecorder struct {
	rounds []engine.RoundSummary
}

func (f *fakeRecorder) RecordRound(_ context.Context, s engine.RoundSummary) error {
	f.rounds = append(f.rounds, s)
	return nil
}

// newPlayingGame returns a game already in Playing at difficulty d, with every system registered
func newPlayingGame(t *testing.T, d engine.Difficulty) (*engine.Game, *fakeSounds, *fakeRecorder) {
	t.Helper()

	sounds := &fakeSounds{}
	rec := &fakeRecorder{}
	g, err := engine.NewGame(engine.Options{
		Width:        constants.PlayfieldWidth,
		Height:       constants.PlayfieldHeight,
		Rng:          vmath.NewFastRand(42),
		Sounds:       sounds,
		Recorder:     rec,
		TimeProvider: engine.NewMockTimeProvider(time.Unix(1700000000, 0)),
	})
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	g.AddSystem(NewMovementSystem())
	g.AddSystem(NewTimerSystem())
	g.AddSystem(NewCollisionSystem())
	g.AddSystem(NewGravitySystem())

	if err := g.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	g.Dispatch(event.GameEvent{Type: event.EventStart})
	g.Dispatch(event.GameEvent{Type: event.EventSelectDifficulty, Payload: d})
	if !g.IsPlaying() {
		t.Fatalf("expected Playing, got %s", g.StateName())
	}
	return g, sounds, rec
}

// clearRound drops every pooled entity, leaving only the actor
func clearRound(g *engine.Game) {
	g.Round.Stars.Clear()
	g.Round.Obstacles.Clear()
	g.Round.Debris.Clear()
}

func starAt(x, y int) components.Star {
	return components.Star{Body: components.Body{X: x, Y: y, Size: constants.StarSize}}
}

func debrisAt(x, y int) components.Debris {
	return components.Debris{Body: components.Body{X: x, Y: y, Size: constants.DebrisSize}}
}

func obstacleAt(x, y int) components.Obstacle {
	return components.Obstacle{Body: components.Body{X: x, Y: y, Size: constants.ObstacleSize}}
}
