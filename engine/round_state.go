package engine

import (
	"github.com/lixenwraith/space-snake/components"
	"github.com/lixenwraith/space-snake/constants"
)

// FieldSample is the most recent gravity evaluation
type FieldSample struct {
	Samples  int     // sample count, actor included
	RawX     float64 // interpolated field at actor x
	RawY     float64 // interpolated field at actor y
	AppliedX float64 // RawX scaled by the gravity constant
	AppliedY float64
}

// RoundStats accumulates per-round figures for the score history
type RoundStats struct {
	StarsCollected   int
	DebrisHits       int
	BonusWaves       int
	ObstaclesSpawned int
	DebrisSpawned    int
	PeakSpeed        float64
}

// RoundState owns every live entity and counter of the current round
// Collections are rebuilt by Reset and dropped by Discard
type RoundState struct {
	Difficulty Difficulty
	Gravity    float64

	Score      int
	Ticks      int
	RealTime   int
	BonusArmed bool

	Actor     *components.Actor
	Stars     *components.Arena[components.Star]
	Obstacles *components.Arena[components.Obstacle]
	Debris    *components.Arena[components.Debris]

	Field FieldSample
	Stats RoundStats
}

// NewRoundState creates an empty round with no entities
func NewRoundState() *RoundState {
	return &RoundState{
		Stars:     components.NewArena[components.Star](constants.InitialStarCount * 4),
		Obstacles: components.NewArena[components.Obstacle](8),
		Debris:    components.NewArena[components.Debris](8),
	}
}

// Reset starts a fresh round: counters zeroed, actor centred, initial population spawned
// Stars are spawned before hazards so obstacle placement can avoid them
func (r *RoundState) Reset(d Difficulty, sp *Spawner) {
	r.Difficulty = d
	r.Gravity = GravityConstant(d)
	r.Score = 0
	r.Ticks = 0
	r.RealTime = 0
	r.BonusArmed = false
	r.Field = FieldSample{}
	r.Stats = RoundStats{}

	r.Stars.Clear()
	r.Obstacles.Clear()
	r.Debris.Clear()

	r.Actor = components.NewActor(sp.Width/2, sp.Height/2)
	for i := 0; i < constants.InitialStarCount; i++ {
		sp.Star(r)
	}
	for i := 0; i < constants.InitialObstacleCount; i++ {
		sp.Obstacle(r)
	}
	for i := 0; i < constants.InitialDebrisCount; i++ {
		sp.Debris(r)
	}
}

// Discard drops every entity; score and timers stay for display
func (r *RoundState) Discard() {
	r.Actor = nil
	r.Stars.Clear()
	r.Obstacles.Clear()
	r.Debris.Clear()
}

// Active reports whether the round currently owns entities
func (r *RoundState) Active() bool {
	return r.Actor != nil
}
