package systems

import (
	"github.com/lixenwraith/space-snake/components"
	"github.com/lixenwraith/space-snake/constants"
	"github.com/lixenwraith/space-snake/engine"
)

// MovementSystem integrates the actor and drifts every pooled entity left,
// recycling whatever leaves the playfield
// Runs in every state; outside a round there is nothing to move
type MovementSystem struct{}

func NewMovementSystem() *MovementSystem { return &MovementSystem{} }

func (s *MovementSystem) Priority() int { return constants.PriorityMovement }

func (s *MovementSystem) Update(g *engine.Game) {
	r := g.Round
	if !r.Active() {
		return
	}
	sp := g.Spawner

	r.Actor.Integrate(g.Width, g.Height)
	if speed := r.Actor.Speed(); speed > r.Stats.PeakSpeed {
		r.Stats.PeakSpeed = speed
	}

	r.Stars.Each(func(_ int, st *components.Star) {
		st.Advance(sp.Rng, g.Width, g.Height)
	})
	r.Obstacles.Each(func(_ int, o *components.Obstacle) {
		if o.Advance() {
			sp.RecycleObstacle(r, o)
		}
	})
	r.Debris.Each(func(_ int, d *components.Debris) {
		d.Advance(sp.Rng, g.Width, g.Height)
	})
}
