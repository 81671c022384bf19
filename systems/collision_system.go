// @focus: #systems { collision, scoring }
package systems

import (
	"github.com/lixenwraith/space-snake/components"
	"github.com/lixenwraith/space-snake/constants"
	"github.com/lixenwraith/space-snake/engine"
	"github.com/lixenwraith/space-snake/event"
)

// CollisionResult summarizes one tick of collision resolution
type CollisionResult struct {
	StarsConsumed    int
	BonusStars       int
	ReplacementStars int
	ObstaclesSpawned int
	DebrisSpawned    int
	ObstacleHit      bool
	DebrisHits       int
	ScoreNegative    bool
}

// RoundOver reports whether this tick ended the round
func (c CollisionResult) RoundOver() bool {
	return c.ObstacleHit || c.ScoreNegative
}

// CollisionSystem resolves actor contact with stars, then obstacles, then debris
type CollisionSystem struct {
	hits []int
}

func NewCollisionSystem() *CollisionSystem {
	return &CollisionSystem{hits: make([]int, 0, 8)}
}

func (s *CollisionSystem) Priority() int {
	return constants.PriorityCollision
}

func (s *CollisionSystem) Update(g *engine.Game) {
	if !g.IsPlaying() || !g.Round.Active() {
		return
	}

	res := s.Resolve(g.Round, g.Spawner)

	if res.StarsConsumed > 0 {
		g.Sounds.PlayCoin()
	}
	if res.DebrisHits > 0 {
		g.Sounds.PlayBuzz()
	}
	if res.ObstacleHit {
		g.Sounds.PlayCrash()
		g.Emit(event.GameEvent{Type: event.EventObstacleHit})
	}
	if res.ScoreNegative {
		g.Emit(event.GameEvent{Type: event.EventScoreNegative, Payload: g.Round.Score})
	}
}

// Resolve applies contact rules to the round and returns what happened
//
// Every overlapping star counts: each consumption scores one point, spawns one
// replacement and runs the milestone checks for the new score in turn
func (s *CollisionSystem) Resolve(r *engine.RoundState, sp *engine.Spawner) CollisionResult {
	var res CollisionResult
	actor := r.Actor.Body

	s.hits = s.hits[:0]
	r.Stars.Each(func(i int, st *components.Star) {
		if actor.Overlaps(st.Body) {
			s.hits = append(s.hits, i)
		}
	})
	for _, i := range s.hits {
		r.Stars.Release(i)
		r.Score++
		res.StarsConsumed++
		r.Stats.StarsCollected++
		s.applyMilestones(r, sp, &res)
	}

	r.Obstacles.Each(func(_ int, o *components.Obstacle) {
		if actor.CircleOverlaps(o.Body) {
			res.ObstacleHit = true
		}
	})

	r.Debris.Each(func(_ int, d *components.Debris) {
		if actor.CircleOverlaps(d.Body) {
			r.Score -= constants.DebrisPenalty
			res.DebrisHits++
			r.Stats.DebrisHits++
			sp.RecycleDebris(d)
		}
	})
	if res.DebrisHits > 0 && r.Score < 0 {
		res.ScoreNegative = true
	}

	return res
}

// applyMilestones runs the spawn cascade for the score reached by one star
func (s *CollisionSystem) applyMilestones(r *engine.RoundState, sp *engine.Spawner, res *CollisionResult) {
	score := r.Score

	if score > 0 && score%constants.BonusStarMilestone == 0 {
		r.BonusArmed = true
	}
	if r.BonusArmed {
		for k := 0; k < constants.BonusStarCount; k++ {
			sp.Star(r)
		}
		r.BonusArmed = false
		res.BonusStars += constants.BonusStarCount
		r.Stats.BonusWaves++
	}

	sp.Star(r)
	res.ReplacementStars++

	if score > 0 && score%constants.ObstacleMilestone == 0 {
		sp.Obstacle(r)
		res.ObstaclesSpawned++
		r.Stats.ObstaclesSpawned++
	}
	if score != 0 && score%constants.DebrisMilestone == 0 {
		sp.Debris(r)
		res.DebrisSpawned++
		r.Stats.DebrisSpawned++
	}
}
