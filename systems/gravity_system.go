// @focus: #systems { gravity }
package systems

import (
	"github.com/lixenwraith/space-snake/components"
	"github.com/lixenwraith/space-snake/constants"
	"github.com/lixenwraith/space-snake/engine"
	"github.com/lixenwraith/space-snake/engine/fsm"
	"github.com/lixenwraith/space-snake/vmath"
)

// GravitySystem pulls the actor with a field interpolated over the star positions
//
// The sample set holds the actor itself followed by every active star, each as
// (x, y); the field is evaluated at actor.x and actor.y separately, scaled by the
// round's gravity constant and added to the velocity without damping
type GravitySystem struct {
	samples []vmath.Sample
}

func NewGravitySystem() *GravitySystem {
	return &GravitySystem{samples: make([]vmath.Sample, 0, constants.InitialStarCount*4)}
}

func (s *GravitySystem) Priority() int {
	return constants.PriorityGravity
}

func (s *GravitySystem) Update(g *engine.Game) {
	r := g.Round
	if !r.Active() {
		return
	}

	s.samples = BuildSamples(r.Actor, r.Stars, s.samples[:0])
	state := g.State()
	qx, qy := float64(r.Actor.X), float64(r.Actor.Y)

	rawX := FieldAt(state, qx, s.samples)
	rawY := FieldAt(state, qy, s.samples)
	fx := r.Gravity * rawX
	fy := r.Gravity * rawY

	r.Actor.VX += fx
	r.Actor.VY += fy

	r.Field = engine.FieldSample{
		Samples:  len(s.samples),
		RawX:     rawX,
		RawY:     rawY,
		AppliedX: fx,
		AppliedY: fy,
	}
}

// BuildSamples snapshots the field nodes for one tick into dst
// The actor comes first, then active stars in slot order
func BuildSamples(actor *components.Actor, stars *components.Arena[components.Star], dst []vmath.Sample) []vmath.Sample {
	if actor == nil {
		return dst
	}
	dst = append(dst, vmath.Sample{X: float64(actor.X), Y: float64(actor.Y)})
	stars.Each(func(_ int, st *components.Star) {
		dst = append(dst, vmath.Sample{X: float64(st.X), Y: float64(st.Y)})
	})
	return dst
}

// FieldAt evaluates the interpolated field, gated on the game state
// Outside Playing the field is 0 regardless of samples
func FieldAt(state fsm.StateID, query float64, samples []vmath.Sample) float64 {
	if state != engine.StatePlaying {
		return 0
	}
	return vmath.Lagrange(query, samples)
}
