// @focus: #entities { actor }
package components

import (
	"github.com/lixenwraith/space-snake/constants"
	"github.com/lixenwraith/space-snake/vmath"
)

// Actor is the player-controlled snake
// Position is integral; velocity keeps fractional gravity contributions
type Actor struct {
	Body
	VX, VY float64
}

// NewActor creates an actor centred on (cx, cy) at rest
func NewActor(cx, cy int) *Actor {
	a := &Actor{Body: Body{Size: constants.ActorSize}}
	a.SetCenter(cx, cy)
	return a
}

// Integrate advances the position by one tick of velocity, truncating toward zero,
// and clamps the result to [0, width-size] x [0, height-size]
func (a *Actor) Integrate(width, height int) {
	maxX := float64(width - a.Size)
	maxY := float64(height - a.Size)
	a.X = int(vmath.ClampFloat(float64(a.X)+a.VX, 0, maxX))
	a.Y = int(vmath.ClampFloat(float64(a.Y)+a.VY, 0, maxY))
}

// Speed returns the larger velocity axis magnitude
func (a *Actor) Speed() float64 {
	vx, vy := a.VX, a.VY
	if vx < 0 {
		vx = -vx
	}
	if vy < 0 {
		vy = -vy
	}
	if vx > vy {
		return vx
	}
	return vy
}
