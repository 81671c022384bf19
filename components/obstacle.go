// @focus: #entities { obstacle }
package components

import (
	"github.com/lixenwraith/space-snake/constants"
	"github.com/lixenwraith/space-snake/vmath"
)

// Obstacle is a rotating hazard that ends the round on contact
// Angle and Spin are in degrees; Spin is fixed per instance
type Obstacle struct {
	Body
	Spin  float64
	Angle float64
}

// NewObstacle creates an obstacle at (x, y) with a random spin
func NewObstacle(rng *vmath.FastRand, x, y int) Obstacle {
	o := Obstacle{
		Body: Body{Size: constants.ObstacleSize},
		Spin: rng.FloatRange(constants.ObstacleSpinMin, constants.ObstacleSpinMax),
	}
	o.Respawn(x, y)
	return o
}

// Respawn places the obstacle at (x, y) and resets its rotation
func (o *Obstacle) Respawn(x, y int) {
	o.X = x
	o.Y = y
	o.Angle = 0
}

// Advance drifts and spins the obstacle
// Returns true when it left the playfield and needs a new placement
func (o *Obstacle) Advance() bool {
	o.X -= constants.ScrollSpeed
	o.Angle += o.Spin
	return o.OffScreenLeft()
}
