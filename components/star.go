// @focus: #entities { star }
package components

import (
	"github.com/lixenwraith/space-snake/constants"
	"github.com/lixenwraith/space-snake/vmath"
)

// Star is a collectible that feeds both the score and the gravity field
type Star struct {
	Body
}

// NewStar creates a star placed in the spawn zone right of the playfield
func NewStar(rng *vmath.FastRand, width, height int) Star {
	s := Star{Body: Body{Size: constants.StarSize}}
	s.Respawn(rng, width, height)
	return s
}

// Respawn teleports the star back into the spawn zone at a new random height
func (s *Star) Respawn(rng *vmath.FastRand, width, height int) {
	s.SetCenter(rng.IntRange(width, width+s.Size), rng.IntRange(0, height-s.Size))
}

// Advance drifts the star left, recycling it once it leaves the playfield
func (s *Star) Advance(rng *vmath.FastRand, width, height int) {
	s.X -= constants.ScrollSpeed
	if s.OffScreenLeft() {
		s.Respawn(rng, width, height)
	}
}
