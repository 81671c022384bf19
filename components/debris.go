// @focus: #entities { debris }
package components

import (
	"github.com/lixenwraith/space-snake/constants"
	"github.com/lixenwraith/space-snake/vmath"
)

// Debris is a static hazard that costs score on contact
type Debris struct {
	Body
}

// NewDebris creates a debris in the spawn zone right of the playfield
func NewDebris(rng *vmath.FastRand, width, height int) Debris {
	d := Debris{Body: Body{Size: constants.DebrisSize}}
	d.Respawn(rng, width, height)
	return d
}

func (d *Debris) Respawn(rng *vmath.FastRand, width, height int) {
	d.SetCenter(rng.IntRange(width, width+d.Size), rng.IntRange(0, height-d.Size))
}

func (d *Debris) Advance(rng *vmath.FastRand, width, height int) {
	d.X -= constants.ScrollSpeed
	if d.OffScreenLeft() {
		d.Respawn(rng, width, height)
	}
}
