// @focus: #spawn { placement }
package engine

import (
	"github.com/lixenwraith/space-snake/components"
	"github.com/lixenwraith/space-snake/vmath"
)

// Spawner creates and places entities inside a playfield
type Spawner struct {
	Width, Height int
	Rng           *vmath.FastRand
}

// NewSpawner creates a spawner for a width x height playfield
func NewSpawner(width, height int, rng *vmath.FastRand) *Spawner {
	return &Spawner{Width: width, Height: height, Rng: rng}
}

// PlaceAvoidingStars picks a vertical offset in [0, height-size) that does not fall
// strictly inside any active star's vertical span (star.Y < o < star.Y+star.Size)
// Falls back to the unconstrained range when every offset is covered
func PlaceAvoidingStars(height, size int, stars *components.Arena[components.Star], rng *vmath.FastRand) int {
	limit := height - size
	if limit <= 0 {
		return 0
	}

	valid := make([]int, 0, limit)
	for o := 0; o < limit; o++ {
		covered := false
		stars.Each(func(_ int, s *components.Star) {
			if !covered && s.Y < o && o < s.Y+s.Size {
				covered = true
			}
		})
		if !covered {
			valid = append(valid, o)
		}
	}

	if len(valid) == 0 {
		return rng.Intn(limit)
	}
	return valid[rng.Intn(len(valid))]
}

// Star adds a star in the spawn zone and returns its slot
func (sp *Spawner) Star(r *RoundState) int {
	return r.Stars.Alloc(components.NewStar(sp.Rng, sp.Width, sp.Height))
}

// Obstacle adds an obstacle at the right edge, placed clear of star rows
func (sp *Spawner) Obstacle(r *RoundState) int {
	o := components.NewObstacle(sp.Rng, sp.Width, 0)
	o.Y = PlaceAvoidingStars(sp.Height, o.Size, r.Stars, sp.Rng)
	return r.Obstacles.Alloc(o)
}

// Debris adds a debris in the spawn zone, placed clear of star rows
func (sp *Spawner) Debris(r *RoundState) int {
	d := components.NewDebris(sp.Rng, sp.Width, sp.Height)
	d.Y = PlaceAvoidingStars(sp.Height, d.Size, r.Stars, sp.Rng)
	return r.Debris.Alloc(d)
}

// RecycleObstacle returns an obstacle that left the playfield to the right edge
func (sp *Spawner) RecycleObstacle(r *RoundState, o *components.Obstacle) {
	o.Respawn(sp.Width, PlaceAvoidingStars(sp.Height, o.Size, r.Stars, sp.Rng))
}

// RecycleDebris teleports a debris back into the spawn zone
func (sp *Spawner) RecycleDebris(d *components.Debris) {
	d.Respawn(sp.Rng, sp.Width, sp.Height)
}
