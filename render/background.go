package render

import (
	"github.com/lixenwraith/space-snake/constants"
	"github.com/lixenwraith/space-snake/vmath"
)

// speck is one background star inside a tile, in world units
type speck struct {
	x, y   int
	bright bool
}

// Starfield is a horizontally repeating background tile scrolled every frame
type Starfield struct {
	specks []speck
	scroll int
	tileW  int
}

// NewStarfield scatters the tile's specks from seed
func NewStarfield(height int, seed uint64) *Starfield {
	rng := vmath.NewFastRand(seed)
	s := &Starfield{
		specks: make([]speck, constants.BackgroundStarsPerTile),
		tileW:  constants.BackgroundTileWidth,
	}
	for i := range s.specks {
		s.specks[i] = speck{
			x:      rng.Intn(s.tileW),
			y:      rng.Intn(max(height, 1)),
			bright: rng.Intn(4) == 0,
		}
	}
	return s
}

// Advance scrolls one frame, wrapping after a full tile
func (s *Starfield) Advance() {
	s.scroll -= constants.ScrollSpeed
	if -s.scroll >= s.tileW {
		s.scroll = 0
	}
}

// Scroll returns the current offset, in (-tileW, 0]
func (s *Starfield) Scroll() int { return s.scroll }

// Each visits every visible speck position for a playfield of width
func (s *Starfield) Each(width int, fn func(x, y int, bright bool)) {
	tiles := width/s.tileW + 2
	for t := 0; t < tiles; t++ {
		base := t*s.tileW + s.scroll
		for _, sp := range s.specks {
			x := base + sp.x
			if x < 0 || x >= width {
				continue
			}
			fn(x, sp.y, sp.bright)
		}
	}
}
