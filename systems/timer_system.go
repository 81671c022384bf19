package systems

import (
	"github.com/lixenwraith/space-snake/constants"
	"github.com/lixenwraith/space-snake/engine"
)

// TimerSystem counts round ticks and derives the displayed seconds
type TimerSystem struct{}

func NewTimerSystem() *TimerSystem { return &TimerSystem{} }

func (s *TimerSystem) Priority() int { return constants.PriorityTimer }

func (s *TimerSystem) Update(g *engine.Game) {
	if !g.IsPlaying() {
		return
	}
	r := g.Round
	r.Ticks++
	r.RealTime = r.Ticks / constants.TicksPerRealSecond
}
