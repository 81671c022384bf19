package engine

import (
	"context"
	"time"

	"github.com/lixenwraith/space-snake/event"
)

// System is an interface that all systems must implement
type System interface {
	Update(g *Game)
	Priority() int // Lower values run first
}

// MusicPlayer switches background tracks
type MusicPlayer interface {
	PlayRandom(loop bool)
	PlayDifferent(loop bool)
	Stop()
}

// SoundPlayer plays one-shot effects
type SoundPlayer interface {
	PlayCoin()
	PlayBuzz()
	PlayCrash()
}

// RoundRecorder persists finished rounds
type RoundRecorder interface {
	RecordRound(ctx context.Context, s RoundSummary) error
}

// RoundSummary describes a finished round
type RoundSummary struct {
	Difficulty Difficulty
	Score      int
	Ticks      int
	RealTime   int
	EndedBy    event.EventType
	Stats      RoundStats
	FinishedAt time.Time
}

// Axis selects a velocity component for steering
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

type nopAudio struct{}

func (nopAudio) PlayRandom(bool)    {}
func (nopAudio) PlayDifferent(bool) {}
func (nopAudio) Stop()              {}
func (nopAudio) PlayCoin()          {}
func (nopAudio) PlayBuzz()          {}
func (nopAudio) PlayCrash()         {}
