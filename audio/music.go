// @focus: #audio { music }
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/space-snake/constants"
)

const rest = -1

// Track is a procedural background piece: one bar of bass and lead over a kick pattern
// Bass and Lead hold semitone offsets from Root per step; rest silences a step
type Track struct {
	Name string
	BPM  float64
	Root int // MIDI note
	Kick uint16
	Bass [constants.MusicStepsPerBar]int
	Lead [constants.MusicStepsPerBar]int
}

// Tracks is the background playlist
var Tracks = []Track{
	{
		Name: "Nebula Drift",
		BPM:  96,
		Root: 40, // E2
		Kick: 0x1111,
		Bass: [16]int{0, rest, 0, rest, 7, rest, 5, rest, 0, rest, 0, rest, 3, rest, 5, rest},
		Lead: [16]int{24, rest, rest, 27, rest, rest, 31, rest, 29, rest, rest, 27, rest, rest, 24, rest},
	},
	{
		Name: "Comet Tail",
		BPM:  124,
		Root: 45, // A2
		Kick: 0x5555,
		Bass: [16]int{0, 0, 12, 0, 0, 12, 0, 10, 0, 0, 12, 0, 7, 0, 10, 12},
		Lead: [16]int{rest, 24, rest, 28, rest, 31, rest, 28, rest, 24, rest, 28, rest, 33, rest, 31},
	},
	{
		Name: "Red Giant",
		BPM:  84,
		Root: 38, // D2
		Kick: 0x0101,
		Bass: [16]int{0, rest, rest, rest, 0, rest, 3, rest, 5, rest, rest, rest, 3, rest, 0, rest},
		Lead: [16]int{15, rest, 14, rest, 12, rest, rest, rest, 10, rest, 12, rest, rest, rest, rest, rest},
	},
	{
		Name: "Event Horizon",
		BPM:  110,
		Root: 43, // G2
		Kick: 0x1111,
		Bass: [16]int{0, rest, 0, 0, rest, 0, 5, rest, 3, rest, 3, 3, rest, 3, 2, rest},
		Lead: [16]int{19, 22, 26, rest, 19, 22, 26, rest, 17, 20, 24, rest, 17, 20, 24, rest},
	},
	{
		Name: "Solar Wind",
		BPM:  132,
		Root: 41, // F2
		Kick: 0x1515,
		Bass: [16]int{0, 12, 0, 12, 0, 12, 0, 12, 5, 17, 5, 17, 7, 19, 7, 19},
		Lead: [16]int{24, rest, 28, rest, 31, rest, 36, rest, 29, rest, 33, rest, 31, rest, 26, rest},
	},
}

// trackStreamer renders a Track
// A looping streamer wraps forever; otherwise it ends after length samples
type trackStreamer struct {
	track  Track
	rate   beep.SampleRate
	step   int
	length int
	kick   int
	loop   bool

	pos       int
	bassPhase float64
	leadPhase float64
}

func newTrackStreamer(t Track, rate beep.SampleRate, duration time.Duration, loop bool) *trackStreamer {
	bpm := t.BPM
	if bpm <= 0 {
		bpm = 120
	}
	// 16th notes
	step := rate.N(time.Duration(float64(time.Minute) / (bpm * 4)))
	if step < 1 {
		step = 1
	}
	bar := step * constants.MusicStepsPerBar
	length := rate.N(duration)
	if length < bar {
		length = bar
	}

	return &trackStreamer{
		track:  t,
		rate:   rate,
		step:   step,
		length: length,
		kick:   rate.N(constants.MusicKickDuration),
		loop:   loop,
	}
}

func (s *trackStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.pos >= s.length {
			if !s.loop {
				return i, i > 0
			}
			s.pos = 0
		}

		idx := (s.pos / s.step) % constants.MusicStepsPerBar
		within := s.pos % s.step
		t := float64(within) / float64(s.rate)

		val := 0.0
		if off := s.track.Bass[idx]; off != rest {
			s.bassPhase = advancePhase(s.bassPhase, NoteFreq(s.track.Root+off), s.rate)
			val += 0.16 * (2*s.bassPhase - 1) * math.Exp(-t*4)
		}
		if off := s.track.Lead[idx]; off != rest {
			s.leadPhase = advancePhase(s.leadPhase, NoteFreq(s.track.Root+off), s.rate)
			val += 0.12 * math.Sin(2*math.Pi*s.leadPhase) * math.Exp(-t*6)
		}
		if s.track.Kick&(1<<idx) != 0 && within < s.kick {
			env := 1.0 - float64(within)/float64(s.kick)
			val += 0.35 * env * math.Sin(2*math.Pi*60*(1+2*env)*t)
		}

		samples[i][0] = val
		samples[i][1] = val
		s.pos++
	}
	return len(samples), true
}

func (s *trackStreamer) Err() error { return nil }

func advancePhase(phase, freq float64, rate beep.SampleRate) float64 {
	phase += freq / float64(rate)
	return phase - math.Floor(phase)
}
