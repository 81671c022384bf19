package audio

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/space-snake/constants"
	"github.com/lixenwraith/space-snake/vmath"
)

// SoundManager manages all game audio: one background track and one-shot effects
//
// Without an initialized speaker every call still updates track selection but
// produces no output, so the game runs unchanged on machines with no audio device
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	rng         *vmath.FastRand
	mixer       *beep.Mixer
	music       *beep.Ctrl
	current     int
	initialized bool

	muted atomic.Bool

	// generation invalidates end callbacks of replaced tracks
	generation atomic.Uint64
	onEnded    func()
}

// NewSoundManager creates a sound manager; nil cfg uses defaults
func NewSoundManager(cfg *AudioConfig, rng *vmath.FastRand) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	cfg.Normalize()
	if rng == nil {
		rng = vmath.NewFastRand(1)
	}
	return &SoundManager{
		cfg:     cfg,
		rng:     rng,
		mixer:   &beep.Mixer{},
		current: -1,
	}
}

// OnMusicEnded registers fn to run when a non-looping track finishes
// fn runs on the speaker goroutine and must not block or call back into the manager
// Must be set before Initialize
func (sm *SoundManager) OnMusicEnded(fn func()) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.onEnded = fn
}

// Initialize sets up the audio device
// Disabled audio is not an error; a failed device is, and leaves the manager silent
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(constants.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the audio device
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.stopLocked()
	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

// Enabled reports whether sound reaches a device
func (sm *SoundManager) Enabled() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// PlayTrack replaces the background track with Tracks[idx]
func (sm *SoundManager) PlayTrack(idx int, loop bool) {
	if idx < 0 || idx >= len(Tracks) {
		return
	}
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.playLocked(idx, loop)
}

// PlayRandom plays any track, possibly the current one
func (sm *SoundManager) PlayRandom(loop bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.playLocked(sm.rng.Intn(len(Tracks)), loop)
}

// PlayDifferent plays a track other than the current one
// A single-track playlist reuses that track
func (sm *SoundManager) PlayDifferent(loop bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.playLocked(sm.pickDifferent(), loop)
}

// Stop silences the background track
func (sm *SoundManager) Stop() {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.stopLocked()
	sm.current = -1
}

// Current returns the playing track index, -1 when stopped
func (sm *SoundManager) Current() int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.current
}

// CurrentName returns the playing track name, empty when stopped
func (sm *SoundManager) CurrentName() string {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if sm.current < 0 {
		return ""
	}
	return Tracks[sm.current].Name
}

// ToggleMute flips output on or off and returns the new muted state
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	muted := !sm.muted.Load()
	sm.muted.Store(muted)
	if sm.music != nil && sm.initialized {
		speaker.Lock()
		sm.music.Paused = muted
		speaker.Unlock()
	}
	return muted
}

func (sm *SoundManager) Muted() bool { return sm.muted.Load() }

func (sm *SoundManager) PlayCoin()  { sm.playEffect(SoundCoin) }
func (sm *SoundManager) PlayBuzz()  { sm.playEffect(SoundBuzz) }
func (sm *SoundManager) PlayCrash() { sm.playEffect(SoundCrash) }

func (sm *SoundManager) playEffect(t SoundType) {
	if sm.muted.Load() {
		return
	}
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	s := GetSoundEffect(t, sm.cfg)
	if s == nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

func (sm *SoundManager) pickDifferent() int {
	n := len(Tracks)
	if n == 1 || sm.current < 0 {
		return sm.rng.Intn(n)
	}
	idx := sm.rng.Intn(n - 1)
	if idx >= sm.current {
		idx++
	}
	return idx
}

func (sm *SoundManager) playLocked(idx int, loop bool) {
	sm.stopLocked()
	sm.current = idx
	gen := sm.generation.Load()

	if !sm.initialized {
		return
	}

	var s beep.Streamer = newTrackStreamer(Tracks[idx], beep.SampleRate(sm.cfg.SampleRate), constants.MusicTrackDuration, loop)
	if !loop {
		onEnded := sm.onEnded
		s = beep.Seq(s, beep.Callback(func() { sm.trackEnded(gen, onEnded) }))
	}

	ctrl := &beep.Ctrl{
		Streamer: newVolume(s, sm.cfg.MusicVolume*sm.cfg.MasterVolume),
		Paused:   sm.muted.Load(),
	}
	sm.music = ctrl

	speaker.Lock()
	sm.mixer.Add(ctrl)
	speaker.Unlock()
}

// stopLocked detaches the current track; a nil Streamer makes the mixer drop the Ctrl
func (sm *SoundManager) stopLocked() {
	sm.generation.Add(1)
	if sm.music == nil {
		return
	}
	if sm.initialized {
		speaker.Lock()
		sm.music.Streamer = nil
		speaker.Unlock()
	}
	sm.music = nil
}

// trackEnded runs under the speaker lock; it must not take sm.mu
func (sm *SoundManager) trackEnded(gen uint64, fn func()) {
	if fn == nil || sm.generation.Load() != gen {
		return
	}
	fn()
}
