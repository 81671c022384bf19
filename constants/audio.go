package constants

import "time"

// Audio Engine
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 48000

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// MusicTrackDuration is the length of one pass through a procedural track
	MusicTrackDuration = 32 * time.Second

	// DefaultMasterVolume is the linear gain applied to everything
	DefaultMasterVolume = 0.8
)

// Sound Effect Timing
const (
	CoinSoundNote1Duration = 60 * time.Millisecond
	CoinSoundNote2Duration = 120 * time.Millisecond
	CoinSoundAttack        = 3 * time.Millisecond
	CoinSoundRelease       = 80 * time.Millisecond

	BuzzSoundDuration = 150 * time.Millisecond
	BuzzSoundAttack   = 5 * time.Millisecond
	BuzzSoundRelease  = 60 * time.Millisecond

	CrashSoundDuration = 400 * time.Millisecond
	CrashSoundAttack   = 2 * time.Millisecond
	CrashSoundRelease  = 300 * time.Millisecond
)

// Music Sequencing
const (
	// MusicStepsPerBar is the step count of every procedural pattern (16th notes)
	MusicStepsPerBar = 16

	// MusicKickDuration is the length of one kick hit
	MusicKickDuration = 100 * time.Millisecond
)
