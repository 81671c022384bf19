package audio

import "github.com/lixenwraith/space-snake/constants"

// AudioConfig holds volume and device settings
// Volumes are linear gains in [0, 1]
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64
	MusicVolume   float64
	EffectVolumes map[SoundType]float64
	SampleRate    int
}

// DefaultAudioConfig returns audio enabled at default levels
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: constants.DefaultMasterVolume,
		MusicVolume:  0.5,
		EffectVolumes: map[SoundType]float64{
			SoundCoin:  0.6,
			SoundBuzz:  0.5,
			SoundCrash: 0.8,
		},
		SampleRate: constants.AudioSampleRate,
	}
}

// Normalize clamps volumes into range and restores a usable sample rate
func (c *AudioConfig) Normalize() {
	c.MasterVolume = clampUnit(c.MasterVolume)
	c.MusicVolume = clampUnit(c.MusicVolume)
	if c.EffectVolumes == nil {
		c.EffectVolumes = make(map[SoundType]float64, soundTypeCount)
	}
	for k, v := range c.EffectVolumes {
		c.EffectVolumes[k] = clampUnit(v)
	}
	if c.SampleRate <= 0 {
		c.SampleRate = constants.AudioSampleRate
	}
}

func clampUnit(v float64) float64 {
	if v < 0 || v != v {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
