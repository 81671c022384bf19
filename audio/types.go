package audio

// SoundType represents different sound effects
type SoundType int

const (
	SoundCoin  SoundType = iota // Star collected
	SoundBuzz                   // Debris hit
	SoundCrash                  // Obstacle hit
	soundTypeCount
)

var soundNames = [soundTypeCount]string{"coin", "buzz", "crash"}

func (s SoundType) String() string {
	if s < 0 || s >= soundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}

// ParseSoundType maps a config key back to its SoundType
func ParseSoundType(name string) (SoundType, bool) {
	for i, n := range soundNames {
		if n == name {
			return SoundType(i), true
		}
	}
	return 0, false
}
