package audio

import (
	"time"
)

// Config tunes synthesis and output
type Config struct {
	Enabled      bool
	MasterVolume float64 // 0.0-1.0
	SampleRate   int
	Buffer       time.Duration // Speaker buffer length
	Volumes      [soundCount]float64
}

// DefaultConfig returns quiet interface sound settings
func DefaultConfig() *Config {
	return &Config{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   44100,
		Buffer:       100 * time.Millisecond,
		Volumes: [soundCount]float64{
			SoundClick:   0.4,
			SoundSuccess: 0.5,
			SoundError:   0.4,
		},
	}
}

// clampVolume bounds v to 0.0-1.0
func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
