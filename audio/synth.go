package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveTriangle
)

// oscillator generates a fixed-length raw wave
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a streamer of duration worth of wave samples at freq
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			val = 1
			if o.phase >= 0.5 {
				val = -1
			}
		case WaveTriangle:
			val = 1 - 4*math.Abs(o.phase-0.5)
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and exponential release to a stream
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	total    int
	decay    float64 // Release steepness
}

// NewEnvelope shapes s over duration with a linear attack ramp, the remainder decays toward silence
func NewEnvelope(s beep.Streamer, duration, attack time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		total:    rate.N(duration),
		decay:    5,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}
		g := e.gain()
		samples[i][0] *= g
		samples[i][1] *= g
		e.position++
	}
	return n, ok
}

// gain returns the envelope level at the current position
func (e *envelope) gain() float64 {
	if e.position < e.attack {
		return float64(e.position) / float64(e.attack)
	}
	span := e.total - e.attack
	if span <= 0 {
		return 1
	}
	t := float64(e.position-e.attack) / float64(span)
	return math.Exp(-e.decay * t)
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s in a linear volume, math.Log2(0) is -Inf so zero maps to silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// tone is one enveloped oscillator note
func tone(freq float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, d, wave, rate), d, 5*time.Millisecond, rate)
}

// CreateClickSound generates a short high blip
func CreateClickSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	return tone(1200, 40*time.Millisecond, WaveSine, rate)
}

// CreateSuccessSound generates a rising two-note chime, E5 then A5
func CreateSuccessSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	return beep.Seq(
		tone(659.25, 90*time.Millisecond, WaveTriangle, rate),
		tone(880.0, 140*time.Millisecond, WaveTriangle, rate),
	)
}

// CreateErrorSound generates a low square buzz
func CreateErrorSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	return newVolume(tone(150, 150*time.Millisecond, WaveSquare, rate), 0.5)
}

// Effect returns the volume-scaled streamer for s, nil for unknown sounds
func Effect(s Sound, cfg *Config) beep.Streamer {
	var st beep.Streamer
	switch s {
	case SoundClick:
		st = CreateClickSound(cfg)
	case SoundSuccess:
		st = CreateSuccessSound(cfg)
	case SoundError:
		st = CreateErrorSound(cfg)
	default:
		return nil
	}
	return newVolume(st, clampVolume(cfg.Volumes[s]*cfg.MasterVolume))
}
