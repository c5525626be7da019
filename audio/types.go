package audio

// Sound identifies an interface sound effect
type Sound int

const (
	SoundClick   Sound = iota // Panel toggle, message sent
	SoundSuccess              // Assistant reply arrived
	SoundError                // Rejected input
	soundCount
)

func (s Sound) String() string {
	switch s {
	case SoundClick:
		return "click"
	case SoundSuccess:
		return "success"
	case SoundError:
		return "error"
	default:
		return "unknown"
	}
}

// ParseSound maps a sound name to its Sound, ok is false for unknown names
func ParseSound(name string) (Sound, bool) {
	for s := Sound(0); s < soundCount; s++ {
		if s.String() == name {
			return s, true
		}
	}
	return 0, false
}

// Player is the sound sink used by the interface, satisfied by *SoundManager
type Player interface {
	Play(s Sound) bool
}
