package core

// Sound identifies a sound effect or music track played by the audio layer.
type Sound int

const (
	SoundCatch    Sound = iota // Good item caught
	SoundHit                   // Bad item hit the player
	SoundGameOver              // Last life lost
	SoundMusic                 // Looping background music
)

// String returns a human-readable name for the sound.
func (s Sound) String() string {
	switch s {
	case SoundCatch:
		return "catch"
	case SoundHit:
		return "hit"
	case SoundGameOver:
		return "game-over"
	case SoundMusic:
		return "music"
	default:
		return "unknown"
	}
}
