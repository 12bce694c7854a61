package config

// SoundID identifies a synthesized sound effect.
type SoundID int

const (
	SoundNone SoundID = iota
	SoundJump
	SoundSwing
	SoundHit
	SoundHitHeavy
	SoundMenuNavigate
	SoundMenuSelect
	SoundCountdown
	SoundKO
)

// AudioConfig contains audio engine configuration.
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
}

// Audio holds the audio configuration.
var Audio AudioConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 0.8,
	}
}
