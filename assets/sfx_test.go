package assets

import (
	"testing"

	cfg "github.com/aarav-shukla07/stickman-fight/config"
)

func TestEverySoundHasAClip(t *testing.T) {
	ids := []cfg.SoundID{
		cfg.SoundJump, cfg.SoundSwing, cfg.SoundHit, cfg.SoundHitHeavy,
		cfg.SoundMenuNavigate, cfg.SoundMenuSelect, cfg.SoundCountdown, cfg.SoundKO,
	}
	for _, id := range ids {
		data := SFXData(id)
		if len(data) == 0 {
			t.Fatalf("sound %d has no PCM data", id)
		}
		if len(data)%4 != 0 {
			t.Fatalf("sound %d is not whole stereo 16-bit frames: %d bytes", id, len(data))
		}
	}
}

func TestUnknownSoundIsNil(t *testing.T) {
	if SFXData(cfg.SoundNone) != nil {
		t.Fatal("SoundNone should have no clip")
	}
}
