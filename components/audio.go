package components

import (
	cfg "github.com/aarav-shukla07/stickman-fight/config"
	"github.com/yohamta/donburi"
)

// AudioData queues sound requests for the audio system (singleton
// component). Gameplay systems enqueue IDs; the audio system drains the
// queue once per tick and plays the synthesized clips.
type AudioData struct {
	SFXVolume  float64
	PendingSFX []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
