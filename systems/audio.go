package systems

import (
	"sync"

	"github.com/aarav-shukla07/stickman-fight/assets"
	"github.com/aarav-shukla07/stickman-fight/components"
	cfg "github.com/aarav-shukla07/stickman-fight/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// The audio context is process-wide and created lazily the first time
// UpdateAudio runs. Enqueuing sounds never touches the device, so gameplay
// systems stay runnable without one.
var (
	globalAudioContext *audio.Context
	audioInitOnce      sync.Once
)

func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
	})
}

// UpdateAudio drains the pending SFX queue into the audio device.
func UpdateAudio(e *ecs.ECS) {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	audioData := components.Audio.Get(entry)
	if len(audioData.PendingSFX) == 0 {
		return
	}

	initGlobalAudio()
	for _, soundID := range audioData.PendingSFX {
		playSFX(soundID, audioData.SFXVolume)
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}

func playSFX(soundID cfg.SoundID, volume float64) {
	if volume <= 0 {
		return
	}
	data := assets.SFXData(soundID)
	if data == nil {
		return
	}

	player := globalAudioContext.NewPlayerFromBytes(data)
	player.SetVolume(volume)
	player.Play()
}

// PlaySFX queues a sound effect for the end-of-tick drain. A no-op when no
// audio singleton exists.
func PlaySFX(e *ecs.ECS, sound cfg.SoundID) {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	audioData := components.Audio.Get(entry)
	audioData.PendingSFX = append(audioData.PendingSFX, sound)
}
