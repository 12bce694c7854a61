package systems

import (
	"testing"

	"github.com/aarav-shukla07/stickman-fight/components"
	cfg "github.com/aarav-shukla07/stickman-fight/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestPlaySFXEnqueues(t *testing.T) {
	e, _ := newFightWorld()

	PlaySFX(e, cfg.SoundHit)
	PlaySFX(e, cfg.SoundJump)

	entry, _ := components.Audio.First(e.World)
	queue := components.Audio.Get(entry).PendingSFX
	if len(queue) != 2 || queue[0] != cfg.SoundHit || queue[1] != cfg.SoundJump {
		t.Fatalf("unexpected queue %v", queue)
	}
}

func TestPlaySFXWithoutSingletonIsNoop(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	// Must not panic or create anything.
	PlaySFX(e, cfg.SoundHit)
	if _, ok := components.Audio.First(e.World); ok {
		t.Fatal("enqueue must not create the audio singleton")
	}
}
