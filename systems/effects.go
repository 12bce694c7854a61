package systems

import (
	"github.com/aarav-shukla07/stickman-fight/components"
	cfg "github.com/aarav-shukla07/stickman-fight/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects integrates particles and counts down fighter flashes.
// Runs regardless of match state so sparks keep flying over the KO pose.
func UpdateEffects(e *ecs.ECS) {
	var expired []*donburi.Entry
	components.Particle.Each(e.World, func(entry *donburi.Entry) {
		p := components.Particle.Get(entry)
		p.VelY += p.Gravity
		p.X += p.VelX
		p.Y += p.VelY
		p.Life--
		if p.Life <= 0 {
			expired = append(expired, entry)
		}
	})
	for _, entry := range expired {
		entry.Remove()
	}

	components.Flash.Each(e.World, func(entry *donburi.Entry) {
		flash := components.Flash.Get(entry)
		if flash.Duration > 0 {
			flash.Duration--
		}
	})
}

// TriggerHitFlash flashes a fighter white briefly when their attack connects.
func TriggerHitFlash(entry *donburi.Entry) {
	if !entry.HasComponent(components.Flash) {
		return
	}
	components.Flash.SetValue(entry, components.FlashData{
		Duration: cfg.Effects.HitFlashFrames,
		R:        1, G: 1, B: 1,
	})
}

// TriggerDamageFlash flashes a fighter red when they take damage.
func TriggerDamageFlash(entry *donburi.Entry) {
	if !entry.HasComponent(components.Flash) {
		return
	}
	components.Flash.SetValue(entry, components.FlashData{
		Duration: cfg.Effects.DamageFlashFrames,
		R:        1, G: 0.25, B: 0.25,
	})
}
