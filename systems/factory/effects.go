package factory

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/aarav-shukla07/stickman-fight/archetypes"
	"github.com/aarav-shukla07/stickman-fight/components"
	cfg "github.com/aarav-shukla07/stickman-fight/config"
	"github.com/yohamta/donburi/ecs"
)

// SpawnHitSparks bursts particles at an impact point, tinted with the
// weapon's color hint. Heavy hits get a bigger, faster burst.
func SpawnHitSparks(e *ecs.ECS, x, y float64, tint color.RGBA, heavy bool) {
	count := cfg.Effects.HitSparkCount
	speed := cfg.Effects.HitSparkSpeed
	if heavy {
		count *= 2
		speed *= 1.5
	}

	for i := 0; i < count; i++ {
		angle := rand.Float64() * 2 * math.Pi
		v := speed * (0.4 + rand.Float64()*0.6)
		spawnParticle(e, components.ParticleData{
			X:       x,
			Y:       y,
			VelX:    math.Cos(angle) * v,
			VelY:    math.Sin(angle)*v - 2,
			Gravity: cfg.Effects.ParticleGravity,
			Life:    cfg.Effects.HitSparkLife,
			MaxLife: cfg.Effects.HitSparkLife,
			Size:    2 + rand.Float64()*2,
			Color:   tint,
		})
	}
}

// SpawnJumpDust kicks up a few ground motes under a fighter's feet.
func SpawnJumpDust(e *ecs.ECS, x, y float64) {
	for i := 0; i < cfg.Effects.DustCount; i++ {
		spawnParticle(e, components.ParticleData{
			X:       x + (rand.Float64()-0.5)*cfg.Fighter.BodyWidth,
			Y:       y,
			VelX:    (rand.Float64() - 0.5) * 2,
			VelY:    -rand.Float64() * 1.5,
			Gravity: 0,
			Life:    cfg.Effects.DustLife,
			MaxLife: cfg.Effects.DustLife,
			Size:    1.5 + rand.Float64()*1.5,
			Color:   color.RGBA{R: 200, G: 200, B: 200, A: 255},
		})
	}
}

func spawnParticle(e *ecs.ECS, data components.ParticleData) {
	p := archetypes.Particle.Spawn(e)
	components.Particle.SetValue(p, data)
}
