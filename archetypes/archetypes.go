package archetypes

import (
	"github.com/aarav-shukla07/stickman-fight/components"
	cfg "github.com/aarav-shukla07/stickman-fight/config"
	"github.com/aarav-shukla07/stickman-fight/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Fighter = newArchetype(
		tags.Fighter,
		components.Fighter,
		components.Object,
		components.Physics,
		components.Health,
		components.Combat,
		components.Intent,
		components.Flash,
	)
	Particle = newArchetype(
		tags.Particle,
		components.Particle,
	)
	Space = newArchetype(
		components.Space,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Match = newArchetype(
		components.Match,
	)
	Audio = newArchetype(
		components.Audio,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
