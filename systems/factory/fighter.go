package factory

import (
	"image/color"
	"math/rand"

	"github.com/aarav-shukla07/stickman-fight/archetypes"
	"github.com/aarav-shukla07/stickman-fight/components"
	cfg "github.com/aarav-shukla07/stickman-fight/config"
	"github.com/aarav-shukla07/stickman-fight/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// FighterSetup configures one combatant at match start.
type FighterSetup struct {
	Index       int
	X           float64
	FacingRight bool
	WeaponKey   string
	Color       color.RGBA
	// BotSeed, when non-zero, attaches an AI controller seeded with it.
	BotSeed int64
}

// CreateFighter spawns a fighter entity at a grounded position with full
// health and registers its body in the collision space. Fighters must be
// created in index order: donburi iterates entities in creation order,
// which is what makes the per-tick update sequential (player first).
func CreateFighter(e *ecs.ECS, space *resolv.Space, setup FighterSetup) *donburi.Entry {
	fighter := archetypes.Fighter.Spawn(e)

	w := cfg.Fighter.BodyWidth
	h := cfg.Fighter.BodyHeight
	obj := resolv.NewObject(setup.X, cfg.Arena.GroundY-h, w, h)
	obj.AddTags(tags.ResolvFighter)
	obj.Data = fighter
	components.Object.SetValue(fighter, components.ObjectData{Object: obj})
	space.Add(obj)

	components.Fighter.SetValue(fighter, components.FighterData{
		Index:       setup.Index,
		FacingRight: setup.FacingRight,
		Weapon:      cfg.Weapon(setup.WeaponKey),
		Color:       setup.Color,
	})
	components.Physics.SetValue(fighter, components.PhysicsData{
		Gravity:      cfg.Fighter.Gravity,
		Friction:     cfg.Fighter.Friction,
		StunFriction: cfg.Fighter.StunFriction,
		Accel:        cfg.Fighter.Accel,
		MaxSpeed:     cfg.Fighter.MaxSpeed,
		JumpSpeed:    cfg.Fighter.JumpSpeed,
		OnGround:     true,
	})
	components.Health.SetValue(fighter, components.HealthData{
		Current: cfg.Fighter.MaxHealth,
		Max:     cfg.Fighter.MaxHealth,
	})
	components.Combat.SetValue(fighter, components.CombatData{})
	components.Intent.SetValue(fighter, components.IntentData{MoveScale: 1, IsBot: setup.BotSeed != 0})
	components.Flash.SetValue(fighter, components.FlashData{R: 1, G: 1, B: 1})

	if setup.BotSeed != 0 {
		donburi.Add(fighter, components.Bot, &components.BotData{
			State:         cfg.AIStateIdle,
			DecisionTimer: 0,
			Rand:          rand.New(rand.NewSource(setup.BotSeed)),
		})
	}

	return fighter
}
