package systems

import (
	"github.com/aarav-shukla07/stickman-fight/components"
	cfg "github.com/aarav-shukla07/stickman-fight/config"
	"github.com/aarav-shukla07/stickman-fight/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateFighters translates intent into fighter actions. Runs after the
// input mapper and the AI controller have written intent for the tick, and
// before combat and physics consume the resulting state.
func UpdateFighters(e *ecs.ECS) {
	if !IsMatchPlaying(e) {
		return
	}

	components.Intent.Each(e.World, func(entry *donburi.Entry) {
		intent := components.Intent.Get(entry)
		fighter := components.Fighter.Get(entry)
		physics := components.Physics.Get(entry)
		combat := components.Combat.Get(entry)
		obj := components.Object.Get(entry)

		// Hit-stun suppresses all voluntary control for its duration.
		if combat.HitStun > 0 {
			return
		}

		// Horizontal acceleration. Human fighters face the way they move;
		// the AI controller manages its own facing.
		if intent.Action(cfg.ActionMoveLeft).Pressed {
			physics.SpeedX -= physics.Accel * intent.MoveScale
			if !intent.IsBot {
				fighter.FacingRight = false
			}
		}
		if intent.Action(cfg.ActionMoveRight).Pressed {
			physics.SpeedX += physics.Accel * intent.MoveScale
			if !intent.IsBot {
				fighter.FacingRight = true
			}
		}

		if intent.Action(cfg.ActionJump).JustPressed && physics.OnGround {
			physics.SpeedY = -physics.JumpSpeed
			physics.OnGround = false
			PlaySFX(e, cfg.SoundJump)
			factory.SpawnJumpDust(e, obj.X+obj.W/2, obj.Y+obj.H)
		}

		if intent.Action(cfg.ActionAttack).JustPressed && combat.CanAttack() {
			combat.IsAttacking = true
			combat.AttackTimer = fighter.Weapon.Speed
			combat.CooldownTimer = fighter.Weapon.Cooldown
			combat.HitFired = false
			PlaySFX(e, cfg.SoundSwing)
		}
	})
}
