package systems

import (
	"github.com/aarav-shukla07/stickman-fight/components"
	cfg "github.com/aarav-shukla07/stickman-fight/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics integrates fighter motion and resolves arena boundaries.
// Runs after control and combat so friction applies on top of whatever the
// tick's input did to the horizontal speed.
func UpdatePhysics(e *ecs.ECS) {
	if !IsMatchPlaying(e) {
		return
	}

	components.Physics.Each(e.World, func(entry *donburi.Entry) {
		physics := components.Physics.Get(entry)
		combat := components.Combat.Get(entry)
		obj := components.Object.Get(entry)

		// Gravity applies every tick, grounded or not.
		physics.SpeedY += physics.Gravity
		obj.Y += physics.SpeedY

		if obj.Y+obj.H >= cfg.Arena.GroundY {
			obj.Y = cfg.Arena.GroundY - obj.H
			physics.SpeedY = 0
			physics.OnGround = true
		} else {
			physics.OnGround = false
		}

		// Hit-stun: only strong damping and boundary resolution apply,
		// nothing voluntary moves the fighter until the stun runs out.
		if combat.HitStun > 0 {
			physics.SpeedX *= physics.StunFriction
			obj.X += physics.SpeedX
			clampToArena(obj, physics)
			combat.HitStun--
			obj.Update()
			return
		}

		physics.SpeedX *= physics.Friction
		if physics.SpeedX > physics.MaxSpeed {
			physics.SpeedX = physics.MaxSpeed
		} else if physics.SpeedX < -physics.MaxSpeed {
			physics.SpeedX = -physics.MaxSpeed
		}
		obj.X += physics.SpeedX
		clampToArena(obj, physics)
		obj.Update()
	})
}

// clampToArena keeps the body inside [0, width-bodyW]. Touching either
// wall kills the horizontal speed.
func clampToArena(obj *components.ObjectData, physics *components.PhysicsData) {
	if obj.X < 0 {
		obj.X = 0
		physics.SpeedX = 0
	} else if obj.X > cfg.Arena.Width-obj.W {
		obj.X = cfg.Arena.Width - obj.W
		physics.SpeedX = 0
	}
}
