package systems

import (
	"github.com/aarav-shukla07/stickman-fight/components"
	cfg "github.com/aarav-shukla07/stickman-fight/config"
	"github.com/aarav-shukla07/stickman-fight/systems/factory"
	"github.com/aarav-shukla07/stickman-fight/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCombat advances attack timers, runs the hit test on each attack's
// hit frame, and applies any damage events produced this tick. Win-condition
// evaluation follows every damage application.
func UpdateCombat(e *ecs.ECS) {
	if !IsMatchPlaying(e) {
		return
	}

	components.Combat.Each(e.World, func(entry *donburi.Entry) {
		combat := components.Combat.Get(entry)

		if combat.CooldownTimer > 0 {
			combat.CooldownTimer--
		}

		if !combat.IsAttacking {
			return
		}
		combat.AttackTimer--

		// The hit frame is the single tick at the attack's midpoint.
		weapon := components.Fighter.Get(entry).Weapon
		if !combat.HitFired && combat.AttackTimer == weapon.Speed/2 {
			combat.HitFired = true
			resolveHit(e, entry)
		}

		if combat.AttackTimer <= 0 {
			combat.IsAttacking = false
		}
	})

	applyDamageEvents(e)
}

// resolveHit tests the attacker's weapon reach against every other fighter
// body in the space and emits a damage event on overlap.
func resolveHit(e *ecs.ECS, attacker *donburi.Entry) {
	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry).Space

	fighter := components.Fighter.Get(attacker)
	obj := components.Object.Get(attacker)
	weapon := fighter.Weapon

	// Hitbox extends from the facing edge outward by the weapon's range.
	var hitMinX, hitMaxX float64
	if fighter.FacingRight {
		hitMinX = obj.X + obj.W
		hitMaxX = hitMinX + weapon.Range
	} else {
		hitMaxX = obj.X
		hitMinX = hitMaxX - weapon.Range
	}
	attackerCenterY := obj.Y + obj.H/2
	landed := false

	for _, other := range space.Objects() {
		if !other.HasTags(tags.ResolvFighter) {
			continue
		}
		target, ok := other.Data.(*donburi.Entry)
		if !ok || target == attacker {
			continue
		}

		if hitMaxX < other.X || hitMinX > other.X+other.W {
			continue
		}
		centerY := other.Y + other.H/2
		dy := centerY - attackerCenterY
		if dy < 0 {
			dy = -dy
		}
		if dy >= cfg.Combat.VerticalHitRange {
			continue
		}

		donburi.Add(target, components.DamageEvent, &components.DamageEventData{
			Amount:     weapon.Damage,
			KnockbackX: fighter.Facing() * weapon.Knockback,
			KnockbackY: -(cfg.Combat.LaunchBase + float64(weapon.Damage)),
			HitStun:    cfg.Combat.HitStunBase + cfg.Combat.HitStunPerDamage*weapon.Damage,
			Heavy:      weapon.Damage > cfg.Combat.HeavyThreshold,
			HitX:       other.X + other.W/2,
			HitY:       centerY,
			Color:      weapon.Color,
		})
		landed = true
	}

	if landed {
		TriggerHitFlash(attacker)
	}
}

// applyDamageEvents drains pending damage events. This is the only place
// health is reduced, so the win check always runs right after it.
func applyDamageEvents(e *ecs.ECS) {
	damaged := false

	for entry := range components.DamageEvent.Iter(e.World) {
		dmg := components.DamageEvent.Get(entry)
		health := components.Health.Get(entry)
		combat := components.Combat.Get(entry)
		physics := components.Physics.Get(entry)

		health.Current -= dmg.Amount
		if health.Current < 0 {
			health.Current = 0
		}

		combat.HitStun = dmg.HitStun
		combat.IsAttacking = false
		combat.AttackTimer = 0

		physics.SpeedX = dmg.KnockbackX
		physics.SpeedY = dmg.KnockbackY
		physics.OnGround = false

		if dmg.Heavy {
			PlaySFX(e, cfg.SoundHitHeavy)
			TriggerScreenShake(e, cfg.ScreenShake.HeavyIntensity, cfg.ScreenShake.HeavyDuration)
			TriggerZoomPunch(e, cfg.Camera.HeavyHitZoom)
		} else {
			PlaySFX(e, cfg.SoundHit)
			TriggerScreenShake(e, cfg.ScreenShake.HitIntensity, cfg.ScreenShake.HitDuration)
		}
		TriggerDamageFlash(entry)
		factory.SpawnHitSparks(e, dmg.HitX, dmg.HitY, dmg.Color, dmg.Heavy)

		donburi.Remove[components.DamageEventData](entry, components.DamageEvent)
		damaged = true
	}

	if damaged {
		CheckWinCondition(e)
	}
}
