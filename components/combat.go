package components

import "github.com/yohamta/donburi"

// CombatData layers the attack cycle and hit-stun timers on a fighter.
// AttackTimer counts down from weapon.Speed while IsAttacking; the single
// hit test fires at the tick where it equals weapon.Speed/2, guarded by
// HitFired so an attack instance can never land twice.
type CombatData struct {
	IsAttacking   bool
	AttackTimer   int
	CooldownTimer int
	HitStun       int
	HitFired      bool
}

// CanAttack reports whether a new attack may start this tick.
func (c *CombatData) CanAttack() bool {
	return !c.IsAttacking && c.CooldownTimer <= 0 && c.HitStun <= 0
}

var Combat = donburi.NewComponentType[CombatData]()
