package systems

import (
	"github.com/aarav-shukla07/stickman-fight/components"
	cfg "github.com/aarav-shukla07/stickman-fight/config"
	"github.com/aarav-shukla07/stickman-fight/systems/factory"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// newFightWorld builds a headless world with the match singletons. The
// audio queue exists but is never drained, so no sound device is touched.
func newFightWorld() (*ecs.ECS, *resolv.Space) {
	e := ecs.NewECS(donburi.NewWorld())
	spaceEntry := factory.CreateSpace(e)
	space := components.Space.Get(spaceEntry).Space
	factory.CreateCamera(e)
	factory.CreateMatch(e)
	factory.CreateAudio(e)
	return e, space
}

// startPlaying skips the countdown.
func startPlaying(e *ecs.ECS) {
	entry, _ := components.Match.First(e.World)
	components.Match.Get(entry).State = cfg.MatchStatePlaying
}

func spawnPair(e *ecs.ECS, space *resolv.Space, playerWeapon, oppWeapon string, botSeed int64) (*donburi.Entry, *donburi.Entry) {
	player := factory.CreateFighter(e, space, factory.FighterSetup{
		Index:       0,
		X:           200,
		FacingRight: true,
		WeaponKey:   playerWeapon,
		Color:       cfg.LightBlue,
	})
	opponent := factory.CreateFighter(e, space, factory.FighterSetup{
		Index:       1,
		X:           700,
		FacingRight: false,
		WeaponKey:   oppWeapon,
		Color:       cfg.LightRed,
		BotSeed:     botSeed,
	})
	return player, opponent
}

// moveTo teleports a fighter's body, keeping the space coherent.
func moveTo(entry *donburi.Entry, x, y float64) {
	obj := components.Object.Get(entry)
	obj.X = x
	obj.Y = y
	obj.Update()
}

// startAttack begins an attack the way the control layer does.
func startAttack(entry *donburi.Entry) {
	fighter := components.Fighter.Get(entry)
	combat := components.Combat.Get(entry)
	combat.IsAttacking = true
	combat.AttackTimer = fighter.Weapon.Speed
	combat.CooldownTimer = fighter.Weapon.Cooldown
	combat.HitFired = false
}
