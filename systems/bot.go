package systems

import (
	"math"

	"github.com/aarav-shukla07/stickman-fight/components"
	cfg "github.com/aarav-shukla07/stickman-fight/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBots generates intent for AI-controlled fighters. Must run after
// UpdateInput (which cycles human intent) and before UpdateFighters; bots
// write exactly the same intent surface a human input mapper does.
func UpdateBots(e *ecs.ECS) {
	if !IsMatchPlaying(e) {
		return
	}

	components.Bot.Each(e.World, func(entry *donburi.Entry) {
		opponent := FindOpponent(e, entry)
		if opponent == nil {
			return
		}
		updateBotAI(entry, opponent)
	})
}

// FindOpponent returns the other fighter in the match, nil if absent.
func FindOpponent(e *ecs.ECS, self *donburi.Entry) *donburi.Entry {
	var found *donburi.Entry
	selfIndex := components.Fighter.Get(self).Index
	components.Fighter.Each(e.World, func(entry *donburi.Entry) {
		if components.Fighter.Get(entry).Index != selfIndex {
			found = entry
		}
	})
	return found
}

func updateBotAI(botEntry, opponent *donburi.Entry) {
	bot := components.Bot.Get(botEntry)
	intent := components.Intent.Get(botEntry)
	fighter := components.Fighter.Get(botEntry)
	physics := components.Physics.Get(botEntry)
	combat := components.Combat.Get(botEntry)
	obj := components.Object.Get(botEntry)
	oppObj := components.Object.Get(opponent)

	intent.Cycle()

	dist := oppObj.X - obj.X
	absDist := math.Abs(dist)

	// Turn toward the opponent every tick, whatever the current state.
	if dist != 0 {
		fighter.FacingRight = dist > 0
	}

	// Re-decide only when the dwell timer has run out.
	if bot.DecisionTimer > 0 {
		bot.DecisionTimer--
	} else {
		decide(bot, fighter.Weapon, absDist)
	}

	switch bot.State {
	case cfg.AIStateChase:
		intent.MoveScale = cfg.Bot.ChaseAccel
		if dist > 0 {
			intent.Current[cfg.ActionMoveRight] = true
		} else {
			intent.Current[cfg.ActionMoveLeft] = true
		}
		if physics.OnGround && bot.Rand.Float64() < cfg.Bot.JumpChance {
			intent.Current[cfg.ActionJump] = true
		}

	case cfg.AIStateRetreat:
		if dist > 0 {
			intent.Current[cfg.ActionMoveLeft] = true
		} else {
			intent.Current[cfg.ActionMoveRight] = true
		}

	case cfg.AIStateAttack:
		if combat.CanAttack() && bot.Rand.Float64() < cfg.Bot.AttackChance {
			intent.Current[cfg.ActionAttack] = true
		}

	case cfg.AIStateIdle:
		// No horizontal acceleration.
	}
}

// decide picks the next state from the distance to the opponent and arms
// the dwell timer for it. Weighted attack-or-retreat inside engage range,
// chase at mid range, idle beyond.
func decide(bot *components.BotData, weapon *cfg.WeaponSpec, absDist float64) {
	idealRange := weapon.Range * cfg.Bot.IdealRangeScale

	switch {
	case absDist < idealRange+cfg.Bot.EngageSlack:
		if bot.Rand.Float64() < cfg.Bot.AttackWeight {
			bot.State = cfg.AIStateAttack
			bot.DecisionTimer = cfg.Bot.AttackDwell
		} else {
			bot.State = cfg.AIStateRetreat
			bot.DecisionTimer = cfg.Bot.RetreatDwell
		}
	case absDist < cfg.Bot.ChaseRange:
		bot.State = cfg.AIStateChase
		bot.DecisionTimer = cfg.Bot.ChaseDwell
	default:
		bot.State = cfg.AIStateIdle
		bot.DecisionTimer = cfg.Bot.IdleDwell
	}
}
