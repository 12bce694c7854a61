package systems

import (
	"testing"

	"github.com/aarav-shukla07/stickman-fight/components"
	cfg "github.com/aarav-shukla07/stickman-fight/config"
)

func TestBotFacingTracksOpponentEveryTick(t *testing.T) {
	e, space := newFightWorld()
	startPlaying(e)
	player, opponent := spawnPair(e, space, "fists", "fists", 7)

	bot := components.Bot.Get(opponent)
	fighter := components.Fighter.Get(opponent)

	// Facing must follow the opponent even mid-dwell, whatever the state.
	bot.State = cfg.AIStateIdle
	bot.DecisionTimer = 100

	moveTo(player, 100, groundedY)
	UpdateBots(e)
	if fighter.FacingRight {
		t.Fatal("bot should face left toward an opponent on its left")
	}

	moveTo(player, 900, groundedY)
	UpdateBots(e)
	if !fighter.FacingRight {
		t.Fatal("bot should face right toward an opponent on its right")
	}
}

func TestBotTransitionsOnlyWhenTimerExpires(t *testing.T) {
	e, space := newFightWorld()
	startPlaying(e)
	player, opponent := spawnPair(e, space, "fists", "fists", 7)

	bot := components.Bot.Get(opponent)
	bot.State = cfg.AIStateIdle
	bot.DecisionTimer = 10

	// Opponent right next to the bot: a free decision would leave Idle.
	moveTo(player, components.Object.Get(opponent).X-30, groundedY)

	UpdateBots(e)

	if bot.State != cfg.AIStateIdle {
		t.Fatalf("state changed mid-dwell: %v", bot.State)
	}
	if bot.DecisionTimer != 9 {
		t.Fatalf("expected timer 9, got %d", bot.DecisionTimer)
	}
}

func TestBotChasesAtMidRange(t *testing.T) {
	e, space := newFightWorld()
	startPlaying(e)
	player, opponent := spawnPair(e, space, "fists", "fists", 7)

	bot := components.Bot.Get(opponent)
	bot.DecisionTimer = 0
	moveTo(opponent, 600, groundedY)
	moveTo(player, 300, groundedY) // 300 away: outside engage, inside chase

	UpdateBots(e)

	if bot.State != cfg.AIStateChase {
		t.Fatalf("expected chase at mid range, got %v", bot.State)
	}
	intent := components.Intent.Get(opponent)
	if !intent.Current[cfg.ActionMoveLeft] {
		t.Fatal("chasing bot should move toward the opponent")
	}
	if intent.MoveScale != cfg.Bot.ChaseAccel {
		t.Fatalf("chase should throttle acceleration to %f, got %f", cfg.Bot.ChaseAccel, intent.MoveScale)
	}
	if bot.DecisionTimer != cfg.Bot.ChaseDwell {
		t.Fatalf("expected chase dwell %d, got %d", cfg.Bot.ChaseDwell, bot.DecisionTimer)
	}
}

func TestBotIdlesBeyondChaseRange(t *testing.T) {
	e, space := newFightWorld()
	startPlaying(e)
	player, opponent := spawnPair(e, space, "fists", "fists", 7)

	bot := components.Bot.Get(opponent)
	bot.DecisionTimer = 0
	moveTo(opponent, 900, groundedY)
	moveTo(player, 100, groundedY)

	UpdateBots(e)

	if bot.State != cfg.AIStateIdle {
		t.Fatalf("expected idle beyond chase range, got %v", bot.State)
	}
	intent := components.Intent.Get(opponent)
	if intent.Current[cfg.ActionMoveLeft] || intent.Current[cfg.ActionMoveRight] {
		t.Fatal("idle bot should not accelerate")
	}
}

func TestBotRetreatMovesAway(t *testing.T) {
	e, space := newFightWorld()
	startPlaying(e)
	player, opponent := spawnPair(e, space, "fists", "fists", 7)

	bot := components.Bot.Get(opponent)
	bot.State = cfg.AIStateRetreat
	bot.DecisionTimer = 10
	moveTo(opponent, 600, groundedY)
	moveTo(player, 560, groundedY)

	UpdateBots(e)

	intent := components.Intent.Get(opponent)
	if !intent.Current[cfg.ActionMoveRight] {
		t.Fatal("retreating bot should move away from the opponent")
	}
	if intent.MoveScale != 1 {
		t.Fatalf("retreat runs at full speed, got scale %f", intent.MoveScale)
	}
}

func TestBotAttackDecisionWeight(t *testing.T) {
	e, space := newFightWorld()
	startPlaying(e)
	player, opponent := spawnPair(e, space, "fists", "fists", 99)

	bot := components.Bot.Get(opponent)

	// Opponent parked inside engage range: fists ideal range is 40,
	// engage threshold 60.
	moveTo(opponent, 600, groundedY)
	moveTo(player, 560, groundedY)

	attacks := 0
	const trials = 2000
	for i := 0; i < trials; i++ {
		bot.DecisionTimer = 0
		UpdateBots(e)
		switch bot.State {
		case cfg.AIStateAttack:
			attacks++
		case cfg.AIStateRetreat:
		default:
			t.Fatalf("engage range must pick attack or retreat, got %v", bot.State)
		}
	}

	ratio := float64(attacks) / float64(trials)
	if ratio < 0.63 || ratio > 0.77 {
		t.Fatalf("attack ratio %f outside the expected window around 0.7", ratio)
	}
}

func TestBotAttackStateSwings(t *testing.T) {
	e, space := newFightWorld()
	startPlaying(e)
	player, opponent := spawnPair(e, space, "fists", "fists", 3)

	bot := components.Bot.Get(opponent)
	bot.State = cfg.AIStateAttack
	bot.DecisionTimer = 100
	moveTo(opponent, 600, groundedY)
	moveTo(player, 560, groundedY)

	// The swing chance is 90% per tick, so a handful of ticks is enough.
	intent := components.Intent.Get(opponent)
	pressed := false
	for i := 0; i < 20 && !pressed; i++ {
		bot.DecisionTimer = 100
		UpdateBots(e)
		pressed = intent.Current[cfg.ActionAttack]
	}
	if !pressed {
		t.Fatal("attacking bot never pressed attack")
	}

	// Once on cooldown it must not press at all.
	combat := components.Combat.Get(opponent)
	combat.IsAttacking = true
	UpdateBots(e)
	if intent.Current[cfg.ActionAttack] {
		t.Fatal("bot must not press attack while one is in flight")
	}
}

func TestBotFrozenOutsidePlaying(t *testing.T) {
	e, space := newFightWorld()
	player, opponent := spawnPair(e, space, "fists", "fists", 7)

	bot := components.Bot.Get(opponent)
	fighter := components.Fighter.Get(opponent)
	intent := components.Intent.Get(opponent)

	// Opponent on the bot's right while it faces left: any AI tick would
	// re-face, burn the dwell timer, and write intent.
	moveTo(player, 900, groundedY)
	fighter.FacingRight = false
	bot.State = cfg.AIStateChase
	bot.DecisionTimer = 10

	for i := 0; i < 5; i++ {
		UpdateBots(e)
	}

	if fighter.FacingRight {
		t.Fatal("bot re-faced during the countdown")
	}
	if bot.DecisionTimer != 10 {
		t.Fatalf("dwell timer ran during the countdown: %d", bot.DecisionTimer)
	}
	for id := cfg.ActionID(0); id < cfg.ActionCount; id++ {
		if intent.Current[id] {
			t.Fatalf("intent written during the countdown: action %d", id)
		}
	}
}
