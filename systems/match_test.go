package systems

import (
	"testing"

	"github.com/aarav-shukla07/stickman-fight/components"
	cfg "github.com/aarav-shukla07/stickman-fight/config"
)

func TestCountdownHandsOverToPlaying(t *testing.T) {
	e, space := newFightWorld()
	spawnPair(e, space, "fists", "fists", 0)

	matchEntry, _ := components.Match.First(e.World)
	match := components.Match.Get(matchEntry)

	if IsMatchPlaying(e) {
		t.Fatal("match should start in countdown")
	}

	for i := 0; i < cfg.Match.CountdownDuration; i++ {
		UpdateMatch(e)
	}

	if match.State != cfg.MatchStatePlaying {
		t.Fatalf("expected playing after countdown, got %v", match.State)
	}
	if !IsMatchPlaying(e) {
		t.Fatal("IsMatchPlaying should report true")
	}
}

func TestCountdownValueStepsDown(t *testing.T) {
	e, space := newFightWorld()
	spawnPair(e, space, "fists", "fists", 0)

	matchEntry, _ := components.Match.First(e.World)
	match := components.Match.Get(matchEntry)

	for i := 0; i < 61; i++ {
		UpdateMatch(e)
	}
	if match.CountdownValue != 2 {
		t.Fatalf("expected countdown value 2 after a second, got %d", match.CountdownValue)
	}
}

func TestWinCheckSafetyNet(t *testing.T) {
	e, space := newFightWorld()
	startPlaying(e)
	player, opponent := spawnPair(e, space, "fists", "fists", 0)

	components.Health.Get(opponent).Current = 0
	UpdateMatch(e)

	matchEntry, _ := components.Match.First(e.World)
	match := components.Match.Get(matchEntry)
	if match.State != cfg.MatchStateFinished {
		t.Fatal("match should finish when a fighter is at zero health")
	}
	if match.WinnerIndex != components.Fighter.Get(player).Index {
		t.Fatalf("expected winner %d, got %d", components.Fighter.Get(player).Index, match.WinnerIndex)
	}
}

func TestMatchResultOnlyAfterFinish(t *testing.T) {
	e, space := newFightWorld()
	startPlaying(e)
	_, opponent := spawnPair(e, space, "fists", "fists", 0)

	if _, done := MatchResult(e); done {
		t.Fatal("no result while the match is running")
	}

	components.Health.Get(opponent).Current = 0
	CheckWinCondition(e)

	winner, done := MatchResult(e)
	if !done {
		t.Fatal("result expected after the win check")
	}
	if winner != 0 {
		t.Fatalf("expected winner 0, got %d", winner)
	}
}

func TestNoFurtherDamageAfterFinish(t *testing.T) {
	e, space := newFightWorld()
	startPlaying(e)
	player, opponent := spawnPair(e, space, "fists", "fists", 0)

	components.Health.Get(opponent).Current = 0
	CheckWinCondition(e)

	// Gameplay systems are gated off once the match is over.
	intent := components.Intent.Get(player)
	intent.Cycle()
	intent.Current[cfg.ActionAttack] = true
	UpdateFighters(e)
	if components.Combat.Get(player).IsAttacking {
		t.Fatal("no attacks once the match has finished")
	}

	physics := components.Physics.Get(player)
	physics.SpeedX = 5
	startX := components.Object.Get(player).X
	UpdatePhysics(e)
	if components.Object.Get(player).X != startX {
		t.Fatal("no movement once the match has finished")
	}
}

func TestResultsTimerCountsDown(t *testing.T) {
	e, space := newFightWorld()
	startPlaying(e)
	_, opponent := spawnPair(e, space, "fists", "fists", 0)

	components.Health.Get(opponent).Current = 0
	CheckWinCondition(e)

	matchEntry, _ := components.Match.First(e.World)
	match := components.Match.Get(matchEntry)
	if match.Timer != cfg.Match.ResultsDisplayTime {
		t.Fatalf("expected results timer %d, got %d", cfg.Match.ResultsDisplayTime, match.Timer)
	}

	for i := 0; i < cfg.Match.ResultsDisplayTime; i++ {
		UpdateMatch(e)
	}
	if match.Timer != 0 {
		t.Fatalf("results timer should reach 0, got %d", match.Timer)
	}
}
