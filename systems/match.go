package systems

import (
	"github.com/aarav-shukla07/stickman-fight/components"
	cfg "github.com/aarav-shukla07/stickman-fight/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMatch drives the match flow: countdown, play, results.
func UpdateMatch(e *ecs.ECS) {
	matchEntry, ok := components.Match.First(e.World)
	if !ok {
		return
	}
	match := components.Match.Get(matchEntry)

	switch match.State {
	case cfg.MatchStateCountdown:
		match.Timer--
		value := match.Timer/60 + 1
		if value != match.CountdownValue {
			match.CountdownValue = value
			PlaySFX(e, cfg.SoundCountdown)
		}
		if match.Timer <= 0 {
			match.State = cfg.MatchStatePlaying
			PlaySFX(e, cfg.SoundMenuSelect)
		}

	case cfg.MatchStatePlaying:
		// Damage application triggers the win check directly; this is a
		// safety net for health reaching zero through any other path.
		CheckWinCondition(e)

	case cfg.MatchStateFinished:
		if match.Timer > 0 {
			match.Timer--
		}
	}
}

// IsMatchPlaying reports whether gameplay systems should run this tick.
func IsMatchPlaying(e *ecs.ECS) bool {
	matchEntry, ok := components.Match.First(e.World)
	if !ok {
		return false
	}
	return components.Match.Get(matchEntry).State == cfg.MatchStatePlaying
}

// MatchResult returns the winner index once the match has finished.
// Second return is false while the match is still running.
func MatchResult(e *ecs.ECS) (int, bool) {
	matchEntry, ok := components.Match.First(e.World)
	if !ok {
		return components.WinnerNone, false
	}
	match := components.Match.Get(matchEntry)
	if match.State != cfg.MatchStateFinished {
		return components.WinnerNone, false
	}
	return match.WinnerIndex, true
}

// CheckWinCondition ends the match when a fighter's health is gone. Both
// fighters dropping on the same tick is an explicit draw.
func CheckWinCondition(e *ecs.ECS) {
	matchEntry, ok := components.Match.First(e.World)
	if !ok {
		return
	}
	match := components.Match.Get(matchEntry)
	if match.State != cfg.MatchStatePlaying {
		return
	}

	downed := make(map[int]bool)
	alive := make(map[int]bool)
	components.Fighter.Each(e.World, func(entry *donburi.Entry) {
		index := components.Fighter.Get(entry).Index
		if components.Health.Get(entry).Current <= 0 {
			downed[index] = true
		} else {
			alive[index] = true
		}
	})
	if len(downed) == 0 {
		return
	}

	switch {
	case len(alive) == 0:
		match.WinnerIndex = components.WinnerDraw
	default:
		for index := range alive {
			match.WinnerIndex = index
		}
	}
	match.State = cfg.MatchStateFinished
	match.Timer = cfg.Match.ResultsDisplayTime

	PlaySFX(e, cfg.SoundKO)
	TriggerScreenShake(e, cfg.ScreenShake.KOIntensity, cfg.ScreenShake.KODuration)
	TriggerZoomHold(e, cfg.Camera.KOZoom)
}
