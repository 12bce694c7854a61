package components

import (
	cfg "github.com/aarav-shukla07/stickman-fight/config"
	"github.com/yohamta/donburi"
)

// Winner sentinel values.
const (
	WinnerNone = -1 // match still running
	WinnerDraw = -2 // both fighters KO'd on the same tick
)

// MatchData stores the current match state (singleton component).
type MatchData struct {
	State          cfg.MatchStateID
	Timer          int // countdown or results timer, in frames
	CountdownValue int // 3, 2, 1; 0 means "FIGHT"
	WinnerIndex    int // fighter index, WinnerNone or WinnerDraw
}

var Match = donburi.NewComponentType[MatchData]()

// MatchSetup is the configuration a match is started with, produced by the
// weapon-select menu and consumed by the fight scene.
type MatchSetup struct {
	PlayerWeaponKey   string
	OpponentWeaponKey string
	BotSeed           int64
}
