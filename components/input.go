package components

import (
	cfg "github.com/aarav-shukla07/stickman-fight/config"
	"github.com/yohamta/donburi"
)

// InputData stores the merged device state for global/menu input
// (singleton component). Per-fighter control goes through IntentData.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
}

var Input = donburi.NewComponentType[InputData]()
