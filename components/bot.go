package components

import (
	"math/rand"

	cfg "github.com/aarav-shukla07/stickman-fight/config"
	"github.com/yohamta/donburi"
)

// BotData drives an AI-controlled fighter. The state is re-evaluated only
// when DecisionTimer hits zero; the dwell interval chosen with each state
// doubles as hysteresis. Each bot carries its own rng so simulations stay
// reproducible under a fixed seed.
type BotData struct {
	State         cfg.AIStateID
	DecisionTimer int
	Rand          *rand.Rand
}

var Bot = donburi.NewComponentType[BotData]()
