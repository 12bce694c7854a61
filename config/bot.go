package config

// BotConfig holds the AI controller tuning. Decision intervals double as
// state dwell time so the bot cannot thrash between states.
type BotConfig struct {
	// Frames until the next decision, keyed by the state just chosen.
	AttackDwell  int
	RetreatDwell int
	ChaseDwell   int
	IdleDwell    int

	IdealRangeScale float64 // engage distance = weapon range * this
	EngageSlack     float64 // extra distance added on top of ideal range
	ChaseRange      float64 // beyond this the bot goes idle

	AttackWeight float64 // probability of Attack over Retreat when in range
	AttackChance float64 // per-tick chance to swing while in Attack state
	ChaseAccel   float64 // acceleration scale while chasing
	JumpChance   float64 // per-tick chance to hop while chasing on ground
}

// Bot holds bot AI configuration.
var Bot BotConfig

func init() {
	Bot = BotConfig{
		AttackDwell:  15,
		RetreatDwell: 15,
		ChaseDwell:   30,
		IdleDwell:    40,

		IdealRangeScale: 0.8,
		EngageSlack:     20,
		ChaseRange:      500,

		AttackWeight: 0.7,
		AttackChance: 0.9,
		ChaseAccel:   0.9,
		JumpChance:   0.01,
	}
}
