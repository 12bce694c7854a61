package config

// MatchStateID tracks the match flow.
type MatchStateID int

const (
	MatchStateCountdown MatchStateID = iota
	MatchStatePlaying
	MatchStateFinished
)

// AIStateID is the decision state of a bot-controlled fighter.
type AIStateID int

const (
	AIStateIdle AIStateID = iota
	AIStateChase
	AIStateRetreat
	AIStateAttack
)

func (s AIStateID) String() string {
	switch s {
	case AIStateIdle:
		return "idle"
	case AIStateChase:
		return "chase"
	case AIStateRetreat:
		return "retreat"
	case AIStateAttack:
		return "attack"
	}
	return "unknown"
}
