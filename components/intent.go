package components

import (
	cfg "github.com/aarav-shukla07/stickman-fight/config"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action.
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// IntentData is the per-tick control surface of one fighter. The human input
// mapper and the AI controller both write only this; everything downstream
// is agnostic to which of the two produced it.
type IntentData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
	// MoveScale modulates horizontal acceleration for this tick, in (0, 1].
	// Human input always moves at full scale; the AI throttles its chase.
	MoveScale float64
	IsBot     bool
}

// Action computes the temporal state of one action from the two buffers.
func (in *IntentData) Action(id cfg.ActionID) ActionState {
	curr := in.Current[id]
	prev := in.Previous[id]
	return ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// Cycle rolls the current buffer into the previous one and clears current.
// Called at the top of each tick before the controller writes new intent.
func (in *IntentData) Cycle() {
	in.Previous = in.Current
	in.Current = [cfg.ActionCount]bool{}
	in.MoveScale = 1
}

var Intent = donburi.NewComponentType[IntentData]()
