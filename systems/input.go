package systems

import (
	"github.com/aarav-shukla07/stickman-fight/components"
	cfg "github.com/aarav-shukla07/stickman-fight/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations.
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls raw devices into the global input singleton and copies
// the control actions into every human fighter's intent. Must run before
// UpdateBots and UpdateFighters so the whole tick sees one coherent sample.
func UpdateInput(e *ecs.ECS) {
	input := getOrCreateInput(e)

	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
				}
			}
		}
	}

	// Sample the control actions into human-driven fighters once per tick.
	components.Intent.Each(e.World, func(entry *donburi.Entry) {
		intent := components.Intent.Get(entry)
		if intent.IsBot {
			return
		}
		intent.Cycle()
		intent.Current[cfg.ActionMoveLeft] = input.Current[cfg.ActionMoveLeft]
		intent.Current[cfg.ActionMoveRight] = input.Current[cfg.ActionMoveRight]
		intent.Current[cfg.ActionJump] = input.Current[cfg.ActionJump]
		intent.Current[cfg.ActionAttack] = input.Current[cfg.ActionAttack]
	})
}

func getOrCreateInput(e *ecs.ECS) *components.InputData {
	if entry, ok := components.Input.First(e.World); ok {
		return components.Input.Get(entry)
	}
	entry := e.World.Entry(e.Create(cfg.Default, components.Input))
	return components.Input.Get(entry)
}

// GetAction computes the temporal state of a global/menu action.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
