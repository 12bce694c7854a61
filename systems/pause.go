package systems

import (
	"github.com/aarav-shukla07/stickman-fight/components"
	cfg "github.com/aarav-shukla07/stickman-fight/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePause handles the pause toggle and pause menu navigation. Runs
// right after UpdateInput so a paused tick freezes everything downstream.
func UpdatePause(e *ecs.ECS) {
	pause := GetOrCreatePause(e)
	input := getOrCreateInput(e)

	if GetAction(input, cfg.ActionPause).JustPressed {
		pause.IsPaused = !pause.IsPaused
		if pause.IsPaused {
			pause.SelectedOption = components.MenuResume
		}
	}

	if !pause.IsPaused {
		return
	}

	numOptions := int(components.MenuQuit) + 1
	if GetAction(input, cfg.ActionMenuUp).JustPressed {
		pause.SelectedOption = components.PauseMenuOption(
			(int(pause.SelectedOption) - 1 + numOptions) % numOptions,
		)
		PlaySFX(e, cfg.SoundMenuNavigate)
	}
	if GetAction(input, cfg.ActionMenuDown).JustPressed {
		pause.SelectedOption = components.PauseMenuOption(
			(int(pause.SelectedOption) + 1) % numOptions,
		)
		PlaySFX(e, cfg.SoundMenuNavigate)
	}

	if GetAction(input, cfg.ActionMenuSelect).JustPressed {
		PlaySFX(e, cfg.SoundMenuSelect)
		switch pause.SelectedOption {
		case components.MenuResume:
			pause.IsPaused = false
		case components.MenuQuit:
			pause.IsPaused = false
			pause.QuitRequested = true
		}
	}
}

// WithPauseCheck wraps a system so it is skipped while paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if IsPaused(e) {
			return
		}
		system(e)
	}
}

// IsPaused reports whether gameplay is frozen by the pause overlay.
func IsPaused(e *ecs.ECS) bool {
	entry, ok := components.Pause.First(e.World)
	if !ok {
		return false
	}
	return components.Pause.Get(entry).IsPaused
}

// GetOrCreatePause returns the pause singleton, creating it if needed.
func GetOrCreatePause(e *ecs.ECS) *components.PauseData {
	if entry, ok := components.Pause.First(e.World); ok {
		return components.Pause.Get(entry)
	}
	entry := e.World.Entry(e.Create(cfg.Default, components.Pause))
	return components.Pause.Get(entry)
}
