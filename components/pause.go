package components

import "github.com/yohamta/donburi"

// PauseMenuOption identifies a pause menu row.
type PauseMenuOption int

const (
	MenuResume PauseMenuOption = iota
	MenuQuit
)

// PauseData stores the pause overlay state (singleton component).
type PauseData struct {
	IsPaused       bool
	SelectedOption PauseMenuOption
	QuitRequested  bool
}

var Pause = donburi.NewComponentType[PauseData]()
