package components

import (
	"image/color"

	cfg "github.com/aarav-shukla07/stickman-fight/config"
	"github.com/yohamta/donburi"
)

// FighterData is the identity of one combatant. The weapon pointer is a
// shared, read-only reference into the catalog.
type FighterData struct {
	Index       int // 0 = player side, 1 = opponent side
	FacingRight bool
	Weapon      *cfg.WeaponSpec
	Color       color.RGBA
}

// Facing returns the facing as a signed direction (+1 right, -1 left).
func (f *FighterData) Facing() float64 {
	if f.FacingRight {
		return cfg.DirectionRight
	}
	return cfg.DirectionLeft
}

var Fighter = donburi.NewComponentType[FighterData]()
