package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

// DamageEventData is attached to the victim when a hit lands and drained by
// the combat system the same tick. It is the only path that mutates health.
type DamageEventData struct {
	Amount     int
	KnockbackX float64
	KnockbackY float64
	HitStun    int
	Heavy      bool
	HitX       float64 // impact position for particles
	HitY       float64
	Color      color.RGBA // visual tag of the weapon that hit
}

var DamageEvent = donburi.NewComponentType[DamageEventData]()
