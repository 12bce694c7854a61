package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

// ParticleData is one short-lived spark or dust mote. Particles live in the
// presentation layer of the world; simulation code never reads them.
type ParticleData struct {
	X, Y       float64
	VelX, VelY float64
	Gravity    float64
	Life       int
	MaxLife    int
	Size       float64
	Color      color.RGBA
}

var Particle = donburi.NewComponentType[ParticleData]()

// FlashData tints a fighter for a few frames after an event.
type FlashData struct {
	Duration int
	R, G, B  float32 // color multipliers; 1,1,1 = white flash
}

var Flash = donburi.NewComponentType[FlashData]()
