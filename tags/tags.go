package tags

import "github.com/yohamta/donburi"

var (
	Fighter  = donburi.NewTag().SetName("Fighter")
	Particle = donburi.NewTag().SetName("Particle")
)

// Resolv tags for objects in the collision space.
const (
	ResolvFighter = "fighter"
	ResolvGround  = "ground"
)
