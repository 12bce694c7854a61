package components

import "github.com/yohamta/donburi"

type PhysicsData struct {
	SpeedX       float64
	SpeedY       float64
	Gravity      float64
	Friction     float64 // multiplicative damping applied after control input
	StunFriction float64 // damping used instead while in hit-stun
	Accel        float64
	MaxSpeed     float64
	JumpSpeed    float64
	OnGround     bool
}

var Physics = donburi.NewComponentType[PhysicsData]()
