package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	Position math.Vec2
	Zoom     float64
	// ZoomTween, when non-nil, eases Zoom (heavy-hit punch, KO push-in).
	ZoomTween *gween.Sequence
}

var Camera = donburi.NewComponentType[CameraData]()

// ScreenShakeData tracks an active screen shake on the camera.
type ScreenShakeData struct {
	Intensity float64 // max offset in pixels
	Duration  int     // frames total
	Elapsed   int     // frames elapsed (for oscillation)
}

var ScreenShake = donburi.NewComponentType[ScreenShakeData]()
