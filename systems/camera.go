package systems

import (
	"math"

	"github.com/aarav-shukla07/stickman-fight/components"
	cfg "github.com/aarav-shukla07/stickman-fight/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const tickSeconds = 1.0 / 60.0

// UpdateCamera follows the midpoint between the fighters, applies screen
// shake and advances the zoom tween.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	updateScreenShake(cameraEntry, camera)
	updateZoom(camera)

	// Follow the midpoint of all fighters still in the world.
	var sumX, sumY float64
	count := 0
	components.Fighter.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry)
		sumX += obj.X + obj.W/2
		sumY += obj.Y + obj.H/2
		count++
	})
	if count == 0 {
		return
	}
	targetX := sumX / float64(count)
	targetY := sumY / float64(count)

	// Keep the view inside the arena.
	halfW := float64(cfg.C.Width) / 2 / camera.Zoom
	halfH := float64(cfg.C.Height) / 2 / camera.Zoom
	targetX = math.Max(halfW, math.Min(cfg.Arena.Width-halfW, targetX))
	targetY = math.Max(halfH, math.Min(cfg.Arena.Height-halfH, targetY))

	camera.Position.X += (targetX - camera.Position.X) * cfg.Camera.FollowSmoothing
	camera.Position.Y += (targetY - camera.Position.Y) * cfg.Camera.FollowSmoothing
}

func updateZoom(camera *components.CameraData) {
	if camera.ZoomTween == nil {
		return
	}
	value, _, done := camera.ZoomTween.Update(tickSeconds)
	camera.Zoom = float64(value)
	if done {
		camera.ZoomTween = nil
	}
}

// updateScreenShake applies a decaying oscillating offset to the camera.
func updateScreenShake(cameraEntry *donburi.Entry, camera *components.CameraData) {
	if !cameraEntry.HasComponent(components.ScreenShake) {
		return
	}

	shake := components.ScreenShake.Get(cameraEntry)
	shake.Elapsed++

	progress := float64(shake.Duration-shake.Elapsed) / float64(shake.Duration)
	if progress < 0 {
		progress = 0
	}
	currentIntensity := shake.Intensity * progress

	camera.Position.X += math.Sin(float64(shake.Elapsed)*1.1) * currentIntensity
	camera.Position.Y += math.Cos(float64(shake.Elapsed)*1.3) * currentIntensity

	if shake.Elapsed >= shake.Duration {
		cameraEntry.RemoveComponent(components.ScreenShake)
	}
}

// TriggerScreenShake starts a screen shake, keeping the stronger one when
// a shake is already running.
func TriggerScreenShake(e *ecs.ECS, intensity float64, duration int) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}

	if cameraEntry.HasComponent(components.ScreenShake) {
		shake := components.ScreenShake.Get(cameraEntry)
		if intensity > shake.Intensity {
			shake.Intensity = intensity
			shake.Duration = duration
			shake.Elapsed = 0
		}
	} else {
		cameraEntry.AddComponent(components.ScreenShake)
		components.ScreenShake.Set(cameraEntry, &components.ScreenShakeData{
			Intensity: intensity,
			Duration:  duration,
			Elapsed:   0,
		})
	}
}

// TriggerZoomPunch zooms to the target and back over the configured punch
// time. Used on heavy hits.
func TriggerZoomPunch(e *ecs.ECS, target float64) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	half := float32(cfg.Camera.ZoomPunchTime / 2)
	seq := gween.NewSequence()
	seq.Add(
		gween.New(float32(camera.Zoom), float32(target), half, ease.OutQuad),
		gween.New(float32(target), float32(cfg.Camera.BaseZoom), half, ease.InQuad),
	)
	camera.ZoomTween = seq
}

// TriggerZoomHold eases the camera to the target zoom and leaves it there.
// Used on KO; the camera resets when the next match spawns a fresh one.
func TriggerZoomHold(e *ecs.ECS, target float64) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	seq := gween.NewSequence()
	seq.Add(gween.New(float32(camera.Zoom), float32(target), float32(cfg.Camera.ZoomPunchTime*2), ease.OutQuad))
	camera.ZoomTween = seq
}
