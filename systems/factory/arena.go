package factory

import (
	"github.com/aarav-shukla07/stickman-fight/archetypes"
	"github.com/aarav-shukla07/stickman-fight/components"
	cfg "github.com/aarav-shukla07/stickman-fight/config"
	"github.com/aarav-shukla07/stickman-fight/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// CreateSpace builds the collision space covering the arena, with the
// ground plane registered as a tagged object.
func CreateSpace(e *ecs.ECS) *donburi.Entry {
	spaceEntry := archetypes.Space.Spawn(e)

	space := resolv.NewSpace(int(cfg.Arena.Width), int(cfg.Arena.Height), 16, 16)
	ground := resolv.NewObject(0, cfg.Arena.GroundY, cfg.Arena.Width, cfg.Arena.Height-cfg.Arena.GroundY)
	ground.AddTags(tags.ResolvGround)
	space.Add(ground)

	components.Space.SetValue(spaceEntry, components.SpaceData{Space: space})
	return spaceEntry
}

// CreateCamera spawns the camera singleton centered on the arena.
func CreateCamera(e *ecs.ECS) *donburi.Entry {
	camera := archetypes.Camera.Spawn(e)
	components.Camera.SetValue(camera, components.CameraData{
		Position: dmath.Vec2{X: cfg.Arena.Width / 2, Y: cfg.Arena.Height / 2},
		Zoom:     cfg.Camera.BaseZoom,
	})
	return camera
}

// CreateMatch spawns the match singleton in the countdown state.
func CreateMatch(e *ecs.ECS) *donburi.Entry {
	match := archetypes.Match.Spawn(e)
	components.Match.SetValue(match, components.MatchData{
		State:          cfg.MatchStateCountdown,
		Timer:          cfg.Match.CountdownDuration,
		CountdownValue: 3,
		WinnerIndex:    components.WinnerNone,
	})
	return match
}

// CreateAudio spawns the audio queue singleton.
func CreateAudio(e *ecs.ECS) *donburi.Entry {
	a := archetypes.Audio.Spawn(e)
	components.Audio.SetValue(a, components.AudioData{
		SFXVolume: cfg.Audio.DefaultSFXVol,
	})
	return a
}
