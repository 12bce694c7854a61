package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the ECS layer every entity and renderer lives on.
const Default ecs.LayerID = ecs.LayerDefault

// ArenaConfig describes the fixed fight arena.
type ArenaConfig struct {
	Width   float64 // playable width, fighters are clamped to [0, Width-bodyW]
	Height  float64
	GroundY float64 // top of the ground plane
}

// FighterConfig contains all per-fighter tuning values.
type FighterConfig struct {
	// Movement
	Accel     float64 // horizontal acceleration per tick from control input
	MaxSpeed  float64
	JumpSpeed float64

	// Physics
	Gravity      float64
	Friction     float64 // multiplicative, applied each tick after control
	StunFriction float64 // stronger damping while in hit-stun

	// Combat
	MaxHealth int

	// Dimensions
	BodyWidth  float64
	BodyHeight float64
}

// CombatConfig contains combat resolution tuning.
type CombatConfig struct {
	// Hit test
	VerticalHitRange float64 // max vertical center distance for a hit to land

	// Hit reaction
	HitStunBase      int     // hit-stun = HitStunBase + HitStunPerDamage*damage
	HitStunPerDamage int
	LaunchBase       float64 // upward pop = -(LaunchBase + damage)
	HeavyThreshold   int     // damage above this counts as a heavy hit
}

// EffectsConfig contains particle and flash tuning.
type EffectsConfig struct {
	HitSparkCount   int
	HitSparkSpeed   float64
	HitSparkLife    int
	DustCount       int
	DustLife        int
	ParticleGravity float64

	HitFlashFrames    int
	DamageFlashFrames int
}

// ScreenShakeConfig contains screen shake tuning per event.
type ScreenShakeConfig struct {
	HitIntensity   float64
	HitDuration    int
	HeavyIntensity float64
	HeavyDuration  int
	KOIntensity    float64
	KODuration     int
}

// CameraConfig contains camera follow and zoom tuning.
type CameraConfig struct {
	FollowSmoothing float64 // midpoint follow lerp factor per tick
	BaseZoom        float64
	HeavyHitZoom    float64 // zoom punched to on a heavy hit
	KOZoom          float64 // zoom eased to when the match ends
	ZoomPunchTime   float64 // seconds for the heavy-hit zoom round trip
}

// HUDConfig contains HUD layout values.
type HUDConfig struct {
	BarWidth   float64
	BarHeight  float64
	BarMargin  float64
	GhostEase  float32 // seconds for the trailing damage ghost to catch up
	BannerY    float64
	WeaponLabY float64
}

// MatchConfig contains match flow timing.
type MatchFlowConfig struct {
	CountdownDuration  int // frames of 3-2-1 before control is handed over
	ResultsDisplayTime int // frames the result banner stays before game over
}

// Config holds general game configuration.
type Config struct {
	Width  int
	Height int
}

// Global configuration instances, populated in init.
var C *Config
var Arena ArenaConfig
var Fighter FighterConfig
var Combat CombatConfig
var Effects EffectsConfig
var ScreenShake ScreenShakeConfig
var Camera CameraConfig
var HUD HUDConfig
var Match MatchFlowConfig

// Shared RGBA color constants.
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	BrightGreen  = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	Blue         = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	Steel        = color.RGBA{R: 176, G: 190, B: 197, A: 255}
	Purple       = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

// Direction constants for fighter facing.
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	C = &Config{
		Width:  960,
		Height: 540,
	}

	Arena = ArenaConfig{
		Width:   960,
		Height:  540,
		GroundY: 500,
	}

	Fighter = FighterConfig{
		Accel:     1.2,
		MaxSpeed:  7.0,
		JumpSpeed: 14.0,

		Gravity:      0.7,
		Friction:     0.85,
		StunFriction: 0.9,

		MaxHealth: 20,

		BodyWidth:  20,
		BodyHeight: 80,
	}

	Combat = CombatConfig{
		VerticalHitRange: 50,

		HitStunBase:      15,
		HitStunPerDamage: 2,
		LaunchBase:       5,
		HeavyThreshold:   2,
	}

	Effects = EffectsConfig{
		HitSparkCount:   12,
		HitSparkSpeed:   6.0,
		HitSparkLife:    24,
		DustCount:       5,
		DustLife:        16,
		ParticleGravity: 0.3,

		HitFlashFrames:    3,
		DamageFlashFrames: 6,
	}

	ScreenShake = ScreenShakeConfig{
		HitIntensity:   3.0,
		HitDuration:    6,
		HeavyIntensity: 7.0,
		HeavyDuration:  12,
		KOIntensity:    10.0,
		KODuration:     18,
	}

	Camera = CameraConfig{
		FollowSmoothing: 0.12,
		BaseZoom:        1.0,
		HeavyHitZoom:    1.08,
		KOZoom:          1.25,
		ZoomPunchTime:   0.25,
	}

	HUD = HUDConfig{
		BarWidth:   320,
		BarHeight:  18,
		BarMargin:  16,
		GhostEase:  0.5,
		BannerY:    180,
		WeaponLabY: 42,
	}

	Match = MatchFlowConfig{
		CountdownDuration:  180,
		ResultsDisplayTime: 150,
	}
}
