package systems

import (
	"math"
	"testing"

	"github.com/aarav-shukla07/stickman-fight/components"
	cfg "github.com/aarav-shukla07/stickman-fight/config"
)

func TestBoundaryClampZeroesSpeed(t *testing.T) {
	e, space := newFightWorld()
	startPlaying(e)
	player, _ := spawnPair(e, space, "fists", "fists", 0)

	moveTo(player, 0, cfg.Arena.GroundY-cfg.Fighter.BodyHeight)
	physics := components.Physics.Get(player)
	physics.SpeedX = -5

	UpdatePhysics(e)

	obj := components.Object.Get(player)
	if obj.X != 0 {
		t.Fatalf("expected x to stay at 0, got %f", obj.X)
	}
	if physics.SpeedX != 0 {
		t.Fatalf("expected vx reset to 0 at the wall, got %f", physics.SpeedX)
	}
}

func TestRightBoundaryClamp(t *testing.T) {
	e, space := newFightWorld()
	startPlaying(e)
	player, _ := spawnPair(e, space, "fists", "fists", 0)

	moveTo(player, cfg.Arena.Width-cfg.Fighter.BodyWidth, cfg.Arena.GroundY-cfg.Fighter.BodyHeight)
	physics := components.Physics.Get(player)
	physics.SpeedX = 5

	UpdatePhysics(e)

	obj := components.Object.Get(player)
	if want := cfg.Arena.Width - cfg.Fighter.BodyWidth; obj.X != want {
		t.Fatalf("expected x clamped to %f, got %f", want, obj.X)
	}
	if physics.SpeedX != 0 {
		t.Fatalf("expected vx reset to 0 at the wall, got %f", physics.SpeedX)
	}
}

func TestGravityAndGroundSnap(t *testing.T) {
	e, space := newFightWorld()
	startPlaying(e)
	player, _ := spawnPair(e, space, "fists", "fists", 0)

	physics := components.Physics.Get(player)
	moveTo(player, 300, 100)
	physics.OnGround = false

	UpdatePhysics(e)
	if physics.SpeedY != cfg.Fighter.Gravity {
		t.Fatalf("expected vy %f after one airborne tick, got %f", cfg.Fighter.Gravity, physics.SpeedY)
	}
	if physics.OnGround {
		t.Fatal("fighter should still be airborne")
	}

	for i := 0; i < 600 && !physics.OnGround; i++ {
		UpdatePhysics(e)
	}

	obj := components.Object.Get(player)
	if !physics.OnGround {
		t.Fatal("fighter never landed")
	}
	if want := cfg.Arena.GroundY - cfg.Fighter.BodyHeight; obj.Y != want {
		t.Fatalf("expected y snapped to %f, got %f", want, obj.Y)
	}
	if physics.SpeedY != 0 {
		t.Fatalf("expected vy zeroed on landing, got %f", physics.SpeedY)
	}
}

func TestFrictionAppliesAfterControl(t *testing.T) {
	e, space := newFightWorld()
	startPlaying(e)
	player, _ := spawnPair(e, space, "fists", "fists", 0)

	physics := components.Physics.Get(player)
	physics.SpeedX = 4

	UpdatePhysics(e)

	want := 4 * cfg.Fighter.Friction
	if math.Abs(physics.SpeedX-want) > 1e-9 {
		t.Fatalf("expected vx %f after friction, got %f", want, physics.SpeedX)
	}
}

func TestMaxSpeedClamp(t *testing.T) {
	e, space := newFightWorld()
	startPlaying(e)
	player, _ := spawnPair(e, space, "fists", "fists", 0)

	physics := components.Physics.Get(player)
	physics.SpeedX = 20

	UpdatePhysics(e)

	if physics.SpeedX != cfg.Fighter.MaxSpeed {
		t.Fatalf("expected vx clamped to %f, got %f", cfg.Fighter.MaxSpeed, physics.SpeedX)
	}
}

func TestHitStunDampingAndCountdown(t *testing.T) {
	e, space := newFightWorld()
	startPlaying(e)
	player, _ := spawnPair(e, space, "fists", "fists", 0)

	physics := components.Physics.Get(player)
	combat := components.Combat.Get(player)
	physics.SpeedX = 10
	combat.HitStun = 10

	UpdatePhysics(e)

	want := 10 * cfg.Fighter.StunFriction
	if math.Abs(physics.SpeedX-want) > 1e-9 {
		t.Fatalf("expected stun damping to %f, got %f", want, physics.SpeedX)
	}
	if combat.HitStun != 9 {
		t.Fatalf("expected hit-stun to tick down to 9, got %d", combat.HitStun)
	}
}

func TestHitStunExceedsMaxSpeed(t *testing.T) {
	// Knockback is involuntary and must not be speed-clamped.
	e, space := newFightWorld()
	startPlaying(e)
	player, _ := spawnPair(e, space, "fists", "fists", 0)

	physics := components.Physics.Get(player)
	combat := components.Combat.Get(player)
	physics.SpeedX = 14
	combat.HitStun = 5

	UpdatePhysics(e)

	if physics.SpeedX <= cfg.Fighter.MaxSpeed {
		t.Fatalf("knockback speed should survive the clamp, got %f", physics.SpeedX)
	}
}

func TestPhysicsFrozenOutsidePlaying(t *testing.T) {
	e, space := newFightWorld()
	player, _ := spawnPair(e, space, "fists", "fists", 0)

	physics := components.Physics.Get(player)
	physics.SpeedX = 5
	obj := components.Object.Get(player)
	startX := obj.X

	UpdatePhysics(e) // match still in countdown

	if obj.X != startX {
		t.Fatalf("fighter moved during countdown: %f -> %f", startX, obj.X)
	}
}

func TestHitStunSuppressesControl(t *testing.T) {
	e, space := newFightWorld()
	startPlaying(e)
	player, _ := spawnPair(e, space, "fists", "fists", 0)

	intent := components.Intent.Get(player)
	physics := components.Physics.Get(player)
	combat := components.Combat.Get(player)

	combat.HitStun = 8
	intent.Cycle()
	intent.Current[cfg.ActionMoveRight] = true
	intent.Current[cfg.ActionAttack] = true

	UpdateFighters(e)

	if physics.SpeedX != 0 {
		t.Fatalf("movement should be suppressed in hit-stun, got vx %f", physics.SpeedX)
	}
	if combat.IsAttacking {
		t.Fatal("attack initiation should be suppressed in hit-stun")
	}
}
