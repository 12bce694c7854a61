package systems

import (
	"image/color"
	"math"

	"github.com/aarav-shukla07/stickman-fight/components"
	cfg "github.com/aarav-shukla07/stickman-fight/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// view captures the camera transform for one frame.
type view struct {
	camX, camY float64
	zoom       float64
	halfW      float64
	halfH      float64
}

func currentView(e *ecs.ECS, screen *ebiten.Image) (view, bool) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return view{}, false
	}
	camera := components.Camera.Get(cameraEntry)
	return view{
		camX:  camera.Position.X,
		camY:  camera.Position.Y,
		zoom:  camera.Zoom,
		halfW: float64(screen.Bounds().Dx()) / 2,
		halfH: float64(screen.Bounds().Dy()) / 2,
	}, true
}

func (v view) toScreen(x, y float64) (float32, float32) {
	return float32((x-v.camX)*v.zoom + v.halfW), float32((y-v.camY)*v.zoom + v.halfH)
}

func (v view) scale(d float64) float32 {
	return float32(d * v.zoom)
}

// DrawArena paints the backdrop and the ground plane.
func DrawArena(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 18, G: 20, B: 28, A: 255})

	v, ok := currentView(e, screen)
	if !ok {
		return
	}

	gx0, gy := v.toScreen(0, cfg.Arena.GroundY)
	gx1, _ := v.toScreen(cfg.Arena.Width, cfg.Arena.GroundY)
	bottom := float32(screen.Bounds().Dy())
	vector.DrawFilledRect(screen, gx0, gy, gx1-gx0, bottom-gy,
		color.RGBA{R: 34, G: 38, B: 48, A: 255}, false)
	vector.StrokeLine(screen, gx0, gy, gx1, gy, v.scale(2),
		color.RGBA{R: 90, G: 100, B: 120, A: 255}, true)

	// Arena walls, drawn faint so the clamp reads as a physical bound.
	wx0, wy0 := v.toScreen(0, 0)
	wx1, _ := v.toScreen(cfg.Arena.Width, 0)
	wallColor := color.RGBA{R: 60, G: 66, B: 82, A: 255}
	vector.StrokeLine(screen, wx0, wy0, gx0, gy, v.scale(2), wallColor, true)
	vector.StrokeLine(screen, wx1, wy0, gx1, gy, v.scale(2), wallColor, true)
}

// DrawFighters renders each fighter as a posed stickman with their weapon.
func DrawFighters(e *ecs.ECS, screen *ebiten.Image) {
	v, ok := currentView(e, screen)
	if !ok {
		return
	}

	components.Fighter.Each(e.World, func(entry *donburi.Entry) {
		drawStickman(entry, screen, v)
	})
}

func drawStickman(entry *donburi.Entry, screen *ebiten.Image, v view) {
	fighter := components.Fighter.Get(entry)
	obj := components.Object.Get(entry)
	physics := components.Physics.Get(entry)
	combat := components.Combat.Get(entry)
	health := components.Health.Get(entry)

	tint := fighter.Color
	if entry.HasComponent(components.Flash) {
		flash := components.Flash.Get(entry)
		if flash.Duration > 0 {
			tint = blendFlash(tint, flash.R, flash.G, flash.B)
		}
	}

	facing := fighter.Facing()
	cx := obj.X + obj.W/2
	ko := health.Current <= 0

	if ko {
		drawKOPose(screen, v, cx, obj.Y+obj.H, facing, tint)
		return
	}

	headR := obj.W / 2
	headY := obj.Y + headR
	neckY := obj.Y + headR*2
	hipY := obj.Y + obj.H*0.62
	footY := obj.Y + obj.H

	// Hit-stun staggers the whole figure backward.
	lean := 0.0
	if combat.HitStun > 0 {
		lean = -facing * 6
	}

	stroke := v.scale(3)
	hx, hy := v.toScreen(cx+lean, headY)
	vector.DrawFilledCircle(screen, hx, hy, v.scale(headR), tint, true)

	nx, ny := v.toScreen(cx+lean, neckY)
	px, py := v.toScreen(cx, hipY)
	vector.StrokeLine(screen, nx, ny, px, py, stroke, tint, true)

	drawLegs(screen, v, cx, hipY, footY, physics, stroke, tint)
	drawArms(entry, screen, v, cx+lean*0.5, neckY, hipY, facing, stroke, tint)
}

func drawLegs(screen *ebiten.Image, v view, cx, hipY, footY float64, physics *components.PhysicsData, stroke float32, tint color.RGBA) {
	px, py := v.toScreen(cx, hipY)
	legLen := footY - hipY

	if !physics.OnGround {
		// Tucked while airborne.
		lx, ly := v.toScreen(cx-6, footY-legLen*0.35)
		rx, ry := v.toScreen(cx+6, footY-legLen*0.3)
		vector.StrokeLine(screen, px, py, lx, ly, stroke, tint, true)
		vector.StrokeLine(screen, px, py, rx, ry, stroke, tint, true)
		return
	}

	// Grounded: scissor with speed, still when idle.
	swing := math.Sin(cx*0.25) * math.Min(math.Abs(physics.SpeedX)*1.6, 9)
	lx, ly := v.toScreen(cx-4+swing, footY)
	rx, ry := v.toScreen(cx+4-swing, footY)
	vector.StrokeLine(screen, px, py, lx, ly, stroke, tint, true)
	vector.StrokeLine(screen, px, py, rx, ry, stroke, tint, true)
}

func drawArms(entry *donburi.Entry, screen *ebiten.Image, v view, cx, neckY, hipY float64, facing float64, stroke float32, tint color.RGBA) {
	fighter := components.Fighter.Get(entry)
	combat := components.Combat.Get(entry)
	weapon := fighter.Weapon

	shoulderY := neckY + (hipY-neckY)*0.2
	sx, sy := v.toScreen(cx, shoulderY)
	armLen := (hipY - neckY) * 0.75

	// Rear arm hangs.
	bx, by := v.toScreen(cx-facing*armLen*0.4, shoulderY+armLen*0.8)
	vector.StrokeLine(screen, sx, sy, bx, by, stroke, tint, true)

	// Weapon arm swings from raised to extended over the attack.
	angle := 0.6 // resting guard angle below horizontal
	if combat.IsAttacking && weapon.Speed > 0 {
		progress := 1 - float64(combat.AttackTimer)/float64(weapon.Speed)
		angle = 1.2 - progress*1.8 // overhead to follow-through
	}
	handX := cx + facing*math.Cos(angle)*armLen
	handY := shoulderY + math.Sin(angle)*armLen
	hx, hy := v.toScreen(handX, handY)
	vector.StrokeLine(screen, sx, sy, hx, hy, stroke, tint, true)

	drawWeapon(screen, v, handX, handY, facing, angle, weapon)
}

func drawWeapon(screen *ebiten.Image, v view, handX, handY, facing, armAngle float64, weapon *cfg.WeaponSpec) {
	if weapon.Key == "fists" {
		hx, hy := v.toScreen(handX, handY)
		vector.DrawFilledCircle(screen, hx, hy, v.scale(3.5), weapon.Color, true)
		return
	}

	// Held weapons extend along the arm line, scaled down from true reach
	// so long weapons don't dwarf the figure.
	length := math.Min(weapon.Range*0.55, 70)
	tipX := handX + facing*math.Cos(armAngle-0.25)*length
	tipY := handY + math.Sin(armAngle-0.25)*length

	hx, hy := v.toScreen(handX, handY)
	tx, ty := v.toScreen(tipX, tipY)
	width := v.scale(3)
	if weapon.Class == cfg.ClassBlunt {
		width = v.scale(5)
	}
	vector.StrokeLine(screen, hx, hy, tx, ty, width, weapon.Color, true)

	if weapon.Class == cfg.ClassBlunt {
		vector.DrawFilledCircle(screen, tx, ty, v.scale(6), weapon.Color, true)
	}
}

func drawKOPose(screen *ebiten.Image, v view, cx, footY, facing float64, tint color.RGBA) {
	// Slumped on the ground, head away from the last hit.
	groundY := footY - 6
	x0, y0 := v.toScreen(cx+facing*28, groundY)
	x1, y1 := v.toScreen(cx-facing*28, groundY)
	vector.StrokeLine(screen, x0, y0, x1, y1, v.scale(3), tint, true)
	vector.DrawFilledCircle(screen, x1, y1, v.scale(9), tint, true)
}

// DrawParticles renders sparks and dust with alpha fading over lifetime.
func DrawParticles(e *ecs.ECS, screen *ebiten.Image) {
	v, ok := currentView(e, screen)
	if !ok {
		return
	}

	components.Particle.Each(e.World, func(entry *donburi.Entry) {
		p := components.Particle.Get(entry)
		if p.MaxLife <= 0 {
			return
		}
		fade := float64(p.Life) / float64(p.MaxLife)
		c := p.Color
		c.A = uint8(float64(c.A) * fade)
		x, y := v.toScreen(p.X, p.Y)
		vector.DrawFilledCircle(screen, x, y, v.scale(p.Size), c, true)
	})
}

func blendFlash(base color.RGBA, r, g, b float32) color.RGBA {
	mixChannel := func(c uint8, m float32) uint8 {
		v := float32(c)*0.3 + 255*m*0.7
		if v > 255 {
			v = 255
		}
		return uint8(v)
	}
	return color.RGBA{
		R: mixChannel(base.R, r),
		G: mixChannel(base.G, g),
		B: mixChannel(base.B, b),
		A: base.A,
	}
}
