package systems

import (
	"fmt"
	"image/color"

	"github.com/aarav-shukla07/stickman-fight/components"
	cfg "github.com/aarav-shukla07/stickman-fight/config"
	"github.com/aarav-shukla07/stickman-fight/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	text "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Trailing "ghost" fill per fighter index. Tweens down toward the real
// health so chunks of damage read as a fading red trail.
type ghostBar struct {
	value  float32
	target float32
	tween  *gween.Tween
}

// update advances the ghost toward the live fraction. Damage during an
// active ease restarts the tween from wherever the ghost currently is.
func (g *ghostBar) update(fraction float32) float32 {
	if fraction >= g.value {
		g.value = fraction
		g.target = fraction
		g.tween = nil
		return g.value
	}
	if g.tween == nil || g.target != fraction {
		g.target = fraction
		g.tween = gween.New(g.value, fraction, cfg.HUD.GhostEase, ease.OutQuad)
	}
	value, done := g.tween.Update(tickSeconds)
	g.value = value
	if done {
		g.tween = nil
	}
	return g.value
}

var ghostBars = map[int]*ghostBar{}

// ResetHUD clears per-match HUD state. Called when a fight scene starts.
func ResetHUD() {
	ghostBars = map[int]*ghostBar{}
}

// DrawHUD renders both health bars and weapon labels.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	components.Fighter.Each(e.World, func(entry *donburi.Entry) {
		drawFighterBar(entry, screen)
	})
}

func drawFighterBar(entry *donburi.Entry, screen *ebiten.Image) {
	fighter := components.Fighter.Get(entry)
	health := components.Health.Get(entry)
	combat := components.Combat.Get(entry)

	fraction := health.Fraction()
	bar, ok := ghostBars[fighter.Index]
	if !ok {
		bar = &ghostBar{value: float32(fraction), target: float32(fraction)}
		ghostBars[fighter.Index] = bar
	}
	ghost := float64(bar.update(float32(fraction)))

	margin := float32(cfg.HUD.BarMargin)
	barW := float32(cfg.HUD.BarWidth)
	barH := float32(cfg.HUD.BarHeight)
	y := margin

	// Player bar grows from the left, opponent bar from the right.
	var x float32
	rightAligned := fighter.Index != 0
	if rightAligned {
		x = float32(cfg.C.Width) - margin - barW
	} else {
		x = margin
	}

	fill := func(frac float64, clr color.RGBA) {
		w := barW * float32(frac)
		fx := x
		if rightAligned {
			fx = x + barW - w
		}
		vector.DrawFilledRect(screen, fx, y, w, barH, clr, false)
	}

	vector.DrawFilledRect(screen, x, y, barW, barH, color.RGBA{R: 40, G: 40, B: 40, A: 255}, false)
	fill(ghost, cfg.LightRed)
	fill(fraction, cfg.BrightGreen)
	vector.StrokeRect(screen, x, y, barW, barH, 2, cfg.White, false)

	// Weapon label with a cooldown hint under the bar.
	label := fighter.Weapon.Name
	if combat.CooldownTimer > 0 {
		label = fmt.Sprintf("%s (%d)", label, combat.CooldownTimer)
	}
	face := fonts.Small.Get()
	op := &text.DrawOptions{}
	if rightAligned {
		op.GeoM.Translate(float64(x+barW)-text.Advance(label, face), float64(cfg.HUD.WeaponLabY))
	} else {
		op.GeoM.Translate(float64(x), float64(cfg.HUD.WeaponLabY))
	}
	op.ColorScale.ScaleWithColor(fighter.Color)
	text.Draw(screen, label, face, op)
}

// DrawMatchHUD renders the countdown overlay and the result banner.
func DrawMatchHUD(e *ecs.ECS, screen *ebiten.Image) {
	matchEntry, ok := components.Match.First(e.World)
	if !ok {
		return
	}
	match := components.Match.Get(matchEntry)

	switch match.State {
	case cfg.MatchStateCountdown:
		drawCountdown(screen, match)
	case cfg.MatchStateFinished:
		drawResultBanner(screen, match)
	}
}

func drawCountdown(screen *ebiten.Image, match *components.MatchData) {
	w := float32(cfg.C.Width)
	h := float32(cfg.C.Height)
	vector.DrawFilledRect(screen, 0, 0, w, h, color.RGBA{A: 120}, false)

	countStr := "FIGHT"
	clr := cfg.BrightGreen
	if match.CountdownValue > 0 {
		countStr = fmt.Sprintf("%d", match.CountdownValue)
		clr = cfg.BrightOrange
	}
	drawCenteredText(screen, countStr, fonts.Title.Get(), float64(cfg.C.Height)/2-40, clr)
}

func drawResultBanner(screen *ebiten.Image, match *components.MatchData) {
	var banner string
	clr := cfg.Yellow
	switch match.WinnerIndex {
	case components.WinnerDraw:
		banner = "DOUBLE KO - DRAW"
		clr = cfg.Steel
	case 0:
		banner = "YOU WIN"
		clr = cfg.BrightGreen
	default:
		banner = "YOU LOSE"
		clr = cfg.LightRed
	}
	drawCenteredText(screen, banner, fonts.Title.Get(), cfg.HUD.BannerY, clr)
}

// DrawPauseOverlay renders the dim overlay and pause menu while paused.
func DrawPauseOverlay(e *ecs.ECS, screen *ebiten.Image) {
	pauseEntry, ok := components.Pause.First(e.World)
	if !ok {
		return
	}
	pause := components.Pause.Get(pauseEntry)
	if !pause.IsPaused {
		return
	}

	vector.DrawFilledRect(screen, 0, 0,
		float32(cfg.C.Width), float32(cfg.C.Height), cfg.BlackOverlay, false)
	drawCenteredText(screen, "PAUSED", fonts.Title.Get(), 140, cfg.White)

	options := []struct {
		label  string
		option components.PauseMenuOption
	}{
		{"Resume", components.MenuResume},
		{"Quit to Menu", components.MenuQuit},
	}
	face := fonts.Normal.Get()
	for i, opt := range options {
		clr := cfg.White
		label := opt.label
		if pause.SelectedOption == opt.option {
			clr = cfg.BrightOrange
			label = "> " + label
		}
		drawCenteredText(screen, label, face, 250+float64(i)*36, clr)
	}
}

func drawCenteredText(screen *ebiten.Image, str string, face *text.GoTextFace, y float64, clr color.RGBA) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(cfg.C.Width)/2-text.Advance(str, face)/2, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, face, op)
}
