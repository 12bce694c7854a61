package scenes

import (
	"image/color"
	"sync"

	"github.com/aarav-shukla07/stickman-fight/components"
	cfg "github.com/aarav-shukla07/stickman-fight/config"
	"github.com/aarav-shukla07/stickman-fight/fonts"
	"github.com/aarav-shukla07/stickman-fight/systems"
	"github.com/aarav-shukla07/stickman-fight/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	text "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GameOverScene shows the result and offers a rematch.
type GameOverScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	setup        *components.MatchSetup
	winnerIndex  int
	once         sync.Once
}

// NewGameOverScene creates the result screen for a finished match.
func NewGameOverScene(sc SceneChanger, setup *components.MatchSetup, winnerIndex int) *GameOverScene {
	return &GameOverScene{sceneChanger: sc, setup: setup, winnerIndex: winnerIndex}
}

func (gs *GameOverScene) Update() {
	gs.once.Do(gs.configure)
	gs.ecs.Update()

	inputEntry, ok := components.Input.First(gs.ecs.World)
	if !ok {
		return
	}
	input := components.Input.Get(inputEntry)

	if systems.GetAction(input, cfg.ActionMenuSelect).JustPressed {
		systems.PlaySFX(gs.ecs, cfg.SoundMenuSelect)
		gs.sceneChanger.ChangeScene(NewMenuSceneWithSetup(gs.sceneChanger, gs.setup))
	}
}

func (gs *GameOverScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 18, G: 20, B: 28, A: 255})

	if gs.ecs == nil {
		return
	}

	var banner string
	clr := cfg.Yellow
	switch gs.winnerIndex {
	case components.WinnerDraw:
		banner = "DOUBLE KO - DRAW"
		clr = cfg.Steel
	case 0:
		banner = "VICTORY"
		clr = cfg.BrightGreen
	default:
		banner = "DEFEAT"
		clr = cfg.LightRed
	}

	drawCentered(screen, banner, fonts.Title.Get(), float64(cfg.C.Height)/2-60, clr)
	drawCentered(screen, "Press Enter for weapon select", fonts.Normal.Get(),
		float64(cfg.C.Height)/2+20, cfg.White)
}

func (gs *GameOverScene) configure() {
	gs.ecs = ecs.NewECS(donburi.NewWorld())
	gs.ecs.AddSystem(systems.UpdateInput)
	gs.ecs.AddSystem(systems.UpdateAudio)
	factory.CreateAudio(gs.ecs)
}

func drawCentered(screen *ebiten.Image, str string, face *text.GoTextFace, y float64, clr color.RGBA) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(cfg.C.Width)/2-text.Advance(str, face)/2, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, face, op)
}
