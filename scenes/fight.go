package scenes

import (
	"image/color"
	"sync"

	"github.com/aarav-shukla07/stickman-fight/components"
	cfg "github.com/aarav-shukla07/stickman-fight/config"
	"github.com/aarav-shukla07/stickman-fight/systems"
	"github.com/aarav-shukla07/stickman-fight/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// FightScene runs one match: player versus the AI opponent.
type FightScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	setup        *components.MatchSetup
	once         sync.Once
}

// NewFightScene creates a fight scene from the weapon-select setup.
func NewFightScene(sc SceneChanger, setup *components.MatchSetup) *FightScene {
	return &FightScene{sceneChanger: sc, setup: setup}
}

func (fs *FightScene) Update() {
	fs.once.Do(fs.configure)
	fs.ecs.Update()

	pause := systems.GetOrCreatePause(fs.ecs)
	if pause.QuitRequested {
		fs.sceneChanger.ChangeScene(NewMenuSceneWithSetup(fs.sceneChanger, fs.setup))
		return
	}

	// Hand over to the result screen once the banner has been shown.
	if winner, done := systems.MatchResult(fs.ecs); done {
		matchEntry, ok := components.Match.First(fs.ecs.World)
		if ok && components.Match.Get(matchEntry).Timer <= 0 {
			fs.sceneChanger.ChangeScene(NewGameOverScene(fs.sceneChanger, fs.setup, winner))
		}
	}
}

func (fs *FightScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if fs.ecs == nil {
		return
	}
	fs.ecs.Draw(screen)
}

func (fs *FightScene) configure() {
	e := ecs.NewECS(donburi.NewWorld())

	// Input and pause run unconditionally; one tick advances control,
	// combat, physics, match flow, then presentation state, in order.
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdatePause)
	e.AddSystem(systems.WithPauseCheck(systems.UpdateBots))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateFighters))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateCombat))
	e.AddSystem(systems.WithPauseCheck(systems.UpdatePhysics))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateMatch))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateCamera))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateEffects))
	e.AddSystem(systems.UpdateAudio)

	e.AddRenderer(cfg.Default, systems.DrawArena)
	e.AddRenderer(cfg.Default, systems.DrawParticles)
	e.AddRenderer(cfg.Default, systems.DrawFighters)
	e.AddRenderer(cfg.Default, systems.DrawHUD)
	e.AddRenderer(cfg.Default, systems.DrawMatchHUD)
	e.AddRenderer(cfg.Default, systems.DrawPauseOverlay)

	spaceEntry := factory.CreateSpace(e)
	space := components.Space.Get(spaceEntry).Space
	factory.CreateCamera(e)
	factory.CreateMatch(e)
	factory.CreateAudio(e)
	systems.ResetHUD()

	// Player first so the per-tick update order is player then opponent.
	factory.CreateFighter(e, space, factory.FighterSetup{
		Index:       0,
		X:           cfg.Arena.Width*0.25 - cfg.Fighter.BodyWidth/2,
		FacingRight: true,
		WeaponKey:   fs.setup.PlayerWeaponKey,
		Color:       cfg.LightBlue,
	})
	factory.CreateFighter(e, space, factory.FighterSetup{
		Index:       1,
		X:           cfg.Arena.Width*0.75 - cfg.Fighter.BodyWidth/2,
		FacingRight: false,
		WeaponKey:   fs.setup.OpponentWeaponKey,
		Color:       cfg.LightRed,
		BotSeed:     fs.setup.BotSeed,
	})

	fs.ecs = e
}
