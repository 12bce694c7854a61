package scenes

import (
	"image/color"
	"sync"
	"time"

	"github.com/aarav-shukla07/stickman-fight/components"
	cfg "github.com/aarav-shukla07/stickman-fight/config"
	"github.com/aarav-shukla07/stickman-fight/systems"
	"github.com/aarav-shukla07/stickman-fight/systems/factory"
	"github.com/aarav-shukla07/stickman-fight/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// MenuScene is the weapon-select screen shown before a fight.
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	selectUI     *ui.SelectUI
	setup        *components.MatchSetup
	once         sync.Once
	shouldStart  bool
}

// NewMenuScene creates the weapon-select scene with default picks.
func NewMenuScene(sc SceneChanger) *MenuScene {
	return &MenuScene{sceneChanger: sc}
}

// NewMenuSceneWithSetup keeps a previous match's weapon picks selected.
func NewMenuSceneWithSetup(sc SceneChanger, setup *components.MatchSetup) *MenuScene {
	return &MenuScene{sceneChanger: sc, setup: setup}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)

	ms.ecs.Update()
	ms.selectUI.UI.Update()
	ms.selectUI.UpdateUI()

	if ms.shouldStart {
		systems.PlaySFX(ms.ecs, cfg.SoundMenuSelect)
		ms.sceneChanger.ChangeScene(NewFightScene(ms.sceneChanger, ms.setup))
	}
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.selectUI.UI.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())
	ms.ecs.AddSystem(systems.UpdateAudio)
	factory.CreateAudio(ms.ecs)

	if ms.setup == nil {
		ms.setup = &components.MatchSetup{
			PlayerWeaponKey:   "fists",
			OpponentWeaponKey: "fists",
		}
	}
	// Fresh seed every visit so rematches don't replay the same bot.
	ms.setup.BotSeed = time.Now().UnixNano()

	ms.selectUI = ui.NewSelectUI(ms.setup,
		func() { systems.PlaySFX(ms.ecs, cfg.SoundMenuNavigate) },
		func() { ms.shouldStart = true })
}
