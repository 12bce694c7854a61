// Package ui builds the ebitenui menu surfaces.
package ui

import (
	"fmt"
	"image/color"

	"github.com/aarav-shukla07/stickman-fight/components"
	cfg "github.com/aarav-shukla07/stickman-fight/config"
	"github.com/aarav-shukla07/stickman-fight/fonts"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	text "github.com/hajimehoshi/ebiten/v2/text/v2"
)

// SelectUI is the weapon-select screen. Each side picks a weapon from the
// catalog, then the fight button hands the setup to the fight scene.
type SelectUI struct {
	UI    *ebitenui.UI
	Setup *components.MatchSetup

	// OnWeaponSelect fires whenever either side picks a weapon,
	// OnStartMatch when the fight button confirms the setup.
	OnWeaponSelect func()
	OnStartMatch   func()

	playerButtons   map[string]*widget.Button
	opponentButtons map[string]*widget.Button
	playerStats     *widget.Label
	opponentStats   *widget.Label

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

// NewSelectUI builds the weapon-select screen around an existing setup.
func NewSelectUI(setup *components.MatchSetup, onWeaponSelect, onStartMatch func()) *SelectUI {
	sui := &SelectUI{
		Setup:           setup,
		OnWeaponSelect:  onWeaponSelect,
		OnStartMatch:    onStartMatch,
		playerButtons:   map[string]*widget.Button{},
		opponentButtons: map[string]*widget.Button{},
	}

	sui.titleFace = fonts.WithSize(32)
	sui.normalFace = fonts.Normal.Get()
	sui.smallFace = fonts.Small.Get()
	sui.buildUI()

	return sui
}

func (sui *SelectUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{R: 18, G: 20, B: 28, A: 255})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(12)),
			widget.RowLayoutOpts.Spacing(10),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text("STICKMAN FIGHT", &sui.titleFace, &widget.LabelColor{
			Idle: cfg.White,
		}),
	)
	contentContainer.AddChild(titleLabel)

	columns := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(40),
		)),
	)
	columns.AddChild(sui.buildWeaponColumn("YOUR WEAPON", sui.playerButtons, &sui.playerStats, func(key string) {
		sui.Setup.PlayerWeaponKey = key
	}))
	columns.AddChild(sui.buildWeaponColumn("OPPONENT WEAPON", sui.opponentButtons, &sui.opponentStats, func(key string) {
		sui.Setup.OpponentWeaponKey = key
	}))
	contentContainer.AddChild(columns)

	fightButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(200, 40),
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
			}),
		),
		widget.ButtonOpts.Image(sui.buttonImage()),
		widget.ButtonOpts.Text("FIGHT", &sui.normalFace, &widget.ButtonTextColor{
			Idle:    cfg.BrightGreen,
			Hover:   cfg.White,
			Pressed: cfg.Steel,
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if sui.OnStartMatch != nil {
				sui.OnStartMatch()
			}
		}),
	)
	contentContainer.AddChild(fightButton)

	rootContainer.AddChild(contentContainer)

	sui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (sui *SelectUI) buildWeaponColumn(title string, buttons map[string]*widget.Button, stats **widget.Label, onPick func(string)) *widget.Container {
	column := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(4),
		)),
	)

	column.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(title, &sui.normalFace, &widget.LabelColor{
			Idle: cfg.BrightOrange,
		}),
	))

	for _, key := range cfg.WeaponKeys() {
		weapon := cfg.Weapon(key)
		pickKey := key
		button := widget.NewButton(
			widget.ButtonOpts.WidgetOpts(
				widget.WidgetOpts.MinSize(180, 26),
			),
			widget.ButtonOpts.Image(sui.buttonImage()),
			widget.ButtonOpts.Text(weapon.Name, &sui.smallFace, &widget.ButtonTextColor{
				Idle:    weapon.Color,
				Hover:   cfg.White,
				Pressed: cfg.Steel,
			}),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				sui.pickWeapon(onPick, pickKey)
			}),
		)
		buttons[key] = button
		column.AddChild(button)
	}

	*stats = widget.NewLabel(
		widget.LabelOpts.Text("", &sui.smallFace, &widget.LabelColor{
			Idle: cfg.Steel,
		}),
	)
	column.AddChild(*stats)

	return column
}

// pickWeapon records a weapon choice and notifies the select callback.
func (sui *SelectUI) pickWeapon(onPick func(string), key string) {
	onPick(key)
	if sui.OnWeaponSelect != nil {
		sui.OnWeaponSelect()
	}
	sui.UpdateUI()
}

// UpdateUI refreshes selection markers and the stat readouts.
func (sui *SelectUI) UpdateUI() {
	refresh := func(buttons map[string]*widget.Button, selected string, stats *widget.Label) {
		for key, button := range buttons {
			if textWidget := button.Text(); textWidget != nil {
				name := cfg.Weapon(key).Name
				if key == selected {
					name = "> " + name
				}
				textWidget.Label = name
			}
		}
		if stats != nil {
			w := cfg.Weapon(selected)
			stats.Label = fmt.Sprintf("dmg %d  reach %.0f  speed %d", w.Damage, w.Range, w.Speed)
		}
	}
	refresh(sui.playerButtons, sui.Setup.PlayerWeaponKey, sui.playerStats)
	refresh(sui.opponentButtons, sui.Setup.OpponentWeaponKey, sui.opponentStats)
}

func (sui *SelectUI) buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(color.RGBA{R: 60, G: 60, B: 80, A: 255}),
		Hover:    image.NewNineSliceColor(color.RGBA{R: 80, G: 80, B: 100, A: 255}),
		Pressed:  image.NewNineSliceColor(color.RGBA{R: 40, G: 40, B: 60, A: 255}),
		Disabled: image.NewNineSliceColor(color.RGBA{R: 40, G: 40, B: 40, A: 255}),
	}
}
