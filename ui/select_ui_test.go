package ui

import (
	"testing"

	"github.com/aarav-shukla07/stickman-fight/components"
	"github.com/ebitenui/ebitenui/widget"
)

// Uses a bare SelectUI so no widgets (and no graphics context) are needed.
func TestPickWeaponFiresSelectCallback(t *testing.T) {
	setup := &components.MatchSetup{
		PlayerWeaponKey:   "fists",
		OpponentWeaponKey: "fists",
	}
	notified := 0
	sui := &SelectUI{
		Setup:           setup,
		OnWeaponSelect:  func() { notified++ },
		playerButtons:   map[string]*widget.Button{},
		opponentButtons: map[string]*widget.Button{},
	}

	sui.pickWeapon(func(key string) { setup.PlayerWeaponKey = key }, "sword")

	if setup.PlayerWeaponKey != "sword" {
		t.Fatalf("expected sword, got %q", setup.PlayerWeaponKey)
	}
	if notified != 1 {
		t.Fatalf("expected one select notification, got %d", notified)
	}
}

func TestPickWeaponWithoutCallback(t *testing.T) {
	setup := &components.MatchSetup{
		PlayerWeaponKey:   "fists",
		OpponentWeaponKey: "fists",
	}
	sui := &SelectUI{
		Setup:           setup,
		playerButtons:   map[string]*widget.Button{},
		opponentButtons: map[string]*widget.Button{},
	}

	sui.pickWeapon(func(key string) { setup.OpponentWeaponKey = key }, "hammer")

	if setup.OpponentWeaponKey != "hammer" {
		t.Fatalf("expected hammer, got %q", setup.OpponentWeaponKey)
	}
}
