package systems

import (
	"testing"

	cfg "github.com/aarav-shukla07/stickman-fight/config"
)

func TestGhostBarEasesDownToHealth(t *testing.T) {
	bar := &ghostBar{value: 1, target: 1}

	first := bar.update(0.5)
	if first >= 1 {
		t.Fatal("ghost should start easing down on the first tick")
	}
	if first <= 0.5 {
		t.Fatalf("ghost jumped straight to the target: %v", first)
	}

	// One ghost-ease window of ticks lands the tween on the target.
	ticks := int(cfg.HUD.GhostEase*60) + 1
	prev := first
	for i := 0; i < ticks; i++ {
		value := bar.update(0.5)
		if value > prev {
			t.Fatalf("ghost moved back up: %v -> %v", prev, value)
		}
		prev = value
	}
	if prev != 0.5 {
		t.Fatalf("ghost should have settled at 0.5, got %v", prev)
	}
	if bar.tween != nil {
		t.Fatal("finished tween should be cleared")
	}
}

func TestGhostBarRestartsOnFurtherDamage(t *testing.T) {
	bar := &ghostBar{value: 1, target: 1}

	for i := 0; i < 5; i++ {
		bar.update(0.75)
	}
	mid := bar.value
	if mid <= 0.75 || mid >= 1 {
		t.Fatalf("ghost should be mid-ease, got %v", mid)
	}

	// A second hit retargets the tween from the current ghost value.
	value := bar.update(0.25)
	if value >= mid {
		t.Fatalf("ghost should keep easing down after a retarget: %v", value)
	}
	if bar.target != 0.25 {
		t.Fatalf("tween target should follow the new health, got %v", bar.target)
	}
}

func TestGhostBarSnapsUp(t *testing.T) {
	bar := &ghostBar{value: 0.3, target: 0.3}

	if value := bar.update(0.9); value != 0.9 {
		t.Fatalf("ghost should snap up to a higher fraction, got %v", value)
	}
	if bar.tween != nil {
		t.Fatal("snapping up must not leave a tween running")
	}
}
