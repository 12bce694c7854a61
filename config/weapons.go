package config

import "image/color"

// WeaponClass groups weapons by how they deal damage.
type WeaponClass int

const (
	ClassBlunt WeaponClass = iota
	ClassEdge
	ClassRange
)

// WeaponSpec is an immutable combat stat block. Fighters hold a shared,
// read-only pointer into the catalog; specs are never mutated after init.
type WeaponSpec struct {
	Key       string
	Name      string
	Class     WeaponClass
	Range     float64 // hitbox reach from the facing edge, in world units
	Speed     int     // attack duration in ticks; the hit frame is Speed/2
	Cooldown  int     // ticks before another attack may start
	Damage    int     // HP removed per landed hit
	Knockback float64 // horizontal speed imparted to the victim
	Color     color.RGBA
}

// DefaultWeaponKey is the canonical fallback every unknown key resolves to.
const DefaultWeaponKey = "fists"

var weapons map[string]*WeaponSpec

// weaponOrder fixes the menu and catalog iteration order.
var weaponOrder = []string{"fists", "dagger", "sword", "spear", "hammer", "bow"}

func init() {
	weapons = map[string]*WeaponSpec{
		"fists": {
			Key:       "fists",
			Name:      "Fists",
			Class:     ClassBlunt,
			Range:     50,
			Speed:     12,
			Cooldown:  18,
			Damage:    1,
			Knockback: 10,
			Color:     Yellow,
		},
		"dagger": {
			Key:       "dagger",
			Name:      "Dagger",
			Class:     ClassEdge,
			Range:     55,
			Speed:     10,
			Cooldown:  14,
			Damage:    1,
			Knockback: 6,
			Color:     Steel,
		},
		"sword": {
			Key:       "sword",
			Name:      "Sword",
			Class:     ClassEdge,
			Range:     80,
			Speed:     16,
			Cooldown:  24,
			Damage:    2,
			Knockback: 8,
			Color:     LightBlue,
		},
		"spear": {
			Key:       "spear",
			Name:      "Spear",
			Class:     ClassEdge,
			Range:     110,
			Speed:     20,
			Cooldown:  30,
			Damage:    2,
			Knockback: 9,
			Color:     BrightGreen,
		},
		"hammer": {
			Key:       "hammer",
			Name:      "War Hammer",
			Class:     ClassBlunt,
			Range:     70,
			Speed:     26,
			Cooldown:  40,
			Damage:    5,
			Knockback: 14,
			Color:     Orange,
		},
		"bow": {
			Key:       "bow",
			Name:      "Bow",
			Class:     ClassRange,
			Range:     220,
			Speed:     22,
			Cooldown:  36,
			Damage:    3,
			Knockback: 6,
			Color:     Purple,
		},
	}
}

// Weapon resolves a key to its spec. Unknown keys fall back to fists;
// the permissive default is deliberate policy, not an error path.
func Weapon(key string) *WeaponSpec {
	if w, ok := weapons[key]; ok {
		return w
	}
	return weapons[DefaultWeaponKey]
}

// WeaponKeys returns the catalog keys in menu order.
func WeaponKeys() []string {
	keys := make([]string, len(weaponOrder))
	copy(keys, weaponOrder)
	return keys
}
