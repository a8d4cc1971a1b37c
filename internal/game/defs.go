package game

import (
	"image/color"
	"time"
)

// EnemyDef describes one enemy type. Speed is in world units per second.
type EnemyDef struct {
	ID     string
	Name   string
	Health int
	Speed  float64
	Radius float64
	Reward int
	Damage int
	Color  color.RGBA
}

// TowerDef describes one buildable tower type.
type TowerDef struct {
	ID              string
	Name            string
	Cost            int
	Range           float64
	Damage          int
	FireInterval    time.Duration
	ProjectileSpeed float64
	Color           color.RGBA
}

// EnemyDefs lists every spawnable enemy type, keyed by ID.
var EnemyDefs = map[string]EnemyDef{
	"pig": {
		ID:     "pig",
		Name:   "Pig",
		Health: 30,
		Speed:  1.6,
		Radius: 0.25,
		Reward: 8,
		Damage: 1,
		Color:  color.RGBA{R: 220, G: 120, B: 140, A: 255},
	},
	"wolf": {
		ID:     "wolf",
		Name:   "Wolf",
		Health: 18,
		Speed:  2.6,
		Radius: 0.2,
		Reward: 6,
		Damage: 1,
		Color:  color.RGBA{R: 130, G: 130, B: 150, A: 255},
	},
	"ogre": {
		ID:     "ogre",
		Name:   "Ogre",
		Health: 120,
		Speed:  0.9,
		Radius: 0.35,
		Reward: 25,
		Damage: 3,
		Color:  color.RGBA{R: 90, G: 160, B: 80, A: 255},
	},
}

// TowerDefs lists every buildable tower type, keyed by ID.
var TowerDefs = map[string]TowerDef{
	"arrow": {
		ID:              "arrow",
		Name:            "Arrow Tower",
		Cost:            40,
		Range:           2.8,
		Damage:          8,
		FireInterval:    600 * time.Millisecond,
		ProjectileSpeed: 7.0,
		Color:           color.RGBA{R: 180, G: 170, B: 90, A: 255},
	},
	"cannon": {
		ID:              "cannon",
		Name:            "Cannon Tower",
		Cost:            75,
		Range:           2.2,
		Damage:          24,
		FireInterval:    1500 * time.Millisecond,
		ProjectileSpeed: 4.5,
		Color:           color.RGBA{R: 110, G: 110, B: 120, A: 255},
	},
	"sniper": {
		ID:              "sniper",
		Name:            "Sniper Tower",
		Cost:            110,
		Range:           5.5,
		Damage:          45,
		FireInterval:    2500 * time.Millisecond,
		ProjectileSpeed: 12.0,
		Color:           color.RGBA{R: 90, G: 120, B: 190, A: 255},
	},
}

// towerHotkeys maps build hotkey slots to tower IDs, in HUD order.
var towerHotkeys = []string{"arrow", "cannon", "sniper"}
