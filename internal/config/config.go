// Package config holds gameplay constants and window settings.
package config

import (
	"image/color"
	"time"
)

const (
	ScreenWidth  = 1280
	ScreenHeight = 720

	// TileSize is the default scale: screen pixels per world unit.
	TileSize = 40.0

	// MaxFrameDelta clamps the measured frame delta so a debugger stop or
	// window drag does not become a simulation jump.
	MaxFrameDelta = int64(100 * time.Millisecond)

	BaseHealth   = 20
	StartingGold = 120

	BuildPhaseDuration = int64(15 * time.Second)

	EnemySpawnJitter = int64(200 * time.Millisecond)

	ProjectileFrameTime  = int64(80 * time.Millisecond)
	ProjectileFrameCount = 4
	ProjectileHitRadius  = 0.2 // world units

	TerrainFrameTime  = int64(250 * time.Millisecond)
	TerrainFrameCount = 6

	HUDFontSize  = 16.0
	HUDMargin    = 12.0
	ButtonRadius = 14.0
)

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	RoadColor       = color.RGBA{70, 100, 120, 220}
	BuildSpotColor  = color.RGBA{60, 70, 60, 255}
	TowerColor      = color.RGBA{120, 180, 220, 255}
	TowerRangeColor = color.RGBA{120, 180, 220, 40}
	EnemyColor      = color.RGBA{200, 90, 80, 255}
	HealthBarColor  = color.RGBA{90, 200, 90, 255}
	ProjectileColor = color.RGBA{240, 220, 120, 255}
	TextColor       = color.RGBA{230, 230, 230, 255}
	PanelColor      = color.RGBA{0, 0, 0, 160}
)
