// Command map_viewer_raylib shows the built-in level layout in a raylib
// window: the road, its waypoints, and every build spot. Handy for tuning
// level geometry without launching the game.
package main

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"go-bastion-td/internal/config"
	"go-bastion-td/internal/game"
	"go-bastion-td/internal/render"
)

const (
	screenWidth  = 1280
	screenHeight = 720
	minScale     = 10.0
	maxScale     = 120.0
)

func main() {
	level := game.DefaultLevel()

	rl.InitWindow(screenWidth, screenHeight, "Bastion Map Viewer | Mouse Wheel - Zoom")
	rl.SetTargetFPS(60)

	scale := config.TileSize

	for !rl.WindowShouldClose() {
		if wheel := rl.GetMouseWheelMove(); wheel != 0 {
			scale += float64(wheel) * 4
			if scale < minScale {
				scale = minScale
			}
			if scale > maxScale {
				scale = maxScale
			}
		}
		coords := render.NewCoordinateSystem(scale, screenWidth/2, screenHeight/2)

		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(20, 20, 30, 255))

		drawRoad(level, coords)
		drawSpots(level, coords)

		rl.DrawText(fmt.Sprintf("scale: %.0f px/unit", scale), 10, 10, 20, rl.White)
		rl.DrawText(fmt.Sprintf("road: %.1f units", level.RoadLength()), 10, 34, 20, rl.White)
		rl.DrawFPS(10, 58)
		rl.EndDrawing()
	}

	rl.CloseWindow()
}

func drawRoad(level *game.Level, coords *render.CoordinateSystem) {
	width := float32(coords.Scale() * 0.45)
	for i := 1; i < len(level.Waypoints); i++ {
		x0, y0 := coords.ToScreen(level.Waypoints[i-1].X, level.Waypoints[i-1].Y)
		x1, y1 := coords.ToScreen(level.Waypoints[i].X, level.Waypoints[i].Y)
		rl.DrawLineEx(
			rl.NewVector2(float32(x0), float32(y0)),
			rl.NewVector2(float32(x1), float32(y1)),
			width,
			rl.NewColor(70, 100, 120, 255),
		)
	}
	for i, wp := range level.Waypoints {
		x, y := coords.ToScreen(wp.X, wp.Y)
		clr := rl.Gold
		switch i {
		case 0:
			clr = rl.SkyBlue // spawn
		case len(level.Waypoints) - 1:
			clr = rl.Red // base
		}
		rl.DrawCircle(int32(x), int32(y), 5, clr)
	}
	sx, sy := coords.ToScreen(level.SpawnPoint().X, level.SpawnPoint().Y)
	rl.DrawText("spawn", int32(sx)+8, int32(sy)-20, 14, rl.SkyBlue)
}

func drawSpots(level *game.Level, coords *render.CoordinateSystem) {
	for _, spot := range level.BuildSpots {
		x, y := coords.ToScreen(spot.X, spot.Y)
		radius := float32(coords.Scale() * 0.18)
		rl.DrawCircleLines(int32(x), int32(y), radius, rl.Green)
	}
}
