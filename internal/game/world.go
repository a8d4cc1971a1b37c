package game

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-bastion-td/internal/component"
	"go-bastion-td/internal/config"
	"go-bastion-td/internal/event"
	"go-bastion-td/internal/input"
	"go-bastion-td/internal/render"
	"go-bastion-td/internal/ui"
)

// World is the root of the simulation. It owns every manager, wires the
// bus listeners, and fans the engine's update, render and input calls out
// to its members in a fixed order.
type World struct {
	dispatcher  *event.Dispatcher
	coords      *render.CoordinateSystem
	level       *Level
	player      *Player
	stats       *Statistics
	enemies     *EnemiesManager
	projectiles *ProjectilesManager
	towers      *TowersManager
	waves       *WaveManager
	hits        *hitListener
	hud         *ui.HUD
	terrainAnim *component.Animation
	speed       int64
	gameOver    bool
}

// NewWorld builds the full object graph for one run on the given level.
// width and height are the screen size in pixels the HUD anchors to.
func NewWorld(dispatcher *event.Dispatcher, coords *render.CoordinateSystem, level *Level, width, height int) (*World, error) {
	w := &World{
		dispatcher:  dispatcher,
		coords:      coords,
		level:       level,
		terrainAnim: component.NewAnimation(config.TerrainFrameTime, config.TerrainFrameCount, false),
		speed:       1,
	}
	w.player = NewPlayer(dispatcher)
	w.stats = NewStatistics()
	w.enemies = NewEnemiesManager(dispatcher)
	w.projectiles = NewProjectilesManager(dispatcher)
	w.towers = NewTowersManager(level, coords, w.player, w.enemies, w.projectiles)
	w.waves = NewWaveManager(dispatcher, w.enemies, level)
	w.hits = &hitListener{}

	hud, err := ui.NewHUD(width, height, w.player, w.waves, w.stats, w.infoLine, w.requestPause, w.toggleSpeed)
	if err != nil {
		return nil, err
	}
	w.hud = hud

	if err := w.registerListeners(); err != nil {
		return nil, err
	}
	return w, nil
}

func (w *World) registerListeners() error {
	if err := w.dispatcher.RegisterListener(w.player, w.player.onEnemyDied, w.player.onEnemyBreached); err != nil {
		return err
	}
	if err := w.dispatcher.RegisterListener(w.stats, w.stats.onEnemyEvent, w.stats.onWaveEnded); err != nil {
		return err
	}
	if err := w.dispatcher.RegisterListener(w.hits, w.hits.onProjectileHit); err != nil {
		return err
	}
	return w.dispatcher.RegisterListener(w, w.onWaveStarted, w.onGameOver)
}

func (w *World) EventListener() {}

// onWaveStarted restarts the terrain shimmer, a small visual cue that the
// road is live again.
func (w *World) onWaveStarted(ev *WaveStartedEvent) {
	w.terrainAnim.Reset()
}

func (w *World) onGameOver(ev *GameOverEvent) {
	w.gameOver = true
	log.Printf("game over: waves cleared %d, kills %d", w.stats.WavesCleared(), w.stats.Kills())
}

func (w *World) Player() *Player          { return w.player }
func (w *World) Stats() *Statistics       { return w.stats }
func (w *World) Waves() *WaveManager      { return w.waves }
func (w *World) Enemies() *EnemiesManager { return w.enemies }

// Update advances the whole simulation by elapsed nanoseconds, scaled by
// the speed toggle. A finished game freezes in place but keeps rendering.
func (w *World) Update(elapsed int64) {
	if w.gameOver {
		return
	}
	elapsed *= w.speed
	w.projectiles.Update(elapsed)
	w.towers.Update(elapsed)
	w.waves.Update(elapsed)
	w.enemies.Update(elapsed)
	w.terrainAnim.Update(elapsed)
}

// Render enqueues every layer. Order here does not matter; the pipeline
// sorts by priority at flush.
func (w *World) Render(r *render.Renderer) {
	w.renderTerrain(r)
	w.towers.Render(r)
	w.enemies.Render(r)
	w.projectiles.Render(r)
	w.hud.Render(r)
}

func (w *World) renderTerrain(r *render.Renderer) {
	coords := r.Coords()
	scale := coords.Scale()
	waypoints := w.level.Waypoints
	// Road brightens briefly after a wave starts, then settles.
	glow := uint8(0)
	if !w.terrainAnim.Ended() {
		glow = uint8((config.TerrainFrameCount - w.terrainAnim.Frame()) * 8)
	}
	r.AddTask(render.PriorityTerrain, func(dst *ebiten.Image) {
		dst.Fill(config.BackgroundColor)
		road := config.RoadColor
		road.R += glow
		road.G += glow
		width := float32(scale * 0.45)
		for i := 1; i < len(waypoints); i++ {
			x0, y0 := coords.ToScreen(waypoints[i-1].X, waypoints[i-1].Y)
			x1, y1 := coords.ToScreen(waypoints[i].X, waypoints[i].Y)
			vector.StrokeLine(dst, float32(x0), float32(y0), float32(x1), float32(y1), width, road, true)
		}
	})
}

// ProcessInput offers each event to the HUD first, then to the towers,
// and finally to the world-level bindings.
func (w *World) ProcessInput(ev *input.Event) {
	w.hud.ProcessInput(ev)
	if ev.Consumed() {
		return
	}
	w.towers.ProcessInput(ev)
	if ev.Consumed() {
		return
	}
	if ev.Type != input.TypeKeyPress {
		return
	}
	switch ev.Key {
	case input.KeyEscape:
		w.requestPause()
		ev.Consume()
	case input.KeySpace:
		w.waves.StartWave()
		ev.Consume()
	}
}

func (w *World) requestPause() {
	if err := w.dispatcher.Dispatch(NewPauseRequestedEvent(w)); err != nil {
		panic(err)
	}
}

// toggleSpeed flips simulation speed between 1x and 2x.
func (w *World) toggleSpeed() string {
	if w.speed == 1 {
		w.speed = 2
	} else {
		w.speed = 1
	}
	return fmt.Sprintf("%dx", w.speed)
}

func (w *World) infoLine() string {
	if t := w.towers.Selected(); t != nil {
		line := fmt.Sprintf("%s lv%d  aim: %s (enter to change)  sell: %dg",
			t.Def().Name, t.Level(), t.AimName(), t.SellValue())
		if cost := t.UpgradeCost(); cost > 0 {
			line += fmt.Sprintf("  upgrade: %dg (click again)", cost)
		}
		return line
	}
	def := w.towers.BuildChoice()
	return fmt.Sprintf("Build: %s (%dg)  keys 1-3 switch", def.Name, def.Cost)
}

// Teardown drops every bus registration made for this run.
func (w *World) Teardown() {
	w.dispatcher.UnregisterAll()
}
