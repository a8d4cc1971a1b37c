package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-bastion-td/internal/config"
	"go-bastion-td/internal/input"
	"go-bastion-td/internal/render"
)

// spotPickRadius is how close a click must land to a build spot, in world
// units.
const spotPickRadius = 0.5

type buildSpot struct {
	pos   Vec2
	tower *Tower
}

// TowersManager owns the build spots and the towers on them, and handles
// the player's build, upgrade and sell clicks.
type TowersManager struct {
	coords      *render.CoordinateSystem
	player      *Player
	enemies     *EnemiesManager
	projectiles *ProjectilesManager
	spots       []*buildSpot
	selected    *Tower
	buildChoice string
}

func NewTowersManager(level *Level, coords *render.CoordinateSystem, player *Player, enemies *EnemiesManager, projectiles *ProjectilesManager) *TowersManager {
	spots := make([]*buildSpot, len(level.BuildSpots))
	for i, pos := range level.BuildSpots {
		spots[i] = &buildSpot{pos: pos}
	}
	return &TowersManager{
		coords:      coords,
		player:      player,
		enemies:     enemies,
		projectiles: projectiles,
		spots:       spots,
		buildChoice: towerHotkeys[0],
	}
}

// BuildChoice reports the tower type the next build click places.
func (m *TowersManager) BuildChoice() TowerDef {
	return TowerDefs[m.buildChoice]
}

// Selected returns the currently selected tower, or nil.
func (m *TowersManager) Selected() *Tower {
	return m.selected
}

func (m *TowersManager) Update(elapsed int64) {
	for _, s := range m.spots {
		if s.tower != nil {
			s.tower.Update(elapsed)
		}
	}
}

func (m *TowersManager) Render(r *render.Renderer) {
	scale := r.Coords().Scale()
	for _, s := range m.spots {
		if s.tower != nil {
			s.tower.Render(r)
			continue
		}
		sx, sy := r.Coords().ToScreen(s.pos.X, s.pos.Y)
		radius := float32(scale * 0.18)
		r.AddTask(render.PriorityBuildings, func(dst *ebiten.Image) {
			vector.StrokeCircle(dst, float32(sx), float32(sy), radius, 1, config.BuildSpotColor, true)
		})
	}
}

// ProcessInput handles build hotkeys and spot clicks. Consumed events were
// already claimed by the HUD and never reach here.
func (m *TowersManager) ProcessInput(ev *input.Event) {
	switch ev.Type {
	case input.TypeKeyPress:
		m.onKey(ev)
	case input.TypeMousePress:
		m.onClick(ev)
	}
}

func (m *TowersManager) onKey(ev *input.Event) {
	switch ev.Key {
	case input.Key1, input.Key2, input.Key3:
		m.buildChoice = towerHotkeys[int(ev.Key-input.Key1)]
		ev.Consume()
	case input.KeyEnter:
		if m.selected != nil {
			m.selected.CycleAim()
			ev.Consume()
		}
	}
}

func (m *TowersManager) onClick(ev *input.Event) {
	wx, wy := m.coords.ToWorld(ev.X, ev.Y)
	spot := m.spotAt(Vec2{wx, wy})
	if spot == nil {
		if ev.Button == input.MouseLeft {
			m.deselect()
		}
		return
	}
	switch ev.Button {
	case input.MouseLeft:
		m.leftClick(spot)
		ev.Consume()
	case input.MouseRight:
		m.rightClick(spot)
		ev.Consume()
	}
}

// leftClick builds on an empty spot, selects an occupied one, and upgrades
// a tower clicked while already selected.
func (m *TowersManager) leftClick(spot *buildSpot) {
	if spot.tower == nil {
		def := TowerDefs[m.buildChoice]
		if !m.player.SpendGold(def.Cost) {
			return
		}
		spot.tower = newTower(def, spot.pos, m.enemies, m.projectiles)
		m.selectTower(spot.tower)
		return
	}
	if spot.tower == m.selected {
		cost := spot.tower.UpgradeCost()
		if cost > 0 && m.player.SpendGold(cost) {
			spot.tower.Upgrade()
		}
		return
	}
	m.selectTower(spot.tower)
}

// rightClick sells the tower on the spot, refunding half its gold.
func (m *TowersManager) rightClick(spot *buildSpot) {
	if spot.tower == nil {
		return
	}
	if spot.tower == m.selected {
		m.deselect()
	}
	m.player.AddGold(spot.tower.SellValue())
	spot.tower = nil
}

func (m *TowersManager) spotAt(pos Vec2) *buildSpot {
	for _, s := range m.spots {
		if s.pos.Dist(pos) <= spotPickRadius {
			return s
		}
	}
	return nil
}

func (m *TowersManager) selectTower(t *Tower) {
	m.deselect()
	t.selected = true
	m.selected = t
}

func (m *TowersManager) deselect() {
	if m.selected != nil {
		m.selected.selected = false
		m.selected = nil
	}
}
