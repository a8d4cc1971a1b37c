package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-bastion-td/internal/config"
	"go-bastion-td/internal/render"
)

const towerMaxLevel = 3

// Tower sits on a build spot and fires at enemies in range, at most one
// shot per fire interval.
type Tower struct {
	def         TowerDef
	pos         Vec2
	level       int
	cooldown    int64
	aimIndex    int
	enemies     *EnemiesManager
	projectiles *ProjectilesManager
	selected    bool
}

func newTower(def TowerDef, pos Vec2, enemies *EnemiesManager, projectiles *ProjectilesManager) *Tower {
	return &Tower{
		def:         def,
		pos:         pos,
		level:       1,
		enemies:     enemies,
		projectiles: projectiles,
	}
}

func (t *Tower) Def() TowerDef { return t.def }
func (t *Tower) Pos() Vec2     { return t.pos }
func (t *Tower) Level() int    { return t.level }

// Damage grows with each upgrade.
func (t *Tower) Damage() int {
	return t.def.Damage * t.level
}

// Range grows slightly with each upgrade.
func (t *Tower) Range() float64 {
	return t.def.Range * (1 + 0.15*float64(t.level-1))
}

// UpgradeCost returns the gold needed for the next level, or 0 when maxed.
func (t *Tower) UpgradeCost() int {
	if t.level >= towerMaxLevel {
		return 0
	}
	return t.def.Cost * t.level
}

func (t *Tower) Upgrade() {
	if t.level < towerMaxLevel {
		t.level++
	}
}

// SellValue refunds roughly half of what went into the tower.
func (t *Tower) SellValue() int {
	spent := 0
	for lvl := 1; lvl <= t.level; lvl++ {
		spent += t.def.Cost * lvl
	}
	return spent / 2
}

// AimName reports the tower's current targeting mode.
func (t *Tower) AimName() string {
	return aimModes[t.aimIndex].Name
}

// CycleAim switches to the next targeting mode in the rotation.
func (t *Tower) CycleAim() {
	t.aimIndex = (t.aimIndex + 1) % len(aimModes)
}

// Update counts down the cooldown and fires once it expires and a target
// is in range. The cooldown carries its overshoot into the next shot so
// the fire rate stays steady across uneven frames.
func (t *Tower) Update(elapsed int64) {
	t.cooldown -= elapsed
	if t.cooldown > 0 {
		return
	}
	target := pickTarget(t.enemies.InRange(t.pos, t.Range()), aimModes[t.aimIndex].Prefer)
	if target == nil {
		t.cooldown = 0
		return
	}
	t.projectiles.Spawn(t.pos, target, t.def.ProjectileSpeed, t.Damage())
	t.cooldown += int64(t.def.FireInterval)
}

// Render enqueues the tower body and, when selected, its range ring.
func (t *Tower) Render(r *render.Renderer) {
	sx, sy := r.Coords().ToScreen(t.pos.X, t.pos.Y)
	scale := r.Coords().Scale()
	size := float32(scale * 0.5)
	clr := t.def.Color
	level := t.level
	selected := t.selected
	rangePx := float32(t.Range() * scale)
	r.AddTask(render.PriorityBuildings, func(dst *ebiten.Image) {
		if selected {
			vector.StrokeCircle(dst, float32(sx), float32(sy), rangePx, 1, config.TowerRangeColor, true)
		}
		vector.DrawFilledRect(dst, float32(sx)-size/2, float32(sy)-size/2, size, size, clr, false)
		for i := 0; i < level; i++ {
			px := float32(sx) - size/2 + 3 + float32(i)*5
			vector.DrawFilledRect(dst, px, float32(sy)+size/2-5, 3, 3, config.TextColor, false)
		}
	})
}
