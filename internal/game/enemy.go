package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-bastion-td/internal/config"
	"go-bastion-td/internal/render"
)

// Enemy walks the level's waypoints toward the player's base.
type Enemy struct {
	def       EnemyDef
	waypoints []Vec2
	pos       Vec2
	next      int
	health    int
}

func newEnemy(def EnemyDef, waypoints []Vec2) *Enemy {
	return &Enemy{
		def:       def,
		waypoints: waypoints,
		pos:       waypoints[0],
		next:      1,
		health:    def.Health,
	}
}

func (e *Enemy) Def() EnemyDef { return e.def }
func (e *Enemy) Pos() Vec2     { return e.pos }
func (e *Enemy) Health() int   { return e.health }

// Alive reports whether the enemy still has health left.
func (e *Enemy) Alive() bool {
	return e.health > 0
}

// Breached reports whether the enemy walked past the last waypoint.
func (e *Enemy) Breached() bool {
	return e.next >= len(e.waypoints)
}

// Damage reduces health, flooring at zero.
func (e *Enemy) Damage(amount int) {
	e.health -= amount
	if e.health < 0 {
		e.health = 0
	}
}

// Update advances the enemy along the road. One tick can cross several
// waypoints when the elapsed time is large.
func (e *Enemy) Update(elapsed int64) {
	dist := e.def.Speed * float64(elapsed) / 1e9
	for dist > 0 && !e.Breached() {
		target := e.waypoints[e.next]
		step := target.Sub(e.pos)
		if step.Len() <= dist {
			dist -= step.Len()
			e.pos = target
			e.next++
			continue
		}
		e.pos = e.pos.Add(step.Norm().Scale(dist))
		dist = 0
	}
}

// RemainingDistance is the walking distance left to the base. Lower means
// further along the road; the first-target aim strategy minimizes it.
func (e *Enemy) RemainingDistance() float64 {
	if e.Breached() {
		return 0
	}
	total := e.pos.Dist(e.waypoints[e.next])
	for i := e.next + 1; i < len(e.waypoints); i++ {
		total += e.waypoints[i].Dist(e.waypoints[i-1])
	}
	return total
}

// Render enqueues the enemy body and its health bar.
func (e *Enemy) Render(r *render.Renderer) {
	sx, sy := r.Coords().ToScreen(e.pos.X, e.pos.Y)
	radius := e.def.Radius * r.Coords().Scale()
	frac := float64(e.health) / float64(e.def.Health)
	clr := e.def.Color
	r.AddTask(render.PriorityEntities, func(dst *ebiten.Image) {
		vector.DrawFilledCircle(dst, float32(sx), float32(sy), float32(radius), clr, true)
		barW := float32(radius * 2)
		barY := float32(sy - radius - 6)
		vector.DrawFilledRect(dst, float32(sx)-barW/2, barY, barW, 3, config.PanelColor, false)
		vector.DrawFilledRect(dst, float32(sx)-barW/2, barY, barW*float32(frac), 3, config.HealthBarColor, false)
	})
}
