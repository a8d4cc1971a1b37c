package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-bastion-td/internal/component"
	"go-bastion-td/internal/config"
	"go-bastion-td/internal/render"
)

// Projectile homes in on a single enemy. It fizzles without effect when the
// target dies or breaches before impact.
type Projectile struct {
	pos    Vec2
	target *Enemy
	speed  float64
	damage int
	anim   *component.Animation
	done   bool
	hit    bool
}

func newProjectile(from Vec2, target *Enemy, speed float64, damage int) *Projectile {
	return &Projectile{
		pos:    from,
		target: target,
		speed:  speed,
		damage: damage,
		anim:   component.NewAnimation(int64(config.ProjectileFrameTime), config.ProjectileFrameCount, true),
	}
}

func (p *Projectile) Update(elapsed int64) {
	if p.done {
		return
	}
	if !p.target.Alive() || p.target.Breached() {
		p.done = true
		return
	}
	p.anim.Update(elapsed)
	step := p.target.Pos().Sub(p.pos)
	travel := p.speed * float64(elapsed) / 1e9
	if step.Len() <= travel+config.ProjectileHitRadius {
		p.pos = p.target.Pos()
		p.done = true
		p.hit = true
		return
	}
	p.pos = p.pos.Add(step.Norm().Scale(travel))
}

// Render enqueues the bolt with an animated pulse.
func (p *Projectile) Render(r *render.Renderer) {
	sx, sy := r.Coords().ToScreen(p.pos.X, p.pos.Y)
	pulse := 3.0 + float64(p.anim.Frame())
	r.AddTask(render.PriorityProjectiles, func(dst *ebiten.Image) {
		vector.DrawFilledCircle(dst, float32(sx), float32(sy), float32(pulse), config.ProjectileColor, true)
	})
}
