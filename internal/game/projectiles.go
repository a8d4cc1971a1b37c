package game

import (
	"go-bastion-td/internal/event"
	"go-bastion-td/internal/render"
)

// ProjectilesManager owns every bolt in flight and reports impacts on the
// bus. Damage application happens in the hit listener, not here.
type ProjectilesManager struct {
	dispatcher  *event.Dispatcher
	projectiles []*Projectile
}

func NewProjectilesManager(dispatcher *event.Dispatcher) *ProjectilesManager {
	return &ProjectilesManager{dispatcher: dispatcher}
}

// Spawn launches a projectile from a tower toward its target.
func (m *ProjectilesManager) Spawn(from Vec2, target *Enemy, speed float64, damage int) {
	m.projectiles = append(m.projectiles, newProjectile(from, target, speed, damage))
}

// Update advances every bolt, then reports the impacts. Dispatch waits for
// the sweep to finish so hit handlers reentering the manager see a
// consistent projectile list.
func (m *ProjectilesManager) Update(elapsed int64) {
	kept := m.projectiles[:0]
	var hits []*ProjectileHitEvent
	for _, p := range m.projectiles {
		p.Update(elapsed)
		if p.hit {
			hits = append(hits, NewProjectileHitEvent(m, p.target, p.damage))
		}
		if !p.done {
			kept = append(kept, p)
		}
	}
	m.projectiles = kept
	for _, ev := range hits {
		if err := m.dispatcher.Dispatch(ev); err != nil {
			panic(err)
		}
	}
}

func (m *ProjectilesManager) Render(r *render.Renderer) {
	for _, p := range m.projectiles {
		p.Render(r)
	}
}

func (m *ProjectilesManager) Count() int {
	return len(m.projectiles)
}

// hitListener applies projectile damage to the struck enemy.
type hitListener struct{}

func (l *hitListener) EventListener() {}

func (l *hitListener) onProjectileHit(ev *ProjectileHitEvent) {
	ev.Target.Damage(ev.Damage)
}
