package game

import (
	"fmt"

	"go-bastion-td/internal/event"
	"go-bastion-td/internal/render"
)

type enemyCreator func(waypoints []Vec2) *Enemy

// EnemiesManager owns every live enemy and turns deaths and breaches into
// events on the bus.
type EnemiesManager struct {
	dispatcher *event.Dispatcher
	creators   map[string]enemyCreator
	enemies    []*Enemy
}

func NewEnemiesManager(dispatcher *event.Dispatcher) *EnemiesManager {
	creators := make(map[string]enemyCreator, len(EnemyDefs))
	for id, def := range EnemyDefs {
		def := def
		creators[id] = func(waypoints []Vec2) *Enemy {
			return newEnemy(def, waypoints)
		}
	}
	return &EnemiesManager{dispatcher: dispatcher, creators: creators}
}

// Spawn creates an enemy of the given type at the road's first waypoint.
func (m *EnemiesManager) Spawn(typeID string, waypoints []Vec2) (*Enemy, error) {
	create, ok := m.creators[typeID]
	if !ok {
		return nil, fmt.Errorf("enemies: unknown enemy type %q", typeID)
	}
	e := create(waypoints)
	m.enemies = append(m.enemies, e)
	return e, nil
}

// Update moves every enemy and sweeps out the dead and the breached,
// announcing each removal on the bus. Announcements go out only after the
// compaction finishes so handlers reentering the manager see a consistent
// enemy list.
func (m *EnemiesManager) Update(elapsed int64) {
	kept := m.enemies[:0]
	var gone []event.Event
	for _, e := range m.enemies {
		e.Update(elapsed)
		switch {
		case !e.Alive():
			gone = append(gone, NewEnemyDiedEvent(m, e, e.def.Reward))
		case e.Breached():
			gone = append(gone, NewEnemyBreachedEvent(m, e, e.def.Damage))
		default:
			kept = append(kept, e)
		}
	}
	m.enemies = kept
	for _, ev := range gone {
		m.announce(ev)
	}
}

func (m *EnemiesManager) Render(r *render.Renderer) {
	for _, e := range m.enemies {
		e.Render(r)
	}
}

// AllDead reports whether no enemies remain on the field.
func (m *EnemiesManager) AllDead() bool {
	return len(m.enemies) == 0
}

func (m *EnemiesManager) Count() int {
	return len(m.enemies)
}

// InRange returns the live enemies within radius of center. Enemies killed
// or breached earlier in the frame but not yet swept are no targets.
func (m *EnemiesManager) InRange(center Vec2, radius float64) []*Enemy {
	var out []*Enemy
	for _, e := range m.enemies {
		if e.Alive() && !e.Breached() && e.pos.Dist(center) <= radius {
			out = append(out, e)
		}
	}
	return out
}

// announce dispatches an event; a failing handler is a contract breach,
// so it aborts the frame.
func (m *EnemiesManager) announce(ev event.Event) {
	if err := m.dispatcher.Dispatch(ev); err != nil {
		panic(err)
	}
}
