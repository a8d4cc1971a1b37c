// Package render implements the deferred paint pipeline: components enqueue
// priority-tagged paint actions during the render phase and the queue flushes
// them once per frame in a deterministic layer order, independent of the
// order the components ran in.
package render

// Priority is the draw layer of a queued paint action. Lower values paint
// first; within a layer, submission order is preserved.
type Priority int

const (
	PriorityTerrain Priority = iota
	PriorityBuildings
	PriorityProjectiles
	PriorityEntities
	PriorityUI
)

// String implements fmt.Stringer.
func (p Priority) String() string {
	switch p {
	case PriorityTerrain:
		return "terrain"
	case PriorityBuildings:
		return "buildings"
	case PriorityProjectiles:
		return "projectiles"
	case PriorityEntities:
		return "entities"
	case PriorityUI:
		return "ui"
	default:
		return "unknown"
	}
}
