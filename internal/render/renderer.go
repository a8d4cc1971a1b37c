package render

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Renderer is the paint handle passed to renderable components. It owns the
// deferred queue and the world coordinate system; components submit tasks
// through it during the render phase and the scheduler flushes it exactly
// once per frame.
type Renderer struct {
	queue  Queue
	coords *CoordinateSystem
}

// NewRenderer creates a renderer around the given world coordinate system.
func NewRenderer(coords *CoordinateSystem) *Renderer {
	return &Renderer{coords: coords}
}

// AddTask enqueues a deferred paint action on the given layer.
func (r *Renderer) AddTask(priority Priority, paint PaintFunc) {
	r.queue.Add(priority, paint)
}

// Coords returns the world coordinate system used by paint closures.
func (r *Renderer) Coords() *CoordinateSystem {
	return r.coords
}

// Pending returns the number of queued tasks. Zero at the start of every
// render phase.
func (r *Renderer) Pending() int {
	return r.queue.Len()
}

// Flush commits any staged coordinate change and drains the queue in
// priority order. The queue is empty afterwards even when a paint action
// fails.
func (r *Renderer) Flush(dst *ebiten.Image) error {
	r.coords.commit()
	return r.queue.Flush(dst)
}

// Clear drops all queued tasks. Used by the scheduler after a failed frame
// so the next render phase starts from an empty queue.
func (r *Renderer) Clear() {
	r.queue.Clear()
}
