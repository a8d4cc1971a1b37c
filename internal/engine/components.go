// Package engine drives the frame cadence: input, update, render, flush,
// present. It consumes gameplay objects through three narrow capability
// contracts and knows nothing about their content.
package engine

import (
	"go-bastion-td/internal/input"
	"go-bastion-td/internal/render"
)

// Updatable advances simulation state. Elapsed is the non-negative number of
// nanoseconds since the previous update; implementations must tolerate
// varying intervals and an explicit zero (pause).
type Updatable interface {
	Update(elapsed int64)
}

// Renderable submits deferred paint actions. Implementations may only call
// Renderer.AddTask; painting synchronously breaks the frame's draw order.
type Renderable interface {
	Render(r *render.Renderer)
}

// InputConsuming reacts to input events. Implementations must check
// Consumed before acting and may Consume an event to halt propagation.
type InputConsuming interface {
	ProcessInput(ev *input.Event)
}

// Root is the active gameplay object the loop drives each frame.
type Root interface {
	Updatable
	Renderable
	InputConsuming
}
