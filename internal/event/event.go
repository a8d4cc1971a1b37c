// Package event implements a typed publish/subscribe bus with covariant
// dispatch: an event reaches the handlers of its own kind and of every
// ancestor kind. Kinds form a single-rooted hierarchy declared with NewKind.
//
// The bus is not safe for concurrent use. Registration, unregistration and
// dispatch are expected to run on the game loop goroutine; a host embedding
// it elsewhere must serialize access externally.
package event

// Event is the root of the event hierarchy. Every dispatched value must be
// of a Go type bound to a kind (see NewKind and Bind) and should embed Base
// to carry its source.
type Event interface {
	// Source returns the object that emitted the event.
	Source() any
}

// Base carries the emitting object and is embedded by concrete event types.
type Base struct {
	source any
}

// NewBase builds the embeddable base of an event with the given source.
func NewBase(source any) Base {
	return Base{source: source}
}

// Source returns the object that emitted the event.
func (b Base) Source() any {
	return b.source
}

// Listener marks a type as capable of owning event handlers. The marker
// method has no behavior; it only distinguishes deliberate listeners from
// arbitrary objects at registration time.
type Listener interface {
	EventListener()
}
