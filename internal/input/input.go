// Package input defines frontend-neutral input events and the per-frame
// queue the scheduler drains. The frontend (ebiten, in cmd/game) translates
// raw device state into these events between frames.
package input

// Type discriminates input events.
type Type int

const (
	TypeKeyPress Type = iota
	TypeMousePress
)

// Key is a frontend-neutral key code. Only the keys the game binds are
// enumerated.
type Key int

const (
	KeyNone Key = iota
	KeyEscape
	KeyEnter
	KeySpace
	Key1
	Key2
	Key3
)

// MouseButton identifies a mouse button press.
type MouseButton int

const (
	MouseNone MouseButton = iota
	MouseLeft
	MouseRight
)

// Event is a single input occurrence. Consumers must check Consumed before
// acting and call Consume to stop further propagation.
type Event struct {
	Type     Type
	Key      Key
	Button   MouseButton
	X, Y     float64 // screen pixels, mouse events only
	consumed bool
}

// Consume marks the event handled so later consumers ignore it.
func (e *Event) Consume() {
	e.consumed = true
}

// Consumed reports whether a prior consumer already handled the event.
func (e *Event) Consumed() bool {
	return e.consumed
}

// Queue collects events between frames. The scheduler drains it exactly once
// per frame, in arrival order.
type Queue struct {
	events []*Event
}

// Push appends an event.
func (q *Queue) Push(e *Event) {
	if e == nil {
		return
	}
	q.events = append(q.events, e)
}

// Drain returns all pending events and empties the queue.
func (q *Queue) Drain() []*Event {
	out := q.events
	q.events = nil
	return out
}

// Len returns the number of pending events.
func (q *Queue) Len() int {
	return len(q.events)
}
