package event

import (
	"fmt"
	"reflect"
)

// registration is one occupied slot: a handler function owned by a listener,
// declared for a single kind.
type registration struct {
	owner Listener
	fn    reflect.Value
	fnPtr uintptr
	param reflect.Type
}

// Dispatcher routes events to the handlers registered for their kind or any
// ancestor of it. The zero value is not usable; create one with
// NewDispatcher.
type Dispatcher struct {
	slots map[*Kind][]registration
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		slots: make(map[*Kind][]registration),
	}
}

// RegisterListener validates the given handler functions and indexes them by
// their declared kind, derived from the parameter type. A handler must be a
// function taking exactly one parameter whose type is bound to a kind (the
// Event interface binds to the root) and returning nothing; otherwise the
// whole call fails with ErrInvalidHandler and nothing is registered.
// Registering the same (listener, handler) pair twice occupies one slot.
func (d *Dispatcher) RegisterListener(listener Listener, handlers ...any) error {
	if listener == nil {
		return fmt.Errorf("%w: listener is nil", ErrInvalidArgument)
	}

	// Validate every handler before touching the table so a malformed one
	// cannot leave the listener half registered.
	kinds := make([]*Kind, len(handlers))
	regs := make([]registration, len(handlers))
	for i, h := range handlers {
		kind, reg, err := validateHandler(listener, h)
		if err != nil {
			return err
		}
		kinds[i] = kind
		regs[i] = reg
	}

	for i, reg := range regs {
		if d.occupied(kinds[i], reg) {
			continue
		}
		d.slots[kinds[i]] = append(d.slots[kinds[i]], reg)
	}
	return nil
}

// UnregisterListener removes every slot owned by the listener. Unregistering
// a listener that was never registered is a no-op, not an error.
func (d *Dispatcher) UnregisterListener(listener Listener) error {
	if listener == nil {
		return fmt.Errorf("%w: listener is nil", ErrInvalidArgument)
	}
	for kind, regs := range d.slots {
		kept := regs[:0]
		for _, reg := range regs {
			if reg.owner != listener {
				kept = append(kept, reg)
			}
		}
		if len(kept) == 0 {
			delete(d.slots, kind)
		} else {
			d.slots[kind] = kept
		}
	}
	return nil
}

// UnregisterAll clears the whole subscription table. Used on context
// teardown.
func (d *Dispatcher) UnregisterAll() {
	d.slots = make(map[*Kind][]registration)
}

// Dispatch synchronously invokes, on the calling goroutine, every handler
// whose declared kind is the event's kind or an ancestor of it. Dispatch
// halts on the first handler failure and returns a *HandlerInvocationError
// wrapping the cause; no ordering is guaranteed beyond walking the ancestor
// chain from the concrete kind to the root.
func (d *Dispatcher) Dispatch(ev Event) error {
	if ev == nil {
		return fmt.Errorf("%w: event is nil", ErrInvalidArgument)
	}
	kind := KindOf(ev)
	if kind == nil {
		return fmt.Errorf("%w: event type %T is not bound to a kind", ErrInvalidArgument, ev)
	}
	arg := reflect.ValueOf(ev)
	for cur := kind; cur != nil; cur = cur.parent {
		for _, reg := range d.slots[cur] {
			if err := invoke(cur, reg, arg); err != nil {
				return err
			}
		}
	}
	return nil
}

// occupied reports whether the (listener, handler) pair already holds the
// slot for the kind.
func (d *Dispatcher) occupied(kind *Kind, reg registration) bool {
	for _, cur := range d.slots[kind] {
		if cur.owner == reg.owner && cur.fnPtr == reg.fnPtr {
			return true
		}
	}
	return false
}

// validateHandler checks the handler shape and derives its declared kind.
func validateHandler(owner Listener, handler any) (*Kind, registration, error) {
	if handler == nil {
		return nil, registration{}, fmt.Errorf("%w: handler is nil", ErrInvalidHandler)
	}
	fn := reflect.ValueOf(handler)
	t := fn.Type()
	if t.Kind() != reflect.Func {
		return nil, registration{}, fmt.Errorf("%w: %s is not a function", ErrInvalidHandler, t)
	}
	if t.NumIn() != 1 {
		return nil, registration{}, fmt.Errorf("%w: must take exactly one parameter, %s takes %d",
			ErrInvalidHandler, t, t.NumIn())
	}
	if t.NumOut() != 0 {
		return nil, registration{}, fmt.Errorf("%w: must not return values, %s returns %d",
			ErrInvalidHandler, t, t.NumOut())
	}
	kind := kindOfType(t.In(0))
	if kind == nil {
		return nil, registration{}, fmt.Errorf("%w: parameter type %s is not bound to an event kind",
			ErrInvalidHandler, t.In(0))
	}
	return kind, registration{owner: owner, fn: fn, fnPtr: fn.Pointer(), param: t.In(0)}, nil
}

// invoke calls one handler, converting a panic into a wrapped error.
func invoke(kind *Kind, reg registration, arg reflect.Value) (err error) {
	if !arg.Type().AssignableTo(reg.param) {
		return &HandlerInvocationError{
			Kind:  kind,
			cause: fmt.Errorf("event value %s is not assignable to handler parameter %s", arg.Type(), reg.param),
		}
	}
	defer func() {
		if r := recover(); r != nil {
			cause, ok := r.(error)
			if !ok {
				cause = fmt.Errorf("%v", r)
			}
			err = &HandlerInvocationError{Kind: kind, cause: cause}
		}
	}()
	reg.fn.Call([]reflect.Value{arg})
	return nil
}
