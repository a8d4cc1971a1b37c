package event

import (
	"fmt"
	"reflect"
)

// Kind identifies a node in the event hierarchy. Each kind is tied to the Go
// type that carries it: an interface for kinds that have descendants, a
// concrete event type for leaves. The tie lets the dispatcher derive the
// declared kind of a handler from its parameter type and guarantees that a
// descendant event value is always assignable to an ancestor handler's
// parameter.
type Kind struct {
	name   string
	parent *Kind
	goType reflect.Type
}

var eventInterface = reflect.TypeOf((*Event)(nil)).Elem()

// Any is the root kind, carried by the Event interface itself. Handlers
// declared with an Event parameter receive every dispatched event.
var Any = &Kind{name: "event", goType: eventInterface}

// kindsByType maps carrier Go types to their kinds. Populated at package
// init time by NewKind and Bind; read-only afterwards.
var kindsByType = map[reflect.Type]*Kind{
	eventInterface: Any,
}

// NewKind declares a kind named name, carried by T and specializing parent
// (nil means the root). Intended to be called from package-level var
// declarations; it panics on a malformed hierarchy because that is a
// programming error, not a runtime condition:
//   - T must implement Event,
//   - T must be assignable to the parent's carrier type,
//   - a parent with descendants must be carried by an interface,
//   - a carrier type can be bound only once.
func NewKind[T Event](name string, parent *Kind) *Kind {
	t := reflect.TypeOf((*T)(nil)).Elem()
	if parent == nil {
		parent = Any
	}
	if parent.goType.Kind() != reflect.Interface {
		panic(fmt.Sprintf("event: kind %q cannot specialize %q: ancestor kinds must be carried by interface types, %s is not",
			name, parent.name, parent.goType))
	}
	if !t.AssignableTo(parent.goType) {
		panic(fmt.Sprintf("event: kind %q carrier %s is not assignable to parent %q carrier %s",
			name, t, parent.name, parent.goType))
	}
	if prev, ok := kindsByType[t]; ok {
		panic(fmt.Sprintf("event: carrier %s already bound to kind %q", t, prev.name))
	}
	k := &Kind{name: name, parent: parent, goType: t}
	kindsByType[t] = k
	return k
}

// Bind associates an additional concrete carrier type with an existing kind,
// giving an interface-carried kind a directly dispatchable form. Panics
// under the same conditions as NewKind.
func Bind[T Event](k *Kind) *Kind {
	t := reflect.TypeOf((*T)(nil)).Elem()
	if !t.AssignableTo(k.goType) {
		panic(fmt.Sprintf("event: carrier %s is not assignable to kind %q carrier %s", t, k.name, k.goType))
	}
	if prev, ok := kindsByType[t]; ok {
		panic(fmt.Sprintf("event: carrier %s already bound to kind %q", t, prev.name))
	}
	kindsByType[t] = k
	return k
}

// Name returns the hierarchical name of the kind.
func (k *Kind) Name() string {
	return k.name
}

// Parent returns the kind this kind specializes, or nil for the root.
func (k *Kind) Parent() *Kind {
	return k.parent
}

// Is reports whether k equals other or descends from it.
func (k *Kind) Is(other *Kind) bool {
	for cur := k; cur != nil; cur = cur.parent {
		if cur == other {
			return true
		}
	}
	return false
}

// String implements fmt.Stringer.
func (k *Kind) String() string {
	return k.name
}

// KindOf returns the kind of a dispatched event value, or nil if its Go type
// was never bound.
func KindOf(ev Event) *Kind {
	if ev == nil {
		return nil
	}
	return kindsByType[reflect.TypeOf(ev)]
}

// kindOfType resolves a handler parameter type to its declared kind, or nil.
func kindOfType(t reflect.Type) *Kind {
	return kindsByType[t]
}
