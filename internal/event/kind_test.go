package event

import "testing"

func TestKindAncestry(t *testing.T) {
	if kindUrgent.Parent() != kindNote {
		t.Errorf("urgent parent = %v, want %v", kindUrgent.Parent(), kindNote)
	}
	if kindNote.Parent() != Any {
		t.Errorf("note parent = %v, want root", kindNote.Parent())
	}
	if !kindUrgent.Is(kindNote) || !kindUrgent.Is(Any) || !kindUrgent.Is(kindUrgent) {
		t.Error("urgent should be itself, a note, and an event")
	}
	if kindNote.Is(kindUrgent) {
		t.Error("an ancestor must not report being its descendant")
	}
}

func TestKindOf(t *testing.T) {
	if got := KindOf(newPlain("x")); got != kindNote {
		t.Errorf("KindOf(plain) = %v, want %v", got, kindNote)
	}
	if got := KindOf(newUrgent("x")); got != kindUrgent {
		t.Errorf("KindOf(urgent) = %v, want %v", got, kindUrgent)
	}
	if got := KindOf(&strayEvent{}); got != nil {
		t.Errorf("KindOf(unbound) = %v, want nil", got)
	}
	if got := KindOf(nil); got != nil {
		t.Errorf("KindOf(nil) = %v, want nil", got)
	}
}

func TestNewKindRejectsConcreteParent(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewKind must panic when the parent kind is carried by a concrete type")
		}
	}()
	NewKind[*urgentNote]("note.urgent.worse", kindUrgent)
}
