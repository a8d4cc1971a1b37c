// Package state holds the ebiten-facing screens (menu, playing, pause) and
// the machine that switches between them. The playing state is the bridge
// between ebiten's Update/Draw split and the engine's frame loop.
package state

import "github.com/hajimehoshi/ebiten/v2"

// State is one screen of the application.
type State interface {
	Enter()
	Update() error
	Draw(screen *ebiten.Image)
	Exit()
}

// StateMachine runs exactly one state at a time.
type StateMachine struct {
	current State
}

func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState exits the current state and enters the next one.
func (m *StateMachine) SetState(next State) {
	if m.current != nil {
		m.current.Exit()
	}
	m.current = next
	if m.current != nil {
		m.current.Enter()
	}
}

func (m *StateMachine) Update() error {
	if m.current == nil {
		return nil
	}
	return m.current.Update()
}

func (m *StateMachine) Draw(screen *ebiten.Image) {
	if m.current != nil {
		m.current.Draw(screen)
	}
}
