package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-bastion-td/internal/config"
)

// pauseState keeps the frozen world on screen by stepping the run's loop
// with zero elapsed time.
type pauseState struct {
	machine *StateMachine
	playing *PlayingState
}

func newPauseState(machine *StateMachine, playing *PlayingState) *pauseState {
	return &pauseState{machine: machine, playing: playing}
}

func (s *pauseState) Enter() {}
func (s *pauseState) Exit()  {}

func (s *pauseState) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.machine.SetState(s.playing)
	}
	return nil
}

func (s *pauseState) Draw(screen *ebiten.Image) {
	if err := s.playing.loop.Step(screen, 0); err != nil {
		s.playing.frameErr = err
		return
	}
	ebitenutil.DebugPrintAt(screen, "PAUSED - esc to resume", config.ScreenWidth/2-60, config.ScreenHeight/2)
}
