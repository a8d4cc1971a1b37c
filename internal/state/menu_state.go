package state

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-bastion-td/internal/config"
	"go-bastion-td/internal/ui"
)

// MenuState is the title screen. Enter or a click starts a run.
type MenuState struct {
	machine  *StateMachine
	settings *config.Settings
	face     font.Face
	startErr error
}

func NewMenuState(machine *StateMachine, settings *config.Settings) (*MenuState, error) {
	face, err := ui.NewFace(2 * config.HUDFontSize)
	if err != nil {
		return nil, fmt.Errorf("menu: load font: %w", err)
	}
	return &MenuState{machine: machine, settings: settings, face: face}, nil
}

func (s *MenuState) Enter() {}
func (s *MenuState) Exit()  {}

func (s *MenuState) Update() error {
	if s.startErr != nil {
		return s.startErr
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		playing, err := NewPlayingState(s.machine, s.settings)
		if err != nil {
			s.startErr = err
			return err
		}
		s.machine.SetState(playing)
	}
	return nil
}

func (s *MenuState) Draw(screen *ebiten.Image) {
	w, h := s.settings.ScreenWidth, s.settings.ScreenHeight
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), config.BackgroundColor, false)
	lines := []string{"BASTION", "enter or click to play"}
	y := h/2 - 40
	for _, line := range lines {
		bounds := text.BoundString(s.face, line)
		text.Draw(screen, line, s.face, (w-bounds.Dx())/2, y, config.TextColor)
		y += 48
	}
}
