package state

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-bastion-td/internal/config"
	"go-bastion-td/internal/engine"
	"go-bastion-td/internal/event"
	"go-bastion-td/internal/game"
	"go-bastion-td/internal/input"
	"go-bastion-td/internal/render"
)

// PlayingState owns one run: the world, its bus, and the engine loop that
// drives it. Ebiten's Update harvests device input; Draw runs the frame.
type PlayingState struct {
	machine  *StateMachine
	world    *game.World
	loop     *engine.Loop
	inputs   *input.Queue
	coords   *render.CoordinateSystem
	settings *config.Settings
	zoom     float64

	pauseRequested bool
	frameErr       error
}

// NewPlayingState builds a fresh run on the default level.
func NewPlayingState(machine *StateMachine, settings *config.Settings) (*PlayingState, error) {
	coords := render.NewCoordinateSystem(
		config.TileSize*settings.Zoom,
		float64(settings.ScreenWidth)/2,
		float64(settings.ScreenHeight)/2,
	)
	dispatcher := event.NewDispatcher()
	world, err := game.NewWorld(dispatcher, coords, game.DefaultLevel(), settings.ScreenWidth, settings.ScreenHeight)
	if err != nil {
		return nil, err
	}

	inputs := &input.Queue{}
	ps := &PlayingState{
		machine:  machine,
		world:    world,
		loop:     engine.NewLoop(world, render.NewRenderer(coords), inputs, config.MaxFrameDelta),
		inputs:   inputs,
		coords:   coords,
		settings: settings,
		zoom:     settings.Zoom,
	}
	if err := dispatcher.RegisterListener(ps, ps.onPauseRequested); err != nil {
		return nil, err
	}
	return ps, nil
}

func (s *PlayingState) EventListener() {}

func (s *PlayingState) onPauseRequested(ev *game.PauseRequestedEvent) {
	s.pauseRequested = true
}

func (s *PlayingState) Enter() {
	s.loop.Start()
}

func (s *PlayingState) Exit() {}

// Update harvests this tick's device input and handles the pause request
// raised during the previous frame.
func (s *PlayingState) Update() error {
	if s.frameErr != nil {
		return s.frameErr
	}
	harvestInput(s.inputs)
	s.harvestZoom()
	if s.pauseRequested {
		s.pauseRequested = false
		s.machine.SetState(newPauseState(s.machine, s))
	}
	return nil
}

// Draw runs one engine frame against the screen. A fatal frame is already
// logged and skipped by the loop; it stops the run on the next Update.
func (s *PlayingState) Draw(screen *ebiten.Image) {
	if err := s.loop.RunFrame(screen); err != nil {
		s.frameErr = err
	}
	if s.settings.Debug {
		ebitenutil.DebugPrintAt(screen,
			fmt.Sprintf("TPS %.0f FPS %.0f zoom %.1fx", ebiten.ActualTPS(), ebiten.ActualFPS(), s.zoom),
			4, s.settings.ScreenHeight-18)
	}
}

// harvestZoom turns mouse wheel movement into a staged rescale of the world
// transform. The new scale lands atomically at the next frame's flush.
func (s *PlayingState) harvestZoom() {
	_, wheel := ebiten.Wheel()
	if wheel == 0 {
		return
	}
	s.zoom *= 1 + wheel*0.1
	if s.zoom < 0.4 {
		s.zoom = 0.4
	}
	if s.zoom > 3 {
		s.zoom = 3
	}
	s.coords.Rescale(
		config.TileSize*s.zoom,
		float64(s.settings.ScreenWidth)/2,
		float64(s.settings.ScreenHeight)/2,
	)
}

// harvestInput translates ebiten's edge-triggered device state into the
// frontend-neutral events the world consumes.
func harvestInput(q *input.Queue) {
	keys := []struct {
		ebiten ebiten.Key
		code   input.Key
	}{
		{ebiten.KeyEscape, input.KeyEscape},
		{ebiten.KeyEnter, input.KeyEnter},
		{ebiten.KeySpace, input.KeySpace},
		{ebiten.KeyDigit1, input.Key1},
		{ebiten.KeyDigit2, input.Key2},
		{ebiten.KeyDigit3, input.Key3},
	}
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k.ebiten) {
			q.Push(&input.Event{Type: input.TypeKeyPress, Key: k.code})
		}
	}
	buttons := []struct {
		ebiten ebiten.MouseButton
		code   input.MouseButton
	}{
		{ebiten.MouseButtonLeft, input.MouseLeft},
		{ebiten.MouseButtonRight, input.MouseRight},
	}
	for _, b := range buttons {
		if inpututil.IsMouseButtonJustPressed(b.ebiten) {
			x, y := ebiten.CursorPosition()
			q.Push(&input.Event{
				Type:   input.TypeMousePress,
				Button: b.code,
				X:      float64(x),
				Y:      float64(y),
			})
		}
	}
}
