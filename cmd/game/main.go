package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"go-bastion-td/internal/config"
	"go-bastion-td/internal/state"
)

// app adapts the state machine to ebiten's Game interface.
type app struct {
	machine  *state.StateMachine
	settings config.Settings
}

func (a *app) Update() error {
	return a.machine.Update()
}

func (a *app) Draw(screen *ebiten.Image) {
	a.machine.Draw(screen)
}

func (a *app) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.settings.ScreenWidth, a.settings.ScreenHeight
}

func main() {
	settings, err := config.LoadSettings()
	if err != nil {
		log.Fatalf("settings: %v", err)
	}

	machine := state.NewStateMachine()
	menu, err := state.NewMenuState(machine, &settings)
	if err != nil {
		log.Fatalf("menu: %v", err)
	}
	machine.SetState(menu)

	ebiten.SetWindowSize(settings.ScreenWidth, settings.ScreenHeight)
	ebiten.SetWindowTitle("Bastion TD")
	ebiten.SetFullscreen(settings.Fullscreen)

	if err := ebiten.RunGame(&app{machine: machine, settings: settings}); err != nil {
		log.Fatal(err)
	}
}
