package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Settings are the host-level knobs read from the environment at startup.
// Gameplay balance stays in constants; only presentation concerns are
// overridable.
type Settings struct {
	ScreenWidth  int     `env:"BASTION_SCREEN_WIDTH" envDefault:"1280"`
	ScreenHeight int     `env:"BASTION_SCREEN_HEIGHT" envDefault:"720"`
	Fullscreen   bool    `env:"BASTION_FULLSCREEN" envDefault:"false"`
	Zoom         float64 `env:"BASTION_ZOOM" envDefault:"1.0"`
	Debug        bool    `env:"BASTION_DEBUG" envDefault:"false"`
}

// LoadSettings parses the settings from environment variables.
func LoadSettings() (Settings, error) {
	var s Settings
	if err := env.Parse(&s); err != nil {
		return Settings{}, fmt.Errorf("parse env: %w", err)
	}
	if s.ScreenWidth <= 0 || s.ScreenHeight <= 0 {
		return Settings{}, fmt.Errorf("invalid window size %dx%d", s.ScreenWidth, s.ScreenHeight)
	}
	if s.Zoom <= 0 {
		return Settings{}, fmt.Errorf("invalid zoom %v", s.Zoom)
	}
	return s, nil
}
