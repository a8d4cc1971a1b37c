package ui

import (
	"testing"
	"time"

	"go-bastion-td/internal/config"
	"go-bastion-td/internal/input"
)

type fakePlayer struct{ health, gold int }

func (p *fakePlayer) Health() int { return p.health }
func (p *fakePlayer) Gold() int   { return p.gold }

type fakeWaves struct{}

func (fakeWaves) CurrentWave() int          { return 1 }
func (fakeWaves) Building() bool            { return false }
func (fakeWaves) TimeToWave() time.Duration { return 0 }

type fakeStats struct{}

func (fakeStats) Kills() int        { return 0 }
func (fakeStats) WavesCleared() int { return 0 }

func newTestHUD(t *testing.T, width, height int, onPause func()) *HUD {
	t.Helper()
	h, err := NewHUD(width, height, &fakePlayer{health: 20, gold: 100}, fakeWaves{}, fakeStats{},
		func() string { return "" }, onPause, func() string { return "2x" })
	if err != nil {
		t.Fatalf("NewHUD: %v", err)
	}
	return h
}

// The buttons must track the actual window size, not the default constants.
func TestHUDButtonsAnchorToScreenSize(t *testing.T) {
	sizes := []struct{ width, height int }{
		{config.ScreenWidth, config.ScreenHeight},
		{1920, 1080},
		{800, 600},
	}
	for _, size := range sizes {
		paused := 0
		h := newTestHUD(t, size.width, size.height, func() { paused++ })

		wantX := float64(size.width) - config.HUDMargin - config.ButtonRadius
		if h.pauseBtn.X != wantX {
			t.Errorf("width %d: pause button at x=%v, want %v", size.width, h.pauseBtn.X, wantX)
		}

		ev := &input.Event{
			Type:   input.TypeMousePress,
			Button: input.MouseLeft,
			X:      wantX,
			Y:      h.pauseBtn.Y,
		}
		h.ProcessInput(ev)
		if !ev.Consumed() || paused != 1 {
			t.Errorf("width %d: pause click at the button's anchor was not handled", size.width)
		}
	}
}

func TestHUDClickOutsideButtonsPassesThrough(t *testing.T) {
	h := newTestHUD(t, 1920, 1080, func() {})
	// The default-constant anchor is empty space on a wider window.
	ev := &input.Event{
		Type:   input.TypeMousePress,
		Button: input.MouseLeft,
		X:      config.ScreenWidth - config.HUDMargin - config.ButtonRadius,
		Y:      config.HUDMargin + config.ButtonRadius,
	}
	h.ProcessInput(ev)
	if ev.Consumed() {
		t.Error("click far from any button was consumed")
	}
}
