package ui

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-bastion-td/internal/config"
	"go-bastion-td/internal/input"
	"go-bastion-td/internal/render"
)

// PlayerInfo is what the HUD reads from the player.
type PlayerInfo interface {
	Health() int
	Gold() int
}

// WaveInfo is what the HUD reads from the wave manager.
type WaveInfo interface {
	CurrentWave() int
	Building() bool
	TimeToWave() time.Duration
}

// StatsInfo is what the game-over overlay reads from the statistics.
type StatsInfo interface {
	Kills() int
	WavesCleared() int
}

// HUD draws the status bar and owns the pause and speed buttons. Clicks on
// the buttons are consumed before the world sees them. Layout follows the
// actual window size, not the default constants.
type HUD struct {
	width      float64
	height     float64
	face       font.Face
	player     PlayerInfo
	waves      WaveInfo
	stats      StatsInfo
	info       func() string
	pauseBtn   *Button
	speedBtn   *Button
	speedLabel string
}

// NewHUD wires the display to its data sources and anchors it to the given
// screen size in pixels. onSpeedToggle flips the game speed and returns the
// new speed's label.
func NewHUD(width, height int, player PlayerInfo, waves WaveInfo, stats StatsInfo, info func() string, onPause func(), onSpeedToggle func() string) (*HUD, error) {
	face, err := NewFace(config.HUDFontSize)
	if err != nil {
		return nil, fmt.Errorf("ui: load font: %w", err)
	}
	h := &HUD{
		width:      float64(width),
		height:     float64(height),
		face:       face,
		player:     player,
		waves:      waves,
		stats:      stats,
		info:       info,
		speedLabel: "1x",
	}
	h.pauseBtn = &Button{
		X:       h.width - config.HUDMargin - config.ButtonRadius,
		Y:       config.HUDMargin + config.ButtonRadius,
		Radius:  config.ButtonRadius,
		Label:   "II",
		OnClick: onPause,
	}
	h.speedBtn = &Button{
		X:      h.pauseBtn.X - 3*config.ButtonRadius,
		Y:      h.pauseBtn.Y,
		Radius: config.ButtonRadius,
		Label:  ">",
	}
	h.speedBtn.OnClick = func() {
		h.speedLabel = onSpeedToggle()
	}
	return h, nil
}

// Render enqueues the whole display at UI priority.
func (h *HUD) Render(r *render.Renderer) {
	status := h.statusLine()
	infoLine := h.info()
	gameOver := h.player.Health() <= 0
	kills := h.stats.Kills()
	cleared := h.stats.WavesCleared()
	r.AddTask(render.PriorityUI, func(dst *ebiten.Image) {
		vector.DrawFilledRect(dst, 0, 0, float32(h.width), 40, config.PanelColor, false)
		text.Draw(dst, status, h.face, int(config.HUDMargin), 26, config.TextColor)
		if infoLine != "" {
			text.Draw(dst, infoLine, h.face, int(config.HUDMargin), int(h.height-config.HUDMargin), config.TextColor)
		}
		h.speedBtn.Draw(dst, h.face)
		h.pauseBtn.Draw(dst, h.face)
		if gameOver {
			h.drawGameOver(dst, kills, cleared)
		}
	})
}

func (h *HUD) statusLine() string {
	wave := fmt.Sprintf("Wave %d", h.waves.CurrentWave())
	if h.waves.Building() {
		secs := int(h.waves.TimeToWave().Round(time.Second).Seconds())
		wave = fmt.Sprintf("Next wave in %ds (space to start)", secs)
	}
	return fmt.Sprintf("%s    HP %d    Gold %d    Speed %s",
		wave, h.player.Health(), h.player.Gold(), h.speedLabel)
}

func (h *HUD) drawGameOver(dst *ebiten.Image, kills, cleared int) {
	vector.DrawFilledRect(dst, 0, 0, float32(h.width), float32(h.height), config.PanelColor, false)
	lines := []string{
		"GAME OVER",
		fmt.Sprintf("Waves cleared: %d", cleared),
		fmt.Sprintf("Enemies slain: %d", kills),
	}
	y := int(h.height)/2 - 30
	for _, line := range lines {
		bounds := text.BoundString(h.face, line)
		text.Draw(dst, line, h.face, (int(h.width)-bounds.Dx())/2, y, config.TextColor)
		y += 28
	}
}

// ProcessInput claims clicks that land on HUD buttons.
func (h *HUD) ProcessInput(ev *input.Event) {
	if ev.Type != input.TypeMousePress || ev.Button != input.MouseLeft {
		return
	}
	x, y := ev.X, ev.Y
	for _, b := range []*Button{h.pauseBtn, h.speedBtn} {
		if b.Contains(x, y) {
			ev.Consume()
			if b.OnClick != nil {
				b.OnClick()
			}
			return
		}
	}
}
