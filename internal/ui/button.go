package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-bastion-td/internal/config"
)

// Button is a round clickable HUD control with a one-glyph label.
type Button struct {
	X, Y    float64
	Radius  float64
	Label   string
	OnClick func()
}

// Contains reports whether a screen point falls inside the button.
func (b *Button) Contains(x, y float64) bool {
	dx, dy := x-b.X, y-b.Y
	return dx*dx+dy*dy <= b.Radius*b.Radius
}

// Draw paints the button onto dst.
func (b *Button) Draw(dst *ebiten.Image, face font.Face) {
	vector.DrawFilledCircle(dst, float32(b.X), float32(b.Y), float32(b.Radius), config.PanelColor, true)
	vector.StrokeCircle(dst, float32(b.X), float32(b.Y), float32(b.Radius), 1, config.TextColor, true)
	bounds := text.BoundString(face, b.Label)
	tx := int(b.X) - bounds.Dx()/2
	ty := int(b.Y) + bounds.Dy()/2
	text.Draw(dst, b.Label, face, tx, ty, config.TextColor)
}
