// Package ui draws the heads-up display: the status bar, the pause and
// speed buttons, and the game-over overlay. Everything is enqueued on the
// render pipeline at UI priority so it paints above the world.
package ui

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// NewFace builds a face of the bundled Go Regular font at the given size.
func NewFace(size float64) (font.Face, error) {
	tt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}
