// internal/ui/auto_button.go
package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-path-defense/internal/config"
)

// AutoWaveButton — переключатель автозапуска волн.
type AutoWaveButton struct {
	X, Y   float32
	Radius float32
	On     bool
}

func NewAutoWaveButton(x, y, radius float32) *AutoWaveButton {
	return &AutoWaveButton{X: x, Y: y, Radius: radius}
}

func (b *AutoWaveButton) Contains(mx, my float32) bool {
	dx := mx - b.X
	dy := my - b.Y
	return dx*dx+dy*dy <= b.Radius*b.Radius
}

func (b *AutoWaveButton) Draw(screen *ebiten.Image) {
	clr := config.TextDimColor
	if b.On {
		clr = config.BeamColor
	}
	vector.StrokeCircle(screen, b.X, b.Y, b.Radius, 2, clr, true)
	w := textWidth(BaseFace, "A")
	text.Draw(screen, "A", BaseFace, int(b.X)-w/2, int(b.Y)+6, clr)
}
