// internal/ui/speed_button.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-path-defense/internal/config"
)

// SpeedButton — переключатель ускоренного режима: два треугольника
// «перемотки», закрашенные по текущему состоянию.
type SpeedButton struct {
	X, Y float32
	Size float32
	On   bool

	whiteImg *ebiten.Image
	vs       []ebiten.Vertex
	is       []uint16
}

func NewSpeedButton(x, y, size float32) *SpeedButton {
	whiteImg := ebiten.NewImage(1, 1)
	whiteImg.Fill(color.White)
	return &SpeedButton{X: x, Y: y, Size: size, whiteImg: whiteImg}
}

// Contains проверяет попадание клика; форма сложная, используем круг.
func (b *SpeedButton) Contains(mx, my float32) bool {
	dx := mx - b.X
	dy := my - b.Y
	return dx*dx+dy*dy <= b.Size*b.Size*2.25
}

func (b *SpeedButton) Draw(screen *ebiten.Image) {
	clr := config.TextDimColor
	if b.On {
		clr = config.GameOverColor
	}

	height := b.Size * 1.2
	width := b.Size
	offset := width * 0.8

	for _, shift := range []float32{0, offset} {
		p := vector.Path{}
		p.MoveTo(b.X-width+shift, b.Y-height/2)
		p.LineTo(b.X+shift, b.Y)
		p.LineTo(b.X-width+shift, b.Y+height/2)
		p.Close()

		b.vs, b.is = p.AppendVerticesAndIndicesForFilling(b.vs[:0], b.is[:0])
		for i := range b.vs {
			b.vs[i].ColorR = float32(clr.R) / 255
			b.vs[i].ColorG = float32(clr.G) / 255
			b.vs[i].ColorB = float32(clr.B) / 255
			b.vs[i].ColorA = float32(clr.A) / 255
		}
		screen.DrawTriangles(b.vs, b.is, b.whiteImg, &ebiten.DrawTrianglesOptions{
			AntiAlias: true,
		})
	}
}
