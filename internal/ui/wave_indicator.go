// internal/ui/wave_indicator.go
package ui

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"go-path-defense/internal/config"
)

// WaveIndicator отображает номер текущей волны римскими цифрами.
type WaveIndicator struct {
	X, Y int
}

func NewWaveIndicator(x, y int) *WaveIndicator {
	return &WaveIndicator{X: x, Y: y}
}

// toRoman конвертирует целое число в римское.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// Draw отрисовывает индикатор. Начиная с босс-волн номер подсвечивается.
func (i *WaveIndicator) Draw(screen *ebiten.Image, waveNumber int) {
	if waveNumber <= 0 {
		return
	}
	label := toRoman(waveNumber)
	clr := config.TextLightColor
	if waveNumber > config.BossFromWave {
		clr = config.GameOverColor
	}
	bounds, _ := font.BoundString(TitleFace, label)
	width := (bounds.Max.X - bounds.Min.X).Ceil()
	text.Draw(screen, label, TitleFace, i.X-width/2, i.Y, clr)
}
