// internal/ui/hud.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-path-defense/internal/app"
	"go-path-defense/internal/component"
	"go-path-defense/internal/config"
	"go-path-defense/internal/defs"
)

// HUD — текстовый слой поверх поля: ресурсы, подсказки, оверлеи
// между волнами и при поражении.
type HUD struct{}

func NewHUD() *HUD {
	return &HUD{}
}

// Draw отрисовывает HUD по снапшоту. selected — тип башни под курсором.
func (h *HUD) Draw(screen *ebiten.Image, snap app.Snapshot, selected defs.TowerType) {
	text.Draw(screen, fmt.Sprintf("$ %d", snap.Money), BaseFace, 16, 28, config.TextLightColor)
	text.Draw(screen, fmt.Sprintf("Lives %d", snap.Lives), BaseFace, 16, 50, config.TextLightColor)

	h.drawTowerBar(screen, snap, selected)

	help := "SPACE wave   1-3 tower   U upgrade   A auto   F fast   R restart   F9 pause"
	text.Draw(screen, help, BaseFace, 16, config.ScreenHeight-14, config.TextDimColor)

	if snap.GameOver {
		h.drawGameOver(screen, snap)
		return
	}
	if snap.Phase == component.PhaseIdle && snap.WaveClear != nil {
		h.drawWaveClear(screen, snap)
	}
}

// drawTowerBar — выбор типа башни; недоступные по деньгам приглушены.
func (h *HUD) drawTowerBar(screen *ebiten.Image, snap app.Snapshot, selected defs.TowerType) {
	x := 16
	y := 78
	for i, t := range []defs.TowerType{defs.TowerBasic, defs.TowerSplash, defs.TowerBeam} {
		def := defs.TowerLibrary[t]
		label := fmt.Sprintf("[%d] %s $%d", i+1, def.Name, def.Cost)
		clr := config.TextDimColor
		if t == selected {
			clr = config.TextLightColor
		}
		if snap.Money < def.Cost {
			clr = config.GhostBadColor
		}
		text.Draw(screen, label, BaseFace, x, y, clr)
		x += textWidth(BaseFace, label) + 24
	}
}

func (h *HUD) drawWaveClear(screen *ebiten.Image, snap app.Snapshot) {
	wc := snap.WaveClear
	msg := fmt.Sprintf("Wave %s cleared   +$%d (+$%d bonus)", toRoman(wc.WaveNumber), wc.Reward, wc.Bonus)
	drawCentered(screen, msg, BaseFace, config.ScreenHeight/2-60, config.TextLightColor)

	if snap.AutoWave {
		countdown := fmt.Sprintf("Next wave in %.1fs", snap.AutoWaveRemaining)
		drawCentered(screen, countdown, BaseFace, config.ScreenHeight/2-36, config.TextDimColor)
	} else {
		drawCentered(screen, "Press SPACE for next wave", BaseFace, config.ScreenHeight/2-36, config.TextDimColor)
	}
}

func (h *HUD) drawGameOver(screen *ebiten.Image, snap app.Snapshot) {
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.OverlayColor, false)
	drawCentered(screen, "GAME OVER", TitleFace, config.ScreenHeight/2-20, config.GameOverColor)
	survived := fmt.Sprintf("Waves survived: %d", snap.WaveNumber-1)
	drawCentered(screen, survived, BaseFace, config.ScreenHeight/2+16, config.TextLightColor)
	drawCentered(screen, "Press R to restart", BaseFace, config.ScreenHeight/2+42, config.TextDimColor)
}

func textWidth(face font.Face, s string) int {
	bounds, _ := font.BoundString(face, s)
	return (bounds.Max.X - bounds.Min.X).Ceil()
}

func drawCentered(screen *ebiten.Image, s string, face font.Face, y int, clr color.Color) {
	text.Draw(screen, s, face, (config.ScreenWidth-textWidth(face, s))/2, y, clr)
}
