// internal/ui/info_panel.go
package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-path-defense/internal/app"
	"go-path-defense/internal/config"
	"go-path-defense/internal/defs"
)

// InfoPanel — панель в правом нижнем углу с параметрами выбранной башни.
type InfoPanel struct {
	Width  float32
	Height float32
}

func NewInfoPanel() *InfoPanel {
	return &InfoPanel{Width: 250, Height: 170}
}

// Draw отрисовывает панель, если в снапшоте есть выбранная башня.
func (p *InfoPanel) Draw(screen *ebiten.Image, snap app.Snapshot) {
	var tower *app.TowerInfo
	for i := range snap.Towers {
		if snap.Towers[i].Selected {
			tower = &snap.Towers[i]
			break
		}
	}
	if tower == nil {
		return
	}

	x := float32(config.ScreenWidth) - p.Width - 16
	y := float32(config.ScreenHeight) - p.Height - 36
	vector.DrawFilledRect(screen, x, y, p.Width, p.Height, config.PanelColor, false)
	vector.StrokeRect(screen, x, y, p.Width, p.Height, 1, config.TextDimColor, false)

	def := defs.TowerLibrary[tower.Type]
	lines := []string{
		fmt.Sprintf("%s  Lv %d/%d", def.Name, tower.Level, tower.LevelCap),
		damageLine(tower),
		fmt.Sprintf("Range: %.0f", tower.Stats.Range),
	}
	if tower.Stats.FireRate > 0 {
		lines = append(lines, fmt.Sprintf("Rate: %.2f/s", tower.Stats.FireRate))
	}
	if tower.Stats.SplashRadius > 0 {
		lines = append(lines, fmt.Sprintf("Splash: %.0f", tower.Stats.SplashRadius))
	}
	if tower.Level >= tower.LevelCap {
		lines = append(lines, fmt.Sprintf("Over-level: $%d", tower.UpgradeCost))
	} else {
		lines = append(lines, fmt.Sprintf("Upgrade: $%d", tower.UpgradeCost))
	}
	lines = append(lines, "U — upgrade")

	ty := int(y) + 26
	for i, line := range lines {
		clr := config.TextLightColor
		if i > 0 {
			clr = config.TextDimColor
		}
		text.Draw(screen, line, BaseFace, int(x)+14, ty, clr)
		ty += 22
	}
}

// damageLine — для лучевой башни урон непрерывный, показываем как DPS.
func damageLine(tower *app.TowerInfo) string {
	if tower.Type == defs.TowerBeam {
		return fmt.Sprintf("Damage: %.1f/s", tower.Stats.Damage)
	}
	return fmt.Sprintf("Damage: %.1f", tower.Stats.Damage)
}
