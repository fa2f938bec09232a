// internal/state/game_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	game "go-path-defense/internal/app"
	"go-path-defense/internal/config"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/ui"
	"go-path-defense/pkg/path"
	"go-path-defense/pkg/render"
)

// GameState — основное игровое состояние: ввод, симуляция, отрисовка.
type GameState struct {
	sm       *StateMachine
	game     *game.Game
	renderer *render.Renderer

	hud         *ui.HUD
	infoPanel   *ui.InfoPanel
	indicator   *ui.WaveIndicator
	speedButton *ui.SpeedButton
	autoButton  *ui.AutoWaveButton

	// Тип башни под постановку; выбирается клавишами 1-3.
	selectedType defs.TowerType
}

func NewGameState(sm *StateMachine) *GameState {
	gameLogic := game.NewGame()
	return &GameState{
		sm:           sm,
		game:         gameLogic,
		renderer:     render.NewRenderer(gameLogic.Path),
		hud:          ui.NewHUD(),
		infoPanel:    ui.NewInfoPanel(),
		indicator:    ui.NewWaveIndicator(config.ScreenWidth/2, 44),
		speedButton:  ui.NewSpeedButton(config.ScreenWidth-48, 40, 14),
		autoButton:   ui.NewAutoWaveButton(config.ScreenWidth-100, 40, 16),
		selectedType: defs.TowerBasic,
	}
}

func (g *GameState) Enter() {}

func (g *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}

	g.handleKeys()
	g.handleMouse()

	g.game.Update(deltaTime)
}

func (g *GameState) handleKeys() {
	if inpututil.IsKeyJustPressed(ebiten.Key1) {
		g.selectedType = defs.TowerBasic
	}
	if inpututil.IsKeyJustPressed(ebiten.Key2) {
		g.selectedType = defs.TowerSplash
	}
	if inpututil.IsKeyJustPressed(ebiten.Key3) {
		g.selectedType = defs.TowerBeam
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.game.StartWave()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyU) {
		g.game.UpgradeSelectedTower()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyA) {
		g.game.SetAutoWave(!g.game.AutoWave())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.game.SetTurbo(!g.game.Turbo())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.game.Reset()
	}
}

func (g *GameState) handleMouse() {
	mx, my := ebiten.CursorPosition()
	pos := path.Point{X: float64(mx), Y: float64(my)}

	// Правая кнопка — апгрейд башни под курсором.
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		if id, ok := g.game.TowerAt(pos); ok {
			g.game.SelectTower(id)
			g.game.UpgradeSelectedTower()
		}
		return
	}

	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	if g.speedButton.Contains(float32(mx), float32(my)) {
		g.game.SetTurbo(!g.game.Turbo())
		return
	}
	if g.autoButton.Contains(float32(mx), float32(my)) {
		g.game.SetAutoWave(!g.game.AutoWave())
		return
	}

	if id, ok := g.game.TowerAt(pos); ok {
		g.game.SelectTower(id)
		return
	}
	if g.game.PlaceTower(pos, g.selectedType) {
		return
	}
	// Клик в пустоту снимает выделение.
	g.game.SelectTower(0)
}

func (g *GameState) Draw(screen *ebiten.Image) {
	snap := g.game.Snapshot()

	g.renderer.Draw(screen, snap, g.ghost(snap))
	g.indicator.Draw(screen, snap.WaveNumber)
	g.speedButton.On = snap.Turbo
	g.speedButton.Draw(screen)
	g.autoButton.On = snap.AutoWave
	g.autoButton.Draw(screen)
	g.infoPanel.Draw(screen, snap)
	g.hud.Draw(screen, snap, g.selectedType)
}

// ghost — превью постановки под курсором; скрывается над существующей
// башней и после поражения.
func (g *GameState) ghost(snap game.Snapshot) *render.Ghost {
	if snap.GameOver {
		return nil
	}
	mx, my := ebiten.CursorPosition()
	if mx < 0 || my < 0 || mx >= config.ScreenWidth || my >= config.ScreenHeight {
		return nil
	}
	pos := path.Point{X: float64(mx), Y: float64(my)}
	if _, ok := g.game.TowerAt(pos); ok {
		return nil
	}
	def := defs.TowerLibrary[g.selectedType]
	return &render.Ghost{
		Pos:   pos,
		Range: def.Base.Range,
		Valid: g.game.CanPlaceTower(pos, g.selectedType),
	}
}

func (g *GameState) Exit() {}
