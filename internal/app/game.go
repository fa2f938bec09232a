// internal/app/game.go
package app

import (
	"go-path-defense/internal/component"
	"go-path-defense/internal/config"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/entity"
	"go-path-defense/internal/event"
	"go-path-defense/internal/system"
	"go-path-defense/internal/types"
	"go-path-defense/internal/utils"
	"go-path-defense/pkg/path"
)

// DefaultWaypoints — маршрут врагов. Путь фиксирован на всю сессию.
var DefaultWaypoints = []path.Point{
	{X: -40, Y: 140},
	{X: 260, Y: 140},
	{X: 260, Y: 420},
	{X: 540, Y: 420},
	{X: 540, Y: 180},
	{X: 860, Y: 180},
	{X: 860, Y: 560},
	{X: 1240, Y: 560},
}

// WaveClearSummary — данные оверлея завершённой волны.
type WaveClearSummary struct {
	WaveNumber int // 1-based, как в HUD
	Reward     int
	Bonus      int
}

// Game хранит основное состояние игры и логику симуляции.
// Всё состояние принадлежит циклу и мутируется только внутри тика;
// обработчики ввода — это обычные методы, применяемые немедленно
// в той же горутине.
type Game struct {
	Path             *path.Path
	ECS              *entity.ECS
	WaveSystem       *system.WaveSystem
	MovementSystem   *system.MovementSystem
	CombatSystem     *system.CombatSystem
	ProjectileSystem *system.ProjectileSystem
	VisualSystem     *system.VisualEffectSystem
	EventDispatcher  *event.Dispatcher
	Rng              *utils.PRNGService

	gameTime      float64
	money         int
	lives         int
	waveIndex     int // индекс следующей волны, 0-based
	gameOver      bool
	turbo         bool
	autoWave      bool
	autoWaveTimer float64
	selectedTower types.EntityID
	lastClear     *WaveClearSummary
}

// NewGame создаёт игру с начальным состоянием.
func NewGame() *Game {
	g := &Game{
		Path: path.New(DefaultWaypoints),
		Rng:  utils.NewPRNGService(0),
	}
	g.init()
	return g
}

// init приводит состояние к известному стартовому. Используется и при
// создании, и при сбросе: Reset всегда даёт заведомо чистую игру.
func (g *Game) init() {
	g.ECS = entity.NewECS()
	g.EventDispatcher = event.NewDispatcher()

	g.WaveSystem = system.NewWaveSystem(g.ECS, g.EventDispatcher)
	g.MovementSystem = system.NewMovementSystem(g.ECS, g.Path, g.EventDispatcher)
	g.CombatSystem = system.NewCombatSystem(g.ECS, g.Path, g.EventDispatcher)
	g.VisualSystem = system.NewVisualEffectSystem(g.ECS, g.Rng)
	g.ProjectileSystem = system.NewProjectileSystem(g.ECS, g.Path, g.CombatSystem, g.VisualSystem)

	g.gameTime = 0
	g.money = config.StartingMoney
	g.lives = config.StartingLives
	g.waveIndex = 0
	g.gameOver = false
	g.turbo = false
	g.autoWave = false
	g.autoWaveTimer = 0
	g.selectedTower = 0
	g.lastClear = nil

	listener := &gameEventListener{game: g}
	g.EventDispatcher.Subscribe(event.EnemyKilled, listener)
	g.EventDispatcher.Subscribe(event.EnemyLeaked, listener)
}

// Update продвигает симуляцию на один кадр. Порядок систем фиксирован:
// время → спавны → движение и утечки → чистка трупов → стрельба башен →
// снаряды → частицы → таймер автоволны.
func (g *Game) Update(deltaTime float64) {
	if g.gameOver {
		return
	}
	dt := deltaTime
	if g.turbo {
		dt *= config.TurboMultiplier
	}
	g.gameTime += dt
	g.ECS.GameTime = g.gameTime

	if g.ECS.Phase == component.PhaseWaveActive {
		g.WaveSystem.Update(dt, g.ECS.Wave)
		g.MovementSystem.Update(dt)
		g.MovementSystem.Prune(dt)
		g.CombatSystem.Update(dt)
		g.ProjectileSystem.Update(dt)
	}
	g.VisualSystem.Update(dt)

	if g.ECS.Phase == component.PhaseWaveActive && g.waveIsCleared() {
		g.completeWave()
	}

	if g.ECS.Phase == component.PhaseIdle && g.autoWave && g.autoWaveTimer > 0 {
		g.autoWaveTimer -= dt
		if g.autoWaveTimer <= 0 {
			g.autoWaveTimer = 0
			g.StartWave()
		}
	}
}

// waveIsCleared: очередь спавнов пуста и живых врагов не осталось.
func (g *Game) waveIsCleared() bool {
	if g.ECS.Wave == nil || len(g.ECS.Wave.Queue) > 0 {
		return false
	}
	for _, enemy := range g.ECS.Enemies {
		if enemy.Alive {
			return false
		}
	}
	return true
}

// completeWave начисляет награду за волну ровно один раз и возвращает
// игру в ожидание. Бонус — доля от текущего баланса, экономика
// со сложным процентом.
func (g *Game) completeWave() {
	g.ECS.Phase = component.PhaseWaveComplete
	g.ECS.Wave.InProgress = false

	reward := config.WaveClearReward
	bonus := int(float64(g.money) * config.WaveClearBonusRate)
	g.money += reward + bonus
	g.lastClear = &WaveClearSummary{
		WaveNumber: g.ECS.Wave.Index + 1,
		Reward:     reward,
		Bonus:      bonus,
	}
	g.waveIndex = g.ECS.Wave.Index + 1
	g.EventDispatcher.Dispatch(event.Event{Type: event.WaveEnded, Data: g.ECS.Wave.Index})

	g.ECS.Phase = component.PhaseIdle
	if g.autoWave {
		g.autoWaveTimer = config.AutoWaveCountdown
	}
}

// StartWave запускает следующую волну. Повторный вызов при активной
// волне или после поражения — no-op.
func (g *Game) StartWave() {
	if g.gameOver || g.ECS.Phase == component.PhaseWaveActive {
		return
	}
	g.ECS.Wave = g.WaveSystem.StartWave(g.waveIndex)
	g.ECS.Phase = component.PhaseWaveActive
	g.autoWaveTimer = 0
	g.lastClear = nil
	g.EventDispatcher.Dispatch(event.Event{Type: event.WaveStarted, Data: g.waveIndex})
}

// SelectTower выбирает башню для панели информации; 0 снимает выбор.
func (g *Game) SelectTower(id types.EntityID) {
	if id != 0 {
		if _, ok := g.ECS.Towers[id]; !ok {
			return
		}
	}
	g.selectedTower = id
}

// SelectedTower возвращает текущую выбранную башню.
func (g *Game) SelectedTower() types.EntityID {
	return g.selectedTower
}

// UpgradeSelectedTower повышает уровень выбранной башни, если хватает
// денег. Нехватка средств — тихий отказ без изменения состояния.
func (g *Game) UpgradeSelectedTower() bool {
	if g.gameOver || g.selectedTower == 0 {
		return false
	}
	tower, ok := g.ECS.Towers[g.selectedTower]
	if !ok {
		return false
	}
	cost := defs.TowerLibrary[tower.Type].UpgradeCost(tower.Level)
	if g.money < cost {
		return false
	}
	g.money -= cost
	tower.Level++
	return true
}

// SetAutoWave включает автозапуск следующей волны после паузы.
func (g *Game) SetAutoWave(enabled bool) {
	g.autoWave = enabled
	if enabled && g.ECS.Phase == component.PhaseIdle && g.waveIndex > 0 {
		g.autoWaveTimer = config.AutoWaveCountdown
	}
	if !enabled {
		g.autoWaveTimer = 0
	}
}

// SetTurbo переключает ускоренный режим симуляции.
func (g *Game) SetTurbo(enabled bool) {
	g.turbo = enabled
}

// Reset полностью переинициализирует состояние и снимает game-over.
func (g *Game) Reset() {
	g.init()
}

func (g *Game) Money() int             { return g.money }
func (g *Game) Lives() int             { return g.lives }
func (g *Game) GameTime() float64      { return g.gameTime }
func (g *Game) IsGameOver() bool       { return g.gameOver }
func (g *Game) AutoWave() bool         { return g.autoWave }
func (g *Game) Turbo() bool            { return g.turbo }
func (g *Game) Phase() component.Phase { return g.ECS.Phase }

// WaveNumber — номер волны для HUD: текущая активная или следующая.
func (g *Game) WaveNumber() int {
	if g.ECS.Phase == component.PhaseWaveActive && g.ECS.Wave != nil {
		return g.ECS.Wave.Index + 1
	}
	return g.waveIndex + 1
}

// gameEventListener обрабатывает события, важные для экономики и жизней.
type gameEventListener struct {
	game *Game
}

func (l *gameEventListener) OnEvent(e event.Event) {
	g := l.game
	switch e.Type {
	case event.EnemyKilled:
		id, ok := e.Data.(types.EntityID)
		if !ok {
			return
		}
		enemy, exists := g.ECS.Enemies[id]
		if !exists || enemy.Rewarded {
			return
		}
		enemy.Rewarded = true
		g.money += system.KillReward(enemy)
		g.VisualSystem.SpawnDeathBurst(
			g.Path.PositionAt(enemy.Progress),
			defs.VariantLibrary[enemy.Variant].Color,
		)
	case event.EnemyLeaked:
		if g.gameOver {
			return
		}
		g.lives--
		if g.lives <= 0 {
			g.lives = 0
			g.gameOver = true
			g.EventDispatcher.Dispatch(event.Event{Type: event.GameOver})
		}
	}
}
