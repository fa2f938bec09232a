// internal/app/game_test.go
package app_test

import (
	"math"
	"testing"

	"go-path-defense/internal/app"
	"go-path-defense/internal/component"
	"go-path-defense/internal/config"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/event"
	"go-path-defense/internal/types"
	"go-path-defense/pkg/path"
)

// Свободная точка: далеко и от пути, и от краёв экрана.
var openSpot = path.Point{X: 600, Y: 700}

func spawnTestEnemy(g *app.Game, hp float64) types.EntityID {
	id := g.ECS.NewEntity()
	g.ECS.Enemies[id] = &component.Enemy{
		Variant:   defs.EnemyNormal,
		Health:    hp,
		MaxHealth: hp,
		Alive:     true,
	}
	return id
}

// runWaveToCompletion прогоняет активную волну без башен до конца.
func runWaveToCompletion(t *testing.T, g *app.Game) {
	t.Helper()
	for i := 0; i < 5000 && g.Phase() == component.PhaseWaveActive; i++ {
		g.Update(config.MaxDeltaTime)
	}
	if g.Phase() == component.PhaseWaveActive {
		t.Fatalf("wave did not finish within the step budget")
	}
}

func TestPlaceTowerDeductsExactCost(t *testing.T) {
	g := app.NewGame()

	if !g.PlaceTower(openSpot, defs.TowerBasic) {
		t.Fatalf("placement at open spot rejected")
	}
	if got := g.Money(); got != config.StartingMoney-50 {
		t.Errorf("money = %d, want %d", got, config.StartingMoney-50)
	}
	if got := len(g.ECS.Towers); got != 1 {
		t.Errorf("towers = %d, want 1", got)
	}
	for _, tower := range g.ECS.Towers {
		if tower.Level != 1 || tower.Type != defs.TowerBasic {
			t.Errorf("placed tower = %+v", tower)
		}
	}
}

func TestPlacementRejections(t *testing.T) {
	g := app.NewGame()
	if !g.PlaceTower(openSpot, defs.TowerBasic) {
		t.Fatalf("baseline placement rejected")
	}
	moneyBefore := g.Money()

	tests := []struct {
		name string
		pos  path.Point
		typ  defs.TowerType
	}{
		{"outside screen inset", path.Point{X: 10, Y: 10}, defs.TowerBasic},
		{"inside path keep-out", path.Point{X: 300, Y: 430}, defs.TowerBasic},
		{"too close to another tower", path.Point{X: 610, Y: 700}, defs.TowerBasic},
		{"unknown tower type", path.Point{X: 700, Y: 700}, defs.TowerType("MISSING")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if g.PlaceTower(tt.pos, tt.typ) {
				t.Fatalf("placement accepted")
			}
			if g.Money() != moneyBefore {
				t.Errorf("money changed on rejected placement")
			}
			if len(g.ECS.Towers) != 1 {
				t.Errorf("tower count changed on rejected placement")
			}
		})
	}

	t.Run("insufficient funds", func(t *testing.T) {
		// После первой башни осталось 70 — на Lance (110) не хватает.
		if g.PlaceTower(path.Point{X: 700, Y: 700}, defs.TowerBeam) {
			t.Fatalf("placement accepted without funds")
		}
		if g.Money() != moneyBefore {
			t.Errorf("money changed on rejected placement")
		}
	})
}

func TestUpgradeSelectedTower(t *testing.T) {
	g := app.NewGame()
	g.PlaceTower(openSpot, defs.TowerBasic) // осталось 70

	id, ok := g.TowerAt(openSpot)
	if !ok {
		t.Fatalf("TowerAt missed the placed tower")
	}
	g.SelectTower(id)

	if !g.UpgradeSelectedTower() {
		t.Fatalf("upgrade rejected with sufficient funds")
	}
	if got := g.ECS.Towers[id].Level; got != 2 {
		t.Errorf("level = %d, want 2", got)
	}
	if got := g.Money(); got != 10 {
		t.Errorf("money = %d, want 10", got)
	}

	// Следующий апгрейд стоит 96 — тихий отказ без изменений.
	if g.UpgradeSelectedTower() {
		t.Fatalf("upgrade accepted without funds")
	}
	if g.ECS.Towers[id].Level != 2 || g.Money() != 10 {
		t.Errorf("state changed on rejected upgrade")
	}
}

func TestUpgradeWithoutSelection(t *testing.T) {
	g := app.NewGame()
	if g.UpgradeSelectedTower() {
		t.Fatalf("upgrade accepted with no tower selected")
	}
}

func TestSelectTowerValidation(t *testing.T) {
	g := app.NewGame()
	g.PlaceTower(openSpot, defs.TowerBasic)
	id, _ := g.TowerAt(openSpot)

	g.SelectTower(id)
	if g.SelectedTower() != id {
		t.Fatalf("selection not applied")
	}

	// Несуществующий ID не сбивает текущий выбор.
	g.SelectTower(9999)
	if g.SelectedTower() != id {
		t.Errorf("selection changed to a missing tower")
	}

	g.SelectTower(0)
	if g.SelectedTower() != 0 {
		t.Errorf("selection not cleared")
	}
}

func TestStartWaveIsIdempotentWhileActive(t *testing.T) {
	g := app.NewGame()

	g.StartWave()
	if g.Phase() != component.PhaseWaveActive {
		t.Fatalf("phase = %v, want active", g.Phase())
	}
	wave := g.ECS.Wave

	g.StartWave()
	if g.ECS.Wave != wave {
		t.Errorf("second StartWave replaced the running wave")
	}
}

func TestKillAwardsMoneyExactlyOnce(t *testing.T) {
	g := app.NewGame()
	id := spawnTestEnemy(g, 24)

	g.CombatSystem.ApplyDamage(id, 24, defs.TowerSplash)

	want := config.StartingMoney + 4 // round(24 * 0.15)
	if got := g.Money(); got != want {
		t.Fatalf("money after kill = %d, want %d", got, want)
	}

	// Повторное событие по тому же врагу награду не дублирует.
	g.EventDispatcher.Dispatch(event.Event{Type: event.EnemyKilled, Data: id})
	if got := g.Money(); got != want {
		t.Errorf("money after duplicate event = %d, want %d", got, want)
	}
}

func TestUnopposedWaveLeaksAndPaysClearReward(t *testing.T) {
	g := app.NewGame()

	g.StartWave()
	runWaveToCompletion(t, g)

	// Волна 0: шесть врагов, все дошли до конца.
	if got := g.Lives(); got != config.StartingLives-6 {
		t.Errorf("lives = %d, want %d", got, config.StartingLives-6)
	}
	// Убийств не было: награда за волну плюс бонус от нетронутого баланса.
	want := config.StartingMoney + config.WaveClearReward +
		int(float64(config.StartingMoney)*config.WaveClearBonusRate)
	if got := g.Money(); got != want {
		t.Errorf("money = %d, want %d", got, want)
	}
	if g.Phase() != component.PhaseIdle {
		t.Errorf("phase = %v, want idle", g.Phase())
	}
	if got := g.WaveNumber(); got != 2 {
		t.Errorf("next wave number = %d, want 2", got)
	}

	snap := g.Snapshot()
	if snap.WaveClear == nil {
		t.Fatalf("wave clear summary missing")
	}
	if snap.WaveClear.WaveNumber != 1 || snap.WaveClear.Reward != config.WaveClearReward {
		t.Errorf("wave clear summary = %+v", snap.WaveClear)
	}
}

func TestAutoWaveCountdown(t *testing.T) {
	g := app.NewGame()

	g.StartWave()
	runWaveToCompletion(t, g)

	g.SetAutoWave(true)
	if g.Phase() != component.PhaseIdle {
		t.Fatalf("phase = %v, want idle", g.Phase())
	}

	// До истечения отсчёта волна не стартует.
	g.Update(config.AutoWaveCountdown - 0.1)
	if g.Phase() != component.PhaseIdle {
		t.Fatalf("wave started before the countdown expired")
	}
	g.Update(0.2)
	if g.Phase() != component.PhaseWaveActive {
		t.Fatalf("wave did not start after the countdown")
	}
	if got := g.WaveNumber(); got != 2 {
		t.Errorf("wave number = %d, want 2", got)
	}

	// Выключение автозапуска сбрасывает отсчёт.
	g.SetAutoWave(false)
	if g.Snapshot().AutoWaveRemaining != 0 {
		t.Errorf("countdown not cleared on disable")
	}
}

func TestTurboScalesSimulationTime(t *testing.T) {
	g := app.NewGame()
	g.SetTurbo(true)
	g.StartWave()

	g.Update(1.0)

	if got := g.GameTime(); math.Abs(got-config.TurboMultiplier) > 1e-9 {
		t.Errorf("game time = %v, want %v", got, config.TurboMultiplier)
	}
}

func TestGameOverFreezesAndResetRestores(t *testing.T) {
	g := app.NewGame()

	for i := 0; i < config.StartingLives; i++ {
		g.EventDispatcher.Dispatch(event.Event{Type: event.EnemyLeaked})
	}
	if !g.IsGameOver() || g.Lives() != 0 {
		t.Fatalf("game over not reached: lives = %d", g.Lives())
	}

	// После поражения ввод и симуляция игнорируются.
	if g.PlaceTower(openSpot, defs.TowerBasic) {
		t.Errorf("placement accepted after game over")
	}
	g.StartWave()
	if g.Phase() != component.PhaseIdle {
		t.Errorf("wave started after game over")
	}
	g.Update(1.0)
	if g.GameTime() != 0 {
		t.Errorf("simulation advanced after game over")
	}

	g.Reset()
	if g.IsGameOver() || g.Money() != config.StartingMoney || g.Lives() != config.StartingLives {
		t.Errorf("reset state: money %d lives %d gameOver %v", g.Money(), g.Lives(), g.IsGameOver())
	}
	if g.WaveNumber() != 1 {
		t.Errorf("wave number after reset = %d, want 1", g.WaveNumber())
	}
}
