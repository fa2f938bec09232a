// internal/app/snapshot.go
package app

import (
	"sort"

	"go-path-defense/internal/component"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/types"
	"go-path-defense/pkg/path"
)

// TowerInfo — проекция башни для отрисовки и панели информации.
type TowerInfo struct {
	ID          types.EntityID
	Type        defs.TowerType
	Pos         path.Point
	Level       int
	LevelCap    int
	Stats       defs.Stats
	UpgradeCost int
	Selected    bool
}

// EnemyInfo — проекция живого врага: экранная позиция уже вычислена
// по длине дуги.
type EnemyInfo struct {
	ID        types.EntityID
	Pos       path.Point
	Health    float64
	MaxHealth float64
	Radius    float64
	Variant   defs.EnemyVariant
}

// ProjectileInfo — проекция снаряда.
type ProjectileInfo struct {
	Pos    path.Point
	Splash bool
}

// Snapshot — read-only срез состояния на кадр. Слой отрисовки читает
// только его и никогда не мутирует симуляцию.
type Snapshot struct {
	Money      int
	Lives      int
	WaveNumber int
	Phase      component.Phase
	GameOver   bool

	AutoWave          bool
	AutoWaveRemaining float64
	Turbo             bool

	Towers      []TowerInfo
	Enemies     []EnemyInfo
	Projectiles []ProjectileInfo
	Beams       []component.Beam
	Particles   []component.Particle

	WaveClear *WaveClearSummary
}

// Snapshot собирает срез текущего кадра.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Money:             g.money,
		Lives:             g.lives,
		WaveNumber:        g.WaveNumber(),
		Phase:             g.ECS.Phase,
		GameOver:          g.gameOver,
		AutoWave:          g.autoWave,
		AutoWaveRemaining: g.autoWaveTimer,
		Turbo:             g.turbo,
		Beams:             g.ECS.Beams,
		Particles:         g.ECS.Particles,
		WaveClear:         g.lastClear,
	}

	for id, tower := range g.ECS.Towers {
		def := defs.TowerLibrary[tower.Type]
		snap.Towers = append(snap.Towers, TowerInfo{
			ID:          id,
			Type:        tower.Type,
			Pos:         tower.Pos,
			Level:       tower.Level,
			LevelCap:    def.LevelCap,
			Stats:       tower.Stats(),
			UpgradeCost: def.UpgradeCost(tower.Level),
			Selected:    id == g.selectedTower,
		})
	}
	sort.Slice(snap.Towers, func(i, j int) bool { return snap.Towers[i].ID < snap.Towers[j].ID })

	for id, enemy := range g.ECS.Enemies {
		if !enemy.Alive {
			continue
		}
		snap.Enemies = append(snap.Enemies, EnemyInfo{
			ID:        id,
			Pos:       g.Path.PositionAt(enemy.Progress),
			Health:    enemy.Health,
			MaxHealth: enemy.MaxHealth,
			Radius:    enemy.Radius,
			Variant:   enemy.Variant,
		})
	}
	sort.Slice(snap.Enemies, func(i, j int) bool { return snap.Enemies[i].ID < snap.Enemies[j].ID })

	for _, proj := range g.ECS.Projectiles {
		snap.Projectiles = append(snap.Projectiles, ProjectileInfo{
			Pos:    proj.Pos,
			Splash: proj.Splash,
		})
	}

	return snap
}
