// internal/system/combat.go
package system

import (
	"math"

	"go-path-defense/internal/component"
	"go-path-defense/internal/config"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/entity"
	"go-path-defense/internal/event"
	"go-path-defense/internal/types"
	"go-path-defense/pkg/path"
)

// CombatSystem управляет прицеливанием и стрельбой башен.
type CombatSystem struct {
	ecs             *entity.ECS
	path            *path.Path
	eventDispatcher *event.Dispatcher
}

func NewCombatSystem(ecs *entity.ECS, p *path.Path, eventDispatcher *event.Dispatcher) *CombatSystem {
	return &CombatSystem{ecs: ecs, path: p, eventDispatcher: eventDispatcher}
}

// Update обрабатывает перезарядку и выстрелы. Лучи живут один кадр,
// поэтому список очищается и собирается заново на каждом тике.
func (s *CombatSystem) Update(deltaTime float64) {
	s.ecs.Beams = s.ecs.Beams[:0]

	for _, tower := range s.ecs.Towers {
		if tower.Type == defs.TowerBeam {
			s.updateBeamTower(tower, deltaTime)
			continue
		}

		if tower.FireCooldown > 0 {
			tower.FireCooldown -= deltaTime
			continue
		}

		stats := tower.Stats()
		targetID := s.findFurthestEnemyInRange(tower.Pos, stats.Range)
		if targetID == 0 {
			continue // нет цели — башня просто не стреляет в этом тике
		}
		s.createProjectile(tower, stats, targetID)
		tower.FireCooldown = 1.0 / stats.FireRate
	}
}

// findFurthestEnemyInRange выбирает врага с наибольшим прогрессом по пути:
// защита смещается к тому, кто ближе всех к прорыву.
func (s *CombatSystem) findFurthestEnemyInRange(from path.Point, radius float64) types.EntityID {
	var best types.EntityID
	bestProgress := -1.0
	for id, enemy := range s.ecs.Enemies {
		if !enemy.Alive {
			continue
		}
		if s.path.PositionAt(enemy.Progress).Dist(from) > radius {
			continue
		}
		if enemy.Progress > bestProgress {
			bestProgress = enemy.Progress
			best = id
		}
	}
	return best
}

// findOldestEnemyInRange выбирает врага с наименьшим ID — старейшего на
// поле. Лазер предназначен прижимать застрявшие угрозы, а не гнаться
// за риском утечки.
func (s *CombatSystem) findOldestEnemyInRange(from path.Point, radius float64) types.EntityID {
	var best types.EntityID
	for id, enemy := range s.ecs.Enemies {
		if !enemy.Alive {
			continue
		}
		if s.path.PositionAt(enemy.Progress).Dist(from) > radius {
			continue
		}
		if best == 0 || id < best {
			best = id
		}
	}
	return best
}

// updateBeamTower строит луч текущего кадра и наносит непрерывный урон.
// Луч идёт от башни в сторону цели на удвоенную дальность и пробивает
// всех врагов в своей полосе, не только захваченную цель.
func (s *CombatSystem) updateBeamTower(tower *component.Tower, deltaTime float64) {
	stats := tower.Stats()
	targetID := s.findOldestEnemyInRange(tower.Pos, stats.Range)
	if targetID == 0 {
		return
	}

	targetPos := s.path.PositionAt(s.ecs.Enemies[targetID].Progress)
	dx := targetPos.X - tower.Pos.X
	dy := targetPos.Y - tower.Pos.Y
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		return
	}
	reach := stats.Range * 2
	end := path.Point{
		X: tower.Pos.X + dx/dist*reach,
		Y: tower.Pos.Y + dy/dist*reach,
	}
	s.ecs.Beams = append(s.ecs.Beams, component.Beam{
		Start: tower.Pos,
		End:   end,
		DPS:   stats.Damage,
	})

	for id, enemy := range s.ecs.Enemies {
		if !enemy.Alive {
			continue
		}
		pos := s.path.PositionAt(enemy.Progress)
		if path.DistToSegment(pos, tower.Pos, end) <= config.BeamHalfWidth {
			s.ApplyDamage(id, stats.Damage*deltaTime, defs.TowerBeam)
		}
	}
}

func (s *CombatSystem) createProjectile(tower *component.Tower, stats defs.Stats, targetID types.EntityID) {
	id := s.ecs.NewEntity()
	s.ecs.Projectiles[id] = &component.Projectile{
		Pos:          tower.Pos,
		Speed:        stats.ProjectileSpeed,
		Damage:       stats.Damage,
		TargetID:     targetID,
		Splash:       tower.Type == defs.TowerSplash,
		SplashRadius: stats.SplashRadius,
		Source:       tower.Type,
	}
}

// ApplyDamage наносит урон с учётом таблицы модификаторов
// (тип башни, вариант врага). Смерть фиксируется ровно один раз:
// повторный урон по мёртвому врагу игнорируется.
func (s *CombatSystem) ApplyDamage(id types.EntityID, damage float64, source defs.TowerType) {
	enemy, ok := s.ecs.Enemies[id]
	if !ok || !enemy.Alive {
		return
	}
	enemy.Health -= damage * defs.DamageModifier(source, enemy.Variant)
	if enemy.Health <= 0 {
		enemy.Health = 0
		enemy.Alive = false
		enemy.Linger = config.CorpseLingerTime
		s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyKilled, Data: id})
	}
}

// KillReward возвращает награду за убитого врага: не меньше фиксированного
// минимума, иначе доля от максимального HP; у босса — крупная фиксированная.
func KillReward(enemy *component.Enemy) int {
	if v := defs.VariantLibrary[enemy.Variant]; v.FlatReward > 0 {
		return v.FlatReward
	}
	reward := int(math.Round(enemy.MaxHealth * config.KillRewardFraction))
	if reward < config.KillRewardFloor {
		reward = config.KillRewardFloor
	}
	return reward
}
