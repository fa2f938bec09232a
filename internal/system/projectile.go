// internal/system/projectile.go
package system

import (
	"math"

	"go-path-defense/internal/component"
	"go-path-defense/internal/config"
	"go-path-defense/internal/entity"
	"go-path-defense/internal/types"
	"go-path-defense/pkg/path"
)

// ProjectileSystem управляет полётом снарядов и нанесением урона.
type ProjectileSystem struct {
	ecs          *entity.ECS
	path         *path.Path
	combatSystem *CombatSystem
	visualSystem *VisualEffectSystem
}

func NewProjectileSystem(ecs *entity.ECS, p *path.Path, combatSystem *CombatSystem, visualSystem *VisualEffectSystem) *ProjectileSystem {
	return &ProjectileSystem{
		ecs:          ecs,
		path:         p,
		combatSystem: combatSystem,
		visualSystem: visualSystem,
	}
}

func (s *ProjectileSystem) Update(deltaTime float64) {
	for id, proj := range s.ecs.Projectiles {
		target, targetExists := s.ecs.Enemies[proj.TargetID]
		if !targetExists || !target.Alive {
			// Цель пропала до попадания — снаряд сбрасывается без эффекта.
			delete(s.ecs.Projectiles, id)
			continue
		}

		// Самонаведение: направление пересчитывается к текущей позиции
		// цели каждый тик, это не баллистика по точке выстрела.
		targetPos := s.path.PositionAt(target.Progress)
		dx := targetPos.X - proj.Pos.X
		dy := targetPos.Y - proj.Pos.Y
		dist := math.Hypot(dx, dy)

		if dist <= config.ProjectileImpactRadius || dist <= proj.Speed*deltaTime {
			s.hitTarget(id, proj, targetPos)
			continue
		}

		proj.Pos.X += dx / dist * proj.Speed * deltaTime
		proj.Pos.Y += dy / dist * proj.Speed * deltaTime

		if proj.Pos.X < -config.ProjectileCullMargin ||
			proj.Pos.Y < -config.ProjectileCullMargin ||
			proj.Pos.X > config.ScreenWidth+config.ProjectileCullMargin ||
			proj.Pos.Y > config.ScreenHeight+config.ProjectileCullMargin {
			delete(s.ecs.Projectiles, id)
		}
	}
}

// hitTarget наносит прямой урон цели и, для осколочных снарядов,
// площадной урон всем остальным живым врагам в радиусе от точки
// попадания. Основная цель в осколочный список не входит.
func (s *ProjectileSystem) hitTarget(projectileID types.EntityID, proj *component.Projectile, impact path.Point) {
	s.combatSystem.ApplyDamage(proj.TargetID, proj.Damage, proj.Source)

	if proj.Splash {
		for enemyID, enemy := range s.ecs.Enemies {
			if enemyID == proj.TargetID || !enemy.Alive {
				continue
			}
			if s.path.PositionAt(enemy.Progress).Dist(impact) <= proj.SplashRadius {
				s.combatSystem.ApplyDamage(enemyID, proj.Damage, proj.Source)
			}
		}
		if s.visualSystem != nil {
			s.visualSystem.SpawnSplashRing(impact, proj.SplashRadius)
		}
	}
	if s.visualSystem != nil {
		s.visualSystem.SpawnImpact(impact)
	}

	delete(s.ecs.Projectiles, projectileID)
}
