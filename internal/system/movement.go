// internal/system/movement.go
package system

import (
	"go-path-defense/internal/entity"
	"go-path-defense/internal/event"
	"go-path-defense/pkg/path"
)

// MovementSystem продвигает врагов вдоль пути и фиксирует утечки.
type MovementSystem struct {
	ecs             *entity.ECS
	path            *path.Path
	eventDispatcher *event.Dispatcher
}

func NewMovementSystem(ecs *entity.ECS, p *path.Path, eventDispatcher *event.Dispatcher) *MovementSystem {
	return &MovementSystem{ecs: ecs, path: p, eventDispatcher: eventDispatcher}
}

// Update сдвигает прогресс живых врагов. Враг, дошедший до конца пути,
// помечается утёкшим: событие снимает жизнь в Game.
func (s *MovementSystem) Update(deltaTime float64) {
	total := s.path.Length()
	for id, enemy := range s.ecs.Enemies {
		if !enemy.Alive {
			continue
		}
		enemy.Progress += enemy.Speed * deltaTime
		if enemy.Progress >= total {
			enemy.Progress = total
			enemy.Alive = false
			enemy.Leaked = true
			enemy.Linger = 0
			s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyLeaked, Data: id})
		}
	}
}

// Prune удаляет мёртвых врагов, у которых истёк льготный интервал.
// Пока труп числится в ECS, снаряды в полёте корректно сбрасываются
// по слабой ссылке, а анимация смерти успевает отыграть.
func (s *MovementSystem) Prune(deltaTime float64) {
	for id, enemy := range s.ecs.Enemies {
		if enemy.Alive {
			continue
		}
		enemy.Linger -= deltaTime
		if enemy.Linger <= 0 {
			delete(s.ecs.Enemies, id)
		}
	}
}
