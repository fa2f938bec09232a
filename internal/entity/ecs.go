// internal/entity/ecs.go
package entity

import (
	"go-path-defense/internal/component"
	"go-path-defense/internal/types"
)

// ECS хранит все игровые сущности как карты компонентов по EntityID.
type ECS struct {
	GameTime float64
	NextID   types.EntityID

	Enemies     map[types.EntityID]*component.Enemy
	Towers      map[types.EntityID]*component.Tower
	Projectiles map[types.EntityID]*component.Projectile

	// Лучи пересобираются каждый тик, их время жизни — один кадр.
	Beams []component.Beam

	Particles []component.Particle

	Wave  *component.Wave
	Phase component.Phase
}

func NewECS() *ECS {
	return &ECS{
		NextID:      1,
		Enemies:     make(map[types.EntityID]*component.Enemy),
		Towers:      make(map[types.EntityID]*component.Tower),
		Projectiles: make(map[types.EntityID]*component.Projectile),
		Wave:        nil,
		Phase:       component.PhaseIdle,
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}
