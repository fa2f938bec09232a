// internal/system/projectile_test.go
package system_test

import (
	"math"
	"testing"

	"go-path-defense/internal/component"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/entity"
	"go-path-defense/internal/event"
	"go-path-defense/internal/system"
	"go-path-defense/internal/types"
	"go-path-defense/pkg/path"
)

func newProjectileFixture() (*entity.ECS, *system.ProjectileSystem, *system.CombatSystem) {
	ecs := entity.NewECS()
	p := straightPath()
	cs := system.NewCombatSystem(ecs, p, event.NewDispatcher())
	ps := system.NewProjectileSystem(ecs, p, cs, nil)
	return ecs, ps, cs
}

func addProjectile(ecs *entity.ECS, proj component.Projectile) types.EntityID {
	id := ecs.NewEntity()
	ecs.Projectiles[id] = &proj
	return id
}

func TestProjectileHomesTowardTarget(t *testing.T) {
	ecs, ps, _ := newProjectileFixture()
	target := spawnEnemy(ecs, 100, 24) // позиция (100, 0)
	addProjectile(ecs, component.Projectile{
		Pos:      path.Point{X: 100, Y: 200},
		Speed:    420,
		Damage:   12,
		TargetID: target,
		Source:   defs.TowerBasic,
	})

	ps.Update(0.1)

	if got := len(ecs.Projectiles); got != 1 {
		t.Fatalf("projectiles = %d, want 1 still in flight", got)
	}
	for _, proj := range ecs.Projectiles {
		if math.Abs(proj.Pos.X-100) > 1e-9 || math.Abs(proj.Pos.Y-158) > 1e-9 {
			t.Errorf("projectile pos = %+v, want (100, 158)", proj.Pos)
		}
	}
	if ecs.Enemies[target].Health != 24 {
		t.Errorf("target damaged before impact")
	}
}

func TestProjectileImpactAppliesDamage(t *testing.T) {
	ecs, ps, _ := newProjectileFixture()
	target := spawnEnemy(ecs, 100, 24)
	addProjectile(ecs, component.Projectile{
		Pos:      path.Point{X: 105, Y: 0}, // в радиусе поражения
		Speed:    420,
		Damage:   12,
		TargetID: target,
		Source:   defs.TowerBasic,
	})

	ps.Update(0.016)

	if got := len(ecs.Projectiles); got != 0 {
		t.Fatalf("projectiles after impact = %d, want 0", got)
	}
	if got := ecs.Enemies[target].Health; got != 12 {
		t.Errorf("target health = %v, want 12", got)
	}
}

func TestProjectileDroppedWhenTargetGone(t *testing.T) {
	ecs, ps, _ := newProjectileFixture()

	dead := spawnEnemy(ecs, 100, 24)
	ecs.Enemies[dead].Alive = false
	bystander := spawnEnemy(ecs, 105, 24)

	addProjectile(ecs, component.Projectile{
		Pos:      path.Point{X: 105, Y: 0},
		Speed:    420,
		Damage:   12,
		TargetID: dead,
		Source:   defs.TowerBasic,
	})
	// Цель, которой уже нет в ECS.
	addProjectile(ecs, component.Projectile{
		Pos:      path.Point{X: 105, Y: 0},
		Speed:    420,
		Damage:   12,
		TargetID: 9999,
		Source:   defs.TowerBasic,
	})

	ps.Update(0.016)

	if got := len(ecs.Projectiles); got != 0 {
		t.Fatalf("projectiles = %d, want 0", got)
	}
	if ecs.Enemies[dead].Health != 24 || ecs.Enemies[bystander].Health != 24 {
		t.Errorf("dropped projectile dealt damage")
	}
}

func TestSplashDamagesAreaButNotPrimaryTwice(t *testing.T) {
	ecs, ps, _ := newProjectileFixture()

	primary := spawnEnemy(ecs, 100, 24)
	near := spawnEnemy(ecs, 130, 24) // в 30 от точки попадания
	distant := spawnEnemy(ecs, 300, 24)

	addProjectile(ecs, component.Projectile{
		Pos:          path.Point{X: 100, Y: 5},
		Speed:        300,
		Damage:       9,
		TargetID:     primary,
		Splash:       true,
		SplashRadius: 55,
		Source:       defs.TowerSplash,
	})

	ps.Update(0.016)

	if got := ecs.Enemies[primary].Health; got != 15 {
		t.Errorf("primary health = %v, want 15 (single application)", got)
	}
	if got := ecs.Enemies[near].Health; got != 15 {
		t.Errorf("near enemy health = %v, want 15", got)
	}
	if got := ecs.Enemies[distant].Health; got != 24 {
		t.Errorf("distant enemy health = %v, want 24", got)
	}
}

func TestProjectileCulledOffscreen(t *testing.T) {
	ecs, ps, _ := newProjectileFixture()

	// Живая цель у края: снаряд стартует далеко за экраном и после шага
	// остаётся за границей с запасом.
	target := spawnEnemy(ecs, 999, 100000)
	addProjectile(ecs, component.Projectile{
		Pos:      path.Point{X: -4000, Y: 0},
		Speed:    10,
		Damage:   12,
		TargetID: target,
		Source:   defs.TowerBasic,
	})

	ps.Update(0.016)

	if got := len(ecs.Projectiles); got != 0 {
		t.Errorf("offscreen projectile survived, projectiles = %d", got)
	}
}
