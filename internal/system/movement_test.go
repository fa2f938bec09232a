// internal/system/movement_test.go
package system_test

import (
	"testing"

	"go-path-defense/internal/config"
	"go-path-defense/internal/entity"
	"go-path-defense/internal/event"
	"go-path-defense/internal/system"
)

func TestMovementAdvancesProgress(t *testing.T) {
	ecs := entity.NewECS()
	ms := system.NewMovementSystem(ecs, straightPath(), event.NewDispatcher())

	id := spawnEnemy(ecs, 100, 24)
	ecs.Enemies[id].Speed = 70

	ms.Update(0.5)

	if got := ecs.Enemies[id].Progress; got != 135 {
		t.Errorf("progress = %v, want 135", got)
	}
}

func TestEnemyLeaksAtPathEnd(t *testing.T) {
	ecs := entity.NewECS()
	dispatcher := event.NewDispatcher()
	listener := &recordingListener{}
	dispatcher.Subscribe(event.EnemyLeaked, listener)
	ms := system.NewMovementSystem(ecs, straightPath(), dispatcher)

	id := spawnEnemy(ecs, 990, 24)
	ecs.Enemies[id].Speed = 100

	ms.Update(0.2)

	enemy := ecs.Enemies[id]
	if enemy.Alive || !enemy.Leaked {
		t.Fatalf("enemy at path end = %+v, want dead and leaked", enemy)
	}
	if enemy.Progress != 1000 {
		t.Errorf("progress = %v, want clamped to 1000", enemy.Progress)
	}
	if got := listener.count(event.EnemyLeaked); got != 1 {
		t.Errorf("EnemyLeaked events = %d, want 1", got)
	}

	// Утёкший враг не задерживается на поле.
	ms.Prune(0.016)
	if _, ok := ecs.Enemies[id]; ok {
		t.Errorf("leaked enemy survived prune")
	}
}

func TestPruneRespectsCorpseLinger(t *testing.T) {
	ecs := entity.NewECS()
	ms := system.NewMovementSystem(ecs, straightPath(), event.NewDispatcher())

	id := spawnEnemy(ecs, 100, 24)
	ecs.Enemies[id].Alive = false
	ecs.Enemies[id].Linger = config.CorpseLingerTime

	ms.Prune(config.CorpseLingerTime / 2)
	if _, ok := ecs.Enemies[id]; !ok {
		t.Fatalf("corpse pruned before linger expired")
	}

	ms.Prune(config.CorpseLingerTime)
	if _, ok := ecs.Enemies[id]; ok {
		t.Errorf("corpse survived past linger time")
	}

	// Живых врагов чистка не трогает.
	alive := spawnEnemy(ecs, 100, 24)
	ms.Prune(10)
	if _, ok := ecs.Enemies[alive]; !ok {
		t.Errorf("alive enemy pruned")
	}
}
