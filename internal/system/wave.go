// internal/system/wave.go
package system

import (
	"math"

	"go-path-defense/internal/component"
	"go-path-defense/internal/config"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/entity"
	"go-path-defense/internal/event"
)

// WaveParams — расчётные параметры одной волны.
type WaveParams struct {
	Count    int
	Health   float64
	Speed    float64
	SpawnGap float64
}

// WaveParameters — детерминированная формула сложности по индексу волны.
// HP растёт геометрически, количество и скорость — линейно с потолком,
// интервал спавна линейно сжимается до минимума. Рост бесконечный,
// но плотность спавна выходит на насыщение.
func WaveParameters(index int) WaveParams {
	if index < 0 {
		index = 0
	}
	countBonus := index * config.WaveCountStep
	if countBonus > config.WaveCountMaxBonus {
		countBonus = config.WaveCountMaxBonus
	}
	return WaveParams{
		Count:    config.WaveBaseCount + countBonus,
		Health:   config.WaveBaseHealth * math.Pow(config.WaveHealthGrowth, float64(index)),
		Speed:    math.Min(config.WaveBaseSpeed+config.WaveSpeedStep*float64(index), config.WaveSpeedMax),
		SpawnGap: math.Max(config.WaveBaseGap-config.WaveGapStep*float64(index), config.WaveGapMin),
	}
}

// BuildSpawnQueue разворачивает параметры волны в упорядоченную очередь
// спавнов. С пороговой волны каждый пятый слот занимает бронированный
// вариант, с более поздней — в конец очереди добавляется один босс.
func BuildSpawnQueue(index int) []component.SpawnRecord {
	p := WaveParameters(index)
	queue := make([]component.SpawnRecord, 0, p.Count+1)
	for i := 0; i < p.Count; i++ {
		rec := component.SpawnRecord{
			Health:  p.Health,
			Speed:   p.Speed,
			Variant: defs.EnemyNormal,
		}
		if index >= config.ArmoredFromWave && (i+1)%config.ArmoredSlotStride == 0 {
			v := defs.VariantLibrary[defs.EnemyArmored]
			rec.Variant = defs.EnemyArmored
			rec.Health = p.Health * v.HealthFactor
			rec.Speed = p.Speed * v.SpeedFactor
		}
		queue = append(queue, rec)
	}
	if index >= config.BossFromWave {
		v := defs.VariantLibrary[defs.EnemyBoss]
		queue = append(queue, component.SpawnRecord{
			Health:  p.Health * v.HealthFactor,
			Speed:   p.Speed * v.SpeedFactor,
			Variant: defs.EnemyBoss,
		})
	}
	return queue
}

// WaveSystem потребляет очередь спавнов текущей волны.
type WaveSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewWaveSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *WaveSystem {
	return &WaveSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

// StartWave строит состояние новой волны по её индексу.
func (s *WaveSystem) StartWave(index int) *component.Wave {
	p := WaveParameters(index)
	return &component.Wave{
		Index:         index,
		Queue:         BuildSpawnQueue(index),
		SpawnInterval: p.SpawnGap,
		SpawnTimer:    0,
		InProgress:    true,
	}
}

// Update накапливает время и снимает записи с очереди. Интервал вычитается
// из аккумулятора, поэтому при большом dt за один тик легально выйдет
// несколько спавнов подряд.
func (s *WaveSystem) Update(deltaTime float64, wave *component.Wave) {
	if wave == nil || !wave.InProgress || len(wave.Queue) == 0 {
		return
	}
	wave.SpawnTimer += deltaTime
	for wave.SpawnTimer >= wave.SpawnInterval && len(wave.Queue) > 0 {
		s.spawnEnemy(wave.Queue[0])
		wave.Queue = wave.Queue[1:]
		wave.SpawnTimer -= wave.SpawnInterval
	}
}

func (s *WaveSystem) spawnEnemy(rec component.SpawnRecord) {
	v := defs.VariantLibrary[rec.Variant]
	id := s.ecs.NewEntity()
	s.ecs.Enemies[id] = &component.Enemy{
		Variant:   rec.Variant,
		Progress:  0,
		Health:    rec.Health,
		MaxHealth: rec.Health,
		Speed:     rec.Speed,
		Radius:    v.Radius,
		Alive:     true,
	}
}
