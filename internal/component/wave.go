// internal/component/wave.go
package component

import "go-path-defense/internal/defs"

// SpawnRecord — один запланированный спавн в очереди волны.
type SpawnRecord struct {
	Health  float64
	Speed   float64
	Variant defs.EnemyVariant
}

// Wave — состояние текущей волны: очередь спавнов и таймер интервала.
type Wave struct {
	Index         int // 0-based, в HUD показывается Index+1
	Queue         []SpawnRecord
	SpawnInterval float64
	SpawnTimer    float64 // накопленное время с последнего спавна
	InProgress    bool
}
