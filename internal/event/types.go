// internal/event/types.go
package event

const (
	EnemyKilled EventType = "EnemyKilled" // Враг уничтожен башней
	EnemyLeaked EventType = "EnemyLeaked" // Враг дошёл до конца пути
	WaveStarted EventType = "WaveStarted" // Волна запущена
	WaveEnded   EventType = "WaveEnded"   // Волна закончилась
	TowerPlaced EventType = "TowerPlaced" // Башня построена
	GameOver    EventType = "GameOver"    // Жизни закончились
)
