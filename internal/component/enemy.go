// internal/component/enemy.go
package component

import "go-path-defense/internal/defs"

// Enemy представляет вражескую сущность.
// Позиция хранится одним числом — пройденной длиной дуги вдоль пути;
// экранные координаты восстанавливаются через path.PositionAt.
type Enemy struct {
	Variant   defs.EnemyVariant
	Progress  float64 // пройденная длина дуги, ограничена длиной пути
	Health    float64
	MaxHealth float64
	Speed     float64 // единиц пути в секунду
	Radius    float64
	Alive     bool
	Leaked    bool    // дошёл до конца пути и снял жизнь
	Rewarded  bool    // награда за убийство уже начислена
	Linger    float64 // оставшееся время жизни трупа для анимации
}
