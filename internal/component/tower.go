// internal/component/tower.go
package component

import (
	"go-path-defense/internal/defs"
	"go-path-defense/pkg/path"
)

// Tower — установленная башня. Позиция фиксируется при постановке,
// башни не продаются и не уничтожаются в течение сессии.
type Tower struct {
	Type         defs.TowerType
	Pos          path.Point
	Level        int     // >= 1; выше капа уровня действует овер-тариф
	FireCooldown float64 // оставшееся время до следующего выстрела
}

// Stats возвращает производные характеристики башни на текущем уровне.
func (t *Tower) Stats() defs.Stats {
	return defs.TowerLibrary[t.Type].StatsAt(t.Level)
}
