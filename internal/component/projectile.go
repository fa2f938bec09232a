// internal/component/projectile.go
package component

import (
	"go-path-defense/internal/defs"
	"go-path-defense/internal/types"
	"go-path-defense/pkg/path"
)

// Projectile — летящий снаряд. TargetID — слабая ссылка: если цель
// умерла до попадания, снаряд просто исчезает, перенаведения нет.
type Projectile struct {
	Pos          path.Point
	Speed        float64
	Damage       float64
	TargetID     types.EntityID
	Splash       bool // площадной урон в точке попадания
	SplashRadius float64
	Source       defs.TowerType // для таблицы модификаторов урона
}
