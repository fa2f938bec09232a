// internal/component/visual.go
package component

import (
	"image/color"

	"go-path-defense/pkg/path"
)

// Particle — косметическая частица (вспышка попадания, осколки смерти).
// На логику игры не влияет.
type Particle struct {
	Pos     path.Point
	Vel     path.Point
	Life    float64
	MaxLife float64
	Size    float32
	Color   color.RGBA
}
