// internal/component/beam.go
package component

import "go-path-defense/pkg/path"

// Beam — запись одного кадра работы лазера: отрезок, вдоль которого
// в этом тике наносится урон. Между тиками не сохраняется, список
// лучей очищается и строится заново каждый кадр.
type Beam struct {
	Start, End path.Point
	DPS        float64
}
