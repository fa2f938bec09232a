// pkg/path/path.go
package path

import "math"

// Point — точка на игровой плоскости в пикселях.
type Point struct {
	X, Y float64
}

// Dist возвращает евклидово расстояние до другой точки.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Segment — один отрезок полилинии с накопленным смещением от начала пути.
type Segment struct {
	Start, End Point
	Length     float64
	Offset     float64 // суммарная длина пути до начала этого отрезка
}

// Path — неизменяемая полилиния из контрольных точек.
// Позиция врага задаётся одним числом: пройденной длиной дуги s.
type Path struct {
	waypoints []Point
	segments  []Segment
	length    float64
}

// New строит путь по упорядоченным контрольным точкам.
// Требуется не меньше двух точек; вырожденные отрезки нулевой длины отбрасываются.
func New(waypoints []Point) *Path {
	p := &Path{waypoints: append([]Point(nil), waypoints...)}
	for i := 0; i+1 < len(waypoints); i++ {
		segLen := waypoints[i].Dist(waypoints[i+1])
		if segLen == 0 {
			continue
		}
		p.segments = append(p.segments, Segment{
			Start:  waypoints[i],
			End:    waypoints[i+1],
			Length: segLen,
			Offset: p.length,
		})
		p.length += segLen
	}
	return p
}

// Length возвращает полную длину полилинии.
func (p *Path) Length() float64 {
	return p.length
}

// Waypoints возвращает исходные контрольные точки (для отрисовки).
func (p *Path) Waypoints() []Point {
	return p.waypoints
}

// Segments возвращает отрезки пути.
func (p *Path) Segments() []Segment {
	return p.segments
}

// PositionAt возвращает точку на пути на дуговой дистанции s от начала.
// s ограничивается диапазоном [0, Length]: до начала — первая точка,
// за концом — последняя. Отрезков мало, линейный проход дешевле дерева.
func (p *Path) PositionAt(s float64) Point {
	if len(p.segments) == 0 {
		if len(p.waypoints) > 0 {
			return p.waypoints[0]
		}
		return Point{}
	}
	if s <= 0 {
		return p.segments[0].Start
	}
	if s >= p.length {
		return p.segments[len(p.segments)-1].End
	}
	for _, seg := range p.segments {
		if s <= seg.Offset+seg.Length {
			t := (s - seg.Offset) / seg.Length
			return Point{
				X: seg.Start.X + (seg.End.X-seg.Start.X)*t,
				Y: seg.Start.Y + (seg.End.Y-seg.Start.Y)*t,
			}
		}
	}
	return p.segments[len(p.segments)-1].End
}

// MinDistanceTo возвращает минимальное расстояние от точки до полилинии.
// Используется для запретной зоны вокруг пути при постановке башен.
func (p *Path) MinDistanceTo(x, y float64) float64 {
	pt := Point{X: x, Y: y}
	min := math.Inf(1)
	for _, seg := range p.segments {
		if d := distToSegment(pt, seg.Start, seg.End); d < min {
			min = d
		}
	}
	return min
}

// distToSegment — расстояние от точки до отрезка: проекция на прямую
// с ограничением параметра в [0, 1].
func distToSegment(p, a, b Point) float64 {
	abX := b.X - a.X
	abY := b.Y - a.Y
	abLen2 := abX*abX + abY*abY
	if abLen2 == 0 {
		return p.Dist(a)
	}
	t := ((p.X-a.X)*abX + (p.Y-a.Y)*abY) / abLen2
	t = math.Max(0, math.Min(1, t))
	return p.Dist(Point{X: a.X + abX*t, Y: a.Y + abY*t})
}

// DistToSegment — экспортированная версия для проверки луча лазера.
func DistToSegment(p, a, b Point) float64 {
	return distToSegment(p, a, b)
}
