// internal/system/visual.go
package system

import (
	"image/color"
	"math"

	"go-path-defense/internal/component"
	"go-path-defense/internal/entity"
	"go-path-defense/internal/utils"
	"go-path-defense/pkg/path"
)

// VisualEffectSystem обновляет косметические частицы. На игровую
// логику не влияет и обновляется отдельно от боевых систем.
type VisualEffectSystem struct {
	ecs *entity.ECS
	rng *utils.PRNGService
}

func NewVisualEffectSystem(ecs *entity.ECS, rng *utils.PRNGService) *VisualEffectSystem {
	return &VisualEffectSystem{ecs: ecs, rng: rng}
}

func (s *VisualEffectSystem) Update(deltaTime float64) {
	alive := s.ecs.Particles[:0]
	for _, p := range s.ecs.Particles {
		p.Life -= deltaTime
		if p.Life <= 0 {
			continue
		}
		p.Pos.X += p.Vel.X * deltaTime
		p.Pos.Y += p.Vel.Y * deltaTime
		alive = append(alive, p)
	}
	s.ecs.Particles = alive
}

// SpawnImpact — короткая вспышка в точке попадания снаряда.
func (s *VisualEffectSystem) SpawnImpact(at path.Point) {
	s.burst(at, 4, 40, 0.2, color.RGBA{255, 230, 150, 255})
}

// SpawnSplashRing — разлёт осколков по радиусу взрыва.
func (s *VisualEffectSystem) SpawnSplashRing(at path.Point, radius float64) {
	count := 10
	for i := 0; i < count; i++ {
		angle := float64(i) / float64(count) * 2 * math.Pi
		speed := radius * 2.5
		s.ecs.Particles = append(s.ecs.Particles, component.Particle{
			Pos:     at,
			Vel:     path.Point{X: math.Cos(angle) * speed, Y: math.Sin(angle) * speed},
			Life:    0.35,
			MaxLife: 0.35,
			Size:    3,
			Color:   color.RGBA{255, 150, 60, 220},
		})
	}
}

// SpawnDeathBurst — осколки на месте убитого врага.
func (s *VisualEffectSystem) SpawnDeathBurst(at path.Point, base color.RGBA) {
	s.burst(at, 8, 90, 0.4, base)
}

func (s *VisualEffectSystem) burst(at path.Point, count int, speed, life float64, c color.RGBA) {
	for i := 0; i < count; i++ {
		angle := s.rng.Float64() * 2 * math.Pi
		v := speed * (0.5 + s.rng.Float64())
		s.ecs.Particles = append(s.ecs.Particles, component.Particle{
			Pos:     at,
			Vel:     path.Point{X: math.Cos(angle) * v, Y: math.Sin(angle) * v},
			Life:    life,
			MaxLife: life,
			Size:    float32(2 + s.rng.Intn(3)),
			Color:   c,
		})
	}
}
