// pkg/render/renderer.go
package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-path-defense/internal/app"
	"go-path-defense/internal/component"
	"go-path-defense/internal/config"
	"go-path-defense/internal/defs"
	"go-path-defense/pkg/path"
)

// Ghost — превью постановки башни под курсором.
type Ghost struct {
	Pos   path.Point
	Range float64
	Valid bool
}

// Renderer рисует игровое поле по снапшоту симуляции. Фон с маршрутом
// дорогой в отрисовке, поэтому рендерится один раз в изображение
// и дальше кладётся на экран одним вызовом.
type Renderer struct {
	path       *path.Path
	background *ebiten.Image
	whiteImg   *ebiten.Image
	vs         []ebiten.Vertex
	is         []uint16
}

// NewRenderer создаёт рендерер и предрендеривает фон.
func NewRenderer(p *path.Path) *Renderer {
	whiteImg := ebiten.NewImage(1, 1)
	whiteImg.Fill(color.White)

	r := &Renderer{
		path:     p,
		whiteImg: whiteImg,
	}
	r.background = ebiten.NewImage(config.ScreenWidth, config.ScreenHeight)
	r.renderBackground()
	return r
}

// renderBackground — градиентный фон и полоса маршрута.
func (r *Renderer) renderBackground() {
	r.background.Fill(config.BackgroundColor)

	centerX := float64(config.ScreenWidth) / 2
	centerY := float64(config.ScreenHeight) / 2
	maxDist := math.Hypot(centerX, centerY)
	// Крупная сетка вместо попиксельного градиента: фон статичный,
	// разница не видна, а генерация заметно быстрее.
	const cell = 8
	for y := 0; y < config.ScreenHeight; y += cell {
		for x := 0; x < config.ScreenWidth; x += cell {
			d := math.Hypot(float64(x)-centerX, float64(y)-centerY) / maxDist
			c := color.RGBA{
				R: uint8(20 + 18*(1-d)),
				G: uint8(20 + 10*d),
				B: uint8(30 + 35*(1-d)),
				A: 255,
			}
			vector.DrawFilledRect(r.background, float32(x), float32(y), cell, cell, c, false)
		}
	}

	r.strokePolyline(r.background, float32(config.PathKeepOut*1.4), config.PathGlowColor)
	r.strokePolyline(r.background, float32(config.PathKeepOut), config.PathColor)
}

// strokePolyline обводит маршрут врагов заданной шириной.
func (r *Renderer) strokePolyline(target *ebiten.Image, width float32, clr color.RGBA) {
	waypoints := r.path.Waypoints()
	if len(waypoints) < 2 {
		return
	}
	p := vector.Path{}
	p.MoveTo(float32(waypoints[0].X), float32(waypoints[0].Y))
	for _, wp := range waypoints[1:] {
		p.LineTo(float32(wp.X), float32(wp.Y))
	}

	r.vs, r.is = p.AppendVerticesAndIndicesForStroke(r.vs[:0], r.is[:0], &vector.StrokeOptions{
		Width:    width,
		LineCap:  vector.LineCapRound,
		LineJoin: vector.LineJoinRound,
	})
	for i := range r.vs {
		r.vs[i].ColorR = float32(clr.R) / 255
		r.vs[i].ColorG = float32(clr.G) / 255
		r.vs[i].ColorB = float32(clr.B) / 255
		r.vs[i].ColorA = float32(clr.A) / 255
	}
	target.DrawTriangles(r.vs, r.is, r.whiteImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

// Draw отрисовывает кадр целиком, кроме HUD-текста (он в internal/ui).
func (r *Renderer) Draw(screen *ebiten.Image, snap app.Snapshot, ghost *Ghost) {
	screen.DrawImage(r.background, nil)

	r.drawBeams(screen, snap.Beams)
	r.drawTowers(screen, snap.Towers)
	r.drawEnemies(screen, snap.Enemies)
	r.drawProjectiles(screen, snap.Projectiles)
	r.drawParticles(screen, snap.Particles)

	if ghost != nil {
		c := config.GhostValidColor
		if !ghost.Valid {
			c = config.GhostBadColor
		}
		vector.DrawFilledCircle(screen, float32(ghost.Pos.X), float32(ghost.Pos.Y), float32(config.TowerRadius), c, true)
		vector.StrokeCircle(screen, float32(ghost.Pos.X), float32(ghost.Pos.Y), float32(ghost.Range), 1, config.RangeColor, true)
	}
}

func (r *Renderer) drawTowers(screen *ebiten.Image, towers []app.TowerInfo) {
	for _, t := range towers {
		if t.Selected {
			vector.DrawFilledCircle(screen, float32(t.Pos.X), float32(t.Pos.Y), float32(t.Stats.Range), config.RangeColor, true)
		}
		def := defs.TowerLibrary[t.Type]
		vector.DrawFilledCircle(screen, float32(t.Pos.X), float32(t.Pos.Y), float32(config.TowerRadius), def.Visuals.Color, true)
		vector.StrokeCircle(screen, float32(t.Pos.X), float32(t.Pos.Y), float32(config.TowerRadius), 2, config.TowerStroke, true)

		// Засечки уровня вокруг башни; овер-уровни выделяются цветом.
		for i := 0; i < t.Level && i < 12; i++ {
			angle := -math.Pi/2 + float64(i)*2*math.Pi/12
			px := t.Pos.X + math.Cos(angle)*(config.TowerRadius+5)
			py := t.Pos.Y + math.Sin(angle)*(config.TowerRadius+5)
			pipColor := config.TowerStroke
			if i >= t.LevelCap {
				pipColor = config.SplashRingColor
			}
			vector.DrawFilledCircle(screen, float32(px), float32(py), 2.5, pipColor, true)
		}
	}
}

func (r *Renderer) drawEnemies(screen *ebiten.Image, enemies []app.EnemyInfo) {
	for _, e := range enemies {
		v := defs.VariantLibrary[e.Variant]
		vector.DrawFilledCircle(screen, float32(e.Pos.X), float32(e.Pos.Y), float32(e.Radius), v.Color, true)

		hpRatio := math.Max(e.Health/e.MaxHealth, 0)
		barWidth := float32(e.Radius * 3)
		barHeight := float32(5)
		x := float32(e.Pos.X) - barWidth/2
		y := float32(e.Pos.Y) - float32(e.Radius) - 10
		vector.DrawFilledRect(screen, x, y, barWidth, barHeight, config.HealthBarBack, false)
		fill := color.RGBA{R: uint8(255 * (1 - hpRatio)), G: uint8(220 * hpRatio), B: 140, A: 220}
		vector.DrawFilledRect(screen, x+1, y+1, (barWidth-2)*float32(hpRatio), barHeight-2, fill, false)
	}
}

func (r *Renderer) drawProjectiles(screen *ebiten.Image, projectiles []app.ProjectileInfo) {
	for _, p := range projectiles {
		radius := float32(4)
		if p.Splash {
			radius = 6
		}
		vector.DrawFilledCircle(screen, float32(p.Pos.X), float32(p.Pos.Y), radius, config.ProjectileColor, true)
	}
}

func (r *Renderer) drawBeams(screen *ebiten.Image, beams []component.Beam) {
	for _, b := range beams {
		vector.StrokeLine(screen, float32(b.Start.X), float32(b.Start.Y), float32(b.End.X), float32(b.End.Y), float32(config.BeamHalfWidth*2), color.RGBA{120, 255, 120, 60}, true)
		vector.StrokeLine(screen, float32(b.Start.X), float32(b.Start.Y), float32(b.End.X), float32(b.End.Y), 3, config.BeamColor, true)
	}
}

func (r *Renderer) drawParticles(screen *ebiten.Image, particles []component.Particle) {
	for _, p := range particles {
		fade := p.Life / p.MaxLife
		c := p.Color
		c.A = uint8(float64(c.A) * fade)
		vector.DrawFilledCircle(screen, float32(p.Pos.X), float32(p.Pos.Y), p.Size, c, false)
	}
}
