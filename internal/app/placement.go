// internal/app/placement.go
package app

import (
	"go-path-defense/internal/component"
	"go-path-defense/internal/config"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/event"
	"go-path-defense/internal/types"
	"go-path-defense/pkg/path"
)

// CanPlaceTower проверяет легальность позиции для новой башни:
// внутри игрового прямоугольника, вне запретной зоны пути, не ближе
// минимальной дистанции к другим башням и по карману. Любой провал —
// отказ без изменения состояния.
func (g *Game) CanPlaceTower(pos path.Point, towerType defs.TowerType) bool {
	if g.gameOver {
		return false
	}
	def, ok := defs.TowerLibrary[towerType]
	if !ok {
		return false
	}

	if pos.X < config.PlacementInset || pos.Y < config.PlacementInset ||
		pos.X > config.ScreenWidth-config.PlacementInset ||
		pos.Y > config.ScreenHeight-config.PlacementInset {
		return false
	}
	if g.Path.MinDistanceTo(pos.X, pos.Y) < config.PathKeepOut {
		return false
	}
	for _, tower := range g.ECS.Towers {
		if tower.Pos.Dist(pos) < config.TowerSpacing {
			return false
		}
	}
	return g.money >= def.Cost
}

// PlaceTower ставит башню и списывает её стоимость атомарно:
// частично оплаченных состояний не бывает.
func (g *Game) PlaceTower(pos path.Point, towerType defs.TowerType) bool {
	if !g.CanPlaceTower(pos, towerType) {
		return false
	}
	def := defs.TowerLibrary[towerType]

	id := g.ECS.NewEntity()
	g.ECS.Towers[id] = &component.Tower{
		Type:  towerType,
		Pos:   pos,
		Level: 1,
	}
	g.money -= def.Cost
	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerPlaced, Data: id})
	return true
}

// TowerAt возвращает башню в радиусе клика от точки, если она есть.
func (g *Game) TowerAt(pos path.Point) (types.EntityID, bool) {
	for id, tower := range g.ECS.Towers {
		if tower.Pos.Dist(pos) <= config.ClickPickRadius {
			return id, true
		}
	}
	return 0, false
}
