package domain

import (
	"dungeon-core/internal/composite"
)

// Mover держит в согласии клетку, позицию и уровень сущности при перемещении.
// Требует у сущности Position и DungeonLevel.
type Mover struct {
	composite.Leaf
}

func NewMover() *Mover {
	return &Mover{Leaf: composite.NewLeaf(composite.TypeMover)}
}

// CanMove проверяет, можно ли поставить сущность в точку p уровня l.
// l == nil означает текущий уровень сущности.
func (m *Mover) CanMove(p Point, l *Level) bool {
	owner, ok := ownerOf(&m.Leaf)
	if !ok {
		return false
	}
	if l == nil {
		l = owner.Level()
	}
	if l == nil {
		return false
	}
	tile, ok := l.Tile(p)
	if !ok || tile.Has(owner) {
		return false
	}

	switch owner.Category() {
	case CategoryEntity:
		if tile.IsSolid() || tile.Count(CategoryEntity) >= EntitiesAllowedPerTile {
			return false
		}
	case CategoryItem:
		if tile.IsSolid() || tile.Count(CategoryItem) >= ItemsAllowedPerTile {
			return false
		}
	case CategoryTerrain:
		return false
	}
	return true
}

// TryMove переносит сущность в точку p уровня l (nil - текущий уровень).
func (m *Mover) TryMove(p Point, l *Level) bool {
	if !m.CanMove(p, l) {
		return false
	}
	owner, _ := ownerOf(&m.Leaf)
	if l == nil {
		l = owner.Level()
	}
	pos, err := owner.Position()
	if err != nil {
		return false
	}
	dl, err := owner.DungeonLevel()
	if err != nil {
		return false
	}

	m.leaveTile(owner)
	tile, _ := l.Tile(p)
	tile.Add(owner)
	pos.Set(p)
	dl.Set(l)
	return true
}

// TryStep - перемещение на соседнюю клетку по вектору.
func (m *Mover) TryStep(dx, dy int) bool {
	owner, ok := ownerOf(&m.Leaf)
	if !ok {
		return false
	}
	return m.TryMove(owner.Pos().Shift(dx, dy), nil)
}

// TryRemoveFromDungeon убирает сущность с клетки и с уровня.
func (m *Mover) TryRemoveFromDungeon() bool {
	owner, ok := ownerOf(&m.Leaf)
	if !ok {
		return false
	}
	removed := m.leaveTile(owner)
	if dl, err := owner.DungeonLevel(); err == nil {
		dl.Set(nil)
	}
	if pos, err := owner.Position(); err == nil && pos.Value() != Nowhere {
		pos.Set(Nowhere)
	}
	return removed
}

func (m *Mover) leaveTile(owner *Entity) bool {
	l := owner.Level()
	if l == nil {
		return false
	}
	tile, ok := l.Tile(owner.Pos())
	if !ok {
		return false
	}
	return tile.Remove(owner)
}
