package domain

import (
	"dungeon-core/internal/composite"
)

// Memory - память карты: инертные копии клеток, которые сущность видела.
type Memory struct {
	composite.Leaf
	levels map[*Level]map[Point]*Tile
	// ревизия живой клетки на момент снятия копии
	revs map[*Level]map[Point]uint64
}

func NewMemory() *Memory {
	return &Memory{
		Leaf:   composite.NewLeaf(composite.TypeMemory),
		levels: make(map[*Level]map[Point]*Tile),
		revs:   make(map[*Level]map[Point]uint64),
	}
}

// Remember снимает копию клетки p уровня l, если клетка изменилась с прошлого раза.
// Возвращает true, если копия обновлена.
func (m *Memory) Remember(l *Level, p Point) bool {
	tile, ok := l.Tile(p)
	if !ok {
		return false
	}
	revs, ok := m.revs[l]
	if !ok {
		revs = make(map[Point]uint64)
		m.revs[l] = revs
	}
	if rev, seen := revs[p]; seen && rev == tile.Revision() {
		return false
	}
	m.put(l, p, tile.Copy())
	revs[p] = tile.Revision()
	return true
}

// Store кладет готовую копию (загрузка снимка памяти).
// Следующий Remember этой клетки перезапишет копию.
func (m *Memory) Store(l *Level, p Point, t *Tile) {
	m.put(l, p, t)
	delete(m.revs[l], p)
}

func (m *Memory) put(l *Level, p Point, t *Tile) {
	cells, ok := m.levels[l]
	if !ok {
		cells = make(map[Point]*Tile)
		m.levels[l] = cells
	}
	cells[p] = t
}

// Recall возвращает запомненную клетку.
func (m *Memory) Recall(l *Level, p Point) (*Tile, bool) {
	t, ok := m.levels[l][p]
	return t, ok
}

// Known - сколько клеток уровня запомнено.
func (m *Memory) Known(l *Level) int {
	return len(m.levels[l])
}

// Forget стирает память об уровне.
func (m *Memory) Forget(l *Level) {
	delete(m.levels, l)
	delete(m.revs, l)
}
