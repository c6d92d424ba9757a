package storage

import (
	"time"

	"dungeon-core/internal/core/types"
	"dungeon-core/internal/domain"
)

// Snapshot - то, что герой помнит об одном уровне: инертные образы объектов по клеткам.
type Snapshot struct {
	Seed      int64
	Timestamp int64
	Depth     int
	Width     int
	Height    int
	Cells     []CellRecord
}

// CellRecord - одна запомненная клетка. Pieces идут в порядке разделов, ландшафт первым.
type CellRecord struct {
	Pos    domain.Point
	Pieces []PieceRecord
}

// PieceRecord - образ одного объекта.
type PieceRecord struct {
	Category domain.Category
	Glyph    types.Glyph
	Name     string
	Text     string
}

// Capture снимает память mem об уровне l. Клетки идут в порядке строк.
func Capture(l *domain.Level, mem *domain.Memory, seed int64) *Snapshot {
	s := &Snapshot{
		Seed:      seed,
		Timestamp: time.Now().Unix(),
		Depth:     l.Depth,
		Width:     l.Width,
		Height:    l.Height,
	}

	for y := 0; y < l.Height; y++ {
		for x := 0; x < l.Width; x++ {
			p := domain.Point{X: x, Y: y}
			tile, ok := mem.Recall(l, p)
			if !ok {
				continue
			}
			cell := CellRecord{Pos: p}
			for _, o := range tile.All() {
				cell.Pieces = append(cell.Pieces, pieceOf(o))
			}
			s.Cells = append(s.Cells, cell)
		}
	}
	return s
}

func pieceOf(o domain.Occupant) PieceRecord {
	r := domain.NewRemnant(o)
	name, text := r.Describe()
	return PieceRecord{Category: r.Category(), Glyph: r.Appearance(), Name: name, Text: text}
}

// Restore кладет запомненные клетки в память mem для уровня l.
// Клетки за пределами l пропускаются.
func (s *Snapshot) Restore(l *domain.Level, mem *domain.Memory) int {
	restored := 0
	for _, cell := range s.Cells {
		if !l.InBounds(cell.Pos) {
			continue
		}
		mem.Store(l, cell.Pos, cell.Tile())
		restored++
	}
	return restored
}

// Tile собирает клетку из образов. Без ландшафта клетка остается неизвестной.
func (c CellRecord) Tile() *domain.Tile {
	var terrain domain.Occupant
	rest := make([]domain.Occupant, 0, len(c.Pieces))
	for _, p := range c.Pieces {
		r := domain.MakeRemnant(p.Category, p.Glyph, p.Name, p.Text)
		if terrain == nil && p.Category == domain.CategoryTerrain {
			terrain = r
			continue
		}
		rest = append(rest, r)
	}

	t := domain.NewTile(terrain)
	for _, r := range rest {
		t.Add(r)
	}
	return t
}
