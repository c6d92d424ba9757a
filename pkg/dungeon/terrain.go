package dungeon

import (
	"dungeon-core/internal/core/types"
	"dungeon-core/internal/domain"
)

// Terrain - неизменяемый ландшафт клетки. Один экземпляр разделяется всеми клетками
// одного вида, поэтому копия в памяти карты - он сам.
type Terrain struct {
	glyph types.Glyph
	name  string
	text  string
	solid bool
}

func NewTerrain(g types.Glyph, name, text string, solid bool) *Terrain {
	return &Terrain{glyph: g, name: name, text: text, solid: solid}
}

func (t *Terrain) Category() domain.Category { return domain.CategoryTerrain }
func (t *Terrain) Appearance() types.Glyph { return t.glyph }
func (t *Terrain) Describe() (name, text string) { return t.name, t.text }
func (t *Terrain) Remember() domain.Occupant { return t }
func (t *Terrain) IsSolid() bool { return t.solid }

var (
	Wall = NewTerrain(
		types.MakeGlyph('#', types.RGB(0xA8A29E), types.RGB(0x292524)),
		"wall", "Rough stone wall.", true)

	Floor = NewTerrain(
		types.MakeGlyph('.', types.RGB(0x57534E), types.RGB(0x0C0A09)),
		"floor", "Cold stone floor.", false)

	Corridor = NewTerrain(
		types.MakeGlyph('.', types.RGB(0x44403C), types.RGB(0x0C0A09)),
		"corridor", "A narrow passage.", false)
)
