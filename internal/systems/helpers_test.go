package systems

import (
	"dungeon-core/internal/composite"
	"dungeon-core/internal/core/types"
	"dungeon-core/internal/domain"
)

var testIDs types.IDAllocator

var testFloor = domain.MakeRemnant(domain.CategoryTerrain, types.MakeGlyph('.', types.RGB(0x808080), types.RGB(0x101010)), "floor", "")

// Helper для создания пустой карты со стенами в нужных местах
func createTestLevel(w, h int, walls ...domain.Point) *domain.Level {
	l := domain.NewLevel(1, w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			tile, _ := l.Tile(domain.Point{X: x, Y: y})
			tile.ReplaceTerrain(testFloor)
		}
	}
	for _, p := range walls {
		tile, _ := l.Tile(p)
		tile.ReplaceTerrain(newTestWall())
	}
	return l
}

func newTestWall() *domain.Entity {
	e := domain.NewEntity(testIDs.Next(0, 1))
	composite.MustAttach(e.Composite,
		domain.NewPieceType(domain.CategoryTerrain),
		domain.NewGraphicChar(types.MakeGlyph('#', types.RGB(0xAAAAAA), types.NoColor)),
		domain.NewFlag(composite.TypeIsSolid),
	)
	return e
}

func newTestCreature(name string, faction domain.FactionKind, b domain.Behavior) *domain.Entity {
	e := domain.NewEntity(testIDs.Next(1, 1))
	composite.MustAttach(e.Composite,
		domain.NewPosition(),
		domain.NewDungeonLevel(),
		domain.NewMover(),
		domain.NewPieceType(domain.CategoryEntity),
		domain.NewGraphicChar(types.MakeGlyph(rune(name[0]), types.RGB(0xFFFFFF), types.NoColor)),
		domain.NewDescription(name, ""),
		domain.NewActor(b),
		domain.NewHealth(10),
		domain.NewFaction(faction),
		domain.NewSightRadius(6),
		domain.NewVision(),
		domain.NewMemory(),
		domain.NewInventory(),
	)
	return e
}

func newTestItem(name string) *domain.Entity {
	e := domain.NewEntity(testIDs.Next(2, 1))
	composite.MustAttach(e.Composite,
		domain.NewPosition(),
		domain.NewDungeonLevel(),
		domain.NewMover(),
		domain.NewPieceType(domain.CategoryItem),
		domain.NewGraphicChar(types.MakeGlyph('!', types.RGB(0xFF00FF), types.NoColor)),
		domain.NewDescription(name, ""),
	)
	return e
}

func place(l *domain.Level, e *domain.Entity, x, y int) {
	if !l.Place(e, domain.Point{X: x, Y: y}) {
		panic("test setup: cannot place " + e.Name())
	}
}

func newTestCloud(name string, b *DissipatingCloud) *domain.Entity {
	e := domain.NewEntity(testIDs.Next(4, 1))
	composite.MustAttach(e.Composite,
		domain.NewPosition(),
		domain.NewDungeonLevel(),
		domain.NewMover(),
		domain.NewPieceType(domain.CategoryCloud),
		domain.NewGraphicChar(types.MakeGlyph('*', types.RGB(0x84CC16), types.NoColor)),
		domain.NewDescription(name, ""),
		domain.NewActor(b),
	)
	return e
}
