package dungeon

import (
	"dungeon-core/internal/composite"
	"dungeon-core/internal/core/types"
	"dungeon-core/internal/domain"
)

const (
	PlayerHP    = 30
	PlayerSight = 8
)

// CreatePlayer собирает героя. Поведение передает движок: оно ждет команд ввода.
func CreatePlayer(ids *types.IDAllocator, behavior domain.Behavior) *domain.Entity {
	p := domain.NewEntity(ids.Next(uint8(domain.CategoryEntity), 0))
	composite.MustAttach(p.Composite,
		domain.NewPosition(),
		domain.NewDungeonLevel(),
		domain.NewMover(),
		domain.NewPieceType(domain.CategoryEntity),
		domain.NewGraphicChar(types.MakeGlyph('@', types.RGB(0x22D3EE), types.NoColor)),
		domain.NewDescription("hero", "A brave explorer of the dungeon."),
		domain.NewActor(behavior),
		domain.NewHealth(PlayerHP),
		domain.NewInventory(),
		domain.NewFaction(domain.FactionPlayer),
		domain.NewSightRadius(PlayerSight),
		domain.NewVision(),
		domain.NewMemory(),
		domain.NewFlag(composite.TypeIsPlayer),
	)
	return p
}
