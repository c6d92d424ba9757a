package dungeon

import (
	"math/rand"

	"dungeon-core/internal/core/types"
	"dungeon-core/internal/domain"
)

// Константы генерации
const (
	MapWidth  = 60
	MapHeight = 22
	MaxRooms  = 9
	MinSize   = 4
	MaxSize   = 10
)

// Rect - Вспомогательная структура для комнаты. Стены комнаты лежат на ее границе.
type Rect struct {
	X, Y, W, H int
}

func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.W && r.X+r.W >= other.X &&
		r.Y <= other.Y+other.H && r.Y+r.H >= other.Y
}

// Generate создает уровень depth: комнаты, существа, предметы, облака и лестница вниз.
// Чем глубже, тем больше и опаснее обитатели.
func Generate(depth, width, height int, ids *types.IDAllocator, rng *rand.Rand) (*domain.Level, domain.Point) {
	b := NewBuilder(depth, ids, rng).
		WithSize(width, height).
		WithRooms(MaxRooms).
		PlaceStairs().
		SpawnCreature(Rat, 3).
		SpawnCreature(Goblin, 1+depth/2).
		SpawnItem(HealthPotion, 2).
		SpawnItem(Dagger, 1).
		SpawnItem(GoldCoins, 2).
		PlaceFeature(Pillar, 1)

	if depth > 1 {
		b.SpawnCreature(Orc, depth-1).SpawnCloud(PoisonGas, 1)
	}
	return b.Build()
}
