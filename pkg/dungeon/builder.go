package dungeon

import (
	"math/rand"

	"dungeon-core/internal/core/types"
	"dungeon-core/internal/domain"
	"dungeon-core/pkg/logger"

	"github.com/sirupsen/logrus"
)

// placementAttempts - сколько случайных клеток комнаты пробуем, прежде чем сдаться.
const placementAttempts = 20

// LevelBuilder предоставляет fluent API для создания уровней
type LevelBuilder struct {
	depth  int
	width  int
	height int
	rooms  []Rect
	level  *domain.Level
	ids    *types.IDAllocator
	rng    *rand.Rand

	// skipped - сколько объектов не удалось разместить
	skipped int
}

// NewBuilder создает builder для уровня depth
func NewBuilder(depth int, ids *types.IDAllocator, rng *rand.Rand) *LevelBuilder {
	return &LevelBuilder{
		depth:  depth,
		width:  MapWidth,
		height: MapHeight,
		ids:    ids,
		rng:    rng,
	}
}

// WithSize устанавливает размер карты
func (b *LevelBuilder) WithSize(width, height int) *LevelBuilder {
	b.width = width
	b.height = height
	return b
}

// WithRooms заливает уровень стенами и вырезает комнаты, соединенные коридорами
func (b *LevelBuilder) WithRooms(maxRooms int) *LevelBuilder {
	b.level = domain.NewLevel(b.depth, b.width, b.height)
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			b.setTerrain(x, y, Wall)
		}
	}

	b.rooms = make([]Rect, 0, maxRooms)
	for i := 0; i < maxRooms; i++ {
		w := b.randRange(MinSize, min(MaxSize, b.width-3))
		h := b.randRange(MinSize, min(MaxSize, b.height-3))
		x := b.randRange(1, b.width-w-2)
		y := b.randRange(1, b.height-h-2)

		newRoom := Rect{X: x, Y: y, W: w, H: h}

		failed := false
		for _, other := range b.rooms {
			if newRoom.Intersects(other) {
				failed = true
				break
			}
		}
		if failed {
			continue
		}

		b.carveRoom(newRoom)
		// Соединяем с предыдущей комнатой
		if len(b.rooms) > 0 {
			prevX, prevY := b.rooms[len(b.rooms)-1].Center()
			currX, currY := newRoom.Center()

			if b.rng.Intn(2) == 0 {
				b.carveHCorridor(prevX, currX, prevY)
				b.carveVCorridor(prevY, currY, currX)
			} else {
				b.carveVCorridor(prevY, currY, prevX)
				b.carveHCorridor(prevX, currX, currY)
			}
		}
		b.rooms = append(b.rooms, newRoom)
	}

	return b
}

// SpawnCreature расселяет существ из шаблона по комнатам (кроме первой)
func (b *LevelBuilder) SpawnCreature(t CreatureTemplate, count int) *LevelBuilder {
	for i := 0; i < count && len(b.rooms) > 1; i++ {
		room := b.rooms[b.rng.Intn(len(b.rooms)-1)+1]
		b.place(t.Spawn(b.ids, b.depth, b.rng), room)
	}
	return b
}

// SpawnItem раскладывает предметы по случайным комнатам
func (b *LevelBuilder) SpawnItem(t ItemTemplate, count int) *LevelBuilder {
	for i := 0; i < count && len(b.rooms) > 0; i++ {
		room := b.rooms[b.rng.Intn(len(b.rooms))]
		b.place(t.Spawn(b.ids, b.depth), room)
	}
	return b
}

// SpawnCloud пускает облака в случайные комнаты
func (b *LevelBuilder) SpawnCloud(t CloudTemplate, count int) *LevelBuilder {
	for i := 0; i < count && len(b.rooms) > 1; i++ {
		room := b.rooms[b.rng.Intn(len(b.rooms)-1)+1]
		b.place(t.Spawn(b.ids, b.depth), room)
	}
	return b
}

// PlaceFeature ставит объекты подземелья в случайные комнаты (кроме первой)
func (b *LevelBuilder) PlaceFeature(t FeatureTemplate, count int) *LevelBuilder {
	for i := 0; i < count && len(b.rooms) > 1; i++ {
		room := b.rooms[b.rng.Intn(len(b.rooms)-1)+1]
		b.place(t.Spawn(b.ids, b.depth), room)
	}
	return b
}

// PlaceStairs ставит лестницу вниз в центр последней комнаты
func (b *LevelBuilder) PlaceStairs() *LevelBuilder {
	if len(b.rooms) == 0 {
		return b
	}
	cx, cy := b.rooms[len(b.rooms)-1].Center()
	stairs := StairsDown.Spawn(b.ids, b.depth)
	if !b.level.Place(stairs, domain.Point{X: cx, Y: cy}) {
		b.skipped++
	}
	return b
}

// StartPos возвращает стартовую позицию (центр первой комнаты)
func (b *LevelBuilder) StartPos() domain.Point {
	if len(b.rooms) > 0 {
		cx, cy := b.rooms[0].Center()
		return domain.Point{X: cx, Y: cy}
	}
	return domain.Point{X: b.width / 2, Y: b.height / 2}
}

// Build возвращает готовый уровень и стартовую позицию
func (b *LevelBuilder) Build() (*domain.Level, domain.Point) {
	logger.Log.WithFields(logrus.Fields{
		"component": "dungeon_builder",
		"depth":     b.depth,
		"rooms":     len(b.rooms),
		"actors":    b.level.Scheduler().Len(),
		"skipped":   b.skipped,
	}).Debug("Level built")
	return b.level, b.StartPos()
}

// place ищет в комнате клетку, куда сущность может встать. Старт героя не занимаем.
func (b *LevelBuilder) place(e *domain.Entity, room Rect) {
	m, err := e.Mover()
	if err != nil {
		b.skipped++
		return
	}
	start := b.StartPos()
	for attempt := 0; attempt < placementAttempts; attempt++ {
		p := domain.Point{
			X: room.X + 1 + b.rng.Intn(room.W-1),
			Y: room.Y + 1 + b.rng.Intn(room.H-1),
		}
		if p == start || !m.CanMove(p, b.level) {
			continue
		}
		if b.level.Place(e, p) {
			return
		}
	}
	b.skipped++
}

func (b *LevelBuilder) setTerrain(x, y int, t *Terrain) {
	if tile, ok := b.level.Tile(domain.Point{X: x, Y: y}); ok {
		tile.ReplaceTerrain(t)
	}
}

func (b *LevelBuilder) carveRoom(room Rect) {
	for y := room.Y + 1; y < room.Y+room.H; y++ {
		for x := room.X + 1; x < room.X+room.W; x++ {
			b.setTerrain(x, y, Floor)
		}
	}
}

// Коридор не затирает пол комнат, через которые проходит.
func (b *LevelBuilder) carveHCorridor(x1, x2, y int) {
	for x := min(x1, x2); x <= max(x1, x2); x++ {
		b.carveCorridor(x, y)
	}
}

func (b *LevelBuilder) carveVCorridor(y1, y2, x int) {
	for y := min(y1, y2); y <= max(y1, y2); y++ {
		b.carveCorridor(x, y)
	}
}

func (b *LevelBuilder) carveCorridor(x, y int) {
	tile, ok := b.level.Tile(domain.Point{X: x, Y: y})
	if ok && tile.Terrain() == domain.Occupant(Wall) {
		tile.ReplaceTerrain(Corridor)
	}
}

func (b *LevelBuilder) randRange(lo, hi int) int {
	if hi < lo {
		return lo
	}
	return b.rng.Intn(hi-lo+1) + lo
}
