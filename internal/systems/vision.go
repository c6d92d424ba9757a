package systems

import (
	"sort"

	"dungeon-core/internal/domain"
)

// CanSee - видит ли сущность клетку. Сущность без Vision не видит ничего.
func CanSee(viewer *domain.Entity, p domain.Point) bool {
	v := RefreshVision(viewer)
	return v != nil && v.CanSee(p)
}

// SeenEntities возвращает сущности уровня наблюдателя, стоящие в его поле зрения.
// Сам наблюдатель не входит в результат.
func SeenEntities(viewer *domain.Entity) []*domain.Entity {
	l := viewer.Level()
	v := RefreshVision(viewer)
	if l == nil || v == nil {
		return nil
	}

	var out []*domain.Entity
	for _, e := range l.Entities() {
		if e == viewer || e.ToBeRemoved() {
			continue
		}
		if v.CanSee(e.Pos()) {
			out = append(out, e)
		}
	}
	return out
}

// SeenEntitiesClosestFirst - то же, упорядоченное по расстоянию Чебышева.
// При равном расстоянии сохраняется порядок кольца ходов.
func SeenEntitiesClosestFirst(viewer *domain.Entity) []*domain.Entity {
	seen := SeenEntities(viewer)
	from := viewer.Pos()
	sort.SliceStable(seen, func(i, j int) bool {
		return from.ChessDistance(seen[i].Pos()) < from.ChessDistance(seen[j].Pos())
	})
	return seen
}

// ClosestSeenEntity возвращает ближайшую видимую сущность.
func ClosestSeenEntity(viewer *domain.Entity) (*domain.Entity, bool) {
	seen := SeenEntitiesClosestFirst(viewer)
	if len(seen) == 0 {
		return nil, false
	}
	return seen[0], true
}

// ClosestSeenHostile - ближайшая видимая сущность враждебной фракции.
func ClosestSeenHostile(viewer *domain.Entity) (*domain.Entity, bool) {
	mine, err := viewer.Faction()
	if err != nil {
		return nil, false
	}
	for _, e := range SeenEntitiesClosestFirst(viewer) {
		theirs, err := e.Faction()
		if err == nil && mine.IsHostileTo(theirs) && !e.IsDead() {
			return e, true
		}
	}
	return nil, false
}
