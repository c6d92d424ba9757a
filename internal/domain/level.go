package domain

import (
	"dungeon-core/internal/scheduler"
	"dungeon-core/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Level - один уровень подземелья: сетка клеток, кольцо ходов и реестр объектов подземелья.
type Level struct {
	Depth  int
	Width  int
	Height int

	tiles     []*Tile
	scheduler *scheduler.ActionScheduler
	features  []*Entity
}

// NewLevel создает уровень, заполненный неизвестными клетками.
// Ландшафт выставляет генератор через Tile(p).ReplaceTerrain.
func NewLevel(depth, width, height int) *Level {
	l := &Level{
		Depth:     depth,
		Width:     width,
		Height:    height,
		tiles:     make([]*Tile, width*height),
		scheduler: scheduler.New(),
	}
	for i := range l.tiles {
		l.tiles[i] = NewUnknownTile()
	}
	return l
}

func (l *Level) InBounds(p Point) bool {
	return p.X >= 0 && p.X < l.Width && p.Y >= 0 && p.Y < l.Height
}

// Tile возвращает клетку. false - за пределами карты.
func (l *Level) Tile(p Point) (*Tile, bool) {
	if !l.InBounds(p) {
		return nil, false
	}
	return l.tiles[p.Y*l.Width+p.X], true
}

// IsSolid - клетка непроходима. За пределами карты всегда true.
func (l *Level) IsSolid(p Point) bool {
	t, ok := l.Tile(p)
	return !ok || t.IsSolid()
}

// BlocksSight - клетка перекрывает обзор. За пределами карты всегда true.
func (l *Level) BlocksSight(p Point) bool {
	t, ok := l.Tile(p)
	return !ok || t.BlocksSight()
}

// Scheduler - кольцо ходов уровня.
func (l *Level) Scheduler() *scheduler.ActionScheduler { return l.scheduler }

// AddActorIfNotPresent регистрирует актера в кольце ходов уровня.
func (l *Level) AddActorIfNotPresent(a scheduler.Actor) {
	if l.scheduler.Contains(a) {
		return
	}
	l.scheduler.Register(a)
}

// RemoveActorIfPresent освобождает актера. Отсутствующий - no-op.
func (l *Level) RemoveActorIfPresent(a scheduler.Actor) {
	l.scheduler.Release(a)
}

func (l *Level) AddDungeonFeatureIfNotPresent(e *Entity) {
	for _, f := range l.features {
		if f == e {
			return
		}
	}
	l.features = append(l.features, e)
}

func (l *Level) RemoveDungeonFeatureIfPresent(e *Entity) {
	for i, f := range l.features {
		if f == e {
			l.features = append(l.features[:i], l.features[i+1:]...)
			return
		}
	}
}

// Entities - пространственные сущности кольца ходов (без таймеров эффектов).
func (l *Level) Entities() []*Entity {
	return scheduler.Members[*Entity](l.scheduler)
}

// Actors - все участники кольца ходов.
func (l *Level) Actors() []scheduler.Actor {
	return l.scheduler.Actors()
}

func (l *Level) Features() []*Entity {
	return append([]*Entity(nil), l.features...)
}

// Player - первая сущность с флагом IS_PLAYER.
func (l *Level) Player() (*Entity, bool) {
	for _, e := range l.Entities() {
		if e.IsPlayer() {
			return e, true
		}
	}
	return nil, false
}

// Place ставит сущность на клетку через ее Mover. Для генераторов контента.
func (l *Level) Place(e *Entity, p Point) bool {
	m, err := e.Mover()
	if err != nil {
		logger.Log.WithFields(logrus.Fields{
			"component": "level",
			"entity":    e.ID.String(),
		}).WithError(err).Warn("Cannot place entity without mover")
		return false
	}
	return m.TryMove(p, l)
}
