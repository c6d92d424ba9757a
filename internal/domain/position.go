package domain

import (
	"dungeon-core/internal/composite"
	"dungeon-core/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Position - координата сущности на ее уровне.
type Position struct {
	composite.Leaf
	value Point
}

func NewPosition() *Position {
	return &Position{Leaf: composite.NewLeaf(composite.TypePosition), value: Nowhere}
}

func (p *Position) Value() Point { return p.value }

// Set меняет координату и, если компонент прикреплен, рассылает POSITION_CHANGED
// по сущности. Повторная установка того же значения рассылает сообщение снова.
func (p *Position) Set(v Point) {
	p.value = v
	if parent, err := p.Parent(); err == nil {
		parent.Message(composite.MessagePositionChanged)
	}
}

// DungeonLevel - принадлежность сущности к уровню.
// Смена уровня переносит сущность между реестрами актеров и объектов подземелья.
type DungeonLevel struct {
	composite.Leaf
	value *Level
	last  *Level
}

func NewDungeonLevel() *DungeonLevel {
	return &DungeonLevel{Leaf: composite.NewLeaf(composite.TypeDungeonLevel)}
}

func (d *DungeonLevel) Value() *Level { return d.value }

// Last - последний уровень, на котором была сущность. Сохраняется и после Set(nil).
func (d *DungeonLevel) Last() *Level { return d.last }

// Set меняет уровень. Сравнение по идентичности: тот же уровень - no-op.
func (d *DungeonLevel) Set(l *Level) {
	if d.value == l {
		return
	}
	old := d.value
	if old != nil {
		d.last = old
	}
	d.value = l
	d.levelChanged(old)
}

// OnParentChanged повторяет регистрацию при прикреплении к новой сущности.
func (d *DungeonLevel) OnParentChanged() {
	if d.HasParent() && d.value != nil {
		d.levelChanged(nil)
	}
}

func (d *DungeonLevel) levelChanged(old *Level) {
	owner, ok := ownerOf(&d.Leaf)
	if !ok {
		return
	}
	owner.Message(composite.MessageDungeonLevelChanged)

	isActor := owner.HasChild(composite.TypeActor)
	isFeature := owner.HasChild(composite.TypeIsDungeonFeature)

	if old != nil {
		if isActor {
			old.RemoveActorIfPresent(owner)
		}
		if isFeature {
			old.RemoveDungeonFeatureIfPresent(owner)
		}
	}
	if d.value != nil {
		if isActor {
			d.value.AddActorIfNotPresent(owner)
		}
		if isFeature {
			d.value.AddDungeonFeatureIfNotPresent(owner)
		}
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "dungeon_level",
		"entity":    owner.ID.String(),
		"from":      depthOf(old),
		"to":        depthOf(d.value),
	}).Debug("Entity changed level")
}

func depthOf(l *Level) int {
	if l == nil {
		return -1
	}
	return l.Depth
}
