package domain

import (
	"dungeon-core/internal/composite"
)

// Vision - кэш поля зрения. Сбрасывается сообщениями о смене позиции или уровня,
// пересчитывается системой FOV по требованию.
type Vision struct {
	composite.Leaf
	visible map[Point]struct{}
	dirty   bool
}

func NewVision() *Vision {
	return &Vision{
		Leaf:    composite.NewLeaf(composite.TypeVision),
		visible: make(map[Point]struct{}),
		dirty:   true,
	}
}

func (v *Vision) Message(msg composite.Message) {
	switch msg {
	case composite.MessagePositionChanged, composite.MessageDungeonLevelChanged:
		v.dirty = true
	}
}

func (v *Vision) IsDirty() bool { return v.dirty }

// Invalidate помечает кэш устаревшим (например, открылась дверь).
func (v *Vision) Invalidate() { v.dirty = true }

// Store сохраняет свежий результат FOV.
func (v *Vision) Store(cells map[Point]struct{}) {
	v.visible = cells
	v.dirty = false
}

// CanSee - видна ли клетка по последнему расчету.
func (v *Vision) CanSee(p Point) bool {
	_, ok := v.visible[p]
	return ok
}

// Visible возвращает копию множества видимых клеток.
func (v *Vision) Visible() []Point {
	out := make([]Point, 0, len(v.visible))
	for p := range v.visible {
		out = append(out, p)
	}
	return out
}

func (v *Vision) Len() int { return len(v.visible) }
