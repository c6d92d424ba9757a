package domain

import (
	"dungeon-core/internal/composite"
	"dungeon-core/internal/core/types"
)

// Entity - композит, собранный из компонентов (позиция, уровень, внешний вид, здоровье...).
// Один и тот же тип используется для существ, предметов, объектов подземелья и ландшафта:
// роль определяет компонент PieceType.
type Entity struct {
	*composite.Composite
	ID types.EntityID
}

// NewEntity создает пустую сущность. Компоненты добавляются через Attach/MustAttach.
func NewEntity(id types.EntityID, tags ...composite.Tag) *Entity {
	e := &Entity{
		Composite: composite.NewComposite(composite.TypeEntity, tags...),
		ID:        id,
	}
	e.SetHost(e)
	return e
}

// ownerOf находит сущность, к которой прикреплен компонент.
func ownerOf(l *composite.Leaf) (*Entity, bool) {
	p, err := l.Parent()
	if err != nil {
		return nil, false
	}
	e, ok := p.Host().(*Entity)
	return e, ok
}

// --- Типизированный доступ к компонентам ---

func (e *Entity) Position() (*Position, error) {
	return composite.As[*Position](e.Composite, composite.TypePosition)
}

func (e *Entity) DungeonLevel() (*DungeonLevel, error) {
	return composite.As[*DungeonLevel](e.Composite, composite.TypeDungeonLevel)
}

func (e *Entity) Mover() (*Mover, error) {
	return composite.As[*Mover](e.Composite, composite.TypeMover)
}

func (e *Entity) GraphicChar() (*GraphicChar, error) {
	return composite.As[*GraphicChar](e.Composite, composite.TypeGraphicChar)
}

func (e *Entity) Description() (*Description, error) {
	return composite.As[*Description](e.Composite, composite.TypeDescription)
}

func (e *Entity) Actor() (*Actor, error) {
	return composite.As[*Actor](e.Composite, composite.TypeActor)
}

func (e *Entity) Health() (*Health, error) {
	return composite.As[*Health](e.Composite, composite.TypeHealth)
}

func (e *Entity) Inventory() (*Inventory, error) {
	return composite.As[*Inventory](e.Composite, composite.TypeInventory)
}

func (e *Entity) Faction() (*Faction, error) {
	return composite.As[*Faction](e.Composite, composite.TypeFaction)
}

func (e *Entity) SightRadius() (*SightRadius, error) {
	return composite.As[*SightRadius](e.Composite, composite.TypeSightRadius)
}

func (e *Entity) Vision() (*Vision, error) {
	return composite.As[*Vision](e.Composite, composite.TypeVision)
}

func (e *Entity) Memory() (*Memory, error) {
	return composite.As[*Memory](e.Composite, composite.TypeMemory)
}

// --- Удобные проекции ---

// Pos возвращает координату или Nowhere, если компонента позиции нет.
func (e *Entity) Pos() Point {
	if p, err := e.Position(); err == nil {
		return p.Value()
	}
	return Nowhere
}

// Level возвращает текущий уровень или nil.
func (e *Entity) Level() *Level {
	if d, err := e.DungeonLevel(); err == nil {
		return d.Value()
	}
	return nil
}

// Category реализует Occupant. Сущность без PieceType считается существом.
func (e *Entity) Category() Category {
	if pt, err := composite.As[*PieceType](e.Composite, composite.TypeGamePieceType); err == nil {
		return pt.Value
	}
	return CategoryEntity
}

// Appearance реализует Drawable: верхний оверлей GraphicChar накладывается
// на все, что он затеняет, вплоть до настоящего компонента.
func (e *Entity) Appearance() types.Glyph {
	n, err := e.Resolve(composite.TypeGraphicChar)
	if err != nil {
		return types.Glyph{}
	}
	g := n.(*GraphicChar).Glyph
	for next, ok := e.Next(n); ok; next, ok = e.Next(next) {
		g = g.Over(next.(*GraphicChar).Glyph)
	}
	return g
}

// Describe реализует Describer.
func (e *Entity) Describe() (name, text string) {
	if d, err := e.Description(); err == nil {
		return d.Name, d.Text
	}
	return "", ""
}

// Name - короткое имя для логов и сообщений.
func (e *Entity) Name() string {
	name, _ := e.Describe()
	if name == "" {
		return e.ID.String()
	}
	return name
}

// Remember реализует Rememberable.
func (e *Entity) Remember() Occupant {
	return NewRemnant(e)
}

// IsSolid реализует Solid.
func (e *Entity) IsSolid() bool {
	return e.HasChild(composite.TypeIsSolid)
}

func (e *Entity) IsPlayer() bool {
	return e.HasChild(composite.TypeIsPlayer)
}

func (e *Entity) IsDead() bool {
	h, err := e.Health()
	return err == nil && h.IsDead()
}

// TakeTurn реализует scheduler.Actor: полный ход - три фазы тика по порядку.
func (e *Entity) TakeTurn(turn int) {
	composite.RunTurn(e, turn)
}

// Ready - готова ли сущность ходить. Ложь, если поведение ждет ввода игрока.
func (e *Entity) Ready() bool {
	a, err := e.Actor()
	if err != nil {
		return true
	}
	return a.Ready()
}

// Kill убирает сущность из подземелья и из кольца ходов уровня.
func (e *Entity) Kill() {
	e.MarkForRemoval()
	if m, err := e.Mover(); err == nil {
		m.TryRemoveFromDungeon()
		return
	}
	if d, err := e.DungeonLevel(); err == nil {
		d.Set(nil)
	}
}
