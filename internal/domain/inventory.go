package domain

import (
	"dungeon-core/internal/composite"
)

// Inventory - предметы, которые несет сущность. Предмет в инвентаре не лежит ни на одной клетке.
type Inventory struct {
	composite.Leaf
	items    []*Entity
	capacity int
}

func NewInventory() *Inventory {
	return &Inventory{Leaf: composite.NewLeaf(composite.TypeInventory), capacity: InventoryCapacity}
}

func (inv *Inventory) Items() []*Entity { return append([]*Entity(nil), inv.items...) }

func (inv *Inventory) Len() int { return len(inv.items) }

func (inv *Inventory) IsFull() bool { return len(inv.items) >= inv.capacity }

func (inv *Inventory) Has(item *Entity) bool {
	for _, it := range inv.items {
		if it == item {
			return true
		}
	}
	return false
}

// TryAdd забирает предмет из подземелья в инвентарь.
func (inv *Inventory) TryAdd(item *Entity) bool {
	if item == nil || inv.IsFull() || inv.Has(item) || item.Category() != CategoryItem {
		return false
	}
	if m, err := item.Mover(); err == nil {
		m.TryRemoveFromDungeon()
	}
	inv.items = append(inv.items, item)
	return true
}

// PickUp поднимает предмет с клетки, на которой стоит владелец.
func (inv *Inventory) PickUp() (*Entity, bool) {
	owner, ok := ownerOf(&inv.Leaf)
	if !ok || owner.Level() == nil {
		return nil, false
	}
	tile, ok := owner.Level().Tile(owner.Pos())
	if !ok {
		return nil, false
	}
	o, ok := tile.Item()
	if !ok {
		return nil, false
	}
	item, ok := o.(*Entity)
	if !ok || !inv.TryAdd(item) {
		return nil, false
	}
	return item, true
}

// TryDrop кладет предмет на клетку владельца. При неудаче предмет остается в инвентаре.
func (inv *Inventory) TryDrop(item *Entity) bool {
	owner, ok := ownerOf(&inv.Leaf)
	if !ok || !inv.Has(item) {
		return false
	}
	m, err := item.Mover()
	if err != nil || !m.TryMove(owner.Pos(), owner.Level()) {
		return false
	}
	inv.Remove(item)
	return true
}

// Remove убирает предмет из инвентаря без размещения (съеден, выпит, уничтожен).
func (inv *Inventory) Remove(item *Entity) bool {
	for i, it := range inv.items {
		if it == item {
			inv.items = append(inv.items[:i], inv.items[i+1:]...)
			return true
		}
	}
	return false
}
