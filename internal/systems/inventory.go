package systems

import (
	"errors"
	"fmt"

	"dungeon-core/internal/domain"
)

var (
	ErrNoInventory   = errors.New("cannot carry items")
	ErrNothingHere   = errors.New("there is nothing here to pick up")
	ErrInventoryFull = errors.New("inventory is full")
	ErrNothingToDrop = errors.New("nothing to drop")
	ErrNoRoom        = errors.New("there is no room to drop it here")
)

// --- PICKUP ---

// TryPickup поднимает предмет с клетки, на которой стоит actor.
func TryPickup(actor *domain.Entity) (string, error) {
	inv, err := actor.Inventory()
	if err != nil {
		return "", fmt.Errorf("%s %w", actor.Name(), ErrNoInventory)
	}
	if inv.IsFull() {
		return "", ErrInventoryFull
	}
	item, ok := inv.PickUp()
	if !ok {
		return "", ErrNothingHere
	}
	return fmt.Sprintf("%s picks up the %s.", actor.Name(), item.Name()), nil
}

// --- DROP ---

// TryDrop выкладывает предмет из ячейки slot на клетку actor.
// slot < 0 - последний поднятый предмет.
func TryDrop(actor *domain.Entity, slot int) (string, error) {
	inv, err := actor.Inventory()
	if err != nil {
		return "", fmt.Errorf("%s %w", actor.Name(), ErrNoInventory)
	}
	items := inv.Items()
	if len(items) == 0 {
		return "", ErrNothingToDrop
	}
	if slot < 0 {
		slot = len(items) - 1
	}
	if slot >= len(items) {
		return "", ErrNothingToDrop
	}
	item := items[slot]
	if !inv.TryDrop(item) {
		return "", ErrNoRoom
	}
	return fmt.Sprintf("%s drops the %s.", actor.Name(), item.Name()), nil
}
