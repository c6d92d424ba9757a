package domain

import "dungeon-core/internal/core/types"

// Анимация клетки с несколькими объектами одного раздела
const (
	// FramesPerOccupant - сколько кадров показывается каждый объект при циклическом показе.
	FramesPerOccupant = 3
)

// Вместимость
const (
	ItemsAllowedPerTile    = 1
	EntitiesAllowedPerTile = 1
	InventoryCapacity      = 16
)

// Цвета
var (
	// Стиль "памяти": клетки вне поля зрения
	UnseenFg = types.RGB(0x3C3C5A)
	UnseenBg = types.RGB(0x0A0A14)

	// Вспышка при получении урона
	HurtFlashFg = types.RGB(0xFF3030)

	UnknownBg = types.RGB(0x000000)
)
