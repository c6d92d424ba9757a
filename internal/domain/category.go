package domain

import "strings"

// Category - раздел занятости клетки. Каждый объект на клетке лежит ровно в одном разделе.
type Category uint8

const (
	CategoryTerrain Category = iota
	CategoryDungeonFeature
	CategoryItem
	CategoryEntity
	CategoryCloud
	CategoryTrash

	categoryCount
)

// precedence - порядок выбора верхнего раздела клетки: первый непустой побеждает.
var precedence = [categoryCount]Category{
	CategoryEntity,
	CategoryCloud,
	CategoryItem,
	CategoryDungeonFeature,
	CategoryTrash,
	CategoryTerrain,
}

var categoryToString = [categoryCount]string{
	CategoryTerrain:        "TERRAIN",
	CategoryDungeonFeature: "DUNGEON_FEATURE",
	CategoryItem:           "ITEM",
	CategoryEntity:         "ENTITY",
	CategoryCloud:          "CLOUD",
	CategoryTrash:          "TRASH",
}

// Categories возвращает все разделы в порядке объявления.
func Categories() []Category {
	out := make([]Category, categoryCount)
	for i := range out {
		out[i] = Category(i)
	}
	return out
}

// IsValid - входит ли значение в закрытый словарь.
func (c Category) IsValid() bool {
	return c < categoryCount
}

func (c Category) String() string {
	if c.IsValid() {
		return categoryToString[c]
	}
	return "UNKNOWN"
}

// ParseCategory конвертирует строку в Category. ok == false для неизвестных имен.
func ParseCategory(s string) (Category, bool) {
	upper := strings.ToUpper(s)
	for i, name := range categoryToString {
		if name == upper {
			return Category(i), true
		}
	}
	return CategoryTerrain, false
}
