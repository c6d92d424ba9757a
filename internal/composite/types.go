package composite

import "strings"

// TypeTag - закрытый словарь типов узлов. Композит держит не более одного
// настоящего потомка на каждый TypeTag.
type TypeTag uint8

const (
	TypeUnknown TypeTag = iota
	TypeEntity
	TypePosition
	TypeDungeonLevel
	TypeMover
	TypeGraphicChar
	TypeDescription
	TypeGamePieceType
	TypeActor
	TypeHealth
	TypeInventory
	TypeFaction
	TypeSightRadius
	TypeVision
	TypeMemory
	TypeIsPlayer
	TypeIsDungeonFeature
	TypeIsSolid

	typeCount
)

var typeToString = [typeCount]string{
	TypeUnknown:          "UNKNOWN",
	TypeEntity:           "ENTITY",
	TypePosition:         "POSITION",
	TypeDungeonLevel:     "DUNGEON_LEVEL",
	TypeMover:            "MOVER",
	TypeGraphicChar:      "GRAPHIC_CHAR",
	TypeDescription:      "DESCRIPTION",
	TypeGamePieceType:    "GAME_PIECE_TYPE",
	TypeActor:            "ACTOR",
	TypeHealth:           "HEALTH",
	TypeInventory:        "INVENTORY",
	TypeFaction:          "FACTION",
	TypeSightRadius:      "SIGHT_RADIUS",
	TypeVision:           "VISION",
	TypeMemory:           "MEMORY",
	TypeIsPlayer:         "IS_PLAYER",
	TypeIsDungeonFeature: "IS_DUNGEON_FEATURE",
	TypeIsSolid:          "IS_SOLID",
}

// String реализует fmt.Stringer
func (t TypeTag) String() string {
	if t < typeCount {
		return typeToString[t]
	}
	return "UNKNOWN"
}

// ParseTypeTag конвертирует строку (шаблоны контента, сохранения) в TypeTag.
func ParseTypeTag(s string) TypeTag {
	upper := strings.ToUpper(s)
	for i, name := range typeToString {
		if name == upper {
			return TypeTag(i)
		}
	}
	return TypeUnknown
}
