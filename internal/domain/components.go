package domain

import (
	"dungeon-core/internal/composite"
	"dungeon-core/internal/core/types"
)

// GraphicChar - внешний вид. Оверлей GraphicChar с частично заданными полями
// перекрашивает настоящий компонент на один тик.
type GraphicChar struct {
	composite.Leaf
	Glyph types.Glyph
}

func NewGraphicChar(g types.Glyph) *GraphicChar {
	return &GraphicChar{Leaf: composite.NewLeaf(composite.TypeGraphicChar), Glyph: g}
}

// Description - имя и описание для осмотра.
type Description struct {
	composite.Leaf
	Name string
	Text string
}

func NewDescription(name, text string) *Description {
	return &Description{Leaf: composite.NewLeaf(composite.TypeDescription), Name: name, Text: text}
}

// PieceType - раздел клетки, в который кладется сущность.
type PieceType struct {
	composite.Leaf
	Value Category
}

func NewPieceType(c Category) *PieceType {
	return &PieceType{Leaf: composite.NewLeaf(composite.TypeGamePieceType), Value: c}
}

// Flag - компонент-маркер без данных (IS_PLAYER, IS_SOLID, IS_DUNGEON_FEATURE).
type Flag struct {
	composite.Leaf
}

func NewFlag(t composite.TypeTag) *Flag {
	return &Flag{Leaf: composite.NewLeaf(t)}
}

// SightRadius - дальность обзора в клетках.
type SightRadius struct {
	composite.Leaf
	Value int
}

func NewSightRadius(r int) *SightRadius {
	return &SightRadius{Leaf: composite.NewLeaf(composite.TypeSightRadius), Value: r}
}

// FactionKind - сторона конфликта.
type FactionKind uint8

const (
	FactionNeutral FactionKind = iota
	FactionPlayer
	FactionMonster
)

func (f FactionKind) String() string {
	switch f {
	case FactionPlayer:
		return "PLAYER"
	case FactionMonster:
		return "MONSTER"
	default:
		return "NEUTRAL"
	}
}

// Faction - принадлежность к стороне.
type Faction struct {
	composite.Leaf
	Value FactionKind
}

func NewFaction(f FactionKind) *Faction {
	return &Faction{Leaf: composite.NewLeaf(composite.TypeFaction), Value: f}
}

// IsHostileTo - нейтралы ни с кем не враждуют, остальные враждуют с чужими.
func (f *Faction) IsHostileTo(other *Faction) bool {
	if f.Value == FactionNeutral || other.Value == FactionNeutral {
		return false
	}
	return f.Value != other.Value
}
