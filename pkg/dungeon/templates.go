package dungeon

import (
	"math/rand"

	"dungeon-core/internal/composite"
	"dungeon-core/internal/core/types"
	"dungeon-core/internal/domain"
	"dungeon-core/internal/systems"
)

// Метки возможностей, которые проверяют игровые действия.
const (
	TagStairsDown composite.Tag = "stairs_down"
	TagDrinkable  composite.Tag = "drinkable"
)

// CreatureTemplate определяет шаблон для создания существа
type CreatureTemplate struct {
	Name    string
	Text    string
	Glyph   types.Glyph
	HP      int
	Damage  int
	Sight   int
	Faction domain.FactionKind
}

// Spawn собирает существо из шаблона. Существо еще не размещено на уровне.
func (t CreatureTemplate) Spawn(ids *types.IDAllocator, depth int, rng *rand.Rand) *domain.Entity {
	e := domain.NewEntity(ids.Next(uint8(domain.CategoryEntity), uint16(depth)))
	composite.MustAttach(e.Composite,
		domain.NewPosition(),
		domain.NewDungeonLevel(),
		domain.NewMover(),
		domain.NewPieceType(domain.CategoryEntity),
		domain.NewGraphicChar(t.Glyph),
		domain.NewDescription(t.Name, t.Text),
		domain.NewActor(&systems.MonsterAI{Damage: t.Damage, Rng: rng}),
		domain.NewHealth(t.HP),
		domain.NewFaction(t.Faction),
		domain.NewSightRadius(t.Sight),
		domain.NewVision(),
	)
	return e
}

// --- СУЩЕСТВА ---

var Rat = CreatureTemplate{
	Name:    "rat",
	Text:    "A filthy rat with sharp teeth.",
	Glyph:   types.MakeGlyph('r', types.RGB(0xA16207), types.NoColor),
	HP:      4,
	Damage:  1,
	Sight:   6,
	Faction: domain.FactionMonster,
}

var Goblin = CreatureTemplate{
	Name:    "goblin",
	Text:    "A small goblin, glancing around like a thief.",
	Glyph:   types.MakeGlyph('g', types.RGB(0x22C55E), types.NoColor),
	HP:      8,
	Damage:  2,
	Sight:   8,
	Faction: domain.FactionMonster,
}

var Orc = CreatureTemplate{
	Name:    "orc",
	Text:    "A huge orc with a heavy club.",
	Glyph:   types.MakeGlyph('o', types.RGB(0xDC2626), types.NoColor),
	HP:      14,
	Damage:  3,
	Sight:   7,
	Faction: domain.FactionMonster,
}

// CreatureTemplates - реестр существ по имени.
var CreatureTemplates = map[string]CreatureTemplate{
	"rat":    Rat,
	"goblin": Goblin,
	"orc":    Orc,
}

// ItemTemplate определяет шаблон предмета
type ItemTemplate struct {
	Name  string
	Text  string
	Glyph types.Glyph
	Tags  []composite.Tag
}

func (t ItemTemplate) Spawn(ids *types.IDAllocator, depth int) *domain.Entity {
	e := domain.NewEntity(ids.Next(uint8(domain.CategoryItem), uint16(depth)), t.Tags...)
	composite.MustAttach(e.Composite,
		domain.NewPosition(),
		domain.NewDungeonLevel(),
		domain.NewMover(),
		domain.NewPieceType(domain.CategoryItem),
		domain.NewGraphicChar(t.Glyph),
		domain.NewDescription(t.Name, t.Text),
	)
	return e
}

// --- ПРЕДМЕТЫ ---

var HealthPotion = ItemTemplate{
	Name:  "health potion",
	Text:  "A small vial of red liquid.",
	Glyph: types.MakeGlyph('!', types.RGB(0xEF4444), types.NoColor),
	Tags:  []composite.Tag{TagDrinkable},
}

var Dagger = ItemTemplate{
	Name:  "dagger",
	Text:  "A short rusty blade.",
	Glyph: types.MakeGlyph('(', types.RGB(0x94A3B8), types.NoColor),
}

var GoldCoins = ItemTemplate{
	Name:  "gold coins",
	Text:  "A handful of old coins.",
	Glyph: types.MakeGlyph('$', types.RGB(0xFACC15), types.NoColor),
}

var ItemTemplates = map[string]ItemTemplate{
	"health_potion": HealthPotion,
	"dagger":        Dagger,
	"gold":          GoldCoins,
}

// HealAmount - сколько здоровья возвращает зелье.
const HealAmount = 8

// FeatureTemplate определяет шаблон объекта подземелья (лестница, колонна...).
type FeatureTemplate struct {
	Name  string
	Text  string
	Glyph types.Glyph
	Solid bool
	Tags  []composite.Tag
}

func (t FeatureTemplate) Spawn(ids *types.IDAllocator, depth int) *domain.Entity {
	e := domain.NewEntity(ids.Next(uint8(domain.CategoryDungeonFeature), uint16(depth)), t.Tags...)
	composite.MustAttach(e.Composite,
		domain.NewPosition(),
		domain.NewDungeonLevel(),
		domain.NewMover(),
		domain.NewPieceType(domain.CategoryDungeonFeature),
		domain.NewGraphicChar(t.Glyph),
		domain.NewDescription(t.Name, t.Text),
		domain.NewFlag(composite.TypeIsDungeonFeature),
	)
	if t.Solid {
		composite.MustAttach(e.Composite, domain.NewFlag(composite.TypeIsSolid))
	}
	return e
}

// --- ОБЪЕКТЫ ПОДЗЕМЕЛЬЯ ---

var StairsDown = FeatureTemplate{
	Name:  "stairs down",
	Text:  "A dark passage leading deeper into the dungeon.",
	Glyph: types.MakeGlyph('>', types.RGB(0xFFFFFF), types.NoColor),
	Tags:  []composite.Tag{TagStairsDown},
}

var Pillar = FeatureTemplate{
	Name:  "pillar",
	Text:  "A massive stone pillar.",
	Glyph: types.MakeGlyph('O', types.RGB(0x78716C), types.RGB(0x292524)),
	Solid: true,
}

// CloudTemplate - облако, занимающее раздел облаков клетки.
type CloudTemplate struct {
	Name   string
	Text   string
	Glyph  types.Glyph
	Turns  int
	Damage int
	// Poison - сколько ходов длится отравление от облака.
	Poison int
}

func (t CloudTemplate) Spawn(ids *types.IDAllocator, depth int) *domain.Entity {
	e := domain.NewEntity(ids.Next(uint8(domain.CategoryCloud), uint16(depth)))
	composite.MustAttach(e.Composite,
		domain.NewPosition(),
		domain.NewDungeonLevel(),
		domain.NewMover(),
		domain.NewPieceType(domain.CategoryCloud),
		domain.NewGraphicChar(t.Glyph),
		domain.NewDescription(t.Name, t.Text),
		domain.NewActor(&systems.DissipatingCloud{Turns: t.Turns, Damage: t.Damage, PoisonTurns: t.Poison}),
	)
	return e
}

var PoisonGas = CloudTemplate{
	Name:   "poison gas",
	Text:   "A greenish haze. Breathing it hurts.",
	Glyph:  types.MakeGlyph('*', types.RGB(0x84CC16), types.NoColor),
	Turns:  30,
	Damage: 1,
	Poison: 3,
}
