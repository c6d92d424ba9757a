package domain

import (
	"dungeon-core/internal/core/types"
	"dungeon-core/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Occupant - все, что может лежать на клетке. Раздел объявляет сам объект.
type Occupant interface {
	Category() Category
}

// Drawable - объект с визуальным представлением.
type Drawable interface {
	Appearance() types.Glyph
}

// Describer - объект с именем и описанием.
type Describer interface {
	Describe() (name, text string)
}

// Rememberable - объект, умеющий сделать свою инертную копию для памяти карты.
type Rememberable interface {
	Remember() Occupant
}

// Solid - объект, который может перекрывать проход и обзор.
type Solid interface {
	IsSolid() bool
}

// Canvas - коллаборатор-рендерер. Ядро только пишет в него, никогда не читает.
type Canvas interface {
	Draw(p Point, g types.Glyph)
}

// Tile - содержимое одной клетки, разложенное по разделам.
// Раздел TERRAIN никогда не пуст: неисследованные клетки держат UnknownTerrain.
type Tile struct {
	pieces [categoryCount][]Occupant
	top    Category
	rev    uint64
}

// NewTile создает клетку с единственным объектом ландшафта.
func NewTile(terrain Occupant) *Tile {
	t := &Tile{top: CategoryTerrain}
	if terrain == nil || terrain.Category() != CategoryTerrain {
		terrain = UnknownTerrain
	}
	t.pieces[CategoryTerrain] = []Occupant{terrain}
	return t
}

// NewUnknownTile - клетка, которую еще никто не видел.
func NewUnknownTile() *Tile {
	return NewTile(UnknownTerrain)
}

// Add кладет объект в конец его раздела. Повторное добавление кладет вторую ссылку,
// Remove снимает по одной, первую найденную.
func (t *Tile) Add(piece Occupant) bool {
	if piece == nil {
		return false
	}
	cat := piece.Category()
	if !cat.IsValid() {
		logger.Log.WithFields(logrus.Fields{
			"component": "tile",
			"category":  cat,
		}).Warnf("Occupant %T has invalid category", piece)
		return false
	}
	t.pieces[cat] = append(t.pieces[cat], piece)
	t.recalculateTop()
	return true
}

// Remove убирает объект по идентичности. Последний объект ландшафта не удаляется.
func (t *Tile) Remove(piece Occupant) bool {
	if piece == nil {
		return false
	}
	cat := piece.Category()
	if !cat.IsValid() {
		return false
	}
	i := t.indexOf(cat, piece)
	if i < 0 {
		return false
	}
	if cat == CategoryTerrain && len(t.pieces[cat]) == 1 {
		logger.Log.WithField("component", "tile").Debug("Refusing to remove the last terrain occupant")
		return false
	}
	t.pieces[cat] = append(t.pieces[cat][:i], t.pieces[cat][i+1:]...)
	t.recalculateTop()
	return true
}

// ReplaceTerrain заменяет весь ландшафт клетки одним объектом (загрузка уровня генератором).
func (t *Tile) ReplaceTerrain(terrain Occupant) {
	if terrain == nil || terrain.Category() != CategoryTerrain {
		return
	}
	t.pieces[CategoryTerrain] = []Occupant{terrain}
	t.recalculateTop()
}

func (t *Tile) indexOf(cat Category, piece Occupant) int {
	for i, p := range t.pieces[cat] {
		if p == piece {
			return i
		}
	}
	return -1
}

func (t *Tile) recalculateTop() {
	t.rev++
	for _, cat := range precedence {
		if len(t.pieces[cat]) > 0 {
			t.top = cat
			return
		}
	}
	t.top = CategoryTerrain
}

// Revision растет при каждом изменении состава клетки.
func (t *Tile) Revision() uint64 { return t.rev }

// TopCategory - первый непустой раздел в порядке приоритета.
func (t *Tile) TopCategory() Category { return t.top }

// First возвращает первый объект раздела.
func (t *Tile) First(cat Category) (Occupant, bool) {
	if !cat.IsValid() || len(t.pieces[cat]) == 0 {
		return nil, false
	}
	return t.pieces[cat][0], true
}

// Terrain всегда существует.
func (t *Tile) Terrain() Occupant {
	if o, ok := t.First(CategoryTerrain); ok {
		return o
	}
	return UnknownTerrain
}

func (t *Tile) Entity() (Occupant, bool) { return t.First(CategoryEntity) }
func (t *Tile) Item() (Occupant, bool) { return t.First(CategoryItem) }
func (t *Tile) Cloud() (Occupant, bool) { return t.First(CategoryCloud) }
func (t *Tile) DungeonFeature() (Occupant, bool) { return t.First(CategoryDungeonFeature) }

// Pieces возвращает копию раздела.
func (t *Tile) Pieces(cat Category) []Occupant {
	if !cat.IsValid() {
		return nil
	}
	return append([]Occupant(nil), t.pieces[cat]...)
}

// Count - количество объектов в разделе.
func (t *Tile) Count(cat Category) int {
	if !cat.IsValid() {
		return 0
	}
	return len(t.pieces[cat])
}

// All возвращает все объекты в порядке объявления разделов.
func (t *Tile) All() []Occupant {
	var out []Occupant
	for _, list := range t.pieces {
		out = append(out, list...)
	}
	return out
}

// Has - лежит ли объект на клетке.
func (t *Tile) Has(piece Occupant) bool {
	if piece == nil || !piece.Category().IsValid() {
		return false
	}
	return t.indexOf(piece.Category(), piece) >= 0
}

// IsSolid - перекрыта ли клетка ландшафтом, объектом подземелья или существом.
func (t *Tile) IsSolid() bool {
	for _, cat := range [...]Category{CategoryTerrain, CategoryDungeonFeature, CategoryEntity} {
		for _, p := range t.pieces[cat] {
			if s, ok := p.(Solid); ok && s.IsSolid() {
				return true
			}
		}
	}
	return false
}

// BlocksSight - перекрывает ли клетка обзор. Существа обзор не перекрывают.
func (t *Tile) BlocksSight() bool {
	for _, cat := range [...]Category{CategoryTerrain, CategoryDungeonFeature} {
		for _, p := range t.pieces[cat] {
			if s, ok := p.(Solid); ok && s.IsSolid() {
				return true
			}
		}
	}
	return false
}

// Visible возвращает объект, который должен быть показан в кадре frame.
// Если в верхнем разделе несколько объектов, показ циклический:
// каждый держится FramesPerOccupant кадров.
func (t *Tile) Visible(frame int) Occupant {
	list := t.pieces[t.top]
	if len(list) == 0 {
		return t.Terrain()
	}
	period := len(list) * FramesPerOccupant
	i := ((frame%period + period) % period) / FramesPerOccupant
	return list[i]
}

// DrawSeen рисует живое состояние клетки.
// Если у выбранного объекта нет фона, используется фон ландшафта.
func (t *Tile) DrawSeen(cv Canvas, p Point, frame int) {
	g := glyphOf(t.Visible(frame))
	if !g.Bg.IsSet() {
		g.Bg = glyphOf(t.Terrain()).Bg
	}
	cv.Draw(p, g)
}

// DrawUnseen рисует запомненное состояние: всегда первый объект верхнего раздела,
// цвета памяти, без анимации.
func (t *Tile) DrawUnseen(cv Canvas, p Point) {
	first, ok := t.First(t.top)
	if !ok {
		first = t.Terrain()
	}
	g := glyphOf(first)
	cv.Draw(p, types.MakeGlyph(g.Symbol, UnseenFg, UnseenBg))
}

// Copy делает структурно независимую инертную копию клетки для памяти карты.
// Сохраняются только раздел, внешний вид и описание каждого объекта.
func (t *Tile) Copy() *Tile {
	c := &Tile{top: t.top}
	for cat, list := range t.pieces {
		if len(list) == 0 {
			continue
		}
		c.pieces[cat] = make([]Occupant, 0, len(list))
		for _, p := range list {
			c.pieces[cat] = append(c.pieces[cat], rememberOf(p))
		}
	}
	return c
}

func glyphOf(o Occupant) types.Glyph {
	if d, ok := o.(Drawable); ok {
		return d.Appearance()
	}
	return types.Glyph{}
}

func rememberOf(o Occupant) Occupant {
	if r, ok := o.(Rememberable); ok {
		return r.Remember()
	}
	return NewRemnant(o)
}

// Remnant - инертный образ объекта: раздел, внешний вид, описание.
// Не имеет поведения, идентичности и живого состояния.
type Remnant struct {
	category Category
	glyph    types.Glyph
	name     string
	text     string
}

// NewRemnant снимает образ с любого объекта.
func NewRemnant(o Occupant) *Remnant {
	r := &Remnant{category: o.Category(), glyph: glyphOf(o)}
	if d, ok := o.(Describer); ok {
		r.name, r.text = d.Describe()
	}
	return r
}

// MakeRemnant собирает образ из готовых полей (загрузка снимка памяти).
func MakeRemnant(cat Category, g types.Glyph, name, text string) *Remnant {
	return &Remnant{category: cat, glyph: g, name: name, text: text}
}

func (r *Remnant) Category() Category { return r.category }
func (r *Remnant) Appearance() types.Glyph { return r.glyph }
func (r *Remnant) Describe() (name, text string) { return r.name, r.text }
func (r *Remnant) Remember() Occupant { return MakeRemnant(r.category, r.glyph, r.name, r.text) }

// UnknownTerrain - заглушка ландшафта для неисследованных клеток.
var UnknownTerrain = MakeRemnant(CategoryTerrain, types.MakeGlyph(' ', types.NoColor, UnknownBg), "unknown", "You have not seen this place.")
