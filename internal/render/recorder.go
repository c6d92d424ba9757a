package render

import (
	"sort"

	"dungeon-core/internal/core/types"
	"dungeon-core/internal/domain"
	"dungeon-core/pkg/api"
)

// Recorder - холст, который ничего не выводит, а собирает клетки кадра
// для отправки наблюдателям.
type Recorder struct {
	cells map[domain.Point]types.Glyph
}

func NewRecorder() *Recorder {
	return &Recorder{cells: make(map[domain.Point]types.Glyph)}
}

// Draw реализует domain.Canvas. Повторный вызов для той же клетки
// накладывает глиф поверх предыдущего, как это делает терминал.
func (r *Recorder) Draw(p domain.Point, g types.Glyph) {
	r.cells[p] = g.Over(r.cells[p])
}

// Glyph возвращает итоговый глиф клетки.
func (r *Recorder) Glyph(p domain.Point) (types.Glyph, bool) {
	g, ok := r.cells[p]
	return g, ok
}

func (r *Recorder) Len() int { return len(r.cells) }

// Reset забывает все клетки.
func (r *Recorder) Reset() {
	clear(r.cells)
}

// Cells возвращает клетки в порядке строк (y, затем x).
func (r *Recorder) Cells() []api.CellView {
	out := make([]api.CellView, 0, len(r.cells))
	for p, g := range r.cells {
		cv := api.CellView{X: p.X, Y: p.Y, Fg: g.Fg.Hex(), Bg: g.Bg.Hex()}
		if g.HasSymbol() {
			cv.Symbol = string(g.Symbol)
		}
		out = append(out, cv)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}

// Multi рассылает отрисовку нескольким холстам.
type Multi []domain.Canvas

func (m Multi) Draw(p domain.Point, g types.Glyph) {
	for _, cv := range m {
		cv.Draw(p, g)
	}
}
