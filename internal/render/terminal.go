package render

import (
	"dungeon-core/internal/core/types"
	"dungeon-core/internal/domain"

	"github.com/gdamore/tcell/v2"
)

// Terminal рисует клетки уровня на экране tcell.
// Незаданные поля глифа не трогают то, что уже лежит в клетке экрана.
type Terminal struct {
	screen  tcell.Screen
	offsetX int
	offsetY int
}

// NewTerminal создает холст. Смещение задает левый верхний угол карты на экране.
func NewTerminal(screen tcell.Screen, offsetX, offsetY int) *Terminal {
	return &Terminal{
		screen:  screen,
		offsetX: offsetX,
		offsetY: offsetY,
	}
}

// Draw реализует domain.Canvas.
func (t *Terminal) Draw(p domain.Point, g types.Glyph) {
	x, y := p.X+t.offsetX, p.Y+t.offsetY
	t.put(x, y, g)
}

func (t *Terminal) put(x, y int, g types.Glyph) {
	mainc, combc, style, _ := t.screen.GetContent(x, y)
	if g.HasSymbol() {
		mainc, combc = g.Symbol, nil
	}
	if g.Fg.IsSet() {
		style = style.Foreground(ToTcell(g.Fg))
	}
	if g.Bg.IsSet() {
		style = style.Background(ToTcell(g.Bg))
	}
	t.screen.SetContent(x, y, mainc, combc, style)
}

// DrawText пишет строку в экранных координатах (без смещения карты).
// Используется для строки состояния и журнала.
func (t *Terminal) DrawText(x, y int, text string, fg, bg types.Color) {
	for _, r := range text {
		t.put(x, y, types.MakeGlyph(r, fg, bg))
		x++
	}
}

// Clear очищает экран перед новым кадром.
func (t *Terminal) Clear() {
	t.screen.Clear()
}

// Show выводит накопленный кадр.
func (t *Terminal) Show() {
	t.screen.Show()
}

// Size возвращает размер экрана в клетках.
func (t *Terminal) Size() (int, int) {
	return t.screen.Size()
}

// ToTcell переводит цвет ядра в цвет tcell. NoColor - цвет терминала по умолчанию.
func ToTcell(c types.Color) tcell.Color {
	if !c.IsSet() {
		return tcell.ColorDefault
	}
	return tcell.NewHexColor(int32(c.RGB()))
}

// FromTcell - обратное преобразование. Цвета без RGB значения дают NoColor.
func FromTcell(c tcell.Color) types.Color {
	v := c.Hex()
	if v < 0 {
		return types.NoColor
	}
	return types.RGB(uint32(v))
}
