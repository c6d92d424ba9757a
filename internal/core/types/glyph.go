package types

import (
	"fmt"
)

// Color - упакованный 24-битный RGB-цвет с флагом "задан".
//
//	[0:24]  - RGB (0xRRGGBB)
//	[24]    - флаг присутствия цвета
//
// Нулевое значение (NoColor) означает "цвет не задан": рендерер не трогает
// соответствующий слой клетки. Так черный цвет (0x000000) отличается от отсутствия цвета.
type Color uint32

// NoColor - отсутствие цвета.
const NoColor Color = 0

const (
	bitsColor = 24
	maskColor = (1 << bitsColor) - 1 // 0xFFFFFF
	flagSet   = 1 << bitsColor
)

// RGB создает заданный цвет из 0xRRGGBB (учитываются младшие 24 бита).
func RGB(rgb uint32) Color {
	return Color(rgb&maskColor | flagSet)
}

// IsSet возвращает true, если цвет задан.
func (c Color) IsSet() bool {
	return c&flagSet != 0
}

// RGB возвращает цвет в формате 0xRRGGBB. Для NoColor - 0.
func (c Color) RGB() uint32 {
	return uint32(c) & maskColor
}

// Split раскладывает цвет на компоненты.
func (c Color) Split() (r, g, b uint8) {
	v := c.RGB()
	return uint8(v >> 16), uint8(v >> 8), uint8(v)
}

// Hex возвращает "#RRGGBB" или пустую строку для NoColor.
func (c Color) Hex() string {
	if !c.IsSet() {
		return ""
	}
	return fmt.Sprintf("#%06X", c.RGB())
}

func (c Color) String() string {
	if !c.IsSet() {
		return "none"
	}
	return c.Hex()
}

// Glyph - визуальное представление клетки: символ, цвет символа и цвет фона.
// Любое поле может отсутствовать (Symbol == 0, NoColor) - тогда при отрисовке
// под ним остается то, что было нарисовано раньше.
type Glyph struct {
	Symbol rune  `json:"symbol,omitempty"`
	Fg     Color `json:"fg,omitempty"`
	Bg     Color `json:"bg,omitempty"`
}

// MakeGlyph собирает Glyph из RGB значений. Символ 0 - без символа.
func MakeGlyph(symbol rune, fg, bg Color) Glyph {
	return Glyph{Symbol: symbol, Fg: fg, Bg: bg}
}

// HasSymbol возвращает true, если символ задан.
func (g Glyph) HasSymbol() bool {
	return g.Symbol != 0
}

// Over накладывает g поверх base: заданные поля g перекрывают поля base.
func (g Glyph) Over(base Glyph) Glyph {
	out := base
	if g.HasSymbol() {
		out.Symbol = g.Symbol
	}
	if g.Fg.IsSet() {
		out.Fg = g.Fg
	}
	if g.Bg.IsSet() {
		out.Bg = g.Bg
	}
	return out
}

// String возвращает человеко-читаемое представление Glyph.
// Формат: "Glyph{char='A', fg=#FFA500, bg=none}"
func (g Glyph) String() string {
	charStr := string(g.Symbol)
	if g.Symbol < 32 || g.Symbol == 0x7F {
		charStr = fmt.Sprintf("\\x%02X", g.Symbol)
	}
	return fmt.Sprintf("Glyph{char='%s', fg=%s, bg=%s}", charStr, g.Fg, g.Bg)
}
