package handlers

import (
	"dungeon-core/internal/domain"
	"dungeon-core/internal/input"
)

// Типы записей журнала.
const (
	MsgInfo   = "INFO"
	MsgCombat = "COMBAT"
	MsgError  = "ERROR"
)

// Descender переводит актера на следующий уровень. GameService реализует этот интерфейс.
type Descender interface {
	Descend(actor *domain.Entity) (*domain.Level, error)
}

// Context передает хендлеру состояние мира.
// Мы передаем ссылки, чтобы хендлер мог менять состояние (мутировать данные).
type Context struct {
	Actor    *domain.Entity // Тот, кто выполняет команду
	Level    *domain.Level  // Уровень, на котором он стоит
	Switcher Descender
}

// Result - возвращает результат выполнения команды.
// Хендлер НЕ пишет в журнал напрямую, он возвращает данные.
type Result struct {
	Msg     string // Текст лога
	MsgType string // Тип лога (INFO, COMBAT, ERROR)

	// Perform - действие, тратящее ход. Выполняется позже, в ход актера.
	// nil означает, что команда бесплатная и ход не тратится.
	Perform func() Result
}

// TakesTurn - тратит ли команда ход.
func (r Result) TakesTurn() bool { return r.Perform != nil }

// HandlerFunc - это контракт для любой команды (NORTH, PICKUP, etc).
// Хендлер только проверяет команду: мир меняется в Perform.
type HandlerFunc func(ctx Context, cmd input.Command) (Result, error)

// EmptyResult - вспомогательная функция для пустого успешного ответа
func EmptyResult() Result {
	return Result{}
}

// Fail - отказ без траты хода.
func Fail(msg string) Result {
	return Result{Msg: msg, MsgType: MsgError}
}

// Act - команда, тратящая ход.
func Act(perform func() Result) Result {
	return Result{Perform: perform}
}
