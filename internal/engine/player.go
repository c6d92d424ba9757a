package engine

import (
	"dungeon-core/internal/domain"
	"dungeon-core/internal/engine/handlers"
	"dungeon-core/internal/engine/handlers/actions"
	"dungeon-core/internal/engine/handlers/events"
	"dungeon-core/internal/input"
)

// PlayerBehavior - поведение героя. Ход игрока идет в два шага:
// хендлер проверяет команду и кладет действие сюда, следующий тик кольца его выполняет.
type PlayerBehavior struct {
	pending func() handlers.Result
	report  func(handlers.Result)
}

// NewPlayerBehavior создает поведение. report получает результат каждого выполненного действия.
func NewPlayerBehavior(report func(handlers.Result)) *PlayerBehavior {
	return &PlayerBehavior{report: report}
}

// Ready реализует domain.InputAwaiter: без команды игрок не ходит.
func (b *PlayerBehavior) Ready() bool { return b.pending != nil }

// Stage запоминает действие до хода игрока. Повторный вызов заменяет прежнее.
func (b *PlayerBehavior) Stage(perform func() handlers.Result) {
	b.pending = perform
}

// Act реализует domain.Behavior.
func (b *PlayerBehavior) Act(self *domain.Entity, turn int) {
	perform := b.pending
	b.pending = nil
	if perform == nil {
		return
	}
	res := perform()
	if b.report != nil {
		b.report(res)
	}
}

// commandHandlers - реестр команд обычного режима.
func commandHandlers() map[input.Command]handlers.HandlerFunc {
	move := handlers.WithPayload(handlers.DirectionOf, actions.HandleMove)

	return map[input.Command]handlers.HandlerFunc{
		input.CommandNorth:     move,
		input.CommandSouth:     move,
		input.CommandWest:      move,
		input.CommandEast:      move,
		input.CommandNorthWest: move,
		input.CommandNorthEast: move,
		input.CommandSouthWest: move,
		input.CommandSouthEast: move,

		input.CommandRest:      handlers.WithEmptyPayload(actions.HandleWait),
		input.CommandPickUp:    handlers.WithEmptyPayload(actions.HandlePickup),
		input.CommandInventory: handlers.WithEmptyPayload(actions.HandleInventory),
		input.CommandExamine:   handlers.WithEmptyPayload(actions.HandleExamine),
		input.CommandEnter:     handlers.WithEmptyPayload(actions.HandleExamine),
		input.CommandFire:      handlers.WithEmptyPayload(actions.HandleFire),
		input.CommandDescend:   handlers.WithEmptyPayload(events.HandleDescend),
	}
}

// inventoryHandlers - реестр режима инвентаря: цифра выбирает ячейку.
func inventoryHandlers() map[input.Command]handlers.HandlerFunc {
	use := handlers.WithPayload(handlers.SlotOf, actions.HandleUse)

	return map[input.Command]handlers.HandlerFunc{
		input.CommandZero:  use,
		input.CommandOne:   use,
		input.CommandTwo:   use,
		input.CommandThree: use,
		input.CommandFour:  use,
		input.CommandFive:  use,
	}
}
