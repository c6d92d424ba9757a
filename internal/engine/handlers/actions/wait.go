package actions

import (
	"dungeon-core/internal/engine/handlers"
)

// HandleWait - пропуск хода. Журнал не засоряем.
func HandleWait(ctx handlers.Context) (handlers.Result, error) {
	return handlers.Act(handlers.EmptyResult), nil
}
