package actions

import (
	"fmt"

	"dungeon-core/internal/engine/handlers"
)

// HandleInit - приветствие в начале сессии.
func HandleInit(ctx handlers.Context) (handlers.Result, error) {
	return handlers.Result{
		Msg:     fmt.Sprintf("Welcome to the dungeon. You stand on depth %d.", ctx.Level.Depth),
		MsgType: handlers.MsgInfo,
	}, nil
}
