package actions

import (
	"fmt"
	"strings"

	"dungeon-core/internal/engine/handlers"
)

// HandleInventory перечисляет содержимое рюкзака. Ход не тратится.
func HandleInventory(ctx handlers.Context) (handlers.Result, error) {
	inv, err := ctx.Actor.Inventory()
	if err != nil {
		return handlers.Fail("You cannot carry anything."), nil
	}
	items := inv.Items()
	if len(items) == 0 {
		return handlers.Result{Msg: "Your pack is empty.", MsgType: handlers.MsgInfo}, nil
	}

	parts := make([]string, 0, len(items))
	for i, it := range items {
		parts = append(parts, fmt.Sprintf("%d) %s", i, it.Name()))
	}
	return handlers.Result{
		Msg:     "You carry: " + strings.Join(parts, ", ") + ". Press a number to use, Esc to close.",
		MsgType: handlers.MsgInfo,
	}, nil
}
