package actions

import (
	"dungeon-core/internal/engine/handlers"
	"dungeon-core/internal/systems"
)

// HandlePickup обрабатывает команду PICKUP - подбор предмета с земли
func HandlePickup(ctx handlers.Context) (handlers.Result, error) {
	inv, err := ctx.Actor.Inventory()
	if err != nil {
		return handlers.Fail("You cannot carry anything."), nil
	}
	if inv.IsFull() {
		return handlers.Fail("Your pack is full."), nil
	}
	if _, ok := itemUnder(ctx); !ok {
		return handlers.Fail("There is nothing here to pick up."), nil
	}

	return handlers.Act(func() handlers.Result {
		msg, err := systems.TryPickup(ctx.Actor)
		if err != nil {
			return handlers.Fail(err.Error())
		}
		return handlers.Result{Msg: msg, MsgType: handlers.MsgInfo}
	}), nil
}
