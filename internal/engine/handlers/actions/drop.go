package actions

import (
	"dungeon-core/internal/engine/handlers"
	"dungeon-core/internal/systems"
	"dungeon-core/pkg/api"
	"dungeon-core/pkg/logger"

	"github.com/sirupsen/logrus"
)

// HandleDrop обрабатывает выброс предмета из ячейки инвентаря
func HandleDrop(ctx handlers.Context, p api.SlotPayload) (handlers.Result, error) {
	actor := ctx.Actor

	log := logger.Log.WithFields(logrus.Fields{
		"component":  "drop_handler",
		"actor_id":   actor.ID,
		"actor_name": actor.Name(),
	})

	inv, err := actor.Inventory()
	if err != nil {
		log.Warn("Actor has no inventory component")
		return handlers.Fail("You cannot carry anything."), nil
	}
	if p.Slot >= inv.Len() {
		return handlers.Fail("There is nothing in that slot."), nil
	}
	if _, ok := itemUnder(ctx); ok {
		return handlers.Fail("There is no room to drop it here."), nil
	}

	return handlers.Act(func() handlers.Result {
		msg, err := systems.TryDrop(actor, p.Slot)
		if err != nil {
			log.WithError(err).Debug("Drop failed")
			return handlers.Fail(err.Error())
		}
		return handlers.Result{Msg: msg, MsgType: handlers.MsgInfo}
	}), nil
}
