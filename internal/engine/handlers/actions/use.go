package actions

import (
	"fmt"

	"dungeon-core/internal/engine/handlers"
	"dungeon-core/pkg/api"
	"dungeon-core/pkg/dungeon"
	"dungeon-core/pkg/logger"

	"github.com/sirupsen/logrus"
)

// HandleUse обрабатывает использование предмета из ячейки инвентаря.
// Зелья выпиваются, остальные предметы выкладываются на пол.
func HandleUse(ctx handlers.Context, p api.SlotPayload) (handlers.Result, error) {
	actor := ctx.Actor

	inv, err := actor.Inventory()
	if err != nil {
		return handlers.Fail("You cannot carry anything."), nil
	}
	items := inv.Items()
	if p.Slot >= len(items) {
		return handlers.Fail("There is nothing in that slot."), nil
	}
	item := items[p.Slot]
	if !item.Tags().Has(dungeon.TagDrinkable) {
		return HandleDrop(ctx, p)
	}

	return handlers.Act(func() handlers.Result {
		h, err := actor.Health()
		if err != nil {
			return handlers.Fail("Nothing happens.")
		}
		healed := h.Heal(dungeon.HealAmount)
		inv.Remove(item)

		logger.Log.WithFields(logrus.Fields{
			"component": "use_handler",
			"actor_id":  actor.ID,
			"item_name": item.Name(),
			"healed":    healed,
		}).Debug("Item used successfully")

		return handlers.Result{
			Msg:     fmt.Sprintf("%s drinks the %s and recovers %d HP.", actor.Name(), item.Name(), healed),
			MsgType: handlers.MsgInfo,
		}
	}), nil
}
