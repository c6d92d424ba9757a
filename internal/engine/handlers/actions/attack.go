package actions

import (
	"dungeon-core/internal/engine/handlers"
	"dungeon-core/internal/systems"
)

const (
	// FireRange - дальность броска.
	FireRange = 6.0
	// FireDamage - урон брошенного камня.
	FireDamage = 1
)

// HandleFire бросает камень в ближайшего видимого врага.
func HandleFire(ctx handlers.Context) (handlers.Result, error) {
	target, ok := systems.ClosestSeenHostile(ctx.Actor)
	if !ok {
		return handlers.Fail("No target in sight."), nil
	}

	// Проверка дистанции и видимости (сквозь стены бросать нельзя)
	res := systems.ValidateInteraction(ctx.Actor, target, FireRange, true)
	if !res.Valid {
		return handlers.Fail(res.Message), nil
	}

	return handlers.Act(func() handlers.Result {
		return handlers.Result{
			Msg:     "You throw a stone. " + systems.ApplyAttack(ctx.Actor, res.Target, FireDamage),
			MsgType: handlers.MsgCombat,
		}
	}), nil
}
