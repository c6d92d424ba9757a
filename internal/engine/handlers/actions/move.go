package actions

import (
	"dungeon-core/internal/engine/handlers"
	"dungeon-core/internal/systems"
	"dungeon-core/pkg/api"
)

// MeleeDamage - урон удара при столкновении.
const MeleeDamage = 3

func HandleMove(ctx handlers.Context, p api.DirectionPayload) (handlers.Result, error) {
	actor := ctx.Actor
	res := systems.CalculateMove(actor, p.Dx, p.Dy)

	if target := res.BlockedBy; target != nil {
		mine, errMine := actor.Faction()
		theirs, errTheirs := target.Faction()
		if errMine == nil && errTheirs == nil && !mine.IsHostileTo(theirs) {
			return handlers.Fail("The " + target.Name() + " is in the way."), nil
		}
		return handlers.Act(func() handlers.Result {
			return handlers.Result{Msg: systems.ApplyAttack(actor, target, MeleeDamage), MsgType: handlers.MsgCombat}
		}), nil
	}

	if res.HasMoved {
		return handlers.Act(func() handlers.Result {
			if !systems.Step(actor, p.Dx, p.Dy).HasMoved {
				return handlers.Fail("You cannot move there.")
			}
			return describeFloor(ctx)
		}), nil
	}

	if res.IsWall {
		return handlers.Fail("There is a wall in the way."), nil
	}
	return handlers.Fail("You cannot move there."), nil
}
