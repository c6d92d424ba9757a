package events

import (
	"fmt"

	"dungeon-core/internal/domain"
	"dungeon-core/internal/engine/handlers"
	"dungeon-core/pkg/dungeon"
	"dungeon-core/pkg/logger"

	"github.com/sirupsen/logrus"
)

// HandleDescend спускает актера по лестнице, на которой он стоит.
func HandleDescend(ctx handlers.Context) (handlers.Result, error) {
	actor := ctx.Actor
	if ctx.Switcher == nil {
		return handlers.Fail("There is no way down."), nil
	}
	if !onStairs(actor) {
		return handlers.Fail("There are no stairs here."), nil
	}

	return handlers.Act(func() handlers.Result {
		oldDepth := 0
		if l := actor.Level(); l != nil {
			oldDepth = l.Depth
		}

		next, err := ctx.Switcher.Descend(actor)
		if err != nil {
			logger.Log.WithFields(logrus.Fields{
				"component": "level_transition",
				"actor_id":  actor.ID,
				"depth":     oldDepth,
			}).WithError(err).Error("Descend failed")
			return handlers.Fail("The stairs are blocked.")
		}

		return handlers.Result{
			Msg:     fmt.Sprintf("%s descends deeper... Depth %d.", actor.Name(), next.Depth),
			MsgType: handlers.MsgInfo,
		}
	}), nil
}

func onStairs(actor *domain.Entity) bool {
	l := actor.Level()
	if l == nil {
		return false
	}
	tile, ok := l.Tile(actor.Pos())
	if !ok {
		return false
	}
	for _, o := range tile.Pieces(domain.CategoryDungeonFeature) {
		if f, ok := o.(*domain.Entity); ok && f.Tags().Has(dungeon.TagStairsDown) {
			return true
		}
	}
	return false
}
